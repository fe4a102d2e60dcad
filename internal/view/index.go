package view

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ChocoChu32/watchlist/internal/domain"
)

// IndexPage renders the movie list. Edit and delete controls and the create
// form only appear for the authenticated owner.
func IndexPage(page Page, movies []domain.Movie) templ.Component {
	return layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if page.User != nil {
			if err := writeAll(w,
				`<form class="movie-form" method="post" action="/">`,
				`<input type="text" name="title" placeholder="Movie title" autocomplete="off" required>`,
				`<input type="text" name="year" placeholder="Year" autocomplete="off" required>`,
				`<button type="submit">Add</button>`,
				`</form>`,
			); err != nil {
				return err
			}
		}

		if err := writeAll(w,
			`<p>`, strconv.Itoa(len(movies)), ` Titles</p><ul class="movie-list">`,
		); err != nil {
			return err
		}

		for _, movie := range movies {
			id := strconv.FormatInt(movie.ID, 10)
			if err := writeAll(w,
				`<li><span class="movie-title">`, templ.EscapeString(movie.Title), `</span>`,
				` <span class="movie-year">`, templ.EscapeString(movie.Year), `</span>`,
			); err != nil {
				return err
			}
			if page.User != nil {
				if err := writeAll(w,
					` <a class="edit" href="/movie/edit/`, id, `">Edit</a>`,
					`<form class="inline-form" method="post" action="/movie/delete/`, id, `">`,
					`<button class="delete" type="submit">Delete</button>`,
					`</form>`,
				); err != nil {
					return err
				}
			}
			if err := writeAll(w, `</li>`); err != nil {
				return err
			}
		}

		return writeAll(w, `</ul>`)
	}))
}
