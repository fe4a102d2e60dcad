package view

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ChocoChu32/watchlist/internal/domain"
)

// LoginPage renders the login form.
func LoginPage(page Page) templ.Component {
	return layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w,
			`<h3>Login</h3>`,
			`<form class="login-form" method="post" action="/login">`,
			`<label>Username <input type="text" name="username" autocomplete="username"></label>`,
			`<label>Password <input type="password" name="password" autocomplete="current-password"></label>`,
			`<button type="submit">Login</button>`,
			`</form>`,
		)
	}))
}

// EditPage renders the edit form prefilled with the movie's current fields.
func EditPage(page Page, movie *domain.Movie) templ.Component {
	return layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w,
			`<h3>Edit item</h3>`,
			`<form class="movie-form" method="post" action="/movie/edit/`, strconv.FormatInt(movie.ID, 10), `">`,
			`<label>Title <input type="text" name="title" value="`, templ.EscapeString(movie.Title), `"></label>`,
			`<label>Year <input type="text" name="year" value="`, templ.EscapeString(movie.Year), `"></label>`,
			`<button type="submit">Update</button>`,
			`</form>`,
		)
	}))
}

// SettingsPage renders the owner's settings form.
func SettingsPage(page Page) templ.Component {
	return layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := ""
		if page.User != nil {
			name = page.User.Name
		}
		return writeAll(w,
			`<h3>Settings</h3>`,
			`<form class="settings-form" method="post" action="/settings">`,
			`<label>Your name <input type="text" name="name" value="`, templ.EscapeString(name), `"></label>`,
			`<button type="submit">Save</button>`,
			`</form>`,
		)
	}))
}
