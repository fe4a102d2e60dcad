package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NotFoundPage renders the 404 error page.
func NotFoundPage(page Page) templ.Component {
	return errorPage(page, "404 - Not Found")
}

// BadRequestPage renders the 400 error page.
func BadRequestPage(page Page) templ.Component {
	return errorPage(page, "400 - Bad Request")
}

// ServerErrorPage renders the 500 error page.
func ServerErrorPage(page Page) templ.Component {
	return errorPage(page, "500 - Internal Server Error")
}

func errorPage(page Page, heading string) templ.Component {
	return layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w,
			`<h3>`, templ.EscapeString(heading), `</h3>`,
			`<p><a href="/">Go back home</a></p>`,
		)
	}))
}
