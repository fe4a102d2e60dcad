// Package view renders the application's pages as templ components.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/ChocoChu32/watchlist/internal/domain"
)

// Flash is a one-shot message rendered under the page header. Kind selects
// the alert class, so success and error messages are distinguishable in the
// markup.
type Flash struct {
	Kind string // "success" or "error"
	Text string
}

// Page bundles what the layout needs: the owner whose list this is (for the
// page title), the authenticated user if any (for nav affordances), and a
// pending flash message.
type Page struct {
	Owner *domain.User
	User  *domain.User
	Flash *Flash
}

// Title returns the page heading, falling back when no owner is provisioned.
func (p Page) Title() string {
	if p.Owner != nil {
		return p.Owner.Name + "'s Watchlist"
	}
	return "Watchlist"
}

// layout wraps body in the HTML shell shared by every page.
func layout(page Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := templ.EscapeString(page.Title())
		if err := writeAll(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, title, `</title>`,
			`<link rel="stylesheet" href="/static/style.css">`,
			`</head><body>`,
			`<header><h2><a href="/">`, title, `</a></h2>`,
			`<nav><a href="/">Home</a>`,
		); err != nil {
			return err
		}
		if page.User != nil {
			if err := writeAll(w,
				`<a href="/settings">Settings</a>`,
				`<a href="/logout">Logout</a>`,
			); err != nil {
				return err
			}
		}
		if err := writeAll(w, `</nav></header>`); err != nil {
			return err
		}

		if page.Flash != nil {
			if err := writeAll(w,
				`<div class="alert alert-`, templ.EscapeString(page.Flash.Kind), `">`,
				templ.EscapeString(page.Flash.Text),
				`</div>`,
			); err != nil {
				return err
			}
		}

		if err := writeAll(w, `<main>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		return writeAll(w, `</main></body></html>`)
	})
}

func writeAll(w io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}
