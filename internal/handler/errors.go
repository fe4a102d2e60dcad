package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ChocoChu32/watchlist/internal/domain"
	"github.com/ChocoChu32/watchlist/internal/view"
)

// pages holds what every handler needs to render a page: the owner lookup for
// the layout title. It is embedded in the concrete handlers.
type pages struct {
	users domain.UserRepository
}

// data assembles the layout inputs for the current request: the owner of the
// list, the authenticated user if any, and a consumed flash message.
func (p pages) data(w http.ResponseWriter, r *http.Request) view.Page {
	return view.Page{
		Owner: p.owner(r.Context()),
		User:  UserFromContext(r.Context()),
		Flash: popFlash(w, r),
	}
}

// owner loads the account whose watchlist is displayed. Pages still render
// if no account has been provisioned yet.
func (p pages) owner(ctx context.Context) *domain.User {
	owner, err := p.users.First(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Error("load owner account", "error", err)
		}
		return nil
	}
	return owner
}

func (p pages) notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	page := view.Page{Owner: p.owner(r.Context()), User: UserFromContext(r.Context())}
	if err := view.NotFoundPage(page).Render(r.Context(), w); err != nil {
		slog.Error("render 404 page", "error", err)
	}
}

func (p pages) serverError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	page := view.Page{Owner: p.owner(r.Context()), User: UserFromContext(r.Context())}
	if err := view.ServerErrorPage(page).Render(r.Context(), w); err != nil {
		slog.Error("render 500 page", "error", err)
	}
}
