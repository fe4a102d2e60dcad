package handler

import (
	"net/http"

	"github.com/ChocoChu32/watchlist/internal/domain"
	"github.com/ChocoChu32/watchlist/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Owner-only routes
// are wrapped in RequireOwner so the gate applies before any handler body,
// for GET and POST alike.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, catalog *service.CatalogService, users domain.UserRepository, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, users, cookieSecure)
	movies := NewMovieHandler(catalog, users)
	settings := NewSettingsHandler(auth, users)

	public := func(h http.HandlerFunc) http.Handler { return OptionalAuth(auth, h) }
	owner := func(h http.HandlerFunc) http.Handler { return RequireOwner(auth, h) }

	mux.Handle("GET /{$}", public(movies.HandleIndex))
	mux.Handle("POST /{$}", owner(movies.HandleCreate))

	mux.Handle("GET /login", public(authHandler.HandleLoginForm))
	mux.Handle("POST /login", public(authHandler.HandleLogin))
	mux.Handle("GET /logout", owner(authHandler.HandleLogout))

	mux.Handle("GET /movie/edit/{id}", owner(movies.HandleEditForm))
	mux.Handle("POST /movie/edit/{id}", owner(movies.HandleEditSubmit))
	mux.Handle("POST /movie/delete/{id}", owner(movies.HandleDelete))

	mux.Handle("GET /settings", owner(settings.HandleForm))
	mux.Handle("POST /settings", owner(settings.HandleSubmit))

	registerStatic(mux)

	// Everything else renders the 404 page.
	mux.Handle("/", public(movies.HandleNotFound))
}
