package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ChocoChu32/watchlist/internal/domain"
	"github.com/ChocoChu32/watchlist/internal/service"
	"github.com/ChocoChu32/watchlist/internal/view"
)

// MovieHandler handles the index page and movie mutations.
type MovieHandler struct {
	pages
	catalog *service.CatalogService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(catalog *service.CatalogService, users domain.UserRepository) *MovieHandler {
	return &MovieHandler{pages: pages{users: users}, catalog: catalog}
}

// HandleIndex renders the movie list. Anyone may read it; the owner's
// controls only render when a session is active.
// GET /
func (h *MovieHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	movies, err := h.catalog.List(r.Context())
	if err != nil {
		slog.Error("list movies", "error", err)
		h.serverError(w, r)
		return
	}

	if err := view.IndexPage(h.data(w, r), movies).Render(r.Context(), w); err != nil {
		slog.Error("render index page", "error", err)
	}
}

// HandleCreate appends a new movie to the catalog.
// POST /
func (h *MovieHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, err := h.catalog.Create(r.Context(), r.FormValue("title"), r.FormValue("year"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			setFlash(w, flashError, msgInvalidInput)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		slog.Error("create movie", "error", err)
		h.serverError(w, r)
		return
	}

	setFlash(w, flashSuccess, msgCreated)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleEditForm renders the edit page for one movie.
// GET /movie/edit/{id}
func (h *MovieHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	movie, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(w, r)
			return
		}
		slog.Error("get movie for edit", "error", err)
		h.serverError(w, r)
		return
	}

	if err := view.EditPage(h.data(w, r), movie).Render(r.Context(), w); err != nil {
		slog.Error("render edit page", "error", err)
	}
}

// HandleEditSubmit replaces both fields of a movie.
// POST /movie/edit/{id}
func (h *MovieHandler) HandleEditSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	_, err := h.catalog.Update(r.Context(), id, r.FormValue("title"), r.FormValue("year"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.notFound(w, r)
		case errors.Is(err, domain.ErrInvalidInput):
			setFlash(w, flashError, msgInvalidInput)
			http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
		default:
			slog.Error("update movie", "error", err)
			h.serverError(w, r)
		}
		return
	}

	setFlash(w, flashSuccess, msgUpdated)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleDelete removes a movie from the catalog.
// POST /movie/delete/{id}
func (h *MovieHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(w, r)
			return
		}
		slog.Error("delete movie", "error", err)
		h.serverError(w, r)
		return
	}

	setFlash(w, flashSuccess, msgDeleted)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleNotFound renders the 404 page for unmatched paths.
func (h *MovieHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}

// movieID parses the {id} path segment, rendering the 404 page on garbage.
func (h *MovieHandler) movieID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		h.notFound(w, r)
		return 0, false
	}
	return id, true
}
