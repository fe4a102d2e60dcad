package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ChocoChu32/watchlist/internal/domain"
	"github.com/ChocoChu32/watchlist/internal/service"
	"github.com/ChocoChu32/watchlist/internal/view"
)

// SettingsHandler handles the owner's settings page. Only the display name is
// editable here; the username can only change through administrative
// re-provisioning.
type SettingsHandler struct {
	pages
	auth *service.AuthService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(auth *service.AuthService, users domain.UserRepository) *SettingsHandler {
	return &SettingsHandler{pages: pages{users: users}, auth: auth}
}

// HandleForm renders the settings page.
// GET /settings
func (h *SettingsHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	if err := view.SettingsPage(h.data(w, r)).Render(r.Context(), w); err != nil {
		slog.Error("render settings page", "error", err)
	}
}

// HandleSubmit updates the owner's display name.
// POST /settings
func (h *SettingsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.auth.Rename(r.Context(), user.ID, r.FormValue("name")); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			setFlash(w, flashError, msgInvalidInput)
			http.Redirect(w, r, "/settings", http.StatusSeeOther)
			return
		}
		slog.Error("rename owner", "error", err)
		h.serverError(w, r)
		return
	}

	setFlash(w, flashSuccess, msgNameUpdated)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
