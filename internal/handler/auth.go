package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ChocoChu32/watchlist/internal/domain"
	"github.com/ChocoChu32/watchlist/internal/service"
	"github.com/ChocoChu32/watchlist/internal/view"
)

// AuthHandler handles login, logout, and the session cookie.
type AuthHandler struct {
	pages
	auth         *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, users domain.UserRepository, cookieSecure bool) *AuthHandler {
	return &AuthHandler{pages: pages{users: users}, auth: auth, cookieSecure: cookieSecure}
}

// HandleLoginForm renders the login page.
// GET /login
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	if UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := view.LoginPage(h.data(w, r)).Render(r.Context(), w); err != nil {
		slog.Error("render login page", "error", err)
	}
}

// HandleLogin verifies the submitted credentials and establishes a session.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	token, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			setFlash(w, flashError, msgInvalidInput)
		case errors.Is(err, domain.ErrUnauthorized):
			setFlash(w, flashError, msgBadCredentials)
		default:
			slog.Error("login", "error", err)
			h.serverError(w, r)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours, matching the token expiry
	})

	setFlash(w, flashSuccess, msgLoginOK)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout destroys the session unconditionally.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	setFlash(w, flashSuccess, msgGoodbye)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
