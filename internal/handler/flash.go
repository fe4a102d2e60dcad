package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/ChocoChu32/watchlist/internal/view"
)

// The feedback channel: one short-lived cookie holding a single kind|text
// message, set by a write operation and consumed by the next rendered page.

const flashCookie = "flash"

// Flash kinds. Error covers validation and credential failures; success
// covers completed mutations. Pages render them with distinct alert classes.
const (
	flashSuccess = "success"
	flashError   = "error"
)

// The user-visible outcome strings. Each outcome class keeps its own distinct
// text.
const (
	msgInvalidInput   = "Invalid input."
	msgLoginOK        = "Login success."
	msgBadCredentials = "Username or password incorrect."
	msgCreated        = "Item created."
	msgUpdated        = "Item updated."
	msgDeleted        = "Item deleted."
	msgNameUpdated    = "Settings updated."
	msgGoodbye        = "Goodbye."
)

// setFlash queues a message for the next rendered page. The value is
// base64-encoded so arbitrary text survives cookie encoding rules.
func setFlash(w http.ResponseWriter, kind, text string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.URLEncoding.EncodeToString([]byte(kind + "|" + text)),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// popFlash returns the pending flash message, if any, and clears the cookie
// so the message renders at most once.
func popFlash(w http.ResponseWriter, r *http.Request) *view.Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	kind, text, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &view.Flash{Kind: kind, Text: text}
}
