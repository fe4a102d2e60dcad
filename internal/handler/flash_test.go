package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlashRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	setFlash(w, flashSuccess, msgCreated)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != flashCookie {
		t.Fatalf("expected one flash cookie, got %v", cookies)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()

	flash := popFlash(w2, r)
	if flash == nil {
		t.Fatal("expected a flash message")
	}
	if flash.Kind != flashSuccess || flash.Text != msgCreated {
		t.Fatalf("unexpected flash: %+v", flash)
	}
}

func TestPopFlashClearsCookie(t *testing.T) {
	w := httptest.NewRecorder()
	setFlash(w, flashError, msgInvalidInput)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(w.Result().Cookies()[0])
	w2 := httptest.NewRecorder()
	popFlash(w2, r)

	// Popping must expire the cookie so the message renders at most once.
	var cleared bool
	for _, c := range w2.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected flash cookie to be expired after pop")
	}
}

func TestPopFlashNoCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if flash := popFlash(httptest.NewRecorder(), r); flash != nil {
		t.Fatalf("expected nil flash, got %+v", flash)
	}
}

func TestPopFlashGarbageValue(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: flashCookie, Value: "not-base64-@@@"})
	if flash := popFlash(httptest.NewRecorder(), r); flash != nil {
		t.Fatalf("expected nil flash for garbage cookie, got %+v", flash)
	}
}

func TestFlashTextsAreDistinct(t *testing.T) {
	texts := []string{
		msgInvalidInput, msgLoginOK, msgBadCredentials,
		msgCreated, msgUpdated, msgDeleted, msgNameUpdated, msgGoodbye,
	}
	seen := make(map[string]bool)
	for _, text := range texts {
		if seen[text] {
			t.Fatalf("duplicate outcome text %q", text)
		}
		seen[text] = true
	}
}
