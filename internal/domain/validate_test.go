package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ChocoChu32/watchlist/internal/domain"
)

func TestValidateMovieFields(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		year      string
		wantTitle string
		wantYear  string
		wantErr   bool
	}{
		{"valid", "Test Movie Title", "2019", "Test Movie Title", "2019", false},
		{"trims whitespace", "  Interstellar  ", " 2014 ", "Interstellar", "2014", false},
		{"empty title", "", "2019", "", "", true},
		{"whitespace-only title", "   ", "2019", "", "", true},
		{"title at limit", strings.Repeat("a", 60), "2019", strings.Repeat("a", 60), "2019", false},
		{"title over limit", strings.Repeat("a", 61), "2019", "", "", true},
		{"multibyte title counts runes", strings.Repeat("影", 60), "1994", strings.Repeat("影", 60), "1994", false},
		{"empty year", "Movie", "", "", "", true},
		{"year too short", "Movie", "19", "", "", true},
		{"year too long", "Movie", "19999", "", "", true},
		{"year 0001 passes", "Movie", "0001", "Movie", "0001", false},
		{"year 9999 passes", "Movie", "9999", "Movie", "9999", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			title, year, err := domain.ValidateMovieFields(tc.title, tc.year)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateMovieFields: %v", err)
			}
			if title != tc.wantTitle || year != tc.wantYear {
				t.Fatalf("got (%q, %q), want (%q, %q)", title, year, tc.wantTitle, tc.wantYear)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "Choco Chu", "Choco Chu", false},
		{"trims whitespace", "  Test  ", "Test", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"at limit", strings.Repeat("n", 20), strings.Repeat("n", 20), false},
		{"over limit", strings.Repeat("n", 21), "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.ValidateName(tc.input)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateName: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
