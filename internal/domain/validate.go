package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field limits shared by every write path. Lengths are rune counts so
// multi-byte titles are not penalized.
const (
	MaxTitleLen = 60
	YearLen     = 4
	MaxNameLen  = 20
)

// ValidateMovieFields trims both form fields and checks them against the
// catalog constraints, returning the trimmed values. It is called before any
// insert or update so that no persisted movie can violate the limits.
func ValidateMovieFields(title, year string) (string, string, error) {
	title = strings.TrimSpace(title)
	year = strings.TrimSpace(year)

	if title == "" || utf8.RuneCountInString(title) > MaxTitleLen {
		return "", "", fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidInput, MaxTitleLen)
	}
	if utf8.RuneCountInString(year) != YearLen {
		return "", "", fmt.Errorf("%w: year must be exactly %d characters", ErrInvalidInput, YearLen)
	}
	return title, year, nil
}

// ValidateName trims and checks a display name, returning the trimmed value.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLen {
		return "", fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, MaxNameLen)
	}
	return name, nil
}
