package domain

import (
	"errors"
	"strconv"
	"strings"
)

var errNoDigits = errors.New("no digits")

// SanitizeYear reduces a year label to its first run of ASCII digits, dropping
// footnote markers ("2019*" -> "2019") and float suffixes ("1980.0" -> "1980").
// It is idempotent.
func SanitizeYear(raw string) (string, error) {
	start := strings.IndexFunc(raw, isDigit)
	if start < 0 {
		return "", &ParseError{Field: "year", Value: raw, Err: errNoDigits}
	}
	rest := raw[start:]
	if end := strings.IndexFunc(rest, func(r rune) bool { return !isDigit(r) }); end >= 0 {
		rest = rest[:end]
	}
	return rest, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// ParseYear sanitizes raw and returns it as an integer year.
func ParseYear(raw string) (int, error) {
	clean, err := SanitizeYear(raw)
	if err != nil {
		return 0, err
	}
	y, err := strconv.Atoi(clean)
	if err != nil {
		return 0, &ParseError{Field: "year", Value: raw, Err: err}
	}
	return y, nil
}
