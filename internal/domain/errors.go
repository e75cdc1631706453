package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by errors.Is against the concrete error kinds below.
var (
	ErrParse     = errors.New("parse error")
	ErrSchema    = errors.New("schema error")
	ErrAlignment = errors.New("alignment error")
	ErrFetch     = errors.New("fetch error")
)

// ParseError reports a numeric or year field that could not be parsed.
type ParseError struct {
	Field string
	Value string
	Row   int
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s=%q", e.Field, e.Value)
	if e.Row > 0 {
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error        { return e.Err }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// SchemaError reports an expected column or measure code missing from a source.
type SchemaError struct {
	Source  string
	Missing []string
	Detail  string
}

func (e *SchemaError) Error() string {
	msg := "schema " + e.Source
	if len(e.Missing) > 0 {
		msg += ": missing " + strings.Join(e.Missing, ", ")
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// AlignmentError reports series that cannot be merged year for year.
type AlignmentError struct {
	PassengerLen int
	EmissionLen  int
	Detail       string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf(
		"align series: passengers=%d emissions=%d: %s",
		e.PassengerLen, e.EmissionLen, e.Detail,
	)
}

func (e *AlignmentError) Is(target error) bool { return target == ErrAlignment }

// FetchError reports a failed load of the remote resource.
// It is recoverable: the Loader may retry before surfacing it.
type FetchError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (attempts=%d): %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error        { return e.Err }
func (e *FetchError) Is(target error) bool { return target == ErrFetch }
