package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindsMatchSentinels(t *testing.T) {
	cause := errors.New("boom")

	cases := []struct {
		err    error
		target error
	}{
		{&ParseError{Field: "total", Value: "x", Row: 3, Err: cause}, ErrParse},
		{&SchemaError{Source: "emissions", Missing: []string{"MLN_TONNE"}}, ErrSchema},
		{&AlignmentError{PassengerLen: 2, EmissionLen: 3, Detail: "length mismatch"}, ErrAlignment},
		{&FetchError{URL: "http://x", Attempts: 4, Err: cause}, ErrFetch},
	}

	for _, c := range cases {
		wrapped := fmt.Errorf("pipeline: %w", c.err)
		if !errors.Is(wrapped, c.target) {
			t.Errorf("errors.Is(%v, %v) = false", wrapped, c.target)
		}
	}

	fe := &FetchError{URL: "http://x", Err: cause}
	if !errors.Is(fe, cause) {
		t.Errorf("FetchError does not unwrap to its cause")
	}
}
