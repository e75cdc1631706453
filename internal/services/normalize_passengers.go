package services

import (
	"co2-pax-compare/internal/domain"
	"errors"
	"math"
	"strconv"
	"strings"
)

// NormalizePassengers narrows raw passenger rows to (year, total).
//
// Domestic and International are discarded. Row order is preserved and not re-sorted.
// Any unparseable year or total fails the whole call; rows are never dropped silently.
func NormalizePassengers(records []domain.RawPassengerRecord) (domain.PassengerSeries, error) {
	if len(records) == 0 {
		return nil, &domain.SchemaError{Source: "passengers", Detail: "no rows"}
	}

	out := make(domain.PassengerSeries, 0, len(records))
	for i, r := range records {
		year, err := domain.ParseYear(r.Year)
		if err != nil {
			var pe *domain.ParseError
			if errors.As(err, &pe) {
				pe.Row = i + 1
			}
			return nil, err
		}

		total, err := parseDecimal(r.Total)
		if err != nil {
			return nil, &domain.ParseError{Field: "Total", Value: r.Total, Row: i + 1, Err: err}
		}

		out = append(out, domain.PassengerPoint{Year: year, TotalPassengers: total})
	}

	return out, nil
}

var errNotFinite = errors.New("not a finite number")

// parseDecimal accepts plain decimal text; NaN and infinities are rejected.
func parseDecimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}
