package source

import (
	"co2-pax-compare/internal/domain"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const passengerFields = 4

// Columns the emissions normalizer reads; the remaining columns are optional.
var requiredEmissionColumns = []string{"LOCATION", "MEASURE", "TIME", "Value"}

// DecodePassengers reads Year,Total,Domestic,International rows.
// A leading header row (first field without digits, e.g. "Year") is dropped.
func DecodePassengers(r io.Reader) ([]domain.RawPassengerRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	out := make([]domain.RawPassengerRecord, 0, 64)
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode passengers: %w", err)
		}
		line++

		if line == 1 {
			rec[0] = strings.TrimPrefix(rec[0], "\ufeff")
			if isHeader(rec[0]) {
				continue
			}
		}

		if len(rec) < passengerFields {
			return nil, &domain.SchemaError{
				Source: "passengers",
				Detail: fmt.Sprintf("line %d has %d fields, want %d", line, len(rec), passengerFields),
			}
		}

		out = append(out, domain.RawPassengerRecord{
			Year:          strings.TrimSpace(rec[0]),
			Total:         strings.TrimSpace(rec[1]),
			Domestic:      strings.TrimSpace(rec[2]),
			International: strings.TrimSpace(rec[3]),
		})
	}

	return out, nil
}

func isHeader(first string) bool {
	_, err := domain.SanitizeYear(first)
	return err != nil
}

// DecodeEmissions reads the emissions table by header name so column order does not matter.
// Missing required columns fail with *domain.SchemaError.
func DecodeEmissions(r io.Reader) ([]domain.RawEmissionRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.SchemaError{Source: "emissions", Detail: "empty resource"}
	}
	if err != nil {
		return nil, fmt.Errorf("decode emissions: read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		idx[h] = i
	}

	missing := make([]string, 0)
	for _, c := range requiredEmissionColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{Source: "emissions", Missing: missing}
	}

	field := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	out := make([]domain.RawEmissionRecord, 0, 1024)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode emissions: %w", err)
		}

		out = append(out, domain.RawEmissionRecord{
			Location:  field(rec, "LOCATION"),
			Indicator: field(rec, "INDICATOR"),
			Subject:   field(rec, "SUBJECT"),
			Measure:   field(rec, "MEASURE"),
			Frequency: field(rec, "FREQUENCY"),
			Time:      field(rec, "TIME"),
			Value:     field(rec, "Value"),
			FlagCodes: field(rec, "Flag Codes"),
		})
	}

	return out, nil
}
