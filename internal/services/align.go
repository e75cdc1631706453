package services

import (
	"co2-pax-compare/internal/domain"
	"fmt"
	"math"
	"strconv"
)

type AlignMode string

const (
	// Merge by explicit year key; emissions years outside the passenger years are ignored.
	AlignKeyed AlignMode = "keyed"
	// Drop fixed head/tail offsets from emissions, then zip by position with a per-row year check.
	AlignPositional AlignMode = "positional"
)

const (
	DefaultLeadingTrim  = 20
	DefaultTrailingTrim = 1

	mlnTonnesPerGigatonne = 1000.0
)

type AlignOptions struct {
	Mode         AlignMode
	LeadingTrim  int
	TrailingTrim int
}

func DefaultAlignOptions() AlignOptions {
	return AlignOptions{
		Mode:         AlignKeyed,
		LeadingTrim:  DefaultLeadingTrim,
		TrailingTrim: DefaultTrailingTrim,
	}
}

// ParseAlignMode validates a mode name; empty selects keyed.
func ParseAlignMode(s string) (AlignMode, error) {
	switch AlignMode(s) {
	case "", AlignKeyed:
		return AlignKeyed, nil
	case AlignPositional:
		return AlignPositional, nil
	default:
		return "", fmt.Errorf("unknown align mode %q (want %q or %q)", s, AlignKeyed, AlignPositional)
	}
}

// Align merges passenger and emission totals into one comparison table.
//
// The result has exactly one row per passenger entry, in passenger order. Emissions are
// converted from millions of tonnes to gigatonnes; both values are rounded to 3 places.
// Any year that cannot be matched fails with *domain.AlignmentError.
func Align(
	passengers domain.PassengerSeries,
	emissions domain.EmissionSeries,
	opts AlignOptions,
) (domain.ComparisonTable, error) {
	if len(passengers) == 0 || len(emissions) == 0 {
		return nil, &domain.AlignmentError{
			PassengerLen: len(passengers),
			EmissionLen:  len(emissions),
			Detail:       "both series must be non-empty",
		}
	}

	var (
		matched []float64
		err     error
	)
	switch opts.Mode {
	case AlignPositional:
		matched, err = matchPositional(passengers, emissions, opts.LeadingTrim, opts.TrailingTrim)
	case AlignKeyed, "":
		matched, err = matchKeyed(passengers, emissions)
	default:
		return nil, fmt.Errorf("align: unknown mode %q", opts.Mode)
	}
	if err != nil {
		return nil, err
	}

	table := make(domain.ComparisonTable, 0, len(passengers))
	for i, p := range passengers {
		label, err := domain.SanitizeYear(strconv.Itoa(p.Year))
		if err != nil {
			return nil, fmt.Errorf("align: year label: %w", err)
		}

		table = append(table, domain.ComparisonRow{
			Year: label,
			CO2:  round3(matched[i] / mlnTonnesPerGigatonne),
			PAX:  round3(p.TotalPassengers),
		})
	}

	return table, nil
}

// TrimEmissions drops leading entries from the head and trailing entries from the tail.
func TrimEmissions(emissions domain.EmissionSeries, leading, trailing int) (domain.EmissionSeries, error) {
	if leading < 0 || trailing < 0 {
		return nil, fmt.Errorf("trim emissions: offsets must be non-negative (leading=%d trailing=%d)", leading, trailing)
	}
	if leading+trailing > len(emissions) {
		return nil, &domain.AlignmentError{
			EmissionLen: len(emissions),
			Detail:      fmt.Sprintf("cannot trim %d leading and %d trailing entries", leading, trailing),
		}
	}
	return emissions[leading : len(emissions)-trailing], nil
}

func matchPositional(
	passengers domain.PassengerSeries,
	emissions domain.EmissionSeries,
	leading, trailing int,
) ([]float64, error) {
	trimmed, err := TrimEmissions(emissions, leading, trailing)
	if err != nil {
		return nil, err
	}

	if len(trimmed) != len(passengers) {
		return nil, &domain.AlignmentError{
			PassengerLen: len(passengers),
			EmissionLen:  len(trimmed),
			Detail:       "trimmed lengths differ",
		}
	}

	out := make([]float64, len(passengers))
	for i, p := range passengers {
		// Years must match row by row.
		if trimmed[i].Year != p.Year {
			return nil, &domain.AlignmentError{
				PassengerLen: len(passengers),
				EmissionLen:  len(trimmed),
				Detail:       fmt.Sprintf("row %d: passenger year %d != emissions year %d", i, p.Year, trimmed[i].Year),
			}
		}
		out[i] = trimmed[i].TotalEmissionsMlnTonnes
	}

	return out, nil
}

func matchKeyed(passengers domain.PassengerSeries, emissions domain.EmissionSeries) ([]float64, error) {
	byYear := make(map[int]float64, len(emissions))
	for _, e := range emissions {
		if _, ok := byYear[e.Year]; ok {
			return nil, &domain.AlignmentError{
				PassengerLen: len(passengers),
				EmissionLen:  len(emissions),
				Detail:       fmt.Sprintf("duplicate emissions year %d", e.Year),
			}
		}
		byYear[e.Year] = e.TotalEmissionsMlnTonnes
	}

	seen := make(map[int]struct{}, len(passengers))
	missing := make([]int, 0)
	out := make([]float64, len(passengers))
	for i, p := range passengers {
		if _, ok := seen[p.Year]; ok {
			return nil, &domain.AlignmentError{
				PassengerLen: len(passengers),
				EmissionLen:  len(emissions),
				Detail:       fmt.Sprintf("duplicate passenger year %d", p.Year),
			}
		}
		seen[p.Year] = struct{}{}

		v, ok := byYear[p.Year]
		if !ok {
			missing = append(missing, p.Year)
			continue
		}
		out[i] = v
	}

	if len(missing) > 0 {
		return nil, &domain.AlignmentError{
			PassengerLen: len(passengers),
			EmissionLen:  len(emissions),
			Detail:       fmt.Sprintf("no emissions for years %v", missing),
		}
	}

	return out, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
