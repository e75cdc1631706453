package services

import (
	"co2-pax-compare/internal/adapters/source"
	"co2-pax-compare/internal/domain"
	"context"
	"errors"
	"strconv"
	"testing"
)

func scenarioEmissions() []domain.RawEmissionRecord {
	out := make([]domain.RawEmissionRecord, 0)
	for y := 1960; y <= 1982; y++ {
		year := strconv.Itoa(y)
		usa, fra := "1", "1"
		switch y {
		case 1980:
			usa, fra = "15000", "5000"
		case 1981:
			usa, fra = "16000", "6000"
		}
		out = append(out,
			em("USA", "MLN_TONNE", year, usa),
			em("FRA", "MLN_TONNE", year, fra),
			em("USA", "TONNE_CAP", year, "20"),
			em("G20", "MLN_TONNE", year, "99999"),
		)
	}
	return out
}

func TestPipelineRun(t *testing.T) {
	pax := &source.StaticPassengerSource{Records: []domain.RawPassengerRecord{
		{Year: "1980", Total: "100.0", Domestic: "60", International: "40"},
		{Year: "1981*", Total: "110.0", Domestic: "66", International: "44"},
	}}
	ems := &source.StaticEmissionSource{Records: scenarioEmissions()}

	want := domain.ComparisonTable{
		{Year: "1980", CO2: 20.0, PAX: 100.0},
		{Year: "1981", CO2: 22.0, PAX: 110.0},
	}

	for _, mode := range []AlignMode{AlignKeyed, AlignPositional} {
		p := NewPipeline(pax, ems)
		p.Align.Mode = mode

		got, err := p.Run(context.Background())
		if err != nil {
			t.Fatalf("%s: Run: %v", mode, err)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: len = %d, want %d", mode, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: row %d = %+v, want %+v", mode, i, got[i], want[i])
			}
		}
	}
}

func TestPipelineRunPropagatesLoadError(t *testing.T) {
	fetchErr := &domain.FetchError{URL: "http://example.invalid", Attempts: 4, Err: errors.New("boom")}
	p := NewPipeline(
		&source.StaticPassengerSource{Records: []domain.RawPassengerRecord{{Year: "1980", Total: "1"}}},
		&source.StaticEmissionSource{Err: fetchErr},
	)

	_, err := p.Run(context.Background())
	if !errors.Is(err, domain.ErrFetch) {
		t.Fatalf("err = %v, want ErrFetch", err)
	}
}

func TestPipelineRunAbortsOnSchemaError(t *testing.T) {
	p := NewPipeline(
		&source.StaticPassengerSource{Records: []domain.RawPassengerRecord{{Year: "1980", Total: "1"}}},
		&source.StaticEmissionSource{Records: []domain.RawEmissionRecord{em("USA", "TONNE_CAP", "1980", "1")}},
	)

	_, err := p.Run(context.Background())
	if !errors.Is(err, domain.ErrSchema) {
		t.Fatalf("err = %v, want ErrSchema", err)
	}
}

func TestPipelineRequiresSources(t *testing.T) {
	if _, err := (&Pipeline{}).Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing sources")
	}
}
