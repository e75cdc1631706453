package services

import (
	"co2-pax-compare/internal/domain"
	"co2-pax-compare/internal/platform/obs"
	"co2-pax-compare/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
)

// Pipeline runs Loader -> {Passenger, Emissions} Normalizers -> Aligner once.
// Stages run sequentially; any failure aborts the run before anything is rendered.
type Pipeline struct {
	Passengers ports.PassengerSource
	Emissions  ports.EmissionSource
	Emission   EmissionOptions
	Align      AlignOptions
}

func NewPipeline(passengers ports.PassengerSource, emissions ports.EmissionSource) *Pipeline {
	return &Pipeline{
		Passengers: passengers,
		Emissions:  emissions,
		Emission:   DefaultEmissionOptions(),
		Align:      DefaultAlignOptions(),
	}
}

func (p *Pipeline) Run(ctx context.Context) (_ domain.ComparisonTable, err error) {
	defer obs.Time(ctx, "pipeline.Run")(&err)

	if p.Passengers == nil || p.Emissions == nil {
		return nil, errors.New("pipeline: passenger and emission sources are required")
	}

	rawPax, err := p.Passengers.LoadPassengers(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load passengers: %w", err)
	}

	rawEm, err := p.Emissions.LoadEmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load emissions: %w", err)
	}

	pax, err := p.normalizePassengers(ctx, rawPax)
	if err != nil {
		return nil, fmt.Errorf("pipeline: normalize passengers: %w", err)
	}
	logSpan("passengers", len(rawPax), pax.Years())

	em, err := p.normalizeEmissions(ctx, rawEm)
	if err != nil {
		return nil, fmt.Errorf("pipeline: normalize emissions: %w", err)
	}
	logSpan("emissions", len(rawEm), em.Years())

	table, err := p.align(ctx, pax, em)
	if err != nil {
		return nil, fmt.Errorf("pipeline: align: %w", err)
	}

	return table, nil
}

func (p *Pipeline) normalizePassengers(ctx context.Context, raw []domain.RawPassengerRecord) (_ domain.PassengerSeries, err error) {
	defer obs.Time(ctx, "normalize.passengers")(&err)
	return NormalizePassengers(raw)
}

func (p *Pipeline) normalizeEmissions(ctx context.Context, raw []domain.RawEmissionRecord) (_ domain.EmissionSeries, err error) {
	defer obs.Time(ctx, "normalize.emissions")(&err)
	return NormalizeEmissions(raw, p.Emission)
}

func (p *Pipeline) align(ctx context.Context, pax domain.PassengerSeries, em domain.EmissionSeries) (_ domain.ComparisonTable, err error) {
	defer obs.Time(ctx, "align."+string(p.Align.Mode))(&err)
	return Align(pax, em, p.Align)
}

func logSpan(name string, rawRows int, years []int) {
	if len(years) == 0 {
		log.Printf("series=%s raw_rows=%d years=0", name, rawRows)
		return
	}
	log.Printf("series=%s raw_rows=%d years=%d span=%d-%d", name, rawRows, len(years), years[0], years[len(years)-1])
}
