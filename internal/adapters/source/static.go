package source

import (
	"co2-pax-compare/internal/domain"
	"context"
)

// In-memory passenger source for tests and fixtures.
type StaticPassengerSource struct {
	Records []domain.RawPassengerRecord
	Err     error
}

func (s *StaticPassengerSource) LoadPassengers(ctx context.Context) ([]domain.RawPassengerRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records, nil
}

type StaticEmissionSource struct {
	Records []domain.RawEmissionRecord
	Err     error
}

func (s *StaticEmissionSource) LoadEmissions(ctx context.Context) ([]domain.RawEmissionRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records, nil
}
