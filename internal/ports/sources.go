package ports

import (
	"co2-pax-compare/internal/domain"
	"context"
)

// Port: a boundary for loading the raw passenger table.
// Implementations must strip any header row before returning.
type PassengerSource interface {
	LoadPassengers(ctx context.Context) ([]domain.RawPassengerRecord, error)
}

// Port: a boundary for loading the raw emissions table.
// Remote implementations bound the call by a timeout and report failures as *domain.FetchError.
type EmissionSource interface {
	LoadEmissions(ctx context.Context) ([]domain.RawEmissionRecord, error)
}
