package source

import (
	"co2-pax-compare/internal/domain"
	"context"
	"errors"
	"fmt"
	"os"
)

// Local delimited passenger file.
type PassengerFile struct {
	Path string
}

func NewPassengerFile(path string) *PassengerFile {
	return &PassengerFile{Path: path}
}

func (f *PassengerFile) LoadPassengers(ctx context.Context) ([]domain.RawPassengerRecord, error) {
	if f.Path == "" {
		return nil, errors.New("load passengers: path must not be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("load passengers: open %q: %w", f.Path, err)
	}
	defer fh.Close()

	recs, err := DecodePassengers(fh)
	if err != nil {
		return nil, fmt.Errorf("load passengers %q: %w", f.Path, err)
	}
	return recs, nil
}

// Local snapshot of the emissions resource, used instead of the network when configured.
type EmissionFile struct {
	Path string
}

func NewEmissionFile(path string) *EmissionFile {
	return &EmissionFile{Path: path}
}

func (f *EmissionFile) LoadEmissions(ctx context.Context) ([]domain.RawEmissionRecord, error) {
	if f.Path == "" {
		return nil, errors.New("load emissions: path must not be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("load emissions: open %q: %w", f.Path, err)
	}
	defer fh.Close()

	recs, err := DecodeEmissions(fh)
	if err != nil {
		return nil, fmt.Errorf("load emissions %q: %w", f.Path, err)
	}
	return recs, nil
}
