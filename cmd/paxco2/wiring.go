package main

import (
	"co2-pax-compare/internal/adapters/cache"
	"co2-pax-compare/internal/adapters/source"
	"co2-pax-compare/internal/config"
	"co2-pax-compare/internal/ports"
	"co2-pax-compare/internal/services"
	"log"
)

// buildPipeline wires the configured sources into a pipeline.
// cleanup releases the cache database, if one was opened.
func buildPipeline(cfg config.Config) (_ *services.Pipeline, cleanup func(), err error) {
	cleanup = func() {}

	mode, err := services.ParseAlignMode(cfg.AlignMode)
	if err != nil {
		return nil, cleanup, err
	}

	emissions, cleanup, err := emissionSource(cfg)
	if err != nil {
		return nil, cleanup, err
	}

	p := services.NewPipeline(source.NewPassengerFile(cfg.PassengersPath), emissions)
	p.Emission = services.EmissionOptions{
		Measure:        cfg.MeasureCode,
		ExcludeRegions: cfg.AggregateRegions,
	}
	p.Align = services.AlignOptions{
		Mode:         mode,
		LeadingTrim:  cfg.LeadingTrim,
		TrailingTrim: cfg.TrailingTrim,
	}

	return p, cleanup, nil
}

func emissionSource(cfg config.Config) (ports.EmissionSource, func(), error) {
	noop := func() {}

	if cfg.EmissionsPath != "" {
		log.Printf("emissions source=file path=%s", cfg.EmissionsPath)
		return source.NewEmissionFile(cfg.EmissionsPath), noop, nil
	}

	var (
		rc      ports.ResourceCache
		cleanup = noop
	)
	if cfg.CacheDriver != "" {
		store, err := cache.Open(cache.OpenConfig{
			Driver:      cfg.CacheDriver,
			SQLitePath:  cfg.CacheDBPath,
			DatabaseURL: cfg.DatabaseURL,
		})
		if err != nil {
			return nil, noop, err
		}
		rc = store.Cache
		cleanup = func() {
			if err := store.Close(); err != nil {
				log.Printf("close cache: %v", err)
			}
		}
	}

	src, err := source.NewHTTPEmissionSource(source.HTTPSourceConfig{
		URL:         cfg.EmissionsURL,
		Timeout:     cfg.FetchTimeout,
		MaxAttempts: cfg.FetchMaxAttempts,
		Cache:       rc,
		MaxAge:      cfg.CacheMaxAge,
	})
	if err != nil {
		cleanup()
		return nil, noop, err
	}

	log.Printf("emissions source=http url=%s cache=%s", cfg.EmissionsURL, cacheName(cfg.CacheDriver))
	return src, cleanup, nil
}

func cacheName(driver string) string {
	if driver == "" {
		return "none"
	}
	return driver
}
