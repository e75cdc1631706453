package config

import (
	"co2-pax-compare/internal/domain"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPassengersPath = "data/Passengers.csv"
	DefaultEmissionsURL   = "https://raw.githubusercontent.com/FrostDan/UCD_Data_Course/master/Air%20Emissions%201960-2020.csv"
	DefaultCacheDBPath    = "data/cache.db"
)

type Config struct {
	PassengersPath string
	EmissionsURL   string
	// When set, emissions are read from this file and EmissionsURL is not fetched.
	EmissionsPath string

	FetchTimeout     time.Duration
	FetchMaxAttempts int

	// "sqlite", "postgres" or empty for no cache.
	CacheDriver string
	CacheDBPath string
	DatabaseURL string
	CacheMaxAge time.Duration

	MeasureCode      string
	AggregateRegions domain.RegionDenylist

	AlignMode    string
	LeadingTrim  int
	TrailingTrim int

	OutputFormat string
	OutputPath   string
	Port         string
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv loads .env into the process environment if present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Load reads the configuration from the environment (after .env) and validates it.
func Load() (Config, error) {
	LoadDotEnv()
	return FromEnv()
}

// FromEnv reads the configuration from the current environment only.
func FromEnv() (Config, error) {
	var errs []error

	cfg := Config{
		PassengersPath:   Get("PASSENGERS_PATH", DefaultPassengersPath),
		EmissionsURL:     Get("EMISSIONS_URL", DefaultEmissionsURL),
		EmissionsPath:    Get("EMISSIONS_PATH", ""),
		FetchTimeout:     duration("FETCH_TIMEOUT", 30*time.Second, &errs),
		FetchMaxAttempts: integer("FETCH_MAX_ATTEMPTS", 4, &errs),
		CacheDriver:      strings.ToLower(Get("CACHE_DRIVER", "")),
		CacheDBPath:      Get("CACHE_DB_PATH", DefaultCacheDBPath),
		DatabaseURL:      Get("DATABASE_URL", ""),
		CacheMaxAge:      duration("CACHE_MAX_AGE", 24*time.Hour, &errs),
		MeasureCode:      Get("MEASURE_CODE", "MLN_TONNE"),
		AggregateRegions: domain.DefaultAggregateRegions,
		AlignMode:        strings.ToLower(Get("ALIGN_MODE", "keyed")),
		LeadingTrim:      integer("LEADING_TRIM", 20, &errs),
		TrailingTrim:     integer("TRAILING_TRIM", 1, &errs),
		OutputFormat:     strings.ToLower(Get("OUTPUT_FORMAT", "html")),
		OutputPath:       Get("OUTPUT_PATH", ""),
		Port:             Get("PORT", "8080"),
	}

	if v := Get("AGGREGATE_REGIONS", ""); v != "" {
		cfg.AggregateRegions = domain.ParseRegionDenylist(v)
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Validate checks values that can be overridden after loading (e.g. by CLI flags).
func (c Config) Validate() error {
	var errs []error

	if c.PassengersPath == "" {
		errs = append(errs, errors.New("PASSENGERS_PATH must not be empty"))
	}
	if c.EmissionsPath == "" && c.EmissionsURL == "" {
		errs = append(errs, errors.New("one of EMISSIONS_URL or EMISSIONS_PATH is required"))
	}
	if c.FetchTimeout <= 0 {
		errs = append(errs, fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout))
	}
	if c.FetchMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("FETCH_MAX_ATTEMPTS must be at least 1, got %d", c.FetchMaxAttempts))
	}

	switch c.CacheDriver {
	case "", "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when CACHE_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("CACHE_DRIVER must be sqlite, postgres or empty, got %q", c.CacheDriver))
	}

	if c.MeasureCode == "" {
		errs = append(errs, errors.New("MEASURE_CODE must not be empty"))
	}
	if len(c.AggregateRegions) == 0 {
		errs = append(errs, errors.New("AGGREGATE_REGIONS must list at least one location code"))
	}

	switch c.AlignMode {
	case "keyed", "positional":
	default:
		errs = append(errs, fmt.Errorf("ALIGN_MODE must be keyed or positional, got %q", c.AlignMode))
	}
	if c.LeadingTrim < 0 || c.TrailingTrim < 0 {
		errs = append(errs, fmt.Errorf("LEADING_TRIM and TRAILING_TRIM must be non-negative, got %d/%d", c.LeadingTrim, c.TrailingTrim))
	}

	switch c.OutputFormat {
	case "html", "table", "text", "markdown", "md", "csv", "json":
	default:
		errs = append(errs, fmt.Errorf("OUTPUT_FORMAT %q is not supported", c.OutputFormat))
	}

	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be 1-65535, got %q", c.Port))
	}

	return errors.Join(errs...)
}

func duration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func integer(key string, fallback int, errs *[]error) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}
