package config

import (
	"co2-pax-compare/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PASSENGERS_PATH", "EMISSIONS_URL", "EMISSIONS_PATH", "FETCH_TIMEOUT", "FETCH_MAX_ATTEMPTS",
	"CACHE_DRIVER", "CACHE_DB_PATH", "DATABASE_URL", "CACHE_MAX_AGE", "MEASURE_CODE",
	"AGGREGATE_REGIONS", "ALIGN_MODE", "LEADING_TRIM", "TRAILING_TRIM", "OUTPUT_FORMAT",
	"OUTPUT_PATH", "PORT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultPassengersPath, cfg.PassengersPath)
	assert.Equal(t, DefaultEmissionsURL, cfg.EmissionsURL)
	assert.Empty(t, cfg.EmissionsPath)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 4, cfg.FetchMaxAttempts)
	assert.Empty(t, cfg.CacheDriver)
	assert.Equal(t, 24*time.Hour, cfg.CacheMaxAge)
	assert.Equal(t, "MLN_TONNE", cfg.MeasureCode)
	assert.Equal(t, domain.DefaultAggregateRegions, cfg.AggregateRegions)
	assert.Equal(t, "keyed", cfg.AlignMode)
	assert.Equal(t, 20, cfg.LeadingTrim)
	assert.Equal(t, 1, cfg.TrailingTrim)
	assert.Equal(t, "html", cfg.OutputFormat)
	assert.Equal(t, "8080", cfg.Port)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("CACHE_DRIVER", "SQLite")
	t.Setenv("AGGREGATE_REGIONS", "G20, OECD ,")
	t.Setenv("ALIGN_MODE", "positional")
	t.Setenv("LEADING_TRIM", "10")
	t.Setenv("OUTPUT_FORMAT", "csv")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "sqlite", cfg.CacheDriver)
	assert.Equal(t, domain.RegionDenylist{"G20", "OECD"}, cfg.AggregateRegions)
	assert.Equal(t, "positional", cfg.AlignMode)
	assert.Equal(t, 10, cfg.LeadingTrim)
	assert.Equal(t, "csv", cfg.OutputFormat)
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"FETCH_TIMEOUT", "soon"},
		{"FETCH_TIMEOUT", "-1s"},
		{"FETCH_MAX_ATTEMPTS", "0"},
		{"LEADING_TRIM", "twenty"},
		{"TRAILING_TRIM", "-1"},
		{"LEADING_TRIM", "-5"},
		{"AGGREGATE_REGIONS", ","},
		{"AGGREGATE_REGIONS", " , ,"},
		{"ALIGN_MODE", "zip"},
		{"OUTPUT_FORMAT", "png"},
		{"CACHE_DRIVER", "redis"},
		{"PORT", "http"},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := FromEnv()
			assert.ErrorContains(t, err, tc.key)
		})
	}
}

func TestFromEnvAcceptsZeroTrims(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEADING_TRIM", "0")
	t.Setenv("TRAILING_TRIM", "0")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.LeadingTrim)
	assert.Equal(t, 0, cfg.TrailingTrim)
}

func TestValidateRejectsEmptyAggregateRegions(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)

	cfg.AggregateRegions = nil
	assert.ErrorContains(t, cfg.Validate(), "AGGREGATE_REGIONS")
}

func TestFromEnvPostgresRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_DRIVER", "postgres")

	_, err := FromEnv()
	require.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/paxco2")
	_, err = FromEnv()
	assert.NoError(t, err)
}

func TestGetFallback(t *testing.T) {
	t.Setenv("PAXCO2_TEST_KEY", "  ")
	assert.Equal(t, "fallback", Get("PAXCO2_TEST_KEY", "fallback"))

	t.Setenv("PAXCO2_TEST_KEY", "value")
	assert.Equal(t, "value", Get("PAXCO2_TEST_KEY", "fallback"))
}
