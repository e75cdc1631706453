package source

import (
	"bytes"
	"co2-pax-compare/internal/domain"
	"co2-pax-compare/internal/platform/obs"
	"co2-pax-compare/internal/ports"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const defaultMaxBodyBytes = 64 << 20

type HTTPSourceConfig struct {
	URL         string
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration
	// Optional; nil disables caching.
	Cache ports.ResourceCache
	// Cached bodies older than MaxAge are refetched. Zero means cached bodies never expire.
	MaxAge time.Duration
	// Larger bodies fail the fetch. Zero means 64 MiB.
	MaxBodyBytes int64
}

// HTTPEmissionSource fetches the emissions table over HTTP.
//
// It coordinates:
//   - Persistent body caching keyed by URL
//   - A caller-supplied timeout bounding the whole load
//   - Retry with exponential backoff on transient failures
//
// Failures surface as *domain.FetchError.
type HTTPEmissionSource struct {
	session     *http.Client
	url         string
	timeout     time.Duration
	maxAttempts int
	backoff     time.Duration
	cache       ports.ResourceCache
	maxAge      time.Duration
	maxBody     int64
	now         func() time.Time
}

func NewHTTPEmissionSource(cfg HTTPSourceConfig) (*HTTPEmissionSource, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("emissions url is empty")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 4
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 200 * time.Millisecond
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}

	return &HTTPEmissionSource{
		session:     &http.Client{Timeout: cfg.Timeout},
		url:         cfg.URL,
		timeout:     cfg.Timeout,
		maxAttempts: cfg.MaxAttempts,
		backoff:     cfg.Backoff,
		cache:       cfg.Cache,
		maxAge:      cfg.MaxAge,
		maxBody:     cfg.MaxBodyBytes,
		now:         time.Now,
	}, nil
}

func (s *HTTPEmissionSource) LoadEmissions(ctx context.Context) (_ []domain.RawEmissionRecord, err error) {
	defer obs.Time(ctx, "emissions.http.Load")(&err)

	body, err := s.body(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := DecodeEmissions(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("load emissions %s: %w", s.url, err)
	}
	return recs, nil
}

// body returns a fresh cached copy when available, otherwise fetches and caches the resource.
func (s *HTTPEmissionSource) body(ctx context.Context) ([]byte, error) {
	if s.cache != nil {
		hit, ok, err := s.cache.Get(ctx, s.url)
		if err != nil {
			log.Printf("emissions cache read failed: url=%s err=%v", s.url, err)
		} else if ok && s.fresh(hit.FetchedAt) {
			log.Printf("emissions cache hit: url=%s fetched_at=%s", s.url, hit.FetchedAt.Format(time.RFC3339))
			return hit.Body, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, attempts, err := s.fetch(ctx)
	if err != nil {
		return nil, &domain.FetchError{URL: s.url, Attempts: attempts, Err: err}
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, s.url, body); err != nil {
			log.Printf("emissions cache write failed: url=%s err=%v", s.url, err)
		}
	}

	return body, nil
}

func (s *HTTPEmissionSource) fresh(fetchedAt time.Time) bool {
	if s.maxAge <= 0 {
		return true
	}
	return s.now().Sub(fetchedAt) <= s.maxAge
}

func (s *HTTPEmissionSource) fetch(ctx context.Context) ([]byte, int, error) {
	resp, attempts, err := s.doWithRetry(ctx, func() (*http.Request, error) {
		return s.newRequest(ctx)
	})
	if err != nil {
		return nil, attempts, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody+1))
	if err != nil {
		return nil, attempts, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > s.maxBody {
		return nil, attempts, fmt.Errorf("body exceeds %d bytes", s.maxBody)
	}
	if len(body) == 0 {
		return nil, attempts, errors.New("empty body")
	}
	return body, attempts, nil
}
