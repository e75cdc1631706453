package cache

import (
	"co2-pax-compare/internal/platform/obs"
	"co2-pax-compare/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLResourceCache is a Postgres-backed cache for fetched resource bodies, keyed by URL.
type SQLResourceCache struct {
	DB  *sql.DB
	Now func() time.Time
}

func NewSQLResourceCache(db *sql.DB) *SQLResourceCache {
	return &SQLResourceCache{DB: db, Now: time.Now}
}

func (s *SQLResourceCache) Get(ctx context.Context, url string) (_ ports.CachedResource, _ bool, err error) {
	defer obs.Time(ctx, "resource.cache.Get")(&err)

	if s.DB == nil {
		return ports.CachedResource{}, false, errors.New("resource cache: db is nil")
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return ports.CachedResource{}, false, errors.New("get resource cache: url must not be empty")
	}

	q := `
	SELECT body, fetched_at
	FROM resource_cache
	WHERE url = $1;
	`

	var (
		body      []byte
		fetchedAt int64
	)
	err = s.DB.QueryRowContext(ctx, q, url).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.CachedResource{}, false, nil
	}
	if err != nil {
		return ports.CachedResource{}, false, fmt.Errorf("get resource cache: query resource_cache table: %w", err)
	}

	return ports.CachedResource{Body: body, FetchedAt: time.Unix(fetchedAt, 0).UTC()}, true, nil
}

func (s *SQLResourceCache) Put(ctx context.Context, url string, body []byte) (err error) {
	defer obs.Time(ctx, "resource.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("resource cache: db is nil")
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New("insert resource cache: url must not be empty")
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert resource cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
	INSERT INTO resource_cache (url, body, fetched_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (url) DO UPDATE
	SET body = EXCLUDED.body,
		fetched_at = EXCLUDED.fetched_at;
	`, url, body, now().Unix())
	if err != nil {
		return fmt.Errorf("insert resource cache url=%q: %w", url, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert resource cache commit: %w", err)
	}

	return nil
}
