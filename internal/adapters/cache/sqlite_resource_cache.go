package cache

import (
	"co2-pax-compare/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLite backed cache for fetched resource bodies, keyed by URL.
type SqliteResourceCache struct {
	DB  *sql.DB
	Now func() time.Time
}

func NewSqliteResourceCache(db *sql.DB) *SqliteResourceCache {
	return &SqliteResourceCache{DB: db, Now: time.Now}
}

// Fetch the cached body for url; ok is false on a miss.
func (s *SqliteResourceCache) Get(ctx context.Context, url string) (ports.CachedResource, bool, error) {
	if s.DB == nil {
		return ports.CachedResource{}, false, errors.New("resource cache: db is nil")
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return ports.CachedResource{}, false, errors.New("get resource cache: url must not be empty")
	}

	q := `
	SELECT
		body,
		fetched_at
	FROM resource_cache
	WHERE url = ?;
	`

	var (
		body      []byte
		fetchedAt int64
	)
	err := s.DB.QueryRowContext(ctx, q, url).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.CachedResource{}, false, nil
	}
	if err != nil {
		return ports.CachedResource{}, false, fmt.Errorf("get resource cache: query resource_cache table: %w", err)
	}

	return ports.CachedResource{Body: body, FetchedAt: time.Unix(fetchedAt, 0).UTC()}, true, nil
}

// Store body for url, replacing any previous copy.
func (s *SqliteResourceCache) Put(ctx context.Context, url string, body []byte) error {
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

	_, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO resource_cache (
		url,
		body,
		fetched_at
	)
	VALUES (?, ?, ?);
	`, url, body, now().Unix())
	if err != nil {
		return fmt.Errorf("insert resource cache url=%q: %w", url, err)
	}

	return nil
}
