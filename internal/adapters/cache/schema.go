package cache

import (
	"co2-pax-compare/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case DialectSQLite:
		return DialectSQLite, nil
	case DialectPostgres, "postgresql", "pgx":
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("unknown cache dialect %q", s)
	}
}

// Initialize the resource cache schema.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var blob string
	switch dialect {
	case DialectSQLite:
		blob = "BLOB"
	case DialectPostgres:
		blob = "BYTEA"
	default:
		return fmt.Errorf("init schema: unknown dialect %q", dialect)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createResourceCacheQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS resource_cache (
		url TEXT PRIMARY KEY,
		body %s NOT NULL,
		fetched_at BIGINT NOT NULL
	);
	`, blob)

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_resource_cache_fetched_at
	ON resource_cache(fetched_at);
	`

	statements := []string{
		createResourceCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedFromFile stores a local snapshot of a remote resource under its URL,
// so later runs can load it without network access.
func SeedFromFile(ctx context.Context, c ports.ResourceCache, url, path string) error {
	if c == nil {
		return errors.New("seed cache: cache is nil")
	}
	if strings.TrimSpace(url) == "" {
		return errors.New("seed cache: url must not be empty")
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed cache: read %q: %w", path, err)
	}
	if len(body) == 0 {
		return fmt.Errorf("seed cache: %q is empty", path)
	}

	if err := c.Put(ctx, url, body); err != nil {
		return fmt.Errorf("seed cache: %w", err)
	}

	return nil
}
