package cache

import (
	"co2-pax-compare/internal/platform/db"
	"co2-pax-compare/internal/ports"
	"database/sql"
	"errors"
	"fmt"
)

// Store is an opened cache database with its schema initialized.
type Store struct {
	DB      *sql.DB
	Dialect Dialect
	Cache   ports.ResourceCache
}

type OpenConfig struct {
	// "sqlite" or "postgres".
	Driver      string
	SQLitePath  string
	DatabaseURL string
}

// Open connects to the configured cache database and ensures the schema exists.
func Open(cfg OpenConfig) (*Store, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	var conn *sql.DB
	switch dialect {
	case DialectSQLite:
		conn, err = db.OpenSQLite(cfg.SQLitePath)
	case DialectPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("open cache: DATABASE_URL is required for postgres")
		}
		conn, err = db.Open(cfg.DatabaseURL)
	}
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	if err := InitSchema(conn, dialect); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open cache: %w", err)
	}

	s := &Store{DB: conn, Dialect: dialect}
	if dialect == DialectPostgres {
		s.Cache = NewSQLResourceCache(conn)
	} else {
		s.Cache = NewSqliteResourceCache(conn)
	}
	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
