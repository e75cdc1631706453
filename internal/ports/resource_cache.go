package ports

import (
	"context"
	"time"
)

// A cached copy of a fetched resource body.
type CachedResource struct {
	Body      []byte
	FetchedAt time.Time
}

// Contract for caching remote resource bodies keyed by URL.
type ResourceCache interface {
	// Return the cached body for url; ok is false on a miss.
	Get(ctx context.Context, url string) (res CachedResource, ok bool, err error)
	// Store body for url, replacing any previous entry.
	Put(ctx context.Context, url string, body []byte) error
}
