package db

import (
	"context"
	"time"
)

// Pinger checks backend connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides simple key-value operations for caches.
type KVStore interface {
	Pinger
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	IncrBy(ctx context.Context, key string, val int64) error
	Close()
}

// IndexManager provides search index lifecycle operations.
type IndexManager interface {
	IndexExists(ctx context.Context, name string) (bool, error)
	CreateIndex(ctx context.Context, name string, mapping *Mapping) error
}

// DocumentWriter upserts documents by id.
type DocumentWriter interface {
	Upsert(ctx context.Context, index, id string, body []byte) error
	UpsertVisible(ctx context.Context, index, id string, body []byte) error
	Refresh(ctx context.Context, index string) error
}

// Searcher runs raw search requests and returns the raw response body.
type Searcher interface {
	Search(ctx context.Context, index string, body []byte) ([]byte, error)
}

// SearchIndex is the facade implemented by the search engine client.
type SearchIndex interface {
	Pinger
	IndexManager
	DocumentWriter
	Searcher
	Probe(ctx context.Context) bool
	Available() bool
}
