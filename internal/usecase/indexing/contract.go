package indexing

import (
	"context"

	"github.com/kailas-cloud/jobboard/internal/usecase/reindex"
)

// Prober pings the search index once and latches availability.
type Prober interface {
	Probe(ctx context.Context) bool
}

// SchemaEnsurer creates the fixed indices when absent.
type SchemaEnsurer interface {
	EnsureAll(ctx context.Context) error
}

// Reindexer rebuilds the jobs index from the relational store.
type Reindexer interface {
	ReindexAllJobs(ctx context.Context) reindex.Report
}
