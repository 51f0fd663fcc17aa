package reindex

import (
	"context"

	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
)

// JobLister reads every job from the relational store.
type JobLister interface {
	ListAll(ctx context.Context) ([]domjob.Job, error)
}

// JobIndexer writes job documents and makes them visible.
type JobIndexer interface {
	UpsertJob(ctx context.Context, j domjob.Job) error
	RefreshJobs(ctx context.Context) error
}

// Availability reports the latched search index availability.
type Availability interface {
	Available() bool
}
