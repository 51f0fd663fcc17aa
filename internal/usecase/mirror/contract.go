package mirror

import (
	"context"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
)

// Writer upserts id-keyed search documents.
type Writer interface {
	UpsertJob(ctx context.Context, j domjob.Job) error
	// UpsertJobVisible returns once the job is searchable.
	UpsertJobVisible(ctx context.Context, j domjob.Job) error
	UpsertApplication(ctx context.Context, a domapp.Application) error
}

// Availability reports the latched search index availability.
type Availability interface {
	Available() bool
}

// CacheInvalidator drops cached faceted search pages.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}
