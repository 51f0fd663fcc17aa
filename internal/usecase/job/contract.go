package job

import (
	"context"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/mirror"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

// Repository defines the relational storage contract for jobs.
type Repository interface {
	Create(ctx context.Context, d domjob.Draft) (domjob.Job, error)
	FindByID(ctx context.Context, id int64) (domjob.Job, error)
	ListAll(ctx context.Context) ([]domjob.Job, error)
}

// ApplicationLister reads the applications attached to a job.
type ApplicationLister interface {
	ListByJob(ctx context.Context, jobID int64) ([]domapp.Application, error)
}

// Mirror replicates a committed job into the search index.
type Mirror interface {
	MirrorJob(ctx context.Context, j domjob.Job) mirror.Outcome
}

// Searcher runs the plain job search with the degraded-empty policy.
type Searcher interface {
	Search(ctx context.Context, keyword, location string) []result.Job
}
