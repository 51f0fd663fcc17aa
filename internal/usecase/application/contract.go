package application

import (
	"context"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/mirror"
)

// Repository defines the relational storage contract for applications.
type Repository interface {
	Create(ctx context.Context, d domapp.Draft) (domapp.Application, error)
	List(ctx context.Context, jobID *int64, limit, offset int) ([]domapp.Application, int, error)
}

// JobFinder checks that an application target exists.
type JobFinder interface {
	FindByID(ctx context.Context, id int64) (domjob.Job, error)
}

// Mirror replicates a committed application into the search index.
type Mirror interface {
	MirrorApplication(ctx context.Context, a domapp.Application) mirror.Outcome
}
