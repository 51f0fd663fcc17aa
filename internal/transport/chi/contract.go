package chi

import (
	"context"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
	applicationuc "github.com/kailas-cloud/jobboard/internal/usecase/application"
	healthuc "github.com/kailas-cloud/jobboard/internal/usecase/health"
	jobuc "github.com/kailas-cloud/jobboard/internal/usecase/job"
)

// JobService creates and reads jobs.
type JobService interface {
	Create(ctx context.Context, title, description, location string) (domjob.Job, error)
	Get(ctx context.Context, id int64) (jobuc.Detail, error)
	List(ctx context.Context, keyword, location string) ([]domjob.Job, error)
}

// ApplicationService accepts and lists applications.
type ApplicationService interface {
	Apply(ctx context.Context, jobID int64, applicantName, email, resumeURL string) (domapp.Application, error)
	List(ctx context.Context, jobID *int64, page, limit int) (applicationuc.Listing, error)
}

// SearchService runs faceted job search.
type SearchService interface {
	Page(number, size int) query.Page
	SearchWithFacets(ctx context.Context, req query.FacetRequest) result.FacetResult
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}
