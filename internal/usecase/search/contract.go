package search

import (
	"context"

	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

// Repository executes planned job queries against the search index.
type Repository interface {
	SearchJobs(ctx context.Context, f query.JobFilter) ([]result.Job, error)
	SearchJobsWithFacets(ctx context.Context, req query.FacetRequest) (result.FacetResult, error)
}

// Availability reports the latched search index availability.
type Availability interface {
	Available() bool
}
