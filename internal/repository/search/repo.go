package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

// store is the consumer interface for search operations (ISP).
type store interface {
	Search(ctx context.Context, index string, body []byte) ([]byte, error)
}

// Repo executes job queries and reshapes engine responses.
type Repo struct {
	store store
	index string
}

// New creates a search repository over the jobs index.
func New(s store, jobsIndex string) *Repo {
	return &Repo{store: s, index: jobsIndex}
}

// SearchJobs runs the plain keyword/location query and returns the hits in engine order.
func (r *Repo) SearchJobs(ctx context.Context, f query.JobFilter) ([]result.Job, error) {
	resp, err := r.execute(ctx, query.SimpleJobQuery(f))
	if err != nil {
		return nil, err
	}
	return resp.jobs(), nil
}

// SearchJobsWithFacets runs the faceted query. Facets come from aggregations on the
// same filtered query, so counts describe the filtered result set.
func (r *Repo) SearchJobsWithFacets(ctx context.Context, req query.FacetRequest) (result.FacetResult, error) {
	resp, err := r.execute(ctx, query.FacetJobQuery(req))
	if err != nil {
		return result.FacetResult{}, err
	}
	return result.FacetResult{
		Jobs:  resp.jobs(),
		Total: resp.total(),
		Facets: &result.Facets{
			Locations:     resp.buckets(query.AggLocations, false),
			CreationDates: resp.buckets(query.AggCreationDates, true),
		},
	}, nil
}

func (r *Repo) execute(ctx context.Context, b *query.Builder) (*response, error) {
	body, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	raw, err := r.store.Search(ctx, r.index, body)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", r.index, err)
	}

	resp, err := parseResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}
	return resp, nil
}
