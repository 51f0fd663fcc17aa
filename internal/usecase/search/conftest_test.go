package search

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	searchFn     func(ctx context.Context, f query.JobFilter) ([]result.Job, error)
	facetFn      func(ctx context.Context, req query.FacetRequest) (result.FacetResult, error)
	calls        int
	lastFacetReq query.FacetRequest
}

func (m *mockRepo) SearchJobs(ctx context.Context, f query.JobFilter) ([]result.Job, error) {
	m.calls++
	if m.searchFn != nil {
		return m.searchFn(ctx, f)
	}
	return []result.Job{}, nil
}

func (m *mockRepo) SearchJobsWithFacets(ctx context.Context, req query.FacetRequest) (result.FacetResult, error) {
	m.calls++
	m.lastFacetReq = req
	if m.facetFn != nil {
		return m.facetFn(ctx, req)
	}
	return result.FacetResult{Jobs: []result.Job{}, Facets: &result.Facets{}}, nil
}

type staticAvailability bool

func (a staticAvailability) Available() bool { return bool(a) }

func newTestService(t *testing.T, available bool) (*Service, *mockRepo) {
	t.Helper()
	repo := &mockRepo{}
	return New(repo, staticAvailability(available), zap.NewNop()), repo
}

func jobsN(n int) []result.Job {
	out := make([]result.Job, n)
	for i := range out {
		out[i] = result.Job{ID: int64(i + 1)}
	}
	return out
}
