package chi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
	applicationuc "github.com/kailas-cloud/jobboard/internal/usecase/application"
	healthuc "github.com/kailas-cloud/jobboard/internal/usecase/health"
	jobuc "github.com/kailas-cloud/jobboard/internal/usecase/job"
)

type mockJobs struct {
	createFn func(ctx context.Context, title, description, location string) (domjob.Job, error)
	getFn    func(ctx context.Context, id int64) (jobuc.Detail, error)
	listFn   func(ctx context.Context, keyword, location string) ([]domjob.Job, error)
}

func (m *mockJobs) Create(ctx context.Context, title, description, location string) (domjob.Job, error) {
	return m.createFn(ctx, title, description, location)
}

func (m *mockJobs) Get(ctx context.Context, id int64) (jobuc.Detail, error) {
	return m.getFn(ctx, id)
}

func (m *mockJobs) List(ctx context.Context, keyword, location string) ([]domjob.Job, error) {
	return m.listFn(ctx, keyword, location)
}

type mockApplications struct {
	applyFn func(ctx context.Context, jobID int64, name, email, resumeURL string) (domapp.Application, error)
	listFn  func(ctx context.Context, jobID *int64, page, limit int) (applicationuc.Listing, error)
}

func (m *mockApplications) Apply(
	ctx context.Context, jobID int64, name, email, resumeURL string,
) (domapp.Application, error) {
	return m.applyFn(ctx, jobID, name, email, resumeURL)
}

func (m *mockApplications) List(
	ctx context.Context, jobID *int64, page, limit int,
) (applicationuc.Listing, error) {
	return m.listFn(ctx, jobID, page, limit)
}

type mockSearch struct {
	searchFn func(ctx context.Context, req query.FacetRequest) result.FacetResult
}

func (m *mockSearch) Page(number, size int) query.Page { return query.NewPage(number, size) }

func (m *mockSearch) SearchWithFacets(ctx context.Context, req query.FacetRequest) result.FacetResult {
	return m.searchFn(ctx, req)
}

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(context.Context) healthuc.Report { return m.report }

type fixture struct {
	jobs   *mockJobs
	apps   *mockApplications
	search *mockSearch
	health *mockHealth
}

func newFixture() *fixture {
	return &fixture{
		jobs:   &mockJobs{},
		apps:   &mockApplications{},
		search: &mockSearch{},
		health: &mockHealth{},
	}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	s := NewServer(f.jobs, f.apps, f.search, f.health, zap.NewNop())
	h := NewRouter(s, nil, zap.NewNop())

	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
