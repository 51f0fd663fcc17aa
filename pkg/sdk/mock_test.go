package jobboard

import (
	"context"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
	applicationuc "github.com/kailas-cloud/jobboard/internal/usecase/application"
	healthuc "github.com/kailas-cloud/jobboard/internal/usecase/health"
	jobuc "github.com/kailas-cloud/jobboard/internal/usecase/job"
	reindexuc "github.com/kailas-cloud/jobboard/internal/usecase/reindex"
)

// --- jobUseCase mock ---

type mockJobUC struct {
	createFn func(ctx context.Context, title, description, location string) (domjob.Job, error)
	getFn    func(ctx context.Context, id int64) (jobuc.Detail, error)
	listFn   func(ctx context.Context, keyword, location string) ([]domjob.Job, error)
}

func (m *mockJobUC) Create(ctx context.Context, title, description, location string) (domjob.Job, error) {
	return m.createFn(ctx, title, description, location)
}

func (m *mockJobUC) Get(ctx context.Context, id int64) (jobuc.Detail, error) {
	return m.getFn(ctx, id)
}

func (m *mockJobUC) List(ctx context.Context, keyword, location string) ([]domjob.Job, error) {
	return m.listFn(ctx, keyword, location)
}

// --- applicationUseCase mock ---

type mockApplicationUC struct {
	applyFn func(ctx context.Context, jobID int64, name, email, resumeURL string) (domapp.Application, error)
	listFn  func(ctx context.Context, jobID *int64, page, limit int) (applicationuc.Listing, error)
}

func (m *mockApplicationUC) Apply(
	ctx context.Context, jobID int64, name, email, resumeURL string,
) (domapp.Application, error) {
	return m.applyFn(ctx, jobID, name, email, resumeURL)
}

func (m *mockApplicationUC) List(
	ctx context.Context, jobID *int64, page, limit int,
) (applicationuc.Listing, error) {
	return m.listFn(ctx, jobID, page, limit)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, req query.FacetRequest) result.FacetResult
}

func (m *mockSearchUC) Page(number, size int) query.Page { return query.NewPage(number, size) }

func (m *mockSearchUC) SearchWithFacets(ctx context.Context, req query.FacetRequest) result.FacetResult {
	return m.searchFn(ctx, req)
}

// --- reindexUseCase mock ---

type mockReindexUC struct {
	report reindexuc.Report
}

func (m *mockReindexUC) ReindexAllJobs(context.Context) reindexuc.Report { return m.report }

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }
