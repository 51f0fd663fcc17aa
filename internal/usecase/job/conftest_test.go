package job

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/kailas-cloud/jobboard/internal/domain"
	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/mirror"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

var testTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// memRepo is an in-memory Repository.
type memRepo struct {
	mu        sync.Mutex
	jobs      map[int64]domjob.Job
	nextID    int64
	createErr error
	listErr   error
	listCalls int
}

func newMemRepo() *memRepo {
	return &memRepo{jobs: map[int64]domjob.Job{}}
}

func (m *memRepo) Create(_ context.Context, d domjob.Draft) (domjob.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return domjob.Job{}, m.createErr
	}
	m.nextID++
	j := domjob.Job{
		ID: m.nextID, Title: d.Title(), Description: d.Description(), Location: d.Location(),
		CreatedAt: testTime, UpdatedAt: testTime,
	}
	m.jobs[j.ID] = j
	return j, nil
}

func (m *memRepo) FindByID(_ context.Context, id int64) (domjob.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return domjob.Job{}, domain.ErrJobNotFound
	}
	return j, nil
}

func (m *memRepo) ListAll(context.Context) ([]domjob.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domjob.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID > out[k].ID })
	return out, nil
}

type mockApps struct {
	apps []domapp.Application
	err  error
}

func (m *mockApps) ListByJob(context.Context, int64) ([]domapp.Application, error) {
	return m.apps, m.err
}

type recordingMirror struct {
	jobs []int64
}

func (m *recordingMirror) MirrorJob(_ context.Context, j domjob.Job) mirror.Outcome {
	m.jobs = append(m.jobs, j.ID)
	return mirror.Success(mirror.KindJob, j.ID)
}

type mockSearcher struct {
	hits    []result.Job
	calls   int
	lastKw  string
	lastLoc string
}

func (m *mockSearcher) Search(_ context.Context, keyword, location string) []result.Job {
	m.calls++
	m.lastKw, m.lastLoc = keyword, location
	return m.hits
}

func newTestService(t *testing.T) (*Service, *memRepo, *recordingMirror, *mockSearcher) {
	t.Helper()
	repo, m, s := newMemRepo(), &recordingMirror{}, &mockSearcher{hits: []result.Job{}}
	return New(repo, &mockApps{}, m, s), repo, m, s
}

// memIndex is a tiny in-memory search index: it stores mirrored job documents
// and answers faceted queries with exact location filtering.
type memIndex struct {
	mu   sync.Mutex
	docs map[int64]domjob.Job
}

func newMemIndex() *memIndex { return &memIndex{docs: map[int64]domjob.Job{}} }

func (x *memIndex) Available() bool { return true }

func (x *memIndex) UpsertJob(_ context.Context, j domjob.Job) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.docs[j.ID] = j
	return nil
}

func (x *memIndex) UpsertJobVisible(ctx context.Context, j domjob.Job) error {
	return x.UpsertJob(ctx, j)
}

func (x *memIndex) UpsertApplication(context.Context, domapp.Application) error { return nil }

func (x *memIndex) SearchJobs(_ context.Context, f query.JobFilter) ([]result.Job, error) {
	res, err := x.SearchJobsWithFacets(context.Background(), query.FacetRequest{Location: f.Location})
	return res.Jobs, err
}

func (x *memIndex) SearchJobsWithFacets(_ context.Context, req query.FacetRequest) (result.FacetResult, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	counts := map[string]int64{}
	res := result.FacetResult{Jobs: []result.Job{}, Facets: &result.Facets{CreationDates: []result.Bucket{}}}
	for _, j := range x.docs {
		if req.Location != "" && j.Location != req.Location {
			continue
		}
		res.Jobs = append(res.Jobs, result.Job{ID: j.ID, Title: j.Title, Location: j.Location, CreatedAt: j.CreatedAt})
		counts[j.Location]++
	}
	res.Total = int64(len(res.Jobs))
	for loc, n := range counts {
		res.Facets.Locations = append(res.Facets.Locations, result.Bucket{Value: loc, Count: n})
	}
	return res, nil
}
