package mirror

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobboard/internal/db"
	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

// mockWriter implements Writer for tests.
type mockWriter struct {
	upsertJobFn func(ctx context.Context, j domjob.Job) error
	upsertAppFn func(ctx context.Context, a domapp.Application) error
	jobs        []int64
	visible     []int64
	apps        []int64
	events      *[]string
}

func (m *mockWriter) UpsertJob(ctx context.Context, j domjob.Job) error {
	m.jobs = append(m.jobs, j.ID)
	if m.upsertJobFn != nil {
		return m.upsertJobFn(ctx, j)
	}
	return nil
}

func (m *mockWriter) UpsertJobVisible(ctx context.Context, j domjob.Job) error {
	m.visible = append(m.visible, j.ID)
	if m.events != nil {
		*m.events = append(*m.events, "upsert-visible")
	}
	if m.upsertJobFn != nil {
		return m.upsertJobFn(ctx, j)
	}
	return nil
}

func (m *mockWriter) UpsertApplication(ctx context.Context, a domapp.Application) error {
	m.apps = append(m.apps, a.ID)
	if m.upsertAppFn != nil {
		return m.upsertAppFn(ctx, a)
	}
	return nil
}

type staticAvailability bool

func (a staticAvailability) Available() bool { return bool(a) }

type mockInvalidator struct {
	calls  int
	err    error
	events *[]string
}

func (m *mockInvalidator) Invalidate(context.Context) error {
	m.calls++
	if m.events != nil {
		*m.events = append(*m.events, "invalidate")
	}
	return m.err
}

func newTestService(t *testing.T, available bool) (*Service, *mockWriter) {
	t.Helper()
	w := &mockWriter{}
	return New(w, staticAvailability(available), zap.NewNop()), w
}

// laggingIndex models near-real-time search: plain upserts stay pending until
// the next refresh, upserts that wait for refresh are searchable at once.
type laggingIndex struct {
	mu      sync.Mutex
	pending map[int64]domjob.Job
	visible map[int64]domjob.Job
}

func newLaggingIndex() *laggingIndex {
	return &laggingIndex{pending: map[int64]domjob.Job{}, visible: map[int64]domjob.Job{}}
}

func (x *laggingIndex) UpsertJob(_ context.Context, j domjob.Job) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.pending[j.ID] = j
	return nil
}

func (x *laggingIndex) UpsertJobVisible(_ context.Context, j domjob.Job) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.visible[j.ID] = j
	return nil
}

func (x *laggingIndex) UpsertApplication(context.Context, domapp.Application) error { return nil }

func (x *laggingIndex) refresh() {
	x.mu.Lock()
	defer x.mu.Unlock()
	for id, j := range x.pending {
		x.visible[id] = j
	}
	x.pending = map[int64]domjob.Job{}
}

func (x *laggingIndex) SearchJobs(context.Context, query.JobFilter) ([]result.Job, error) {
	return nil, nil
}

func (x *laggingIndex) SearchJobsWithFacets(context.Context, query.FacetRequest) (result.FacetResult, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	res := result.FacetResult{Jobs: []result.Job{}, Facets: &result.Facets{}}
	for _, j := range x.visible {
		res.Jobs = append(res.Jobs, result.Job{ID: j.ID, Title: j.Title, Location: j.Location})
	}
	res.Total = int64(len(res.Jobs))
	return res, nil
}

// memKV is an in-memory key-value store for the facet cache.
type memKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *memKV) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memKV) IncrBy(_ context.Context, key string, val int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, _ := strconv.ParseInt(string(m.data[key]), 10, 64)
	m.data[key] = []byte(strconv.FormatInt(cur+val, 10))
	return nil
}
