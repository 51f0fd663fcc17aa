package reindex

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
)

type mockLister struct {
	jobs []domjob.Job
	err  error
}

func (m *mockLister) ListAll(context.Context) ([]domjob.Job, error) { return m.jobs, m.err }

// memIndex is an id-keyed in-memory index implementing JobIndexer.
type memIndex struct {
	mu         sync.Mutex
	docs       map[int64]domjob.Job
	writes     int
	refreshes  int
	failIDs    map[int64]error
	refreshErr error
}

func newMemIndex() *memIndex {
	return &memIndex{docs: map[int64]domjob.Job{}, failIDs: map[int64]error{}}
}

func (m *memIndex) UpsertJob(_ context.Context, j domjob.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if err := m.failIDs[j.ID]; err != nil {
		return err
	}
	m.docs[j.ID] = j
	return nil
}

func (m *memIndex) RefreshJobs(context.Context) error {
	m.refreshes++
	return m.refreshErr
}

type staticAvailability bool

func (a staticAvailability) Available() bool { return bool(a) }

func sampleJobs() []domjob.Job {
	return []domjob.Job{
		{ID: 3, Title: "C", Location: "Remote"},
		{ID: 2, Title: "B", Location: "Berlin"},
		{ID: 1, Title: "A", Location: "Remote"},
	}
}

func newTestService(t *testing.T, lister *mockLister, idx *memIndex, available bool) *Service {
	t.Helper()
	return New(lister, idx, staticAvailability(available), zap.NewNop())
}
