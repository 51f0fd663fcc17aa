package searchcache

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobboard/internal/db"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

type mockSearcher struct {
	res        result.FacetResult
	err        error
	facetCalls int
	plainCalls int
}

func (m *mockSearcher) SearchJobs(context.Context, query.JobFilter) ([]result.Job, error) {
	m.plainCalls++
	return m.res.Jobs, m.err
}

func (m *mockSearcher) SearchJobsWithFacets(context.Context, query.FacetRequest) (result.FacetResult, error) {
	m.facetCalls++
	return m.res, m.err
}

// memStore is an in-memory KV implementing the consumer interface.
type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memStore) IncrBy(_ context.Context, key string, val int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, _ := strconv.ParseInt(string(m.data[key]), 10, 64)
	m.data[key] = []byte(strconv.FormatInt(cur+val, 10))
	return nil
}

func newTestCache(t *testing.T, inner *mockSearcher) (*Cached, *memStore) {
	t.Helper()
	ms := newMemStore()
	return New(inner, ms, 0, nil, zap.NewNop()), ms
}

func sampleResult() result.FacetResult {
	score := 1.5
	return result.FacetResult{
		Jobs: []result.Job{{ID: 1, Title: "Go Engineer", Location: "Remote", Score: &score}},
		Facets: &result.Facets{
			Locations:     []result.Bucket{{Value: "Remote", Count: 1}},
			CreationDates: []result.Bucket{{Value: "2024-03", Count: 1}},
		},
		Total: 1,
	}
}
