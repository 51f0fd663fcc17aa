package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobboard/internal/db/elastic"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchFn func(ctx context.Context, index string, body []byte) ([]byte, error)
	lastBody []byte
}

func (m *mockStore) Search(ctx context.Context, index string, body []byte) ([]byte, error) {
	m.lastBody = body
	if m.searchFn != nil {
		return m.searchFn(ctx, index, body)
	}
	return []byte(`{}`), nil
}

func newTestRepo(t *testing.T, response string) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{searchFn: func(context.Context, string, []byte) ([]byte, error) {
		return []byte(response), nil
	}}
	return New(ms, "jobs"), ms
}

// newFakeEngine starts an httptest server that answers ping and returns response for
// every _search call. The received search body is sent to bodies.
func newFakeEngine(t *testing.T, response string, bodies chan<- []byte) *elastic.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/" {
			_, _ = w.Write([]byte(`{"version":{"number":"8.17.0"}}`))
			return
		}
		if bodies != nil {
			bodies <- body
		}
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	c, err := elastic.New(elastic.Config{
		Addrs:          []string{srv.URL},
		RequestTimeout: 2 * time.Second,
	}, zap.NewNop())
	require.NoError(t, err)
	require.True(t, c.Probe(context.Background()))
	return c
}

const facetResponse = `{
  "took": 3,
  "hits": {
    "total": {"value": 3, "relation": "eq"},
    "max_score": 2.4,
    "hits": [
      {"_index":"jobs","_id":"3","_score":2.4,"_source":{"id":3,"title":"Senior Go Engineer","description":"Go services","location":"Remote","createdAt":"2024-03-03T00:00:00Z","updatedAt":"2024-03-03T00:00:00Z"}},
      {"_index":"jobs","_id":"1","_score":1.1,"_source":{"id":1,"title":"Engineer","description":"Go tooling","location":"Remote","createdAt":"2024-02-01T00:00:00Z","updatedAt":"2024-02-01T00:00:00Z"}}
    ]
  },
  "aggregations": {
    "locations": {"doc_count_error_upper_bound":0,"sum_other_doc_count":0,"buckets":[{"key":"Remote","doc_count":2},{"key":"Berlin","doc_count":1}]},
    "creation_dates": {"buckets":[{"key_as_string":"2024-02","key":1706745600000,"doc_count":1},{"key_as_string":"2024-03","key":1709251200000,"doc_count":2}]}
  }
}`
