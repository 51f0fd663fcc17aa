package elastic

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// recordedRequest is one call observed by the fake cluster.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeCluster is an httptest-backed stand-in for the search engine.
type fakeCluster struct {
	mu       sync.Mutex
	requests []recordedRequest
	handle   func(w http.ResponseWriter, r *http.Request, body []byte)
	srv      *httptest.Server
}

func newFakeCluster(t *testing.T, handle func(w http.ResponseWriter, r *http.Request, body []byte)) *fakeCluster {
	t.Helper()
	fc := &fakeCluster{handle: handle}
	fc.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fc.mu.Lock()
		fc.requests = append(fc.requests, recordedRequest{
			Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body),
		})
		fc.mu.Unlock()

		// The client refuses responses without the product header.
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/" {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"version":{"number":"8.17.0"},"tagline":"You Know, for Search"}`))
			return
		}
		if fc.handle != nil {
			fc.handle(w, r, body)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(fc.srv.Close)
	return fc
}

func (fc *fakeCluster) recorded() []recordedRequest {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	out := make([]recordedRequest, len(fc.requests))
	copy(out, fc.requests)
	return out
}

// nonRootRequests filters out the ping/info calls.
func (fc *fakeCluster) nonRootRequests() []recordedRequest {
	var out []recordedRequest
	for _, r := range fc.recorded() {
		if r.Path != "/" {
			out = append(out, r)
		}
	}
	return out
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := New(Config{
		Addrs:          []string{url},
		RequestTimeout: 2 * time.Second,
		MaxRetries:     0,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// newAvailableClient returns a client with the availability latch set.
func newAvailableClient(t *testing.T, fc *fakeCluster) *Client {
	t.Helper()
	c := newTestClient(t, fc.srv.URL)
	c.available.Store(true)
	return c
}
