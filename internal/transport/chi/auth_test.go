package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		method string
		path   string
		header string
		want   int
	}{
		{"no keys passes through", nil, "POST", "/jobs", "", http.StatusOK},
		{"empty string keys pass through", []string{"", ""}, "GET", "/applications", "", http.StatusOK},
		{"missing header", []string{"secret"}, "POST", "/jobs", "", http.StatusUnauthorized},
		{"basic scheme", []string{"secret"}, "GET", "/jobs", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"wrong key", []string{"secret"}, "GET", "/jobs/search", "Bearer wrong-key", http.StatusUnauthorized},
		{"valid key", []string{"secret"}, "POST", "/jobs/1/apply", "Bearer secret", http.StatusOK},
		{"second of two keys", []string{"key1", "key2"}, "GET", "/jobs", "Bearer key2", http.StatusOK},
		{"health exempt", []string{"secret"}, "GET", "/health", "", http.StatusOK},
		{"metrics exempt", []string{"secret"}, "GET", "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := BearerAuthMiddleware(tt.keys)(okHandler())

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Errorf("got %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestAuthMiddleware_ErrorBody(t *testing.T) {
	handler := BearerAuthMiddleware([]string{"secret"})(okHandler())

	req := httptest.NewRequest("GET", "/jobs", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != ErrorCodeUnauthorized {
		t.Errorf("error code: got %s, want %s", errResp.Code, ErrorCodeUnauthorized)
	}
	if errResp.Message != "missing authorization header" {
		t.Errorf("unexpected message %q", errResp.Message)
	}
}
