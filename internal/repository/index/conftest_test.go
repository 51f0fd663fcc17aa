package index

import (
	"context"
	"testing"

	"github.com/kailas-cloud/jobboard/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	indexExistsFn func(ctx context.Context, name string) (bool, error)
	createIndexFn func(ctx context.Context, name string, mapping *db.Mapping) error
	created       []string
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, name string, mapping *db.Mapping) error {
	m.created = append(m.created, name)
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, name, mapping)
	}
	return nil
}

func newTestManager(t *testing.T) (*Manager, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, Names{}, nil), ms
}
