package document

import (
	"context"
	"testing"

	"github.com/kailas-cloud/jobboard/internal/repository/index"
)

type upsertCall struct {
	index string
	id    string
	body  []byte
	wait  bool
}

// mockStore implements the consumer interface for tests.
type mockStore struct {
	upsertFn  func(ctx context.Context, index, id string, body []byte) error
	refreshFn func(ctx context.Context, index string) error
	upserts   []upsertCall
	refreshed []string
}

func (m *mockStore) Upsert(ctx context.Context, idx, id string, body []byte) error {
	m.upserts = append(m.upserts, upsertCall{index: idx, id: id, body: body})
	if m.upsertFn != nil {
		return m.upsertFn(ctx, idx, id, body)
	}
	return nil
}

func (m *mockStore) UpsertVisible(ctx context.Context, idx, id string, body []byte) error {
	m.upserts = append(m.upserts, upsertCall{index: idx, id: id, body: body, wait: true})
	if m.upsertFn != nil {
		return m.upsertFn(ctx, idx, id, body)
	}
	return nil
}

func (m *mockStore) Refresh(ctx context.Context, idx string) error {
	m.refreshed = append(m.refreshed, idx)
	if m.refreshFn != nil {
		return m.refreshFn(ctx, idx)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, index.Names{}), ms
}
