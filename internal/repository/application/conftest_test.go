package application

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kailas-cloud/jobboard/internal/db/postgres/postgrestest"
	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
)

var testTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// mockQuerier implements the consumer interface for tests.
type mockQuerier struct {
	queryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	queryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if m.queryRowFn != nil {
		return m.queryRowFn(ctx, sql, args...)
	}
	return postgrestest.Row{Err: pgx.ErrNoRows}
}

func (m *mockQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if m.queryFn != nil {
		return m.queryFn(ctx, sql, args...)
	}
	return postgrestest.NewRows(), nil
}

func newTestRepo(t *testing.T) (*Repo, *mockQuerier) {
	t.Helper()
	mq := &mockQuerier{}
	return New(mq), mq
}

func testDraft(t *testing.T, jobID int64) domapp.Draft {
	t.Helper()
	d, err := domapp.NewDraft(jobID, "Ada Lovelace", "ada@example.com", "https://example.com/ada.pdf")
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	return d
}

func appRow(id, jobID int64, name string) []any {
	return []any{id, jobID, name, "a@example.com", "https://example.com/cv.pdf", testTime, testTime}
}
