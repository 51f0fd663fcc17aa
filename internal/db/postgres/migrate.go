package postgres

import (
	"context"
	_ "embed"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kailas-cloud/jobboard/internal/db"
)

//go:embed schema.sql
var schema string

// Execer runs a statement without returning rows.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Schema returns the embedded DDL.
func Schema() string { return schema }

// Migrate applies the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, e Execer) error {
	if _, err := e.Exec(ctx, schema); err != nil {
		return &db.Error{Op: db.OpMigrate, Err: err}
	}
	return nil
}
