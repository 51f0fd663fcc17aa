package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kailas-cloud/jobboard/internal/db"
	"github.com/kailas-cloud/jobboard/internal/domain"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
)

const (
	insertSQL = `INSERT INTO jobs (title, description, location)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, location, created_at, updated_at`

	selectByIDSQL = `SELECT id, title, description, location, created_at, updated_at
		FROM jobs WHERE id = $1`

	selectAllSQL = `SELECT id, title, description, location, created_at, updated_at
		FROM jobs ORDER BY created_at DESC, id DESC`
)

// querier is the consumer interface over the pgx pool (ISP).
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repo implements the job store on Postgres.
type Repo struct {
	q querier
}

// New creates a job repository.
func New(q querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a job. The database assigns id and timestamps.
func (r *Repo) Create(ctx context.Context, d domjob.Draft) (domjob.Job, error) {
	row := r.q.QueryRow(ctx, insertSQL, d.Title(), d.Description(), d.Location())
	j, err := scanJob(row)
	if err != nil {
		return domjob.Job{}, fmt.Errorf("insert job: %w", &db.Error{Op: db.OpInsert, Err: err})
	}
	return j, nil
}

// FindByID returns the job with id or domain.ErrJobNotFound.
func (r *Repo) FindByID(ctx context.Context, id int64) (domjob.Job, error) {
	j, err := scanJob(r.q.QueryRow(ctx, selectByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domjob.Job{}, domain.ErrJobNotFound
		}
		return domjob.Job{}, fmt.Errorf("select job %d: %w", id, &db.Error{Op: db.OpSelect, Err: err})
	}
	return j, nil
}

// ListAll returns every job, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]domjob.Job, error) {
	rows, err := r.q.Query(ctx, selectAllSQL)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", &db.Error{Op: db.OpSelect, Err: err})
	}
	defer rows.Close()

	jobs := make([]domjob.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", &db.Error{Op: db.OpSelect, Err: err})
	}
	return jobs, nil
}

func scanJob(row pgx.Row) (domjob.Job, error) {
	var j domjob.Job
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Location, &j.CreatedAt, &j.UpdatedAt)
	return j, err
}
