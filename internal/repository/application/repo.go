package application

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kailas-cloud/jobboard/internal/db"
	"github.com/kailas-cloud/jobboard/internal/db/postgres"
	"github.com/kailas-cloud/jobboard/internal/domain"
	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
)

const (
	insertSQL = `INSERT INTO applications (job_id, applicant_name, email, resume_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, job_id, applicant_name, email, resume_url, created_at, updated_at`

	// $1 is a nullable job id; NULL lists every application.
	countSQL = `SELECT count(*) FROM applications
		WHERE ($1::bigint IS NULL OR job_id = $1)`

	listSQL = `SELECT a.id, a.job_id, a.applicant_name, a.email, a.resume_url,
		       a.created_at, a.updated_at, j.id, j.title, j.location
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE ($1::bigint IS NULL OR a.job_id = $1)
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $2 OFFSET $3`

	listByJobSQL = `SELECT id, job_id, applicant_name, email, resume_url, created_at, updated_at
		FROM applications WHERE job_id = $1
		ORDER BY created_at DESC, id DESC`
)

// querier is the consumer interface over the pgx pool (ISP).
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repo implements the application store on Postgres.
type Repo struct {
	q querier
}

// New creates an application repository.
func New(q querier) *Repo {
	return &Repo{q: q}
}

// Create inserts an application. A dangling job_id maps to domain.ErrJobNotFound.
func (r *Repo) Create(ctx context.Context, d domapp.Draft) (domapp.Application, error) {
	row := r.q.QueryRow(ctx, insertSQL, d.JobID(), d.ApplicantName(), d.Email(), d.ResumeURL())
	a, err := scanApplication(row)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return domapp.Application{}, domain.ErrJobNotFound
		}
		return domapp.Application{}, fmt.Errorf("insert application: %w", &db.Error{Op: db.OpInsert, Err: err})
	}
	return a, nil
}

// List returns one page of applications, newest first, with the owning job
// summary attached, plus the total matching count. A nil jobID lists all.
func (r *Repo) List(ctx context.Context, jobID *int64, limit, offset int) ([]domapp.Application, int, error) {
	var total int64
	if err := r.q.QueryRow(ctx, countSQL, jobID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", &db.Error{Op: db.OpSelect, Err: err})
	}

	rows, err := r.q.Query(ctx, listSQL, jobID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", &db.Error{Op: db.OpSelect, Err: err})
	}
	defer rows.Close()

	apps := make([]domapp.Application, 0)
	for rows.Next() {
		var (
			a   domapp.Application
			sum domjob.Summary
		)
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantName, &a.Email, &a.ResumeURL,
			&a.CreatedAt, &a.UpdatedAt, &sum.ID, &sum.Title, &sum.Location,
		); err != nil {
			return nil, 0, fmt.Errorf("scan application: %w", err)
		}
		a.Job = &sum
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", &db.Error{Op: db.OpSelect, Err: err})
	}
	return apps, int(total), nil
}

// ListByJob returns all applications for one job, newest first.
func (r *Repo) ListByJob(ctx context.Context, jobID int64) ([]domapp.Application, error) {
	rows, err := r.q.Query(ctx, listByJobSQL, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications for job %d: %w", jobID, &db.Error{Op: db.OpSelect, Err: err})
	}
	defer rows.Close()

	apps := make([]domapp.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list applications for job %d: %w", jobID, &db.Error{Op: db.OpSelect, Err: err})
	}
	return apps, nil
}

func scanApplication(row pgx.Row) (domapp.Application, error) {
	var a domapp.Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantName, &a.Email, &a.ResumeURL, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
