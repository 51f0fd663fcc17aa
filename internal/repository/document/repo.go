package document

import (
	"context"
	"encoding/json"
	"fmt"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/repository/index"
)

// store is the consumer interface for document writes (ISP).
type store interface {
	Upsert(ctx context.Context, index, id string, body []byte) error
	UpsertVisible(ctx context.Context, index, id string, body []byte) error
	Refresh(ctx context.Context, index string) error
}

// Repo writes job and application documents keyed by row id.
type Repo struct {
	store store
	names index.Names
}

// New creates a document repository.
func New(s store, names index.Names) *Repo {
	return &Repo{store: s, names: names.WithDefaults()}
}

// UpsertJob indexes j under its row id. Repeating the call overwrites the document.
func (r *Repo) UpsertJob(ctx context.Context, j domjob.Job) error {
	return r.upsert(ctx, r.names.Jobs, j.ID, FromJob(j))
}

// UpsertJobVisible indexes j and waits until it is searchable.
func (r *Repo) UpsertJobVisible(ctx context.Context, j domjob.Job) error {
	return r.write(ctx, r.store.UpsertVisible, r.names.Jobs, j.ID, FromJob(j))
}

// UpsertApplication indexes a under its row id.
func (r *Repo) UpsertApplication(ctx context.Context, a domapp.Application) error {
	return r.upsert(ctx, r.names.Applications, a.ID, FromApplication(a))
}

// RefreshJobs makes prior job writes visible to search.
func (r *Repo) RefreshJobs(ctx context.Context) error {
	if err := r.store.Refresh(ctx, r.names.Jobs); err != nil {
		return fmt.Errorf("refresh %s: %w", r.names.Jobs, err)
	}
	return nil
}

func (r *Repo) upsert(ctx context.Context, idx string, id int64, doc any) error {
	return r.write(ctx, r.store.Upsert, idx, id, doc)
}

func (r *Repo) write(
	ctx context.Context,
	put func(ctx context.Context, index, id string, body []byte) error,
	idx string, id int64, doc any,
) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := put(ctx, idx, docID(id), data); err != nil {
		return fmt.Errorf("upsert %s/%d: %w", idx, id, err)
	}
	return nil
}
