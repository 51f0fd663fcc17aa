package application

import (
	"context"
	"testing"

	"github.com/kailas-cloud/jobboard/internal/domain"
	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/mirror"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	createFn   func(ctx context.Context, d domapp.Draft) (domapp.Application, error)
	listFn     func(ctx context.Context, jobID *int64, limit, offset int) ([]domapp.Application, int, error)
	creates    int
	lastLimit  int
	lastOffset int
}

func (m *mockRepo) Create(ctx context.Context, d domapp.Draft) (domapp.Application, error) {
	m.creates++
	if m.createFn != nil {
		return m.createFn(ctx, d)
	}
	return domapp.Application{
		ID: 1, JobID: d.JobID(), ApplicantName: d.ApplicantName(), Email: d.Email(), ResumeURL: d.ResumeURL(),
	}, nil
}

func (m *mockRepo) List(ctx context.Context, jobID *int64, limit, offset int) ([]domapp.Application, int, error) {
	m.lastLimit, m.lastOffset = limit, offset
	if m.listFn != nil {
		return m.listFn(ctx, jobID, limit, offset)
	}
	return []domapp.Application{}, 0, nil
}

// mockJobs knows a fixed set of job ids.
type mockJobs struct {
	ids map[int64]bool
}

func (m *mockJobs) FindByID(_ context.Context, id int64) (domjob.Job, error) {
	if !m.ids[id] {
		return domjob.Job{}, domain.ErrJobNotFound
	}
	return domjob.Job{ID: id}, nil
}

type recordingMirror struct {
	apps []int64
}

func (m *recordingMirror) MirrorApplication(_ context.Context, a domapp.Application) mirror.Outcome {
	m.apps = append(m.apps, a.ID)
	return mirror.Success(mirror.KindApplication, a.ID)
}

func newTestService(t *testing.T, jobIDs ...int64) (*Service, *mockRepo, *recordingMirror) {
	t.Helper()
	ids := map[int64]bool{}
	for _, id := range jobIDs {
		ids[id] = true
	}
	repo, m := &mockRepo{}, &recordingMirror{}
	return New(repo, &mockJobs{ids: ids}, m), repo, m
}
