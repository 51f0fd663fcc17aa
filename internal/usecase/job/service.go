package job

import (
	"context"
	"fmt"
	"strings"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

// Detail is a job with its applications.
type Detail struct {
	Job          domjob.Job
	Applications []domapp.Application
}

// Service handles job creation and reads.
type Service struct {
	repo   Repository
	apps   ApplicationLister
	mirror Mirror
	search Searcher
}

// New creates a job service.
func New(repo Repository, apps ApplicationLister, m Mirror, s Searcher) *Service {
	return &Service{repo: repo, apps: apps, mirror: m, search: s}
}

// Create validates and stores a job, then mirrors it to the search index.
// The mirror outcome never fails the request.
func (s *Service) Create(ctx context.Context, title, description, location string) (domjob.Job, error) {
	d, err := domjob.NewDraft(title, description, location)
	if err != nil {
		return domjob.Job{}, err
	}

	j, err := s.repo.Create(ctx, d)
	if err != nil {
		return domjob.Job{}, fmt.Errorf("create job: %w", err)
	}

	s.mirror.MirrorJob(ctx, j)
	return j, nil
}

// Get returns a job with its applications.
func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Detail{}, fmt.Errorf("get job: %w", err)
	}

	apps, err := s.apps.ListByJob(ctx, id)
	if err != nil {
		return Detail{}, fmt.Errorf("list applications: %w", err)
	}
	return Detail{Job: j, Applications: apps}, nil
}

// List returns jobs. Any keyword or location routes to the search index, which
// yields an empty list when degraded; otherwise all jobs come from the relational
// store, newest first.
func (s *Service) List(ctx context.Context, keyword, location string) ([]domjob.Job, error) {
	if strings.TrimSpace(keyword) != "" || strings.TrimSpace(location) != "" {
		return fromSearch(s.search.Search(ctx, keyword, location)), nil
	}

	jobs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func fromSearch(hits []result.Job) []domjob.Job {
	jobs := make([]domjob.Job, 0, len(hits))
	for _, h := range hits {
		jobs = append(jobs, domjob.Job{
			ID:          h.ID,
			Title:       h.Title,
			Description: h.Description,
			Location:    h.Location,
			CreatedAt:   h.CreatedAt,
			UpdatedAt:   h.UpdatedAt,
		})
	}
	return jobs
}
