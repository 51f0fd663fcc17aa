package application

import (
	"context"
	"fmt"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
)

// Default application page sizes.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Listing is one page of applications.
type Listing struct {
	Applications []domapp.Application
	Total        int
	Page         query.Page
}

// TotalPages returns ceil(Total / page size).
func (l Listing) TotalPages() int {
	return int(l.Page.TotalPages(int64(l.Total)))
}

// HasNext reports whether a later page exists.
func (l Listing) HasNext() bool { return l.Page.Number() < l.TotalPages() }

// HasPrevious reports whether an earlier page exists.
func (l Listing) HasPrevious() bool { return l.Page.Number() > 1 }

// Service handles job applications.
type Service struct {
	repo            Repository
	jobs            JobFinder
	mirror          Mirror
	defaultPageSize int
	maxPageSize     int
}

// New creates an application service.
func New(repo Repository, jobs JobFinder, m Mirror) *Service {
	return &Service{
		repo:            repo,
		jobs:            jobs,
		mirror:          m,
		defaultPageSize: DefaultPageSize,
		maxPageSize:     MaxPageSize,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// Apply validates the input, checks the job exists, stores the application and
// mirrors it. A missing job returns domain.ErrJobNotFound before any insert.
func (s *Service) Apply(
	ctx context.Context, jobID int64, applicantName, email, resumeURL string,
) (domapp.Application, error) {
	d, err := domapp.NewDraft(jobID, applicantName, email, resumeURL)
	if err != nil {
		return domapp.Application{}, err
	}

	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return domapp.Application{}, fmt.Errorf("find job: %w", err)
	}

	a, err := s.repo.Create(ctx, d)
	if err != nil {
		return domapp.Application{}, fmt.Errorf("create application: %w", err)
	}

	s.mirror.MirrorApplication(ctx, a)
	return a, nil
}

// List returns one page of applications, optionally for a single job.
func (s *Service) List(ctx context.Context, jobID *int64, page, limit int) (Listing, error) {
	p := query.ClampPage(page, limit, s.defaultPageSize, s.maxPageSize)

	apps, total, err := s.repo.List(ctx, jobID, p.Size(), p.From())
	if err != nil {
		return Listing{}, fmt.Errorf("list applications: %w", err)
	}
	return Listing{Applications: apps, Total: total, Page: p}, nil
}
