package jobboard

import (
	"context"
	"fmt"
	"time"
)

// ApplicationService accepts and lists applications.
type ApplicationService struct {
	svc applicationUseCase
	obs *observer
}

// Apply stores an application for jobID. Missing jobs return ErrJobNotFound and
// nothing is stored.
func (s *ApplicationService) Apply(ctx context.Context, jobID int64, in ApplicationInput) (_ Application, err error) {
	start := time.Now()
	defer func() { s.obs.observe("application.apply", start, err) }()

	a, err := s.svc.Apply(ctx, jobID, in.ApplicantName, in.Email, in.ResumeURL)
	if err != nil {
		return Application{}, fmt.Errorf("apply: %w", err)
	}
	return fromInternalApplication(a), nil
}

// List returns one page of applications, newest first.
func (s *ApplicationService) List(ctx context.Context, f ApplicationFilter) (_ ApplicationPage, err error) {
	start := time.Now()
	defer func() { s.obs.observe("application.list", start, err) }()

	l, err := s.svc.List(ctx, f.JobID, f.Page, f.Limit)
	if err != nil {
		return ApplicationPage{}, fmt.Errorf("list applications: %w", err)
	}
	return ApplicationPage{
		Applications: fromInternalApplications(l.Applications),
		Page:         l.Page.Number(),
		PageSize:     l.Page.Size(),
		TotalItems:   l.Total,
		TotalPages:   l.TotalPages(),
		HasNext:      l.HasNext(),
		HasPrevious:  l.HasPrevious(),
	}, nil
}
