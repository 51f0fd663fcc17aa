package jobboard

import (
	"context"
	"fmt"
	"time"
)

// JobService posts and reads jobs.
type JobService struct {
	svc jobUseCase
	obs *observer
}

// Create validates and stores a job, then mirrors it to the search index.
func (s *JobService) Create(ctx context.Context, in JobInput) (_ Job, err error) {
	start := time.Now()
	defer func() { s.obs.observe("job.create", start, err) }()

	j, err := s.svc.Create(ctx, in.Title, in.Description, in.Location)
	if err != nil {
		return Job{}, fmt.Errorf("create job: %w", err)
	}
	return fromInternalJob(j), nil
}

// Get returns a job with its applications. Missing jobs return ErrJobNotFound.
func (s *JobService) Get(ctx context.Context, id int64) (_ JobDetail, err error) {
	start := time.Now()
	defer func() { s.obs.observe("job.get", start, err) }()

	d, err := s.svc.Get(ctx, id)
	if err != nil {
		return JobDetail{}, fmt.Errorf("get job: %w", err)
	}
	return JobDetail{Job: fromInternalJob(d.Job), Applications: fromInternalApplications(d.Applications)}, nil
}

// List returns all jobs newest first, or the index matches when keyword or
// location is set.
func (s *JobService) List(ctx context.Context, keyword, location string) (_ []Job, err error) {
	start := time.Now()
	defer func() { s.obs.observe("job.list", start, err) }()

	jobs, err := s.svc.List(ctx, keyword, location)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	out := make([]Job, len(jobs))
	for i, j := range jobs {
		out[i] = fromInternalJob(j)
	}
	return out, nil
}
