package reindex

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Report summarizes one reindex pass.
type Report struct {
	Total   int
	Indexed int
	Failed  int
	Skipped bool
}

// Service rebuilds the jobs index from the relational store.
type Service struct {
	jobs    JobLister
	indexer JobIndexer
	avail   Availability
	docs    *prometheus.CounterVec
	logger  *zap.Logger
}

// New creates a reindex service.
func New(jobs JobLister, indexer JobIndexer, avail Availability, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{jobs: jobs, indexer: indexer, avail: avail, logger: logger}
}

// WithDocumentCounter sets a counter vec with label "outcome" ("indexed"/"failed").
func (s *Service) WithDocumentCounter(cv *prometheus.CounterVec) *Service {
	s.docs = cv
	return s
}

// ReindexAllJobs upserts every job sequentially, then refreshes the index.
// Upserts are keyed by row id, so repeated passes converge on the same documents.
// Applications are not reindexed.
func (s *Service) ReindexAllJobs(ctx context.Context) Report {
	if !s.avail.Available() {
		s.logger.Info("Search index unavailable, skipping reindex")
		return Report{Skipped: true}
	}

	start := time.Now()
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list jobs for reindex", zap.Error(err))
		return Report{}
	}

	rep := Report{Total: len(jobs)}
	for _, j := range jobs {
		if err := s.indexer.UpsertJob(ctx, j); err != nil {
			rep.Failed++
			s.count("failed")
			s.logger.Error("Failed to reindex job", zap.Int64("job_id", j.ID), zap.Error(err))
			continue
		}
		rep.Indexed++
		s.count("indexed")
	}

	if err := s.indexer.RefreshJobs(ctx); err != nil {
		s.logger.Error("Failed to refresh jobs index", zap.Error(err))
	}

	s.logger.Info("Reindex completed",
		zap.Int("total", rep.Total),
		zap.Int("indexed", rep.Indexed),
		zap.Int("failed", rep.Failed),
		zap.Duration("duration", time.Since(start)),
	)
	return rep
}

func (s *Service) count(outcome string) {
	if s.docs != nil {
		s.docs.WithLabelValues(outcome).Inc()
	}
}
