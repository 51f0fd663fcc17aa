package mirror

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/mirror"
)

// Service replicates committed rows into the search index, best effort.
// Outcomes are logged and counted; they never fail the caller's write.
type Service struct {
	writer   Writer
	avail    Availability
	cache    CacheInvalidator
	outcomes *prometheus.CounterVec
	logger   *zap.Logger
}

// New creates a mirror service.
func New(w Writer, avail Availability, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{writer: w, avail: avail, logger: logger}
}

// WithCacheInvalidator bumps the facet cache after each mirrored job.
func (s *Service) WithCacheInvalidator(c CacheInvalidator) *Service {
	s.cache = c
	return s
}

// WithOutcomeCounter sets a counter vec with labels "kind" and "outcome".
func (s *Service) WithOutcomeCounter(cv *prometheus.CounterVec) *Service {
	s.outcomes = cv
	return s
}

// MirrorJob upserts the job document. With a cache invalidator configured the
// upsert waits for the index refresh, so the generation bump that follows can
// only be observed once the job is searchable.
func (s *Service) MirrorJob(ctx context.Context, j domjob.Job) mirror.Outcome {
	out := s.mirror(mirror.KindJob, j.ID, func() error {
		if s.cache != nil {
			return s.writer.UpsertJobVisible(ctx, j)
		}
		return s.writer.UpsertJob(ctx, j)
	})
	if out.OK() && s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("Failed to invalidate facet cache", zap.Int64("job_id", j.ID), zap.Error(err))
		}
	}
	return out
}

// MirrorApplication upserts the application document.
func (s *Service) MirrorApplication(ctx context.Context, a domapp.Application) mirror.Outcome {
	return s.mirror(mirror.KindApplication, a.ID, func() error {
		return s.writer.UpsertApplication(ctx, a)
	})
}

func (s *Service) mirror(kind mirror.Kind, id int64, write func() error) mirror.Outcome {
	var out mirror.Outcome
	if !s.avail.Available() {
		out = mirror.Skipped(kind, id)
	} else if err := write(); err != nil {
		out = mirror.Failed(kind, id, err)
		s.logger.Error("Failed to index document",
			zap.String("kind", string(kind)),
			zap.Int64("id", id),
			zap.Error(err),
		)
	} else {
		out = mirror.Success(kind, id)
	}

	if s.outcomes != nil {
		s.outcomes.WithLabelValues(string(kind), string(out.Status())).Inc()
	}
	return out
}
