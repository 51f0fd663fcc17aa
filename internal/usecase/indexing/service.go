package indexing

import (
	"context"

	"go.uber.org/zap"
)

// Service runs the startup sequence for the search index.
type Service struct {
	prober    Prober
	schema    SchemaEnsurer
	reindexer Reindexer
	logger    *zap.Logger
}

// New creates an indexing service.
func New(p Prober, schema SchemaEnsurer, r Reindexer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{prober: p, schema: schema, reindexer: r, logger: logger}
}

// Initialize probes the index, ensures both mappings and reindexes all jobs.
// Failures are logged; the service starts regardless.
func (s *Service) Initialize(ctx context.Context) {
	if !s.prober.Probe(ctx) {
		s.logger.Warn("Search index unavailable, serving without search")
		return
	}

	if err := s.schema.EnsureAll(ctx); err != nil {
		s.logger.Error("Search index setup incomplete", zap.Error(err))
	}

	rep := s.reindexer.ReindexAllJobs(ctx)
	if rep.Failed > 0 {
		s.logger.Warn("Reindex finished with failures",
			zap.Int("failed", rep.Failed),
			zap.Int("total", rep.Total),
		)
	}
}
