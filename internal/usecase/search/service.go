package search

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

// Degradation reasons.
const (
	reasonUnavailable = "unavailable"
	reasonError       = "error"
)

// Service applies the search failure policy: callers always get a well-formed
// result, empty when the index is disabled or the query fails.
type Service struct {
	repo            Repository
	avail           Availability
	degraded        *prometheus.CounterVec
	logger          *zap.Logger
	defaultPageSize int
	maxPageSize     int
}

// New creates a search service.
func New(repo Repository, avail Availability, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:            repo,
		avail:           avail,
		logger:          logger,
		defaultPageSize: query.DefaultPageSize,
		maxPageSize:     query.MaxPageSize,
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

// WithDegradedCounter sets a counter vec with labels "operation" and "reason".
func (s *Service) WithDegradedCounter(cv *prometheus.CounterVec) *Service {
	s.degraded = cv
	return s
}

// Page clamps raw page parameters to the configured limits.
func (s *Service) Page(number, size int) query.Page {
	return query.ClampPage(number, size, s.defaultPageSize, s.maxPageSize)
}

// Search runs the plain keyword/location search. It never fails: an unavailable
// index or a failed query yields an empty slice.
func (s *Service) Search(ctx context.Context, keyword, location string) []result.Job {
	if !s.avail.Available() {
		s.degrade("search", reasonUnavailable)
		return []result.Job{}
	}

	jobs, err := s.repo.SearchJobs(ctx, query.JobFilter{Keyword: keyword, Location: location})
	if err != nil {
		s.degrade("search", reasonError)
		s.logger.Error("Job search failed",
			zap.String("keyword", keyword),
			zap.String("location", location),
			zap.Error(err),
		)
		return []result.Job{}
	}
	if jobs == nil {
		jobs = []result.Job{}
	}
	return jobs
}

// SearchWithFacets runs the faceted search. It never fails: an unavailable index
// or a failed query yields the degraded shape (no jobs, empty facets, zero total).
func (s *Service) SearchWithFacets(ctx context.Context, req query.FacetRequest) result.FacetResult {
	if !s.avail.Available() {
		s.degrade("facets", reasonUnavailable)
		return result.Empty()
	}

	req.Page = s.Page(req.Page.Number(), req.Page.Size())

	res, err := s.repo.SearchJobsWithFacets(ctx, req)
	if err != nil {
		s.degrade("facets", reasonError)
		s.logger.Error("Faceted job search failed",
			zap.String("keyword", req.Keyword),
			zap.String("location", req.Location),
			zap.Error(err),
		)
		return result.Empty()
	}

	if res.Jobs == nil {
		res.Jobs = []result.Job{}
	}
	if res.Total < 0 {
		res.Total = 0
	}
	if size := req.Page.Size(); len(res.Jobs) > size {
		res.Jobs = res.Jobs[:size]
	}
	return res
}

func (s *Service) degrade(op, reason string) {
	if s.degraded != nil {
		s.degraded.WithLabelValues(op, reason).Inc()
	}
}
