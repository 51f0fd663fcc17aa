package jobboard

import (
	"context"
	"time"

	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
)

// SearchService runs faceted job search. It never fails: an unavailable index
// yields an empty, degraded page.
type SearchService struct {
	svc searchUseCase
	obs *observer
}

// Facets returns one page of matching jobs with location and creation-month facets.
func (s *SearchService) Facets(ctx context.Context, q FacetQuery) FacetPage {
	start := time.Now()

	page := s.svc.Page(q.Page, q.Limit)
	res := s.svc.SearchWithFacets(ctx, query.FacetRequest{
		Keyword:  q.Keyword,
		Location: q.Location,
		Created:  query.DateRange{From: q.DateFrom, To: q.DateTo},
		Page:     page,
	})
	s.obs.observeDegraded("search.facets", start, res.IsDegraded())

	return fromFacetResult(res, page)
}
