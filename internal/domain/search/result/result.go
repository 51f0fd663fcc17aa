package result

import "time"

// Job is a job search document, optionally scored.
type Job struct {
	ID          int64
	Title       string
	Description string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Score       *float64
}

// Bucket is one facet value with its document count.
type Bucket struct {
	Value string
	Count int64
}

// Facets groups facet buckets by dimension.
type Facets struct {
	Locations     []Bucket
	CreationDates []Bucket
}

// FacetResult is the faceted search response. Facets is nil in the degraded shape.
type FacetResult struct {
	Jobs   []Job
	Facets *Facets
	Total  int64
}

// Empty returns the degraded shape: no jobs, empty facets, zero total.
func Empty() FacetResult {
	return FacetResult{Jobs: []Job{}}
}

// IsDegraded reports whether r carries no facet data.
func (r FacetResult) IsDegraded() bool { return r.Facets == nil }
