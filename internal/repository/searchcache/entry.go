package searchcache

import (
	"time"

	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

// entry is the cached wire form of a facet page.
type entry struct {
	Jobs          []entryJob    `json:"jobs"`
	Locations     []entryBucket `json:"locations"`
	CreationDates []entryBucket `json:"creation_dates"`
	Total         int64         `json:"total"`
}

type entryJob struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Score       *float64  `json:"score,omitempty"`
}

type entryBucket struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

func fromResult(r result.FacetResult) entry {
	e := entry{
		Jobs:  make([]entryJob, 0, len(r.Jobs)),
		Total: r.Total,
	}
	for _, j := range r.Jobs {
		e.Jobs = append(e.Jobs, entryJob{
			ID: j.ID, Title: j.Title, Description: j.Description, Location: j.Location,
			CreatedAt: j.CreatedAt, UpdatedAt: j.UpdatedAt, Score: j.Score,
		})
	}
	if r.Facets != nil {
		e.Locations = fromBuckets(r.Facets.Locations)
		e.CreationDates = fromBuckets(r.Facets.CreationDates)
	}
	return e
}

func (e entry) toResult() result.FacetResult {
	r := result.FacetResult{
		Jobs:  make([]result.Job, 0, len(e.Jobs)),
		Total: e.Total,
		Facets: &result.Facets{
			Locations:     toBuckets(e.Locations),
			CreationDates: toBuckets(e.CreationDates),
		},
	}
	for _, j := range e.Jobs {
		r.Jobs = append(r.Jobs, result.Job{
			ID: j.ID, Title: j.Title, Description: j.Description, Location: j.Location,
			CreatedAt: j.CreatedAt, UpdatedAt: j.UpdatedAt, Score: j.Score,
		})
	}
	return r
}

func fromBuckets(in []result.Bucket) []entryBucket {
	out := make([]entryBucket, 0, len(in))
	for _, b := range in {
		out = append(out, entryBucket{Value: b.Value, Count: b.Count})
	}
	return out
}

func toBuckets(in []entryBucket) []result.Bucket {
	out := make([]result.Bucket, 0, len(in))
	for _, b := range in {
		out = append(out, result.Bucket{Value: b.Value, Count: b.Count})
	}
	return out
}
