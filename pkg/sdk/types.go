package jobboard

import "time"

// JobInput is the data needed to post a job.
type JobInput struct {
	Title       string
	Description string
	Location    string
}

// Job is a persisted job posting.
type Job struct {
	ID          int64
	Title       string
	Description string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JobDetail is a job with its applications.
type JobDetail struct {
	Job
	Applications []Application
}

// JobSummary is the short job projection embedded in application listings.
type JobSummary struct {
	ID       int64
	Title    string
	Location string
}

// ApplicationInput is the data needed to apply to a job.
type ApplicationInput struct {
	ApplicantName string
	Email         string
	ResumeURL     string
}

// Application is a persisted job application. Job is set only in listings.
type Application struct {
	ID            int64
	JobID         int64
	ApplicantName string
	Email         string
	ResumeURL     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Job           *JobSummary
}

// ApplicationFilter selects one page of applications. Zero values use defaults.
type ApplicationFilter struct {
	JobID *int64
	Page  int
	Limit int
}

// ApplicationPage is one page of applications.
type ApplicationPage struct {
	Applications []Application
	Page         int
	PageSize     int
	TotalItems   int
	TotalPages   int
	HasNext      bool
	HasPrevious  bool
}

// FacetQuery is a faceted job search. Dates are "YYYY-MM-DD" or any format the
// index accepts; zero paging values use defaults.
type FacetQuery struct {
	Keyword  string
	Location string
	DateFrom string
	DateTo   string
	Page     int
	Limit    int
}

// Hit is a scored job from faceted search.
type Hit struct {
	Job
	Score *float64
}

// FacetBucket is one facet value with its document count.
type FacetBucket struct {
	Value string
	Count int64
}

// FacetPage is one page of faceted search results.
// Degraded is true when the index was unavailable or the query failed.
type FacetPage struct {
	Jobs          []Hit
	Locations     []FacetBucket
	CreationDates []FacetBucket
	Total         int64
	Page          int
	PageSize      int
	TotalPages    int64
	Degraded      bool
}

// ReindexReport summarizes a full jobs reindex.
type ReindexReport struct {
	Total   int
	Indexed int
	Failed  int
	Skipped bool
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component → "ok"/"error"
}
