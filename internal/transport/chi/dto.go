package chi

import (
	"time"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
	applicationuc "github.com/kailas-cloud/jobboard/internal/usecase/application"
	jobuc "github.com/kailas-cloud/jobboard/internal/usecase/job"
)

// ErrorCode is a machine-readable error code.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeJobNotFound      ErrorCode = "job_not_found"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the error body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// CreateJobRequest is the POST /jobs body.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// ApplyRequest is the POST /jobs/{id}/apply body.
type ApplyRequest struct {
	ApplicantName string `json:"applicant_name"`
	Email         string `json:"email"`
	ResumeURL     string `json:"resume_url"`
}

// Job is a job posting.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// JobDetail is a job with its applications.
type JobDetail struct {
	Job
	Applications []Application `json:"applications"`
}

// JobSummary is the job projection embedded in application listings.
type JobSummary struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

// Application is a job application.
type Application struct {
	ID            int64       `json:"id"`
	JobID         int64       `json:"job_id"`
	ApplicantName string      `json:"applicant_name"`
	Email         string      `json:"email"`
	ResumeURL     string      `json:"resume_url"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	Job           *JobSummary `json:"job,omitempty"`
}

// ApplicationPagination is the pagination block of GET /applications.
type ApplicationPagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalItems      int  `json:"totalItems"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// ApplicationListResponse is the GET /applications body.
type ApplicationListResponse struct {
	Applications []Application         `json:"applications"`
	Pagination   ApplicationPagination `json:"pagination"`
}

// SearchHit is a scored job from faceted search.
type SearchHit struct {
	Job
	Score *float64 `json:"score"`
}

// FacetBucket is one facet value with its count.
type FacetBucket struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// Facets groups facet buckets. Total repeats the hit total.
type Facets struct {
	Locations     []FacetBucket `json:"locations"`
	CreationDates []FacetBucket `json:"creationDates"`
	Total         int64         `json:"total"`
}

// SearchPagination is the pagination block of GET /jobs/search.
type SearchPagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// SearchData is the payload of a faceted search. Facets is an empty object when
// the index is unavailable.
type SearchData struct {
	Jobs       []SearchHit      `json:"jobs"`
	Facets     any              `json:"facets"`
	Pagination SearchPagination `json:"pagination"`
}

// SearchResponse is the GET /jobs/search body.
type SearchResponse struct {
	Success bool       `json:"success"`
	Data    SearchData `json:"data"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Version string            `json:"version"`
}

func jobToDTO(j domjob.Job) Job {
	return Job{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func jobsToDTO(jobs []domjob.Job) []Job {
	out := make([]Job, len(jobs))
	for i, j := range jobs {
		out[i] = jobToDTO(j)
	}
	return out
}

func jobDetailToDTO(d jobuc.Detail) JobDetail {
	return JobDetail{Job: jobToDTO(d.Job), Applications: applicationsToDTO(d.Applications)}
}

func applicationToDTO(a domapp.Application) Application {
	out := Application{
		ID:            a.ID,
		JobID:         a.JobID,
		ApplicantName: a.ApplicantName,
		Email:         a.Email,
		ResumeURL:     a.ResumeURL,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.Job != nil {
		out.Job = &JobSummary{ID: a.Job.ID, Title: a.Job.Title, Location: a.Job.Location}
	}
	return out
}

func applicationsToDTO(apps []domapp.Application) []Application {
	out := make([]Application, len(apps))
	for i, a := range apps {
		out[i] = applicationToDTO(a)
	}
	return out
}

func listingToDTO(l applicationuc.Listing) ApplicationListResponse {
	return ApplicationListResponse{
		Applications: applicationsToDTO(l.Applications),
		Pagination: ApplicationPagination{
			CurrentPage:     l.Page.Number(),
			TotalPages:      l.TotalPages(),
			TotalItems:      l.Total,
			HasNextPage:     l.HasNext(),
			HasPreviousPage: l.HasPrevious(),
		},
	}
}

func searchToDTO(res result.FacetResult, page query.Page) SearchResponse {
	hits := make([]SearchHit, len(res.Jobs))
	for i, j := range res.Jobs {
		hits[i] = SearchHit{
			Job: Job{
				ID:          j.ID,
				Title:       j.Title,
				Description: j.Description,
				Location:    j.Location,
				CreatedAt:   j.CreatedAt,
				UpdatedAt:   j.UpdatedAt,
			},
			Score: j.Score,
		}
	}

	var facets any = struct{}{}
	if !res.IsDegraded() {
		facets = Facets{
			Locations:     bucketsToDTO(res.Facets.Locations),
			CreationDates: bucketsToDTO(res.Facets.CreationDates),
			Total:         res.Total,
		}
	}

	return SearchResponse{
		Success: true,
		Data: SearchData{
			Jobs:   hits,
			Facets: facets,
			Pagination: SearchPagination{
				Page:       page.Number(),
				Limit:      page.Size(),
				Total:      res.Total,
				TotalPages: page.TotalPages(res.Total),
			},
		},
	}
}

func bucketsToDTO(bb []result.Bucket) []FacetBucket {
	out := make([]FacetBucket, len(bb))
	for i, b := range bb {
		out[i] = FacetBucket{Value: b.Value, Count: b.Count}
	}
	return out
}
