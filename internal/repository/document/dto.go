package document

import (
	"strconv"
	"time"

	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
)

// JobDocument is the search-index projection of a job row.
type JobDocument struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ApplicationDocument is the search-index projection of an application row.
type ApplicationDocument struct {
	ID            int64     `json:"id"`
	JobID         int64     `json:"job_id"`
	ApplicantName string    `json:"applicant_name"`
	Email         string    `json:"email"`
	ResumeURL     string    `json:"resume_url"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromJob builds the job document. The document id equals the row id.
func FromJob(j domjob.Job) JobDocument {
	return JobDocument{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// FromApplication builds the application document.
func FromApplication(a domapp.Application) ApplicationDocument {
	return ApplicationDocument{
		ID:            a.ID,
		JobID:         a.JobID,
		ApplicantName: a.ApplicantName,
		Email:         a.Email,
		ResumeURL:     a.ResumeURL,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// docID renders a row id as the index _id.
func docID(id int64) string {
	return strconv.FormatInt(id, 10)
}
