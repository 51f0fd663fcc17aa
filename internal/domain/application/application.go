package application

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kailas-cloud/jobboard/internal/domain"
	"github.com/kailas-cloud/jobboard/internal/domain/job"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MaxFieldLength bounds every string column of an application, in characters.
const MaxFieldLength = 255

func tooLong(s string) bool { return utf8.RuneCountInString(s) > MaxFieldLength }

// Draft is a validated application that has not been persisted yet.
type Draft struct {
	jobID         int64
	applicantName string
	email         string
	resumeURL     string
}

// NewDraft validates application input.
// Email must look like an address; resume URL must be absolute http(s) with a host.
func NewDraft(jobID int64, applicantName, email, resumeURL string) (Draft, error) {
	applicantName = strings.TrimSpace(applicantName)
	email = strings.TrimSpace(email)
	resumeURL = strings.TrimSpace(resumeURL)

	if applicantName == "" || email == "" || resumeURL == "" {
		return Draft{}, domain.NewValidation("applicant_name",
			"Applicant name, email, and resume URL are required")
	}
	if jobID <= 0 {
		return Draft{}, domain.NewValidation("job_id", "job id must be positive")
	}
	if tooLong(applicantName) || tooLong(email) || tooLong(resumeURL) {
		return Draft{}, domain.NewValidation("applicant_name", "field too long")
	}
	if !emailRegex.MatchString(email) {
		return Draft{}, domain.NewValidation("email", "Invalid email format")
	}
	if !isHTTPURL(resumeURL) {
		return Draft{}, domain.NewValidation("resume_url", "Resume URL must start with http:// or https://")
	}

	return Draft{jobID: jobID, applicantName: applicantName, email: email, resumeURL: resumeURL}, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// JobID returns the referenced job id.
func (d Draft) JobID() int64 { return d.jobID }

// ApplicantName returns the applicant name.
func (d Draft) ApplicantName() string { return d.applicantName }

// Email returns the applicant email.
func (d Draft) Email() string { return d.email }

// ResumeURL returns the resume link.
func (d Draft) ResumeURL() string { return d.resumeURL }

// Application is a persisted application. Job is populated only by listing queries.
type Application struct {
	ID            int64
	JobID         int64
	ApplicantName string
	Email         string
	ResumeURL     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Job           *job.Summary
}
