package job

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kailas-cloud/jobboard/internal/domain"
)

// Field limits mirror the relational column sizes.
const (
	MaxTitleLength       = 255
	MaxLocationLength    = 255
	MaxDescriptionLength = 65535
)

// Draft is a validated job that has not been persisted yet.
type Draft struct {
	title       string
	description string
	location    string
}

// NewDraft validates job input. Title, description and location are required.
func NewDraft(title, description, location string) (Draft, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	location = strings.TrimSpace(location)

	if title == "" || description == "" || location == "" {
		return Draft{}, domain.NewValidation("title", "Title, description, and location are required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return Draft{}, domain.NewValidation("title", "title too long")
	}
	if utf8.RuneCountInString(location) > MaxLocationLength {
		return Draft{}, domain.NewValidation("location", "location too long")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return Draft{}, domain.NewValidation("description", "description too long")
	}

	return Draft{title: title, description: description, location: location}, nil
}

// Title returns the job title.
func (d Draft) Title() string { return d.title }

// Description returns the job description.
func (d Draft) Description() string { return d.description }

// Location returns the job location.
func (d Draft) Location() string { return d.location }

// Job is a persisted job posting. The relational store owns id and timestamps.
type Job struct {
	ID          int64
	Title       string
	Description string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Summary is the job projection embedded in application listings.
type Summary struct {
	ID       int64
	Title    string
	Location string
}

// Summary returns the short projection of j.
func (j Job) Summary() Summary {
	return Summary{ID: j.ID, Title: j.Title, Location: j.Location}
}
