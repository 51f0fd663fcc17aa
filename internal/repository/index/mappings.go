package index

import (
	"github.com/kailas-cloud/jobboard/internal/db"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
)

// Default index names.
const (
	DefaultJobsIndex         = "jobs"
	DefaultApplicationsIndex = "applications"
)

// Names holds the configured index names.
type Names struct {
	Jobs         string
	Applications string
}

// WithDefaults fills empty names.
func (n Names) WithDefaults() Names {
	if n.Jobs == "" {
		n.Jobs = DefaultJobsIndex
	}
	if n.Applications == "" {
		n.Applications = DefaultApplicationsIndex
	}
	return n
}

// JobsMapping is the fixed schema of job search documents.
func JobsMapping() *db.Mapping {
	return db.NewMapping().
		Integer(query.FieldID).
		TextWithAnalyzer(query.FieldTitle, db.AnalyzerStandard).
		TextWithAnalyzer(query.FieldDescription, db.AnalyzerStandard).
		Keyword(query.FieldLocation).
		Date(query.FieldCreatedAt).
		Date(query.FieldUpdatedAt).
		MustBuild()
}

// ApplicationsMapping is the fixed schema of application search documents.
func ApplicationsMapping() *db.Mapping {
	return db.NewMapping().
		Integer("id").
		Integer("job_id").
		Text("applicant_name").
		Keyword("email").
		Keyword("resume_url").
		Date("createdAt").
		Date("updatedAt").
		MustBuild()
}
