package jobboard

import (
	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

func fromInternalJob(j domjob.Job) Job {
	return Job{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func fromInternalApplication(a domapp.Application) Application {
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

func fromInternalApplications(apps []domapp.Application) []Application {
	out := make([]Application, len(apps))
	for i, a := range apps {
		out[i] = fromInternalApplication(a)
	}
	return out
}

func fromFacetResult(res result.FacetResult, page query.Page) FacetPage {
	out := FacetPage{
		Jobs:       make([]Hit, len(res.Jobs)),
		Total:      res.Total,
		Page:       page.Number(),
		PageSize:   page.Size(),
		TotalPages: page.TotalPages(res.Total),
		Degraded:   res.IsDegraded(),
	}
	for i, j := range res.Jobs {
		out.Jobs[i] = Hit{
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
	if res.Facets != nil {
		out.Locations = fromBuckets(res.Facets.Locations)
		out.CreationDates = fromBuckets(res.Facets.CreationDates)
	}
	return out
}

func fromBuckets(bb []result.Bucket) []FacetBucket {
	out := make([]FacetBucket, len(bb))
	for i, b := range bb {
		out[i] = FacetBucket{Value: b.Value, Count: b.Count}
	}
	return out
}
