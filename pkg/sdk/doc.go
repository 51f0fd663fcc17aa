// Package jobboard embeds the job board service in a Go program.
//
// The client talks to Postgres (source of truth) and Elasticsearch (search
// mirror) directly, using the same services as the HTTP API. Writes are
// committed to Postgres first and mirrored best-effort; search degrades to
// empty results when the index is unavailable.
//
//	client, _ := jobboard.New(ctx,
//	    jobboard.WithPostgres("postgres://localhost:5432/jobboard"),
//	    jobboard.WithElasticsearch("http://localhost:9200"),
//	    jobboard.WithMigrate(),
//	)
//	defer client.Close()
//
//	job, _ := client.Jobs().Create(ctx, jobboard.JobInput{
//	    Title: "Backend Engineer", Description: "Build APIs", Location: "Remote",
//	})
//	_, _ = client.Applications().Apply(ctx, job.ID, jobboard.ApplicationInput{
//	    ApplicantName: "Ann", Email: "ann@example.com", ResumeURL: "https://cv.example.com/ann",
//	})
//	page := client.Search().Facets(ctx, jobboard.FacetQuery{Keyword: "backend", Limit: 10})
package jobboard
