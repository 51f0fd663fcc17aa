package jobboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbElastic "github.com/kailas-cloud/jobboard/internal/db/elastic"
	dbPostgres "github.com/kailas-cloud/jobboard/internal/db/postgres"
	domapp "github.com/kailas-cloud/jobboard/internal/domain/application"
	domjob "github.com/kailas-cloud/jobboard/internal/domain/job"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
	applicationrepo "github.com/kailas-cloud/jobboard/internal/repository/application"
	documentrepo "github.com/kailas-cloud/jobboard/internal/repository/document"
	indexrepo "github.com/kailas-cloud/jobboard/internal/repository/index"
	jobrepo "github.com/kailas-cloud/jobboard/internal/repository/job"
	searchrepo "github.com/kailas-cloud/jobboard/internal/repository/search"
	applicationuc "github.com/kailas-cloud/jobboard/internal/usecase/application"
	healthuc "github.com/kailas-cloud/jobboard/internal/usecase/health"
	indexinguc "github.com/kailas-cloud/jobboard/internal/usecase/indexing"
	jobuc "github.com/kailas-cloud/jobboard/internal/usecase/job"
	mirroruc "github.com/kailas-cloud/jobboard/internal/usecase/mirror"
	reindexuc "github.com/kailas-cloud/jobboard/internal/usecase/reindex"
	searchuc "github.com/kailas-cloud/jobboard/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultRequestTimeout   = 5 * time.Second
	defaultMaxConns         = 5
)

// Internal interfaces, swapped for mocks in tests.
type jobUseCase interface {
	Create(ctx context.Context, title, description, location string) (domjob.Job, error)
	Get(ctx context.Context, id int64) (jobuc.Detail, error)
	List(ctx context.Context, keyword, location string) ([]domjob.Job, error)
}

type applicationUseCase interface {
	Apply(ctx context.Context, jobID int64, applicantName, email, resumeURL string) (domapp.Application, error)
	List(ctx context.Context, jobID *int64, page, limit int) (applicationuc.Listing, error)
}

type searchUseCase interface {
	Page(number, size int) query.Page
	SearchWithFacets(ctx context.Context, req query.FacetRequest) result.FacetResult
}

type reindexUseCase interface {
	ReindexAllJobs(ctx context.Context) reindexuc.Report
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the jobboard SDK entry point.
type Client struct {
	closeFn   func()
	jobSvc    jobUseCase
	appSvc    applicationUseCase
	searchSvc searchUseCase
	reindex   reindexUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New connects to Postgres and Elasticsearch and prepares the search index.
// The provided context is used for readiness, migration and the startup reindex.
// An unreachable search cluster is not an error: search then returns empty pages.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		maxConns:       defaultMaxConns,
		requestTimeout: defaultRequestTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.databaseURL == "" {
		return nil, errors.New("jobboard: database url required (use WithPostgres)")
	}
	if len(cfg.esAddrs) == 0 {
		return nil, errors.New("jobboard: search addresses required (use WithElasticsearch)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	pool, err := dbPostgres.NewPool(ctx, dbPostgres.Config{URL: cfg.databaseURL, MaxConns: cfg.maxConns})
	if err != nil {
		return nil, fmt.Errorf("jobboard: %w", err)
	}
	if err := dbPostgres.WaitForReady(ctx, pool, defaultReadinessTimeout); err != nil {
		pool.Close()
		return nil, fmt.Errorf("jobboard: database not ready: %w", err)
	}
	if cfg.migrate {
		if err := dbPostgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("jobboard: %w", err)
		}
	}

	zl := obs.zapLogger()
	es, err := dbElastic.New(dbElastic.Config{
		Addrs:          cfg.esAddrs,
		Username:       cfg.esUsername,
		Password:       cfg.esPassword,
		RequestTimeout: cfg.requestTimeout,
	}, zl)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("jobboard: %w", err)
	}

	names := indexrepo.Names{Jobs: cfg.jobsIndex, Applications: cfg.applicationsIndex}.WithDefaults()
	jobRepo := jobrepo.New(pool)
	appRepo := applicationrepo.New(pool)
	docRepo := documentrepo.New(es, names)
	indexMgr := indexrepo.New(es, names, zl)

	mirrorSvc := newMirror(docRepo, es, obs)
	searchSvc := searchuc.New(searchrepo.New(es, names.Jobs), es, zl).
		WithPagination(cfg.defaultPageSize, cfg.maxPageSize).
		WithDegradedCounter(obs.degradedCounter())
	reindexSvc := reindexuc.New(jobRepo, docRepo, es, zl).
		WithDocumentCounter(obs.reindexCounter())

	if cfg.skipReindex {
		if es.Probe(ctx) {
			if err := indexMgr.EnsureAll(ctx); err != nil {
				zl.Warn("Search index setup incomplete", zap.Error(err))
			}
		}
	} else {
		indexinguc.New(es, indexMgr, reindexSvc, zl).Initialize(ctx)
	}

	return &Client{
		closeFn:   pool.Close,
		jobSvc:    jobuc.New(jobRepo, appRepo, mirrorSvc, searchSvc),
		appSvc:    applicationuc.New(appRepo, jobRepo, mirrorSvc),
		searchSvc: searchSvc,
		reindex:   reindexSvc,
		healthSvc: healthuc.New(pool, es),
		obs:       obs,
	}, nil
}

// newMirror builds the document mirror with the client's logger and counters.
func newMirror(w mirroruc.Writer, avail mirroruc.Availability, obs *observer) *mirroruc.Service {
	return mirroruc.New(w, avail, obs.zapLogger()).WithOutcomeCounter(obs.mirrorCounter())
}

// Close releases all resources.
func (c *Client) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}

// Jobs returns the job service.
func (c *Client) Jobs() *JobService {
	return &JobService{svc: c.jobSvc, obs: c.obs}
}

// Applications returns the application service.
func (c *Client) Applications() *ApplicationService {
	return &ApplicationService{svc: c.appSvc, obs: c.obs}
}

// Search returns the faceted search service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc, obs: c.obs}
}

// Reindex rebuilds the jobs index from Postgres. It is skipped when the index
// was unavailable at connect time.
func (c *Client) Reindex(ctx context.Context) ReindexReport {
	start := time.Now()
	rep := c.reindex.ReindexAllJobs(ctx)
	c.obs.observeDegraded("reindex", start, rep.Skipped)
	return ReindexReport{
		Total:   rep.Total,
		Indexed: rep.Indexed,
		Failed:  rep.Failed,
		Skipped: rep.Skipped,
	}
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}
