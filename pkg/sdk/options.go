package jobboard

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	databaseURL string
	maxConns    int32
	migrate     bool

	esAddrs           []string
	esUsername        string
	esPassword        string
	jobsIndex         string
	applicationsIndex string
	requestTimeout    time.Duration
	skipReindex       bool

	defaultPageSize int
	maxPageSize     int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithPostgres sets the relational store connection URL.
func WithPostgres(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.databaseURL = url
	})
}

// WithMaxConns bounds the Postgres connection pool.
func WithMaxConns(n int32) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxConns = n
	})
}

// WithMigrate applies the embedded schema on connect.
func WithMigrate() Option {
	return optionFunc(func(c *clientConfig) {
		c.migrate = true
	})
}

// WithElasticsearch sets the search cluster addresses.
func WithElasticsearch(addrs ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.esAddrs = addrs
	})
}

// WithElasticsearchAuth sets basic auth credentials for the search cluster.
func WithElasticsearchAuth(username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.esUsername = username
		c.esPassword = password
	})
}

// WithIndexNames overrides the jobs and applications index names.
// Defaults: "jobs", "applications".
func WithIndexNames(jobs, applications string) Option {
	return optionFunc(func(c *clientConfig) {
		c.jobsIndex = jobs
		c.applicationsIndex = applications
	})
}

// WithRequestTimeout bounds every search index call. Default: 5s.
func WithRequestTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.requestTimeout = d
	})
}

// WithSkipReindex skips the full jobs reindex on connect. The index is still
// probed and its mappings ensured.
func WithSkipReindex() Option {
	return optionFunc(func(c *clientConfig) {
		c.skipReindex = true
	})
}

// WithPagination sets the default and maximum faceted search page sizes.
// Defaults: 20 and 100.
func WithPagination(defaultPageSize, maxPageSize int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultPageSize = defaultPageSize
		c.maxPageSize = maxPageSize
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
