package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the relational store is down.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckDisabled marks a configured component that could not be set up at startup.
	CheckDisabled CheckResult = "disabled"
)

// Check names.
const (
	CheckDatabase = "database"
	CheckSearch   = "search"
	CheckCache    = "cache"
)

const defaultCheckTimeout = 2 * time.Second

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db            Pinger
	search        Pinger
	cache         Pinger
	cacheDisabled bool
	timeout       time.Duration
}

// New creates a Service. search can be nil.
func New(db, search Pinger) *Service {
	return &Service{db: db, search: search, timeout: defaultCheckTimeout}
}

// WithCache adds the result cache to the checks.
func (s *Service) WithCache(p Pinger) *Service {
	s.cache = p
	return s
}

// WithCacheDisabled reports a configured cache that the service runs without.
func (s *Service) WithCacheDisabled() *Service {
	s.cache = nil
	s.cacheDisabled = true
	return s
}

// WithTimeout bounds each individual check.
func (s *Service) WithTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Check pings all components concurrently. A database failure is Unhealthy;
// any other failure is Degraded because the service still serves writes.
func (s *Service) Check(ctx context.Context) Report {
	var (
		mu     sync.Mutex
		checks = make(map[string]CheckResult)
	)

	targets := map[string]Pinger{CheckDatabase: s.db}
	if s.search != nil {
		targets[CheckSearch] = s.search
	}
	if s.cache != nil {
		targets[CheckCache] = s.cache
	}

	var g errgroup.Group
	for name, p := range targets {
		name, p := name, p
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			res := CheckOK
			if err := p.Ping(cctx); err != nil {
				res = CheckError
			}
			mu.Lock()
			checks[name] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if s.cacheDisabled {
		checks[CheckCache] = CheckDisabled
	}

	status := Healthy
	for name, v := range checks {
		if v == CheckOK {
			continue
		}
		if name == CheckDatabase {
			status = Unhealthy
			break
		}
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}
