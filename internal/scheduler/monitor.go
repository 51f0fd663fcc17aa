// Package scheduler runs periodic background checks.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSpec checks liveness every 30 seconds.
const DefaultSpec = "@every 30s"

// Pinger is the liveness check target.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor periodically pings the search index and reports liveness on a gauge.
// It only reports: the client's availability latch is never changed here.
type Monitor struct {
	cron    *cron.Cron
	spec    string
	target  Pinger
	gauge   prometheus.Gauge
	timeout time.Duration
	logger  *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewMonitor creates a monitor. An empty spec uses DefaultSpec.
func NewMonitor(target Pinger, gauge prometheus.Gauge, spec string, timeout time.Duration, logger *zap.Logger) *Monitor {
	if spec == "" {
		spec = DefaultSpec
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		cron:    cron.New(),
		spec:    spec,
		target:  target,
		gauge:   gauge,
		timeout: timeout,
		logger:  logger,
	}
}

// Start runs one check immediately, then schedules the rest.
func (m *Monitor) Start(ctx context.Context) error {
	m.ctx, m.cancel = context.WithCancel(ctx)

	if _, err := m.cron.AddFunc(m.spec, func() { m.CheckOnce(m.ctx) }); err != nil {
		m.cancel()
		return fmt.Errorf("cron.AddFunc %q: %w", m.spec, err)
	}

	m.CheckOnce(m.ctx)
	m.cron.Start()
	m.logger.Info("Search index monitor started", zap.String("spec", m.spec))
	return nil
}

// Stop halts scheduling and waits for a running check to finish.
func (m *Monitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	<-m.cron.Stop().Done()
}

// CheckOnce pings the target and updates the gauge. It reports whether the target is up.
func (m *Monitor) CheckOnce(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	up := m.target.Ping(ctx) == nil
	if m.gauge != nil {
		if up {
			m.gauge.Set(1)
		} else {
			m.gauge.Set(0)
		}
	}
	if !up {
		m.logger.Debug("Search index liveness check failed")
	}
	return up
}
