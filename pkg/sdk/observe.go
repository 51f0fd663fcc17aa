package jobboard

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Operation statuses reported by the SDK.
const (
	statusOK       = "ok"
	statusError    = "error"
	statusDegraded = "degraded"
)

// sdkMetrics holds prometheus metrics registered for the SDK.
type sdkMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	mirror     *prometheus.CounterVec
	reindex    *prometheus.CounterVec
	degraded   *prometheus.CounterVec
}

func newSDKMetrics(reg prometheus.Registerer) (*sdkMetrics, error) {
	m := &sdkMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobboard",
			Subsystem: "sdk",
			Name:      "operations_total",
			Help:      "Total SDK operations by type and status.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jobboard",
			Subsystem: "sdk",
			Name:      "operation_duration_seconds",
			Help:      "SDK operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		mirror: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobboard",
			Subsystem: "sdk",
			Name:      "mirror_total",
			Help:      "Document mirror outcomes by kind.",
		}, []string{"kind", "outcome"}),
		reindex: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobboard",
			Subsystem: "sdk",
			Name:      "reindex_documents_total",
			Help:      "Documents processed by reindex runs.",
		}, []string{"outcome"}),
		degraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobboard",
			Subsystem: "sdk",
			Name:      "search_degraded_total",
			Help:      "Searches answered with the degraded empty shape.",
		}, []string{"operation", "reason"}),
	}
	for _, c := range []**prometheus.CounterVec{&m.operations, &m.mirror, &m.reindex, &m.degraded} {
		if err := registerOrReuse(reg, c); err != nil {
			return nil, err
		}
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one, so two
// clients can share a registry.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("jobboard: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("jobboard: register metric: %w", err)
	}
	return nil
}

// observer provides logging and metrics for SDK operations and the internal
// services behind them.
type observer struct {
	logger  *slog.Logger
	zap     *zap.Logger
	metrics *sdkMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *sdkMetrics
	if reg != nil {
		var err error
		m, err = newSDKMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	var h slog.Handler
	if logger != nil {
		h = logger.Handler()
	}
	return &observer{logger: logger, zap: newZapLogger(h), metrics: m}, nil
}

// zapLogger is handed to internal services. Never nil.
func (o *observer) zapLogger() *zap.Logger {
	if o == nil || o.zap == nil {
		return zap.NewNop()
	}
	return o.zap
}

func (o *observer) mirrorCounter() *prometheus.CounterVec {
	if o == nil || o.metrics == nil {
		return nil
	}
	return o.metrics.mirror
}

func (o *observer) reindexCounter() *prometheus.CounterVec {
	if o == nil || o.metrics == nil {
		return nil
	}
	return o.metrics.reindex
}

func (o *observer) degradedCounter() *prometheus.CounterVec {
	if o == nil || o.metrics == nil {
		return nil
	}
	return o.metrics.degraded
}

// observe records an operation that either succeeded or failed with err.
func (o *observer) observe(op string, start time.Time, err error) {
	status := statusOK
	if err != nil {
		status = statusError
	}
	o.record(op, start, status, err)
}

// observeDegraded records a search answered with the empty degraded shape.
func (o *observer) observeDegraded(op string, start time.Time, degraded bool) {
	status := statusOK
	if degraded {
		status = statusDegraded
	}
	o.record(op, start, status, nil)
}

func (o *observer) record(op string, start time.Time, status string, err error) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.metrics != nil {
		o.metrics.operations.WithLabelValues(op, status).Inc()
		o.metrics.duration.WithLabelValues(op).Observe(dur.Seconds())
	}

	if o.logger == nil {
		return
	}
	switch status {
	case statusError:
		o.logger.Warn("operation failed", "op", op, "duration", dur, "error", err)
	case statusDegraded:
		o.logger.Warn("operation degraded", "op", op, "duration", dur)
	default:
		o.logger.Debug("operation completed", "op", op, "duration", dur)
	}
}
