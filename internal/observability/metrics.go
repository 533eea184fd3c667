package observability

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Metrics tracks counters/histograms for one or more generation runs.
// Unlike the teacher's HTTP-request metrics, there is no server to serve
// them from (spec.md §5: no server survives into the generation loop) —
// Summary dumps them as a single structured log line instead. The plain
// int64 counters mirror what's pushed into the prometheus collectors below,
// since prometheus.Counter has no public Value() accessor.
type Metrics struct {
	RecordsGenerated prometheus.Counter
	EvalErrors       prometheus.Counter
	BuildDuration    prometheus.Histogram
	GenerateDuration prometheus.Histogram

	recordsGenerated int64
	evalErrors       int64

	registry *prometheus.Registry
}

// NewMetrics constructs a fresh, unregistered Metrics set.
func NewMetrics() *Metrics {
	return &Metrics{
		RecordsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sbrdgen_records_generated_total",
			Help: "Total number of records successfully generated",
		}),
		EvalErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sbrdgen_eval_errors_total",
			Help: "Total number of generation failures across all runs",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sbrdgen_build_duration_seconds",
			Help:    "Duration of schema.Build calls",
			Buckets: prometheus.DefBuckets,
		}),
		GenerateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sbrdgen_generate_duration_seconds",
			Help:    "Duration of a full batch generation run",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Register attaches every metric to a fresh registry, mirroring the
// teacher's custom-registry pattern rather than relying on the global
// default registry.
func (m *Metrics) Register() error {
	m.registry = prometheus.NewRegistry()

	for _, c := range []prometheus.Collector{m.RecordsGenerated, m.EvalErrors, m.BuildDuration, m.GenerateDuration} {
		if err := m.registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RecordBuild observes one schema.Build call's duration.
func (m *Metrics) RecordBuild(d time.Duration) {
	m.BuildDuration.Observe(d.Seconds())
}

// RecordGenerate observes one full generation run's duration and the number
// of records it produced.
func (m *Metrics) RecordGenerate(d time.Duration, count int) {
	m.GenerateDuration.Observe(d.Seconds())
	m.RecordsGenerated.Add(float64(count))
	atomic.AddInt64(&m.recordsGenerated, int64(count))
}

// RecordEvalError increments the eval-error counter.
func (m *Metrics) RecordEvalError() {
	m.EvalErrors.Inc()
	atomic.AddInt64(&m.evalErrors, 1)
}

// Summary logs the accumulated counters as a single structured line.
func (m *Metrics) Summary(logger *Logger) {
	logger.Info("generation run summary",
		zap.Int64("records_generated", atomic.LoadInt64(&m.recordsGenerated)),
		zap.Int64("eval_errors", atomic.LoadInt64(&m.evalErrors)),
	)
}
