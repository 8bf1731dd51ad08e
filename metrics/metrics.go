// Package metrics exports filtered predicate counters to Prometheus.
//
// A Collector implements robust.Observer. Attach it to predicates with
// robust.WithObserver (or predicates.WithFilterOptions) to see how often
// each predicate is decided by interval arithmetic and how often it needs
// exact arithmetic.
//
// Metrics:
//   - <namespace>_<subsystem>_evaluations_total{predicate, outcome}:
//     evaluations by outcome (certain, fallback, error)
//   - <namespace>_<subsystem>_exact_state_materializations_total{predicate}:
//     conversions of persistent state to exact form
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	robust "github.com/gogpu/gg-robust"
)

// Config names the exported metrics.
type Config struct {
	// Namespace is the metric namespace (default "gg").
	Namespace string
	// Subsystem is the metric subsystem (default "robust").
	Subsystem string
}

// Collector records predicate outcomes.
//
// Collector is safe for concurrent use.
type Collector struct {
	evaluationsTotal      *prometheus.CounterVec
	materializationsTotal *prometheus.CounterVec
}

var _ robust.Observer = (*Collector)(nil)

// NewCollector creates the predicate metrics and registers them with the
// provided registry. If registry is nil, a new registry is created.
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	collector := metrics.NewCollector(metrics.Config{}, reg)
//	line := predicates.NewSideOfLine(p, q,
//	    predicates.WithFilterOptions(robust.WithObserver(collector)))
func NewCollector(cfg Config, registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "gg"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "robust"
	}

	c := &Collector{
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "evaluations_total",
				Help:      "Total number of predicate evaluations by outcome",
			},
			[]string{"predicate", "outcome"},
		),

		materializationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "exact_state_materializations_total",
				Help:      "Total number of persistent state conversions to exact form",
			},
			[]string{"predicate"},
		),
	}

	registry.MustRegister(
		c.evaluationsTotal,
		c.materializationsTotal,
	)

	return c
}

// ObserveEval records one evaluation.
func (c *Collector) ObserveEval(predicate string, outcome robust.Outcome) {
	c.evaluationsTotal.WithLabelValues(predicate, outcome.String()).Inc()
}

// ObserveMaterialize records one exact state conversion.
func (c *Collector) ObserveMaterialize(predicate string) {
	c.materializationsTotal.WithLabelValues(predicate).Inc()
}
