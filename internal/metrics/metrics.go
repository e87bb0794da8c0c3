// Package metrics records encoding and solving figures in Prometheus collectors, which can be dumped in the text
// exposition format for node_exporter's textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/limaJavier/tournament/pkg/model"
)

// Result labels of solver runs.
const (
	ResultSatisfiable   = "satisfiable"
	ResultUnsatisfiable = "unsatisfiable"
	ResultError         = "error"
)

type Recorder struct {
	registry  *prometheus.Registry
	variables prometheus.Gauge
	clauses   *prometheus.GaugeVec
	duration  *prometheus.HistogramVec
	results   *prometheus.CounterVec
}

// NewRecorder registers the collectors on reg, a fresh registry when nil. Collectors already registered are reused.
func NewRecorder(reg *prometheus.Registry) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	variables := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tournament_model_variables",
		Help: "Largest variable identifier of the last generated model",
	})
	clauses := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tournament_model_clauses",
		Help: "Clauses of the last generated model per constraint family",
	}, []string{"family"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tournament_solve_duration_seconds",
		Help:    "Time spent by the SAT-Solver",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	}, []string{"solver"})
	results := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tournament_solve_results_total",
		Help: "Solver runs per outcome",
	}, []string{"solver", "result"})

	var err error
	if variables, err = register(reg, variables); err != nil {
		return nil, err
	}
	if clauses, err = register(reg, clauses); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if results, err = register(reg, results); err != nil {
		return nil, err
	}

	return &Recorder{
		registry:  reg,
		variables: variables,
		clauses:   clauses,
		duration:  duration,
		results:   results,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) (C, error) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return collector, err
	}
	return collector, nil
}

// RecordModel sets the model gauges.
func (r *Recorder) RecordModel(m model.Model) {
	r.variables.Set(float64(m.MaxVariable))
	for _, family := range m.Families {
		r.clauses.WithLabelValues(family.Name).Set(float64(family.Clauses))
	}
}

// RecordSolve observes a solver run. A nil error with satisfiable false stands for an unsatisfiable instance.
func (r *Recorder) RecordSolve(solver string, elapsed time.Duration, satisfiable bool, err error) {
	result := ResultUnsatisfiable
	switch {
	case err != nil:
		result = ResultError
	case satisfiable:
		result = ResultSatisfiable
	}
	r.duration.WithLabelValues(solver).Observe(elapsed.Seconds())
	r.results.WithLabelValues(solver, result).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes every registered metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
