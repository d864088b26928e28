// Package metrics exports sampler activity as Prometheus metrics.
//
// A Recorder registers its collectors on the registry it is given, so a run
// can keep its own registry and dump it once finished with WriteText.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/intergen/sampler"
)

// Namespace prefixes every metric name.
const Namespace = "intergen"

// Recorder implements sampler.Recorder with Prometheus collectors.
type Recorder struct {
	attempts     *prometheus.CounterVec
	produced     prometheus.Gauge
	terminations *prometheus.CounterVec
}

var _ sampler.Recorder = (*Recorder)(nil)

// NewRecorder registers the sampler collectors on reg.
// It panics if they are already registered there, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		// attempts counts generator calls by outcome
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "sampler",
			Name:      "attempts_total",
			Help:      "Generation attempts by outcome (success, duplicate, failure)",
		}, []string{"outcome"}),

		// produced is the number of distinct artifacts persisted by the last run
		produced: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "sampler",
			Name:      "produced",
			Help:      "Distinct artifacts persisted by the last finished run",
		}),

		// terminations counts finished runs by terminal state
		terminations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "sampler",
			Name:      "runs_total",
			Help:      "Finished runs by terminal state (succeeded, exhausted)",
		}, []string{"state"}),
	}
}

// ObserveAttempt counts one attempt.
func (r *Recorder) ObserveAttempt(o sampler.Outcome) {
	r.attempts.WithLabelValues(o.String()).Inc()
}

// ObserveTermination records the end of a run.
func (r *Recorder) ObserveTermination(s sampler.State, produced int) {
	r.terminations.WithLabelValues(s.String()).Inc()
	r.produced.Set(float64(produced))
}

// WriteText gathers g and writes every family in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
