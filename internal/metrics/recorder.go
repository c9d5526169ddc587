// Package metrics records generation and playback activity as Prometheus
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

const namespace = "algoviz"

// Recorder owns the algoviz collectors. It satisfies playback.Observer so it
// can be attached to an engine directly.
type Recorder struct {
	steps       *prometheus.CounterVec
	length      *prometheus.HistogramVec
	transitions *prometheus.CounterVec
	position    prometheus.Gauge
}

func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "steps_generated_total",
				Help:      "Steps produced by generators, by operation.",
			},
			[]string{"algorithm", "operation"},
		),
		length: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "sequence_length",
				Help:      "Number of steps in each generated sequence.",
				Buckets:   prometheus.ExponentialBuckets(2, 2, 12),
			},
			[]string{"algorithm"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "playback_transitions_total",
				Help:      "Playback cursor moves and play state changes.",
			},
			[]string{"event"},
		),
		position: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "playback_position",
			Help:      "Index of the step under the playback cursor.",
		}),
	}

	for _, c := range []prometheus.Collector{r.steps, r.length, r.transitions, r.position} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveSequence counts every step of a generated sequence.
func (r *Recorder) ObserveSequence(algorithm string, steps []step.Step) {
	for _, s := range steps {
		r.steps.WithLabelValues(algorithm, string(s.Op())).Inc()
	}
	r.length.WithLabelValues(algorithm).Observe(float64(len(steps)))
}

// Instrument returns def's generator wrapped to record what it produces.
func (r *Recorder) Instrument(def *algo.Definition) algo.Generator {
	gen := def.Generate
	return func(input []int) []step.Step {
		steps := gen(input)
		r.ObserveSequence(def.ID, steps)
		return steps
	}
}

func (r *Recorder) ObserveStep(index int) {
	r.transitions.WithLabelValues("step").Inc()
	r.position.Set(float64(index))
}

func (r *Recorder) ObservePlayState(playing bool) {
	event := "pause"
	if playing {
		event = "play"
	}
	r.transitions.WithLabelValues(event).Inc()
}

func (r *Recorder) OnStepChange(_ step.Step, index, _ int) { r.ObserveStep(index) }

func (r *Recorder) OnPlayStateChange(playing bool) { r.ObservePlayState(playing) }
