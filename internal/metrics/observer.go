// Package metrics exports scheduler activity as Prometheus metrics.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/go-drift/motion/pkg/animation"
)

// Observer implements animation.Observer with Prometheus collectors.
// Widgets are labelled by kind, not instance id, to keep cardinality flat.
type Observer struct {
	started  *prometheus.CounterVec
	finished *prometheus.CounterVec
	running  *prometheus.GaugeVec
	duration *prometheus.HistogramVec
}

// NewObserver registers the scheduler collectors with reg.
func NewObserver(reg prometheus.Registerer) *Observer {
	factory := promauto.With(reg)
	return &Observer{
		started: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "motion",
			Subsystem: "animation",
			Name:      "started_total",
			Help:      "Number of animation handles that started delivering frames.",
		}, []string{"widget"}),
		finished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "motion",
			Subsystem: "animation",
			Name:      "finished_total",
			Help:      "Number of animation handles that completed or were cancelled.",
		}, []string{"widget", "status"}),
		running: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "motion",
			Subsystem: "animation",
			Name:      "running",
			Help:      "Number of animation handles currently running.",
		}, []string{"widget"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "motion",
			Subsystem: "animation",
			Name:      "duration_seconds",
			Help:      "Animation time from start to completion or cancellation.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8), // 50ms to ~6s
		}, []string{"widget", "status"}),
	}
}

// AnimationStarted records a handle that began delivering frames.
func (o *Observer) AnimationStarted(widget string, _ animation.Slot) {
	kind := Kind(widget)
	o.started.WithLabelValues(kind).Inc()
	o.running.WithLabelValues(kind).Inc()
}

// AnimationFinished records a handle that reached a terminal status.
func (o *Observer) AnimationFinished(widget string, _ animation.Slot, status animation.Status, elapsed time.Duration) {
	kind := Kind(widget)
	o.finished.WithLabelValues(kind, status.String()).Inc()
	o.running.WithLabelValues(kind).Dec()
	o.duration.WithLabelValues(kind, status.String()).Observe(elapsed.Seconds())
}

// Kind strips the instance suffix from a widget id ("like-1b9d6bcd" -> "like").
func Kind(widget string) string {
	if i := strings.LastIndexByte(widget, '-'); i > 0 {
		return widget[:i]
	}
	return widget
}
