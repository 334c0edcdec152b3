package typedbus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "typedbus"

// busMetrics holds the per-bus Prometheus collectors. All series carry a
// "bus" label (the instance ID) and an "event" label (the event type name),
// so several Bus instances can share one registry.
type busMetrics struct {
	emits         *prometheus.CounterVec
	deliveries    *prometheus.CounterVec
	handlerErrors *prometheus.CounterVec
	listeners     *prometheus.GaugeVec
}

func newBusMetrics(reg prometheus.Registerer) *busMetrics {
	factory := promauto.With(reg)
	labels := []string{"bus", "event"}

	return &busMetrics{
		emits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "emits_total",
				Help:      "Total number of Emit calls, by event type.",
			},
			labels,
		),
		deliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "deliveries_total",
				Help:      "Total number of successful handler invocations.",
			},
			labels,
		),
		handlerErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "handler_errors_total",
				Help:      "Total number of handler invocations that returned an error.",
			},
			labels,
		),
		listeners: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "listeners",
				Help:      "Number of registered listeners, by event type.",
			},
			labels,
		),
	}
}
