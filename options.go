package typedbus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Bus.
type Option func(*Bus)

// WithLocking makes the bus safe for concurrent Subscribe and Emit calls
// from multiple goroutines by guarding the listener table with an RWMutex.
// Emit holds the read lock only while capturing the listener sequence and
// dispatches outside it, so running handlers never block a concurrent
// Subscribe. Dispatch semantics are unchanged.
func WithLocking() Option {
	return func(b *Bus) { b.lk = &sync.RWMutex{} }
}

// WithMetrics registers this bus's Prometheus collectors on reg. Collectors
// are labelled by bus ID and event type name; see metrics.go for the series.
// Without this option the bus records nothing.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(b *Bus) { b.metrics = newBusMetrics(reg) }
}
