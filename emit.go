package typedbus

import (
	"fmt"
)

// Emit delivers event to every handler subscribed for T, synchronously, on
// the calling goroutine, in subscription order. Emitting a type with no
// subscribers is a silent no-op.
//
// Delivery stops at the first handler that returns a non-nil error; handlers
// registered after it are not invoked for this emit, and the error is
// returned to the caller wrapped with the event type. Likewise a handler
// panic is not recovered and unwinds through Emit. This abort-on-first-
// failure policy is deliberate: the bus performs no logging, retry, or
// collection, leaving failure visibility entirely to the caller.
func Emit[T any](bus *Bus, event T) error {
	k := KeyOf[T]()
	if bus.metrics != nil {
		bus.metrics.emits.WithLabelValues(bus.id, k.String()).Inc()
	}
	for _, l := range bus.listeners(k) {
		if err := l.fn(event); err != nil {
			if bus.metrics != nil {
				bus.metrics.handlerErrors.WithLabelValues(bus.id, k.String()).Inc()
			}
			return fmt.Errorf("typedbus: handler for %s: %w", k, err)
		}
		if bus.metrics != nil {
			bus.metrics.deliveries.WithLabelValues(bus.id, k.String()).Inc()
		}
	}
	return nil
}
