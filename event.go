package typedbus

// Handler is a typed event callback. The handler receives the emitted value
// by copy and returns a non-nil error to abort delivery to any listeners
// registered after it for that emit (see Emit).
//
// Any concrete, nameable type can serve as an event: the bus requires no
// interface, base type, or particular fields. A handler subscribed for T is
// only ever invoked with a T.
type Handler[T any] func(event T) error
