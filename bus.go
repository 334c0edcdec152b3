// Package typedbus is an in-process, type-safe publish/subscribe event bus.
// Independent components exchange typed events through a single Bus without
// holding references to one another: Subscribe registers a callback for one
// concrete event type, Emit delivers a value of that type to every callback
// registered for it, synchronously and in registration order.
//
// Event types are plain structs chosen by the application; the bus imposes
// no required fields, base type, or marker interface on them. Listeners for
// all types share one storage table behind a type-erased calling convention;
// the typed signature is restored at the dispatch boundary (see subscribe.go
// for why that boundary cast is sound).
//
// A Bus returned by New is not safe for concurrent use; see WithLocking.
package typedbus

import (
	"github.com/google/uuid"
)

// listener is a type-erased entry in the bus table. fn accepts the untyped
// event value produced by Emit and invokes the originally supplied typed
// handler. Entries are immutable once appended.
type listener struct {
	fn func(event any) error
}

// rwLocker guards the listener table. The default bus uses nopLocker (no
// synchronization, per the single-goroutine contract); WithLocking installs
// a *sync.RWMutex.
type rwLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type nopLocker struct{}

func (nopLocker) Lock()    {}
func (nopLocker) Unlock()  {}
func (nopLocker) RLock()   {}
func (nopLocker) RUnlock() {}

// Bus is the central event dispatcher. It owns one listener table mapping
// each event type's Key to the ordered sequence of listeners registered for
// that type. The table is append-only: listeners are never removed or
// reordered, and all of them are released together when the Bus itself is
// garbage collected.
//
// A Bus must be constructed with New and passed explicitly to every
// subscriber and emitter; the package maintains no ambient instance.
type Bus struct {
	id      string
	lk      rwLocker
	table   map[Key][]listener
	metrics *busMetrics
}

// New creates a new Bus with the given options. Without options the bus is
// single-goroutine only: Subscribe and Emit perform no locking and must not
// be called concurrently against the same instance.
func New(opts ...Option) *Bus {
	b := &Bus{
		id:    uuid.NewString(),
		lk:    nopLocker{},
		table: make(map[Key][]listener),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ID returns the unique identifier of this Bus instance.
func (b *Bus) ID() string {
	return b.id
}

// add appends a listener under the given key, creating the sequence on the
// type's first subscription. Append-only: existing entries keep their slots,
// so registration order is dispatch order.
func (b *Bus) add(k Key, l listener) {
	b.lk.Lock()
	defer b.lk.Unlock()
	b.table[k] = append(b.table[k], l)
	if b.metrics != nil {
		b.metrics.listeners.WithLabelValues(b.id, k.String()).Inc()
	}
}

// listeners returns the current sequence for the given key. The returned
// slice header is captured under the (possibly no-op) read lock and iterated
// after release; because the table is append-only, a Subscribe that lands
// during dispatch grows the bucket without disturbing the captured header,
// so it takes effect from the next Emit rather than the one in flight.
func (b *Bus) listeners(k Key) []listener {
	b.lk.RLock()
	defer b.lk.RUnlock()
	return b.table[k]
}
