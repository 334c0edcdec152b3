package typedbus

// Subscribe registers handler for events of type T. The handler is wrapped
// in a type-erased thunk and appended under T's Key; multiple subscriptions
// for the same type are all retained, in order, with no deduplication.
// Subscribing never fails.
//
// The thunk recovers the concrete type with a plain assertion and nothing
// else: no tag travels with the untyped value, and there is no fallback
// path. This is sound by construction, not by runtime checking — the bucket
// for KeyOf[T]() is populated only by thunks built from the same T, and
// Emit[T] is the sole producer of the untyped values handed to them, so the
// two sides of the assertion are paired by the shared type parameter. Any
// change that lets a bucket hold a thunk for a different type than the one
// producing its key breaks the whole design.
func Subscribe[T any](bus *Bus, handler Handler[T]) {
	bus.add(KeyOf[T](), listener{
		fn: func(event any) error {
			return handler(event.(T))
		},
	})
}
