package typedbus

import (
	"fmt"
	"reflect"
	"sync"
)

// Key uniquely identifies one event type for the lifetime of the process.
// It is assigned on the type's first use and never reused; equal types
// always produce equal keys, distinct types (including structurally
// identical ones, and T versus *T) always produce distinct keys.
//
// Keys are derived from the runtime type descriptor's identity, never from
// its name, so two types that happen to share a name in different packages
// still get distinct keys.
type Key uint64

var (
	keyMu    sync.RWMutex
	keys     = make(map[reflect.Type]Key)
	keyNames = make(map[Key]string)
	lastKey  Key
)

// KeyOf returns the Key for event type T, assigning one on first use.
// It never fails and, past the first call per type, never allocates.
func KeyOf[T any]() Key {
	return keyFor(reflect.TypeOf((*T)(nil)).Elem())
}

func keyFor(rt reflect.Type) Key {
	keyMu.RLock()
	k, ok := keys[rt]
	keyMu.RUnlock()
	if ok {
		return k
	}

	keyMu.Lock()
	defer keyMu.Unlock()
	if k, ok := keys[rt]; ok {
		return k
	}
	lastKey++
	keys[rt] = lastKey
	keyNames[lastKey] = rt.String()
	return lastKey
}

// String returns the name of the event type the key was assigned for.
// The name is informational only; key identity never depends on it.
func (k Key) String() string {
	keyMu.RLock()
	name, ok := keyNames[k]
	keyMu.RUnlock()
	if !ok {
		return fmt.Sprintf("typedbus.Key(%d)", uint64(k))
	}
	return name
}
