package recording

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// BackendFactory returns a backend ready for one Begin/End cycle.
type BackendFactory func() Backend

var registry = struct {
	sync.RWMutex
	factories map[string]BackendFactory
}{factories: make(map[string]BackendFactory)}

// Register makes a backend available under name. Backend packages call it
// from init, so a blank import is enough to enable them:
//
//	import _ "github.com/gogpu/cull/recording/backends/scissor"
//
// Register panics on an empty name, a nil factory or a name that is
// already taken.
func Register(name string, factory BackendFactory) {
	if name == "" {
		panic("recording: Register with empty name")
	}
	if factory == nil {
		panic("recording: Register factory is nil for " + name)
	}

	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.factories[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	registry.factories[name] = factory
}

// Unregister removes name from the registry. Unknown names are ignored.
func Unregister(name string) {
	registry.Lock()
	defer registry.Unlock()
	delete(registry.factories, name)
}

// NewBackend returns a fresh backend from the factory registered as name.
// The error wraps ErrUnknownBackend when nothing is registered under name,
// which usually means the backend package was never imported.
func NewBackend(name string) (Backend, error) {
	registry.RLock()
	factory, ok := registry.factories[name]
	registry.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return factory(), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends lists the registered names in sorted order.
func Backends() []string {
	registry.RLock()
	defer registry.RUnlock()
	return slices.Sorted(maps.Keys(registry.factories))
}

// IsRegistered reports whether name has a factory.
func IsRegistered(name string) bool {
	registry.RLock()
	defer registry.RUnlock()
	_, ok := registry.factories[name]
	return ok
}
