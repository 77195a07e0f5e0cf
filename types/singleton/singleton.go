/*
Package singleton keeps at most one instance per type for the lifetime of the process.
*/
package singleton

import (
	"reflect"
	"sync"
)

var registry = struct {
	mu        sync.Mutex
	instances map[reflect.Type]any
}{
	instances: map[reflect.Type]any{},
}

// Of returns the instance registered for T, building it with constructor on first use.
// Later calls ignore constructor and return the same pointer.
func Of[T any](constructor func() *T) *T {
	key := reflect.TypeFor[T]()

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if instance, ok := registry.instances[key]; ok {
		return instance.(*T) //nolint:forcetypeassert // keyed by T
	}

	instance := constructor()
	registry.instances[key] = instance

	return instance
}

// Has reports whether an instance of T has already been built.
func Has[T any]() bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	_, ok := registry.instances[reflect.TypeFor[T]()]

	return ok
}
