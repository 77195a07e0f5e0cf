/*
Package deferred postpones object construction until first use.

Instead of intercepting a type's constructor, callers ask for deferred
construction explicitly: Of (or a Factory) returns an Object whose
constructor runs the first time the object is needed, exactly once.
*/
package deferred

import (
	"github.com/shortlink-org/lazy/types/thunk"
)

// Object is a handle to a T that has not necessarily been constructed yet.
type Object[T any] struct {
	t *thunk.Thunk[T]
}

// Of returns a deferred object built by ctor on first use.
func Of[T any](ctor func() (T, error)) *Object[T] {
	return &Object[T]{t: thunk.New(ctor)}
}

// Get constructs the object if needed and returns it. A failed construction
// is retried by the next Get.
func (o *Object[T]) Get() (T, error) {
	return o.t.Eval()
}

// MustGet is like Get but panics on error.
func (o *Object[T]) MustGet() T {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}

	return v
}

// Built reports whether the constructor has completed.
func (o *Object[T]) Built() bool {
	return o.t.Evaluated()
}

// Eval implements thunk.Value.
func (o *Object[T]) Eval() (T, error) {
	return o.Get()
}

// EvalAny implements thunk.Forcer, so thunk.Force builds the object.
func (o *Object[T]) EvalAny() (any, error) {
	return o.Get()
}

// Thunk exposes the underlying thunk for composition.
func (o *Object[T]) Thunk() *thunk.Thunk[T] {
	return o.t
}

func (o *Object[T]) String() string {
	return o.t.String()
}
