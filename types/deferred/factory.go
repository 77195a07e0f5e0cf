package deferred

import (
	"github.com/shortlink-org/lazy/types/thunk"
)

// Factory1 wraps a one-argument constructor. Each call of the returned
// function yields a new deferred object; the argument may itself be lazy and
// is forced right before the constructor runs.
func Factory1[A, T any](ctor func(A) (T, error)) func(a thunk.Value[A]) *Object[T] {
	return func(a thunk.Value[A]) *Object[T] {
		return &Object[T]{t: thunk.Apply1(ctor, a)}
	}
}

// Factory2 wraps a two-argument constructor.
func Factory2[A, B, T any](ctor func(A, B) (T, error)) func(a thunk.Value[A], b thunk.Value[B]) *Object[T] {
	return func(a thunk.Value[A], b thunk.Value[B]) *Object[T] {
		return &Object[T]{t: thunk.Apply2(ctor, a, b)}
	}
}

// Constructible is implemented by types that are always built lazily.
// New is called on the zero value and returns the constructed instance.
type Constructible[T any] interface {
	New() (T, error)
}

// Make returns a deferred T built through T's own New method.
func Make[T Constructible[T]]() *Object[T] {
	return Of(func() (T, error) {
		var zero T

		return zero.New()
	})
}
