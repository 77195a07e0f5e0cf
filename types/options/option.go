/*
Package options provides a typed optional value.

The zero Option is empty, which makes it usable as a write-once memo slot:
an empty slot means "nothing computed yet" without reserving any value of T.
*/
package options

import "fmt"

// Option holds either nothing or a single value of T.
type Option[T any] struct {
	value T
	ok    bool
}

// None returns an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Some returns an option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// MustGet returns the held value or panics with ErrEmpty.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic(ErrEmpty)
	}

	return o.value
}

// OrElse returns the held value or fallback when empty.
func (o Option[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}

	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
