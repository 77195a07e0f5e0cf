package thunk

import (
	"fmt"
	"maps"
	"slices"
)

// Apply1 creates a thunk that evaluates a and then calls fn with the result.
func Apply1[A, R any](fn func(A) (R, error), a Value[A]) *Thunk[R] {
	return New(func() (R, error) {
		var zero R

		x, err := resolve(a)
		if err != nil {
			return zero, err
		}

		return fn(x)
	})
}

// Apply2 creates a thunk that evaluates a and b, in order, and then calls fn.
func Apply2[A, B, R any](fn func(A, B) (R, error), a Value[A], b Value[B]) *Thunk[R] {
	return New(func() (R, error) {
		var zero R

		x, err := resolve(a)
		if err != nil {
			return zero, err
		}

		y, err := resolve(b)
		if err != nil {
			return zero, err
		}

		return fn(x, y)
	})
}

// Apply3 creates a thunk that evaluates a, b and c, in order, and then calls fn.
func Apply3[A, B, C, R any](fn func(A, B, C) (R, error), a Value[A], b Value[B], c Value[C]) *Thunk[R] {
	return New(func() (R, error) {
		var zero R

		x, err := resolve(a)
		if err != nil {
			return zero, err
		}

		y, err := resolve(b)
		if err != nil {
			return zero, err
		}

		z, err := resolve(c)
		if err != nil {
			return zero, err
		}

		return fn(x, y, z)
	})
}

// Args are the forced arguments of a dynamic call.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Call creates an untyped thunk. Every positional and named argument may be
// a thunk; all of them are forced before fn runs. Positional arguments are
// forced first, then named ones in key order. The argument slice and map are
// copied, later changes by the caller are not seen.
func Call(fn func(Args) (any, error), positional []any, named map[string]any) *Thunk[any] {
	captured := Args{
		Positional: slices.Clone(positional),
		Named:      maps.Clone(named),
	}

	if len(captured.Positional) == 0 && len(captured.Named) == 0 {
		return New(func() (any, error) {
			return fn(Args{})
		})
	}

	return New(func() (any, error) {
		forced := Args{
			Positional: make([]any, len(captured.Positional)),
		}

		for i, arg := range captured.Positional {
			v, err := ForceAny(arg)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}

			forced.Positional[i] = v
		}

		if captured.Named != nil {
			forced.Named = make(map[string]any, len(captured.Named))

			for _, key := range slices.Sorted(maps.Keys(captured.Named)) {
				v, err := ForceAny(captured.Named[key])
				if err != nil {
					return nil, fmt.Errorf("argument %q: %w", key, err)
				}

				forced.Named[key] = v
			}
		}

		return fn(forced)
	})
}
