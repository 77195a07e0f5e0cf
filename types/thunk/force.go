package thunk

import (
	"fmt"
	"reflect"
)

// ForceAny resolves x to a plain value. Thunks are evaluated, and so are the
// thunks they return, until the result is not a Forcer. Plain values are
// returned unchanged.
func ForceAny(x any) (any, error) {
	for {
		f, ok := x.(Forcer)
		if !ok {
			return x, nil
		}

		v, err := f.EvalAny()
		if err != nil {
			return nil, err
		}

		x = v
	}
}

// Force resolves x like ForceAny and returns the result as a T.
func Force[T any](x any) (T, error) {
	var zero T

	v, err := ForceAny(x)
	if err != nil {
		return zero, err
	}

	if v == nil && nilable[T]() {
		return zero, nil
	}

	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %s", ErrTypeMismatch, v, reflect.TypeFor[T]())
	}

	return out, nil
}

// MustForce is like Force but panics on error.
func MustForce[T any](x any) T {
	v, err := Force[T](x)
	if err != nil {
		panic(err)
	}

	return v
}

// Join flattens a thunk of a thunk without evaluating either.
func Join[T any](v Value[*Thunk[T]]) *Thunk[T] {
	return New(func() (T, error) {
		inner, err := v.Eval()
		if err != nil {
			var zero T

			return zero, err
		}

		return inner.Eval()
	})
}

// resolve evaluates an argument. Results held in an interface type are
// flattened with ForceAny; concrete types are returned as evaluated so a
// Value[*Thunk[X]] still yields the inner thunk.
func resolve[T any](v Value[T]) (T, error) {
	var zero T

	if v == nil {
		return zero, ErrNilThunk
	}

	out, err := v.Eval()
	if err != nil {
		return zero, err
	}

	if reflect.TypeFor[T]().Kind() != reflect.Interface {
		return out, nil
	}

	if _, ok := any(out).(Forcer); !ok {
		return out, nil
	}

	return Force[T](out)
}

func nilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice,
		reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
