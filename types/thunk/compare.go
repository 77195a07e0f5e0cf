package thunk

import (
	"cmp"
	"hash/maphash"
	"reflect"
)

// Equal forces a and b and compares the results.
func Equal[T comparable](a, b Value[T]) (bool, error) {
	x, y, err := resolvePair(a, b)
	if err != nil {
		return false, err
	}

	return x == y, nil
}

// Compare forces a and b and orders the results like cmp.Compare.
func Compare[T cmp.Ordered](a, b Value[T]) (int, error) {
	x, y, err := resolvePair(a, b)
	if err != nil {
		return 0, err
	}

	return cmp.Compare(x, y), nil
}

// Less forces a and b and reports whether a orders before b.
func Less[T cmp.Ordered](a, b Value[T]) (bool, error) {
	c, err := Compare(a, b)

	return c < 0, err
}

// Key forces v for use as a map key next to eager values.
func Key[T comparable](v Value[T]) (T, error) {
	return resolve(v)
}

// Hash forces v and hashes the result, so a thunk hashes like the value it
// evaluates to under the same seed. Hashing evaluates the thunk.
func Hash[T comparable](seed maphash.Seed, v Value[T]) (uint64, error) {
	x, err := resolve(v)
	if err != nil {
		return 0, err
	}

	return maphash.Comparable(seed, x), nil
}

// Truth forces v and reports its truthiness: false for nil, zero numbers,
// false, and empty strings, slices, maps, arrays and channels. A Bool() bool
// method takes precedence.
func Truth[T any](v Value[T]) (bool, error) {
	x, err := resolve(v)
	if err != nil {
		return false, err
	}

	return truthy(x), nil
}

// Eq composes a lazy equality test.
func Eq[T comparable](a, b Value[T]) *Thunk[bool] {
	return Apply2(func(x, y T) (bool, error) { return x == y, nil }, a, b)
}

// Ne composes a lazy inequality test.
func Ne[T comparable](a, b Value[T]) *Thunk[bool] {
	return Apply2(func(x, y T) (bool, error) { return x != y, nil }, a, b)
}

// Lt composes a lazy a < b.
func Lt[T cmp.Ordered](a, b Value[T]) *Thunk[bool] {
	return Apply2(func(x, y T) (bool, error) { return cmp.Less(x, y), nil }, a, b)
}

// Le composes a lazy a <= b.
func Le[T cmp.Ordered](a, b Value[T]) *Thunk[bool] {
	return Apply2(func(x, y T) (bool, error) { return cmp.Compare(x, y) <= 0, nil }, a, b)
}

// Gt composes a lazy a > b.
func Gt[T cmp.Ordered](a, b Value[T]) *Thunk[bool] {
	return Apply2(func(x, y T) (bool, error) { return cmp.Compare(x, y) > 0, nil }, a, b)
}

// Ge composes a lazy a >= b.
func Ge[T cmp.Ordered](a, b Value[T]) *Thunk[bool] {
	return Apply2(func(x, y T) (bool, error) { return cmp.Compare(x, y) >= 0, nil }, a, b)
}

func resolvePair[T any](a, b Value[T]) (T, T, error) {
	var zero T

	x, err := resolve(a)
	if err != nil {
		return zero, zero, err
	}

	y, err := resolve(b)
	if err != nil {
		return zero, zero, err
	}

	return x, y, nil
}

func truthy(x any) bool {
	if b, ok := x.(interface{ Bool() bool }); ok {
		return b.Bool()
	}

	rv := reflect.ValueOf(x)
	if !rv.IsValid() {
		return false
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.UnsafePointer:
		return !rv.IsNil()
	case reflect.Struct:
		return true
	default:
		return !rv.IsZero()
	}
}
