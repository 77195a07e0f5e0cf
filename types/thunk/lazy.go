package thunk

import "sync"

// Lazy0 turns fn into a function returning a thunk of fn's result.
func Lazy0[R any](fn func() (R, error)) func() *Thunk[R] {
	return func() *Thunk[R] {
		return New(fn)
	}
}

// Lazy1 turns fn into a function that captures its argument and returns a
// thunk. The argument is resolved like an Apply1 argument when the thunk is
// forced, so a thunk passed through an interface-typed parameter arrives as
// its value.
func Lazy1[A, R any](fn func(A) (R, error)) func(A) *Thunk[R] {
	return func(a A) *Thunk[R] {
		return Apply1(fn, Of(a))
	}
}

func Lazy2[A, B, R any](fn func(A, B) (R, error)) func(A, B) *Thunk[R] {
	return func(a A, b B) *Thunk[R] {
		return Apply2(fn, Of(a), Of(b))
	}
}

func Lazy3[A, B, C, R any](fn func(A, B, C) (R, error)) func(A, B, C) *Thunk[R] {
	return func(a A, b B, c C) *Thunk[R] {
		return Apply3(fn, Of(a), Of(b), Of(c))
	}
}

// LazyExpr1 wraps a function whose body returns a lazy expression rather than
// a value. Calling the wrapped function does not run the body; evaluating the
// returned thunk runs the body once and evaluates the expression it built.
//
// Recursive definitions written this way build their call tree only when
// forced:
//
//	var fib func(int) *thunk.Thunk[int]
//	fib = thunk.LazyExpr1(func(n int) thunk.Value[int] {
//		if n < 2 {
//			return thunk.Of(n)
//		}
//		return fib(n - 1).Add(fib(n - 2))
//	})
func LazyExpr1[A, R any](fn func(A) Value[R]) func(A) *Thunk[R] {
	return func(a A) *Thunk[R] {
		return New(func() (R, error) {
			return resolve(fn(a))
		})
	}
}

// MemoExpr1 is LazyExpr1 with one shared thunk per distinct argument, so a
// sub-expression reached along several paths is evaluated once. Thunks are
// kept for the lifetime of the returned function.
func MemoExpr1[A comparable, R any](fn func(A) Value[R]) func(A) *Thunk[R] {
	wrapped := LazyExpr1(fn)

	return share(wrapped)
}

// Memo1 is Lazy1 with one shared thunk per distinct argument.
func Memo1[A comparable, R any](fn func(A) (R, error)) func(A) *Thunk[R] {
	return share(Lazy1(fn))
}

func share[A comparable, R any](build func(A) *Thunk[R]) func(A) *Thunk[R] {
	var (
		mu     sync.Mutex
		thunks = map[A]*Thunk[R]{}
	)

	return func(a A) *Thunk[R] {
		mu.Lock()
		defer mu.Unlock()

		if t, ok := thunks[a]; ok {
			return t
		}

		t := build(a)
		thunks[a] = t

		return t
	}
}
