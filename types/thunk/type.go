/*
Package thunk implements memoized lazy values.

A Thunk holds a suspended computation and a memo slot. The computation runs
the first time the thunk is evaluated; the result is stored and returned by
every later evaluation. Failed evaluations are not stored, so the next
evaluation runs the computation again.

Operators applied to thunks (Add, Mul, Shl, ...) build new thunks instead of
evaluating their operands, so whole expression graphs stay lazy until
something forces them.
*/
package thunk

// Value is anything that evaluates to a T: a *Thunk[T], a deferred object,
// or a plain value wrapped with Of.
type Value[T any] interface {
	Eval() (T, error)
}

// Forcer is the untyped view of a lazy value. ForceAny keeps evaluating
// while the result implements Forcer.
type Forcer interface {
	EvalAny() (any, error)
}

// Thunk is a suspended computation evaluated at most once.
type Thunk[T any] struct {
	doer func() (T, error) // action being thunked
	memo cell[T]           // cache for complete thunk data
}

// New creates a thunk for fn. fn is not called until the thunk is evaluated.
func New[T any](fn func() (T, error)) *Thunk[T] {
	return &Thunk[T]{doer: fn}
}

// From creates a thunk for a computation that cannot fail.
func From[T any](fn func() T) *Thunk[T] {
	return New(func() (T, error) {
		return fn(), nil
	})
}

// Const wraps an already known value in an evaluated thunk.
func Const[T any](v T) *Thunk[T] {
	t := &Thunk[T]{}
	t.memo.fill(v)

	return t
}

// Fail creates a thunk whose evaluation always returns err.
func Fail[T any](err error) *Thunk[T] {
	return New(func() (T, error) {
		var zero T

		return zero, err
	})
}

// Eval returns the memoized result, running the suspended computation on first use.
// An error leaves the thunk unevaluated.
func (t *Thunk[T]) Eval() (T, error) {
	if t == nil {
		var zero T

		return zero, ErrNilThunk
	}

	return t.memo.load(&t.doer)
}

// EvalAny implements Forcer.
func (t *Thunk[T]) EvalAny() (any, error) {
	return t.Eval()
}

// Evaluated reports whether the memo slot has been filled.
func (t *Thunk[T]) Evaluated() bool {
	return t != nil && t.memo.done.Load()
}

// Peek returns the memoized value without evaluating.
func (t *Thunk[T]) Peek() (T, bool) {
	if !t.Evaluated() {
		var zero T

		return zero, false
	}

	return t.memo.get()
}

// Memo returns the memoized value, or NotEvaluated when the thunk has not run yet.
func (t *Thunk[T]) Memo() any {
	v, ok := t.Peek()
	if !ok {
		return NotEvaluated
	}

	return v
}

// Plain is a non-lazy Value. Evaluating it returns the wrapped value unchanged.
type Plain[T any] struct {
	v T
}

// Of wraps a plain value so it can be used as an operand next to thunks.
func Of[T any](v T) Plain[T] {
	return Plain[T]{v: v}
}

func (p Plain[T]) Eval() (T, error) {
	return p.v, nil
}

func (p Plain[T]) EvalAny() (any, error) {
	return p.v, nil
}
