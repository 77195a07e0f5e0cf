package thunk

// All composes a short-circuit conjunction. Operands are forced left to right
// and forcing stops at the first falsy one; an error stops it as well.
// All of no operands is true.
func All[T any](values ...Value[T]) *Thunk[bool] {
	return New(func() (bool, error) {
		for _, v := range values {
			ok, err := Truth(v)
			if err != nil || !ok {
				return false, err
			}
		}

		return true, nil
	})
}

// Any composes a short-circuit disjunction, stopping at the first truthy
// operand. Any of no operands is false.
func Any[T any](values ...Value[T]) *Thunk[bool] {
	return New(func() (bool, error) {
		for _, v := range values {
			ok, err := Truth(v)
			if err != nil || ok {
				return ok, err
			}
		}

		return false, nil
	})
}

// Not composes a lazy logical negation of v's truthiness.
func Not[T any](v Value[T]) *Thunk[bool] {
	return New(func() (bool, error) {
		ok, err := Truth(v)
		if err != nil {
			return false, err
		}

		return !ok, nil
	})
}
