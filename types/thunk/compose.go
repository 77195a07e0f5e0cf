package thunk

// Binary composes op over a and b. Neither operand is evaluated until the
// returned thunk is; operand type errors surface only then.
func Binary[T any](op Op, a, b Value[T]) *Thunk[T] {
	return New(func() (T, error) {
		var zero T

		x, err := resolve(a)
		if err != nil {
			return zero, err
		}

		y, err := resolve(b)
		if err != nil {
			return zero, err
		}

		return applyBinary(op, x, y)
	})
}

// Unary composes op over a without evaluating it.
func Unary[T any](op Op, a Value[T]) *Thunk[T] {
	return New(func() (T, error) {
		var zero T

		x, err := resolve(a)
		if err != nil {
			return zero, err
		}

		return applyUnary(op, x)
	})
}

// Pair is the result of DivMod.
type Pair[T any] struct {
	Quotient  T
	Remainder T
}

// DivMod composes floor division and modulo of a by b into one thunk.
func DivMod[T any](a, b Value[T]) *Thunk[Pair[T]] {
	return New(func() (Pair[T], error) {
		x, err := resolve(a)
		if err != nil {
			return Pair[T]{}, err
		}

		y, err := resolve(b)
		if err != nil {
			return Pair[T]{}, err
		}

		q, err := applyBinary(OpFloorDiv, x, y)
		if err != nil {
			return Pair[T]{}, err
		}

		r, err := applyBinary(OpMod, x, y)
		if err != nil {
			return Pair[T]{}, err
		}

		return Pair[T]{Quotient: q, Remainder: r}, nil
	})
}

// PowMod composes x**y mod m for integer kinds.
func PowMod[T any](x, y, m Value[T]) *Thunk[T] {
	return Apply3(applyPowMod[T], x, y, m)
}

func (t *Thunk[T]) Add(other Value[T]) *Thunk[T] { return Binary[T](OpAdd, t, other) }

func (t *Thunk[T]) Sub(other Value[T]) *Thunk[T] { return Binary[T](OpSub, t, other) }

func (t *Thunk[T]) Mul(other Value[T]) *Thunk[T] { return Binary[T](OpMul, t, other) }

func (t *Thunk[T]) MatMul(other Value[T]) *Thunk[T] { return Binary[T](OpMatMul, t, other) }

func (t *Thunk[T]) Div(other Value[T]) *Thunk[T] { return Binary[T](OpDiv, t, other) }

func (t *Thunk[T]) FloorDiv(other Value[T]) *Thunk[T] { return Binary[T](OpFloorDiv, t, other) }

func (t *Thunk[T]) Mod(other Value[T]) *Thunk[T] { return Binary[T](OpMod, t, other) }

func (t *Thunk[T]) Pow(other Value[T]) *Thunk[T] { return Binary[T](OpPow, t, other) }

func (t *Thunk[T]) PowMod(exp, mod Value[T]) *Thunk[T] { return PowMod[T](t, exp, mod) }

func (t *Thunk[T]) Shl(other Value[T]) *Thunk[T] { return Binary[T](OpShl, t, other) }

func (t *Thunk[T]) Shr(other Value[T]) *Thunk[T] { return Binary[T](OpShr, t, other) }

func (t *Thunk[T]) And(other Value[T]) *Thunk[T] { return Binary[T](OpAnd, t, other) }

func (t *Thunk[T]) Xor(other Value[T]) *Thunk[T] { return Binary[T](OpXor, t, other) }

func (t *Thunk[T]) Or(other Value[T]) *Thunk[T] { return Binary[T](OpOr, t, other) }

func (t *Thunk[T]) Neg() *Thunk[T] { return Unary[T](OpNeg, t) }

func (t *Thunk[T]) Pos() *Thunk[T] { return Unary[T](OpPos, t) }

func (t *Thunk[T]) Abs() *Thunk[T] { return Unary[T](OpAbs, t) }

func (t *Thunk[T]) Invert() *Thunk[T] { return Unary[T](OpInvert, t) }
