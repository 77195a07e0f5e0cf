package thunk

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Operand lets types outside the built-in kinds take part in operator
// composition, e.g. matrices implementing OpMatMul.
type Operand[T any] interface {
	Operate(op Op, other T) (T, error)
}

// UnaryOperand is the single-operand counterpart of Operand.
type UnaryOperand[T any] interface {
	OperateUnary(op Op) (T, error)
}

// applyBinary is the dispatch table for binary operators. Built-in kinds are
// matched by reflect.Kind, so named types (time.Duration, custom ints) work
// as well. The result has the operands' type.
func applyBinary[T any](op Op, x, y T) (T, error) {
	var zero T

	if !op.IsBinary() {
		return zero, unsupported(op, x, y)
	}

	if o, ok := any(x).(Operand[T]); ok {
		return o.Operate(op, y)
	}

	xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)
	if !xv.IsValid() || !yv.IsValid() || xv.Type() != yv.Type() {
		return zero, unsupported(op, x, y)
	}

	out := reflect.New(xv.Type()).Elem()

	var err error

	switch xv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var r int64
		r, err = integerBinary(op, xv.Int(), yv.Int())
		out.SetInt(r)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var r uint64
		r, err = integerBinary(op, xv.Uint(), yv.Uint())
		out.SetUint(r)
	case reflect.Float32, reflect.Float64:
		var r float64
		r, err = floatBinary(op, xv.Float(), yv.Float())
		out.SetFloat(r)
	case reflect.Complex64, reflect.Complex128:
		var r complex128
		r, err = complexBinary(op, xv.Complex(), yv.Complex())
		out.SetComplex(r)
	case reflect.String:
		if op != OpAdd {
			return zero, unsupported(op, x, y)
		}

		out.SetString(xv.String() + yv.String())
	case reflect.Bool:
		var r bool
		r, err = boolBinary(op, xv.Bool(), yv.Bool())
		out.SetBool(r)
	default:
		return zero, unsupported(op, x, y)
	}

	if err != nil {
		return zero, fmt.Errorf("%s(%v, %v): %w", op, x, y, err)
	}

	return out.Interface().(T), nil //nolint:forcetypeassert // out has the type of x
}

// applyUnary is the dispatch table for unary operators.
func applyUnary[T any](op Op, x T) (T, error) {
	var zero T

	if !op.IsUnary() {
		return zero, unsupported(op, x)
	}

	if o, ok := any(x).(UnaryOperand[T]); ok {
		return o.OperateUnary(op)
	}

	xv := reflect.ValueOf(x)
	if !xv.IsValid() {
		return zero, unsupported(op, x)
	}

	out := reflect.New(xv.Type()).Elem()

	var err error

	switch xv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var r int64
		r, err = integerUnary(op, xv.Int())
		out.SetInt(r)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var r uint64
		r, err = integerUnary(op, xv.Uint())
		out.SetUint(r)
	case reflect.Float32, reflect.Float64:
		var r float64
		r, err = floatUnary(op, xv.Float())
		out.SetFloat(r)
	case reflect.Complex64, reflect.Complex128:
		var r complex128
		r, err = complexUnary(op, xv.Complex())
		out.SetComplex(r)
	default:
		return zero, unsupported(op, x)
	}

	if err != nil {
		return zero, fmt.Errorf("%s(%v): %w", op, x, err)
	}

	return out.Interface().(T), nil //nolint:forcetypeassert // out has the type of x
}

// applyPowMod computes x**y mod m for integer kinds. The result takes the sign of m.
func applyPowMod[T any](x, y, m T) (T, error) {
	var zero T

	xv, yv, mv := reflect.ValueOf(x), reflect.ValueOf(y), reflect.ValueOf(m)
	if !xv.IsValid() || !yv.IsValid() || !mv.IsValid() || xv.Type() != yv.Type() || xv.Type() != mv.Type() {
		return zero, unsupported(OpPow, x, y, m)
	}

	var bx, by, bm *big.Int

	switch xv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bx, by, bm = big.NewInt(xv.Int()), big.NewInt(yv.Int()), big.NewInt(mv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		bx = new(big.Int).SetUint64(xv.Uint())
		by = new(big.Int).SetUint64(yv.Uint())
		bm = new(big.Int).SetUint64(mv.Uint())
	default:
		return zero, unsupported(OpPow, x, y, m)
	}

	if bm.Sign() == 0 {
		return zero, fmt.Errorf("pow(%v, %v, %v): %w", x, y, m, ErrDivisionByZero)
	}

	if by.Sign() < 0 {
		return zero, fmt.Errorf("pow(%v, %v, %v): %w", x, y, m, ErrNegativeOperand)
	}

	abs := new(big.Int).Abs(bm)
	r := new(big.Int).Exp(bx, by, abs)
	r.Mod(r, abs)

	if bm.Sign() < 0 && r.Sign() != 0 {
		r.Add(r, bm)
	}

	out := reflect.New(xv.Type()).Elem()
	if out.CanInt() {
		out.SetInt(r.Int64())
	} else {
		out.SetUint(r.Uint64())
	}

	return out.Interface().(T), nil //nolint:forcetypeassert // out has the type of x
}

func unsupported(op Op, operands ...any) error {
	types := make([]any, len(operands))
	for i, operand := range operands {
		types[i] = fmt.Sprintf("%T", operand)
	}

	return fmt.Errorf("%w: %s on %v", ErrUnsupportedOperand, op, types)
}

func integerBinary[I constraints.Integer](op Op, x, y I) (I, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSub:
		return x - y, nil
	case OpMul:
		return x * y, nil
	case OpDiv:
		if y == 0 {
			return 0, ErrDivisionByZero
		}

		return x / y, nil
	case OpFloorDiv:
		if y == 0 {
			return 0, ErrDivisionByZero
		}

		q := x / y
		if x%y != 0 && (x < 0) != (y < 0) {
			q--
		}

		return q, nil
	case OpMod:
		if y == 0 {
			return 0, ErrDivisionByZero
		}

		r := x % y
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}

		return r, nil
	case OpPow:
		if y < 0 {
			return 0, ErrNegativeOperand
		}

		return integerPow(x, y), nil
	case OpShl:
		if y < 0 {
			return 0, ErrNegativeOperand
		}

		return x << y, nil
	case OpShr:
		if y < 0 {
			return 0, ErrNegativeOperand
		}

		return x >> y, nil
	case OpAnd:
		return x & y, nil
	case OpXor:
		return x ^ y, nil
	case OpOr:
		return x | y, nil
	default:
		return 0, ErrUnsupportedOperand
	}
}

func integerPow[I constraints.Integer](base, exp I) I {
	result := I(1)

	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}

		base *= base
		exp >>= 1
	}

	return result
}

func integerUnary[I constraints.Integer](op Op, x I) (I, error) {
	switch op {
	case OpNeg:
		return -x, nil
	case OpPos:
		return x, nil
	case OpAbs:
		if x < 0 {
			return -x, nil
		}

		return x, nil
	case OpInvert:
		return ^x, nil
	default:
		return 0, ErrUnsupportedOperand
	}
}

func floatBinary[F constraints.Float](op Op, x, y F) (F, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSub:
		return x - y, nil
	case OpMul:
		return x * y, nil
	case OpDiv:
		if y == 0 {
			return 0, ErrDivisionByZero
		}

		return x / y, nil
	case OpFloorDiv:
		if y == 0 {
			return 0, ErrDivisionByZero
		}

		return F(math.Floor(float64(x) / float64(y))), nil
	case OpMod:
		if y == 0 {
			return 0, ErrDivisionByZero
		}

		r := F(math.Mod(float64(x), float64(y)))
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}

		return r, nil
	case OpPow:
		if x == 0 && y < 0 {
			return 0, ErrDivisionByZero
		}

		return F(math.Pow(float64(x), float64(y))), nil
	default:
		return 0, ErrUnsupportedOperand
	}
}

func floatUnary[F constraints.Float](op Op, x F) (F, error) {
	switch op {
	case OpNeg:
		return -x, nil
	case OpPos:
		return x, nil
	case OpAbs:
		return F(math.Abs(float64(x))), nil
	default:
		return 0, ErrUnsupportedOperand
	}
}

func complexBinary[C constraints.Complex](op Op, x, y C) (C, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSub:
		return x - y, nil
	case OpMul:
		return x * y, nil
	case OpDiv:
		if y == 0 {
			return 0, ErrDivisionByZero
		}

		return x / y, nil
	case OpPow:
		return C(cmplx.Pow(complex128(x), complex128(y))), nil
	default:
		return 0, ErrUnsupportedOperand
	}
}

// complexUnary keeps the complex type for OpAbs: the magnitude is the real part.
func complexUnary[C constraints.Complex](op Op, x C) (C, error) {
	switch op {
	case OpNeg:
		return -x, nil
	case OpPos:
		return x, nil
	case OpAbs:
		return C(complex(cmplx.Abs(complex128(x)), 0)), nil
	default:
		return 0, ErrUnsupportedOperand
	}
}

func boolBinary(op Op, x, y bool) (bool, error) {
	switch op {
	case OpAnd:
		return x && y, nil
	case OpOr:
		return x || y, nil
	case OpXor:
		return x != y, nil
	default:
		return false, ErrUnsupportedOperand
	}
}
