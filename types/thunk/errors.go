package thunk

import "errors"

var (
	// ErrNilThunk is returned when a nil thunk or nil value is evaluated
	ErrNilThunk = errors.New("thunk: nil value")

	// ErrTypeMismatch is returned by Force when the forced value is not of the requested type
	ErrTypeMismatch = errors.New("thunk: forced value has unexpected type")

	// ErrUnsupportedOperand is returned when an operator does not apply to the forced operands
	ErrUnsupportedOperand = errors.New("thunk: unsupported operand type")

	// ErrDivisionByZero is returned by division, modulo and modular power with a zero divisor
	ErrDivisionByZero = errors.New("thunk: division by zero")

	// ErrNegativeOperand is returned for negative shift counts and negative integer exponents
	ErrNegativeOperand = errors.New("thunk: negative operand")

	// ErrUnknownOp is returned by ParseOp for names that are not operators
	ErrUnknownOp = errors.New("thunk: unknown operator")
)
