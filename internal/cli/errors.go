package cli

import "errors"

var (
	// ErrStackUnderflow is returned when an operator has fewer operands than it needs.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrMalformedExpression is returned when an expression does not reduce to one value.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrUnknownToken is returned for tokens that are neither numbers nor operators.
	ErrUnknownToken = errors.New("unknown token")

	// ErrInvalidN is returned when a Fibonacci index argument is not an integer.
	ErrInvalidN = errors.New("invalid fibonacci index")
)
