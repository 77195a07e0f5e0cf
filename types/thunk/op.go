package thunk

import (
	"fmt"
	"strings"
)

// Op identifies an operator that can be composed lazily.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpMatMul
	OpDiv
	OpFloorDiv
	OpMod
	OpPow
	OpShl
	OpShr
	OpAnd
	OpXor
	OpOr

	// unary
	OpNeg
	OpPos
	OpAbs
	OpInvert
)

var opNames = map[Op]string{
	OpAdd:      "add",
	OpSub:      "sub",
	OpMul:      "mul",
	OpMatMul:   "matmul",
	OpDiv:      "div",
	OpFloorDiv: "floordiv",
	OpMod:      "mod",
	OpPow:      "pow",
	OpShl:      "lshift",
	OpShr:      "rshift",
	OpAnd:      "and",
	OpXor:      "xor",
	OpOr:       "or",
	OpNeg:      "neg",
	OpPos:      "pos",
	OpAbs:      "abs",
	OpInvert:   "invert",
}

var opSymbols = map[string]Op{
	"+":  OpAdd,
	"-":  OpSub,
	"*":  OpMul,
	"@":  OpMatMul,
	"/":  OpDiv,
	"//": OpFloorDiv,
	"%":  OpMod,
	"**": OpPow,
	"<<": OpShl,
	">>": OpShr,
	"&":  OpAnd,
	"^":  OpXor,
	"|":  OpOr,
	"~":  OpInvert,
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}

	return fmt.Sprintf("Op(%d)", uint8(op))
}

// IsUnary reports whether op takes a single operand.
func (op Op) IsUnary() bool {
	return op >= OpNeg && op <= OpInvert
}

// IsBinary reports whether op takes two operands.
func (op Op) IsBinary() bool {
	return op >= OpAdd && op <= OpOr
}

// ParseOp accepts an operator name ("add", "floordiv") or its symbol ("+", "//").
// "-" is always subtraction; negation is "neg".
func ParseOp(s string) (Op, error) {
	if op, ok := opSymbols[s]; ok {
		return op, nil
	}

	name := strings.ToLower(strings.TrimSpace(s))
	for op, opName := range opNames {
		if opName == name {
			return op, nil
		}
	}

	switch name {
	case "shl":
		return OpShl, nil
	case "shr":
		return OpShr, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}
