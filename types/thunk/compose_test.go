package thunk_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortlink-org/lazy/types/thunk"
)

func TestComposition_IsLazy(t *testing.T) {
	leftCalls, rightCalls := 0, 0

	left := thunk.From(func() int {
		leftCalls++

		return 2
	})
	right := thunk.From(func() int {
		rightCalls++

		return 3
	})

	expr := left.Add(right).Mul(left).Neg()

	assert.Zero(t, leftCalls, "composition must not force operands")
	assert.Zero(t, rightCalls, "composition must not force operands")
	assert.False(t, left.Evaluated())

	v, err := expr.Eval()
	require.NoError(t, err)
	assert.Equal(t, -10, v)
	assert.Equal(t, 1, leftCalls)
	assert.Equal(t, 1, rightCalls)
}

func TestBinaryInt(t *testing.T) {
	tests := []struct {
		name string
		op   thunk.Op
		x, y int
		want int
	}{
		{"Add", thunk.OpAdd, 7, 3, 10},
		{"Sub", thunk.OpSub, 7, 3, 4},
		{"Mul", thunk.OpMul, 7, 3, 21},
		{"Div", thunk.OpDiv, 7, 3, 2},
		{"Div_Truncates", thunk.OpDiv, -7, 2, -3},
		{"FloorDiv", thunk.OpFloorDiv, 7, 2, 3},
		{"FloorDiv_Negative", thunk.OpFloorDiv, -7, 2, -4},
		{"FloorDiv_NegativeDivisor", thunk.OpFloorDiv, 7, -2, -4},
		{"FloorDiv_Exact", thunk.OpFloorDiv, -8, 2, -4},
		{"Mod", thunk.OpMod, 7, 3, 1},
		{"Mod_NegativeDividend", thunk.OpMod, -7, 2, 1},
		{"Mod_NegativeDivisor", thunk.OpMod, 7, -2, -1},
		{"Pow", thunk.OpPow, 2, 10, 1024},
		{"Pow_Zero", thunk.OpPow, 5, 0, 1},
		{"Shl", thunk.OpShl, 1, 4, 16},
		{"Shr", thunk.OpShr, 256, 4, 16},
		{"Shr_Negative", thunk.OpShr, -16, 2, -4},
		{"And", thunk.OpAnd, 6, 3, 2},
		{"Xor", thunk.OpXor, 6, 3, 5},
		{"Or", thunk.OpOr, 6, 3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := thunk.Binary[int](tt.op, thunk.Const(tt.x), thunk.Of(tt.y)).Eval()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBinaryFloat(t *testing.T) {
	tests := []struct {
		name string
		op   thunk.Op
		x, y float64
		want float64
	}{
		{"Add", thunk.OpAdd, 1.5, 2.25, 3.75},
		{"Div", thunk.OpDiv, 1, 4, 0.25},
		{"FloorDiv", thunk.OpFloorDiv, 7.5, 2, 3},
		{"FloorDiv_Negative", thunk.OpFloorDiv, -7.5, 2, -4},
		{"Mod_Negative", thunk.OpMod, -7.5, 2, 0.5},
		{"Pow", thunk.OpPow, 9, 0.5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := thunk.Binary[float64](tt.op, thunk.Of(tt.x), thunk.Of(tt.y)).Eval()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestBinaryOtherKinds(t *testing.T) {
	t.Run("Uint8_Wraps", func(t *testing.T) {
		got, err := thunk.Const(uint8(250)).Add(thunk.Of(uint8(10))).Eval()
		require.NoError(t, err)
		assert.Equal(t, uint8(4), got)
	})

	t.Run("String_Concat", func(t *testing.T) {
		got, err := thunk.Const("foo").Add(thunk.Of("bar")).Eval()
		require.NoError(t, err)
		assert.Equal(t, "foobar", got)
	})

	t.Run("Bool", func(t *testing.T) {
		and, err := thunk.Const(true).And(thunk.Of(false)).Eval()
		require.NoError(t, err)
		assert.False(t, and)

		xor, err := thunk.Const(true).Xor(thunk.Of(false)).Eval()
		require.NoError(t, err)
		assert.True(t, xor)
	})

	t.Run("NamedType", func(t *testing.T) {
		got, err := thunk.Const(time.Second).Add(thunk.Of(500 * time.Millisecond)).Eval()
		require.NoError(t, err)
		assert.Equal(t, 1500*time.Millisecond, got)
	})

	t.Run("Complex", func(t *testing.T) {
		got, err := thunk.Const(complex(1, 2)).Mul(thunk.Of(complex(3, -1))).Eval()
		require.NoError(t, err)
		assert.Equal(t, complex(5, 5), got)
	})

	t.Run("Float32", func(t *testing.T) {
		got, err := thunk.Const(float32(1.5)).Sub(thunk.Of(float32(0.25))).Eval()
		require.NoError(t, err)
		assert.InDelta(t, float32(1.25), got, 1e-6)
	})
}

func TestUnary(t *testing.T) {
	tests := []struct {
		name string
		got  *thunk.Thunk[int]
		want int
	}{
		{"Neg", thunk.Const(5).Neg(), -5},
		{"Pos", thunk.Const(-5).Pos(), -5},
		{"Abs", thunk.Const(-5).Abs(), 5},
		{"Invert", thunk.Const(5).Invert(), -6},
		{"Chain", thunk.Const(5).Invert().Abs().Neg(), -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got.Eval()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Uint8_Invert", func(t *testing.T) {
		got, err := thunk.Const(uint8(5)).Invert().Eval()
		require.NoError(t, err)
		assert.Equal(t, uint8(250), got)
	})

	t.Run("Int8_NegOverflow", func(t *testing.T) {
		got, err := thunk.Const(int8(-128)).Neg().Eval()
		require.NoError(t, err)
		assert.Equal(t, int8(-128), got)
	})

	t.Run("Float_Abs", func(t *testing.T) {
		got, err := thunk.Const(-2.5).Abs().Eval()
		require.NoError(t, err)
		assert.InDelta(t, 2.5, got, 0)
	})

	t.Run("Complex_Abs", func(t *testing.T) {
		got, err := thunk.Const(complex(3, 4)).Abs().Eval()
		require.NoError(t, err)
		assert.Equal(t, complex(5, 0), got)
	})
}

func TestDivMod(t *testing.T) {
	got, err := thunk.DivMod[int](thunk.Const(-7), thunk.Of(2)).Eval()
	require.NoError(t, err)
	assert.Equal(t, thunk.Pair[int]{Quotient: -4, Remainder: 1}, got)

	_, err = thunk.DivMod[int](thunk.Const(1), thunk.Of(0)).Eval()
	require.ErrorIs(t, err, thunk.ErrDivisionByZero)
}

func TestPowMod(t *testing.T) {
	tests := []struct {
		name    string
		x, y, m int
		want    int
	}{
		{"Positive", 3, 4, 5, 1},
		{"NegativeModulus", 2, 10, -7, -5},
		{"NegativeBase", -2, 3, 5, 2},
		{"ZeroExponent", 7, 0, 3, 1},
		{"Large", 123456789, 987654321, 1000000007, 652541198},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := thunk.Const(tt.x).PowMod(thunk.Of(tt.y), thunk.Of(tt.m)).Eval()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Uint", func(t *testing.T) {
		got, err := thunk.PowMod[uint](thunk.Of(uint(2)), thunk.Of(uint(5)), thunk.Of(uint(7))).Eval()
		require.NoError(t, err)
		assert.Equal(t, uint(4), got)
	})

	t.Run("ZeroModulus", func(t *testing.T) {
		_, err := thunk.Const(2).PowMod(thunk.Of(3), thunk.Of(0)).Eval()
		require.ErrorIs(t, err, thunk.ErrDivisionByZero)
	})

	t.Run("Float", func(t *testing.T) {
		_, err := thunk.Const(2.0).PowMod(thunk.Of(3.0), thunk.Of(5.0)).Eval()
		require.ErrorIs(t, err, thunk.ErrUnsupportedOperand)
	})
}

// Errors surface when the composed thunk is forced, never when it is built.
func TestComposition_LateErrors(t *testing.T) {
	tests := []struct {
		name string
		expr func() *thunk.Thunk[any]
		err  error
	}{
		{"DivideByZero", func() *thunk.Thunk[any] {
			return thunk.Binary[any](thunk.OpDiv, thunk.Of[any](1), thunk.Of[any](0))
		}, thunk.ErrDivisionByZero},
		{"NegativeShift", func() *thunk.Thunk[any] {
			return thunk.Binary[any](thunk.OpShl, thunk.Of[any](1), thunk.Of[any](-1))
		}, thunk.ErrNegativeOperand},
		{"NegativeExponent", func() *thunk.Thunk[any] {
			return thunk.Binary[any](thunk.OpPow, thunk.Of[any](2), thunk.Of[any](-1))
		}, thunk.ErrNegativeOperand},
		{"MixedTypes", func() *thunk.Thunk[any] {
			return thunk.Binary[any](thunk.OpAdd, thunk.Of[any](1), thunk.Of[any]("x"))
		}, thunk.ErrUnsupportedOperand},
		{"FloatZeroToNegativePower", func() *thunk.Thunk[any] {
			return thunk.Binary[any](thunk.OpPow, thunk.Of[any](0.0), thunk.Of[any](-1.5))
		}, thunk.ErrDivisionByZero},
		{"FloatShift", func() *thunk.Thunk[any] {
			return thunk.Binary[any](thunk.OpShl, thunk.Of[any](1.5), thunk.Of[any](2.0))
		}, thunk.ErrUnsupportedOperand},
		{"StringSub", func() *thunk.Thunk[any] {
			return thunk.Binary[any](thunk.OpSub, thunk.Of[any]("a"), thunk.Of[any]("b"))
		}, thunk.ErrUnsupportedOperand},
		{"IntMatMul", func() *thunk.Thunk[any] {
			return thunk.Binary[any](thunk.OpMatMul, thunk.Of[any](1), thunk.Of[any](2))
		}, thunk.ErrUnsupportedOperand},
		{"FloatInvert", func() *thunk.Thunk[any] {
			return thunk.Unary[any](thunk.OpInvert, thunk.Of[any](1.5))
		}, thunk.ErrUnsupportedOperand},
		{"NilOperand", func() *thunk.Thunk[any] {
			return thunk.Binary[any](thunk.OpAdd, thunk.Of[any](nil), thunk.Of[any](1))
		}, thunk.ErrUnsupportedOperand},
		{"UnaryOpAsBinary", func() *thunk.Thunk[any] {
			return thunk.Binary[any](thunk.OpNeg, thunk.Of[any](1), thunk.Of[any](1))
		}, thunk.ErrUnsupportedOperand},
		{"BinaryOpAsUnary", func() *thunk.Thunk[any] {
			return thunk.Unary[any](thunk.OpAdd, thunk.Of[any](1))
		}, thunk.ErrUnsupportedOperand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var expr *thunk.Thunk[any]

			require.NotPanics(t, func() { expr = tt.expr() })

			_, err := expr.Eval()
			require.ErrorIs(t, err, tt.err)
			assert.False(t, expr.Evaluated())
		})
	}
}

func TestComposition_DynamicOperandsAreFlattened(t *testing.T) {
	// operands of an untyped expression may themselves be nested thunks
	inner := thunk.Const[any](thunk.Const(40))
	expr := thunk.Binary[any](thunk.OpAdd, inner, thunk.Of[any](2))

	v, err := thunk.Force[int](expr)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

type matrix [2][2]int

func (m matrix) Operate(op thunk.Op, other matrix) (matrix, error) {
	var out matrix

	switch op {
	case thunk.OpMatMul:
		for i := range 2 {
			for j := range 2 {
				for k := range 2 {
					out[i][j] += m[i][k] * other[k][j]
				}
			}
		}
	case thunk.OpAdd:
		for i := range 2 {
			for j := range 2 {
				out[i][j] = m[i][j] + other[i][j]
			}
		}
	default:
		return out, thunk.ErrUnsupportedOperand
	}

	return out, nil
}

func TestMatMul_Operand(t *testing.T) {
	a := thunk.Const(matrix{{1, 2}, {3, 4}})
	b := thunk.Of(matrix{{5, 6}, {7, 8}})

	got, err := a.MatMul(b).Eval()
	require.NoError(t, err)
	assert.Equal(t, matrix{{19, 22}, {43, 50}}, got)

	_, err = a.Sub(b).Eval()
	require.ErrorIs(t, err, thunk.ErrUnsupportedOperand)
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		in   string
		want thunk.Op
	}{
		{"add", thunk.OpAdd},
		{"+", thunk.OpAdd},
		{"-", thunk.OpSub},
		{"//", thunk.OpFloorDiv},
		{"**", thunk.OpPow},
		{"@", thunk.OpMatMul},
		{"shl", thunk.OpShl},
		{"lshift", thunk.OpShl},
		{"RSHIFT", thunk.OpShr},
		{"neg", thunk.OpNeg},
		{"~", thunk.OpInvert},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			op, err := thunk.ParseOp(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}

	_, err := thunk.ParseOp("concat")
	require.ErrorIs(t, err, thunk.ErrUnknownOp)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "floordiv", thunk.OpFloorDiv.String())
	assert.Equal(t, "Op(99)", thunk.Op(99).String())
	assert.True(t, thunk.OpInvert.IsUnary())
	assert.False(t, thunk.OpInvert.IsBinary())
	assert.True(t, thunk.OpOr.IsBinary())
}
