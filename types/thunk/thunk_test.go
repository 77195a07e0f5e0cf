package thunk_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/shortlink-org/lazy/types/thunk"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ThunkTestSuite groups the memoization contract tests.
type ThunkTestSuite struct {
	suite.Suite

	calls int
}

func (suite *ThunkTestSuite) SetupTest() {
	suite.calls = 0
}

func (suite *ThunkTestSuite) counted(v int) func() (int, error) {
	return func() (int, error) {
		suite.calls++

		return v, nil
	}
}

func TestThunkSuite(t *testing.T) {
	suite.Run(t, new(ThunkTestSuite))
}

func (suite *ThunkTestSuite) TestNew_DoesNotEvaluate() {
	// Act
	t := thunk.New(suite.counted(42))

	// Assert
	suite.Zero(suite.calls)
	suite.False(t.Evaluated())
}

func (suite *ThunkTestSuite) TestEval_AtMostOnce() {
	// Arrange
	t := thunk.New(suite.counted(42))

	// Act
	for range 10 {
		v, err := t.Eval()
		suite.Require().NoError(err)
		suite.Equal(42, v)
	}

	// Assert
	suite.Equal(1, suite.calls)
	suite.True(t.Evaluated())
}

func (suite *ThunkTestSuite) TestForce_AtMostOnceAcrossCallSites() {
	// Arrange
	t := thunk.New(suite.counted(7))
	viaSum := t.Add(thunk.Of(1))
	viaProduct := t.Mul(thunk.Of(2))

	// Act
	sum, err := thunk.Force[int](viaSum)
	suite.Require().NoError(err)

	product, err := thunk.Force[int](viaProduct)
	suite.Require().NoError(err)

	direct, err := thunk.Force[int](t)
	suite.Require().NoError(err)

	// Assert
	suite.Equal(8, sum)
	suite.Equal(14, product)
	suite.Equal(7, direct)
	suite.Equal(1, suite.calls)
}

func (suite *ThunkTestSuite) TestForce_Idempotent() {
	// Arrange
	t := thunk.New(suite.counted(5))

	// Act
	once, err := thunk.ForceAny(t)
	suite.Require().NoError(err)

	twice, err := thunk.ForceAny(once)
	suite.Require().NoError(err)

	again, err := thunk.ForceAny(t)
	suite.Require().NoError(err)

	// Assert
	suite.Equal(once, twice)
	suite.Equal(once, again)
}

func (suite *ThunkTestSuite) TestForce_IdentityPreserved() {
	// Arrange
	type box struct{ n int }

	t := thunk.From(func() *box { return &box{n: 1} })

	// Act
	first, err := thunk.Force[*box](t)
	suite.Require().NoError(err)

	second, err := thunk.Force[*box](t)
	suite.Require().NoError(err)

	// Assert
	suite.Same(first, second)
}

func (suite *ThunkTestSuite) TestEval_ErrorIsNotCached() {
	// Arrange
	errBoom := errors.New("boom")
	attempts := 0
	t := thunk.New(func() (int, error) {
		attempts++
		if attempts == 1 {
			return 0, errBoom
		}

		return 9, nil
	})

	// Act
	_, err := t.Eval()

	// Assert
	suite.Require().ErrorIs(err, errBoom)
	suite.False(t.Evaluated())
	suite.True(thunk.IsNotEvaluated(t.Memo()))

	v, err := t.Eval()
	suite.Require().NoError(err)
	suite.Equal(9, v)
	suite.Equal(2, attempts)

	_, err = t.Eval()
	suite.Require().NoError(err)
	suite.Equal(2, attempts)
}

func (suite *ThunkTestSuite) TestEval_PanicLeavesThunkUnevaluated() {
	// Arrange
	first := true
	t := thunk.From(func() string {
		if first {
			first = false

			panic("first attempt")
		}

		return "ok"
	})

	// Act & Assert
	suite.Panics(func() { _, _ = t.Eval() })
	suite.False(t.Evaluated())

	v, err := t.Eval()
	suite.Require().NoError(err)
	suite.Equal("ok", v)
}

func (suite *ThunkTestSuite) TestConst_IsEvaluated() {
	// Act
	t := thunk.Const("ready")

	// Assert
	suite.True(t.Evaluated())

	v, ok := t.Peek()
	suite.True(ok)
	suite.Equal("ready", v)
}

func (suite *ThunkTestSuite) TestPeek_DoesNotEvaluate() {
	// Arrange
	t := thunk.New(suite.counted(3))

	// Act
	_, ok := t.Peek()

	// Assert
	suite.False(ok)
	suite.Zero(suite.calls)
}

func (suite *ThunkTestSuite) TestNilThunk() {
	var t *thunk.Thunk[int]

	_, err := t.Eval()
	suite.Require().ErrorIs(err, thunk.ErrNilThunk)
	suite.False(t.Evaluated())

	_, err = thunk.Binary[int](thunk.OpAdd, nil, thunk.Of(1)).Eval()
	suite.Require().ErrorIs(err, thunk.ErrNilThunk)
}

func TestNotEvaluatedSentinel(t *testing.T) {
	lazy := thunk.New(func() (int, error) { return 42, nil })

	assert.True(t, thunk.IsNotEvaluated(lazy.Memo()))
	assert.True(t, thunk.IsNotEvaluated(thunk.NotEvaluated))
	assert.Equal(t, "NotEvaluated", fmt.Sprint(thunk.NotEvaluated))

	_, err := lazy.Eval()
	require.NoError(t, err)

	assert.Equal(t, 42, lazy.Memo())
	assert.False(t, thunk.IsNotEvaluated(lazy.Memo()))
}

func TestNotEvaluatedDistinctFromNil(t *testing.T) {
	assert.False(t, thunk.IsNotEvaluated(nil))
	assert.False(t, thunk.IsNotEvaluated(struct{}{}))
	assert.False(t, thunk.IsNotEvaluated(0))

	// a thunk that evaluates to nil is evaluated, not empty
	nilResult := thunk.From(func() error { return nil })
	_, err := nilResult.Eval()
	require.NoError(t, err)

	assert.Nil(t, nilResult.Memo())
	assert.False(t, thunk.IsNotEvaluated(nilResult.Memo()))
}

func TestFail(t *testing.T) {
	errExpected := errors.New("expected")

	_, err := thunk.Fail[int](errExpected).Eval()

	require.ErrorIs(t, err, errExpected)
}
