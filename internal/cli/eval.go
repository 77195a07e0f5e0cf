package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shortlink-org/lazy/observability/evaltrace"
	"github.com/shortlink-org/lazy/types/thunk"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Trace bool
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval TOKEN...",
		Short: "Evaluate a postfix expression lazily",
		Long: `Evaluate a postfix (RPN) expression of numbers and operator names.

The whole expression is built as a graph of suspensions first and forced
afterwards, so type and arithmetic errors are reported only when forced.
Operators: add sub mul div floordiv mod pow shl shr and xor or neg pos abs invert.
Negative literals must follow "--".`,
		Example: `  lazy eval 2 3 add 4 mul
  lazy eval --trace -- 7 -2 floordiv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer opts.runtime.Close()

			return runEval(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print how many operators ran (default LAZY_TRACE)")

	return cmd
}

func runEval(cmd *cobra.Command, opts *EvalOptions, tokens []string) error {
	trace := opts.runtime.Settings.Trace
	if cmd.Flags().Changed("trace") {
		trace = opts.Trace
	}

	expr, err := Compile(cmd.Context(), opts.runtime.Tracker, tokens)
	if err != nil {
		return err
	}

	v, err := thunk.ForceAny(expr)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), v)

	if trace {
		fmt.Fprintf(cmd.OutOrStdout(), "evaluations: %d\n", opts.runtime.Tracker.Stats().Evaluations)
	}

	return opts.finish(cmd)
}

// Compile turns postfix tokens into an unevaluated expression. Only the shape
// of the expression is checked here; operand errors surface when it is forced.
// Integers become int64 and other numbers float64.
func Compile(ctx context.Context, tr *evaltrace.Tracker, tokens []string) (thunk.Value[any], error) {
	stack := make([]thunk.Value[any], 0, len(tokens))

	pop := func(token string) (thunk.Value[any], error) {
		if len(stack) == 0 {
			return nil, fmt.Errorf("%w at %q", ErrStackUnderflow, token)
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		return top, nil
	}

	for _, token := range tokens {
		if literal, ok := parseLiteral(token); ok {
			stack = append(stack, thunk.Of(literal))

			continue
		}

		op, err := thunk.ParseOp(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownToken, token)
		}

		var node *thunk.Thunk[any]

		if op.IsUnary() {
			x, errPop := pop(token)
			if errPop != nil {
				return nil, errPop
			}

			node = thunk.Unary(op, x)
		} else {
			y, errPop := pop(token)
			if errPop != nil {
				return nil, errPop
			}

			x, errPop := pop(token)
			if errPop != nil {
				return nil, errPop
			}

			node = thunk.Binary(op, x, y)
		}

		stack = append(stack, thunk.New(evaltrace.WrapContext(ctx, tr, op.String(), node.Eval)))
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d values left on the stack", ErrMalformedExpression, len(stack))
	}

	return stack[0], nil
}

func parseLiteral(token string) (any, bool) {
	if i, err := strconv.ParseInt(token, 0, 64); err == nil {
		return i, true
	}

	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f, true
	}

	return nil, false
}
