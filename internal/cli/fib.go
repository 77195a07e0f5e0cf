package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shortlink-org/lazy/observability/evaltrace"
	"github.com/shortlink-org/lazy/types/thunk"
)

// FibOptions holds flags for the fib command.
type FibOptions struct {
	*RootOptions
	Memo  bool
	Trace bool
}

// NewFibCommand creates the fib command.
func NewFibCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FibOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fib [N]",
		Short: "Compute the N-th Fibonacci number lazily",
		Long: `Compute the N-th Fibonacci number with a lazily wrapped recursive definition.

Without --memo every call builds a fresh suspension, so shared sub-terms run
again. With --memo one suspension per index is shared. N defaults to
LAZY_FIB_N; negative indices follow fib(n) = fib(n+2) - fib(n+1) and must
follow "--".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer opts.runtime.Close()

			return runFib(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Memo, "memo", false, "share one suspension per index (default LAZY_FIB_MEMO)")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print how many suspensions ran (default LAZY_TRACE)")

	return cmd
}

func runFib(cmd *cobra.Command, opts *FibOptions, args []string) error {
	settings := opts.runtime.Settings

	n := settings.FibN
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidN, args[0])
		}

		n = parsed
	}

	memo := settings.Memo
	if cmd.Flags().Changed("memo") {
		memo = opts.Memo
	}

	trace := settings.Trace
	if cmd.Flags().Changed("trace") {
		trace = opts.Trace
	}

	fib := Fibonacci(cmd.Context(), opts.runtime.Tracker, memo)

	v, err := fib(n).Eval()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "fib(%d) = %d\n", n, v)

	if trace {
		fmt.Fprintf(cmd.OutOrStdout(), "evaluations: %d\n", opts.runtime.Tracker.Stats().Evaluations)
	}

	return opts.finish(cmd)
}

// Fibonacci returns a lazily wrapped Fibonacci function. Each body run is
// reported to tr under ctx. With memo, every index is evaluated at most once.
func Fibonacci(ctx context.Context, tr *evaltrace.Tracker, memo bool) func(int) *thunk.Thunk[int] {
	var fib func(int) *thunk.Thunk[int]

	body := func(n int) thunk.Value[int] {
		return thunk.New(evaltrace.WrapContext(ctx, tr, fmt.Sprintf("fib(%d)", n), func() (int, error) {
			switch {
			case n == 0 || n == 1:
				return n, nil
			case n < 0:
				return fib(n + 2).Sub(fib(n + 1)).Eval()
			default:
				return fib(n - 1).Add(fib(n - 2)).Eval()
			}
		}))
	}

	if memo {
		fib = thunk.MemoExpr1(body)
	} else {
		fib = thunk.LazyExpr1(body)
	}

	return fib
}
