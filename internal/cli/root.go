package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Metrics bool

	runtime *Runtime
}

// NewRootCommand creates the root command for the lazy CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lazy",
		Short: "Lazy evaluation playground",
		Long: `Build expressions out of suspended computations and force them.

Nothing is computed while an expression is built; every sub-expression runs
at most once when the result is forced.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}

			opts.runtime = rt

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log every evaluation to stderr")
	cmd.PersistentFlags().BoolVar(&opts.Metrics, "metrics", false, "print evaluation metrics after the result")

	cmd.AddCommand(NewFibCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))

	return cmd
}

// finish prints metrics when requested.
func (opts *RootOptions) finish(cmd *cobra.Command) error {
	if !opts.Metrics {
		return nil
	}

	monitoring, err := opts.runtime.Monitoring()
	if err != nil {
		return err
	}

	return monitoring.WriteText(cmd.OutOrStdout(), "thunk_")
}
