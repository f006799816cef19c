package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the 2foldsyn CLI and returns an error if any command fails.
//
// The root command wires the --verbose flag into a charmbracelet logger on
// the command context; subcommands retrieve it via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "2foldsyn",
		Short:        "2foldsyn partitions gate-level circuits into balanced modules",
		Long:         `2foldsyn loads structural Verilog netlists and partitions the resulting signal-flow graph with a hybrid spectral / Kernighan-Lin / IO-balancing pipeline, as a front end for multi-module circuit decomposition.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newParseCmd())
	root.AddCommand(newPartitionCmd())

	return root.ExecuteContext(ctx)
}
