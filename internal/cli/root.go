package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/edgebend/pkg/buildinfo"
)

// Execute runs the edgebend CLI and returns an error if any command fails.
//
// The root command wires the --verbose flag into the context logger before
// any subcommand runs:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "edgebend",
		Short:        "edgebend computes curved edge geometry for graph rendering",
		Long:         `edgebend turns a positioned graph into smooth Gephi-style curves: one sampled cubic Bezier polyline per edge, with parallel edges fanned apart so they never overlap.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCurveCmd())

	return root.ExecuteContext(ctx)
}
