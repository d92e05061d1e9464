package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/edgebend/pkg/config"
	"github.com/matzehuels/edgebend/pkg/curve"
	"github.com/matzehuels/edgebend/pkg/errors"
	"github.com/matzehuels/edgebend/pkg/geom"
	"github.com/matzehuels/edgebend/pkg/graph"
	"github.com/matzehuels/edgebend/pkg/observability"
)

// curveOpts holds the command-line flags for the curve command.
type curveOpts struct {
	output     string  // output file path ("" = stdout)
	configPath string  // TOML config path ("" = look for edgebend.toml)
	dist       float64 // anchor-travel fraction
	precision  int     // sample points per curve
	polarity   string  // "fixed" or "random"
	seed       uint64  // seed for random polarity
	workers    int     // goroutines sampling curves
}

// newCurveCmd creates the curve command. It reads a positioned node-link
// graph as JSON from the file argument (or stdin), computes one sampled
// curve per edge, and writes the polylines as JSON to --output (or stdout).
//
// Option precedence: built-in defaults, then the TOML config file, then any
// flag set on the command line.
func newCurveCmd() *cobra.Command {
	defaults := curve.DefaultOptions()
	opts := curveOpts{
		dist:      defaults.Dist,
		precision: defaults.Precision,
		polarity:  string(defaults.Polarity),
		workers:   defaults.Workers,
	}

	cmd := &cobra.Command{
		Use:   "curve [file]",
		Short: "Compute curved edge polylines for a positioned graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runCurve(cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file (default "+config.DefaultFilename+" if present)")
	cmd.Flags().Float64Var(&opts.dist, "dist", opts.dist, "anchor-travel fraction in (0,1)")
	cmd.Flags().IntVar(&opts.precision, "precision", opts.precision, "sample points per curve")
	cmd.Flags().StringVar(&opts.polarity, "polarity", opts.polarity, "curvature polarity: fixed or random")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for random polarity")
	cmd.Flags().IntVar(&opts.workers, "workers", opts.workers, "goroutines sampling curves")

	return cmd
}

func runCurve(cmd *cobra.Command, input string, opts *curveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	genOpts, err := mergeOptions(cmd, opts, logger.Debugf)
	if err != nil {
		return err
	}

	g, err := readInput(input)
	if err != nil {
		return err
	}
	logger.Debugf("read graph: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	pos, err := g.Positions()
	if err != nil {
		return err
	}

	edges := g.EdgeList()
	p := newProgress(logger)

	curves, err := generate(ctx, edges, pos, genOpts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %d curves", len(curves)))

	if err := writeOutput(curves, opts.output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s edges → %s points each\n",
		styleSuccess.Render("✓"),
		styleNumber.Render(fmt.Sprintf("%d", len(edges))),
		styleNumber.Render(fmt.Sprintf("%d", genOpts.Precision)))
	if opts.output != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), styleDim.Render("  wrote "+opts.output))
	}
	return nil
}

// generate wraps the pure generator call with observability hooks. Keeping
// hook invocation here preserves the generator's no-side-effects contract.
func generate(ctx context.Context, edges []curve.Edge, pos map[string]geom.Point, opts *curve.Options) ([]curve.Polyline, error) {
	start := time.Now()
	observability.Generator().OnGenerateStart(ctx, len(edges))
	curves, err := curve.Generate(edges, pos, opts)
	observability.Generator().OnGenerateComplete(ctx, len(edges), time.Since(start), err)
	return curves, err
}

// mergeOptions layers the TOML config over the defaults and explicit flags
// over both. Only flags actually set on the command line override the file.
func mergeOptions(cmd *cobra.Command, opts *curveOpts, debugf func(string, ...any)) (*curve.Options, error) {
	merged := curve.DefaultOptions()

	cfgPath := opts.configPath
	if cfgPath == "" {
		if _, err := os.Stat(config.DefaultFilename); err == nil {
			cfgPath = config.DefaultFilename
		}
	}
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg.Apply(&merged)
		debugf("applied config %s", cfgPath)
	}

	flags := cmd.Flags()
	if flags.Changed("dist") {
		merged.Dist = opts.dist
	}
	if flags.Changed("precision") {
		merged.Precision = opts.precision
	}
	if flags.Changed("polarity") {
		merged.Polarity = curve.Polarity(opts.polarity)
	}
	if flags.Changed("seed") {
		merged.Seed = opts.seed
	}
	if flags.Changed("workers") {
		merged.Workers = opts.workers
	}
	return &merged, nil
}

// readInput loads the graph from a file, or stdin when no path is given.
func readInput(path string) (graph.Graph, error) {
	if path == "" {
		return graph.ReadGraph(os.Stdin)
	}
	return graph.ReadGraphFile(path)
}

// writeOutput writes the polylines as JSON to a file, or stdout.
func writeOutput(curves []curve.Polyline, path string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
		}
		defer f.Close()
		w = f
	}
	return graph.WriteCurves(curves, w)
}
