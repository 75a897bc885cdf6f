package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/livegraph/builder"
	"github.com/katalvlaran/livegraph/core"
)

type generateFlags struct {
	monitorFlags
	n, m       int
	rows, cols int
	degree     int
	p          float64
	seed       int64
	ids        string
	prefix     string
}

var topologies = []string{"bipartite", "complete", "cycle", "grid", "path", "random", "regular", "star", "wheel"}

// constructor maps a topology name and its flags to a builder.Constructor.
func (f *generateFlags) constructor(kind string) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "wheel":
		return builder.Wheel(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "bipartite":
		return builder.CompleteBipartite(f.n, f.m), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	case "regular":
		return builder.RandomRegular(f.n, f.degree), nil
	}

	return nil, fmt.Errorf("unknown topology %q", kind)
}

func (f *generateFlags) builderOptions() ([]builder.BuilderOption, error) {
	idFn, ok := builder.IDSchemes[f.ids]
	if !ok {
		names := make([]string, 0, len(builder.IDSchemes))
		for name := range builder.IDSchemes {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown --ids %q (want one of %s)", f.ids, strings.Join(names, ", "))
	}

	return []builder.BuilderOption{
		builder.WithIDScheme(idFn),
		builder.WithPrefix(f.prefix),
		builder.WithSeed(f.seed),
	}, nil
}

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:       "generate TOPOLOGY",
		Short:     "Build a standard topology under the monitor",
		Long:      "Attach the monitor to an empty graph, then build the topology vertex by vertex\nand edge by edge. Topologies: " + strings.Join(topologies, ", ") + ".",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: topologies,
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := flags.constructor(args[0])
			if err != nil {
				return err
			}
			bopts, err := flags.builderOptions()
			if err != nil {
				return err
			}
			mon, col, err := newMonitor(flags.monitorFlags, opts)
			if err != nil {
				return err
			}
			g := core.NewGraph()
			if err := mon.Setup(g); err != nil {
				return err
			}
			if err := builder.Apply(g, bopts, con); err != nil {
				return err
			}

			state := snapshot{graph: g, parts: mon.Partition()}

			return finish(cmd.OutOrStdout(), flags.monitorFlags, opts, args[0], mon, state, col)
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&flags.n, "n", "n", 5, "vertex count (first side for bipartite)")
	fs.IntVarP(&flags.m, "m", "m", 3, "second side for bipartite")
	fs.IntVar(&flags.rows, "rows", 3, "grid rows")
	fs.IntVar(&flags.cols, "cols", 3, "grid columns")
	fs.IntVarP(&flags.degree, "degree", "d", 3, "degree for regular")
	fs.Float64VarP(&flags.p, "p", "p", 0.3, "edge probability for random")
	fs.Int64Var(&flags.seed, "seed", 1, "random seed")
	fs.StringVar(&flags.ids, "ids", "decimal", "vertex ID scheme")
	fs.StringVar(&flags.prefix, "prefix", "", "vertex ID prefix")
	fs.BoolVar(&flags.verify, "verify", false, "check the partition against a fresh traversal")
	fs.BoolVar(&flags.metrics, "metrics", false, "print Prometheus metrics after the partition")

	return cmd
}
