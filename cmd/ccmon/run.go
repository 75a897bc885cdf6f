package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/livegraph/core"
	"github.com/katalvlaran/livegraph/internal/scenario"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	var flags monitorFlags

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Replay a scenario file",
		Long: `Load a YAML scenario, build its initial graph, attach the monitor and apply
each step. Steps that touch absent entities are reported and skipped; a failed
expect step stops the run with a non-zero exit after the state is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			mon, col, err := newMonitor(flags, opts)
			if err != nil {
				return err
			}

			rep, runErr := scenario.Run(cmd.Context(), s, mon, core.NewGraph(), opts.logger)
			if runErr != nil && !errors.Is(runErr, scenario.ErrExpectationFailed) {
				return runErr
			}
			out := cmd.OutOrStdout()
			if opts.format == formatText {
				for _, st := range rep.Steps {
					if st.Err != nil {
						fmt.Fprintf(out, "step %d %s: %v\n", st.Index, st.Action, st.Err)
					}
				}
			}
			opts.logger.Info("Scenario finished",
				zap.String("name", rep.Name),
				zap.Int("steps", len(rep.Steps)),
				zap.Int("failures", rep.Failures))

			state := snapshot{graph: rep.Graph, parts: rep.Partition}
			if err := finish(out, flags, opts, s.Name, mon, state, col); err != nil {
				return err
			}

			return runErr
		},
	}
	cmd.Flags().BoolVar(&flags.verify, "verify", false, "check the partition against a fresh traversal")
	cmd.Flags().BoolVar(&flags.metrics, "metrics", false, "print Prometheus metrics after the partition")

	return cmd
}
