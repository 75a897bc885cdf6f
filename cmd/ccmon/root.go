package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	formatText = "text"
	formatDOT  = "dot"
)

// globalOptions are the persistent flags plus the logger built from them.
type globalOptions struct {
	verbose bool
	format  string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "ccmon",
		Short: "Track connected components of a mutating graph",
		Long: `ccmon drives an undirected graph through a sequence of mutations while a
component monitor keeps the partition into connected components current.

Subcommands:
  run       - replay a YAML scenario file
  generate  - build a standard topology under the monitor

Examples:
  ccmon run testdata/triangle.yaml --verify
  ccmon generate grid --rows 3 --cols 4 --format dot
  ccmon generate random --n 50 --p 0.05 --seed 7 --metrics`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatText && opts.format != formatDOT {
				return fmt.Errorf("unknown --format %q (want %s or %s)", opts.format, formatText, formatDOT)
			}
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging in development format")
	root.PersistentFlags().StringVar(&opts.format, "format", formatText, "output format: text or dot")

	root.AddCommand(newRunCmd(opts), newGenerateCmd(opts))

	return root
}

// newLogger returns a development logger when verbose, otherwise a production
// logger that only reports warnings and errors.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	return cfg.Build()
}
