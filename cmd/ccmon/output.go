package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/livegraph/components"
	"github.com/katalvlaran/livegraph/core"
	"github.com/katalvlaran/livegraph/metrics"
)

// snapshot is the state a command prints: a graph and its partition.
type snapshot struct {
	graph *core.Graph
	parts [][]string
}

// render prints the partition and a graph summary as text, or the graph as
// DOT with each vertex grouped by its component's position in the partition.
func render(w io.Writer, format, name string, s snapshot) error {
	if format == formatDOT {
		group := make(map[string]string)
		for i, members := range s.parts {
			for _, id := range members {
				group[id] = strconv.Itoa(i + 1)
			}
		}
		return s.graph.WriteDOT(w, name, core.WithVertexAttributes(func(v *core.Vertex) map[string]string {
			return map[string]string{"group": group[v.ID]}
		}))
	}

	if _, err := fmt.Fprintf(w, "%d components\n", len(s.parts)); err != nil {
		return err
	}
	for i, members := range s.parts {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i+1, strings.Join(members, " ")); err != nil {
			return err
		}
	}
	st := s.graph.Stats()
	_, err := fmt.Fprintf(w, "graph: %d vertices, %d edges, %d self-loops, %d isolated\n",
		st.VertexCount, st.EdgeCount, st.LoopCount, st.IsolatedCount)

	return err
}

// monitorFlags are shared by run and generate.
type monitorFlags struct {
	verify  bool
	metrics bool
}

// newMonitor returns a monitor logging through logger and, when requested,
// a metrics collector already listening to it.
func newMonitor(f monitorFlags, opts *globalOptions) (*components.Monitor, *metrics.Collector, error) {
	mon := components.New(components.WithLogger(opts.logger))
	if !f.metrics {
		return mon, nil, nil
	}
	col, err := metrics.NewCollector("ccmon", nil)
	if err != nil {
		return nil, nil, err
	}
	mon.AddListener(col)

	return mon, col, nil
}

// finish runs the optional consistency check, renders the monitor and dumps metrics.
func finish(w io.Writer, f monitorFlags, opts *globalOptions, name string, mon *components.Monitor, s snapshot, col *metrics.Collector) error {
	if f.verify {
		if err := mon.Verify(); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		opts.logger.Debug("Partition verified", zap.Int("components", mon.Count()))
	}
	if err := render(w, opts.format, name, s); err != nil {
		return err
	}
	if col != nil {
		return col.WriteText(w)
	}

	return nil
}
