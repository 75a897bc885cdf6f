package scenario

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/livegraph/components"
	"github.com/katalvlaran/livegraph/core"
)

// StepResult records the outcome of one step.
// Err holds a recoverable graph error (absent vertex, duplicate edge and so on);
// such failures do not stop the run.
type StepResult struct {
	Index      int
	Action     string
	Err        error
	Components int
}

// Report summarizes a run.
type Report struct {
	Name      string
	Steps     []StepResult
	Failures  int
	Partition [][]string
	// Graph is a detached copy of the graph as the run left it.
	Graph *core.Graph
}

// Run loads the initial vertices and edges into g, sets mon up on g when it is
// not set up yet, then applies the steps in order. A monitor already set up on
// another graph is rejected with ErrMonitorGraphMismatch before g is touched.
//
// Recoverable graph errors are recorded in the report and the run continues.
// A failing expect step stops the run with an error wrapping ErrExpectationFailed.
// ctx is checked between steps. The returned report is never nil.
func Run(ctx context.Context, s *Scenario, mon *components.Monitor, g *core.Graph, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rep := &Report{Name: s.Name}
	if mon.IsSetup() && mon.Graph() != g {
		return rep, ErrMonitorGraphMismatch
	}
	defer func() {
		rep.Partition = mon.Partition()
		rep.Graph = g.Clone()
	}()

	for _, id := range s.Vertices {
		if err := g.AddVertex(id); err != nil {
			return rep, fmt.Errorf("scenario: initial vertex %q: %w", id, err)
		}
	}
	for _, e := range s.Edges {
		if _, err := addEdge(g, e); err != nil {
			return rep, fmt.Errorf("scenario: initial edge %q: %w", e.ID, err)
		}
	}
	if !mon.IsSetup() {
		if err := mon.Setup(g); err != nil {
			return rep, err
		}
	}
	logger.Debug("Scenario loaded",
		zap.String("name", s.Name),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("components", mon.Count()))

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return rep, fmt.Errorf("scenario: step %d: %w", i, err)
		}

		res := StepResult{Index: i, Action: st.Action()}
		if st.Expect != nil {
			if err := check(mon, st.Expect); err != nil {
				res.Components = mon.Count()
				rep.Steps = append(rep.Steps, res)
				return rep, fmt.Errorf("step %d: %w: %v", i, ErrExpectationFailed, err)
			}
		} else {
			res.Err = apply(g, st)
		}
		res.Components = mon.Count()
		rep.Steps = append(rep.Steps, res)

		if res.Err != nil {
			rep.Failures++
			logger.Info("Step failed",
				zap.Int("step", i),
				zap.String("action", res.Action),
				zap.Error(res.Err))
			continue
		}
		logger.Debug("Step applied",
			zap.Int("step", i),
			zap.String("action", res.Action),
			zap.Int("components", res.Components))
	}

	return rep, nil
}

func apply(g *core.Graph, st Step) error {
	switch {
	case st.AddVertex != "":
		return g.AddVertex(st.AddVertex)
	case st.AddEdge != nil:
		_, err := addEdge(g, *st.AddEdge)
		return err
	case st.RemoveEdge != "":
		return g.RemoveEdge(st.RemoveEdge)
	case st.RemoveVertex != "":
		return g.RemoveVertex(st.RemoveVertex)
	}

	return nil
}

// addEdge checks the endpoints first: the graph panics on an absent endpoint,
// a script only records it.
func addEdge(g *core.Graph, e EdgeSpec) (string, error) {
	for _, end := range []string{e.From, e.To} {
		if !g.HasVertex(end) {
			return "", fmt.Errorf("endpoint %q: %w", end, core.ErrVertexNotFound)
		}
	}
	if e.ID == "" {
		return g.Connect(e.From, e.To)
	}

	return e.ID, g.AddEdge(core.Edge{ID: e.ID, From: e.From, To: e.To})
}

func check(mon *components.Monitor, want *Expect) error {
	if want.Components != nil {
		if got := mon.Count(); got != *want.Components {
			return fmt.Errorf("components: got %d, want %d", got, *want.Components)
		}
	}
	if want.Partition != nil {
		exp := normalize(want.Partition)
		if got := mon.Partition(); !reflect.DeepEqual(got, exp) {
			return fmt.Errorf("partition: got %v, want %v", got, exp)
		}
	}
	for _, p := range want.Connected {
		if !mon.Connected(p[0], p[1]) {
			return fmt.Errorf("%s and %s are not connected", p[0], p[1])
		}
	}
	for _, p := range want.Disconnected {
		if mon.Connected(p[0], p[1]) {
			return fmt.Errorf("%s and %s are connected", p[0], p[1])
		}
	}

	return nil
}

// normalize sorts members and orders groups by smallest member, the order
// Monitor.Partition uses.
func normalize(groups [][]string) [][]string {
	out := make([][]string, 0, len(groups))
	for _, grp := range groups {
		if len(grp) == 0 {
			continue
		}
		cp := append([]string(nil), grp...)
		sort.Strings(cp)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
