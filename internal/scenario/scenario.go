// Package scenario loads graph mutation scripts from YAML and replays them
// against a monitored graph.
//
// A scenario file:
//
//	name: triangle
//	vertices: [A, B, C]
//	edges:
//	  - {id: ab, from: A, to: B}
//	steps:
//	  - add_edge: {id: bc, from: B, to: C}
//	  - expect: {components: 1}
//	  - remove_edge: ab
//	  - expect: {partition: [[A, B, C]]}
//
// Unknown keys are rejected.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidScenario wraps every decoding and validation failure.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrExpectationFailed is returned by Run when an expect step does not hold.
	ErrExpectationFailed = errors.New("scenario: expectation failed")

	// ErrMonitorGraphMismatch is returned by Run when the monitor is already
	// set up on a graph other than the one the scenario mutates.
	ErrMonitorGraphMismatch = errors.New("scenario: monitor is set up on another graph")
)

// Scenario is one replayable script.
type Scenario struct {
	Name     string     `yaml:"name"`
	Vertices []string   `yaml:"vertices,omitempty"`
	Edges    []EdgeSpec `yaml:"edges,omitempty"`
	Steps    []Step     `yaml:"steps"`
}

// EdgeSpec names an edge. An empty ID lets the graph generate one.
type EdgeSpec struct {
	ID   string `yaml:"id,omitempty"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Step holds exactly one action.
type Step struct {
	AddVertex    string    `yaml:"add_vertex,omitempty"`
	AddEdge      *EdgeSpec `yaml:"add_edge,omitempty"`
	RemoveEdge   string    `yaml:"remove_edge,omitempty"`
	RemoveVertex string    `yaml:"remove_vertex,omitempty"`
	Expect       *Expect   `yaml:"expect,omitempty"`
}

// Expect asserts monitor state. Unset fields are not checked.
type Expect struct {
	Components   *int        `yaml:"components,omitempty"`
	Partition    [][]string  `yaml:"partition,omitempty"`
	Connected    [][2]string `yaml:"connected,omitempty"`
	Disconnected [][2]string `yaml:"disconnected,omitempty"`
}

// Action returns a short human-readable form of the step.
func (s Step) Action() string {
	switch {
	case s.AddVertex != "":
		return "add_vertex " + s.AddVertex
	case s.AddEdge != nil:
		return fmt.Sprintf("add_edge %s %s-%s", s.AddEdge.ID, s.AddEdge.From, s.AddEdge.To)
	case s.RemoveEdge != "":
		return "remove_edge " + s.RemoveEdge
	case s.RemoveVertex != "":
		return "remove_vertex " + s.RemoveVertex
	case s.Expect != nil:
		return "expect"
	}

	return "empty"
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.AddVertex != "",
		s.AddEdge != nil,
		s.RemoveEdge != "",
		s.RemoveVertex != "",
		s.Expect != nil,
	} {
		if set {
			n++
		}
	}

	return n
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes one YAML document strictly and validates it.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the structure that does not depend on graph state:
// initial edges reference initial vertices, every step has exactly one action,
// edge specs have both endpoints.
func (s *Scenario) Validate() error {
	initial := make(map[string]struct{}, len(s.Vertices))
	for i, id := range s.Vertices {
		if id == "" {
			return fmt.Errorf("%w: vertices[%d] is empty", ErrInvalidScenario, i)
		}
		if _, dup := initial[id]; dup {
			return fmt.Errorf("%w: vertex %q listed twice", ErrInvalidScenario, id)
		}
		initial[id] = struct{}{}
	}
	edgeIDs := make(map[string]struct{}, len(s.Edges))
	for i, e := range s.Edges {
		if err := e.validate(); err != nil {
			return fmt.Errorf("%w: edges[%d]: %v", ErrInvalidScenario, i, err)
		}
		for _, end := range []string{e.From, e.To} {
			if _, ok := initial[end]; !ok {
				return fmt.Errorf("%w: edges[%d]: vertex %q is not in vertices", ErrInvalidScenario, i, end)
			}
		}
		if e.ID != "" {
			if _, dup := edgeIDs[e.ID]; dup {
				return fmt.Errorf("%w: edge %q listed twice", ErrInvalidScenario, e.ID)
			}
			edgeIDs[e.ID] = struct{}{}
		}
	}
	for i, st := range s.Steps {
		if n := st.actions(); n != 1 {
			return fmt.Errorf("%w: steps[%d] has %d actions, want 1", ErrInvalidScenario, i, n)
		}
		if st.AddEdge != nil {
			if err := st.AddEdge.validate(); err != nil {
				return fmt.Errorf("%w: steps[%d]: %v", ErrInvalidScenario, i, err)
			}
		}
		if st.Expect != nil && st.Expect.Components != nil && *st.Expect.Components < 0 {
			return fmt.Errorf("%w: steps[%d]: negative component count", ErrInvalidScenario, i)
		}
	}

	return nil
}

func (e EdgeSpec) validate() error {
	if e.From == "" || e.To == "" {
		return fmt.Errorf("edge %q needs from and to", e.ID)
	}

	return nil
}
