// SPDX-License-Identifier: MIT

package components

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/livegraph/core"
	"github.com/katalvlaran/livegraph/dfs"
)

// Components returns the live components ordered by their smallest member ID.
func (m *Monitor) Components() []*Component {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type keyed struct {
		c   *Component
		min string
	}
	list := make([]keyed, 0, len(m.live))
	for c := range m.live {
		list = append(list, keyed{c: c, min: c.minMember()})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].min < list[j].min })

	out := make([]*Component, len(list))
	for i, k := range list {
		out[i] = k.c
	}

	return out
}

// Partition returns the sorted member lists of Components, in the same order.
func (m *Monitor) Partition() [][]string {
	comps := m.Components()
	out := make([][]string, len(comps))
	for i, c := range comps {
		out[i] = c.Vertices()
	}

	return out
}

// ComponentOf returns the component owning vertex id.
func (m *Monitor) ComponentOf(id string) (*Component, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.index[id]

	return c, ok
}

// Count returns the number of live components.
func (m *Monitor) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.live)
}

// Connected reports whether a and b are tracked and share a component.
func (m *Monitor) Connected(a, b string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ca, okA := m.index[a]
	cb, okB := m.index[b]

	return okA && okB && ca == cb
}

// Graph returns the monitored graph, nil before Setup.
func (m *Monitor) Graph() *core.Graph {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.graph
}

// IsSetup reports whether Setup has completed.
func (m *Monitor) IsSetup() bool {
	return m.Graph() != nil
}

// Subgraph returns a detached copy of the vertices and edges of c.
func (m *Monitor) Subgraph(c *Component) (*core.Graph, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.graph == nil {
		return nil, ErrNotSetup
	}
	if _, ok := m.live[c]; !ok || c.mon != m {
		return nil, ErrComponentNotLive
	}
	keep := make(map[string]bool, len(c.members))
	for id := range c.members {
		keep[id] = true
	}

	return core.InducedSubgraph(m.graph, keep), nil
}

// Verify recomputes connectivity from the graph and returns the first
// disagreement with the maintained partition, wrapped in ErrPartitionViolation.
//
// Complexity: O(V log V + E).
func (m *Monitor) Verify() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.graph == nil {
		return ErrNotSetup
	}

	ids := m.graph.Vertices()
	if len(ids) != len(m.index) {
		return fmt.Errorf("%w: graph has %d vertices, index has %d", ErrPartitionViolation, len(ids), len(m.index))
	}
	total := 0
	for c := range m.live {
		if len(c.members) == 0 {
			return fmt.Errorf("%w: component %s is empty", ErrPartitionViolation, c.id)
		}
		total += len(c.members)
	}
	if total != len(m.index) {
		return fmt.Errorf("%w: components hold %d vertices, index has %d", ErrPartitionViolation, total, len(m.index))
	}
	for _, id := range ids {
		c, ok := m.index[id]
		if !ok {
			return fmt.Errorf("%w: vertex %q not indexed", ErrPartitionViolation, id)
		}
		if _, live := m.live[c]; !live {
			return fmt.Errorf("%w: vertex %q indexed to destroyed component %s", ErrPartitionViolation, id, c.id)
		}
		if _, member := c.members[id]; !member {
			return fmt.Errorf("%w: vertex %q missing from component %s", ErrPartitionViolation, id, c.id)
		}
	}

	// an independent DFS labeling is the reference partition
	parts, err := dfs.Components(m.graph)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPartitionViolation, err)
	}
	for _, part := range parts {
		root := part[0]
		c := m.index[root]
		for _, r := range part[1:] {
			if m.index[r] != c {
				return fmt.Errorf("%w: %q reaches %q in another component", ErrPartitionViolation, root, r)
			}
		}
		if len(part) != len(c.members) {
			return fmt.Errorf("%w: component %s has %d vertices, %q reaches %d",
				ErrPartitionViolation, c.id, len(c.members), root, len(part))
		}
	}
	if len(parts) != len(m.live) {
		return fmt.Errorf("%w: graph has %d components, monitor has %d", ErrPartitionViolation, len(parts), len(m.live))
	}

	return nil
}
