// SPDX-License-Identifier: MIT
// File: component.go
// Role: Component value, per-component Behavior and its Factory.

package components

import "sort"

// Component is one maximal connected vertex set at a point in time.
// Membership is owned by the Monitor; a Component is never empty while it is live.
type Component struct {
	id       string
	mon      *Monitor
	members  map[string]struct{}
	behavior Behavior
}

// ID returns the stable identity assigned at creation.
// A component keeps its ID across merges it survives and splits it is the larger side of.
func (c *Component) ID() string { return c.id }

// Vertices returns the member IDs in ascending order.
func (c *Component) Vertices() []string {
	c.mon.mu.RLock()
	defer c.mon.mu.RUnlock()

	return c.sortedMembers()
}

// Len returns the number of member vertices.
func (c *Component) Len() int {
	c.mon.mu.RLock()
	defer c.mon.mu.RUnlock()

	return len(c.members)
}

// Contains reports whether vertex id is a member.
func (c *Component) Contains(id string) bool {
	c.mon.mu.RLock()
	defer c.mon.mu.RUnlock()
	_, ok := c.members[id]

	return ok
}

// Behavior returns the value built by the monitor's Factory for c.
func (c *Component) Behavior() Behavior { return c.behavior }

// sortedMembers requires mon.mu held.
func (c *Component) sortedMembers() []string {
	ids := make([]string, 0, len(c.members))
	for id := range c.members {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// minMember requires mon.mu held and a non-empty component.
func (c *Component) minMember() string {
	first := true
	var lo string
	for id := range c.members {
		if first || id < lo {
			lo, first = id, false
		}
	}

	return lo
}

// Behavior is the pluggable part of a component: what it does when its
// lifecycle or membership changes. Vertex IDs are passed, not vertices, since
// a removed vertex is already gone from the graph.
type Behavior interface {
	OnCreated()
	OnDestroyed()
	OnVertexAdded(id string)
	OnVertexRemoved(id string)
}

// NopBehavior implements Behavior with no-ops. Embed it to override a subset.
type NopBehavior struct{}

func (NopBehavior) OnCreated()             {}
func (NopBehavior) OnDestroyed()           {}
func (NopBehavior) OnVertexAdded(string)   {}
func (NopBehavior) OnVertexRemoved(string) {}

// Factory builds the Behavior of a freshly created component.
// It runs while the monitor is updating its index and must not call back into
// the monitor or c; keep c for later use instead.
type Factory func(c *Component) Behavior

// nopFactory is the default Factory.
func nopFactory(*Component) Behavior { return NopBehavior{} }
