// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for livegraph/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/livegraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// recorder captures every signal as a compact "kind:id" string, in delivery order.
type recorder struct {
	events []string
}

func (r *recorder) VertexAdded(v *core.Vertex)   { r.events = append(r.events, "+v:"+v.ID) }
func (r *recorder) VertexRemoved(v *core.Vertex) { r.events = append(r.events, "-v:"+v.ID) }
func (r *recorder) EdgeAdded(e *core.Edge)       { r.events = append(r.events, "+e:"+e.ID) }
func (r *recorder) EdgeRemoved(e *core.Edge)     { r.events = append(r.events, "-e:"+e.ID) }

// mustVertices adds every id or fails the test.
func mustVertices(t *testing.T, g *core.Graph, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
	}
}

// mustEdge adds edge id between from and to or fails the test.
func mustEdge(t *testing.T, g *core.Graph, id, from, to string) {
	t.Helper()
	require.NoError(t, g.AddEdge(core.Edge{ID: id, From: from, To: to}))
}

// edgeIDs projects edges onto their IDs.
func edgeIDs(edges []*core.Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.ID)
	}

	return out
}

// requireAdjacencyInvariant checks that every edge is incident to both endpoints.
func requireAdjacencyInvariant(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, e := range g.Edges() {
		for _, end := range []string{e.From, e.To} {
			inc, err := g.IncidentEdges(end)
			require.NoError(t, err)
			require.Contains(t, edgeIDs(inc), e.ID, "edge %s missing from adjacency of %s", e.ID, end)
		}
	}
}
