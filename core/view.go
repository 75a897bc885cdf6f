// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex and edge IDs.
// Concurrency:
//   - Read lock on source; result is a fresh, unobserved graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithEdgeIDPrefix(g.edgeIDPrefix), WithVertexIDPrefix(g.vertexIDPrefix))
	// Carrying the counter forward keeps Connect on the view from reusing historical IDs.
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	atomic.StoreUint64(&out.nextVertexID, atomic.LoadUint64(&g.nextVertexID))

	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = copyVertex(v)
			out.adjacency[id] = make(map[string]struct{})
		}
	}
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		out.edges[eid] = &Edge{ID: e.ID, From: e.From, To: e.To}
		out.adjacency[e.From][eid] = struct{}{}
		out.adjacency[e.To][eid] = struct{}{}
	}

	return out
}
