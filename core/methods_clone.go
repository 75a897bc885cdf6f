// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so Connect on the clone continues the same textual sequence.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.
// Observers:
//   - Never copied. A clone is a detached store; subscribe to it explicitly.

package core

import "sync/atomic"

// Clone returns a deep copy of the vertices, edges and adjacency of g.
// Metadata maps are copied; observers are not.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithEdgeIDPrefix(g.edgeIDPrefix), WithVertexIDPrefix(g.vertexIDPrefix))
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	atomic.StoreUint64(&clone.nextVertexID, atomic.LoadUint64(&g.nextVertexID))
	for id, v := range g.vertices {
		clone.vertices[id] = copyVertex(v)
		clone.adjacency[id] = make(map[string]struct{}, len(g.adjacency[id]))
	}
	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: e.ID, From: e.From, To: e.To}
		clone.adjacency[e.From][eid] = struct{}{}
		clone.adjacency[e.To][eid] = struct{}{}
	}

	return clone
}

func copyVertex(v *Vertex) *Vertex {
	meta := make(map[string]string, len(v.Metadata))
	for k, val := range v.Metadata {
		meta[k] = val
	}

	return &Vertex{ID: v.ID, Metadata: meta}
}
