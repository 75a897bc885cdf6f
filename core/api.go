// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is an immutable-by-convention snapshot of catalog sizes.
type GraphStats struct {
	VertexCount   int // live vertices
	EdgeCount     int // live edges, self-loops included
	LoopCount     int // edges with From == To
	IsolatedCount int // vertices with an empty adjacency set
	ObserverCount int // subscribed observers
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock and snapshot vertex, edge and observer counts.
//   - Stage 2: Scan edges once to classify self-loops, then adjacency once for isolated vertices.
//
// Behavior highlights:
//   - Pure query: no mutation.
//   - Returns a compact value object suitable for diagnostics and admission checks.
//
// Returns:
//   - *GraphStats: snapshot of counts.
//
// Errors:
//   - None.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount:   len(g.vertices),
		EdgeCount:     len(g.edges),
		ObserverCount: len(g.observers),
	}
	for _, e := range g.edges {
		if e.IsLoop() {
			stats.LoopCount++
		}
	}
	for _, adj := range g.adjacency {
		if len(adj) == 0 {
			stats.IsolatedCount++
		}
	}

	return &stats
}
