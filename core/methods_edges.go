// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Invariants:
//   - Every edge e=(s,t) is in adjacency[s] and adjacency[t]; a self-loop is a
//     single entry in adjacency[s].
//   - An edge is only ever created between two live vertices.
//
// Determinism:
//   - Edges(), IncidentEdges(), EdgesBetween() are sorted by Edge.ID.
//   - NeighborIDs() is sorted by vertex ID.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// AddEdge inserts e, registers it with both endpoints and signals EdgeAdded.
//
// Returns:
//   - ErrEmptyEdgeID if e.ID == "".
//   - ErrEdgeExists if an edge with e.ID is already present (no side effect).
//
// Panics if e.From or e.To is not a vertex of g: an edge may only reference
// live vertices, and that is the caller's contract, not a runtime condition.
//
// Complexity: O(1) amortized plus observer cost.
func (g *Graph) AddEdge(e Edge) error {
	if e.ID == "" {
		return ErrEmptyEdgeID
	}

	g.mu.Lock()
	stored, err := g.insertEdgeLocked(e)
	if err != nil {
		g.mu.Unlock()
		return err
	}
	obs := g.snapshotObservers()
	g.mu.Unlock()

	notifyEdgeAdded(obs, stored)

	return nil
}

// Connect adds an edge between from and to under a freshly generated ID
// ("e1", "e2", ... with the configured prefix) and returns that ID.
// Panics under the same contract as AddEdge.
func (g *Graph) Connect(from, to string) (string, error) {
	g.mu.Lock()
	var eid string
	for {
		eid = fmt.Sprintf("%s%d", g.edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
		if _, taken := g.edges[eid]; !taken {
			break
		}
	}
	stored, err := g.insertEdgeLocked(Edge{ID: eid, From: from, To: to})
	if err != nil {
		g.mu.Unlock()
		return "", err
	}
	obs := g.snapshotObservers()
	g.mu.Unlock()

	notifyEdgeAdded(obs, stored)

	return eid, nil
}

// insertEdgeLocked stores a copy of e. Caller must hold mu for writing.
func (g *Graph) insertEdgeLocked(e Edge) (*Edge, error) {
	if _, exists := g.edges[e.ID]; exists {
		return nil, ErrEdgeExists
	}
	if _, ok := g.vertices[e.From]; !ok {
		g.mu.Unlock()
		panic(fmt.Sprintf("core: AddEdge(%s): source vertex %q not in graph", e.ID, e.From))
	}
	if _, ok := g.vertices[e.To]; !ok {
		g.mu.Unlock()
		panic(fmt.Sprintf("core: AddEdge(%s): target vertex %q not in graph", e.ID, e.To))
	}

	stored := &Edge{ID: e.ID, From: e.From, To: e.To}
	g.edges[stored.ID] = stored
	g.adjacency[stored.From][stored.ID] = struct{}{}
	g.adjacency[stored.To][stored.ID] = struct{}{} // same entry again for a self-loop

	return stored, nil
}

// RemoveEdge deregisters the edge from both endpoints, deletes it and signals EdgeRemoved.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1) plus observer cost.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	e, ok := g.edges[eid]
	if !ok {
		g.mu.Unlock()
		return ErrEdgeNotFound
	}
	delete(g.adjacency[e.From], eid)
	if !e.IsLoop() {
		delete(g.adjacency[e.To], eid)
	}
	delete(g.edges, eid)
	obs := g.snapshotObservers()
	g.mu.Unlock()

	notifyEdgeRemoved(obs, e)

	return nil
}

// HasEdge reports whether an edge with the given ID exists.
func (g *Graph) HasEdge(eid string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[eid]

	return ok
}

// Edge returns the edge with the given ID, or ErrEdgeNotFound.
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgesBetween returns every edge joining a and b (the intersection of their
// adjacency sets), sorted by ID. Missing vertices yield an empty result.
// Complexity: O(min(deg a, deg b) + k·log k).
func (g *Graph) EdgesBetween(a, b string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adjA, okA := g.adjacency[a]
	adjB, okB := g.adjacency[b]
	if !okA || !okB {
		return nil
	}
	// iterate the smaller set
	if len(adjB) < len(adjA) {
		adjA, adjB = adjB, adjA
	}
	var out []*Edge
	for eid := range adjA {
		if _, ok := adjB[eid]; ok {
			out = append(out, g.edges[eid])
		}
	}
	sortEdges(out)

	return out
}

// EdgeBetween returns one edge joining a and b (the smallest ID), if any.
func (g *Graph) EdgeBetween(a, b string) (*Edge, bool) {
	edges := g.EdgesBetween(a, b)
	if len(edges) == 0 {
		return nil, false
	}

	return edges[0], true
}

// HasEdgeBetween reports whether at least one edge joins a and b.
func (g *Graph) HasEdgeBetween(a, b string) bool {
	_, ok := g.EdgeBetween(a, b)
	return ok
}

// IncidentEdges returns the edges in id's adjacency set, sorted by ID.
// Returns ErrVertexNotFound if absent.
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(adj))
	for eid := range adj {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique IDs of vertices adjacent to id, sorted.
// A self-loop lists id itself.
// Returns ErrVertexNotFound if absent.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	seen := make(map[string]struct{}, len(adj))
	for eid := range adj {
		seen[g.edges[eid].Other(id)] = struct{}{}
	}

	return sortedKeys(seen), nil
}

// Edges returns all edges sorted by ID.
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

func sortEdges(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
}
