// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - RemoveVertex strips incident edges in ascending edge-ID order.
//
// Concurrency:
//   - Catalogs protected by mu; observers run after mu is released.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// AddVertex inserts a new vertex with an empty adjacency set and signals VertexAdded.
//
// Returns:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexExists if the vertex is already present (no side effect).
//
// Complexity: O(1) amortized plus observer cost.
func (g *Graph) AddVertex(id string) error {
	return g.AddVertexWithMetadata(id, nil)
}

// AddVertexWithMetadata behaves like AddVertex and attaches a copy of meta to the new vertex.
func (g *Graph) AddVertexWithMetadata(id string, meta map[string]string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	if _, exists := g.vertices[id]; exists {
		g.mu.Unlock()
		return ErrVertexExists
	}
	v := &Vertex{ID: id, Metadata: make(map[string]string, len(meta))}
	for k, val := range meta {
		v.Metadata[k] = val
	}
	g.vertices[id] = v
	g.adjacency[id] = make(map[string]struct{})
	obs := g.snapshotObservers()
	g.mu.Unlock()

	notifyVertexAdded(obs, v)

	return nil
}

// AddDefaultVertex inserts a vertex under a freshly generated ID ("v1", "v2",
// ... with the configured prefix), skipping IDs already taken, and returns it.
func (g *Graph) AddDefaultVertex() (string, error) {
	g.mu.Lock()
	var id string
	for {
		id = fmt.Sprintf("%s%d", g.vertexIDPrefix, atomic.AddUint64(&g.nextVertexID, 1))
		if _, taken := g.vertices[id]; !taken {
			break
		}
	}
	v := &Vertex{ID: id, Metadata: make(map[string]string)}
	g.vertices[id] = v
	g.adjacency[id] = make(map[string]struct{})
	obs := g.snapshotObservers()
	g.mu.Unlock()

	notifyVertexAdded(obs, v)

	return id, nil
}

// HasVertex reports whether a vertex with the given ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex record for id.
// Returns ErrVertexNotFound if absent.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes every edge incident to id, then the vertex itself.
//
// Implementation:
//   - Stage 1: snapshot the adjacency set (sorted) so removal never mutates the
//     set being iterated.
//   - Stage 2: RemoveEdge each snapshot entry; each removal signals EdgeRemoved.
//   - Stage 3: delete the vertex and signal VertexRemoved.
//
// Returns ErrEmptyVertexID or ErrVertexNotFound; nothing changes in that case.
// Panics if an edge from the snapshot cannot be removed: the adjacency
// invariant is broken and continuing would corrupt observers' state.
//
// Complexity: O(deg(v)·log deg(v)) plus observer cost.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.RLock()
	if _, exists := g.vertices[id]; !exists {
		g.mu.RUnlock()
		return ErrVertexNotFound
	}
	incident := sortedKeys(g.adjacency[id])
	g.mu.RUnlock()

	for _, eid := range incident {
		if err := g.RemoveEdge(eid); err != nil {
			panic("core: RemoveVertex(" + id + "): incident edge " + eid + ": " + err.Error())
		}
	}

	g.mu.Lock()
	v, ok := g.vertices[id]
	if !ok || len(g.adjacency[id]) != 0 {
		g.mu.Unlock()
		panic("core: RemoveVertex(" + id + "): vertex changed while stripping edges")
	}
	delete(g.vertices, id)
	delete(g.adjacency, id)
	obs := g.snapshotObservers()
	g.mu.Unlock()

	notifyVertexRemoved(obs, v)

	return nil
}

// Vertices returns all vertex IDs, sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge endpoints at id; a self-loop counts twice.
// Returns ErrVertexNotFound if absent.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	deg := 0
	for eid := range adj {
		deg++
		if g.edges[eid].IsLoop() {
			deg++
		}
	}

	return deg, nil
}

// sortedKeys returns the keys of set in ascending order.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
