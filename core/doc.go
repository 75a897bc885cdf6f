// Package core provides the undirected, mutable graph store that the rest of
// livegraph is built on: a vertex catalog, an edge catalog, per-vertex
// adjacency sets, and synchronous structural-change notifications.
//
// The Graph G = (V,E) guarantees:
//
//   - Adjacency invariant: every edge e=(s,t) is registered in the adjacency
//     set of s and of t; a self-loop (s == t) is a single entry.
//   - Referential integrity: an edge is only created between live vertices.
//     AddEdge with an absent endpoint is a contract violation and panics.
//   - Clean vertex removal: RemoveVertex strips every incident edge (each with
//     its own EdgeRemoved signal) before the vertex goes and VertexRemoved fires.
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() are sorted.
//
// Error classes:
//
//	Recoverable (returned, no side effect):
//	  ErrEmptyVertexID, ErrEmptyEdgeID    – zero-length ID
//	  ErrVertexExists, ErrEdgeExists      – duplicate add
//	  ErrVertexNotFound, ErrEdgeNotFound  – remove or lookup of an absent entity
//	Contract violation (panic):
//	  edge endpoint not in graph, adjacency corrupted during RemoveVertex
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                          // O(1)
//	AddVertexWithMetadata(id string, m map[string]string) error
//	RemoveVertex(id string) error                       // O(deg(v)·log deg(v))
//	HasVertex(id string) bool                           // O(1)
//
//	// Edge lifecycle
//	AddEdge(e Edge) error                               // O(1)
//	Connect(from, to string) (edgeID string, err error) // O(1), generated ID
//	RemoveEdge(edgeID string) error                     // O(1)
//
//	// Query
//	EdgeBetween(a, b string) (*Edge, bool)
//	EdgesBetween(a, b string) []*Edge                   // adjacency intersection
//	IncidentEdges(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//
//	// Notifications
//	Subscribe(o Observer) / Unsubscribe(o Observer) bool
//
//	// Diagnostics
//	WriteDOT(w io.Writer, name string, opts ...DOTOption) error
//	Stats() *GraphStats
//
// Concurrency: a single sync.RWMutex guards the catalogs. Queries may run
// concurrently with each other; mutations are single-writer. Observers are
// invoked after the lock is released and before the mutating call returns, so
// an observer sees the graph in its post-mutation state and may query it.
package core
