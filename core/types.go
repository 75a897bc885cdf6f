// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types of livegraph,
// and provides the mutation and query primitives every other package builds on.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrEmptyEdgeID    - edge ID is the empty string.
//	ErrVertexExists   - vertex is already a member of the graph.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeExists     - an edge with the same ID is already present.
//	ErrEdgeNotFound   - requested edge does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEmptyEdgeID indicates that the provided Edge has an empty ID.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrVertexExists indicates the vertex is already present; nothing was changed.
	ErrVertexExists = errors.New("core: vertex already present")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeExists indicates an edge with the same ID is already present; nothing was changed.
	ErrEdgeExists = errors.New("core: edge already present")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores caller-supplied attributes; DOT export renders them.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user attributes. It is never nil for vertices
	// created by the Graph.
	Metadata map[string]string
}

// Edge represents an undirected connection between two vertices.
//
// From and To are interchangeable for connectivity; they are kept in the
// order the caller supplied them. From == To is a self-loop.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint vertex ID.
	From string

	// To is the second endpoint vertex ID.
	To string
}

// IsLoop reports whether the edge is a self-loop.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to id. For a self-loop it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithObserver subscribes o before the graph receives its first mutation.
func WithObserver(o Observer) GraphOption {
	return func(g *Graph) {
		if o != nil {
			g.observers = append(g.observers, o)
		}
	}
}

// WithEdgeIDPrefix sets the prefix used by Connect for generated edge IDs
// (default "e", giving "e1", "e2", ...). An empty prefix is ignored.
func WithEdgeIDPrefix(prefix string) GraphOption {
	return func(g *Graph) {
		if prefix != "" {
			g.edgeIDPrefix = prefix
		}
	}
}

// WithVertexIDPrefix sets the prefix used by AddDefaultVertex for generated
// vertex IDs (default "v", giving "v1", "v2", ...). An empty prefix is ignored.
func WithVertexIDPrefix(prefix string) GraphOption {
	return func(g *Graph) {
		if prefix != "" {
			g.vertexIDPrefix = prefix
		}
	}
}

// Graph is the in-memory undirected graph store.
//
// mu guards the vertex and edge catalogs, the adjacency sets and the
// observer list. Mutations are single-writer: observers are notified after mu
// is released, so they may query the graph, but two goroutines must never
// mutate the same Graph at once.
type Graph struct {
	mu sync.RWMutex

	edgeIDPrefix   string
	nextEdgeID     uint64 // atomic edge ID generator for Connect
	vertexIDPrefix string
	nextVertexID   uint64 // atomic vertex ID generator for AddDefaultVertex

	vertices map[string]*Vertex // vertex ID → Vertex
	edges    map[string]*Edge   // edge ID → Edge

	// adjacency[vertexID][edgeID] = struct{}{}; a self-loop appears once.
	adjacency map[string]map[string]struct{}

	observers []Observer
}

const (
	defaultEdgeIDPrefix   = "e"
	defaultVertexIDPrefix = "v"
)

// NewGraph creates an empty Graph with the given options.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		edgeIDPrefix:   defaultEdgeIDPrefix,
		vertexIDPrefix: defaultVertexIDPrefix,
		vertices:       make(map[string]*Vertex),
		edges:          make(map[string]*Edge),
		adjacency:      make(map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
