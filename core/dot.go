// SPDX-License-Identifier: MIT
// File: dot.go
// Role: Graphviz DOT diagnostic export.
//
// Output shape (deterministic, not meant for round-trip parsing):
//
//	graph name {
//	  "A" [color="red"];
//	  "B";
//	  "A" -- "B";
//	}
//
// Vertices are sorted by ID, attribute keys by name, edges by edge ID.

package core

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// DOTOption configures WriteDOT.
type DOTOption func(*dotConfig)

type dotConfig struct {
	vertexAttrs func(v *Vertex) map[string]string
}

// WithVertexAttributes replaces the per-vertex attribute source (default: v.Metadata).
// A nil fn is ignored.
func WithVertexAttributes(fn func(v *Vertex) map[string]string) DOTOption {
	return func(c *dotConfig) {
		if fn != nil {
			c.vertexAttrs = fn
		}
	}
}

// WriteDOT writes an undirected Graphviz description of g to w.
// An empty name is rendered as "G".
// Complexity: O(V·log V + E·log E).
func (g *Graph) WriteDOT(w io.Writer, name string, opts ...DOTOption) error {
	cfg := dotConfig{vertexAttrs: func(v *Vertex) map[string]string { return v.Metadata }}
	for _, opt := range opts {
		opt(&cfg)
	}
	if name == "" {
		name = "G"
	}

	// Snapshot under the read lock, render without it.
	g.mu.RLock()
	vertices := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		vertices = append(vertices, v)
	}
	edges := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, e)
	}
	g.mu.RUnlock()
	sort.Slice(vertices, func(i, j int) bool { return vertices[i].ID < vertices[j].ID })
	sortEdges(edges)

	bw := bufio.NewWriter(w)
	bw.WriteString("graph " + dotID(name) + " {\n")
	for _, v := range vertices {
		bw.WriteString("  " + dotQuote(v.ID))
		if attrs := cfg.vertexAttrs(v); len(attrs) > 0 {
			bw.WriteString(" [" + formatAttrs(attrs) + "]")
		}
		bw.WriteString(";\n")
	}
	for _, e := range edges {
		bw.WriteString("  " + dotQuote(e.From) + " -- " + dotQuote(e.To) + ";\n")
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// DOT returns the WriteDOT output as a string.
func (g *Graph) DOT(name string, opts ...DOTOption) string {
	var sb strings.Builder
	_ = g.WriteDOT(&sb, name, opts...) // strings.Builder never fails

	return sb.String()
}

func formatAttrs(attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, dotID(k)+"="+dotQuote(attrs[k]))
	}

	return strings.Join(parts, ", ")
}

// dotKeywords are reserved by the DOT grammar, case-insensitively.
var dotKeywords = map[string]struct{}{
	"graph": {}, "digraph": {}, "subgraph": {}, "node": {}, "edge": {}, "strict": {},
}

// dotID returns s unquoted when it is a plain DOT identifier, quoted otherwise.
func dotID(s string) string {
	if s == "" {
		return `""`
	}
	if _, reserved := dotKeywords[strings.ToLower(s)]; reserved {
		return dotQuote(s)
	}
	for i, r := range s {
		isAlpha := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !isAlpha && !(isDigit && i > 0) {
			return dotQuote(s)
		}
	}

	return s
}

// dotQuote wraps s in double quotes, escaping only double quotes and backslashes;
// DOT reads every other byte, UTF-8 included, literally.
func dotQuote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')

	return sb.String()
}
