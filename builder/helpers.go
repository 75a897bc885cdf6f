// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// helpers.go - shared vertex/edge emission for constructors.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/livegraph/core"
)

// addVertices inserts ids in order. Existing vertices are reused.
// An empty or repeated ID means the ID scheme cannot serve this constructor.
// Complexity: O(len(ids)).
func addVertices(g *core.Graph, method string, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("%s: empty vertex ID at index %d: %w", method, i, ErrOptionViolation)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s: vertex ID %q repeats at index %d: %w", method, id, i, ErrOptionViolation)
		}
		seen[id] = struct{}{}
		if err := g.AddVertex(id); err != nil && !errors.Is(err, core.ErrVertexExists) {
			return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, id, err, ErrConstructFailed)
		}
	}

	return nil
}

// connect adds an undirected edge u-v with a graph-generated ID.
func connect(g *core.Graph, method, u, v string) error {
	if _, err := g.Connect(u, v); err != nil {
		return fmt.Errorf("%s: Connect(%s-%s): %w: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}

// addCompleteEdges connects every unordered pair of ids, i<j in slice order.
// Complexity: O(m^2) where m = len(ids).
func addCompleteEdges(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := connect(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// seqIDs returns cfg.vid(0..n-1).
func seqIDs(cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.vid(i)
	}

	return ids
}

// makeIDs returns prefix+"0" .. prefix+"n-1" under the config prefix.
// Example: makeIDs(cfg, "L", 3) -> {"L0","L1","L2"}.
func makeIDs(cfg builderConfig, prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.fixed(prefix + DefaultIDFn(i))
	}

	return ids
}
