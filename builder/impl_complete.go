// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Edges for every pair i<j, i ascending then j ascending.
//
// Complexity: O(n) vertices + O(n^2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/livegraph/core"
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		ids := seqIDs(cfg, n)
		if err := addVertices(g, MethodComplete, ids); err != nil {
			return err
		}

		return addCompleteEdges(g, MethodComplete, ids)
	}
}
