// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// impl_path.go - Path(n).
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Vertices cfg.vid(0..n-1) in ascending order.
//   - Edges (i-1)-i for i=1..n-1 in increasing order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/livegraph/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		ids := seqIDs(cfg, n)
		if err := addVertices(g, MethodPath, ids); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, MethodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
