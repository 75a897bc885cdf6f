// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// impl_cycle.go - Cycle(n).
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Path edges 0-1-...-(n-1) first, then the closing edge (n-1)-0.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/livegraph/core"
)

// Cycle returns a Constructor that builds a simple ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		ids := seqIDs(cfg, n)
		if err := addVertices(g, MethodCycle, ids); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, MethodCycle, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return connect(g, MethodCycle, ids[n-1], ids[0])
	}
}
