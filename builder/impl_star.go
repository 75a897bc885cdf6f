// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// impl_star.go - Star(n).
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Hub "Center" first, then leaves cfg.vid(1..n-1); spokes Center-leaf in leaf order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/livegraph/core"
)

// Star returns a Constructor that builds a star: one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		center := cfg.fixed(CenterVertexID)
		ids := make([]string, 0, n)
		ids = append(ids, center)
		for i := 1; i < n; i++ {
			ids = append(ids, cfg.vid(i))
		}
		if err := addVertices(g, MethodStar, ids); err != nil {
			return err
		}
		for _, leaf := range ids[1:] {
			if err := connect(g, MethodStar, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
