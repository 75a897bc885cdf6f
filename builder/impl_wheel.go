// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// impl_wheel.go - Wheel(n) = C_{n-1} plus hub.
//
// Contract:
//   - n >= 4 (else ErrTooFewVertices).
//   - Rim cfg.vid(0..n-2) as a cycle (same order as Cycle), then spokes
//     Center-rim[i] in rim order.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/livegraph/core"
)

// Wheel returns a Constructor for the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim: %w", MethodWheel, err)
		}
		center := cfg.fixed(CenterVertexID)
		if err := addVertices(g, MethodWheel, []string{center}); err != nil {
			return err
		}
		for _, rim := range seqIDs(cfg, n-1) {
			if err := connect(g, MethodWheel, center, rim); err != nil {
				return err
			}
		}

		return nil
	}
}
