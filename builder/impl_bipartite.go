// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2).
//
// Contract:
//   - n1, n2 >= 1 (else ErrTooFewVertices).
//   - Left IDs "<left><i>", right IDs "<right><j>" (see WithPartitionPrefix),
//     left side first.
//   - Cross edges in (i over left, j over right) order.
//
// Complexity: O(n1+n2) vertices + O(n1*n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/livegraph/core"
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be >= %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}
		left := makeIDs(cfg, cfg.leftPrefix, n1)
		right := makeIDs(cfg, cfg.rightPrefix, n2)
		if err := addVertices(g, MethodCompleteBipartite, append(append([]string{}, left...), right...)); err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err := connect(g, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
