// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Model: Erdos-Renyi G(n,p). Each unordered pair {i,j}, i<j, is an edge
// independently with probability p. No self-loops, no parallel edges.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource); p in {0,1}
//     is deterministic and runs without one.
//
// Determinism: trial order is i asc, then j asc, one draw per pair.
// Complexity: O(n) vertices + O(n^2) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/livegraph/core"
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomVertices, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids := seqIDs(cfg, n)
		if err := addVertices(g, MethodRandomSparse, ids); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var hit bool
				switch {
				case p == 0:
				case p == 1:
					hit = true
				default:
					hit = cfg.rng.Float64() < p
				}
				if !hit {
					continue
				}
				if err := connect(g, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
