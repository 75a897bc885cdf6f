// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// impl_random_regular.go - RandomRegular(n, d).
//
// Model: stub matching. Every vertex contributes d stubs; the stub list is
// shuffled and consecutive stubs are paired. A pairing with a self-loop or a
// repeated pair is rejected and reshuffled, up to maxStubMatchingAttempts.
//
// Contract:
//   - n >= 1, 0 <= d < n, n*d even (else ErrTooFewVertices).
//   - cfg.rng is required (else ErrNeedRandSource).
//   - The graph is only touched once a valid pairing is found; otherwise
//     ErrConstructFailed and no edges are added.
//
// Complexity: ~O(n*d) per attempt; attempts are constant-bounded.

package builder

import (
	"fmt"

	"github.com/katalvlaran/livegraph/core"
)

// RandomRegular returns a Constructor for a random d-regular simple graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomRegular, n, MinRandomVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) > 0 && !shufflePairing(cfg, stubs) {
			return fmt.Errorf("%s: failed to construct after %d attempts: %w",
				MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
		}

		ids := seqIDs(cfg, n)
		if err := addVertices(g, MethodRandomRegular, ids); err != nil {
			return err
		}
		for i := 0; i < len(stubs); i += 2 {
			if err := connect(g, MethodRandomRegular, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
				return err
			}
		}

		return nil
	}
}

// shufflePairing reshuffles stubs until consecutive pairs form a simple graph,
// at most maxStubMatchingAttempts times. stubs holds the pairing on success.
func shufflePairing(cfg builderConfig, stubs []int) bool {
	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
		if simplePairing(stubs) {
			return true
		}
	}

	return false
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
