// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - BuildGraph(gopts, bopts, cons...) creates g, resolves cfg, runs cons in order.
//   - Apply(g, bopts, cons...) does the same against an existing graph, so a
//     monitored graph sees every vertex and edge signal of the construction.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order => identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/livegraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices before the edges that reference them.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: sum of each constructor's cost.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph. Vertices that already
// exist are reused, so constructors can be layered over one another.
// On error the graph keeps whatever was added before the failure.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)               C_n, n >= 3.
// Path(n)                P_n, n >= 2.
// Star(n)                center "Center" plus n-1 leaves, n >= 2.
// Wheel(n)               C_{n-1} plus center "Center", n >= 4.
// Complete(n)            K_n, n >= 1.
// CompleteBipartite(a,b) K_{a,b} using the partition prefixes.
// Grid(rows, cols)       4-neighborhood grid with IDs "r,c".
// RandomSparse(n, p)     Erdos-Renyi G(n,p); needs an RNG for 0 < p < 1.
// RandomRegular(n, d)    d-regular simple graph via stub matching; needs an RNG.
