// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn       = DefaultIDFn ("0","1","2",...)
//   - prefix     = ""          (prepended to every generated ID)
//   - rng        = nil         (pure/deterministic unless seeded)
//   - left/right = "L" / "R"

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn   IDFn
	prefix string
	// nil means "no randomness".
	rng *rand.Rand

	// Bipartite ID prefixes. Empty -> defaults resolved below.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies options in order (last wins) over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// vid returns the vertex ID for index i: prefix + idFn(i).
func (c builderConfig) vid(i int) string {
	return c.prefix + c.idFn(i)
}

// fixed prefixes a constructor-defined ID such as "Center" or "r,c".
func (c builderConfig) fixed(id string) string {
	return c.prefix + id
}
