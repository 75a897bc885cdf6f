// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w: "<Method>: <detail>: %w".
//   - Constructors never panic; validation panics are confined to WithX options.
//
// Priority when several validations fail:
//   ErrTooFewVertices, then ErrInvalidProbability, then ErrNeedRandSource,
//   then ErrOptionViolation; ErrConstructFailed only after retries are exhausted.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempts, or
// the graph rejected a vertex or edge the constructor emitted.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates that the resolved options produce unusable
// vertex IDs for a constructor (empty, or the same ID for two indices).
var ErrOptionViolation = errors.New("builder: invalid option value")
