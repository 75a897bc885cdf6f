// SPDX-License-Identifier: MIT

package components

import "errors"

var (
	// ErrGraphNil is returned when Setup receives a nil graph.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrAlreadySetup is returned by a second Setup call. The monitor state is untouched.
	ErrAlreadySetup = errors.New("components: monitor already set up")

	// ErrNotSetup is returned by operations that need a graph before Setup ran.
	ErrNotSetup = errors.New("components: monitor not set up")

	// ErrPartitionViolation is returned by Verify when the index disagrees with the graph.
	ErrPartitionViolation = errors.New("components: partition violation")
)

// ErrComponentNotLive is returned for a component that was destroyed or belongs to another monitor.
var ErrComponentNotLive = errors.New("components: component is not live")
