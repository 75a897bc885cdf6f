// SPDX-License-Identifier: MIT

package components

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a Monitor.
type Option func(*Monitor)

// WithLogger sets the structured logger. A nil logger is ignored (default: zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	return func(m *Monitor) {
		if l != nil {
			m.log = l
		}
	}
}

// WithFactory sets the Behavior factory used for every new component.
// A nil factory is ignored (default: NopBehavior for every component).
func WithFactory(f Factory) Option {
	return func(m *Monitor) {
		if f != nil {
			m.factory = f
		}
	}
}

// WithIDGenerator overrides component identities (default: uuid.NewString).
// The generator must return distinct values; it panics on nil.
func WithIDGenerator(fn func() string) Option {
	if fn == nil {
		panic("components: WithIDGenerator(nil)")
	}

	return func(m *Monitor) { m.newID = fn }
}

// WithListener registers l before Setup, so it also sees the initial partition.
func WithListener(l Listener) Option {
	return func(m *Monitor) {
		if l != nil {
			m.listeners = append(m.listeners, l)
		}
	}
}

func defaultIDGenerator() string { return uuid.NewString() }
