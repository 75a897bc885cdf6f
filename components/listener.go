// SPDX-License-Identifier: MIT
// File: listener.go
// Role: Component lifecycle notifications for parties that do not mutate the graph.
//
// Ordering, for a single graph mutation:
//   - merge: VertexLeft/VertexJoined per moved vertex, ComponentsMerged, ComponentDestroyed.
//   - split: ComponentCreated, VertexLeft/VertexJoined per moved vertex, ComponentSplit.
//
// Events are delivered after the monitor released its lock, so listeners may
// query the monitor; they observe the partition as it is after the mutation.

package components

// Listener receives component lifecycle events.
type Listener interface {
	ComponentCreated(c *Component)
	ComponentDestroyed(c *Component)
	VertexJoined(c *Component, id string)
	VertexLeft(c *Component, id string)
	// ComponentsMerged fires after moved vertices left dissolved for survivor
	// and before dissolved is destroyed.
	ComponentsMerged(survivor, dissolved *Component, moved int)
	// ComponentSplit fires after created received its vertices from original.
	ComponentSplit(original, created *Component)
}

// NopListener implements Listener with no-ops.
type NopListener struct{}

func (NopListener) ComponentCreated(*Component)                  {}
func (NopListener) ComponentDestroyed(*Component)                {}
func (NopListener) VertexJoined(*Component, string)              {}
func (NopListener) VertexLeft(*Component, string)                {}
func (NopListener) ComponentsMerged(*Component, *Component, int) {}
func (NopListener) ComponentSplit(*Component, *Component)        {}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnCreated   func(c *Component)
	OnDestroyed func(c *Component)
	OnJoined    func(c *Component, id string)
	OnLeft      func(c *Component, id string)
	OnMerged    func(survivor, dissolved *Component, moved int)
	OnSplit     func(original, created *Component)
}

func (f *ListenerFuncs) ComponentCreated(c *Component) {
	if f.OnCreated != nil {
		f.OnCreated(c)
	}
}

func (f *ListenerFuncs) ComponentDestroyed(c *Component) {
	if f.OnDestroyed != nil {
		f.OnDestroyed(c)
	}
}

func (f *ListenerFuncs) VertexJoined(c *Component, id string) {
	if f.OnJoined != nil {
		f.OnJoined(c, id)
	}
}

func (f *ListenerFuncs) VertexLeft(c *Component, id string) {
	if f.OnLeft != nil {
		f.OnLeft(c, id)
	}
}

func (f *ListenerFuncs) ComponentsMerged(survivor, dissolved *Component, moved int) {
	if f.OnMerged != nil {
		f.OnMerged(survivor, dissolved, moved)
	}
}

func (f *ListenerFuncs) ComponentSplit(original, created *Component) {
	if f.OnSplit != nil {
		f.OnSplit(original, created)
	}
}

type eventKind uint8

const (
	evCreated eventKind = iota
	evDestroyed
	evJoined
	evLeft
	evMerged
	evSplit
)

// event is one queued notification. other and n are used by merge/split only.
type event struct {
	kind  eventKind
	c     *Component
	other *Component
	id    string
	n     int
}

// batch collects events while the monitor holds its lock.
type batch []event

func (b *batch) add(ev event) { *b = append(*b, ev) }

// deliver runs each event through the component's Behavior, then the listeners.
func (b batch) deliver(listeners []Listener) {
	for _, ev := range b {
		switch ev.kind {
		case evCreated:
			ev.c.behavior.OnCreated()
			for _, l := range listeners {
				l.ComponentCreated(ev.c)
			}
		case evDestroyed:
			ev.c.behavior.OnDestroyed()
			for _, l := range listeners {
				l.ComponentDestroyed(ev.c)
			}
		case evJoined:
			ev.c.behavior.OnVertexAdded(ev.id)
			for _, l := range listeners {
				l.VertexJoined(ev.c, ev.id)
			}
		case evLeft:
			ev.c.behavior.OnVertexRemoved(ev.id)
			for _, l := range listeners {
				l.VertexLeft(ev.c, ev.id)
			}
		case evMerged:
			for _, l := range listeners {
				l.ComponentsMerged(ev.c, ev.other, ev.n)
			}
		case evSplit:
			for _, l := range listeners {
				l.ComponentSplit(ev.c, ev.other)
			}
		}
	}
}
