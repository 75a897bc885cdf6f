// SPDX-License-Identifier: MIT
// File: observer.go
// Role: Structural-change notifications (vertex/edge added/removed).
//
// Delivery contract:
//   - Synchronous: every signal is delivered before the mutating call returns.
//   - Ordered: observers are called in subscription order.
//   - Lock-free for observers: mu is released before delivery, so observers may
//     query the graph (the component monitor runs BFS from EdgeRemoved).
//   - No replay and no buffering: a late subscriber sees only later mutations.

package core

// Observer receives the four structural-change signals of a Graph.
type Observer interface {
	// VertexAdded is called after v was inserted. v has no incident edges yet.
	VertexAdded(v *Vertex)

	// VertexRemoved is called after v was removed. All of its edges were
	// removed (and signalled) before.
	VertexRemoved(v *Vertex)

	// EdgeAdded is called after e was inserted and registered with both endpoints.
	EdgeAdded(e *Edge)

	// EdgeRemoved is called after e was deregistered and removed.
	EdgeRemoved(e *Edge)
}

// NopObserver implements Observer with no-ops; embed it to handle a subset of signals.
type NopObserver struct{}

func (NopObserver) VertexAdded(*Vertex)   {}
func (NopObserver) VertexRemoved(*Vertex) {}
func (NopObserver) EdgeAdded(*Edge)       {}
func (NopObserver) EdgeRemoved(*Edge)     {}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnVertexAdded   func(v *Vertex)
	OnVertexRemoved func(v *Vertex)
	OnEdgeAdded     func(e *Edge)
	OnEdgeRemoved   func(e *Edge)
}

func (f *ObserverFuncs) VertexAdded(v *Vertex) {
	if f.OnVertexAdded != nil {
		f.OnVertexAdded(v)
	}
}

func (f *ObserverFuncs) VertexRemoved(v *Vertex) {
	if f.OnVertexRemoved != nil {
		f.OnVertexRemoved(v)
	}
}

func (f *ObserverFuncs) EdgeAdded(e *Edge) {
	if f.OnEdgeAdded != nil {
		f.OnEdgeAdded(e)
	}
}

func (f *ObserverFuncs) EdgeRemoved(e *Edge) {
	if f.OnEdgeRemoved != nil {
		f.OnEdgeRemoved(e)
	}
}

// Subscribe appends o to the observer list. A nil observer is ignored.
// Complexity: O(1) amortized.
func (g *Graph) Subscribe(o Observer) {
	if o == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.observers = append(g.observers, o)
}

// Unsubscribe removes the first registration of o and reports whether it was found.
// Complexity: O(number of observers).
func (g *Graph) Unsubscribe(o Observer) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, cur := range g.observers {
		if cur == o {
			// copy into a fresh slice so an in-flight snapshot stays intact
			next := make([]Observer, 0, len(g.observers)-1)
			next = append(next, g.observers[:i]...)
			next = append(next, g.observers[i+1:]...)
			g.observers = next

			return true
		}
	}

	return false
}

// snapshotObservers returns the current observer list. Caller must hold mu.
// The returned slice is never mutated in place (Subscribe appends past its
// length, Unsubscribe reallocates), so it is safe to range over after unlock.
func (g *Graph) snapshotObservers() []Observer {
	return g.observers[:len(g.observers):len(g.observers)]
}

func notifyVertexAdded(obs []Observer, v *Vertex) {
	for _, o := range obs {
		o.VertexAdded(v)
	}
}

func notifyVertexRemoved(obs []Observer, v *Vertex) {
	for _, o := range obs {
		o.VertexRemoved(v)
	}
}

func notifyEdgeAdded(obs []Observer, e *Edge) {
	for _, o := range obs {
		o.EdgeAdded(e)
	}
}

func notifyEdgeRemoved(obs []Observer, e *Edge) {
	for _, o := range obs {
		o.EdgeRemoved(e)
	}
}
