// SPDX-License-Identifier: MIT
// File: monitor.go
// Role: Incremental connected-components maintenance driven by graph signals.
//
// Locking:
//   - mu guards index, live and every Component's members.
//   - Graph queries (BFS, Degree) run with mu held; the graph never calls back
//     while holding its own lock, so there is no lock-order cycle.
//   - Behaviors and Listeners run after mu is released.

package components

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/livegraph/bfs"
	"github.com/katalvlaran/livegraph/core"
)

// Monitor maintains the connected components of one graph.
type Monitor struct {
	mu        sync.RWMutex
	log       *zap.Logger
	factory   Factory
	newID     func() string
	listeners []Listener

	graph    *core.Graph
	observer *core.ObserverFuncs
	index    map[string]*Component   // vertex ID -> owning component
	live     map[*Component]struct{} // components not yet destroyed
}

// New returns a Monitor that is not attached to any graph yet; call Setup.
func New(opts ...Option) *Monitor {
	m := &Monitor{
		log:     zap.NewNop(),
		factory: nopFactory,
		newID:   defaultIDGenerator,
		index:   make(map[string]*Component),
		live:    make(map[*Component]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Setup computes the initial partition of g and subscribes to its signals.
//
// Implementation:
//   - Stage 1: take the smallest vertex ID not yet assigned, run bfs.Reachable
//     from it and put the whole reachable set into one new component.
//   - Stage 2: repeat until every vertex is assigned.
//   - Stage 3: subscribe, so every later mutation keeps the partition current.
//
// Returns:
//   - ErrAlreadySetup on any call after the first (logged at warn, no state change).
//   - ErrGraphNil for a nil graph.
//
// Complexity:
//   - Time O(V log V + E), Space O(V).
func (m *Monitor) Setup(g *core.Graph) error {
	var b batch
	m.mu.Lock()
	if m.graph != nil {
		m.mu.Unlock()
		m.log.Warn("Setup called on a monitor that is already set up")

		return ErrAlreadySetup
	}
	if g == nil {
		m.mu.Unlock()

		return ErrGraphNil
	}

	ids := g.Vertices()
	for _, id := range ids {
		if _, assigned := m.index[id]; assigned {
			continue
		}
		c := m.spawn(&b)
		for _, v := range bfs.Reachable(g, id) {
			m.join(c, v, &b)
		}
	}
	m.graph = g
	m.observer = &core.ObserverFuncs{
		OnVertexAdded:   m.vertexAdded,
		OnVertexRemoved: m.vertexRemoved,
		OnEdgeAdded:     m.edgeAdded,
		OnEdgeRemoved:   m.edgeRemoved,
	}
	g.Subscribe(m.observer)
	count := len(m.live)
	listeners := m.snapshotListeners()
	m.mu.Unlock()

	m.log.Debug("Monitor set up",
		zap.Int("vertices", len(ids)),
		zap.Int("components", count),
	)
	b.deliver(listeners)

	return nil
}

// AddListener registers l. Listeners are notified in registration order.
func (m *Monitor) AddListener(l Listener) {
	if l == nil {
		return
	}
	m.mu.Lock()
	m.listeners = append(m.listeners, l)
	m.mu.Unlock()
}

func (m *Monitor) snapshotListeners() []Listener {
	return m.listeners[:len(m.listeners):len(m.listeners)]
}

// apply runs fn under the write lock and delivers the events it queued.
func (m *Monitor) apply(fn func(b *batch)) {
	var b batch
	listeners := func() []Listener {
		m.mu.Lock()
		defer m.mu.Unlock()
		fn(&b)

		return m.snapshotListeners()
	}()
	b.deliver(listeners)
}

func (m *Monitor) vertexAdded(v *core.Vertex) {
	m.apply(func(b *batch) {
		if _, ok := m.index[v.ID]; ok {
			panic(fmt.Sprintf("components: VertexAdded(%s): vertex already indexed", v.ID))
		}
		deg, err := m.graph.Degree(v.ID)
		if err != nil {
			panic(fmt.Sprintf("components: VertexAdded(%s): %v", v.ID, err))
		}
		if deg != 0 {
			panic(fmt.Sprintf("components: VertexAdded(%s): new vertex already has edges", v.ID))
		}
		m.join(m.spawn(b), v.ID, b)
	})
}

func (m *Monitor) vertexRemoved(v *core.Vertex) {
	m.apply(func(b *batch) {
		if m.graph.HasVertex(v.ID) {
			panic(fmt.Sprintf("components: VertexRemoved(%s): vertex still in graph", v.ID))
		}
		c := m.lookup("VertexRemoved", v.ID)
		m.leave(c, v.ID, b)
		delete(m.index, v.ID)
		if len(c.members) == 0 {
			m.destroy(c, b)
		}
	})
}

// edgeAdded merges the endpoint components, dissolving the smaller into the larger.
func (m *Monitor) edgeAdded(e *core.Edge) {
	m.apply(func(b *batch) {
		src := m.lookup("EdgeAdded", e.From)
		dst := m.lookup("EdgeAdded", e.To)
		if src == dst {
			return
		}

		survivor, dissolved := dst, src
		if len(src.members) > len(dst.members) {
			survivor, dissolved = src, dst
		}
		moved := m.move(dissolved, survivor, dissolved.sortedMembers(), b)
		b.add(event{kind: evMerged, c: survivor, other: dissolved, n: moved})
		m.destroy(dissolved, b)

		m.log.Debug("Components merged",
			zap.String("edgeID", e.ID),
			zap.String("survivorID", survivor.id),
			zap.String("dissolvedID", dissolved.id),
			zap.Int("moved", moved),
			zap.Int("size", len(survivor.members)),
		)
	})
}

// edgeRemoved splits the component of e when e was its only link between the two sides.
func (m *Monitor) edgeRemoved(e *core.Edge) {
	m.apply(func(b *batch) {
		orig := m.lookup("EdgeRemoved", e.From)
		if other := m.lookup("EdgeRemoved", e.To); other != orig {
			panic(fmt.Sprintf("components: EdgeRemoved(%s): endpoints %q and %q in different components",
				e.ID, e.From, e.To))
		}
		if e.IsLoop() {
			return
		}

		reach := bfs.ReachableSet(m.graph, e.From)
		if _, still := reach[e.To]; still {
			return
		}
		for id := range reach {
			if m.index[id] != orig {
				panic(fmt.Sprintf("components: EdgeRemoved(%s): %q reaches %q outside its component",
					e.ID, e.From, id))
			}
		}

		// move the smaller side; on a tie the reachable side moves
		var side []string
		if len(reach) <= len(orig.members)-len(reach) {
			side = make([]string, 0, len(reach))
			for id := range reach {
				side = append(side, id)
			}
		} else {
			side = make([]string, 0, len(orig.members)-len(reach))
			for id := range orig.members {
				if _, ok := reach[id]; !ok {
					side = append(side, id)
				}
			}
		}
		sort.Strings(side)

		created := m.spawn(b)
		m.move(orig, created, side, b)
		b.add(event{kind: evSplit, c: orig, other: created})

		m.log.Debug("Component split",
			zap.String("edgeID", e.ID),
			zap.String("originalID", orig.id),
			zap.String("createdID", created.id),
			zap.Int("moved", len(side)),
			zap.Int("kept", len(orig.members)),
		)
	})
}

// lookup requires mu held. A missing vertex means the signal stream is out of sync.
func (m *Monitor) lookup(op, id string) *Component {
	c, ok := m.index[id]
	if !ok {
		panic(fmt.Sprintf("components: %s: vertex %q not indexed", op, id))
	}

	return c
}

func (m *Monitor) spawn(b *batch) *Component {
	c := &Component{id: m.newID(), mon: m, members: make(map[string]struct{})}
	c.behavior = m.factory(c)
	if c.behavior == nil {
		c.behavior = NopBehavior{}
	}
	m.live[c] = struct{}{}
	b.add(event{kind: evCreated, c: c})

	return c
}

func (m *Monitor) destroy(c *Component, b *batch) {
	if len(c.members) != 0 {
		panic(fmt.Sprintf("components: destroy %s: %d vertices left", c.id, len(c.members)))
	}
	delete(m.live, c)
	b.add(event{kind: evDestroyed, c: c})
}

func (m *Monitor) join(c *Component, id string, b *batch) {
	if _, dup := c.members[id]; dup {
		panic(fmt.Sprintf("components: vertex %q already in component %s", id, c.id))
	}
	c.members[id] = struct{}{}
	m.index[id] = c
	b.add(event{kind: evJoined, c: c, id: id})
}

func (m *Monitor) leave(c *Component, id string, b *batch) {
	if _, ok := c.members[id]; !ok {
		panic(fmt.Sprintf("components: vertex %q not in component %s", id, c.id))
	}
	delete(c.members, id)
	b.add(event{kind: evLeft, c: c, id: id})
}

// move relocates ids from one component to another and returns how many moved.
func (m *Monitor) move(from, to *Component, ids []string, b *batch) int {
	for _, id := range ids {
		m.leave(from, id, b)
		m.join(to, id, b)
	}

	return len(ids)
}
