package components_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/livegraph/components"
	"github.com/katalvlaran/livegraph/core"
)

// seqIDs yields c1, c2, ... so tests can name components.
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("c%d", n)
	}
}

// newMonitored returns an empty graph watched by a monitor with sequential IDs.
func newMonitored(t *testing.T, opts ...components.Option) (*core.Graph, *components.Monitor) {
	t.Helper()
	g := core.NewGraph()
	m := components.New(append([]components.Option{components.WithIDGenerator(seqIDs())}, opts...)...)
	require.NoError(t, m.Setup(g))

	return g, m
}

func addVertices(t *testing.T, g *core.Graph, ids ...string) {
	t.Helper()
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil && !errors.Is(err, core.ErrVertexExists) {
			require.NoError(t, err)
		}
	}
}

// addEdge inserts an edge with a readable ID such as "ab".
func addEdge(t *testing.T, g *core.Graph, id, from, to string) {
	t.Helper()
	require.NoError(t, g.AddEdge(core.Edge{ID: id, From: from, To: to}))
}

func componentID(t *testing.T, m *components.Monitor, v string) string {
	t.Helper()
	c, ok := m.ComponentOf(v)
	require.True(t, ok, "vertex %s not tracked", v)

	return c.ID()
}

// eventLog records listener and behavior events as compact strings.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.mu.Lock()
	l.events = append(l.events, fmt.Sprintf(format, args...))
	l.mu.Unlock()
}

func (l *eventLog) take() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.events
	l.events = nil

	return out
}

func (l *eventLog) String() string { return strings.Join(l.events, " ") }

func (l *eventLog) listener() *components.ListenerFuncs {
	return &components.ListenerFuncs{
		OnCreated:   func(c *components.Component) { l.add("created %s", c.ID()) },
		OnDestroyed: func(c *components.Component) { l.add("destroyed %s", c.ID()) },
		OnJoined:    func(c *components.Component, id string) { l.add("joined %s %s", c.ID(), id) },
		OnLeft:      func(c *components.Component, id string) { l.add("left %s %s", c.ID(), id) },
		OnMerged: func(s, d *components.Component, moved int) {
			l.add("merged %s<-%s %d", s.ID(), d.ID(), moved)
		},
		OnSplit: func(o, c *components.Component) { l.add("split %s->%s", o.ID(), c.ID()) },
	}
}

// behaviorLog is a Behavior that writes into a shared eventLog.
type behaviorLog struct {
	components.NopBehavior
	c   *components.Component
	log *eventLog
}

func (b *behaviorLog) OnCreated()              { b.log.add("%s:created", b.c.ID()) }
func (b *behaviorLog) OnDestroyed()            { b.log.add("%s:destroyed", b.c.ID()) }
func (b *behaviorLog) OnVertexAdded(id string) { b.log.add("%s:+%s", b.c.ID(), id) }
