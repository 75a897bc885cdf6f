package bfs_test

import (
	"errors"

	"github.com/katalvlaran/livegraph/core"
)

// link adds u and v if missing and connects them. Fixture helper only.
func link(g *core.Graph, u, v string) {
	for _, id := range []string{u, v} {
		if err := g.AddVertex(id); err != nil && !errors.Is(err, core.ErrVertexExists) {
			panic(err)
		}
	}
	if _, err := g.Connect(u, v); err != nil {
		panic(err)
	}
}
