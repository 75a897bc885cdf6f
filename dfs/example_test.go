package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/livegraph/core"
	"github.com/katalvlaran/livegraph/dfs"
)

// ExampleDFS demonstrates a depth-first traversal (post-order) on a diamond-shaped graph.
// Graph structure:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// Neighbors are explored in ID order, so from A the walk goes A B D C,
// backs out of C, then E and F.
func ExampleDFS() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		_ = g.AddVertex(id)
	}
	for _, edge := range []struct{ U, V string }{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "E"}, {"D", "F"},
	} {
		_, _ = g.Connect(edge.U, edge.V)
	}

	res, err := dfs.DFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Order, " "))

	// Output:
	// C E F D B A
}

// ExampleComponents labels a graph with two islands and an isolated vertex.
func ExampleComponents() {
	g := core.NewGraph()
	for _, id := range []string{"x", "y", "p", "q", "r", "solo"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.Connect("x", "y")
	_, _ = g.Connect("p", "q")
	_, _ = g.Connect("q", "r")

	parts, _ := dfs.Components(g)
	for _, members := range parts {
		fmt.Println(members)
	}

	// Output:
	// [p q r]
	// [solo]
	// [x y]
}
