package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/livegraph/core"
	"github.com/katalvlaran/livegraph/dfs"
)

// link adds u and v when missing and connects them.
func link(t testing.TB, g *core.Graph, u, v string) {
	t.Helper()
	for _, id := range []string{u, v} {
		if err := g.AddVertex(id); err != nil && !errors.Is(err, core.ErrVertexExists) {
			t.Fatal(err)
		}
	}
	if _, err := g.Connect(u, v); err != nil {
		t.Fatal(err)
	}
}

// buildChain creates a chain graph of length n: N0-N1-…-N(n-1).
func buildChain(t testing.TB, n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		link(t, g, "N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1))
	}

	return g
}

// buildBinaryTree creates a complete binary tree of depth d (nodes = 2^d-1).
// IDs: "T-1","T-2",…,"T-N".
func buildBinaryTree(t testing.TB, depth int) *core.Graph {
	g := core.NewGraph()
	maxD := (1 << depth) - 1
	for i := 2; i <= maxD; i++ {
		link(t, g, fmt.Sprintf("T-%d", i/2), fmt.Sprintf("T-%d", i))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(core.NewGraph(), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X"))

	res, err := dfs.DFS(g, "X")
	assert.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.True(t, res.Visited["X"])
	assert.Equal(t, 0, res.Depth["X"])
	assert.Equal(t, "X", res.Root["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_SelfLoopAndParallel(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "A")
	link(t, g, "A", "B")
	link(t, g, "B", "A")

	res, err := dfs.DFS(g, "A")
	assert.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B")
	link(t, g, "B", "C")

	res, err := dfs.DFS(g, "A")
	assert.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
	assert.Equal(t, "B", res.Parent["C"])
	assert.Equal(t, 2, res.Depth["C"])

	// undirected: starting in the middle reaches both ends
	res, err = dfs.DFS(g, "B")
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, res.Order)
}

func TestDFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B")
	require.NoError(t, g.AddVertex("C"))

	res, err := dfs.DFS(g, "A")
	assert.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"], "disconnected vertex should not be visited")
}

func TestDFS_FullTraversal(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "B", "D")
	link(t, g, "A", "C")
	require.NoError(t, g.AddVertex("E"))

	res, err := dfs.DFS(g, "ignored", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "D", "B", "E"}, res.Order)
	assert.Equal(t, map[string]string{"A": "A", "C": "A", "B": "B", "D": "B", "E": "E"}, res.Root)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B")
	link(t, g, "B", "C")

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(0))
	assert.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.False(t, res.Visited["B"])
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B")
	link(t, g, "A", "C")

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(id string) bool {
		return id != "C"
	}))
	assert.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"], "filtered neighbor should not be visited")
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_OnExitError(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B")

	res, err := dfs.DFS(g, "A", dfs.WithOnExit(func(id string) error {
		if id == "B" {
			return errors.New("halt at B on exit")
		}

		return nil
	}))
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnExit hook for \"B\"")
	assert.Empty(t, res.Order, "no post-order on hook error")
}

func TestDFS_CancellationImmediate(t *testing.T) {
	g := buildChain(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(g, "N0", dfs.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order, "no nodes should finish when canceled immediately")
}

func TestDFS_LargeChain_PostOrderDepthParent(t *testing.T) {
	const n = 10
	g := buildChain(t, n)
	res, err := dfs.DFS(g, "N0")
	assert.NoError(t, err)

	expected := make([]string, n)
	for i := n - 1; i >= 0; i-- {
		expected[n-1-i] = "N" + strconv.Itoa(i)
	}
	assert.Equal(t, expected, res.Order, "Chain post-order reversed")
	assert.Equal(t, n-1, res.Depth["N"+strconv.Itoa(n-1)])
	assert.Equal(t, "N"+strconv.Itoa(n-2), res.Parent["N"+strconv.Itoa(n-1)])
}

func TestDFS_BinaryTree_TraversalAndVisited(t *testing.T) {
	const depth = 4 // 15 nodes
	g := buildBinaryTree(t, depth)
	res, err := dfs.DFS(g, "T-1")
	assert.NoError(t, err)

	assert.Len(t, res.Visited, (1<<depth)-1)
	assert.Len(t, res.Order, (1<<depth)-1)
	assert.Equal(t, "T-1", res.Order[len(res.Order)-1], "root must finish last")
}

func TestDFS_OnVisitOnExitHooks(t *testing.T) {
	g := buildBinaryTree(t, 3) // 7 nodes
	var pre, post []string

	res, err := dfs.DFS(g, "T-1",
		dfs.WithOnVisit(func(id string) error {
			pre = append(pre, id)
			if id == "T-4" {
				return errors.New("stop at T-4")
			}

			return nil
		}),
		dfs.WithOnExit(func(id string) error {
			post = append(post, id)

			return nil
		}),
	)
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnVisit hook for \"T-4\"")
	assert.Equal(t, []string{"T-1", "T-2", "T-4"}, pre)
	assert.Empty(t, post)
	assert.Empty(t, res.Order)
}

func TestComponents(t *testing.T) {
	_, err := dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	parts, err := dfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.NotNil(t, parts)
	assert.Empty(t, parts)

	g := buildChain(t, 3)
	link(t, g, "M2", "A9")
	link(t, g, "Z", "Z")
	require.NoError(t, g.AddVertex("B"))

	parts, err = dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A9", "M2"}, {"B"}, {"N0", "N1", "N2"}, {"Z"}}, parts)
}
