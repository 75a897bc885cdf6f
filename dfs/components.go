package dfs

import (
	"sort"

	"github.com/katalvlaran/livegraph/core"
)

// Components labels g from scratch with a full DFS forest and returns one
// sorted member list per connected component, ordered by smallest member.
// An empty graph yields an empty, non-nil slice.
func Components(g *core.Graph) ([][]string, error) {
	res, err := DFS(g, "", WithFullTraversal())
	if err != nil {
		return nil, err
	}

	byRoot := make(map[string][]string)
	roots := make([]string, 0)
	// Order is post-order; walk vertices sorted instead so members come out sorted
	ids := make([]string, 0, len(res.Root))
	for id := range res.Root {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		r := res.Root[id]
		if _, seen := byRoot[r]; !seen {
			roots = append(roots, r)
		}
		byRoot[r] = append(byRoot[r], id)
	}

	// roots are discovered in ascending ID order and each root is its tree's
	// smallest member, so roots is already the output order
	out := make([][]string, len(roots))
	for i, r := range roots {
		out[i] = byRoot[r]
	}

	return out, nil
}
