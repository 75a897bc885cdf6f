package bfs

import (
	"github.com/katalvlaran/livegraph/core"
)

// Reachable returns every vertex reachable from root, following edges in
// either direction, in BFS discovery order. Each vertex appears once.
// A root without edges yields [root]; a nil graph or an absent root yields nil.
//
// Time: O(V + E) over root's component. Memory: O(V).
func Reachable(g *core.Graph, root string) []string {
	if g == nil || !g.HasVertex(root) {
		return nil
	}
	queue := []string{root}
	discovered := map[string]struct{}{root: {}}

	// the queue doubles as the result: index qi is the frontier cursor
	for qi := 0; qi < len(queue); qi++ {
		nbrs, err := g.NeighborIDs(queue[qi])
		if err != nil {
			// the vertex vanished mid-walk: a mutation raced this query
			panic("bfs: Reachable: " + err.Error())
		}
		for _, nbr := range nbrs {
			if _, seen := discovered[nbr]; !seen {
				discovered[nbr] = struct{}{}
				queue = append(queue, nbr)
			}
		}
	}

	return queue
}

// ReachableSet is Reachable as a set. A nil graph or absent root yields an empty set.
func ReachableSet(g *core.Graph, root string) map[string]struct{} {
	order := Reachable(g, root)
	set := make(map[string]struct{}, len(order))
	for _, id := range order {
		set[id] = struct{}{}
	}

	return set
}

// ShortestPath returns a minimum-edge path from source to target, both
// inclusive. The search records a parent link for every discovered vertex
// and stops the instant target is discovered.
//
// Returns:
//   - [source] when source == target.
//   - ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound for bad input.
//   - ErrNoPath if target is not reachable.
func ShortestPath(g *core.Graph, source, target string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrStartVertexNotFound
	}
	if !g.HasVertex(target) {
		return nil, ErrTargetVertexNotFound
	}
	res, err := BFS(g, source, WithTarget(target))
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, ErrNoPath
	}

	return res.PathTo(target)
}
