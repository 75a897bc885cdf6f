// Package dfs implements depth-first search on a core.Graph and a static
// connected-component labeling built on it.
//
// What:
//
//   - DFS(g, startID, opts...): recursive depth-first traversal from a root,
//     or over the whole forest with WithFullTraversal. Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Components(g): labels every vertex with the root of its DFS tree and
//     returns the resulting partition, sorted the same way a live
//     components.Monitor sorts its own. It is the from-scratch answer an
//     incremental partition is checked against.
//
// Neighbors are visited in ascending ID order, so results are deterministic.
// A self-loop never yields a second visit; parallel edges are one neighbor.
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V) (recursion depth up to V)
//   - Components: Time O(V log V + E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
