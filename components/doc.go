// Package components tracks the connected components of a core.Graph
// incrementally, as vertices and edges come and go.
//
// A Monitor subscribes to the graph's structural-change signals and keeps a
// partition of all vertices into disjoint Components together with a reverse
// index vertex -> component. Connectivity is never recomputed from scratch:
//
//   - VertexAdded: a fresh singleton component.
//   - VertexRemoved: the vertex leaves its component; an emptied component is destroyed.
//   - EdgeAdded: if the endpoints live in different components, the smaller one
//     is dissolved into the larger (weighted union). Ties dissolve the source side.
//   - EdgeRemoved: a BFS from the source on the post-removal graph decides whether
//     the target is still reachable. If not, the smaller side moves into a new
//     component and the larger side keeps the original identity. Ties move the
//     reachable side.
//
// Partition invariant: every live vertex belongs to exactly one component,
// two vertices share a component iff a path of live edges joins them, and no
// component is empty. Verify re-derives connectivity from the graph and
// reports the first breach.
//
// Contract violations (a signal that contradicts the index, a second
// registration of a vertex) panic with a "components:" prefix. Expected
// misuse (nil graph, Setup twice) returns an error.
//
// Component lifecycle is observable two ways: a per-component Behavior built
// by a Factory, and any number of Listeners. Both are called synchronously,
// after the partition has been updated, in the order the changes happened.
package components
