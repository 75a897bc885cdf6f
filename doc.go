// Package livegraph keeps the connected components of a mutating undirected
// graph current as vertices and edges come and go.
//
// What is livegraph?
//
//	An in-memory graph store with synchronous change notifications and a
//	component monitor that subscribes to them:
//		• Core store: vertices, parallel edges and self-loops under one RWMutex
//		• Traversals: BFS (reachability, shortest paths) and DFS
//		• Components: incremental merge on edge add, split on edge removal,
//		  moving the smaller side so every vertex moves O(log V) times on growth
//		• Metrics: Prometheus counters and gauges fed by monitor events
//
// Packages:
//
//	core/        Graph, Vertex, Edge, observers, DOT export
//	bfs/         breadth-first search, Reachable, ShortestPath
//	dfs/         depth-first search and static component labeling
//	components/  Monitor, Component, Behavior, Listener
//	metrics/     Prometheus collector for monitor events
//	builder/     deterministic topology constructors (path, grid, G(n,p), …)
//	cmd/ccmon/   CLI: replay YAML scenarios, generate topologies
//
// Quick ASCII example:
//
//	    A───B        remove A─B and A─C:     A    B
//	    │   │        the monitor splits           │
//	    C───D        {A,B,C,D} into {A}, {B,C,D}  C───D
//
//	go get github.com/katalvlaran/livegraph
package livegraph
