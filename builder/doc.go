// Package builder assembles graph topologies into a core.Graph with
// functional options: deterministic fixtures for tests, benchmarks and the
// ccmon generate command.
//
// Key components:
//
//   - Constructor: func(g, cfg) error, one per topology (Path, Cycle, Star,
//     Wheel, Complete, CompleteBipartite, Grid, RandomSparse, RandomRegular).
//   - BuildGraph: new graph + constructors. Apply: constructors over an
//     existing, possibly monitored graph.
//   - BuilderOption: WithIDScheme, WithPrefix, WithSeed, WithRand, WithPartitionPrefix.
//   - ID schemes (IDFn): DefaultIDFn, SymbolIDFn, AlphanumericIDFn, ExcelColumnIDFn.
//
// Guarantees:
//
//   - Vertices are added before the edges that use them, so every emitted
//     signal is valid for a components.Monitor.
//   - Existing vertices are reused; edges always get fresh generated IDs, so
//     running a constructor twice doubles its edges.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid build parameters return sentinel errors wrapped with the method name.
//   - Same options, seed and constructor order give the same graph.
package builder
