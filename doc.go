// Package vertiq is an in-memory graph toolkit built around pluggable
// storage, typed property maps, and a visitor-instrumented traversal core.
//
// What vertiq gives you:
//
//   - Storage strategies: ordered adjacency catalog, coordinate-list (COO)
//     with tombstoned removal, and compressed-sparse-row (CSR) with O(1)
//     backward lookup — all behind one EdgeStore contract
//   - An incidence cache decorator for O(1) outgoing/incoming queries over
//     any store
//   - Typed, default-valued property maps keyed by handle identity
//   - Lazy, pull-based traversal walkers: BFS, DFS (explicit stack, no
//     recursion limits)
//   - Cost-aware search: Dijkstra, A*, uniform-cost, iterative-deepening DFS
//   - Composable visitors — stack logging, metrics, and algorithm
//     bookkeeping without the engines knowing about more than one observer
//
// Everything is organized under small, focused subpackages:
//
//	core/     — handles, vertex set, edge stores, incidence cache, Graph facade
//	props/    — per-vertex / per-edge typed property tables
//	visit/    — Visit records, Visitor callbacks, Combine
//	bfs/      — breadth-first walker and eager front
//	dfs/      — depth-first walker with edge classification
//	dijkstra/ — shortest paths by non-negative edge cost
//	astar/    — heuristic-guided and uniform-cost goal search
//	iddfs/    — iterative-deepening depth-first search
//
// Graphs are plain values: Clone() yields an independent copy, so handing a
// graph to a read-only traversal is cheap and immune to later mutation of
// the original. A single instance must not be mutated concurrently; give
// each goroutine its own clone instead.
//
//	go get github.com/vertiq/vertiq
package vertiq
