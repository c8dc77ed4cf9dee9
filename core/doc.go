// Package core provides the vertiq storage engine: opaque vertex/edge
// handles, a monotonic VertexSet, three interchangeable edge stores, an
// incidence cache decorator, and the Graph facade tying them together with
// typed property tables.
//
// Handles
//
//	VertexHandle and EdgeHandle are small comparable identities, valid only
//	against the store that issued them. Queries on dead or foreign handles
//	return empty results, zero values, or false — never a panic, so callers
//	may race handle validity against removal as long as they serialize their
//	own mutations.
//
// Edge store strategies
//
//	OrderedEdges — insertion-ordered catalog, O(E) linear-scan incidence.
//	  The simplest strategy and the reference all others are tested against.
//	COOEdges     — coordinate-list: parallel from/to arrays with tombstoned
//	  removal; AddEdge reuses freed slots before growing.
//	CSREdges     — compressed-sparse-row: per-vertex row offsets over a flat
//	  edge array for contiguous outgoing iteration, plus O(1) incoming
//	  buckets. Mutations shift offsets (O(V+E) worst case); pick CSR for
//	  read-heavy, mutation-light workloads.
//	CacheInOutEdges — decorator memoizing per-vertex out/in lists over any
//	  store, hydrated eagerly at construction.
//
// Graph facade
//
//	g := core.New(core.WithEdgeStore(core.NewCSREdges()), core.WithInOutCache())
//	a := g.AddVertex()
//	b := g.AddVertex()
//	e, err := g.AddEdge(a, b)   // ErrVertexNotFound on foreign handles
//	_ = g.RemoveVertex(a)       // removes incident edges first, then a
//
//	RemoveVertex is the one composite operation: it clears both incidence
//	directions before retiring the vertex, so the edge-store invariants hold
//	at every observable point.
//
// Failure policy
//
//	Structural store operations never return errors; they degrade to no-ops
//	or empty results. The facade's mutating calls return the core sentinels
//	ErrVertexNotFound / ErrEdgeNotFound (check with errors.Is) for handles
//	it does not own.
//
// Concurrency
//
//	No internal locks. One Graph value is single-writer, and traversing
//	while mutating the same instance is unsupported. Clone() is the sharing
//	mechanism: it produces a fully independent copy in O(V+E).
package core
