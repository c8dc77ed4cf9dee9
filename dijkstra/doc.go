// Package dijkstra computes single-source shortest paths by non-negative
// edge cost over any core.IncidenceGraph.
//
// What
//
//   - Lazy Walker (NewWalker + Next): settles one vertex per call, yielding
//     vertices in non-decreasing final distance. Stop pulling to cancel.
//   - Eager Dijkstra(): collects Order, Dist, Parent, ParentEdge and offers
//     PathTo reconstruction.
//   - Edge costs come from a caller-supplied WeightFunc over edge handles —
//     typically backed by a props edge property.
//   - WithGoal ends the search the moment the goal settles; WithMaxDistance
//     bounds the explored radius.
//
// Preconditions
//
//	Edge costs must be non-negative. This is documented, not checked: the
//	relax loop stays allocation- and branch-minimal, and negative costs
//	silently yield wrong results. Reach for Bellman-Ford elsewhere when
//	negative weights are possible.
//
// Tie-breaking
//
//	When two frontier entries carry equal distance, their settle order is
//	whatever the heap yields first — no stability is guaranteed, and tests
//	must not assert a specific tie order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:  O((V + E) log V) with lazy decrease-key (duplicates pushed,
//     stale entries skipped on pop)
//   - Space: O(V + E) for distances and the heap worst case
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrNilWeight        if no weight function is supplied.
//   - ErrSourceNotFound   if the source handle is not live.
//   - ErrOptionViolation  for invalid options (e.g. negative MaxDistance).
//   - ErrNoPath           from PathTo for unreached destinations.
package dijkstra
