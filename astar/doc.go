// Package astar provides goal-directed search over any core.IncidenceGraph:
// A* with a caller-supplied heuristic, and uniform-cost search as the
// null-heuristic special case.
//
// What
//
//   - AStar(g, source, goal, weight, heuristic, opts...) expands vertices
//     in order of g-score + heuristic estimate and returns the cheapest
//     source→goal path, its edge sequence, its cost, and the number of
//     vertices expanded.
//   - UniformCost(g, source, goal, weight, opts...) is AStar with
//     NullHeuristic: expansion purely by accumulated cost.
//   - Geometric helpers: Point coordinate vectors with Euclidean and
//     Manhattan distances, plus heuristic constructors over a per-vertex
//     position lookup.
//
// Heuristic contract
//
//	The engine is heuristic-agnostic. Optimality of the returned path
//	requires an admissible heuristic — one that never overestimates the
//	true remaining cost. That contract is the caller's responsibility and
//	is not validated.
//
// Preconditions and tie-breaking
//
//	Edge costs must be non-negative (documented, not checked). Frontier
//	entries with equal priority settle in whatever order the heap yields;
//	no stability is guaranteed.
//
// Errors
//
//   - ErrGraphNil, ErrNilWeight, ErrSourceNotFound, ErrGoalNotFound,
//     ErrOptionViolation for invalid input.
//   - ErrNoPath when the frontier drains (or exceeds MaxCost) before the
//     goal is reached.
package astar
