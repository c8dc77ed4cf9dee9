// Package visit defines the traversal observation surface shared by every
// vertiq walker: the Visit record each step yields, and the Visitor — a
// plain record of optional callbacks fired at defined traversal events.
//
// Visitors compose: Combine(a, b) returns a visitor that invokes a's
// callback then b's for every event, which is how logging, metrics, and
// algorithm bookkeeping stack without the engines knowing about more than
// one observer.
package visit

import "github.com/vertiq/vertiq/core"

// Visit is one lazily produced traversal output unit: the vertex reached,
// and — depending on the walker and its options — the edge used to reach
// it, the current depth, and the path from the source.
//
// Edge is core.NoEdge for the traversal source. Path is nil unless path
// tracking was requested; when present it ends with Vertex.
type Visit struct {
	Vertex core.VertexHandle
	Edge   core.EdgeHandle
	Depth  int
	Path   []core.VertexHandle
}

// Visitor is a record of optional callbacks. Nil fields are skipped; a
// zero Visitor observes nothing and allows everything.
//
// Event semantics follow the walkers:
//
//   - DiscoverVertex fires once per vertex, when it is first reached.
//   - ExamineEdge fires for every outgoing edge considered.
//   - TreeEdge fires when an edge leads to an undiscovered vertex.
//   - BackEdge fires (DFS only) when an edge reaches a vertex still on the
//     stack — the cycle signal.
//   - ForwardOrCrossEdge fires (DFS only) when an edge reaches an already
//     finished vertex.
//   - FinishVertex fires when a vertex's outgoing edges are exhausted.
//   - ShouldTraverse is consulted before descending into an edge; returning
//     false prunes that branch without marking anything visited.
type Visitor struct {
	DiscoverVertex     func(v core.VertexHandle, depth int)
	ExamineEdge        func(e core.EdgeHandle)
	TreeEdge           func(e core.EdgeHandle)
	BackEdge           func(e core.EdgeHandle)
	ForwardOrCrossEdge func(e core.EdgeHandle)
	FinishVertex       func(v core.VertexHandle)
	ShouldTraverse     func(e core.EdgeHandle, depth int) bool
}

// Combine merges two visitors into one that invokes a's callback first and
// b's second for every event. ShouldTraverse combines conjunctively: the
// edge is traversed only when both (present) predicates allow it.
func Combine(a, b Visitor) Visitor {
	return Visitor{
		DiscoverVertex:     chainVertexDepth(a.DiscoverVertex, b.DiscoverVertex),
		ExamineEdge:        chainEdge(a.ExamineEdge, b.ExamineEdge),
		TreeEdge:           chainEdge(a.TreeEdge, b.TreeEdge),
		BackEdge:           chainEdge(a.BackEdge, b.BackEdge),
		ForwardOrCrossEdge: chainEdge(a.ForwardOrCrossEdge, b.ForwardOrCrossEdge),
		FinishVertex:       chainVertex(a.FinishVertex, b.FinishVertex),
		ShouldTraverse:     chainPredicate(a.ShouldTraverse, b.ShouldTraverse),
	}
}

func chainVertexDepth(a, b func(core.VertexHandle, int)) func(core.VertexHandle, int) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(v core.VertexHandle, depth int) {
		a(v, depth)
		b(v, depth)
	}
}

func chainVertex(a, b func(core.VertexHandle)) func(core.VertexHandle) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(v core.VertexHandle) {
		a(v)
		b(v)
	}
}

func chainEdge(a, b func(core.EdgeHandle)) func(core.EdgeHandle) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e core.EdgeHandle) {
		a(e)
		b(e)
	}
}

func chainPredicate(a, b func(core.EdgeHandle, int) bool) func(core.EdgeHandle, int) bool {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e core.EdgeHandle, depth int) bool {
		return a(e, depth) && b(e, depth)
	}
}
