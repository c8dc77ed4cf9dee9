// Package dfs implements depth-first traversal over any core.IncidenceGraph.
//
// What
//
//   - Preorder discovery with an explicit frame stack — no recursion, so
//     deep graphs cannot overflow the goroutine stack.
//   - Edge classification through visitor callbacks:
//   - TreeEdge            — edge discovering a new vertex
//   - BackEdge            — edge to a vertex still on the stack (cycle signal)
//   - ForwardOrCrossEdge  — edge to an already finished vertex
//   - FinishVertex fires in postorder, after a vertex's descendants are done.
//   - ShouldTraverse prunes a branch before descent without marking anything
//     visited — the hook depth-bounded variants (iddfs) are built on.
//   - Two fronts: lazy Walker (NewWalker + Next, one preorder discovery per
//     call) and eager DFS() collecting PreOrder, PostOrder, Depth, Parent,
//     and BackEdges.
//
// Determinism
//
//	Descent follows the edge store's outgoing-edge iteration order, so both
//	orders are reproducible for a fixed graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) total across all Next calls
//   - Memory: O(V) for stack and colors
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start handle is not live.
//   - ErrOptionViolation      for invalid options (e.g. negative MaxDepth).
package dfs
