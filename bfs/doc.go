// Package bfs provides breadth-first traversal over any core.IncidenceGraph.
//
// What
//
//   - Explores vertices in non-decreasing hop distance from a start vertex,
//     ties broken by the edge store's outgoing-edge iteration order — the
//     visit sequence is fully reproducible for a fixed graph.
//   - Two fronts over one engine:
//   - Walker (NewWalker + Next): lazy, pull-based; one dequeued vertex
//     per call, one visit.Visit out. Stop pulling to cancel.
//   - BFS(g, start, opts...): eager; returns Result with Order, Depth,
//     Parent, and ParentEdge maps plus PathTo reconstruction.
//   - Observation via visit.Visitor: DiscoverVertex, ExamineEdge, TreeEdge,
//     FinishVertex, and the ShouldTraverse pruning predicate. Visitors
//     stack with WithVisitor (combined via visit.Combine).
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) total across all Next calls
//   - Memory: O(V) for frontier and seen set; +O(V·depth) with path tracking
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithVisitor(visit.Visitor{
//	        DiscoverVertex: func(v core.VertexHandle, depth int) { /* ... */ },
//	    }),
//	)
//
//	// or lazily:
//	w, _ := bfs.NewWalker(g, start, bfs.WithPathTracking())
//	for v, ok := w.Next(); ok; v, ok = w.Next() {
//	    // v.Vertex, v.Edge, v.Depth, v.Path
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start handle is not live.
//   - ErrOptionViolation      for invalid options (e.g. negative MaxDepth).
package bfs
