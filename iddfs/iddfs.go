// Package iddfs implements iterative-deepening depth-first search: rounds
// of depth-bounded DFS with a tightening ceiling, yielding each vertex the
// first time any round reaches it.
//
// Memory stays O(depth) per round (plus the cross-round seen set), which
// is the reason to pick IDDFS over BFS when the frontier would not fit.
package iddfs

import (
	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/dfs"
)

// IDDFS runs depth-bounded DFS with limits 0, 1, 2, … up to the optional
// WithMaxDepth cap, collecting each vertex in the round that first reaches
// it. The search stops when a round discovers nothing new or the cap is
// exceeded.
//
// The user visitor's DiscoverVertex fires once per distinct vertex (in the
// round of first discovery); redundant re-walks of shallow vertices in
// later rounds are not reported.
// Complexity: O(depth × (V + E)) worst case across rounds; O(V) memory
// for the seen set plus O(depth) per in-flight round.
func IDDFS(g core.IncidenceGraph, start core.VertexHandle, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.ContainsVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	res := &Result{Depth: make(map[core.VertexHandle]int)}
	seen := make(map[core.VertexHandle]bool, g.VertexCount())

	for limit := 0; o.MaxDepth < 0 || limit <= o.MaxDepth; limit++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		w, err := dfs.NewWalker(g, start, dfs.WithMaxDepth(limit))
		if err != nil {
			return nil, err
		}
		fresh := 0
		for v, ok := w.Next(); ok; v, ok = w.Next() {
			if seen[v.Vertex] {
				continue
			}
			seen[v.Vertex] = true
			fresh++
			res.Order = append(res.Order, v.Vertex)
			res.Depth[v.Vertex] = v.Depth
			if fn := o.Visitor.DiscoverVertex; fn != nil {
				fn(v.Vertex, v.Depth)
			}
		}
		res.Rounds++
		if fresh == 0 {
			break // the frontier stopped growing; deeper rounds find nothing
		}
	}
	return res, nil
}
