// Package bfs provides breadth-first traversal over any core.IncidenceGraph,
// as a lazy pull-based Walker and an eager BFS front returning visit order,
// hop depths, and parent links.
package bfs

import (
	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/visit"
)

// queueItem pairs a frontier vertex with the edge that discovered it, its
// hop depth, and (when tracked) the path from the start.
type queueItem struct {
	v     core.VertexHandle
	via   core.EdgeHandle
	depth int
	path  []core.VertexHandle
}

// Walker is a lazy BFS: each Next call dequeues exactly one vertex, yields
// its visit record, and enqueues its undiscovered neighbors. Stop pulling
// to cancel; the walker holds no resources beyond its frontier.
//
// Determinism: neighbors are enqueued in the order the edge store iterates
// outgoing edges, so the visit sequence is reproducible for a fixed graph.
type Walker struct {
	g     core.IncidenceGraph
	opts  Options
	queue []queueItem
	seen  map[core.VertexHandle]bool
}

// NewWalker builds a lazy BFS walker seeded at start.
// Returns ErrGraphNil, ErrStartVertexNotFound, or ErrOptionViolation.
// Complexity: O(1) beyond map allocation; the traversal itself is O(V+E)
// spread across Next calls.
func NewWalker(g core.IncidenceGraph, start core.VertexHandle, opts ...Option) (*Walker, error) {
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

	w := &Walker{
		g:    g,
		opts: o,
		seen: make(map[core.VertexHandle]bool, g.VertexCount()),
	}
	w.seen[start] = true
	item := queueItem{v: start, via: core.NoEdge}
	if o.TrackPaths {
		item.path = []core.VertexHandle{start}
	}
	w.queue = append(w.queue, item)
	return w, nil
}

// Next advances the traversal by one step: it dequeues the next frontier
// vertex, fires DiscoverVertex, expands its outgoing edges, fires
// FinishVertex, and returns the visit record. ok is false once the
// frontier is exhausted.
// Complexity: O(outDegree) per call.
func (w *Walker) Next() (visit.Visit, bool) {
	if len(w.queue) == 0 {
		return visit.Visit{}, false
	}
	item := w.queue[0]
	w.queue = w.queue[1:]

	if fn := w.opts.Visitor.DiscoverVertex; fn != nil {
		fn(item.v, item.depth)
	}
	w.expand(item)
	if fn := w.opts.Visitor.FinishVertex; fn != nil {
		fn(item.v)
	}

	return visit.Visit{Vertex: item.v, Edge: item.via, Depth: item.depth, Path: item.path}, true
}

// expand enqueues the undiscovered neighbors of item, respecting the
// neighbor filter, ShouldTraverse, and the depth limit.
func (w *Walker) expand(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.g.OutgoingEdges(item.v) {
		if fn := w.opts.Visitor.ExamineEdge; fn != nil {
			fn(e)
		}
		_, to, ok := w.g.Endpoints(e)
		if !ok {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(item.v, to) {
			continue
		}
		if fn := w.opts.Visitor.ShouldTraverse; fn != nil && !fn(e, nextDepth) {
			continue
		}
		if w.seen[to] {
			continue
		}
		w.seen[to] = true
		if fn := w.opts.Visitor.TreeEdge; fn != nil {
			fn(e)
		}
		next := queueItem{v: to, via: e, depth: nextDepth}
		if w.opts.TrackPaths {
			next.path = append(append([]core.VertexHandle{}, item.path...), to)
		}
		w.queue = append(w.queue, next)
	}
}

// BFS runs the whole traversal eagerly and collects a Result. The context
// from WithContext is checked once per step.
// Complexity: O(V + E).
func BFS(g core.IncidenceGraph, start core.VertexHandle, opts ...Option) (*Result, error) {
	w, err := NewWalker(g, start, opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Depth:      make(map[core.VertexHandle]int),
		Parent:     make(map[core.VertexHandle]core.VertexHandle),
		ParentEdge: make(map[core.VertexHandle]core.EdgeHandle),
	}
	for {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}
		v, ok := w.Next()
		if !ok {
			return res, nil
		}
		res.Order = append(res.Order, v.Vertex)
		res.Depth[v.Vertex] = v.Depth
		if v.Edge != core.NoEdge {
			if from, _, ok := g.Endpoints(v.Edge); ok {
				res.Parent[v.Vertex] = from
			}
			res.ParentEdge[v.Vertex] = v.Edge
		}
	}
}
