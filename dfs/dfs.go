// Package dfs implements depth-first traversal over any core.IncidenceGraph
// with an explicit frame stack — no recursion, so arbitrarily deep graphs
// cannot overflow the goroutine stack.
//
// The Walker yields preorder visit records lazily; edge classification
// (tree / back / forward-or-cross) and postorder completion are reported
// through the visitor callbacks.
package dfs

import (
	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/visit"
)

// frame is one element of the explicit DFS stack: a vertex, its outgoing
// edges, and a cursor over them.
type frame struct {
	v     core.VertexHandle
	edges []core.EdgeHandle
	next  int
	depth int
	path  []core.VertexHandle
}

// Walker is a lazy DFS: each Next call advances the explicit stack until
// one new vertex is discovered (yielded in preorder) or the stack drains.
//
// Determinism: descent follows the edge store's outgoing-edge iteration
// order, so the preorder is reproducible for a fixed graph.
type Walker struct {
	g       core.IncidenceGraph
	opts    Options
	stack   []frame
	color   map[core.VertexHandle]int
	started bool
	start   core.VertexHandle
}

// NewWalker builds a lazy DFS walker rooted at start.
// Returns ErrGraphNil, ErrStartVertexNotFound, or ErrOptionViolation.
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
	return &Walker{
		g:     g,
		opts:  o,
		color: make(map[core.VertexHandle]int, g.VertexCount()),
		start: start,
	}, nil
}

// Next advances the traversal until the next preorder discovery and
// returns its visit record. ok is false once the stack is exhausted.
// Amortized over a full run, all Next calls together cost O(V + E).
func (w *Walker) Next() (visit.Visit, bool) {
	if !w.started {
		w.started = true
		return w.push(w.start, core.NoEdge, 0, nil), true
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if v, ok := w.advance(top); ok {
			return v, true
		}
		// frame exhausted: postorder completion
		w.color[top.v] = Black
		if fn := w.opts.Visitor.FinishVertex; fn != nil {
			fn(top.v)
		}
		w.stack = w.stack[:len(w.stack)-1]
	}
	return visit.Visit{}, false
}

// advance walks top's remaining edges; it either descends into a white
// neighbor (returning its discovery record) or classifies and skips the
// edge. ok is false when the frame has no edges left.
func (w *Walker) advance(top *frame) (visit.Visit, bool) {
	for top.next < len(top.edges) {
		e := top.edges[top.next]
		top.next++

		if fn := w.opts.Visitor.ExamineEdge; fn != nil {
			fn(e)
		}
		_, to, ok := w.g.Endpoints(e)
		if !ok {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.v, to) {
			continue
		}
		if fn := w.opts.Visitor.ShouldTraverse; fn != nil && !fn(e, top.depth+1) {
			continue
		}

		switch w.color[to] {
		case Gray:
			if fn := w.opts.Visitor.BackEdge; fn != nil {
				fn(e)
			}
		case Black:
			if fn := w.opts.Visitor.ForwardOrCrossEdge; fn != nil {
				fn(e)
			}
		default: // White
			if fn := w.opts.Visitor.TreeEdge; fn != nil {
				fn(e)
			}
			return w.push(to, e, top.depth+1, top.path), true
		}
	}
	return visit.Visit{}, false
}

// push colors v gray, frames it, fires DiscoverVertex, and builds its
// preorder visit record. Frames at the depth limit get no edges, so they
// are yielded but never expanded.
func (w *Walker) push(v core.VertexHandle, via core.EdgeHandle, depth int, parentPath []core.VertexHandle) visit.Visit {
	w.color[v] = Gray
	f := frame{v: v, depth: depth}
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		f.edges = w.g.OutgoingEdges(v)
	}
	if w.opts.TrackPaths {
		f.path = append(append([]core.VertexHandle{}, parentPath...), v)
	}
	w.stack = append(w.stack, f)
	if fn := w.opts.Visitor.DiscoverVertex; fn != nil {
		fn(v, depth)
	}
	return visit.Visit{Vertex: v, Edge: via, Depth: depth, Path: f.path}
}

// DFS runs the whole traversal eagerly, collecting preorder, postorder,
// depths, parents, and back edges. The context from WithContext is checked
// once per discovery.
// Complexity: O(V + E).
func DFS(g core.IncidenceGraph, start core.VertexHandle, opts ...Option) (*Result, error) {
	res := &Result{
		Depth:  make(map[core.VertexHandle]int),
		Parent: make(map[core.VertexHandle]core.VertexHandle),
	}
	bookkeeping := visit.Visitor{
		FinishVertex: func(v core.VertexHandle) { res.PostOrder = append(res.PostOrder, v) },
		BackEdge:     func(e core.EdgeHandle) { res.BackEdges = append(res.BackEdges, e) },
	}
	// the user's visitor (if any) was installed first and fires first
	w, err := NewWalker(g, start, append(opts, WithVisitor(bookkeeping))...)
	if err != nil {
		return nil, err
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
		res.PreOrder = append(res.PreOrder, v.Vertex)
		res.Depth[v.Vertex] = v.Depth
		if v.Edge != core.NoEdge {
			if from, _, ok := g.Endpoints(v.Edge); ok {
				res.Parent[v.Vertex] = from
			}
		}
	}
}
