// Package dijkstra computes single-source shortest paths over any
// core.IncidenceGraph with non-negative edge costs, using a min-heap with
// lazy decrease-key: improved distances push duplicate entries, and stale
// entries are skipped when popped.
package dijkstra

import (
	"container/heap"

	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/visit"
)

// nodeItem is one frontier entry: a vertex, its tentative distance, the
// edge that produced it, and its hop count (reported as Visit.Depth).
type nodeItem struct {
	v    core.VertexHandle
	dist float64
	via  core.EdgeHandle
	hops int
}

// nodePQ is a min-heap of frontier entries ordered by distance. Tie order
// between equal distances is unspecified.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Walker is a lazy Dijkstra: each Next call settles exactly one vertex —
// pops the cheapest frontier entry, finalizes its distance, relaxes its
// outgoing edges — and yields the settled vertex as a visit record.
// Vertices are yielded in non-decreasing final distance.
type Walker struct {
	g       core.IncidenceGraph
	weight  WeightFunc
	opts    Options
	dist    map[core.VertexHandle]float64
	settled map[core.VertexHandle]bool
	pq      nodePQ
	done    bool
}

// NewWalker builds a lazy shortest-path walker seeded at source.
// Returns ErrGraphNil, ErrNilWeight, ErrSourceNotFound, or
// ErrOptionViolation.
func NewWalker(g core.IncidenceGraph, source core.VertexHandle, weight WeightFunc, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if weight == nil {
		return nil, ErrNilWeight
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.ContainsVertex(source) {
		return nil, ErrSourceNotFound
	}

	w := &Walker{
		g:       g,
		weight:  weight,
		opts:    o,
		dist:    make(map[core.VertexHandle]float64, g.VertexCount()),
		settled: make(map[core.VertexHandle]bool, g.VertexCount()),
	}
	w.dist[source] = 0
	heap.Init(&w.pq)
	heap.Push(&w.pq, &nodeItem{v: source, dist: 0, via: core.NoEdge})
	return w, nil
}

// Next settles the next-cheapest vertex and returns its visit record with
// Depth set to the hop count of its shortest path. ok is false when the
// frontier drains, the distance cap is passed, or the goal has settled.
// Complexity: O((1 + outDegree) log V) amortized per call.
func (w *Walker) Next() (visit.Visit, bool) {
	if w.done {
		return visit.Visit{}, false
	}
	for w.pq.Len() > 0 {
		item := heap.Pop(&w.pq).(*nodeItem)
		if w.settled[item.v] {
			continue // stale lazy-decrease-key entry
		}
		if item.dist > w.opts.MaxDistance {
			w.done = true
			return visit.Visit{}, false
		}
		w.settled[item.v] = true
		if fn := w.opts.Visitor.DiscoverVertex; fn != nil {
			fn(item.v, item.hops)
		}
		if w.opts.hasGoal && item.v == w.opts.Goal {
			w.done = true
		} else {
			w.relax(item)
		}
		return visit.Visit{Vertex: item.v, Edge: item.via, Depth: item.hops}, true
	}
	w.done = true
	return visit.Visit{}, false
}

// Dist reports the tentative or final distance of v and whether any path
// to it has been seen so far.
func (w *Walker) Dist(v core.VertexHandle) (float64, bool) {
	d, ok := w.dist[v]
	return d, ok
}

// relax attempts to improve the distances of u's neighbors, pushing a new
// frontier entry for every strict improvement.
func (w *Walker) relax(u *nodeItem) {
	for _, e := range w.g.OutgoingEdges(u.v) {
		if fn := w.opts.Visitor.ExamineEdge; fn != nil {
			fn(e)
		}
		_, to, ok := w.g.Endpoints(e)
		if !ok || w.settled[to] {
			continue
		}
		cand := u.dist + w.weight(e)
		if cand > w.opts.MaxDistance {
			continue
		}
		if best, seen := w.dist[to]; seen && cand >= best {
			continue
		}
		w.dist[to] = cand
		if fn := w.opts.Visitor.TreeEdge; fn != nil {
			fn(e)
		}
		heap.Push(&w.pq, &nodeItem{v: to, dist: cand, via: e, hops: u.hops + 1})
	}
}

// Dijkstra runs the whole search eagerly and collects a Result. The
// context from WithContext is checked once per settled vertex.
// Complexity: O((V + E) log V).
func Dijkstra(g core.IncidenceGraph, source core.VertexHandle, weight WeightFunc, opts ...Option) (*Result, error) {
	w, err := NewWalker(g, source, weight, opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Dist:       make(map[core.VertexHandle]float64),
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
		res.Dist[v.Vertex] = w.dist[v.Vertex]
		if v.Edge != core.NoEdge {
			if from, _, ok := g.Endpoints(v.Edge); ok {
				res.Parent[v.Vertex] = from
			}
			res.ParentEdge[v.Vertex] = v.Edge
		}
	}
}
