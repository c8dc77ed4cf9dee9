// Package astar implements heuristic-guided (A*) and uniform-cost search
// to a single goal vertex over any core.IncidenceGraph.
//
// The frontier is a min-heap keyed by f = g + h, with lazy decrease-key
// as in the dijkstra package; uniform-cost search is A* with the null
// heuristic.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/vertiq/vertiq/core"
)

// openItem is one frontier entry: a vertex, its g-score, its priority
// f = g + h, the edge that produced it, and its hop count.
type openItem struct {
	v    core.VertexHandle
	g    float64
	f    float64
	via  core.EdgeHandle
	from core.VertexHandle
	hops int
}

// openPQ is a min-heap of frontier entries ordered by f. Tie order between
// equal priorities is unspecified.
type openPQ []*openItem

func (pq openPQ) Len() int            { return len(pq) }
func (pq openPQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq openPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// AStar searches for the cheapest source→goal path, expanding vertices in
// order of g-score plus heuristic estimate. With an admissible heuristic
// the returned path is optimal; with the null heuristic this degenerates
// to uniform-cost search.
//
// Returns ErrNoPath when the goal is unreachable (or beyond MaxCost).
// Complexity: O((V + E) log V) worst case; a sharp heuristic expands far less.
func AStar(g core.IncidenceGraph, source, goal core.VertexHandle, weight WeightFunc, h Heuristic, opts ...Option) (*Result, error) {
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
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !g.ContainsVertex(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}
	if h == nil {
		h = NullHeuristic
	}

	gScore := map[core.VertexHandle]float64{source: 0}
	parent := make(map[core.VertexHandle]core.VertexHandle)
	parentEdge := make(map[core.VertexHandle]core.EdgeHandle)
	closed := make(map[core.VertexHandle]bool)

	var open openPQ
	heap.Init(&open)
	heap.Push(&open, &openItem{v: source, g: 0, f: h(source), via: core.NoEdge, from: core.NoVertex})

	expanded := 0
	for open.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := heap.Pop(&open).(*openItem)
		if closed[item.v] {
			continue // stale lazy-decrease-key entry
		}
		if item.g > o.MaxCost {
			break
		}
		closed[item.v] = true
		if item.from != core.NoVertex {
			parent[item.v] = item.from
			parentEdge[item.v] = item.via
		}
		if fn := o.Visitor.DiscoverVertex; fn != nil {
			fn(item.v, item.hops)
		}

		if item.v == goal {
			return reconstruct(source, goal, item.g, expanded, parent, parentEdge), nil
		}
		expanded++

		for _, e := range g.OutgoingEdges(item.v) {
			if fn := o.Visitor.ExamineEdge; fn != nil {
				fn(e)
			}
			_, to, ok := g.Endpoints(e)
			if !ok || closed[to] {
				continue
			}
			cand := item.g + weight(e)
			if cand > o.MaxCost {
				continue
			}
			if best, seen := gScore[to]; seen && cand >= best {
				continue
			}
			gScore[to] = cand
			if fn := o.Visitor.TreeEdge; fn != nil {
				fn(e)
			}
			heap.Push(&open, &openItem{v: to, g: cand, f: cand + h(to), via: e, from: item.v, hops: item.hops + 1})
		}
	}
	return nil, fmt.Errorf("%w: goal %d", ErrNoPath, goal)
}

// UniformCost searches for the cheapest source→goal path with no heuristic
// guidance: expansion order is purely by accumulated cost, exactly
// goal-directed Dijkstra.
// Complexity: O((V + E) log V).
func UniformCost(g core.IncidenceGraph, source, goal core.VertexHandle, weight WeightFunc, opts ...Option) (*Result, error) {
	return AStar(g, source, goal, weight, NullHeuristic, opts...)
}

// reconstruct walks the parent links backward from goal and packages the
// result.
func reconstruct(source, goal core.VertexHandle, cost float64, expanded int,
	parent map[core.VertexHandle]core.VertexHandle, parentEdge map[core.VertexHandle]core.EdgeHandle) *Result {

	var path []core.VertexHandle
	var edges []core.EdgeHandle
	for cur := goal; ; {
		path = append(path, cur)
		if cur == source {
			break
		}
		edges = append(edges, parentEdge[cur])
		cur = parent[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return &Result{Path: path, Edges: edges, Cost: cost, Expanded: expanded}
}
