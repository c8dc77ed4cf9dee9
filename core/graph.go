package core

import (
	"fmt"

	"github.com/vertiq/vertiq/props"
)

// Graph is the adjacency-list facade: one vertex set, one edge store, and
// one property table per entity kind, composed into a single value
// implementing the capability surfaces (VertexLister, IncidenceGraph,
// BidirectionalGraph, MutableGraph).
//
// A Graph is single-writer: mutate it from one goroutine at a time and do
// not mutate while a traversal reads it. Clone() yields an independent
// copy that is safe to hand to a concurrent reader.
type Graph struct {
	verts  *VertexSet
	edges  EdgeStore
	vprops *props.Table[VertexHandle]
	eprops *props.Table[EdgeHandle]
}

// compile-time capability checks.
var (
	_ VertexLister       = (*Graph)(nil)
	_ IncidenceGraph     = (*Graph)(nil)
	_ BidirectionalGraph = (*Graph)(nil)
	_ MutableGraph       = (*Graph)(nil)
)

// New creates an empty Graph. By default edges live in an OrderedEdges
// store; pick another strategy with WithEdgeStore and add the incidence
// cache with WithInOutCache.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	cfg := config{store: NewOrderedEdges()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cache {
		cfg.store = NewCacheInOutEdges(cfg.store)
	}
	return &Graph{
		verts:  NewVertexSet(),
		edges:  cfg.store,
		vprops: props.NewTable[VertexHandle](),
		eprops: props.NewTable[EdgeHandle](),
	}
}

// AddVertex issues a fresh vertex handle.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() VertexHandle {
	return g.verts.Add()
}

// RemoveVertex removes v and every edge incident to it, outgoing and
// incoming, before retiring the vertex itself. No partial state is
// observable after the call returns: either v and all its incidence are
// gone, or ErrVertexNotFound is returned and nothing changed.
// Complexity: O(deg(v)) removals over the store's mutation cost.
func (g *Graph) RemoveVertex(v VertexHandle) error {
	if !g.verts.Contains(v) {
		return fmt.Errorf("%w: remove vertex %d", ErrVertexNotFound, v)
	}

	// both directions; self-loops go in the first pass and no longer
	// appear when the incoming list is computed
	for _, e := range g.edges.OutgoingEdges(v) {
		g.edges.RemoveEdge(e)
		g.eprops.Purge(e)
	}
	for _, e := range g.edges.IncomingEdges(v) {
		g.edges.RemoveEdge(e)
		g.eprops.Purge(e)
	}

	g.verts.Remove(v)
	g.vprops.Purge(v)
	return nil
}

// AddEdge records a new edge between two vertices this graph owns.
// Handles not owned by this graph yield ErrVertexNotFound and no mutation.
// Complexity: store AddEdge cost.
func (g *Graph) AddEdge(from, to VertexHandle) (EdgeHandle, error) {
	if !g.verts.Contains(from) {
		return NoEdge, fmt.Errorf("%w: edge source %d", ErrVertexNotFound, from)
	}
	if !g.verts.Contains(to) {
		return NoEdge, fmt.Errorf("%w: edge destination %d", ErrVertexNotFound, to)
	}
	return g.edges.AddEdge(from, to), nil
}

// RemoveEdge deletes e from the edge store.
// Complexity: store RemoveEdge cost.
func (g *Graph) RemoveEdge(e EdgeHandle) error {
	if !g.edges.RemoveEdge(e) {
		return fmt.Errorf("%w: remove edge %d", ErrEdgeNotFound, e)
	}
	g.eprops.Purge(e)
	return nil
}

// Vertices returns all live vertex handles in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []VertexHandle { return g.verts.Handles() }

// VertexCount returns the number of live vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.verts.Count() }

// ContainsVertex reports whether v is live in this graph.
// Complexity: O(1).
func (g *Graph) ContainsVertex(v VertexHandle) bool { return g.verts.Contains(v) }

// Edges returns all live edge handles in the store's deterministic order.
// Complexity: O(E).
func (g *Graph) Edges() []EdgeHandle { return g.edges.Edges() }

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges.EdgeCount() }

// ContainsEdge reports whether e is live in this graph.
// Complexity: O(1).
func (g *Graph) ContainsEdge(e EdgeHandle) bool {
	_, _, ok := g.edges.Endpoints(e)
	return ok
}

// Endpoints returns the (source, destination) pair of a live edge.
// Complexity: O(1).
func (g *Graph) Endpoints(e EdgeHandle) (VertexHandle, VertexHandle, bool) {
	return g.edges.Endpoints(e)
}

// Source returns the source vertex of e, or (NoVertex, false) when e does
// not resolve.
func (g *Graph) Source(e EdgeHandle) (VertexHandle, bool) {
	from, _, ok := g.edges.Endpoints(e)
	return from, ok
}

// Destination returns the destination vertex of e, or (NoVertex, false)
// when e does not resolve.
func (g *Graph) Destination(e EdgeHandle) (VertexHandle, bool) {
	_, to, ok := g.edges.Endpoints(e)
	return to, ok
}

// OutgoingEdges returns the live edges leaving v. Dead or foreign handles
// yield an empty result.
func (g *Graph) OutgoingEdges(v VertexHandle) []EdgeHandle { return g.edges.OutgoingEdges(v) }

// OutDegree returns the number of live edges leaving v.
func (g *Graph) OutDegree(v VertexHandle) int { return g.edges.OutDegree(v) }

// IncomingEdges returns the live edges entering v.
func (g *Graph) IncomingEdges(v VertexHandle) []EdgeHandle { return g.edges.IncomingEdges(v) }

// InDegree returns the number of live edges entering v.
func (g *Graph) InDegree(v VertexHandle) int { return g.edges.InDegree(v) }

// VertexProps returns the per-vertex property table. Access values through
// props.Get / props.Set with declared keys.
func (g *Graph) VertexProps() *props.Table[VertexHandle] { return g.vprops }

// EdgeProps returns the per-edge property table.
func (g *Graph) EdgeProps() *props.Table[EdgeHandle] { return g.eprops }

// Clone returns an independent copy of the graph: vertex set, edge store,
// and property tables are all duplicated, so mutating either copy never
// shows through the other. Handles remain valid against both copies.
// Complexity: O(V + E + properties).
func (g *Graph) Clone() *Graph {
	return &Graph{
		verts:  g.verts.Clone(),
		edges:  g.edges.CloneStore(),
		vprops: g.vprops.Clone(),
		eprops: g.eprops.Clone(),
	}
}

// GraphStats is a read-only snapshot of catalog sizes, handy for quick
// admission checks and test assertions.
type GraphStats struct {
	VertexCount  int
	EdgeCount    int
	MaxOutDegree int
	MaxInDegree  int
}

// Stats scans the graph once and summarizes it.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	st := GraphStats{
		VertexCount: g.verts.Count(),
		EdgeCount:   g.edges.EdgeCount(),
	}
	for _, v := range g.verts.Handles() {
		if d := g.edges.OutDegree(v); d > st.MaxOutDegree {
			st.MaxOutDegree = d
		}
		if d := g.edges.InDegree(v); d > st.MaxInDegree {
			st.MaxInDegree = d
		}
	}
	return st
}
