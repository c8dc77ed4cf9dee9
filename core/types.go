// Package core defines the storage layer of vertiq: vertex and edge
// handles, the VertexSet, the EdgeStore contract with its three strategies
// (ordered, coordinate-list, compressed-sparse-row), the incidence cache,
// and the Graph facade composing them with typed property tables.
//
// This file declares handles, capability interfaces, sentinel errors, and
// the Graph construction options.
//
// Errors:
//
//	ErrVertexNotFound - operation referenced a vertex this graph does not own.
//	ErrEdgeNotFound   - operation referenced an edge this graph does not own.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex handle
	// that does not resolve against this graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge handle
	// that does not resolve against this graph.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// VertexHandle is an opaque identity for a vertex, valid only against the
// store instance that issued it. Handles are small, copyable, comparable,
// and usable as map keys.
type VertexHandle int64

// EdgeHandle is an opaque identity for an edge, valid only against the
// store instance that issued it.
type EdgeHandle int64

// NoVertex is the invalid vertex handle. No live vertex ever carries it.
const NoVertex VertexHandle = -1

// NoEdge is the invalid edge handle. No live edge ever carries it.
const NoEdge EdgeHandle = -1

// EdgeStore owns edge handles and their (source, destination) endpoints.
//
// All queries on a handle that does not currently resolve to a live edge
// return zero values, false, or an empty slice — never a panic. Removal is
// atomic from the caller's perspective: the edge disappears from the
// forward and backward views in the same call.
//
// Implementations differ in complexity and locality trade-offs; see
// OrderedEdges, COOEdges, and CSREdges.
type EdgeStore interface {
	// AddEdge records a new edge from→to and returns its handle.
	// Endpoint validity is the caller's concern (the Graph facade checks it).
	AddEdge(from, to VertexHandle) EdgeHandle

	// RemoveEdge deletes the edge. Returns false if e is not live.
	RemoveEdge(e EdgeHandle) bool

	// Endpoints returns the (source, destination) pair of a live edge.
	// ok is false when e does not resolve.
	Endpoints(e EdgeHandle) (from, to VertexHandle, ok bool)

	// Edges returns all live edge handles in the store's deterministic
	// iteration order.
	Edges() []EdgeHandle

	// EdgeCount returns the number of live edges.
	EdgeCount() int

	// OutgoingEdges returns precisely the live edges whose source is v,
	// in the store's deterministic iteration order.
	OutgoingEdges(v VertexHandle) []EdgeHandle

	// OutDegree returns len(OutgoingEdges(v)) without allocating.
	OutDegree(v VertexHandle) int

	// IncomingEdges returns precisely the live edges whose destination is v.
	IncomingEdges(v VertexHandle) []EdgeHandle

	// InDegree returns len(IncomingEdges(v)) without allocating.
	InDegree(v VertexHandle) int

	// CloneStore returns an independent deep copy of the store.
	CloneStore() EdgeStore
}

// VertexLister is the minimal read capability over vertices.
type VertexLister interface {
	Vertices() []VertexHandle
	VertexCount() int
	ContainsVertex(v VertexHandle) bool
}

// IncidenceGraph is the capability surface consumed by the traversal and
// search packages: vertex listing plus forward incidence and endpoints.
type IncidenceGraph interface {
	VertexLister
	OutgoingEdges(v VertexHandle) []EdgeHandle
	OutDegree(v VertexHandle) int
	Endpoints(e EdgeHandle) (from, to VertexHandle, ok bool)
}

// BidirectionalGraph adds backward incidence to IncidenceGraph.
type BidirectionalGraph interface {
	IncidenceGraph
	IncomingEdges(v VertexHandle) []EdgeHandle
	InDegree(v VertexHandle) int
}

// MutableGraph is the structural mutation surface of the Graph facade.
type MutableGraph interface {
	AddVertex() VertexHandle
	RemoveVertex(v VertexHandle) error
	AddEdge(from, to VertexHandle) (EdgeHandle, error)
	RemoveEdge(e EdgeHandle) error
}

// endpoint is the stored (source, destination) pair of one edge.
type endpoint struct {
	from VertexHandle
	to   VertexHandle
}

// Option configures a Graph before creation.
type Option func(*config)

// config collects construction-time choices applied by New.
type config struct {
	store EdgeStore
	cache bool
}

// WithEdgeStore selects the edge storage strategy. Default is NewOrderedEdges().
// The store must be empty; New does not validate foreign state.
func WithEdgeStore(es EdgeStore) Option {
	return func(c *config) {
		if es != nil {
			c.store = es
		}
	}
}

// WithInOutCache wraps the selected edge store in a CacheInOutEdges
// decorator, giving O(1) incidence queries at the cost of per-vertex
// bookkeeping on every mutation.
func WithInOutCache() Option {
	return func(c *config) { c.cache = true }
}
