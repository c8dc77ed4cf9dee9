// Package bfs: tunable options, errors, and the result type for
// breadth-first traversal over a core.IncidenceGraph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/visit"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start handle is not live.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. Invalid options
// (e.g. negative depth) are recorded internally and surfaced as
// ErrOptionViolation when the walker is built.
type Option func(*Options)

// Options holds parameters and callbacks customizing BFS execution.
type Options struct {
	// Ctx allows cancellation of the eager BFS front. The lazy walker is
	// cancelled by simply not pulling; Ctx is checked once per eager step.
	Ctx context.Context

	// Visitor observes the traversal: DiscoverVertex per dequeued vertex,
	// ExamineEdge per outgoing edge, TreeEdge per first-discovery edge,
	// FinishVertex when a vertex's expansion completes, ShouldTraverse as
	// a pre-descend pruning predicate.
	Visitor visit.Visitor

	// MaxDepth, if > 0, stops exploring beyond this hop distance.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip an edge curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor core.VertexHandle) bool

	// TrackPaths populates Visit.Path with the source→vertex path.
	// Costs O(depth) per visit record.
	TrackPaths bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no visitor, no
// depth limit, no filtering, and no path tracking.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancelling the eager front.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVisitor installs (or combines onto) the traversal visitor.
// Multiple WithVisitor options stack in application order.
func WithVisitor(v visit.Visitor) Option {
	return func(o *Options) {
		o.Visitor = visit.Combine(o.Visitor, v)
	}
}

// WithMaxDepth stops the search at the given hop distance.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips edges for which fn(curr, neighbor) == false.
func WithFilterNeighbor(fn func(curr, neighbor core.VertexHandle) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithPathTracking populates Visit.Path on every yielded record.
func WithPathTracking() Option {
	return func(o *Options) { o.TrackPaths = true }
}

// Result holds the outcome of an eager BFS run:
//   - Order: vertices in visit sequence (non-decreasing hop distance,
//     ties broken by outgoing-edge iteration order).
//   - Depth: hop distance from the start per reached vertex.
//   - Parent: predecessor vertex in the BFS tree (start absent).
//   - ParentEdge: the tree edge used to reach each vertex (start absent).
type Result struct {
	Order      []core.VertexHandle
	Depth      map[core.VertexHandle]int
	Parent     map[core.VertexHandle]core.VertexHandle
	ParentEdge map[core.VertexHandle]core.EdgeHandle
}

// PathTo reconstructs the start→dest path from the parent links.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.VertexHandle) ([]core.VertexHandle, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	var path []core.VertexHandle
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
