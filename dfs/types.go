// Package dfs: types, options, and errors for depth-first traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/visit"
)

// Vertex coloring states during DFS.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: on the stack (being explored); edges here are back edges.
	Black        // Black: fully explored; edges here are forward/cross edges.
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start handle is not live.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation of the eager DFS front; checked once per step.
	Ctx context.Context

	// Visitor observes the traversal: DiscoverVertex on preorder discovery,
	// ExamineEdge per outgoing edge, TreeEdge / BackEdge /
	// ForwardOrCrossEdge per classification, FinishVertex on postorder
	// completion, ShouldTraverse as a pre-descend pruning predicate.
	Visitor visit.Visitor

	// MaxDepth, if non-negative, bounds the descent: vertices at depth
	// MaxDepth are yielded but not expanded. Default -1 (no limit).
	// A limit of 0 visits only the start vertex.
	MaxDepth int

	// FilterNeighbor can skip an edge curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor core.VertexHandle) bool

	// TrackPaths populates Visit.Path with the source→vertex path.
	TrackPaths bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no visitor,
// no depth limit (MaxDepth = -1), no filtering, and no path tracking.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
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
func WithVisitor(v visit.Visitor) Option {
	return func(o *Options) {
		o.Visitor = visit.Combine(o.Visitor, v)
	}
}

// WithMaxDepth bounds the descent to the given depth. A limit of 0 visits
// only the start vertex. Negative limits are an option violation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
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

// Result captures the outcome of an eager DFS run.
type Result struct {
	// PreOrder records vertices by first-visit time.
	PreOrder []core.VertexHandle

	// PostOrder records vertices in finish order (descendants first).
	PostOrder []core.VertexHandle

	// Depth maps each reached vertex to its discovery depth.
	Depth map[core.VertexHandle]int

	// Parent maps each reached vertex to the vertex that discovered it
	// (start absent).
	Parent map[core.VertexHandle]core.VertexHandle

	// BackEdges lists edges that reached a vertex still on the stack —
	// each one witnesses a cycle.
	BackEdges []core.EdgeHandle
}
