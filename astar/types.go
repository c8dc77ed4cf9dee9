// Package astar: types, options, and errors for goal-directed search.
package astar

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/visit"
)

// Sentinel errors for A* / uniform-cost execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrSourceNotFound is returned when the source handle is not live.
	ErrSourceNotFound = errors.New("astar: source vertex not found")

	// ErrGoalNotFound is returned when the goal handle is not live.
	ErrGoalNotFound = errors.New("astar: goal vertex not found")

	// ErrNilWeight is returned when no weight function is supplied.
	ErrNilWeight = errors.New("astar: weight function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNoPath is returned when the frontier drains before the goal.
	ErrNoPath = errors.New("astar: no path from source to goal")
)

// WeightFunc maps an edge to its traversal cost. Costs must be
// non-negative (documented precondition, not runtime-checked).
type WeightFunc func(e core.EdgeHandle) float64

// Heuristic estimates the remaining cost from v to the goal. For A* to
// return optimal paths the estimate must be admissible: it never
// overestimates the true remaining cost. The engine is heuristic-agnostic;
// admissibility is the caller's responsibility.
type Heuristic func(v core.VertexHandle) float64

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for an A* / uniform-cost run.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// Visitor observes the search: DiscoverVertex fires when a vertex is
	// expanded (settled), ExamineEdge per relaxation attempt, TreeEdge when
	// a relaxation improves a g-score.
	Visitor visit.Visitor

	// MaxCost abandons the search once the cheapest frontier g-score
	// exceeds it, yielding ErrNoPath. Default +Inf.
	MaxCost float64

	err error
}

// DefaultOptions returns Options with background context, no visitor, and
// no cost cap.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxCost: math.Inf(1),
	}
}

// WithContext sets a custom context for cancelling the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVisitor installs (or combines onto) the search visitor.
func WithVisitor(v visit.Visitor) Option {
	return func(o *Options) {
		o.Visitor = visit.Combine(o.Visitor, v)
	}
}

// WithMaxCost bounds the accumulated path cost the search will consider.
// Negative caps are an option violation.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%v)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// Result holds the outcome of a goal-directed search.
type Result struct {
	// Path is the source→goal vertex sequence.
	Path []core.VertexHandle

	// Edges is the edge sequence realizing Path (len(Path)-1 entries).
	Edges []core.EdgeHandle

	// Cost is the total path cost (sum of edge weights along Path).
	Cost float64

	// Expanded counts vertices settled before the goal was reached — a
	// measure of how much of the graph the heuristic let the search skip.
	Expanded int
}
