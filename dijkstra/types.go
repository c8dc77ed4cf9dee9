// Package dijkstra: types, options, and errors for shortest-path search by
// non-negative edge cost.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/visit"
)

// Sentinel errors for Dijkstra execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound is returned when the source handle is not live.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrNilWeight is returned when no weight function is supplied.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath is returned by PathTo for unreached destinations.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

// WeightFunc maps an edge to its traversal cost. Costs must be
// non-negative; this is a documented precondition, not runtime-checked —
// the relax loop stays branch-minimal and negative weights silently
// produce wrong distances. Use Bellman-Ford (outside this module) when
// negative weights are possible.
type WeightFunc func(e core.EdgeHandle) float64

// Option configures Dijkstra behavior via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for a Dijkstra run.
type Options struct {
	// Ctx allows cancellation of the eager front; checked once per settle.
	Ctx context.Context

	// Visitor observes the search: DiscoverVertex fires when a vertex
	// settles (depth = hop count of the best path), ExamineEdge per
	// relaxation attempt, TreeEdge when a relaxation improves a distance.
	Visitor visit.Visitor

	// MaxDistance stops exploration once the cheapest frontier entry
	// exceeds it. Default +Inf (no cap). Must be non-negative.
	MaxDistance float64

	// Goal, when set, ends the search as soon as the goal vertex settles.
	Goal core.VertexHandle

	hasGoal bool
	err     error
}

// DefaultOptions returns Options with background context, no visitor, no
// distance cap, and no goal.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.Inf(1),
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

// WithVisitor installs (or combines onto) the search visitor.
func WithVisitor(v visit.Visitor) Option {
	return func(o *Options) {
		o.Visitor = visit.Combine(o.Visitor, v)
	}
}

// WithMaxDistance caps exploration: vertices whose settled distance would
// exceed max are never settled. Negative caps are an option violation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithGoal ends the search as soon as goal settles; the Result then covers
// only the explored region.
func WithGoal(goal core.VertexHandle) Option {
	return func(o *Options) {
		o.Goal = goal
		o.hasGoal = true
	}
}

// Result holds the outcome of an eager Dijkstra run.
type Result struct {
	// Order lists vertices in settle sequence (non-decreasing distance).
	Order []core.VertexHandle

	// Dist maps each settled vertex to its final distance from the source.
	Dist map[core.VertexHandle]float64

	// Parent maps each settled vertex to its predecessor on the shortest
	// path (source absent).
	Parent map[core.VertexHandle]core.VertexHandle

	// ParentEdge maps each settled vertex to the edge completing its
	// shortest path (source absent).
	ParentEdge map[core.VertexHandle]core.EdgeHandle
}

// PathTo reconstructs the source→dest shortest path and its cost.
// Returns ErrNoPath if dest never settled.
func (r *Result) PathTo(dest core.VertexHandle) ([]core.VertexHandle, float64, error) {
	d, ok := r.Dist[dest]
	if !ok {
		return nil, 0, fmt.Errorf("%w: vertex %d", ErrNoPath, dest)
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
	return path, d, nil
}
