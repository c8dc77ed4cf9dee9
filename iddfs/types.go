// Package iddfs: types, options, and errors for iterative-deepening DFS.
package iddfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/visit"
)

// Sentinel errors for IDDFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("iddfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start handle is not live.
	ErrStartVertexNotFound = errors.New("iddfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("iddfs: invalid option supplied")
)

// Option configures IDDFS behavior via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for an IDDFS run.
type Options struct {
	// Ctx allows cancellation; checked once per deepening round.
	Ctx context.Context

	// Visitor observes the search; only DiscoverVertex is consulted, once
	// per distinct vertex in its round of first discovery.
	Visitor visit.Visitor

	// MaxDepth caps the deepening ceiling. Default -1: deepen until a
	// round discovers nothing new.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with background context, no visitor, and
// no deepening cap.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
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

// WithMaxDepth caps the deepening ceiling at limit. Negative limits are an
// option violation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// Result captures the outcome of an IDDFS run.
type Result struct {
	// Order lists vertices in first-discovery sequence across rounds:
	// all depth-0 vertices, then new depth-1 vertices, and so on.
	Order []core.VertexHandle

	// Depth maps each reached vertex to the depth at which some round
	// first discovered it.
	Depth map[core.VertexHandle]int

	// Rounds counts how many deepening rounds ran.
	Rounds int
}
