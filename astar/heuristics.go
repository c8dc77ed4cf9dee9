package astar

import (
	"math"

	"github.com/vertiq/vertiq/core"
)

// Point is a coordinate vector used by the geometric heuristics. Any
// dimension works; distances use the shorter of the two vectors when
// dimensions disagree.
type Point []float64

// Euclidean returns the straight-line distance between a and b —
// admissible whenever edge costs are at least the geometric distance
// between their endpoints.
func Euclidean(a, b Point) float64 {
	sum := 0.0
	for i := 0; i < len(a) && i < len(b); i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Manhattan returns the L1 distance between a and b — admissible on grid
// graphs with axis-aligned unit moves.
func Manhattan(a, b Point) float64 {
	sum := 0.0
	for i := 0; i < len(a) && i < len(b); i++ {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// NullHeuristic estimates zero everywhere, reducing A* to uniform-cost
// search. Trivially admissible.
func NullHeuristic(_ core.VertexHandle) float64 { return 0 }

// EuclideanHeuristic builds a Heuristic from a per-vertex position lookup
// (typically a props vertex property) and the goal's position.
func EuclideanHeuristic(pos func(core.VertexHandle) Point, goal core.VertexHandle) Heuristic {
	target := pos(goal)
	return func(v core.VertexHandle) float64 {
		return Euclidean(pos(v), target)
	}
}

// ManhattanHeuristic builds a Heuristic from a per-vertex position lookup
// and the goal's position.
func ManhattanHeuristic(pos func(core.VertexHandle) Point, goal core.VertexHandle) Heuristic {
	target := pos(goal)
	return func(v core.VertexHandle) float64 {
		return Manhattan(pos(v), target)
	}
}
