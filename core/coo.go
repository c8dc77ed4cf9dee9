package core

// COOEdges stores edges as parallel source/destination arrays in
// coordinate-list form. Removal tombstones the slot; AddEdge reuses the
// most recently freed slot before growing, so the arrays stay compact
// under churn.
//
// The edge handle is the slot index. A handle is therefore reissued after
// its previous occupant has been removed — never while it is live — which
// keeps handles non-aliasing from the caller's point of view.
//
// Incidence queries linear-scan the arrays with tombstone filtering.
//
// Determinism: iteration follows slot index order. Under removal and
// reuse this is not insertion order; callers needing stable insertion
// order should use OrderedEdges.
type COOEdges struct {
	from []VertexHandle // from[i] == NoVertex marks a tombstoned slot
	to   []VertexHandle
	free []int // tombstoned slot indexes, reused LIFO
	n    int   // live edge count
}

var _ EdgeStore = (*COOEdges)(nil)

// NewCOOEdges returns an empty coordinate-list store.
// Complexity: O(1).
func NewCOOEdges() *COOEdges {
	return &COOEdges{}
}

// slotLive reports whether slot i holds a live edge.
func (s *COOEdges) slotLive(i int) bool {
	return i >= 0 && i < len(s.from) && s.from[i] != NoVertex
}

// AddEdge records from→to, reusing a tombstoned slot when one exists.
// Complexity: O(1) amortized.
func (s *COOEdges) AddEdge(from, to VertexHandle) EdgeHandle {
	var slot int
	if n := len(s.free); n > 0 {
		slot = s.free[n-1]
		s.free = s.free[:n-1]
		s.from[slot] = from
		s.to[slot] = to
	} else {
		slot = len(s.from)
		s.from = append(s.from, from)
		s.to = append(s.to, to)
	}
	s.n++
	return EdgeHandle(slot)
}

// RemoveEdge tombstones the slot of e. Returns false if e is not live.
// Complexity: O(1).
func (s *COOEdges) RemoveEdge(e EdgeHandle) bool {
	i := int(e)
	if !s.slotLive(i) {
		return false
	}
	s.from[i] = NoVertex
	s.to[i] = NoVertex
	s.free = append(s.free, i)
	s.n--
	return true
}

// Endpoints returns the (source, destination) pair of a live edge.
// Complexity: O(1).
func (s *COOEdges) Endpoints(e EdgeHandle) (VertexHandle, VertexHandle, bool) {
	i := int(e)
	if !s.slotLive(i) {
		return NoVertex, NoVertex, false
	}
	return s.from[i], s.to[i], true
}

// Edges returns all live handles in slot order.
// Complexity: O(E).
func (s *COOEdges) Edges() []EdgeHandle {
	out := make([]EdgeHandle, 0, s.n)
	for i := range s.from {
		if s.from[i] != NoVertex {
			out = append(out, EdgeHandle(i))
		}
	}
	return out
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (s *COOEdges) EdgeCount() int { return s.n }

// OutgoingEdges returns the live edges with source v, in slot order.
// Complexity: O(E).
func (s *COOEdges) OutgoingEdges(v VertexHandle) []EdgeHandle {
	if v == NoVertex {
		return nil // would otherwise match tombstones
	}
	var out []EdgeHandle
	for i := range s.from {
		if s.from[i] == v {
			out = append(out, EdgeHandle(i))
		}
	}
	return out
}

// OutDegree counts the live edges with source v.
// Complexity: O(E).
func (s *COOEdges) OutDegree(v VertexHandle) int {
	if v == NoVertex {
		return 0
	}
	n := 0
	for i := range s.from {
		if s.from[i] == v {
			n++
		}
	}
	return n
}

// IncomingEdges returns the live edges with destination v, in slot order.
// Complexity: O(E).
func (s *COOEdges) IncomingEdges(v VertexHandle) []EdgeHandle {
	if v == NoVertex {
		return nil
	}
	var out []EdgeHandle
	for i := range s.to {
		if s.to[i] == v {
			out = append(out, EdgeHandle(i))
		}
	}
	return out
}

// InDegree counts the live edges with destination v.
// Complexity: O(E).
func (s *COOEdges) InDegree(v VertexHandle) int {
	if v == NoVertex {
		return 0
	}
	n := 0
	for i := range s.to {
		if s.to[i] == v {
			n++
		}
	}
	return n
}

// CloneStore returns an independent deep copy.
// Complexity: O(E).
func (s *COOEdges) CloneStore() EdgeStore {
	c := &COOEdges{
		from: make([]VertexHandle, len(s.from)),
		to:   make([]VertexHandle, len(s.to)),
		free: make([]int, len(s.free)),
		n:    s.n,
	}
	copy(c.from, s.from)
	copy(c.to, s.to)
	copy(c.free, s.free)
	return c
}
