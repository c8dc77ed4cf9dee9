package core

// OrderedEdges is the reference edge store: a sequential catalog mapping
// edge handles to endpoints, kept in insertion order.
//
// Incidence queries are linear scans over the whole catalog, so this store
// suits small or mutation-heavy graphs and serves as the baseline the other
// strategies are checked against.
//
// Determinism: Edges() and incidence queries iterate in insertion order.
type OrderedEdges struct {
	next      EdgeHandle
	endpoints map[EdgeHandle]endpoint
	order     []EdgeHandle // live handles, insertion order
}

// assert interface conformance at compile time.
var _ EdgeStore = (*OrderedEdges)(nil)

// NewOrderedEdges returns an empty ordered store.
// Complexity: O(1).
func NewOrderedEdges() *OrderedEdges {
	return &OrderedEdges{endpoints: make(map[EdgeHandle]endpoint)}
}

// AddEdge records from→to under a fresh monotonic handle.
// Complexity: O(1) amortized.
func (s *OrderedEdges) AddEdge(from, to VertexHandle) EdgeHandle {
	h := s.next
	s.next++
	s.endpoints[h] = endpoint{from: from, to: to}
	s.order = append(s.order, h)
	return h
}

// RemoveEdge deletes e from the catalog. Returns false if e is not live.
// Complexity: O(E) for the order splice.
func (s *OrderedEdges) RemoveEdge(e EdgeHandle) bool {
	if _, ok := s.endpoints[e]; !ok {
		return false
	}
	delete(s.endpoints, e)
	for i, h := range s.order {
		if h == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Endpoints returns the (source, destination) pair of a live edge.
// Complexity: O(1).
func (s *OrderedEdges) Endpoints(e EdgeHandle) (VertexHandle, VertexHandle, bool) {
	ep, ok := s.endpoints[e]
	if !ok {
		return NoVertex, NoVertex, false
	}
	return ep.from, ep.to, true
}

// Edges returns all live handles in insertion order.
// Complexity: O(E).
func (s *OrderedEdges) Edges() []EdgeHandle {
	out := make([]EdgeHandle, len(s.order))
	copy(out, s.order)
	return out
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (s *OrderedEdges) EdgeCount() int { return len(s.endpoints) }

// OutgoingEdges returns the live edges with source v, in insertion order.
// Complexity: O(E).
func (s *OrderedEdges) OutgoingEdges(v VertexHandle) []EdgeHandle {
	var out []EdgeHandle
	for _, h := range s.order {
		if s.endpoints[h].from == v {
			out = append(out, h)
		}
	}
	return out
}

// OutDegree counts the live edges with source v.
// Complexity: O(E).
func (s *OrderedEdges) OutDegree(v VertexHandle) int {
	n := 0
	for _, h := range s.order {
		if s.endpoints[h].from == v {
			n++
		}
	}
	return n
}

// IncomingEdges returns the live edges with destination v, in insertion order.
// Complexity: O(E).
func (s *OrderedEdges) IncomingEdges(v VertexHandle) []EdgeHandle {
	var out []EdgeHandle
	for _, h := range s.order {
		if s.endpoints[h].to == v {
			out = append(out, h)
		}
	}
	return out
}

// InDegree counts the live edges with destination v.
// Complexity: O(E).
func (s *OrderedEdges) InDegree(v VertexHandle) int {
	n := 0
	for _, h := range s.order {
		if s.endpoints[h].to == v {
			n++
		}
	}
	return n
}

// CloneStore returns an independent deep copy.
// Complexity: O(E).
func (s *OrderedEdges) CloneStore() EdgeStore {
	c := &OrderedEdges{
		next:      s.next,
		endpoints: make(map[EdgeHandle]endpoint, len(s.endpoints)),
		order:     make([]EdgeHandle, len(s.order)),
	}
	for h, ep := range s.endpoints {
		c.endpoints[h] = ep
	}
	copy(c.order, s.order)
	return c
}
