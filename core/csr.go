package core

// CSREdges stores edges in compressed-sparse-row form: a per-vertex
// row-offset table over one flat array of edge handles, giving contiguous,
// cache-friendly outgoing-edge iteration. An auxiliary bucket map gives
// O(1) backward (incoming) lookup.
//
// Insertion splices the new handle at the end of the source vertex's row
// and increments every subsequent row offset by one; removal does the
// reverse. This trades O(V+E) worst-case shift cost per mutation for fast
// reads — CSR is meant for read-heavy, mutation-light workloads.
//
// Determinism: rows appear in first-seen source order; within a row,
// handles appear in insertion order.
type CSREdges struct {
	next      EdgeHandle
	rowOf     map[VertexHandle]int // source vertex → row index
	rowVerts  []VertexHandle       // row index → source vertex
	offsets   []int                // len(rowVerts)+1; row r spans cells[offsets[r]:offsets[r+1]]
	cells     []EdgeHandle         // flat edge handles grouped by row
	endpoints map[EdgeHandle]endpoint
	incoming  map[VertexHandle][]EdgeHandle // destination vertex → edges, insertion order
}

var _ EdgeStore = (*CSREdges)(nil)

// NewCSREdges returns an empty compressed-sparse-row store.
// Complexity: O(1).
func NewCSREdges() *CSREdges {
	return &CSREdges{
		rowOf:     make(map[VertexHandle]int),
		offsets:   []int{0},
		endpoints: make(map[EdgeHandle]endpoint),
		incoming:  make(map[VertexHandle][]EdgeHandle),
	}
}

// row returns the row index for source vertex v, creating an empty row on
// first sight.
func (s *CSREdges) row(v VertexHandle) int {
	if r, ok := s.rowOf[v]; ok {
		return r
	}
	r := len(s.rowVerts)
	s.rowOf[v] = r
	s.rowVerts = append(s.rowVerts, v)
	s.offsets = append(s.offsets, s.offsets[len(s.offsets)-1])
	return r
}

// AddEdge splices from→to into the source row under a fresh handle.
// Complexity: O(V + E) worst case for the splice and offset shift.
func (s *CSREdges) AddEdge(from, to VertexHandle) EdgeHandle {
	h := s.next
	s.next++
	r := s.row(from)

	// splice at the row's upper boundary
	at := s.offsets[r+1]
	s.cells = append(s.cells, NoEdge)
	copy(s.cells[at+1:], s.cells[at:])
	s.cells[at] = h

	// every subsequent row starts one cell later
	for i := r + 1; i < len(s.offsets); i++ {
		s.offsets[i]++
	}

	s.endpoints[h] = endpoint{from: from, to: to}
	s.incoming[to] = append(s.incoming[to], h)
	return h
}

// RemoveEdge splices e out of its row and backward bucket.
// Returns false if e is not live.
// Complexity: O(V + E) worst case.
func (s *CSREdges) RemoveEdge(e EdgeHandle) bool {
	ep, ok := s.endpoints[e]
	if !ok {
		return false
	}
	r := s.rowOf[ep.from]

	// find and remove the cell within the row span
	lo, hi := s.offsets[r], s.offsets[r+1]
	for i := lo; i < hi; i++ {
		if s.cells[i] == e {
			s.cells = append(s.cells[:i], s.cells[i+1:]...)
			break
		}
	}
	for i := r + 1; i < len(s.offsets); i++ {
		s.offsets[i]--
	}

	// drop from the backward bucket
	bucket := s.incoming[ep.to]
	for i, h := range bucket {
		if h == e {
			s.incoming[ep.to] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(s.incoming[ep.to]) == 0 {
		delete(s.incoming, ep.to)
	}

	delete(s.endpoints, e)
	return true
}

// Endpoints returns the (source, destination) pair of a live edge.
// Complexity: O(1).
func (s *CSREdges) Endpoints(e EdgeHandle) (VertexHandle, VertexHandle, bool) {
	ep, ok := s.endpoints[e]
	if !ok {
		return NoVertex, NoVertex, false
	}
	return ep.from, ep.to, true
}

// Edges returns all live handles in flat row order.
// Complexity: O(E).
func (s *CSREdges) Edges() []EdgeHandle {
	out := make([]EdgeHandle, len(s.cells))
	copy(out, s.cells)
	return out
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (s *CSREdges) EdgeCount() int { return len(s.cells) }

// OutgoingEdges returns the row of v as a copy, in insertion order.
// Complexity: O(outDegree(v)).
func (s *CSREdges) OutgoingEdges(v VertexHandle) []EdgeHandle {
	r, ok := s.rowOf[v]
	if !ok {
		return nil
	}
	span := s.cells[s.offsets[r]:s.offsets[r+1]]
	if len(span) == 0 {
		return nil
	}
	out := make([]EdgeHandle, len(span))
	copy(out, span)
	return out
}

// OutDegree returns the width of v's row.
// Complexity: O(1).
func (s *CSREdges) OutDegree(v VertexHandle) int {
	r, ok := s.rowOf[v]
	if !ok {
		return 0
	}
	return s.offsets[r+1] - s.offsets[r]
}

// IncomingEdges returns the backward bucket of v as a copy.
// Complexity: O(inDegree(v)).
func (s *CSREdges) IncomingEdges(v VertexHandle) []EdgeHandle {
	bucket, ok := s.incoming[v]
	if !ok || len(bucket) == 0 {
		return nil
	}
	out := make([]EdgeHandle, len(bucket))
	copy(out, bucket)
	return out
}

// InDegree returns the size of v's backward bucket.
// Complexity: O(1).
func (s *CSREdges) InDegree(v VertexHandle) int { return len(s.incoming[v]) }

// CloneStore returns an independent deep copy.
// Complexity: O(V + E).
func (s *CSREdges) CloneStore() EdgeStore {
	c := &CSREdges{
		next:      s.next,
		rowOf:     make(map[VertexHandle]int, len(s.rowOf)),
		rowVerts:  make([]VertexHandle, len(s.rowVerts)),
		offsets:   make([]int, len(s.offsets)),
		cells:     make([]EdgeHandle, len(s.cells)),
		endpoints: make(map[EdgeHandle]endpoint, len(s.endpoints)),
		incoming:  make(map[VertexHandle][]EdgeHandle, len(s.incoming)),
	}
	for v, r := range s.rowOf {
		c.rowOf[v] = r
	}
	copy(c.rowVerts, s.rowVerts)
	copy(c.offsets, s.offsets)
	copy(c.cells, s.cells)
	for h, ep := range s.endpoints {
		c.endpoints[h] = ep
	}
	for v, bucket := range s.incoming {
		b := make([]EdgeHandle, len(bucket))
		copy(b, bucket)
		c.incoming[v] = b
	}
	return c
}
