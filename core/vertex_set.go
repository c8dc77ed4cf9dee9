package core

import "sort"

// VertexSet owns the set of live vertex handles.
//
// Identities are assigned from a monotonically increasing counter and are
// never reused: once a handle is removed it stays dead forever, so a stale
// handle can never alias a later vertex.
//
// Determinism: Handles() returns live handles in ascending order, which —
// because assignment is monotonic — equals insertion order.
type VertexSet struct {
	next  VertexHandle
	live  map[VertexHandle]struct{}
	order []VertexHandle // live handles, ascending
}

// NewVertexSet returns an empty VertexSet.
// Complexity: O(1).
func NewVertexSet() *VertexSet {
	return &VertexSet{
		live: make(map[VertexHandle]struct{}),
	}
}

// Add issues a fresh vertex handle.
// Complexity: O(1) amortized.
func (s *VertexSet) Add() VertexHandle {
	h := s.next
	s.next++
	s.live[h] = struct{}{}
	s.order = append(s.order, h) // monotonic issue keeps order sorted
	return h
}

// Remove deletes v from the set. Returns false if v is not live.
// The identity is retired permanently.
// Complexity: O(log V) search + O(V) splice.
func (s *VertexSet) Remove(v VertexHandle) bool {
	if _, ok := s.live[v]; !ok {
		return false
	}
	delete(s.live, v)
	i := sort.Search(len(s.order), func(i int) bool { return s.order[i] >= v })
	s.order = append(s.order[:i], s.order[i+1:]...)
	return true
}

// Contains reports whether v is live.
// Complexity: O(1).
func (s *VertexSet) Contains(v VertexHandle) bool {
	_, ok := s.live[v]
	return ok
}

// Handles returns a copy of all live handles in ascending order.
// Complexity: O(V).
func (s *VertexSet) Handles() []VertexHandle {
	out := make([]VertexHandle, len(s.order))
	copy(out, s.order)
	return out
}

// Count returns the number of live vertices.
// Complexity: O(1).
func (s *VertexSet) Count() int { return len(s.live) }

// Clone returns an independent copy of the set, preserving the identity
// counter so clones keep issuing non-aliasing handles.
// Complexity: O(V).
func (s *VertexSet) Clone() *VertexSet {
	c := &VertexSet{
		next: s.next,
		live: make(map[VertexHandle]struct{}, len(s.live)),
	}
	for h := range s.live {
		c.live[h] = struct{}{}
	}
	c.order = make([]VertexHandle, len(s.order))
	copy(c.order, s.order)
	return c
}
