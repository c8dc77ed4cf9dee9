// Package props provides typed, default-valued property maps keyed by
// graph handles.
//
// A property is declared once with NewKey, which fixes its value type and
// default and assigns it a process-unique identity. Property identity is
// per declared key, not per value: two keys with coincidentally equal
// defaults remain distinct slots. Reading an unset property returns the
// key's default, never a failure.
//
// Tables are independent of graph structure: the stores never learn about
// properties, and writing a property never mutates the graph.
package props

import "sync/atomic"

// keyIDs hands out process-unique identities to declared keys.
var keyIDs atomic.Uint64

// Key is a declared property: a value type plus a default.
// The zero Key is not valid; always declare keys with NewKey.
type Key[V any] struct {
	id  uint64
	def V
}

// NewKey declares a property with the given default value and a fresh
// identity. Declare keys once (typically as package-level variables) and
// share them; every NewKey call creates a distinct slot.
// Complexity: O(1).
func NewKey[V any](def V) Key[V] {
	return Key[V]{id: keyIDs.Add(1), def: def}
}

// Default returns the value read for this key when nothing was written.
func (k Key[V]) Default() V { return k.def }

// Table stores heterogeneous property values per handle. H is the handle
// type (core.VertexHandle or core.EdgeHandle); any comparable type works.
//
// Invariants: read-your-writes per (handle, key); handles are fully
// isolated from each other. Removing the owning entity from its graph does
// not purge its slot here — slots are keyed by handle and handles are
// never resurrected, so stale slots are unreachable garbage; call Purge to
// reclaim eagerly.
type Table[H comparable] struct {
	slots map[H]map[uint64]any
}

// NewTable returns an empty property table.
// Complexity: O(1).
func NewTable[H comparable]() *Table[H] {
	return &Table[H]{slots: make(map[H]map[uint64]any)}
}

// Get returns the value written for (h, k), or k's default when unset.
// Complexity: O(1).
func Get[V any, H comparable](t *Table[H], h H, k Key[V]) V {
	if t == nil {
		return k.def
	}
	slot, ok := t.slots[h]
	if !ok {
		return k.def
	}
	raw, ok := slot[k.id]
	if !ok {
		return k.def
	}
	return raw.(V) // safe: k.id is only ever written through Set with the same V
}

// Set writes v for (h, k), overwriting any prior value.
// Complexity: O(1).
func Set[V any, H comparable](t *Table[H], h H, k Key[V], v V) {
	slot, ok := t.slots[h]
	if !ok {
		slot = make(map[uint64]any)
		t.slots[h] = slot
	}
	slot[k.id] = v
}

// Purge drops every property stored for h. Reading after Purge yields
// defaults again.
// Complexity: O(1).
func (t *Table[H]) Purge(h H) {
	delete(t.slots, h)
}

// Len returns the number of handles that currently carry at least one
// written property.
// Complexity: O(1).
func (t *Table[H]) Len() int { return len(t.slots) }

// Clone returns a structurally independent copy. Stored values themselves
// are shared, not deep-copied; treat property values as immutable or copy
// them yourself before mutation.
// Complexity: O(handles × keys).
func (t *Table[H]) Clone() *Table[H] {
	c := NewTable[H]()
	for h, slot := range t.slots {
		cs := make(map[uint64]any, len(slot))
		for id, v := range slot {
			cs[id] = v
		}
		c.slots[h] = cs
	}
	return c
}
