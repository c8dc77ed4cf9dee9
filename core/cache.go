package core

// CacheInOutEdges decorates any EdgeStore with memoized per-vertex
// outgoing and incoming edge lists, turning incidence queries into O(1)
// lookups regardless of the wrapped store's scan cost.
//
// The cache is hydrated eagerly from the wrapped store at construction and
// kept consistent on every AddEdge/RemoveEdge routed through the decorator.
// Mutating the wrapped store directly bypasses the cache and breaks it;
// always go through the decorator once it is installed.
type CacheInOutEdges struct {
	inner EdgeStore
	out   map[VertexHandle][]EdgeHandle
	in    map[VertexHandle][]EdgeHandle
}

var _ EdgeStore = (*CacheInOutEdges)(nil)

// NewCacheInOutEdges wraps inner, hydrating both directions from its
// current contents.
// Complexity: O(E).
func NewCacheInOutEdges(inner EdgeStore) *CacheInOutEdges {
	c := &CacheInOutEdges{
		inner: inner,
		out:   make(map[VertexHandle][]EdgeHandle),
		in:    make(map[VertexHandle][]EdgeHandle),
	}
	for _, e := range inner.Edges() {
		from, to, _ := inner.Endpoints(e)
		c.out[from] = append(c.out[from], e)
		c.in[to] = append(c.in[to], e)
	}
	return c
}

// AddEdge delegates to the wrapped store and extends both cached views.
// Complexity: wrapped AddEdge + O(1).
func (c *CacheInOutEdges) AddEdge(from, to VertexHandle) EdgeHandle {
	e := c.inner.AddEdge(from, to)
	c.out[from] = append(c.out[from], e)
	c.in[to] = append(c.in[to], e)
	return e
}

// RemoveEdge delegates to the wrapped store and splices both cached views.
// Returns false if e is not live.
// Complexity: wrapped RemoveEdge + O(degree).
func (c *CacheInOutEdges) RemoveEdge(e EdgeHandle) bool {
	from, to, ok := c.inner.Endpoints(e)
	if !ok {
		return false
	}
	if !c.inner.RemoveEdge(e) {
		return false
	}
	c.out[from] = spliceEdge(c.out[from], e)
	if len(c.out[from]) == 0 {
		delete(c.out, from)
	}
	c.in[to] = spliceEdge(c.in[to], e)
	if len(c.in[to]) == 0 {
		delete(c.in, to)
	}
	return true
}

// spliceEdge removes the first occurrence of e from list in place.
func spliceEdge(list []EdgeHandle, e EdgeHandle) []EdgeHandle {
	for i, h := range list {
		if h == e {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Endpoints delegates to the wrapped store.
func (c *CacheInOutEdges) Endpoints(e EdgeHandle) (VertexHandle, VertexHandle, bool) {
	return c.inner.Endpoints(e)
}

// Edges delegates to the wrapped store, preserving its iteration order.
func (c *CacheInOutEdges) Edges() []EdgeHandle { return c.inner.Edges() }

// EdgeCount delegates to the wrapped store.
func (c *CacheInOutEdges) EdgeCount() int { return c.inner.EdgeCount() }

// OutgoingEdges returns a copy of the cached forward list of v.
// Complexity: O(outDegree(v)) for the copy.
func (c *CacheInOutEdges) OutgoingEdges(v VertexHandle) []EdgeHandle {
	cached := c.out[v]
	if len(cached) == 0 {
		return nil
	}
	out := make([]EdgeHandle, len(cached))
	copy(out, cached)
	return out
}

// OutDegree returns the cached forward list length.
// Complexity: O(1).
func (c *CacheInOutEdges) OutDegree(v VertexHandle) int { return len(c.out[v]) }

// IncomingEdges returns a copy of the cached backward list of v.
// Complexity: O(inDegree(v)) for the copy.
func (c *CacheInOutEdges) IncomingEdges(v VertexHandle) []EdgeHandle {
	cached := c.in[v]
	if len(cached) == 0 {
		return nil
	}
	out := make([]EdgeHandle, len(cached))
	copy(out, cached)
	return out
}

// InDegree returns the cached backward list length.
// Complexity: O(1).
func (c *CacheInOutEdges) InDegree(v VertexHandle) int { return len(c.in[v]) }

// CloneStore deep-copies the wrapped store and both cached views.
// Complexity: O(V + E).
func (c *CacheInOutEdges) CloneStore() EdgeStore {
	clone := &CacheInOutEdges{
		inner: c.inner.CloneStore(),
		out:   make(map[VertexHandle][]EdgeHandle, len(c.out)),
		in:    make(map[VertexHandle][]EdgeHandle, len(c.in)),
	}
	for v, list := range c.out {
		l := make([]EdgeHandle, len(list))
		copy(l, list)
		clone.out[v] = l
	}
	for v, list := range c.in {
		l := make([]EdgeHandle, len(list))
		copy(l, list)
		clone.in[v] = l
	}
	return clone
}
