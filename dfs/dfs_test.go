package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/dfs"
	"github.com/vertiq/vertiq/visit"
)

// treeFixture builds the reference traversal graph
//
//	Root → {A, B, C}
//	B    → {X, Y, Z}
//	Y    → {N, M}
//
// with edges added left-to-right.
func treeFixture(t *testing.T) (*core.Graph, map[string]core.VertexHandle) {
	t.Helper()
	g := core.New()
	names := []string{"Root", "A", "B", "C", "X", "Y", "Z", "N", "M"}
	v := make(map[string]core.VertexHandle, len(names))
	for _, n := range names {
		v[n] = g.AddVertex()
	}
	for _, pair := range [][2]string{
		{"Root", "A"}, {"Root", "B"}, {"Root", "C"},
		{"B", "X"}, {"B", "Y"}, {"B", "Z"},
		{"Y", "N"}, {"Y", "M"},
	} {
		_, err := g.AddEdge(v[pair[0]], v[pair[1]])
		require.NoError(t, err)
	}
	return g, v
}

func handlesOf(v map[string]core.VertexHandle, names ...string) []core.VertexHandle {
	out := make([]core.VertexHandle, len(names))
	for i, n := range names {
		out[i] = v[n]
	}
	return out
}

func TestDFS_PreAndPostOrder(t *testing.T) {
	g, v := treeFixture(t)

	res, err := dfs.DFS(g, v["Root"])
	require.NoError(t, err)

	assert.Equal(t, handlesOf(v, "Root", "A", "B", "X", "Y", "N", "M", "Z", "C"), res.PreOrder)
	assert.Equal(t, handlesOf(v, "A", "X", "N", "M", "Y", "Z", "B", "C", "Root"), res.PostOrder)
	assert.Empty(t, res.BackEdges, "a tree has no cycles")
}

func TestDFS_DepthsAndParents(t *testing.T) {
	g, v := treeFixture(t)

	res, err := dfs.DFS(g, v["Root"])
	require.NoError(t, err)

	assert.Equal(t, 0, res.Depth[v["Root"]])
	assert.Equal(t, 1, res.Depth[v["B"]])
	assert.Equal(t, 2, res.Depth[v["Y"]])
	assert.Equal(t, 3, res.Depth[v["M"]])

	assert.Equal(t, v["B"], res.Parent[v["X"]])
	assert.Equal(t, v["Y"], res.Parent[v["N"]])
	_, ok := res.Parent[v["Root"]]
	assert.False(t, ok)
}

func TestDFS_BackEdgesWitnessCycles(t *testing.T) {
	g := core.New()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)
	ca, err := g.AddEdge(c, a) // closes the cycle
	require.NoError(t, err)

	res, err := dfs.DFS(g, a)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeHandle{ca}, res.BackEdges)
	assert.Equal(t, []core.VertexHandle{a, b, c}, res.PreOrder)
}

func TestDFS_ForwardOrCrossEdgeClassification(t *testing.T) {
	// diamond: a→b, a→c, b→d, c→d; the second edge into d is forward/cross
	g := core.New()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	d := g.AddVertex()
	for _, pair := range [][2]core.VertexHandle{{a, b}, {a, c}, {b, d}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	cd, err := g.AddEdge(c, d)
	require.NoError(t, err)

	var crosses []core.EdgeHandle
	res, err := dfs.DFS(g, a, dfs.WithVisitor(visit.Visitor{
		ForwardOrCrossEdge: func(e core.EdgeHandle) { crosses = append(crosses, e) },
	}))
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeHandle{cd}, crosses)
	assert.Empty(t, res.BackEdges)
}

func TestDFS_MaxDepth(t *testing.T) {
	g, v := treeFixture(t)

	// depth 1: start plus its direct successors, never expanded further
	res, err := dfs.DFS(g, v["Root"], dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, handlesOf(v, "Root", "A", "B", "C"), res.PreOrder)

	// depth 0: only the start
	res, err = dfs.DFS(g, v["Root"], dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, handlesOf(v, "Root"), res.PreOrder)

	_, err = dfs.DFS(g, v["Root"], dfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_ShouldTraversePrunesSubtree(t *testing.T) {
	g, v := treeFixture(t)
	toB := g.OutgoingEdges(v["Root"])[1] // Root→B

	res, err := dfs.DFS(g, v["Root"], dfs.WithVisitor(visit.Visitor{
		ShouldTraverse: func(e core.EdgeHandle, depth int) bool { return e != toB },
	}))
	require.NoError(t, err)
	assert.Equal(t, handlesOf(v, "Root", "A", "C"), res.PreOrder)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g, v := treeFixture(t)

	res, err := dfs.DFS(g, v["Root"], dfs.WithFilterNeighbor(
		func(curr, neighbor core.VertexHandle) bool { return neighbor != v["Y"] },
	))
	require.NoError(t, err)
	assert.Equal(t, handlesOf(v, "Root", "A", "B", "X", "Z", "C"), res.PreOrder)
}

func TestDFS_UserVisitorFiresBeforeBookkeeping(t *testing.T) {
	g, v := treeFixture(t)

	var discovered []core.VertexHandle
	res, err := dfs.DFS(g, v["Root"], dfs.WithVisitor(visit.Visitor{
		DiscoverVertex: func(vh core.VertexHandle, _ int) { discovered = append(discovered, vh) },
	}))
	require.NoError(t, err)
	assert.Equal(t, res.PreOrder, discovered)
}

func TestDFS_LazyWalker(t *testing.T) {
	g, v := treeFixture(t)

	w, err := dfs.NewWalker(g, v["Root"], dfs.WithPathTracking())
	require.NoError(t, err)

	var order []core.VertexHandle
	for {
		vis, ok := w.Next()
		if !ok {
			break
		}
		order = append(order, vis.Vertex)
		assert.Equal(t, vis.Vertex, vis.Path[len(vis.Path)-1])
		assert.Equal(t, vis.Depth+1, len(vis.Path), "path length tracks depth")
	}
	assert.Equal(t, handlesOf(v, "Root", "A", "B", "X", "Y", "N", "M", "Z", "C"), order)

	_, ok := w.Next()
	assert.False(t, ok)
}

func TestDFS_ArgumentErrors(t *testing.T) {
	g, v := treeFixture(t)

	_, err := dfs.DFS(nil, v["Root"])
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(g, core.VertexHandle(404))
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_ContextCancellation(t *testing.T) {
	g, v := treeFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(g, v["Root"], dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_SelfLoopIsBackEdge(t *testing.T) {
	g := core.New()
	a := g.AddVertex()
	loop, err := g.AddEdge(a, a)
	require.NoError(t, err)

	res, err := dfs.DFS(g, a)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexHandle{a}, res.PreOrder)
	assert.Equal(t, []core.EdgeHandle{loop}, res.BackEdges)
}
