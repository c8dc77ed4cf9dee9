package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/dijkstra"
	"github.com/vertiq/vertiq/props"
	"github.com/vertiq/vertiq/visit"
)

var cost = props.NewKey(1.0)

// weightedFixture builds the reference cost graph
//
//	Root→A(2) Root→B(2) Root→C(2)
//	B→X(2) B→Y(2) B→Z(20) B→A(2)
//	Y→N(2) Y→M(2) Y→Z(2)
//
// storing costs in the graph's edge property table, and returns the graph,
// the named handles, and a WeightFunc reading that table.
func weightedFixture(t *testing.T) (*core.Graph, map[string]core.VertexHandle, dijkstra.WeightFunc) {
	t.Helper()
	g := core.New()
	names := []string{"Root", "A", "B", "C", "X", "Y", "Z", "N", "M"}
	v := make(map[string]core.VertexHandle, len(names))
	for _, n := range names {
		v[n] = g.AddVertex()
	}
	edges := []struct {
		from, to string
		w        float64
	}{
		{"Root", "A", 2}, {"Root", "B", 2}, {"Root", "C", 2},
		{"B", "X", 2}, {"B", "Y", 2}, {"B", "Z", 20}, {"B", "A", 2},
		{"Y", "N", 2}, {"Y", "M", 2}, {"Y", "Z", 2},
	}
	for _, ed := range edges {
		e, err := g.AddEdge(v[ed.from], v[ed.to])
		require.NoError(t, err)
		props.Set(g.EdgeProps(), e, cost, ed.w)
	}
	weight := func(e core.EdgeHandle) float64 {
		return props.Get(g.EdgeProps(), e, cost)
	}
	return g, v, weight
}

func TestDijkstra_ShortestPathCostAndRoute(t *testing.T) {
	g, v, weight := weightedFixture(t)

	res, err := dijkstra.Dijkstra(g, v["Root"], weight)
	require.NoError(t, err)

	path, d, err := res.PathTo(v["Z"])
	require.NoError(t, err)
	assert.Equal(t, 6.0, d, "B→Z(20) must lose to B→Y→Z(2+2)")
	assert.Equal(t, []core.VertexHandle{v["Root"], v["B"], v["Y"], v["Z"]}, path)

	assert.Equal(t, 0.0, res.Dist[v["Root"]])
	assert.Equal(t, 2.0, res.Dist[v["A"]])
	assert.Equal(t, 4.0, res.Dist[v["Y"]])
	assert.Equal(t, 6.0, res.Dist[v["N"]])
}

func TestDijkstra_SettleOrderIsNonDecreasing(t *testing.T) {
	g, v, weight := weightedFixture(t)

	res, err := dijkstra.Dijkstra(g, v["Root"], weight)
	require.NoError(t, err)

	require.Len(t, res.Order, 9, "everything is reachable")
	prev := 0.0
	for _, u := range res.Order {
		d := res.Dist[u]
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
	assert.Equal(t, v["Root"], res.Order[0])
}

func TestDijkstra_WithGoalStopsEarly(t *testing.T) {
	g, v, weight := weightedFixture(t)

	res, err := dijkstra.Dijkstra(g, v["Root"], weight, dijkstra.WithGoal(v["B"]))
	require.NoError(t, err)

	assert.Equal(t, v["B"], res.Order[len(res.Order)-1], "goal settles last")
	assert.Equal(t, 2.0, res.Dist[v["B"]])
	// distance-6 vertices were never settled
	_, ok := res.Dist[v["Z"]]
	assert.False(t, ok)
}

func TestDijkstra_WithMaxDistance(t *testing.T) {
	g, v, weight := weightedFixture(t)

	res, err := dijkstra.Dijkstra(g, v["Root"], weight, dijkstra.WithMaxDistance(4))
	require.NoError(t, err)

	for u, d := range res.Dist {
		assert.LessOrEqual(t, d, 4.0, "vertex %d settled past the cap", u)
	}
	_, ok := res.Dist[v["Z"]] // dist 6
	assert.False(t, ok)
	_, ok = res.Dist[v["Y"]] // dist 4
	assert.True(t, ok)

	_, err = dijkstra.Dijkstra(g, v["Root"], weight, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

func TestDijkstra_LazyWalker(t *testing.T) {
	g, v, weight := weightedFixture(t)

	w, err := dijkstra.NewWalker(g, v["Root"], weight)
	require.NoError(t, err)

	first, ok := w.Next()
	require.True(t, ok)
	assert.Equal(t, v["Root"], first.Vertex)
	assert.Equal(t, core.NoEdge, first.Edge)
	assert.Equal(t, 0, first.Depth)

	// pull until Z settles; its hop depth is the path length, not the cost
	for {
		vis, ok := w.Next()
		require.True(t, ok, "Z must settle before the frontier drains")
		if vis.Vertex == v["Z"] {
			assert.Equal(t, 3, vis.Depth)
			break
		}
	}
	d, ok := w.Dist(v["Z"])
	require.True(t, ok)
	assert.Equal(t, 6.0, d)
}

func TestDijkstra_VisitorObservesSettles(t *testing.T) {
	g, v, weight := weightedFixture(t)

	var settles, relaxWins int
	res, err := dijkstra.Dijkstra(g, v["Root"], weight, dijkstra.WithVisitor(visit.Visitor{
		DiscoverVertex: func(core.VertexHandle, int) { settles++ },
		TreeEdge:       func(core.EdgeHandle) { relaxWins++ },
	}))
	require.NoError(t, err)

	assert.Equal(t, len(res.Order), settles)
	assert.GreaterOrEqual(t, relaxWins, len(res.Order)-1, "every settled vertex but the source was improved at least once")
}

func TestDijkstra_UnreachableDestination(t *testing.T) {
	g := core.New()
	a := g.AddVertex()
	island := g.AddVertex()

	res, err := dijkstra.Dijkstra(g, a, func(core.EdgeHandle) float64 { return 1 })
	require.NoError(t, err)
	assert.Equal(t, []core.VertexHandle{a}, res.Order)

	_, _, err = res.PathTo(island)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g := core.New()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, a, func(core.EdgeHandle) float64 { return 0 })
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist[c])
	assert.Len(t, res.Order, 3)
}

func TestDijkstra_ArgumentErrors(t *testing.T) {
	g, v, weight := weightedFixture(t)

	_, err := dijkstra.Dijkstra(nil, v["Root"], weight)
	assert.ErrorIs(t, err, dijkstra.ErrGraphNil)

	_, err = dijkstra.Dijkstra(g, v["Root"], nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilWeight)

	_, err = dijkstra.Dijkstra(g, core.VertexHandle(404), weight)
	assert.ErrorIs(t, err, dijkstra.ErrSourceNotFound)
}

func TestDijkstra_ContextCancellation(t *testing.T) {
	g, v, weight := weightedFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.Dijkstra(g, v["Root"], weight, dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
