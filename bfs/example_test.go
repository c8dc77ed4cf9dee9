package bfs_test

import (
	"fmt"

	"github.com/vertiq/vertiq/bfs"
	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/props"
)

// ExampleBFS demonstrates level-order traversal of a small tree with the
// vertex names carried as properties.
func ExampleBFS() {
	g := core.New()
	name := props.NewKey("?")

	add := func(n string) core.VertexHandle {
		v := g.AddVertex()
		props.Set(g.VertexProps(), v, name, n)
		return v
	}
	root, a, b, c := add("root"), add("a"), add("b"), add("c")
	x, y := add("x"), add("y")

	g.AddEdge(root, a)
	g.AddEdge(root, b)
	g.AddEdge(root, c)
	g.AddEdge(b, x)
	g.AddEdge(b, y)

	res, err := bfs.BFS(g, root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Order {
		fmt.Printf("%s@%d ", props.Get(g.VertexProps(), v, name), res.Depth[v])
	}
	fmt.Println()
	// Output:
	// root@0 a@1 b@1 c@1 x@2 y@2
}

// ExampleWalker shows lazy pulling: the traversal advances only as far as
// the consumer asks.
func ExampleWalker() {
	g := core.New()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	w, err := bfs.NewWalker(g, a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// take just the first two frontier vertices, then stop
	for i := 0; i < 2; i++ {
		v, ok := w.Next()
		if !ok {
			break
		}
		fmt.Println(v.Vertex, "at depth", v.Depth)
	}
	// Output:
	// 0 at depth 0
	// 1 at depth 1
}
