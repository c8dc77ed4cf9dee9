package props_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vertiq/vertiq/core"
	"github.com/vertiq/vertiq/props"
)

func TestProps_DefaultUntilWritten(t *testing.T) {
	weight := props.NewKey(1.0)
	name := props.NewKey("unnamed")

	tbl := props.NewTable[core.VertexHandle]()
	v := core.VertexHandle(3)

	assert.Equal(t, 1.0, props.Get(tbl, v, weight))
	assert.Equal(t, "unnamed", props.Get(tbl, v, name))
	assert.Equal(t, 1.0, weight.Default())

	props.Set(tbl, v, weight, 2.5)
	assert.Equal(t, 2.5, props.Get(tbl, v, weight))
	assert.Equal(t, "unnamed", props.Get(tbl, v, name), "other keys unaffected")

	// overwrite
	props.Set(tbl, v, weight, -7.0)
	assert.Equal(t, -7.0, props.Get(tbl, v, weight))
}

func TestProps_KeysWithEqualDefaultsStayDistinct(t *testing.T) {
	a := props.NewKey(0)
	b := props.NewKey(0)

	tbl := props.NewTable[core.EdgeHandle]()
	e := core.EdgeHandle(1)

	props.Set(tbl, e, a, 10)
	assert.Equal(t, 10, props.Get(tbl, e, a))
	assert.Equal(t, 0, props.Get(tbl, e, b), "identity is per key, not per default")
}

func TestProps_HandlesAreIsolated(t *testing.T) {
	tag := props.NewKey("")
	tbl := props.NewTable[core.VertexHandle]()

	props.Set(tbl, 1, tag, "one")
	props.Set(tbl, 2, tag, "two")

	assert.Equal(t, "one", props.Get(tbl, 1, tag))
	assert.Equal(t, "two", props.Get(tbl, 2, tag))
	assert.Equal(t, "", props.Get(tbl, 3, tag))
	assert.Equal(t, 2, tbl.Len())
}

func TestProps_PurgeRestoresDefaults(t *testing.T) {
	cap := props.NewKey(100)
	tbl := props.NewTable[core.EdgeHandle]()

	props.Set(tbl, 5, cap, 42)
	tbl.Purge(5)
	assert.Equal(t, 100, props.Get(tbl, 5, cap))
	assert.Equal(t, 0, tbl.Len())

	// purging an untouched handle is a no-op
	tbl.Purge(9)
}

func TestProps_NilTableReadsDefaults(t *testing.T) {
	color := props.NewKey("white")
	var tbl *props.Table[core.VertexHandle]
	assert.Equal(t, "white", props.Get(tbl, 1, color))
}

func TestProps_CloneIsStructurallyIndependent(t *testing.T) {
	rank := props.NewKey(0)
	tbl := props.NewTable[core.VertexHandle]()
	props.Set(tbl, 1, rank, 7)

	c := tbl.Clone()
	props.Set(c, 1, rank, 99)
	props.Set(c, 2, rank, 1)

	assert.Equal(t, 7, props.Get(tbl, 1, rank))
	assert.Equal(t, 0, props.Get(tbl, 2, rank))
	assert.Equal(t, 99, props.Get(c, 1, rank))
}

func TestProps_StructValues(t *testing.T) {
	type coord struct{ X, Y float64 }
	pos := props.NewKey(coord{})

	tbl := props.NewTable[core.VertexHandle]()
	props.Set(tbl, 4, pos, coord{X: 1, Y: 2})

	got := props.Get(tbl, 4, pos)
	assert.Equal(t, coord{X: 1, Y: 2}, got)
	assert.Equal(t, coord{}, props.Get(tbl, 5, pos))
}
