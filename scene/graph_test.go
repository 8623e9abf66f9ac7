package scene_test

import (
	"testing"

	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	g := scene.NewGraph()
	a := scene.Node{ID: ecs.NewEntityId(1, 0, 0), Kind: 1}
	b := scene.Node{ID: ecs.NewEntityId(2, 0, 0), Kind: 2}
	c := scene.Node{ID: ecs.NewEntityId(2, 0, 1), Kind: 2}

	g.AddVisual(a)
	g.AddVisual(b)
	g.AddVisual(c)
	require.Equal(t, 3, g.Len())
	assert.Equal(t, 2, g.CountKind(2))

	g.RemoveVisual(a)
	assert.False(t, g.Has(a.ID))
	assert.True(t, g.Has(b.ID))
	assert.True(t, g.Has(c.ID))

	got, ok := g.Get(c.ID)
	require.True(t, ok)
	assert.Equal(t, c, got)

	g.RemoveVisual(a)
	added, removed, duplicates := g.Stats()
	assert.Equal(t, 3, added)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, duplicates)
}

func TestGraphReplace(t *testing.T) {
	g := scene.NewGraph()
	id := ecs.NewEntityId(3, 0, 7)

	g.AddVisual(scene.Node{ID: id, Variant: 1})
	g.AddVisual(scene.Node{ID: id, Variant: 2})

	assert.Equal(t, 1, g.Len())
	n, _ := g.Get(id)
	assert.Equal(t, 2, n.Variant)
}
