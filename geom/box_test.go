package geom_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyraid/geom"
	"github.com/stretchr/testify/assert"
)

func vecInDelta(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d: want %v, got %v", i, want, got)
	}
}

func TestBoxIntersects(t *testing.T) {
	a := geom.NewBox(mgl64.Vec3{}, mgl64.Vec3{2, 2, 2})

	tests := []struct {
		name string
		b    geom.Box
		want bool
	}{
		{"overlapping", geom.NewBox(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{2, 2, 2}), true},
		{"touching faces", geom.NewBox(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{2, 2, 2}), true},
		{"separated on x", geom.NewBox(mgl64.Vec3{3, 0, 0}, mgl64.Vec3{1.9, 2, 2}), false},
		{"separated on z", geom.NewBox(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{2, 2, 2}), false},
		{"contained", geom.NewBox(mgl64.Vec3{}, mgl64.Vec3{0.5, 0.5, 0.5}), true},
		{"empty", geom.EmptyBox(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a))
		})
	}
}

func TestBoxUnion(t *testing.T) {
	a := geom.NewBox(mgl64.Vec3{}, mgl64.Vec3{2, 2, 2})
	b := geom.NewBox(mgl64.Vec3{4, 0, 0}, mgl64.Vec3{2, 2, 2})

	u := a.Union(b)
	assert.Equal(t, mgl64.Vec3{-1, -1, -1}, u.Min)
	assert.Equal(t, mgl64.Vec3{5, 1, 1}, u.Max)

	assert.Equal(t, a, a.Union(geom.EmptyBox()))
	assert.Equal(t, a, geom.EmptyBox().Union(a))
	assert.True(t, geom.EmptyBox().IsEmpty())
	assert.Equal(t, mgl64.Vec3{}, geom.EmptyBox().Size())
}

func TestBoxTransform(t *testing.T) {
	local := geom.NewBox(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{4, 1, 2})

	t.Run("translate and scale", func(t *testing.T) {
		tr := geom.NewTransform(mgl64.Vec3{10, 20, 30})
		tr.Scale = geom.Uniform(2)

		world := local.Transform(tr.Matrix())
		vecInDelta(t, mgl64.Vec3{12, 20, 30}, world.Center())
		vecInDelta(t, mgl64.Vec3{8, 2, 4}, world.Size())
	})

	t.Run("yaw swaps horizontal extents", func(t *testing.T) {
		tr := geom.NewTransform(mgl64.Vec3{})
		tr.Rotation = geom.Yaw(math.Pi / 2)

		world := local.Transform(tr.Matrix())
		vecInDelta(t, mgl64.Vec3{2, 1, 4}, world.Size())
		vecInDelta(t, mgl64.Vec3{0, 0, -1}, world.Center())
	})

	t.Run("empty stays empty", func(t *testing.T) {
		assert.True(t, geom.EmptyBox().Transform(mgl64.Ident4()).IsEmpty())
	})
}

func TestBoundsRefresh(t *testing.T) {
	b := geom.NewBounds(geom.NewBox(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}))
	assert.True(t, b.World.IsEmpty())

	b.RefreshBounds(mgl64.Translate3D(5, 0, 0))
	vecInDelta(t, mgl64.Vec3{5, 0, 0}, b.World.Center())

	b.RefreshBounds(mgl64.Translate3D(-5, 0, 0))
	vecInDelta(t, mgl64.Vec3{-5, 0, 0}, b.World.Center())
	vecInDelta(t, mgl64.Vec3{1, 1, 1}, b.Local.Size())

	u := geom.Union([]geom.Bounds{b, geom.NewBounds(b.Local)})
	vecInDelta(t, b.World.Min, u.Min)
}
