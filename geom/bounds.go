package geom

import "github.com/go-gl/mathgl/mgl64"

// Bounds pairs a box in local (model) space with its world-space projection.
// The local box is computed once; World is refreshed in place every frame.
type Bounds struct {
	Local Box
	World Box
}

// NewBounds creates bounds for a local box. World stays empty until the first refresh.
func NewBounds(local Box) Bounds {
	return Bounds{Local: local, World: EmptyBox()}
}

// RefreshBounds recomputes the world box from the cached local box and the current world transform.
func (b *Bounds) RefreshBounds(transform mgl64.Mat4) {
	b.World = b.Local.Transform(transform)
}

// Union returns the world box enclosing every part.
func Union(parts []Bounds) Box {
	out := EmptyBox()
	for i := range parts {
		out = out.Union(parts[i].World)
	}
	return out
}
