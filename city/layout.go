// Package city generates the static building grid and the flight lanes between its columns.
package city

import (
	"math/rand/v2"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyraid/geom"
)

// Building is a static city block. It never moves after generation.
type Building struct {
	Index    int
	Column   int
	Row      int
	Position mgl64.Vec3
	Size     mgl64.Vec3
	Texture  int
	Bounds   geom.Box
}

// Road is the visual strip laid along a lane.
type Road struct {
	Index    int
	Position mgl64.Vec3
	Width    float64
	Length   float64
}

// Layout is the read-only output of Generate.
type Layout struct {
	Params    Params
	Buildings []Building
	// Lanes holds the distinct lane x-coordinates in ascending order.
	Lanes []float64
	Roads []Road
}

// Generate builds the grid. Only heights and textures depend on rng; positions,
// footprints and lanes are a pure function of params. It never fails: with no
// textures every building uses texture 0.
func Generate(params Params, rng *rand.Rand) *Layout {
	layout := &Layout{
		Params:    params,
		Buildings: make([]Building, 0, params.ColumnsX*params.RowsZ),
	}

	pitch := params.BuildingSize + params.Spacing
	footprint := params.BuildingSize * params.FootprintScale

	for i := 0; i < params.ColumnsX; i++ {
		x := float64(i)*pitch - params.Width*0.5

		for j := 0; j < params.RowsZ; j++ {
			height := params.BaseHeight + rng.Float64()*params.HeightJitter
			texture := 0
			if params.TextureCount > 0 {
				texture = rng.IntN(params.TextureCount)
			}

			z := float64(j)*pitch - params.Depth*0.5 + params.StartZ
			position := mgl64.Vec3{x, height * 0.5, z}
			size := mgl64.Vec3{footprint, height, footprint}

			layout.Buildings = append(layout.Buildings, Building{
				Index:    len(layout.Buildings),
				Column:   i,
				Row:      j,
				Position: position,
				Size:     size,
				Texture:  texture,
				Bounds:   geom.NewBox(position, size),
			})
		}

		if i != params.ColumnsX-1 {
			lane := x + params.BuildingSize*0.5 + params.Spacing*0.5
			if !slices.Contains(layout.Lanes, lane) {
				layout.Lanes = append(layout.Lanes, lane)
			}
		}
	}

	slices.Sort(layout.Lanes)
	layout.Lanes = slices.Compact(layout.Lanes)

	for i, lane := range layout.Lanes {
		layout.Roads = append(layout.Roads, Road{
			Index:    i,
			Position: mgl64.Vec3{lane, 0, params.Depth * -0.5},
			Width:    params.RoadWidth,
			Length:   params.Depth,
		})
	}

	return layout
}

// Lane returns the x-coordinate of lane i, clamped into range. It returns false
// when the layout has no lanes.
func (l *Layout) Lane(i int) (float64, bool) {
	if len(l.Lanes) == 0 {
		return 0, false
	}
	i = max(0, min(i, len(l.Lanes)-1))
	return l.Lanes[i], true
}
