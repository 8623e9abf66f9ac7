package city

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// ErrInvalidParams is returned by Validate for grids that cannot produce a city.
var ErrInvalidParams = errors.New("invalid city params")

// Params are the fixed grid constants a layout is generated from.
type Params struct {
	ColumnsX       int     `mapstructure:"columnsX" yaml:"columnsX"`
	RowsZ          int     `mapstructure:"rowsZ" yaml:"rowsZ"`
	BuildingSize   float64 `mapstructure:"buildingSize" yaml:"buildingSize"`
	FootprintScale float64 `mapstructure:"footprintScale" yaml:"footprintScale"`
	Spacing        float64 `mapstructure:"spacing" yaml:"spacing"`
	Width          float64 `mapstructure:"width" yaml:"width"`
	Depth          float64 `mapstructure:"depth" yaml:"depth"`
	StartZ         float64 `mapstructure:"startZ" yaml:"startZ"`
	BaseHeight     float64 `mapstructure:"baseHeight" yaml:"baseHeight"`
	HeightJitter   float64 `mapstructure:"heightJitter" yaml:"heightJitter"`
	TextureCount   int     `mapstructure:"textureCount" yaml:"textureCount"`
	RoadWidth      float64 `mapstructure:"roadWidth" yaml:"roadWidth"`
	Seed           string  `mapstructure:"seed" yaml:"seed"`
}

// DefaultParams returns the stock 8x26 city.
func DefaultParams() Params {
	return Params{
		ColumnsX:       8,
		RowsZ:          26,
		BuildingSize:   16,
		FootprintScale: 1.5,
		Spacing:        38,
		Width:          378,
		Depth:          3000,
		StartZ:         120,
		BaseHeight:     55,
		HeightJitter:   50,
		TextureCount:   4,
		RoadWidth:      28,
		Seed:           "skyraid",
	}
}

// Validate reports params that would produce an empty or degenerate grid.
func (p Params) Validate() error {
	switch {
	case p.ColumnsX < 1 || p.RowsZ < 1:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidParams, p.ColumnsX, p.RowsZ)
	case p.BuildingSize <= 0 || p.FootprintScale <= 0:
		return fmt.Errorf("%w: building size %.2f x %.2f", ErrInvalidParams, p.BuildingSize, p.FootprintScale)
	case p.Spacing < 0 || p.HeightJitter < 0 || p.BaseHeight <= 0:
		return fmt.Errorf("%w: spacing/height must be positive", ErrInvalidParams)
	case p.TextureCount < 1:
		return fmt.Errorf("%w: texture count %d", ErrInvalidParams, p.TextureCount)
	}
	return nil
}

// NewRand returns the generator for a seed string. Equal seeds yield equal layouts.
func NewRand(seed string) *rand.Rand {
	h := xxhash.Sum64String(seed)
	return rand.New(rand.NewPCG(h, h^0x9e3779b97f4a7c15))
}
