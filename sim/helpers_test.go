package sim_test

import (
	"context"
	"errors"
	"testing"

	"github.com/plus3/skyraid/asset"
	"github.com/plus3/skyraid/city"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/scene"
	"github.com/plus3/skyraid/sim"
	"github.com/stretchr/testify/require"
)

// recordingSink wraps a scene.Graph and counts calls per id.
type recordingSink struct {
	*scene.Graph
	adds    map[ecs.EntityId]int
	removes map[ecs.EntityId]int
	byKind  map[ecs.Kind]int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		Graph:   scene.NewGraph(),
		adds:    make(map[ecs.EntityId]int),
		removes: make(map[ecs.EntityId]int),
		byKind:  make(map[ecs.Kind]int),
	}
}

func (r *recordingSink) AddVisual(node scene.Node) {
	r.adds[node.ID]++
	r.byKind[node.Kind]++
	r.Graph.AddVisual(node)
}

func (r *recordingSink) RemoveVisual(node scene.Node) {
	r.removes[node.ID]++
	r.Graph.RemoveVisual(node)
}

type failingLoader struct{}

func (failingLoader) Load(context.Context) (asset.Provider, error) {
	return nil, errors.New("disk on fire")
}

func testLayout() *city.Layout {
	return city.Generate(city.DefaultParams(), city.NewRand("test"))
}

func startGame(t *testing.T, tuning sim.Tuning, input sim.InputProvider, step float64) (*sim.Game, *recordingSink) {
	t.Helper()

	sink := newRecordingSink()
	g, err := sim.NewGame(sim.Options{
		Tuning: tuning,
		Layout: testLayout(),
		Sink:   sink,
		Input:  input,
		Clock:  &sim.ManualClock{Step: step},
		Rand:   city.NewRand("test"),
	})
	require.NoError(t, err)
	require.NoError(t, g.Start(context.Background(), asset.BuiltinLoader{}))
	return g, sink
}

func tick(t *testing.T, g *sim.Game, n int) {
	t.Helper()
	for range n {
		require.NoError(t, g.Tick())
	}
}
