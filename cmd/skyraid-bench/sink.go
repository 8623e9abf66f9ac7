package main

import (
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/scene"
	"github.com/plus3/skyraid/sim"
)

// countingSink is a scene graph that also tallies additions per kind.
type countingSink struct {
	*scene.Graph
	added   map[ecs.Kind]int
	impacts int
}

func newCountingSink() *countingSink {
	return &countingSink{
		Graph: scene.NewGraph(),
		added: make(map[ecs.Kind]int),
	}
}

func (s *countingSink) AddVisual(node scene.Node) {
	s.added[node.Kind]++
	s.Graph.AddVisual(node)
}

func (s *countingSink) impact(sim.Contact) {
	s.impacts++
}
