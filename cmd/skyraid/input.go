package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/skyraid/sim"
)

// keyboardInput maps held keys to intents. It is read on the ebiten update
// goroutine, the same one that ticks the simulation.
type keyboardInput struct {
	// captured reports whether the debug overlay owns the keyboard.
	captured func() bool
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (k *keyboardInput) Snapshot() sim.Intents {
	if k.captured != nil && k.captured() {
		return sim.Intents{}
	}
	return sim.Intents{
		Forward:    anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Backward:   anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:       anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:      anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Shoot:      anyPressed(ebiten.KeySpace),
		Accelerate: anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),
	}
}
