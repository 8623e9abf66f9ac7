package sim

import (
	"math"

	"github.com/plus3/skyraid/asset"
	"github.com/plus3/skyraid/ecs"
	"go.uber.org/zap"
)

// AnimState is the player's animation state.
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimFlying
	AnimBanking
)

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimFlying:
		return "flying"
	case AnimBanking:
		return "banking"
	}
	return "unknown"
}

// FlightClip is the clip every aircraft loops while airborne.
const FlightClip = "fuselage"

// Transition returns the state that follows from, given the tick's intents.
func Transition(from AnimState, in Intents) AnimState {
	switch {
	case in.Left || in.Right:
		return AnimBanking
	case from == AnimIdle && in == (Intents{}):
		return AnimIdle
	}
	return AnimFlying
}

// Animator plays the flight clip for the player. A model without the clip
// leaves the animator inert.
type Animator struct {
	State AnimState
	Time  float64

	clip    asset.Clip
	hasClip bool
}

func newAnimator(p asset.Provider, log *zap.Logger) Animator {
	clip, ok := p.Clip(FlightClip)
	if !ok {
		log.Debug("animation clip missing", zap.String("clip", FlightClip))
	}
	return Animator{clip: clip, hasClip: ok}
}

// Clip returns the resolved clip name, or "" when the model has none.
func (a *Animator) Clip() string {
	if !a.hasClip {
		return ""
	}
	return a.clip.Name
}

// Update advances the state machine and the clip cursor.
func (a *Animator) Update(dt float64, in Intents) {
	a.State = Transition(a.State, in)
	if !a.hasClip || a.clip.Duration <= 0 || a.State == AnimIdle {
		return
	}
	a.Time = math.Mod(a.Time+dt, a.clip.Duration)
}

// Release stops playback.
func (a *Animator) Release() {
	a.State = AnimIdle
	a.Time = 0
	a.hasClip = false
}

// AnimationSystem drives the player animator after the camera has moved.
type AnimationSystem struct {
	world *World
}

func (s *AnimationSystem) Execute(frame *ecs.UpdateFrame) {
	s.world.Animation.Update(frame.DeltaTime, s.world.Input)
}
