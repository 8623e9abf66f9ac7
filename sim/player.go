package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyraid/geom"
)

const (
	// playerYaw turns the model's +X nose to face -Z.
	playerYaw = math.Pi / 2
	// bankEpsilon is how close to level the bank must be before a turn may
	// translate the aircraft while still rolling toward the new side.
	bankEpsilon = 0.01
)

// Forward is the fixed world-space flight direction.
var Forward = mgl64.Vec3{0, 0, -1}

// Player is the singleton aircraft.
type Player struct {
	Position mgl64.Vec3
	// Bank is the signed roll in radians; positive banks right.
	Bank        float64
	Speed       float64
	Orientation mgl64.Quat
	Scale       float64
	Hitbox      geom.Bounds
}

func newPlayer(t Tuning) *Player {
	p := &Player{
		Position: mgl64.Vec3{0, t.StartAlt, 0},
		Speed:    t.DefaultSpeed,
		Scale:    t.ModelScale,
		Hitbox:   geom.NewBounds(geom.NewBox(t.HitboxOffset, t.HitboxSize)),
	}
	p.orient()
	p.RefreshBounds()
	return p
}

// Integrate applies one frame of input: climb/dive, roll-then-turn, speed ramp
// and orientation. Forward drift is applied separately by Drift.
func (p *Player) Integrate(dt float64, in Intents, t Tuning) {
	if in.Forward {
		p.Position[1] += p.Speed * dt
	}
	if in.Backward {
		p.Position[1] -= p.Speed * dt
	}

	if in.Left {
		p.turn(-1, dt, t)
	}
	if in.Right {
		p.turn(1, dt, t)
	}
	if !in.Left && !in.Right {
		p.Bank = approachZero(p.Bank, t.TiltSpeed*dt)
	}

	if in.Accelerate {
		p.Speed = math.Min(p.Speed+t.AccelStep, t.MaxSpeed)
	} else {
		p.Speed = math.Max(p.Speed-t.DecelStep, t.DefaultSpeed)
	}

	p.orient()
}

// turn rolls toward direction (-1 left, +1 right). While banked to the other
// side the roll unwinds at double rate and the aircraft does not move sideways.
func (p *Player) turn(direction, dt float64, t Tuning) {
	if (direction < 0 && p.Bank > 0) || (direction > 0 && p.Bank < 0) {
		p.Bank = approachZero(p.Bank, t.TiltSpeed*2*dt)
		return
	}

	p.Bank = mgl64.Clamp(p.Bank+direction*t.TiltSpeed*dt, -t.MaxTilt, t.MaxTilt)

	if math.Abs(p.Bank) < bankEpsilon || sign(p.Bank) == direction {
		p.Position[0] += direction * p.Speed * 2 * dt
	}
}

// Drift advances the aircraft along Forward.
func (p *Player) Drift(dt float64) {
	p.Position = p.Position.Add(Forward.Mul(p.Speed * dt))
}

// orient resets the rotation to the base yaw and reapplies the bank about the
// model's lateral axis.
func (p *Player) orient() {
	p.Orientation = geom.Yaw(playerYaw).Mul(mgl64.QuatRotate(p.Bank, geom.AxisX))
}

// Transform returns the player's world transform.
func (p *Player) Transform() geom.Transform {
	return geom.Transform{
		Position: p.Position,
		Rotation: p.Orientation,
		Scale:    geom.Uniform(p.Scale),
	}
}

// RefreshBounds recomputes the hitbox from the current transform.
func (p *Player) RefreshBounds() {
	p.Hitbox.RefreshBounds(p.Transform().Matrix())
}

// Nose returns the muzzle position offset ahead of the aircraft.
func (p *Player) Nose(offset float64) mgl64.Vec3 {
	return p.Position.Add(Forward.Mul(offset))
}

func approachZero(v, step float64) float64 {
	if v > 0 {
		return math.Max(v-step, 0)
	}
	if v < 0 {
		return math.Min(v+step, 0)
	}
	return 0
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
