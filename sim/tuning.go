package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidTuning is returned by Tuning.Validate.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every fixed constant of the simulation.
type Tuning struct {
	// Player flight
	DefaultSpeed float64    `mapstructure:"defaultSpeed" yaml:"defaultSpeed"`
	MaxSpeed     float64    `mapstructure:"maxSpeed" yaml:"maxSpeed"`
	AccelStep    float64    `mapstructure:"accelStep" yaml:"accelStep"`
	DecelStep    float64    `mapstructure:"decelStep" yaml:"decelStep"`
	MaxTilt      float64    `mapstructure:"maxTilt" yaml:"maxTilt"`
	TiltSpeed    float64    `mapstructure:"tiltSpeed" yaml:"tiltSpeed"`
	StartAlt     float64    `mapstructure:"startAltitude" yaml:"startAltitude"`
	ModelScale   float64    `mapstructure:"modelScale" yaml:"modelScale"`
	HitboxSize   mgl64.Vec3 `mapstructure:"hitboxSize" yaml:"hitboxSize"`
	HitboxOffset mgl64.Vec3 `mapstructure:"hitboxOffset" yaml:"hitboxOffset"`

	// Enemies
	EnemySpeed      float64 `mapstructure:"enemySpeed" yaml:"enemySpeed"`
	EnemyCap        int     `mapstructure:"enemyCap" yaml:"enemyCap"`
	SpawnInterval   float64 `mapstructure:"spawnInterval" yaml:"spawnInterval"`
	SpawnLane       int     `mapstructure:"spawnLane" yaml:"spawnLane"`
	RandomLanes     bool    `mapstructure:"randomLanes" yaml:"randomLanes"`
	MinAltitude     float64 `mapstructure:"minAltitude" yaml:"minAltitude"`
	MaxAltitude     float64 `mapstructure:"maxAltitude" yaml:"maxAltitude"`
	EnemySpacing    float64 `mapstructure:"enemySpacing" yaml:"enemySpacing"`
	EnemyBaseOffset float64 `mapstructure:"enemyBaseOffset" yaml:"enemyBaseOffset"`

	// Projectiles
	ReloadInterval  float64 `mapstructure:"reloadInterval" yaml:"reloadInterval"`
	ProjectileSpeed float64 `mapstructure:"projectileSpeed" yaml:"projectileSpeed"`
	ProjectileTTL   float64 `mapstructure:"projectileTTL" yaml:"projectileTTL"`
	ProjectileSize  float64 `mapstructure:"projectileSize" yaml:"projectileSize"`
	NoseOffset      float64 `mapstructure:"noseOffset" yaml:"noseOffset"`

	// Camera
	CameraOffset       mgl64.Vec3 `mapstructure:"cameraOffset" yaml:"cameraOffset"`
	CameraElasticity   float64    `mapstructure:"cameraElasticity" yaml:"cameraElasticity"`
	CameraOffsetMargin float64    `mapstructure:"cameraOffsetMargin" yaml:"cameraOffsetMargin"`
}

// DefaultTuning returns the stock arcade constants.
func DefaultTuning() Tuning {
	return Tuning{
		DefaultSpeed: 10,
		MaxSpeed:     30,
		AccelStep:    0.25,
		DecelStep:    0.75,
		MaxTilt:      math.Pi / 2 * 0.65,
		TiltSpeed:    0.75,
		StartAlt:     80,
		ModelScale:   2.25,
		HitboxSize:   mgl64.Vec3{4, 0.6, 4},
		HitboxOffset: mgl64.Vec3{-0.3, 0, 0},

		EnemySpeed:      10,
		EnemyCap:        40,
		SpawnInterval:   4,
		SpawnLane:       3,
		MinAltitude:     60,
		MaxAltitude:     90,
		EnemySpacing:    80,
		EnemyBaseOffset: 180,

		ReloadInterval:  0.4,
		ProjectileSpeed: 90,
		ProjectileTTL:   2,
		ProjectileSize:  0.5,
		NoseOffset:      0.5,

		CameraOffset:       mgl64.Vec3{0, 3, 8},
		CameraElasticity:   2,
		CameraOffsetMargin: 8,
	}
}

// Validate rejects constants that would break the speed and bank invariants.
func (t Tuning) Validate() error {
	switch {
	case t.DefaultSpeed < 0 || t.MaxSpeed < t.DefaultSpeed:
		return fmt.Errorf("%w: speed range [%.2f, %.2f]", ErrInvalidTuning, t.DefaultSpeed, t.MaxSpeed)
	case t.AccelStep < 0 || t.DecelStep < 0:
		return fmt.Errorf("%w: negative speed step", ErrInvalidTuning)
	case t.MaxTilt < 0 || t.TiltSpeed < 0:
		return fmt.Errorf("%w: negative tilt", ErrInvalidTuning)
	case t.EnemyCap < 0:
		return fmt.Errorf("%w: enemy cap %d", ErrInvalidTuning, t.EnemyCap)
	case t.MaxAltitude < t.MinAltitude:
		return fmt.Errorf("%w: altitude band [%.2f, %.2f]", ErrInvalidTuning, t.MinAltitude, t.MaxAltitude)
	case t.ProjectileTTL <= 0 || t.ReloadInterval < 0:
		return fmt.Errorf("%w: projectile ttl %.2f reload %.2f", ErrInvalidTuning, t.ProjectileTTL, t.ReloadInterval)
	case t.ModelScale <= 0:
		return fmt.Errorf("%w: model scale %.2f", ErrInvalidTuning, t.ModelScale)
	}
	return nil
}
