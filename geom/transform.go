package geom

import "github.com/go-gl/mathgl/mgl64"

var (
	// AxisX is the lateral axis banking rotates about.
	AxisX = mgl64.Vec3{1, 0, 0}
	// AxisY is the vertical axis.
	AxisY = mgl64.Vec3{0, 1, 0}
)

// Transform is a translate-rotate-scale transform.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// NewTransform returns a transform at position with identity rotation and unit scale.
func NewTransform(position mgl64.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Matrix returns T * R * S.
func (t Transform) Matrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	scale := mgl64.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return translate.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

// Yaw returns a rotation of angle radians about the vertical axis.
func Yaw(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, AxisY)
}

// Uniform returns a scale vector with every component set to s.
func Uniform(s float64) mgl64.Vec3 {
	return mgl64.Vec3{s, s, s}
}
