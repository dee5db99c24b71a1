package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is a local translate/rotate/scale transform. Rotation is
// Euler angles in radians, applied yaw (Y), then pitch (X), then roll (Z).
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix composes the transform into a 4x4 matrix: T * Ry * Rx * Rz * S.
func (t *Transform) Matrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := mgl32.HomogRotate3DY(t.Rotation.Y()).
		Mul4(mgl32.HomogRotate3DX(t.Rotation.X())).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(rotate).Mul4(scale)
}
