package scene

import "github.com/go-gl/mathgl/mgl32"

// ProjectionKind selects between perspective and orthographic projection.
type ProjectionKind uint8

const (
	Perspective ProjectionKind = iota
	Orthographic
)

// Camera is the camera component. The view matrix derives from the owning
// entity's world transform; the projection is parameterized by the output
// size so the renderer can react to resizes without touching the camera.
type Camera struct {
	Projection  ProjectionKind
	FOV         float32 // vertical field of view in radians (perspective)
	Near        float32
	Far         float32
	OrthoHeight float32 // visible height in world units (orthographic); also sizes the sky sphere
}

// NewCamera returns a perspective camera with common defaults.
func NewCamera() *Camera {
	return &Camera{
		Projection:  Perspective,
		FOV:         mgl32.DegToRad(60),
		Near:        0.01,
		Far:         1000,
		OrthoHeight: 10,
	}
}

// ViewMatrix builds the view matrix from the owner's world transform:
// eye at the transformed origin, looking down the transformed -Z axis,
// with the transformed +Y as up.
func (c *Camera) ViewMatrix(owner *Entity) mgl32.Mat4 {
	m := owner.LocalToWorld()
	eye := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	center := m.Mul4x1(mgl32.Vec4{0, 0, -1, 1}).Vec3()
	up := m.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	return mgl32.LookAtV(eye, center, up)
}

// ProjectionMatrix builds the projection matrix for the given output size.
func (c *Camera) ProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	if c.Projection == Orthographic {
		h := c.OrthoHeight
		w := h * aspect
		return mgl32.Ortho(-w/2, w/2, -h/2, h/2, c.Near, c.Far)
	}
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}
