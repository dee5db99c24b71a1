package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"forward-gl/internal/gfx"
)

// MeshRenderer attaches drawable geometry and its material to an entity.
type MeshRenderer struct {
	Mesh     gfx.Mesh
	Material gfx.Material
}

// DirectionalLight is a light with a fixed world-space direction and no
// position. The renderer never rewrites its fields.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Intensity float32
	Color     mgl32.Vec3
}

// SpotLight is a positional light with distance decay. WorldPosition is a
// cache the renderer overwrites from the owner's transform on every
// traversal; it is valid only as of the last traversal.
type SpotLight struct {
	Intensity float32
	Color     mgl32.Vec3
	Decay     float32

	WorldPosition mgl32.Vec3
}

// ConeLight is a positional light with a direction and angular falloff.
// Direction is authored in the owner's local space; WorldPosition and
// WorldDirection are caches the renderer overwrites on every traversal
// (direction is rotated, never translated). Valid only as of the last
// traversal. An entity may carry several cone lights.
type ConeLight struct {
	Direction mgl32.Vec3
	Intensity float32
	Color     mgl32.Vec3
	Range     float32
	Smoothing float32
	Decay     float32

	WorldPosition  mgl32.Vec3
	WorldDirection mgl32.Vec3
}
