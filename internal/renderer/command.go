package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"forward-gl/internal/gfx"
)

// Command is one draw call collected during scene traversal. Commands
// live in per-frame buffers that are cleared and repopulated each frame;
// they must not be retained across frames.
type Command struct {
	LocalToWorld mgl32.Mat4
	Center       mgl32.Vec3
	Mesh         gfx.Mesh
	Material     gfx.Material
}
