package gfx

import "github.com/go-gl/mathgl/mgl32"

// Mesh is uploaded geometry that can be drawn with the currently bound
// shader and pipeline state.
type Mesh interface {
	Draw()
	Release()
}

// Texture is an opaque GPU texture handle. Contents come either from an
// image file or from render-target allocation.
type Texture interface {
	Release()
}

// TextureFormat selects the storage format for render-target textures.
type TextureFormat uint8

const (
	// FormatRGBA8 is 8 bits per channel color.
	FormatRGBA8 TextureFormat = iota
	// FormatDepth24 is a 24-bit depth component.
	FormatDepth24
)

// Sampler holds filtering and wrapping state, bound alongside a texture.
type Sampler interface {
	Release()
}

// Filter selects texture filtering for a sampler.
type Filter uint8

const (
	FilterLinear Filter = iota
	FilterNearest
)

// Wrap selects the addressing mode outside [0,1] texture coordinates.
type Wrap uint8

const (
	WrapRepeat Wrap = iota
	WrapClampToEdge
)

// SamplerDesc describes a sampler to create.
type SamplerDesc struct {
	MinFilter Filter
	MagFilter Filter
	WrapS     Wrap
	WrapT     Wrap
}

// Shader is a linked shader program. Uniform setters address uniforms by
// name; unknown names are silently ignored, matching GL semantics.
type Shader interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	Release()
}

// Framebuffer is an offscreen render target with color and depth
// attachments. Bind makes it the active draw target until the default
// framebuffer is rebound.
type Framebuffer interface {
	Bind()
	Release()
}

// VertexArray is a vertex-source object. The renderer uses an empty one
// for the fullscreen triangle, whose vertices are generated in the vertex
// shader from gl_VertexID.
type VertexArray interface {
	Bind()
	Release()
}
