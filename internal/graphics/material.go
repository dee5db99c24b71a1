package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"forward-gl/internal/gfx"
)

// Material combines a shader, optional texture and sampler, a tint, and
// pipeline state. It is the GL-backed implementation of gfx.Material; the
// kind tag drives the renderer's binding path.
type Material struct {
	shader      *Shader
	texture     *Texture
	sampler     *Sampler
	pipeline    gfx.PipelineState
	tint        mgl32.Vec4
	kind        gfx.MaterialKind
	transparent bool
}

// NewMaterial builds a material from the description. Shader, Texture,
// and Sampler must be the GL-backed types from this package.
func NewMaterial(desc gfx.MaterialDesc) *Material {
	m := &Material{
		pipeline:    desc.Pipeline,
		tint:        desc.Tint,
		kind:        desc.Kind,
		transparent: desc.Transparent,
	}
	if desc.Shader != nil {
		m.shader = desc.Shader.(*Shader)
	}
	if desc.Texture != nil {
		m.texture = desc.Texture.(*Texture)
	}
	if desc.Sampler != nil {
		m.sampler = desc.Sampler.(*Sampler)
	}
	return m
}

// Setup applies the pipeline state, activates the shader, and binds the
// tint and texture unit 0.
func (m *Material) Setup() {
	applyPipelineState(m.pipeline)
	m.shader.Use()
	m.shader.SetVec4("tint", m.tint)
	if m.texture != nil {
		gl.ActiveTexture(gl.TEXTURE0)
		m.texture.Bind()
		if m.sampler != nil {
			m.sampler.Bind(0)
		}
		m.shader.SetInt("tex", 0)
	}
}

// Shader returns the material's shader program.
func (m *Material) Shader() gfx.Shader {
	return m.shader
}

// Kind returns the material's kind tag.
func (m *Material) Kind() gfx.MaterialKind {
	return m.kind
}

// Transparent reports whether draws need back-to-front ordering.
func (m *Material) Transparent() bool {
	return m.transparent
}

// Release drops the material. The shader, texture, and sampler are owned
// and released by whoever created them.
func (m *Material) Release() {}
