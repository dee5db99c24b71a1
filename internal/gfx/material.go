package gfx

import "github.com/go-gl/mathgl/mgl32"

// MaterialKind tags the binding path a material needs. Lit materials are
// handed the model matrix and the light set separately; every other kind
// receives a single precombined transform.
type MaterialKind uint8

const (
	MaterialLit MaterialKind = iota
	MaterialUnlit
	MaterialSky
	MaterialPostProcess
)

// Material is the capability every drawable surface exposes: apply its
// pipeline state and bind its shader, texture, and sampler.
type Material interface {
	Setup()
	Shader() Shader
	Kind() MaterialKind
	Transparent() bool
	Release()
}

// MaterialDesc describes a material to create. Texture and Sampler are
// optional; Tint is bound as the "tint" uniform when a shader declares it.
type MaterialDesc struct {
	Kind        MaterialKind
	Shader      Shader
	Texture     Texture
	Sampler     Sampler
	Pipeline    PipelineState
	Tint        mgl32.Vec4
	Transparent bool
}
