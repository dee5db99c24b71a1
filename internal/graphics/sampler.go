package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"forward-gl/internal/gfx"
)

// Sampler is an OpenGL sampler object holding filter and wrap state.
type Sampler struct {
	ID uint32
}

// NewSampler creates a sampler from the description.
func NewSampler(desc gfx.SamplerDesc) *Sampler {
	var id uint32
	gl.GenSamplers(1, &id)
	gl.SamplerParameteri(id, gl.TEXTURE_MIN_FILTER, filterGL(desc.MinFilter))
	gl.SamplerParameteri(id, gl.TEXTURE_MAG_FILTER, filterGL(desc.MagFilter))
	gl.SamplerParameteri(id, gl.TEXTURE_WRAP_S, wrapGL(desc.WrapS))
	gl.SamplerParameteri(id, gl.TEXTURE_WRAP_T, wrapGL(desc.WrapT))
	return &Sampler{ID: id}
}

// Bind attaches the sampler to a texture unit.
func (s *Sampler) Bind(unit uint32) {
	gl.BindSampler(unit, s.ID)
}

// Release deletes the sampler object.
func (s *Sampler) Release() {
	gl.DeleteSamplers(1, &s.ID)
}

func filterGL(f gfx.Filter) int32 {
	if f == gfx.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrapGL(w gfx.Wrap) int32 {
	if w == gfx.WrapClampToEdge {
		return gl.CLAMP_TO_EDGE
	}
	return gl.REPEAT
}
