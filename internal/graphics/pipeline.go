package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"forward-gl/internal/gfx"
)

// applyPipelineState pushes the material's fixed-function state into the
// GL context. Called from Material.Setup before every draw; the renderer
// never restores state, the next material overwrites it.
func applyPipelineState(ps gfx.PipelineState) {
	if ps.FaceCulling.Enabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(cullFaceGL(ps.FaceCulling.Face))
		gl.FrontFace(windingGL(ps.FaceCulling.FrontFace))
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	if ps.DepthTesting.Enabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(depthFuncGL(ps.DepthTesting.Function))
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	if ps.Blending.Enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(blendFactorGL(ps.Blending.Source), blendFactorGL(ps.Blending.Destination))
	} else {
		gl.Disable(gl.BLEND)
	}

	gl.ColorMask(ps.ColorMask[0], ps.ColorMask[1], ps.ColorMask[2], ps.ColorMask[3])
	gl.DepthMask(ps.DepthMask)
}

func cullFaceGL(f gfx.CullFace) uint32 {
	if f == gfx.CullFront {
		return gl.FRONT
	}
	return gl.BACK
}

func windingGL(w gfx.Winding) uint32 {
	if w == gfx.WindingCW {
		return gl.CW
	}
	return gl.CCW
}

func depthFuncGL(f gfx.DepthFunc) uint32 {
	switch f {
	case gfx.DepthLess:
		return gl.LESS
	case gfx.DepthAlways:
		return gl.ALWAYS
	default:
		return gl.LEQUAL
	}
}

func blendFactorGL(f gfx.BlendFactor) uint32 {
	switch f {
	case gfx.BlendZero:
		return gl.ZERO
	case gfx.BlendOne:
		return gl.ONE
	case gfx.BlendSrcAlpha:
		return gl.SRC_ALPHA
	default:
		return gl.ONE_MINUS_SRC_ALPHA
	}
}
