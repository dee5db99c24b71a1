package gfx

// CullFace selects which triangle faces are discarded when culling is on.
type CullFace uint8

const (
	CullBack CullFace = iota
	CullFront
)

// Winding is the vertex order that defines a front-facing triangle.
type Winding uint8

const (
	WindingCCW Winding = iota
	WindingCW
)

// DepthFunc is the comparison used for depth testing.
type DepthFunc uint8

const (
	DepthLess DepthFunc = iota
	DepthLEqual
	DepthAlways
)

// BlendFactor is a source or destination blending coefficient.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
)

// FaceCulling configures triangle face culling.
type FaceCulling struct {
	Enabled   bool
	Face      CullFace
	FrontFace Winding
}

// DepthTesting configures the depth test.
type DepthTesting struct {
	Enabled  bool
	Function DepthFunc
}

// Blending configures framebuffer blending.
type Blending struct {
	Enabled     bool
	Source      BlendFactor
	Destination BlendFactor
}

// PipelineState is the fixed-function state a material applies before its
// draw calls. Zero-value masks would write nothing, so construct through
// DefaultPipelineState and override fields.
type PipelineState struct {
	FaceCulling  FaceCulling
	DepthTesting DepthTesting
	Blending     Blending
	ColorMask    [4]bool
	DepthMask    bool
}

// DefaultPipelineState returns the baseline state: no culling, no depth
// test, no blending, all writes enabled.
func DefaultPipelineState() PipelineState {
	return PipelineState{
		FaceCulling:  FaceCulling{Face: CullBack, FrontFace: WindingCCW},
		DepthTesting: DepthTesting{Function: DepthLEqual},
		Blending:     Blending{Source: BlendSrcAlpha, Destination: BlendOneMinusSrcAlpha},
		ColorMask:    [4]bool{true, true, true, true},
		DepthMask:    true,
	}
}
