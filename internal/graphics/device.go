package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"forward-gl/internal/gfx"
)

// GLDevice implements gfx.Device over OpenGL 4.1 core. It requires a
// current GL context on the calling thread.
type GLDevice struct{}

var _ gfx.Device = (*GLDevice)(nil)

// NewDevice initializes the OpenGL bindings and returns the device.
func NewDevice() (*GLDevice, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &GLDevice{}, nil
}

func (d *GLDevice) CompileShader(vertexPath, fragmentPath string) (gfx.Shader, error) {
	return NewShader(vertexPath, fragmentPath)
}

func (d *GLDevice) LoadTexture(path string) (gfx.Texture, error) {
	return LoadTexture(path)
}

func (d *GLDevice) CreateTexture(format gfx.TextureFormat, width, height int) gfx.Texture {
	return NewTexture(format, width, height)
}

func (d *GLDevice) CreateSampler(desc gfx.SamplerDesc) gfx.Sampler {
	return NewSampler(desc)
}

func (d *GLDevice) CreateFramebuffer(color, depth gfx.Texture) (gfx.Framebuffer, error) {
	return NewFramebuffer(color.(*Texture), depth.(*Texture))
}

func (d *GLDevice) CreateVertexArray() gfx.VertexArray {
	return NewVertexArray()
}

func (d *GLDevice) CreateSphere(segments, rings int) gfx.Mesh {
	vertices, indices := BuildSphere(segments, rings, 1)
	return NewMesh(vertices, indices)
}

func (d *GLDevice) CreateMaterial(desc gfx.MaterialDesc) gfx.Material {
	return NewMaterial(desc)
}

func (d *GLDevice) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *GLDevice) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *GLDevice) ClearDepth(depth float64) {
	gl.ClearDepth(depth)
}

func (d *GLDevice) ColorMask(r, g, b, a bool) {
	gl.ColorMask(r, g, b, a)
}

func (d *GLDevice) DepthMask(enabled bool) {
	gl.DepthMask(enabled)
}

func (d *GLDevice) Clear(color, depth bool) {
	var bits uint32
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (d *GLDevice) BindDefaultFramebuffer() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (d *GLDevice) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}
