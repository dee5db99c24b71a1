package gfx

// Device is the narrow boundary between the renderer and the graphics
// API. The real implementation wraps OpenGL; tests substitute a recording
// fake to account for resource lifetimes and draw sequencing.
type Device interface {
	// Resource construction.
	CompileShader(vertexPath, fragmentPath string) (Shader, error)
	LoadTexture(path string) (Texture, error)
	CreateTexture(format TextureFormat, width, height int) Texture
	CreateSampler(desc SamplerDesc) Sampler
	CreateFramebuffer(color, depth Texture) (Framebuffer, error)
	CreateVertexArray() VertexArray
	CreateSphere(segments, rings int) Mesh
	CreateMaterial(desc MaterialDesc) Material

	// Frame operations.
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	ColorMask(r, g, b, a bool)
	DepthMask(enabled bool)
	Clear(color, depth bool)
	BindDefaultFramebuffer()
	DrawTriangles(first, count int32)
}
