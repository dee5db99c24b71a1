package renderer_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"forward-gl/internal/gfx"
)

// The fakes below implement the gfx interfaces, recording an ordered op
// log and per-type created/released counters so tests can assert draw
// sequencing and resource accounting without a GL context.

type counter struct {
	created  int
	released int
}

func (c counter) leaked() int {
	return c.created - c.released
}

type textureAlloc struct {
	format gfx.TextureFormat
	width  int
	height int
}

type fakeDevice struct {
	ops []string

	shaders      counter
	textures     counter
	samplers     counter
	framebuffers counter
	vertexArrays counter
	meshes       counter
	materials    counter

	failShaders      map[string]error // keyed by vertex shader path
	failTextures     map[string]error
	failFramebuffers map[int]error // keyed by creation ordinal
	framebufferCalls int

	shaderPaths   [][2]string
	loadedPaths   []string
	textureAllocs []textureAlloc
	samplerDescs  []gfx.SamplerDesc
	materialDescs []gfx.MaterialDesc
	materialsMade map[gfx.MaterialKind]*fakeMaterial
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		failShaders:      map[string]error{},
		failTextures:     map[string]error{},
		failFramebuffers: map[int]error{},
		materialsMade:    map[gfx.MaterialKind]*fakeMaterial{},
	}
}

func (d *fakeDevice) log(format string, args ...any) {
	d.ops = append(d.ops, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) countOps(op string) int {
	n := 0
	for _, o := range d.ops {
		if o == op {
			n++
		}
	}
	return n
}

func (d *fakeDevice) opIndex(op string) int {
	for i, o := range d.ops {
		if o == op {
			return i
		}
	}
	return -1
}

func (d *fakeDevice) CompileShader(vertexPath, fragmentPath string) (gfx.Shader, error) {
	if err := d.failShaders[vertexPath]; err != nil {
		return nil, err
	}
	d.shaders.created++
	d.shaderPaths = append(d.shaderPaths, [2]string{vertexPath, fragmentPath})
	return &fakeShader{releases: &d.shaders.released, uniforms: newUniformStore()}, nil
}

func (d *fakeDevice) LoadTexture(path string) (gfx.Texture, error) {
	if err := d.failTextures[path]; err != nil {
		return nil, err
	}
	d.textures.created++
	d.loadedPaths = append(d.loadedPaths, path)
	return &fakeTexture{releases: &d.textures.released}, nil
}

func (d *fakeDevice) CreateTexture(format gfx.TextureFormat, width, height int) gfx.Texture {
	d.textures.created++
	d.textureAllocs = append(d.textureAllocs, textureAlloc{format, width, height})
	return &fakeTexture{releases: &d.textures.released, format: format, width: width, height: height}
}

func (d *fakeDevice) CreateSampler(desc gfx.SamplerDesc) gfx.Sampler {
	d.samplers.created++
	d.samplerDescs = append(d.samplerDescs, desc)
	return &fakeSampler{releases: &d.samplers.released}
}

func (d *fakeDevice) CreateFramebuffer(color, depth gfx.Texture) (gfx.Framebuffer, error) {
	call := d.framebufferCalls
	d.framebufferCalls++
	if err := d.failFramebuffers[call]; err != nil {
		return nil, err
	}
	d.framebuffers.created++
	return &fakeFramebuffer{dev: d, color: color, depth: depth}, nil
}

func (d *fakeDevice) CreateVertexArray() gfx.VertexArray {
	d.vertexArrays.created++
	return &fakeVertexArray{dev: d}
}

func (d *fakeDevice) CreateSphere(segments, rings int) gfx.Mesh {
	d.meshes.created++
	return &fakeMesh{name: fmt.Sprintf("sphere-%dx%d", segments, rings), dev: d, releases: &d.meshes.released}
}

func (d *fakeDevice) CreateMaterial(desc gfx.MaterialDesc) gfx.Material {
	d.materials.created++
	d.materialDescs = append(d.materialDescs, desc)
	m := &fakeMaterial{
		name:        fmt.Sprintf("material-%d", desc.Kind),
		kind:        desc.Kind,
		transparent: desc.Transparent,
		shader:      desc.Shader.(*fakeShader),
		dev:         d,
		releases:    &d.materials.released,
	}
	d.materialsMade[desc.Kind] = m
	return m
}

func (d *fakeDevice) Viewport(x, y, width, height int32) {
	d.log("viewport %d %d %d %d", x, y, width, height)
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) {
	d.log("clear-color %v %v %v %v", r, g, b, a)
}

func (d *fakeDevice) ClearDepth(depth float64) {
	d.log("clear-depth %v", depth)
}

func (d *fakeDevice) ColorMask(r, g, b, a bool) {
	d.log("color-mask %v %v %v %v", r, g, b, a)
}

func (d *fakeDevice) DepthMask(enabled bool) {
	d.log("depth-mask %v", enabled)
}

func (d *fakeDevice) Clear(color, depth bool) {
	d.log("clear")
}

func (d *fakeDevice) BindDefaultFramebuffer() {
	d.log("bind default-framebuffer")
}

func (d *fakeDevice) DrawTriangles(first, count int32) {
	d.log("draw-triangles %d %d", first, count)
}

type uniformStore struct {
	ints   map[string]int32
	floats map[string]float32
	vec3s  map[string]mgl32.Vec3
	vec4s  map[string]mgl32.Vec4
	mat4s  map[string]mgl32.Mat4
}

func newUniformStore() *uniformStore {
	return &uniformStore{
		ints:   map[string]int32{},
		floats: map[string]float32{},
		vec3s:  map[string]mgl32.Vec3{},
		vec4s:  map[string]mgl32.Vec4{},
		mat4s:  map[string]mgl32.Mat4{},
	}
}

type fakeShader struct {
	releases *int
	uniforms *uniformStore
}

func newFakeShader() *fakeShader {
	return &fakeShader{uniforms: newUniformStore()}
}

func (s *fakeShader) SetMat4(name string, m mgl32.Mat4) { s.uniforms.mat4s[name] = m }
func (s *fakeShader) SetVec3(name string, v mgl32.Vec3) { s.uniforms.vec3s[name] = v }
func (s *fakeShader) SetVec4(name string, v mgl32.Vec4) { s.uniforms.vec4s[name] = v }
func (s *fakeShader) SetFloat(name string, v float32)   { s.uniforms.floats[name] = v }
func (s *fakeShader) SetInt(name string, v int32)       { s.uniforms.ints[name] = v }

func (s *fakeShader) Release() {
	if s.releases != nil {
		*s.releases++
	}
}

type fakeTexture struct {
	releases *int
	format   gfx.TextureFormat
	width    int
	height   int
}

func (t *fakeTexture) Release() {
	if t.releases != nil {
		*t.releases++
	}
}

type fakeSampler struct {
	releases *int
}

func (s *fakeSampler) Release() {
	if s.releases != nil {
		*s.releases++
	}
}

type fakeFramebuffer struct {
	dev   *fakeDevice
	color gfx.Texture
	depth gfx.Texture
}

func (f *fakeFramebuffer) Bind() {
	f.dev.log("bind framebuffer")
}

func (f *fakeFramebuffer) Release() {
	f.dev.framebuffers.released++
}

type fakeVertexArray struct {
	dev *fakeDevice
}

func (v *fakeVertexArray) Bind() {
	v.dev.log("bind vertex-array")
}

func (v *fakeVertexArray) Release() {
	v.dev.vertexArrays.released++
}

// fakeMesh records draws in the shared device log. Test-built meshes pass
// a nil releases pointer; device-built ones count toward accounting.
type fakeMesh struct {
	name     string
	dev      *fakeDevice
	releases *int
}

func (m *fakeMesh) Draw() {
	m.dev.log("draw %s", m.name)
}

func (m *fakeMesh) Release() {
	if m.releases != nil {
		*m.releases++
	}
}

type fakeMaterial struct {
	name        string
	kind        gfx.MaterialKind
	transparent bool
	shader      *fakeShader
	dev         *fakeDevice
	releases    *int
}

func (m *fakeMaterial) Setup() {
	m.dev.log("setup %s", m.name)
}

func (m *fakeMaterial) Shader() gfx.Shader {
	return m.shader
}

func (m *fakeMaterial) Kind() gfx.MaterialKind {
	return m.kind
}

func (m *fakeMaterial) Transparent() bool {
	return m.transparent
}

func (m *fakeMaterial) Release() {
	if m.releases != nil {
		*m.releases++
	}
}
