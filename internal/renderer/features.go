package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"forward-gl/internal/gfx"
)

// Shader asset paths. The sky pair is fixed; the post-process fragment
// shader comes from configuration.
const (
	shadersDir = "assets/shaders"

	skyVertShader        = shadersDir + "/sky.vert"
	skyFragShader        = shadersDir + "/sky.frag"
	fullscreenVertShader = shadersDir + "/fullscreen.vert"
)

const skySphereSegments = 16

// skyFeature owns the resources of the sky pass.
type skyFeature struct {
	sphere   gfx.Mesh
	shader   gfx.Shader
	texture  gfx.Texture
	sampler  gfx.Sampler
	material gfx.Material
}

func newSkyFeature(dev gfx.Device, texturePath string) (*skyFeature, error) {
	shader, err := dev.CompileShader(skyVertShader, skyFragShader)
	if err != nil {
		return nil, fmt.Errorf("sky shader: %w", err)
	}

	// No mipmaps for the sky; linear filtering avoids blur at the poles,
	// and the vertical clamp stops the seam at the zenith from wrapping.
	texture, err := dev.LoadTexture(texturePath)
	if err != nil {
		shader.Release()
		return nil, fmt.Errorf("sky texture: %w", err)
	}

	sampler := dev.CreateSampler(gfx.SamplerDesc{
		MinFilter: gfx.FilterLinear,
		MagFilter: gfx.FilterLinear,
		WrapS:     gfx.WrapRepeat,
		WrapT:     gfx.WrapClampToEdge,
	})

	sphere := dev.CreateSphere(skySphereSegments, skySphereSegments)

	// The camera sits inside the sphere, so clockwise front faces make
	// the interior visible while the exterior is culled.
	pipeline := gfx.DefaultPipelineState()
	pipeline.FaceCulling = gfx.FaceCulling{Enabled: true, Face: gfx.CullBack, FrontFace: gfx.WindingCW}
	pipeline.DepthTesting = gfx.DepthTesting{Enabled: true, Function: gfx.DepthLEqual}
	pipeline.DepthMask = true

	material := dev.CreateMaterial(gfx.MaterialDesc{
		Kind:     gfx.MaterialSky,
		Shader:   shader,
		Texture:  texture,
		Sampler:  sampler,
		Pipeline: pipeline,
		Tint:     mgl32.Vec4{1, 1, 1, 1},
	})

	return &skyFeature{
		sphere:   sphere,
		shader:   shader,
		texture:  texture,
		sampler:  sampler,
		material: material,
	}, nil
}

func (s *skyFeature) destroy() {
	s.sphere.Release()
	s.shader.Release()
	s.texture.Release()
	s.sampler.Release()
	s.material.Release()
}

// postFeature owns the offscreen target and the fullscreen composite
// material of the post-process pass.
type postFeature struct {
	framebuffer gfx.Framebuffer
	vertexArray gfx.VertexArray
	color       gfx.Texture
	depth       gfx.Texture
	sampler     gfx.Sampler
	shader      gfx.Shader
	material    gfx.Material
}

func newPostFeature(dev gfx.Device, fragmentPath string, width, height int) (*postFeature, error) {
	shader, err := dev.CompileShader(fullscreenVertShader, fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("postprocess shader: %w", err)
	}

	p := &postFeature{
		shader: shader,
		sampler: dev.CreateSampler(gfx.SamplerDesc{
			MinFilter: gfx.FilterLinear,
			MagFilter: gfx.FilterLinear,
			WrapS:     gfx.WrapClampToEdge,
			WrapT:     gfx.WrapClampToEdge,
		}),
		vertexArray: dev.CreateVertexArray(),
	}

	if err := p.createTargets(dev, width, height); err != nil {
		p.vertexArray.Release()
		p.sampler.Release()
		p.shader.Release()
		return nil, err
	}
	return p, nil
}

// createTargets allocates the window-sized resources: color and depth
// textures, the framebuffer, and the composite material sampling the
// color target.
func (p *postFeature) createTargets(dev gfx.Device, width, height int) error {
	color := dev.CreateTexture(gfx.FormatRGBA8, width, height)
	depth := dev.CreateTexture(gfx.FormatDepth24, width, height)
	framebuffer, err := dev.CreateFramebuffer(color, depth)
	if err != nil {
		depth.Release()
		color.Release()
		return fmt.Errorf("postprocess framebuffer: %w", err)
	}

	// A 2D composite never needs to touch the depth buffer.
	pipeline := gfx.DefaultPipelineState()
	pipeline.DepthMask = false

	p.color = color
	p.depth = depth
	p.framebuffer = framebuffer
	p.material = dev.CreateMaterial(gfx.MaterialDesc{
		Kind:     gfx.MaterialPostProcess,
		Shader:   p.shader,
		Texture:  color,
		Sampler:  p.sampler,
		Pipeline: pipeline,
		Tint:     mgl32.Vec4{1, 1, 1, 1},
	})
	return nil
}

func (p *postFeature) releaseTargets() {
	p.framebuffer.Release()
	p.color.Release()
	p.depth.Release()
	p.material.Release()
}

// resize builds replacement targets at the new size before releasing the
// old ones, so a failed resize leaves the previous targets usable. The
// shader, sampler, and vertex array are size-independent.
func (p *postFeature) resize(dev gfx.Device, width, height int) error {
	oldFramebuffer := p.framebuffer
	oldColor := p.color
	oldDepth := p.depth
	oldMaterial := p.material

	if err := p.createTargets(dev, width, height); err != nil {
		return err
	}

	oldFramebuffer.Release()
	oldColor.Release()
	oldDepth.Release()
	oldMaterial.Release()
	return nil
}

func (p *postFeature) destroy() {
	p.releaseTargets()
	p.vertexArray.Release()
	p.sampler.Release()
	p.shader.Release()
}
