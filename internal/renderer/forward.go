package renderer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"forward-gl/internal/config"
	"forward-gl/internal/gfx"
	"forward-gl/internal/scene"
)

// skyDepthClamp post-multiplies the view-projection so the sky sphere's
// clip-space z becomes w: the sky lands exactly on the far plane, never
// winning against real geometry and never failing against the clear
// value. Column-major.
var skyDepthClamp = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0, 0,
	0, 0, 1, 1,
}

// Forward is a single-pass forward renderer. One traversal per frame
// collects the camera, draw commands, and lights; opaque geometry draws
// in collection order, then the optional sky, then transparent geometry
// back to front, optionally through an offscreen target composited by a
// fullscreen post-process pass.
//
// Forward is not safe for concurrent use and requires exclusive access to
// the scene for the duration of Render.
type Forward struct {
	dev       gfx.Device
	width     int
	height    int
	areaLight mgl32.Vec3

	// Per-frame buffers, cleared and refilled by each Render call.
	opaque      []Command
	transparent []Command
	directional []*scene.DirectionalLight
	spot        []*scene.SpotLight
	cone        []*scene.ConeLight

	sky  *skyFeature
	post *postFeature
}

// New constructs the renderer and the resources for whichever optional
// features the configuration enables. If a feature fails to build, New
// returns the renderer (valid, with that feature absent) together with
// the error.
func New(dev gfx.Device, width, height int, cfg config.Render) (*Forward, error) {
	f := &Forward{
		dev:       dev,
		width:     width,
		height:    height,
		areaLight: cfg.AreaLightColor(),
	}

	var errs []error
	if cfg.Sky != "" {
		sky, err := newSkyFeature(dev, cfg.Sky)
		if err != nil {
			errs = append(errs, err)
		} else {
			f.sky = sky
		}
	}
	if cfg.Postprocess != "" {
		post, err := newPostFeature(dev, cfg.Postprocess, width, height)
		if err != nil {
			errs = append(errs, err)
		} else {
			f.post = post
		}
	}
	return f, errors.Join(errs...)
}

// Destroy releases every resource created by New. Safe to call when
// features were never enabled, and safe to call more than once.
func (f *Forward) Destroy() {
	if f.sky != nil {
		f.sky.destroy()
		f.sky = nil
	}
	if f.post != nil {
		f.post.destroy()
		f.post = nil
	}
}

// Resize updates the output size. With post-processing enabled the
// offscreen targets are recreated at the new size first; if that fails,
// the previous size and targets stay in effect.
func (f *Forward) Resize(width, height int) error {
	if f.post != nil {
		if err := f.post.resize(f.dev, width, height); err != nil {
			return err
		}
	}
	f.width = width
	f.height = height
	return nil
}

// Render draws one frame of the world. If the traversal finds no camera
// the frame degenerates to a no-op: the per-frame lists are rebuilt but
// nothing is cleared or drawn.
func (f *Forward) Render(world *scene.World) {
	camera, cameraOwner := f.collect(world)
	if camera == nil {
		return
	}

	camWorld := cameraOwner.LocalToWorld()
	cameraForward := camWorld.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	cameraCenter := camWorld.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()

	// Painter's algorithm: farthest along the camera forward axis first.
	// Quantized depth along the view direction, not exact visibility;
	// ties are unordered.
	sort.Slice(f.transparent, func(i, j int) bool {
		a := f.transparent[i].Center.Sub(cameraCenter).Dot(cameraForward)
		b := f.transparent[j].Center.Sub(cameraCenter).Dot(cameraForward)
		return a > b
	})

	vp := camera.ProjectionMatrix(f.width, f.height).Mul4(camera.ViewMatrix(cameraOwner))

	f.dev.Viewport(0, 0, int32(f.width), int32(f.height))
	f.dev.ClearColor(0, 0, 0, 0)
	f.dev.ClearDepth(1)
	// The clear must reach every channel regardless of what the last
	// material left in the masks.
	f.dev.ColorMask(true, true, true, true)
	f.dev.DepthMask(true)

	if f.post != nil {
		f.post.framebuffer.Bind()
	}
	f.dev.Clear(true, true)

	for i := range f.opaque {
		f.drawCommand(&f.opaque[i], vp, cameraCenter)
	}

	if f.sky != nil {
		f.drawSky(camera, cameraCenter, vp)
	}

	for i := range f.transparent {
		f.drawCommand(&f.transparent[i], vp, cameraCenter)
	}

	if f.post != nil {
		f.dev.BindDefaultFramebuffer()
		f.post.material.Setup()
		f.post.vertexArray.Bind()
		f.dev.DrawTriangles(0, 3)
	}
}

// collect walks every entity once, returning the first camera found and
// filling the per-frame command and light lists. Spot and cone lights get
// their world-space caches overwritten from the owner's transform; cone
// directions are transformed with zero homogeneous weight so translation
// never leaks in.
func (f *Forward) collect(world *scene.World) (*scene.Camera, *scene.Entity) {
	var camera *scene.Camera
	var cameraOwner *scene.Entity

	f.opaque = f.opaque[:0]
	f.transparent = f.transparent[:0]
	f.directional = f.directional[:0]
	f.spot = f.spot[:0]
	f.cone = f.cone[:0]

	for _, e := range world.Entities() {
		if camera == nil {
			if c, ok := scene.Get[*scene.Camera](e); ok {
				camera = c
				cameraOwner = e
			}
		}

		localToWorld := e.LocalToWorld()
		center := localToWorld.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()

		if mr, ok := scene.Get[*scene.MeshRenderer](e); ok {
			cmd := Command{
				LocalToWorld: localToWorld,
				Center:       center,
				Mesh:         mr.Mesh,
				Material:     mr.Material,
			}
			if mr.Material.Transparent() {
				f.transparent = append(f.transparent, cmd)
			} else {
				f.opaque = append(f.opaque, cmd)
			}
		}

		if dl, ok := scene.Get[*scene.DirectionalLight](e); ok {
			f.directional = append(f.directional, dl)
		}

		if sl, ok := scene.Get[*scene.SpotLight](e); ok {
			sl.WorldPosition = center
			f.spot = append(f.spot, sl)
		}

		for _, cl := range scene.GetAll[*scene.ConeLight](e) {
			cl.WorldPosition = center
			cl.WorldDirection = localToWorld.Mul4x1(cl.Direction.Vec4(0)).Vec3()
			f.cone = append(f.cone, cl)
		}
	}

	return camera, cameraOwner
}

// drawCommand binds a command's material state and issues its draw call.
// Lit materials receive the model matrix and camera separately so their
// shaders can light in world space; everything else gets a precombined
// model-view-projection.
func (f *Forward) drawCommand(cmd *Command, vp mgl32.Mat4, cameraCenter mgl32.Vec3) {
	cmd.Material.Setup()
	sh := cmd.Material.Shader()
	if cmd.Material.Kind() == gfx.MaterialLit {
		sh.SetMat4("transform", cmd.LocalToWorld)
		sh.SetMat4("Camera", vp)
		sh.SetVec3("cameraPosition", cameraCenter)
		sh.SetVec3("areaLight", f.areaLight)
		f.bindLights(sh)
	} else {
		sh.SetMat4("transform", vp.Mul4(cmd.LocalToWorld))
	}
	cmd.Mesh.Draw()
}

// bindLights pushes the collected light set: a count per kind, then the
// per-instance fields under an indexed name path. Counts are bound even
// at zero so shaders never read stale array sizes.
func (f *Forward) bindLights(sh gfx.Shader) {
	sh.SetInt("directionalLightCount", int32(len(f.directional)))
	for i, l := range f.directional {
		prefix := fmt.Sprintf("directionalLights[%d].", i)
		sh.SetVec3(prefix+"direction", l.Direction)
		sh.SetFloat(prefix+"intensity", l.Intensity)
		sh.SetVec3(prefix+"color", l.Color)
	}

	sh.SetInt("spotLightsCount", int32(len(f.spot)))
	for i, l := range f.spot {
		prefix := fmt.Sprintf("spotLights[%d].", i)
		sh.SetVec3(prefix+"position", l.WorldPosition)
		sh.SetFloat(prefix+"intensity", l.Intensity)
		sh.SetVec3(prefix+"color", l.Color)
		sh.SetFloat(prefix+"decay", l.Decay)
	}

	sh.SetInt("coneLightsCount", int32(len(f.cone)))
	for i, l := range f.cone {
		prefix := fmt.Sprintf("coneLights[%d].", i)
		sh.SetVec3(prefix+"position", l.WorldPosition)
		sh.SetFloat(prefix+"intensity", l.Intensity)
		sh.SetVec3(prefix+"color", l.Color)
		sh.SetVec3(prefix+"direction", l.WorldDirection)
		sh.SetFloat(prefix+"range", l.Range)
		sh.SetFloat(prefix+"smoothing", l.Smoothing)
		sh.SetFloat(prefix+"decay", l.Decay)
	}
}

// drawSky draws the sky sphere centered on the camera. The sphere is
// scaled by twice the camera's ortho height so it exceeds the visible
// frustum under either projection, and the depth-clamp matrix pins it to
// the far plane.
func (f *Forward) drawSky(camera *scene.Camera, cameraCenter mgl32.Vec3, vp mgl32.Mat4) {
	f.sky.material.Setup()
	sh := f.sky.material.Shader()
	sh.SetVec3("areaLight", f.areaLight)

	model := mgl32.Translate3D(cameraCenter.X(), cameraCenter.Y(), cameraCenter.Z())
	s := camera.OrthoHeight * 2
	sh.SetMat4("transform", model.Mul4(mgl32.Scale3D(s, s, s)))
	sh.SetMat4("Camera", skyDepthClamp.Mul4(vp))

	f.sky.sphere.Draw()
}
