package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"forward-gl/internal/gfx"
	"forward-gl/internal/graphics"
	"forward-gl/internal/scene"
)

// DemoScene is a small world exercising every draw path: opaque and
// transparent lit geometry, an unlit marker, all three light kinds, and
// a parented entity.
type DemoScene struct {
	World *scene.World

	spinner *scene.Entity
	camera  *scene.Entity
	elapsed float64

	releasables []interface{ Release() }
}

func buildDemoScene(device *graphics.GLDevice) (*DemoScene, error) {
	d := &DemoScene{World: scene.NewWorld()}

	litShader, err := device.CompileShader("assets/shaders/default.vert", "assets/shaders/default.frag")
	if err != nil {
		return nil, err
	}
	d.keep(litShader)

	unlitShader, err := device.CompileShader("assets/shaders/unlit.vert", "assets/shaders/unlit.frag")
	if err != nil {
		d.Release()
		return nil, err
	}
	d.keep(unlitShader)

	opaque := gfx.DefaultPipelineState()
	opaque.DepthTesting.Enabled = true
	opaque.FaceCulling.Enabled = true

	ground := device.CreateMaterial(gfx.MaterialDesc{
		Kind:     gfx.MaterialLit,
		Shader:   litShader,
		Pipeline: opaque,
		Tint:     mgl32.Vec4{0.55, 0.55, 0.6, 1},
	})
	crate := device.CreateMaterial(gfx.MaterialDesc{
		Kind:     gfx.MaterialLit,
		Shader:   litShader,
		Pipeline: opaque,
		Tint:     mgl32.Vec4{0.8, 0.5, 0.2, 1},
	})

	glassState := opaque
	glassState.Blending.Enabled = true
	glassState.DepthMask = false
	glass := device.CreateMaterial(gfx.MaterialDesc{
		Kind:        gfx.MaterialLit,
		Shader:      litShader,
		Pipeline:    glassState,
		Tint:        mgl32.Vec4{0.4, 0.6, 1, 0.45},
		Transparent: true,
	})

	markerState := gfx.DefaultPipelineState()
	markerState.DepthTesting.Enabled = true
	marker := device.CreateMaterial(gfx.MaterialDesc{
		Kind:     gfx.MaterialUnlit,
		Shader:   unlitShader,
		Pipeline: markerState,
		Tint:     mgl32.Vec4{1, 1, 0.3, 1},
	})
	d.keep(ground, crate, glass, marker)

	cubeVertices, cubeIndices := graphics.BuildCube(1)
	cube := graphics.NewMesh(cubeVertices, cubeIndices)
	ball := device.CreateSphere(24, 16)
	d.keep(cube, ball)

	floor := d.World.Spawn("floor").Add(&scene.MeshRenderer{Mesh: cube, Material: ground})
	floor.Transform.Position = mgl32.Vec3{0, -1, 0}
	floor.Transform.Scale = mgl32.Vec3{10, 0.5, 10}

	d.spinner = d.World.Spawn("crate").Add(&scene.MeshRenderer{Mesh: cube, Material: crate})
	d.spinner.Transform.Position = mgl32.Vec3{0, 0.5, 0}

	// A child riding on the spinning crate, drawn unlit.
	bulb := d.World.SpawnChild("bulb", d.spinner).
		Add(&scene.MeshRenderer{Mesh: ball, Material: marker})
	bulb.Transform.Position = mgl32.Vec3{0, 1.2, 0}
	bulb.Transform.Scale = mgl32.Vec3{0.2, 0.2, 0.2}

	pane := d.World.Spawn("glass").Add(&scene.MeshRenderer{Mesh: ball, Material: glass})
	pane.Transform.Position = mgl32.Vec3{1.5, 0.5, 1.5}
	pane.Transform.Scale = mgl32.Vec3{0.7, 0.7, 0.7}

	d.World.Spawn("sun").Add(&scene.DirectionalLight{
		Direction: mgl32.Vec3{-1, -2, -1}.Normalize(),
		Intensity: 0.6,
		Color:     mgl32.Vec3{1, 0.96, 0.9},
	})

	lamp := d.World.Spawn("lamp").Add(&scene.SpotLight{
		Intensity: 3,
		Color:     mgl32.Vec3{1, 0.4, 0.3},
		Decay:     1.5,
	})
	lamp.Transform.Position = mgl32.Vec3{-2, 2, 0}

	d.World.Spawn("beam").Add(&scene.ConeLight{
		Direction: mgl32.Vec3{0, -1, 0},
		Intensity: 4,
		Color:     mgl32.Vec3{0.4, 0.8, 1},
		Range:     0.6,
		Smoothing: 0.2,
		Decay:     1,
	}).Transform.Position = mgl32.Vec3{2, 3, -1}

	d.camera = d.World.Spawn("camera").Add(scene.NewCamera())
	d.camera.Transform.Position = mgl32.Vec3{0, 2.5, 6}
	d.camera.Transform.Rotation = mgl32.Vec3{-0.35, 0, 0}

	return d, nil
}

// Update spins the crate and orbits the camera around the scene center.
func (d *DemoScene) Update(dt float64) {
	d.elapsed += dt

	d.spinner.Transform.Rotation[1] = float32(d.elapsed)

	angle := float32(d.elapsed * 0.25)
	const radius = 6.5
	d.camera.Transform.Position = mgl32.Vec3{
		radius * math32.Sin(angle),
		2.5,
		radius * math32.Cos(angle),
	}
	d.camera.Transform.Rotation = mgl32.Vec3{-0.35, angle, 0}
}

func (d *DemoScene) Release() {
	for i := len(d.releasables) - 1; i >= 0; i-- {
		d.releasables[i].Release()
	}
	d.releasables = nil
}

func (d *DemoScene) keep(rs ...interface{ Release() }) {
	d.releasables = append(d.releasables, rs...)
}
