package scene_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"forward-gl/internal/scene"
)

func vecNear(t *testing.T, want, got mgl32.Vec3, context string) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(float64(want[i]-got[i])) > 1e-5 {
			t.Errorf("%s: expected %v, got %v", context, want, got)
			return
		}
	}
}

func TestTransformMatrixOrder(t *testing.T) {
	// Scale, then rotate, then translate: a unit X point scaled by 2 and
	// rotated 90 degrees about Y lands on -Z, then moves with the
	// translation.
	tr := scene.NewTransform()
	tr.Scale = mgl32.Vec3{2, 2, 2}
	tr.Rotation = mgl32.Vec3{0, mgl32.DegToRad(90), 0}
	tr.Position = mgl32.Vec3{0, 0, 5}

	p := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	vecNear(t, mgl32.Vec3{0, 0, 3}, p, "transformed point")
}

func TestLocalToWorldComposesParents(t *testing.T) {
	w := scene.NewWorld()
	parent := w.Spawn("parent")
	parent.Transform.Position = mgl32.Vec3{0, 1, 0}
	parent.Transform.Rotation = mgl32.Vec3{0, mgl32.DegToRad(90), 0}

	child := w.SpawnChild("child", parent)
	child.Transform.Position = mgl32.Vec3{1, 0, 0}

	// The child's local +X offset is rotated into -Z by the parent before
	// the parent's translation applies.
	origin := child.LocalToWorld().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	vecNear(t, mgl32.Vec3{0, 1, -1}, origin, "child world origin")

	if child.Parent() != parent {
		t.Error("expected child to report its parent")
	}
}

func TestGetReturnsFirstComponent(t *testing.T) {
	w := scene.NewWorld()
	first := &scene.ConeLight{Intensity: 1}
	second := &scene.ConeLight{Intensity: 2}
	e := w.Spawn("e").Add(first, &scene.SpotLight{}, second)

	got, ok := scene.Get[*scene.ConeLight](e)
	if !ok || got != first {
		t.Errorf("expected first cone light, got %v ok=%v", got, ok)
	}

	all := scene.GetAll[*scene.ConeLight](e)
	if len(all) != 2 || all[0] != first || all[1] != second {
		t.Errorf("expected both cone lights in order, got %v", all)
	}

	if _, ok := scene.Get[*scene.DirectionalLight](e); ok {
		t.Error("expected no directional light")
	}
}

func TestCameraViewMatrixIdentityOwner(t *testing.T) {
	w := scene.NewWorld()
	owner := w.Spawn("camera")
	cam := scene.NewCamera()

	view := cam.ViewMatrix(owner)
	ident := mgl32.Ident4()
	for i := range view {
		if math.Abs(float64(view[i]-ident[i])) > 1e-5 {
			t.Fatalf("expected identity view for identity owner, got %v", view)
		}
	}
}

func TestCameraViewMatrixFollowsOwner(t *testing.T) {
	w := scene.NewWorld()
	owner := w.Spawn("camera")
	owner.Transform.Position = mgl32.Vec3{0, 0, 10}
	cam := scene.NewCamera()

	// A point in front of the camera should land on the view -Z axis.
	view := cam.ViewMatrix(owner)
	p := view.Mul4x1(mgl32.Vec4{0, 0, 5, 1}).Vec3()
	vecNear(t, mgl32.Vec3{0, 0, -5}, p, "view-space point")
}

func TestCameraProjectionMatrices(t *testing.T) {
	cam := scene.NewCamera()
	cam.FOV = mgl32.DegToRad(90)
	cam.Near = 0.5
	cam.Far = 100

	want := mgl32.Perspective(mgl32.DegToRad(90), 800.0/600.0, 0.5, 100)
	got := cam.ProjectionMatrix(800, 600)
	for i := range want {
		if math.Abs(float64(want[i]-got[i])) > 1e-5 {
			t.Fatalf("perspective mismatch at %d: want %v got %v", i, want, got)
		}
	}

	cam.Projection = scene.Orthographic
	cam.OrthoHeight = 10
	wantOrtho := mgl32.Ortho(-10.0/2*800/600, 10.0/2*800/600, -5, 5, 0.5, 100)
	gotOrtho := cam.ProjectionMatrix(800, 600)
	for i := range wantOrtho {
		if math.Abs(float64(wantOrtho[i]-gotOrtho[i])) > 1e-4 {
			t.Fatalf("ortho mismatch at %d: want %v got %v", i, wantOrtho, gotOrtho)
		}
	}
}
