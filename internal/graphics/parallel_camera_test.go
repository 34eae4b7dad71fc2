package graphics_test

import (
	"math"
	"orthocam/internal/graphics"
	"orthocam/internal/physics"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type fakeToolkit struct {
	created int
}

func (tk *fakeToolkit) CreateParallelCamera() *graphics.ParallelCameraNode {
	tk.created++
	return &graphics.ParallelCameraNode{}
}

func project(m mgl64.Mat4, x, y, z float64) mgl64.Vec3 {
	v := m.Mul4x1(mgl64.Vec4{x, y, z, 1})
	return v.Vec3().Mul(1 / v.W())
}

func near(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestProjectionMapsViewToNDC(t *testing.T) {
	sizes := []struct {
		name          string
		width, height float64
		halfDepth     float64
	}{
		{"landscape", 800, 600, 400},
		{"portrait", 300, 900, 450},
		{"square", 512, 512, 256},
	}

	for _, s := range sizes {
		t.Run(s.name, func(t *testing.T) {
			cam := graphics.NewParallelCamera()
			cam.SetViewSize(s.width, s.height)

			var proj mgl64.Mat4
			cam.ComputeProjectionTransform(&proj)

			checks := []struct {
				in   mgl64.Vec3
				want mgl64.Vec3
			}{
				{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{-1, 1, 0}},
				{mgl64.Vec3{s.width, s.height, 0}, mgl64.Vec3{1, -1, 0}},
				{mgl64.Vec3{s.width / 2, s.height / 2, 0}, mgl64.Vec3{0, 0, 0}},
				{mgl64.Vec3{0, 0, -s.halfDepth}, mgl64.Vec3{-1, 1, -1}},
				{mgl64.Vec3{0, 0, s.halfDepth}, mgl64.Vec3{-1, 1, 1}},
			}
			for _, c := range checks {
				got := project(proj, c.in.X(), c.in.Y(), c.in.Z())
				if !near(got, c.want) {
					t.Errorf("project(%v) = %v, want %v", c.in, got, c.want)
				}
			}
		})
	}
}

func TestProjectionMatchesOrthoBuilder(t *testing.T) {
	cam := graphics.NewParallelCamera()
	cam.SetViewSize(800, 600)

	var proj mgl64.Mat4
	cam.ComputeProjectionTransform(&proj)

	want := graphics.Ortho(0, 800, 600, 0, -400, 400)
	if proj != want {
		t.Errorf("Expected %v, got %v", want, proj)
	}

	// Depth row: z scales by 1/halfDepth with no offset.
	if !mgl64.FloatEqual(proj.At(2, 2), 1.0/400) {
		t.Errorf("Expected depth scale 1/400, got %v", proj.At(2, 2))
	}
	if proj.At(2, 3) != 0 {
		t.Errorf("Expected zero depth offset, got %v", proj.At(2, 3))
	}
}

func TestProjectionIgnoresClipPlanes(t *testing.T) {
	cam := graphics.NewParallelCamera()
	cam.SetViewSize(640, 480)

	var before, after mgl64.Mat4
	cam.ComputeProjectionTransform(&before)
	cam.SetNearClip(5)
	cam.SetFarClip(50)
	cam.ComputeProjectionTransform(&after)

	if before != after {
		t.Errorf("Expected projection independent of clip planes")
	}
}

func TestProjectionDegenerateViewDoesNotPanic(t *testing.T) {
	cam := graphics.NewParallelCamera()
	cam.SetViewSize(0, 0)

	var proj mgl64.Mat4
	cam.ComputeProjectionTransform(&proj)

	if !math.IsInf(proj.At(0, 0), 0) && !math.IsNaN(proj.At(0, 0)) {
		t.Errorf("Expected a degenerate projection for a zero-size view, got %v", proj.At(0, 0))
	}
}

func TestViewTransformIsIdentity(t *testing.T) {
	cam := graphics.NewParallelCamera()
	cam.SetViewSize(1024, 768)
	cam.SetNearClip(3)
	cam.SetCameraTransform(mgl64.Translate3D(10, 20, 30))

	view := mgl64.Scale3D(4, 4, 4)
	cam.ComputeViewTransform(&view)

	if view != mgl64.Ident4() {
		t.Errorf("Expected identity view, got %v", view)
	}
}

func TestComputePosition(t *testing.T) {
	cam := graphics.NewParallelCamera()
	want := mgl64.Vec3{0, 0, -1}

	fresh := cam.ComputePosition(nil)
	if fresh == nil || *fresh != want {
		t.Fatalf("Expected fresh %v, got %v", want, fresh)
	}

	v := &mgl64.Vec3{7, 8, 9}
	got := cam.ComputePosition(v)
	if got != v {
		t.Errorf("Expected the supplied vector to be returned")
	}
	if *v != want {
		t.Errorf("Expected %v, got %v", want, *v)
	}

	if again := cam.ComputePosition(nil); again == fresh {
		t.Errorf("Expected a new allocation for each nil call")
	}
}

func TestCopy(t *testing.T) {
	cam := graphics.NewParallelCamera()
	cam.SetNearClip(1)
	cam.SetFarClip(1000)
	cam.SetViewSize(800, 600)

	clone := cam.Copy()
	if clone == graphics.Camera(cam) {
		t.Fatalf("Expected a distinct instance")
	}
	if _, ok := clone.(*graphics.ParallelCamera); !ok {
		t.Fatalf("Expected *ParallelCamera, got %T", clone)
	}
	if clone.NearClip() != 1 || clone.FarClip() != 1000 {
		t.Errorf("Expected clips [1, 1000], got [%v, %v]", clone.NearClip(), clone.FarClip())
	}
	if clone.ViewWidth() != graphics.DefaultViewWidth || clone.ViewHeight() != graphics.DefaultViewHeight {
		t.Errorf("Expected default view size, got %vx%v", clone.ViewWidth(), clone.ViewHeight())
	}

	cam.SetNearClip(5)
	if clone.NearClip() != 1 {
		t.Errorf("Mutating the original changed the clone: %v", clone.NearClip())
	}
	clone.SetFarClip(20)
	if cam.FarClip() != 1000 {
		t.Errorf("Mutating the clone changed the original: %v", cam.FarClip())
	}
}

func TestComputePickRayIgnoresClipPlanes(t *testing.T) {
	cam := graphics.NewParallelCamera()
	cam.SetNearClip(1)
	cam.SetFarClip(1000)

	ray := cam.ComputePickRay(100, 50, nil)
	if !math.IsInf(ray.NearClip, -1) || !math.IsInf(ray.FarClip, 1) {
		t.Errorf("Expected (-Inf, +Inf) depth bounds, got (%v, %v)", ray.NearClip, ray.FarClip)
	}
	if ray.Origin != (mgl64.Vec3{100, 50, -1}) {
		t.Errorf("Expected origin {100,50,-1}, got %v", ray.Origin)
	}

	reuse := &physics.PickRay{}
	if got := cam.ComputePickRay(1, 2, reuse); got != reuse {
		t.Errorf("Expected the supplied ray to be reused")
	}
}

func TestComputePickRayUsesCameraTransform(t *testing.T) {
	cam := graphics.NewParallelCamera()
	cam.SetCameraTransform(mgl64.Translate3D(-50, 25, 0))

	ray := cam.ComputePickRay(100, 100, nil)
	if ray.Origin != (mgl64.Vec3{50, 125, -1}) {
		t.Errorf("Expected origin {50,125,-1}, got %v", ray.Origin)
	}
}

func TestBackendMirror(t *testing.T) {
	cam := graphics.NewParallelCamera()
	cam.SetNearClip(0.1)
	cam.SetFarClip(1000)

	tk := &fakeToolkit{}
	node, ok := cam.CreateBackendMirror(tk).(*graphics.ParallelCameraNode)
	if !ok {
		t.Fatalf("Expected *ParallelCameraNode")
	}
	if tk.created != 1 {
		t.Errorf("Expected one toolkit allocation, got %d", tk.created)
	}
	if node.NearClip != float32(0.1) {
		t.Errorf("Expected near clip narrowed to float32, got %v", node.NearClip)
	}
	if node.FarClip != 1000 {
		t.Errorf("Expected far clip 1000, got %v", node.FarClip)
	}

	if cam.SyncBackendMirror(node) {
		t.Errorf("Expected no sync right after creation")
	}

	cam.SetFarClip(250)
	if !cam.SyncBackendMirror(node) {
		t.Fatalf("Expected sync after clip change")
	}
	if node.FarClip != 250 {
		t.Errorf("Expected far clip 250, got %v", node.FarClip)
	}
	if cam.SyncBackendMirror(node) {
		t.Errorf("Expected sync to clear the dirty flag")
	}

	cam.SetViewSize(10, 10)
	if cam.SyncBackendMirror(node) {
		t.Errorf("View size changes do not touch the mirror")
	}
	if cam.SyncBackendMirror(nil) {
		t.Errorf("Expected nil mirror to be ignored")
	}
}
