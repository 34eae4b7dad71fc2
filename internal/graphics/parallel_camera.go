package graphics

import (
	"math"
	"orthocam/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

// ParallelCamera renders without perspective correction.
//
// The camera sits at the center of the window and looks along +Z. Its
// coordinate system has the origin in the upper left corner with Y pointing
// down and Z pointing into the screen; units are pixels. Scenes that only use
// 2D transforms never need to care about the depth range.
type ParallelCamera struct {
	CameraBase
}

var _ Camera = (*ParallelCamera)(nil)

// NewParallelCamera returns a camera with default clip planes and a 1x1 view.
func NewParallelCamera() *ParallelCamera {
	return &ParallelCamera{CameraBase: newCameraBase()}
}

// Copy duplicates the clip planes only. The view size is owned by whatever
// renders the copy and starts at its default.
func (c *ParallelCamera) Copy() Camera {
	cp := NewParallelCamera()
	cp.SetNearClip(c.NearClip())
	cp.SetFarClip(c.FarClip())
	return cp
}

// CreateBackendMirror asks the toolkit for a parallel camera node and seeds
// it with the current clip planes.
func (c *ParallelCamera) CreateBackendMirror(tk Toolkit) BackendNode {
	node := tk.CreateParallelCamera()
	c.pushClips(node)
	return node
}

// ComputePickRay returns the ray through window coordinate (x, y).
func (c *ParallelCamera) ComputePickRay(x, y float64, pickRay *physics.PickRay) *physics.PickRay {
	return physics.ComputeParallelPickRay(x, y, c.CameraTransform(),
		// TODO: pass NearClip/FarClip once the renderer clips with them.
		math.Inf(-1), math.Inf(1), pickRay)
}

// ComputeProjectionTransform writes the orthographic projection for the
// current view size. The depth range is derived from the view footprint, not
// from the clip planes, so 2D content at pixel-sized depths stays visible.
func (c *ParallelCamera) ComputeProjectionTransform(proj *mgl64.Mat4) {
	viewWidth := c.ViewWidth()
	viewHeight := c.ViewHeight()
	halfDepth := viewHeight / 2.0
	if viewWidth > viewHeight {
		halfDepth = viewWidth / 2.0
	}

	*proj = Ortho(0.0, viewWidth, viewHeight, 0.0, -halfDepth, halfDepth)
}

func (c *ParallelCamera) ComputeViewTransform(view *mgl64.Mat4) {
	*view = mgl64.Ident4()
}

// ComputePosition writes (0, 0, -1) into position, allocating it when nil.
func (c *ParallelCamera) ComputePosition(position *mgl64.Vec3) *mgl64.Vec3 {
	if position == nil {
		position = &mgl64.Vec3{}
	}

	*position = mgl64.Vec3{0.0, 0.0, -1.0}
	return position
}
