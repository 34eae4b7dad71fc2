package graphics

import (
	"orthocam/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultNearClip   = 0.1
	DefaultFarClip    = 100.0
	DefaultViewWidth  = 1.0
	DefaultViewHeight = 1.0
)

// Camera is the capability set the renderer and picking code rely on.
// Output parameters are caller-provided buffers that get overwritten.
type Camera interface {
	NearClip() float64
	SetNearClip(near float64)
	FarClip() float64
	SetFarClip(far float64)
	ViewWidth() float64
	ViewHeight() float64
	SetViewSize(width, height float64)
	CameraTransform() mgl64.Mat4
	SetCameraTransform(m mgl64.Mat4)

	Copy() Camera
	CreateBackendMirror(tk Toolkit) BackendNode
	SyncBackendMirror(node BackendNode) bool

	ComputePickRay(x, y float64, pickRay *physics.PickRay) *physics.PickRay
	ComputeProjectionTransform(proj *mgl64.Mat4)
	ComputeViewTransform(view *mgl64.Mat4)
	ComputePosition(position *mgl64.Vec3) *mgl64.Vec3
}

// CameraBase holds the state shared by every camera kind. No validation is
// done: near >= far or a non-positive view size flow straight into the
// computed transforms.
type CameraBase struct {
	nearClip   float64
	farClip    float64
	viewWidth  float64
	viewHeight float64
	transform  mgl64.Mat4

	// clipDirty is set whenever a clip plane changes and cleared once the
	// backend mirror has received the new values.
	clipDirty bool
}

func newCameraBase() CameraBase {
	return CameraBase{
		nearClip:   DefaultNearClip,
		farClip:    DefaultFarClip,
		viewWidth:  DefaultViewWidth,
		viewHeight: DefaultViewHeight,
		transform:  mgl64.Ident4(),
		clipDirty:  true,
	}
}

func (c *CameraBase) NearClip() float64 { return c.nearClip }

func (c *CameraBase) SetNearClip(near float64) {
	c.nearClip = near
	c.clipDirty = true
}

func (c *CameraBase) FarClip() float64 { return c.farClip }

func (c *CameraBase) SetFarClip(far float64) {
	c.farClip = far
	c.clipDirty = true
}

func (c *CameraBase) ViewWidth() float64  { return c.viewWidth }
func (c *CameraBase) ViewHeight() float64 { return c.viewHeight }

// SetViewSize is called by the owner (usually the renderer) when the
// window or sub-scene it renders into is resized.
func (c *CameraBase) SetViewSize(width, height float64) {
	c.viewWidth = width
	c.viewHeight = height
}

// CameraTransform returns the camera-to-world transform.
func (c *CameraBase) CameraTransform() mgl64.Mat4 { return c.transform }

func (c *CameraBase) SetCameraTransform(m mgl64.Mat4) { c.transform = m }

// SyncBackendMirror pushes the clip planes, narrowed to float32, when they
// changed since the last push. It reports whether anything was written.
func (c *CameraBase) SyncBackendMirror(node BackendNode) bool {
	if node == nil || !c.clipDirty {
		return false
	}
	c.pushClips(node)
	return true
}

func (c *CameraBase) pushClips(node BackendNode) {
	node.SetNearClip(float32(c.nearClip))
	node.SetFarClip(float32(c.farClip))
	c.clipDirty = false
}
