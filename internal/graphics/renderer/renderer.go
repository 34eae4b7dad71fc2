package renderer

import (
	"fmt"
	"log"
	"orthocam/internal/graphics"
	"orthocam/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Renderer drives a camera and a set of renderable features. It owns the
// camera's backend mirror and is the only place that synchronizes it.
type Renderer struct {
	renderables []Renderable
	camera      graphics.Camera
	mirror      graphics.BackendNode

	width  int
	height int

	// Reused every frame.
	proj    mgl64.Mat4
	view    mgl64.Mat4
	pickRay physics.PickRay
}

// NewRenderer creates the camera mirror and initializes all renderables.
func NewRenderer(tk graphics.Toolkit, camera graphics.Camera, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{
		renderables: rs,
		camera:      camera,
		mirror:      camera.CreateBackendMirror(tk),
	}

	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			// Release whatever was already set up.
			for _, done := range rs[:i] {
				done.Dispose()
			}
			return nil, fmt.Errorf("init renderable %T: %w", rb, err)
		}
	}

	return r, nil
}

func (r *Renderer) Camera() graphics.Camera { return r.camera }

func (r *Renderer) Mirror() graphics.BackendNode { return r.mirror }

// SetViewport updates the camera's view size and every renderable.
func (r *Renderer) SetViewport(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.camera.SetViewSize(float64(width), float64(height))
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
	log.Printf("Viewport resized to %dx%d", width, height)
}

// Frame syncs the mirror and computes this frame's matrices.
func (r *Renderer) Frame(dt float64) RenderContext {
	if r.camera.SyncBackendMirror(r.mirror) {
		log.Printf("Camera clip planes synced: near=%g far=%g", r.camera.NearClip(), r.camera.FarClip())
	}

	r.camera.ComputeProjectionTransform(&r.proj)
	r.camera.ComputeViewTransform(&r.view)

	return RenderContext{
		Camera:     r.camera,
		Mirror:     r.mirror,
		DT:         dt,
		Proj:       toMat32(&r.proj),
		View:       toMat32(&r.view),
		ViewWidth:  r.width,
		ViewHeight: r.height,
	}
}

// Render executes one frame across all renderables in order.
func (r *Renderer) Render(dt float64) {
	ctx := r.Frame(dt)
	for _, rb := range r.renderables {
		rb.Render(ctx)
	}
}

// Pick returns the camera's ray through window coordinate (x, y). The
// returned ray is owned by the renderer and overwritten by the next call.
func (r *Renderer) Pick(x, y float64) *physics.PickRay {
	return r.camera.ComputePickRay(x, y, &r.pickRay)
}

// Dispose cleans up all renderables
func (r *Renderer) Dispose() {
	for _, rb := range r.renderables {
		rb.Dispose()
	}
}

// toMat32 narrows a matrix for GPU upload.
func toMat32(m *mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
