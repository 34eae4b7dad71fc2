package main

import (
	"log"
	"orthocam/internal/config"
	"orthocam/internal/graphics"
	"orthocam/internal/graphics/renderables/quads"
	renderer "orthocam/internal/graphics/renderer"
	"orthocam/internal/input"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := applyFlags(os.Args[1:], os.Stderr); err != nil {
		os.Exit(2)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	im := input.NewInputManager()
	im.Attach(window)

	camera := graphics.NewParallelCamera()
	near, far := config.GetClipPlanes()
	camera.SetNearClip(near)
	camera.SetFarClip(far)

	scene := quads.NewQuads(demoScene()...)
	r, err := renderer.NewRenderer(renderer.NewToolkit(), camera, scene)
	if err != nil {
		panic(err)
	}
	defer r.Dispose()

	resize := func() {
		fbw, fbh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		// Pick coordinates arrive in window units, so the camera uses those.
		r.SetViewport(window.GetSize())
	}
	resize()
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		resize()
	})

	lastTime := time.Now()
	for !window.ShouldClose() {
		start := time.Now()
		dt := start.Sub(lastTime).Seconds()
		lastTime = start

		glfw.PollEvents()
		if im.JustPressed(input.ActionQuit) {
			window.SetShouldClose(true)
		}
		stepClipPlanes(im, r.Camera())
		handlePick(im, r, scene)

		gl.ClearColor(0.08, 0.08, 0.10, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		r.Render(dt)
		window.SwapBuffers()

		if d := time.Since(start); d > config.GetSlowFrameThreshold() {
			log.Printf("Slow frame: %v", d)
		}
		im.PostUpdate()
	}
}

// stepClipPlanes moves the camera's clip planes by the configured step and
// records the result in the viewer settings. It reports whether anything
// changed.
func stepClipPlanes(im *input.InputManager, cam graphics.Camera) bool {
	step := config.GetClipStep()
	switch {
	case im.JustPressed(input.ActionNearClipUp):
		cam.SetNearClip(cam.NearClip() + step)
	case im.JustPressed(input.ActionNearClipDown):
		cam.SetNearClip(cam.NearClip() - step)
	case im.JustPressed(input.ActionFarClipUp):
		cam.SetFarClip(cam.FarClip() + step)
	case im.JustPressed(input.ActionFarClipDown):
		cam.SetFarClip(cam.FarClip() - step)
	default:
		return false
	}
	config.SetClipPlanes(cam.NearClip(), cam.FarClip())
	return true
}

func handlePick(im *input.InputManager, r *renderer.Renderer, scene *quads.Quads) {
	if !im.JustPressed(input.ActionPick) {
		return
	}
	x, y := im.Cursor()
	ray := r.Pick(x, y)
	idx := scene.HighlightRay(ray)
	if idx < 0 {
		log.Printf("Pick (%.0f, %.0f): origin=%v dir=%v hit nothing", x, y, ray.Origin, ray.Direction)
		return
	}
	log.Printf("Pick (%.0f, %.0f): origin=%v dir=%v quad=%d %+v", x, y, ray.Origin, ray.Direction, idx, scene.Items()[idx])
}
