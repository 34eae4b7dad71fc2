package main

import (
	"orthocam/internal/config"
	"orthocam/internal/graphics/renderables/quads"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, "orthoview", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	glfw.SwapInterval(1)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE)

	return window, nil
}

// demoScene lays out a few overlapping panels in pixel coordinates. Lower Z
// is nearer the viewer.
func demoScene() []quads.Quad {
	return []quads.Quad{
		{X: 40, Y: 40, Z: 50, Width: 400, Height: 260, Color: mgl32.Vec4{0.20, 0.35, 0.60, 1}},
		{X: 240, Y: 160, Z: 0, Width: 320, Height: 220, Color: mgl32.Vec4{0.30, 0.65, 0.35, 1}},
		{X: 480, Y: 60, Z: -50, Width: 180, Height: 180, Color: mgl32.Vec4{0.75, 0.30, 0.30, 1}},
		{X: 100, Y: 380, Z: 20, Width: 600, Height: 120, Color: mgl32.Vec4{0.55, 0.55, 0.55, 1}},
	}
}
