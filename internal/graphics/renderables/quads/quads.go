package quads

import (
	"math"
	"orthocam/internal/graphics"
	renderer "orthocam/internal/graphics/renderer"
	"orthocam/internal/physics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;
void main() {
	gl_Position = proj * view * model * vec4(aPos, 1.0);
}
`

const fragmentShader = `#version 410 core
uniform vec4 color;
out vec4 FragColor;
void main() {
	FragColor = color;
}
`

// Unit square in the XY plane, wound counter-clockwise on screen once the
// projection flips Y.
var unitQuad = []float32{
	0, 0, 0,
	0, 1, 0,
	1, 1, 0,
	1, 1, 0,
	1, 0, 0,
	0, 0, 0,
}

var highlightColor = mgl32.Vec4{1.0, 0.85, 0.2, 1.0}

// Quad is an axis-aligned rectangle in pixel coordinates at depth Z.
type Quad struct {
	X, Y, Z       float32
	Width, Height float32
	Color         mgl32.Vec4
}

// Contains reports whether pixel (x, y) lies inside the rectangle.
func (q Quad) Contains(x, y float64) bool {
	return x >= float64(q.X) && x < float64(q.X+q.Width) &&
		y >= float64(q.Y) && y < float64(q.Y+q.Height)
}

func (q Quad) model() mgl32.Mat4 {
	return mgl32.Translate3D(q.X, q.Y, q.Z).Mul4(mgl32.Scale3D(q.Width, q.Height, 1))
}

// Quads draws flat rectangles through the active camera.
type Quads struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32

	items       []Quad
	highlighted int
}

func NewQuads(items ...Quad) *Quads {
	return &Quads{items: items, highlighted: -1}
}

// Init compiles the shader and uploads the unit quad.
func (q *Quads) Init() error {
	var err error
	q.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(unitQuad)*4, gl.Ptr(unitQuad), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

// HighlightRay marks the first quad the ray passes through, testing each
// quad on its own depth plane, and returns its index or -1 when the ray hits
// nothing.
func (q *Quads) HighlightRay(ray *physics.PickRay) int {
	q.highlighted = -1
	best := math.Inf(1)
	for i, it := range q.items {
		hit, t, ok := ray.IntersectPlaneZ(float64(it.Z))
		if !ok || t >= best || !it.Contains(hit.X(), hit.Y()) {
			continue
		}
		best = t
		q.highlighted = i
	}
	return q.highlighted
}

func (q *Quads) Items() []Quad { return q.items }

func (q *Quads) Render(ctx renderer.RenderContext) {
	q.shader.Use()
	q.shader.SetMatrix4("proj", &ctx.Proj)
	q.shader.SetMatrix4("view", &ctx.View)

	gl.BindVertexArray(q.vao)
	for i, it := range q.items {
		model := it.model()
		color := it.Color
		if i == q.highlighted {
			color = highlightColor
		}
		q.shader.SetMatrix4("model", &model)
		q.shader.SetVector4("color", color)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(unitQuad)/3))
	}
	gl.BindVertexArray(0)
}

// SetViewport is a no-op; the projection already tracks the view size.
func (q *Quads) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (q *Quads) Dispose() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
	}
	if q.shader != nil {
		q.shader.Delete()
	}
}
