package graphics

import "github.com/go-gl/mathgl/mgl64"

// flipZ converts between the OpenGL eye space (looking down -Z) and the
// scene-graph convention where +Z points away from the viewer.
var flipZ = mgl64.Scale3D(1, 1, -1)

// Ortho is mgl64.Ortho with the depth axis negated on output: z = -near maps
// to NDC +1 and z = -far to NDC -1. With a symmetric range (near = -far) this
// sends +Z, into the screen, towards the far end of the depth buffer.
func Ortho(left, right, bottom, top, near, far float64) mgl64.Mat4 {
	return flipZ.Mul4(mgl64.Ortho(left, right, bottom, top, near, far))
}
