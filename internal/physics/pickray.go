package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PickRay is a world-space ray cast from a window coordinate for hit-testing.
// NearClip and FarClip bound the ray parameter t (see At).
type PickRay struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	NearClip  float64
	FarClip   float64
}

// ComputeParallelPickRay builds the ray for window coordinate (x, y) under an
// orthographic projection. The ray starts on the camera plane z = -1, points
// along +Z and is then moved into world space by cameraTransform.
// If pickRay is nil a new one is allocated; otherwise it is overwritten.
func ComputeParallelPickRay(x, y float64, cameraTransform mgl64.Mat4, nearClip, farClip float64, pickRay *PickRay) *PickRay {
	if pickRay == nil {
		pickRay = &PickRay{}
	}

	pickRay.Set(x, y)
	pickRay.NearClip = nearClip
	pickRay.FarClip = farClip
	pickRay.Transform(cameraTransform)
	return pickRay
}

// Set resets the ray to the untransformed parallel ray through (x, y).
func (r *PickRay) Set(x, y float64) {
	r.Origin = mgl64.Vec3{x, y, -1}
	r.Direction = mgl64.Vec3{0, 0, 1}
}

// Transform applies m to the origin as a point and to the direction as a vector.
func (r *PickRay) Transform(m mgl64.Mat4) {
	r.Origin = m.Mul4x1(r.Origin.Vec4(1)).Vec3()
	r.Direction = m.Mul4x1(r.Direction.Vec4(0)).Vec3()
}

// At returns Origin + t*Direction.
func (r *PickRay) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IsBounded reports whether either depth bound is finite.
func (r *PickRay) IsBounded() bool {
	return !math.IsInf(r.NearClip, -1) || !math.IsInf(r.FarClip, 1)
}

// IntersectPlaneZ returns the point where the ray crosses the world plane
// z = planeZ together with its ray parameter. It reports false when the ray
// runs parallel to the plane or the crossing lies outside [NearClip, FarClip].
func (r *PickRay) IntersectPlaneZ(planeZ float64) (mgl64.Vec3, float64, bool) {
	dz := r.Direction.Z()
	if dz == 0 {
		return mgl64.Vec3{}, 0, false
	}

	t := (planeZ - r.Origin.Z()) / dz
	if t < r.NearClip || t > r.FarClip {
		return mgl64.Vec3{}, t, false
	}

	hit := r.At(t)
	// Snap away the rounding left by the transform.
	hit[2] = planeZ
	return hit, t, true
}
