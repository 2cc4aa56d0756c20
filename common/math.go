package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveZO builds a right-handed perspective projection that maps view depth to the
// WebGPU clip range [0, 1] (mgl32.Perspective targets OpenGL's [-1, 1]).
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near plane distance (must be > 0)
//   - far: far plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func PerspectiveZO(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1 / math32.Tan(fovY/2)
	depth := far / (near - far)
	return mgl32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, depth, -1,
		0, 0, near * depth, 0,
	}
}

// ViewMatrix builds the world-to-view matrix for an eye looking along a heading and pitch.
// The up vector follows the heading so a vertical view direction stays well defined.
//
// Parameters:
//   - eye: eye position in world space
//   - yaw: heading in degrees
//   - pitch: pitch in degrees, positive looks down
//
// Returns:
//   - mgl32.Mat4: the view matrix
func ViewMatrix(eye mgl32.Vec3, yaw, pitch float32) mgl32.Mat4 {
	forward := LookDirection(yaw, pitch)
	_, right := YawBasis(yaw)
	return mgl32.LookAtV(eye, eye.Add(forward), right.Cross(forward))
}

// Unproject maps a normalized device coordinate back through an inverse view-projection
// matrix, applying the perspective divide.
//
// Parameters:
//   - inv: inverse view-projection matrix
//   - ndc: x and y in [-1, 1], z in [0, 1]
//
// Returns:
//   - mgl32.Vec3: the world-space point, or the zero vector when w is zero
func Unproject(inv mgl32.Mat4, ndc mgl32.Vec3) mgl32.Vec3 {
	p := inv.Mul4x1(ndc.Vec4(1))
	if p[3] == 0 {
		return mgl32.Vec3{}
	}
	return p.Vec3().Mul(1 / p[3])
}

// Clamp01 limits v to the closed interval [0, 1].
func Clamp01(v float32) float32 {
	return mgl32.Clamp(v, 0, 1)
}

// Lerp interpolates from a toward b by t, clamping t to [0, 1] so the result never leaves
// the segment between a and b.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	t = Clamp01(t)
	return a + (b-a)*t
}
