package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// World-space basis used by every first-person component. The engine is right-handed with
// +Y up; a body with zero yaw faces -Z and its right hand points along +X.
var (
	WorldUp      = mgl32.Vec3{0, 1, 0}
	WorldForward = mgl32.Vec3{0, 0, -1}
	WorldRight   = mgl32.Vec3{1, 0, 0}
)

// YawRotation returns the quaternion that turns a body by yaw degrees about world up.
// Positive yaw turns to the right (clockwise when viewed from above).
//
// Parameters:
//   - yaw: heading in degrees
//
// Returns:
//   - mgl32.Quat: the rotation about +Y
func YawRotation(yaw float32) mgl32.Quat {
	return mgl32.QuatRotate(-mgl32.DegToRad(yaw), WorldUp)
}

// YawBasis returns the horizontal forward and right vectors for the given heading.
//
// Parameters:
//   - yaw: heading in degrees
//
// Returns:
//   - forward: unit vector the body faces
//   - right: unit vector to the body's right
func YawBasis(yaw float32) (forward, right mgl32.Vec3) {
	rad := mgl32.DegToRad(yaw)
	s, c := math32.Sin(rad), math32.Cos(rad)
	forward = mgl32.Vec3{s, 0, -c}
	right = mgl32.Vec3{c, 0, s}
	return
}

// LookDirection returns the view direction for a heading and a pitch.
// Positive pitch looks down, matching the camera's local pitch convention.
//
// Parameters:
//   - yaw: heading in degrees
//   - pitch: pitch in degrees
//
// Returns:
//   - mgl32.Vec3: unit view direction
func LookDirection(yaw, pitch float32) mgl32.Vec3 {
	forward, _ := YawBasis(yaw)
	p := mgl32.DegToRad(pitch)
	cp := math32.Cos(p)
	return mgl32.Vec3{forward[0] * cp, -math32.Sin(p), forward[2] * cp}
}
