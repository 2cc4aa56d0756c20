// Package character implements the first-person locomotion and view core: grounding and
// gravity, planar movement, mouse-look, zoom, crouch posture, jump and run. Optional abilities
// plug in as Extensions that run at the end of every tick.
//
// The controller never resolves collisions or renders; it requests displacements, rotations,
// heights and field-of-view changes from the collaborators it is built with.
package character

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrNilBody is returned by NewController when no body is supplied.
	ErrNilBody = errors.New("character: body is required")
	// ErrNilCamera is returned by NewController when no camera is supplied.
	ErrNilCamera = errors.New("character: camera is required")
	// ErrNilRaycaster is returned by NewController when no raycaster is supplied.
	ErrNilRaycaster = errors.New("character: raycaster is required")
	// ErrNilInput is returned by NewController when no input source is supplied.
	ErrNilInput = errors.New("character: input source is required")
)

// Body is the movable collision volume the controller drives. physics.Capsule satisfies it.
type Body interface {
	// IsGrounded reports whether the body rests on a surface.
	IsGrounded() bool

	// Move requests a world-space displacement; collision resolution is up to the body.
	Move(delta mgl32.Vec3)

	// Height returns the current body height.
	Height() float32

	// SetHeight resizes the body.
	SetHeight(height float32)

	// Center returns the world-space center of the body, the origin of the headroom probe.
	Center() mgl32.Vec3

	// Forward, Right and Up return the body's local axes in world space.
	Forward() mgl32.Vec3
	Right() mgl32.Vec3
	Up() mgl32.Vec3

	// Yaw returns the heading in degrees.
	Yaw() float32

	// RotateYaw turns the body about world up.
	RotateYaw(delta float32)
}

// Camera is the view the controller pitches and zooms. camera.Camera satisfies it.
type Camera interface {
	Fov() float32
	SetFov(fov float32)
	SetLocalPitch(pitch float32)
	ScreenPointToRay(x, y float32) (origin, direction mgl32.Vec3)
}

// Raycaster answers nearest-hit ray queries. *physics.World satisfies it.
type Raycaster interface {
	Raycast(origin, direction mgl32.Vec3, maxDistance float32, mask physics.LayerMask) (physics.Hit, bool)
}

// InputSource supplies one Snapshot per tick and owns the device bindings that produce it.
// input.Manager satisfies it.
type InputSource interface {
	Enable() error
	Disable()
	Sample() input.Snapshot
}

// Mode is the locomotion mode resolved once per tick. It selects the move speed.
type Mode uint8

const (
	ModeWalk Mode = iota
	ModeRun
	ModeCrouch
	ModeLaunch
)

func (m Mode) String() string {
	switch m {
	case ModeWalk:
		return "walk"
	case ModeRun:
		return "run"
	case ModeCrouch:
		return "crouch"
	case ModeLaunch:
		return "launch"
	default:
		return "unknown"
	}
}
