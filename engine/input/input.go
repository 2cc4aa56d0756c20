// Package input maps raw window events (keys, mouse buttons, cursor motion) to the logical
// actions a first-person character reads once per tick.
package input

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// Action is a logical control that one or more keys or mouse buttons can drive.
type Action string

const (
	ActionMoveForward  Action = "move_forward"
	ActionMoveBackward Action = "move_backward"
	ActionMoveLeft     Action = "move_left"
	ActionMoveRight    Action = "move_right"
	ActionJump         Action = "jump"
	ActionRun          Action = "run"
	ActionCrouch       Action = "crouch"
	ActionZoom         Action = "zoom"
	ActionFire         Action = "fire"
)

// Actions lists every bindable action in a stable order.
var Actions = []Action{
	ActionMoveForward, ActionMoveBackward, ActionMoveLeft, ActionMoveRight,
	ActionJump, ActionRun, ActionCrouch, ActionZoom, ActionFire,
}

var (
	// ErrUnknownAction is returned when a binding names an action that does not exist.
	ErrUnknownAction = errors.New("unknown input action")
	// ErrUnknownKey is returned when a binding names a key or mouse button that does not exist.
	ErrUnknownKey = errors.New("unknown key name")
	// ErrNoSource is returned by Enable when the manager has no event source to attach to.
	ErrNoSource = errors.New("input manager has no event source")
)

// Snapshot is the input state for one tick. It is a plain value: sampling never aliases
// the manager's internal state.
type Snapshot struct {
	// Look is the mouse delta since the last sample, scaled; +X turns right, +Y looks up.
	Look mgl32.Vec2
	// Move is the planar move request; +X strafes right, +Y moves forward. Its length is at most 1.
	Move mgl32.Vec2

	// Run, Zoom and Crouch are held values; anything greater than zero counts as held.
	Run    float32
	Zoom   float32
	Crouch float32

	// Jump and Fire are edge triggers: true only on the first sample after the press.
	Jump bool
	Fire bool

	// Pointer is the cursor position in window pixels used for screen-space aiming.
	Pointer mgl32.Vec2
}

// RunHeld reports whether the run input is held.
func (s Snapshot) RunHeld() bool { return s.Run > 0 }

// ZoomHeld reports whether the zoom input is held.
func (s Snapshot) ZoomHeld() bool { return s.Zoom > 0 }

// CrouchHeld reports whether the crouch input is held.
func (s Snapshot) CrouchHeld() bool { return s.Crouch > 0 }
