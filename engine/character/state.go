package character

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// State is the movement and view state of one controller.
type State struct {
	// VerticalVelocity is the signed vertical speed; negative while falling.
	VerticalVelocity float32
	Grounded         bool

	Crouching bool
	Running   bool
	Jumping   bool
	Launching bool

	Mode      Mode
	MoveSpeed float32

	// Pitch is the camera pitch in degrees, always within [-90, 90]. Positive looks down.
	Pitch float32

	CurrentFOV float32
	TargetFOV  float32
	BaseFOV    float32

	CapsuleHeight  float32
	StandingHeight float32

	LaunchDirection mgl32.Vec3
}

// String returns a one-line summary suitable for periodic logging.
func (s State) String() string {
	return fmt.Sprintf("mode=%s speed=%.1f vy=%.2f grounded=%t crouch=%t run=%t jump=%t launch=%t pitch=%.1f fov=%.1f height=%.2f",
		s.Mode, s.MoveSpeed, s.VerticalVelocity, s.Grounded,
		s.Crouching, s.Running, s.Jumping, s.Launching,
		s.Pitch, s.CurrentFOV, s.CapsuleHeight,
	)
}
