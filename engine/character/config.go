package character

import (
	"errors"
	"fmt"
)

// RunPolicy selects what drives run speed.
type RunPolicy string

const (
	// RunPolicyHeld runs only while the run input is held. Holding run still flips the Running
	// flag every tick; the flag is a status value and does not affect speed.
	RunPolicyHeld RunPolicy = "held"
	// RunPolicyToggle flips Running on each run press and runs while the flag is set.
	RunPolicyToggle RunPolicy = "toggle"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid character config")

// Config holds the controller tunables. Angles are in degrees, distances in world units and
// speeds in units per second.
type Config struct {
	CrouchSpeed     float32 `yaml:"crouch_speed" env:"CROUCH_SPEED"`
	WalkSpeed       float32 `yaml:"walk_speed" env:"WALK_SPEED"`
	RunSpeed        float32 `yaml:"run_speed" env:"RUN_SPEED"`
	LookSensitivity float32 `yaml:"look_sensitivity" env:"LOOK_SENSITIVITY"`

	// Gravity is the vertical acceleration; it must be negative.
	Gravity    float32 `yaml:"gravity" env:"GRAVITY"`
	JumpHeight float32 `yaml:"jump_height" env:"JUMP_HEIGHT"`

	ZoomFOV   float32 `yaml:"zoom_fov" env:"ZOOM_FOV"`
	ZoomSpeed float32 `yaml:"zoom_speed" env:"ZOOM_SPEED"`

	CrouchHeight float32 `yaml:"crouch_height" env:"CROUCH_HEIGHT"`
	// HeadroomProbeDistance is how far above the body center a ceiling keeps a crouch in place.
	HeadroomProbeDistance float32 `yaml:"headroom_probe_distance" env:"HEADROOM_PROBE_DISTANCE"`
	// GroundStickVelocity replaces a downward velocity on landing so the grounded test stays stable.
	GroundStickVelocity float32 `yaml:"ground_stick_velocity" env:"GROUND_STICK_VELOCITY"`

	RunPolicy RunPolicy `yaml:"run_policy" env:"RUN_POLICY"`
}

// DefaultConfig returns the stock tunables.
//
// Returns:
//   - Config: default configuration
func DefaultConfig() Config {
	return Config{
		CrouchSpeed:           5,
		WalkSpeed:             10,
		RunSpeed:              15,
		LookSensitivity:       30,
		Gravity:               -19.62,
		JumpHeight:            3,
		ZoomFOV:               35,
		ZoomSpeed:             9,
		CrouchHeight:          1,
		HeadroomProbeDistance: 2,
		GroundStickVelocity:   -2,
		RunPolicy:             RunPolicyHeld,
	}
}

// Validate reports the first tunable that is out of range.
//
// Returns:
//   - error: nil if the config is usable, otherwise an error wrapping ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.CrouchSpeed < 0 || c.WalkSpeed < 0 || c.RunSpeed < 0:
		return fmt.Errorf("%w: move speeds must not be negative", ErrInvalidConfig)
	case c.LookSensitivity < 0:
		return fmt.Errorf("%w: look sensitivity must not be negative", ErrInvalidConfig)
	case c.Gravity >= 0:
		return fmt.Errorf("%w: gravity must be negative, got %v", ErrInvalidConfig, c.Gravity)
	case c.JumpHeight < 0:
		return fmt.Errorf("%w: jump height must not be negative", ErrInvalidConfig)
	case c.ZoomFOV <= 0 || c.ZoomFOV >= 180:
		return fmt.Errorf("%w: zoom fov must be in (0, 180), got %v", ErrInvalidConfig, c.ZoomFOV)
	case c.ZoomSpeed < 0:
		return fmt.Errorf("%w: zoom speed must not be negative", ErrInvalidConfig)
	case c.CrouchHeight <= 0:
		return fmt.Errorf("%w: crouch height must be positive", ErrInvalidConfig)
	case c.HeadroomProbeDistance <= 0:
		return fmt.Errorf("%w: headroom probe distance must be positive", ErrInvalidConfig)
	case c.GroundStickVelocity > 0:
		return fmt.Errorf("%w: ground stick velocity must not be positive", ErrInvalidConfig)
	case c.RunPolicy != RunPolicyHeld && c.RunPolicy != RunPolicyToggle:
		return fmt.Errorf("%w: unknown run policy %q", ErrInvalidConfig, c.RunPolicy)
	}
	return nil
}
