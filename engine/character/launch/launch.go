// Package launch provides the rocket-jump ability: firing at the ground throws the character
// up and backward until its vertical speed falls below the exit threshold.
package launch

import (
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/physics"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid launch config")

// backward is the body's local backward axis; rotated by yaw it gives the launch direction.
var backward = mgl32.Vec3{0, 0, 1}

// Config holds the launch tunables.
type Config struct {
	// RocketHeight is the apex height of the launch impulse.
	RocketHeight float32 `yaml:"rocket_height" env:"ROCKET_HEIGHT"`
	// Speed is the planar speed along the launch direction while launching.
	Speed float32 `yaml:"speed" env:"SPEED"`
	// ExitSpeed ends the launch once the vertical speed falls below it.
	ExitSpeed float32 `yaml:"exit_speed" env:"EXIT_SPEED"`
}

// DefaultConfig returns the stock launch tunables.
func DefaultConfig() Config {
	return Config{
		RocketHeight: 10,
		Speed:        10,
		ExitSpeed:    0.1,
	}
}

// Validate reports the first tunable that is out of range.
func (c Config) Validate() error {
	switch {
	case c.RocketHeight < 0:
		return fmt.Errorf("%w: rocket height must not be negative", ErrInvalidConfig)
	case c.Speed < 0:
		return fmt.Errorf("%w: speed must not be negative", ErrInvalidConfig)
	case c.ExitSpeed <= 0:
		return fmt.Errorf("%w: exit speed must be positive", ErrInvalidConfig)
	}
	return nil
}

// Launcher is a character.Extension with two states, idle and launching.
//
// Idle to launching: while grounded, a fire trigger casts a ray through the camera at the
// pointer against the ground layers. A hit sets the vertical velocity to reach RocketHeight
// and fixes the launch direction to the body's backward axis under its current yaw.
//
// Launching: every tick moves the body along the launch direction at Speed. The launch ends
// on the tick the vertical speed is below ExitSpeed; there is no other way out, so a launch
// whose speed steps over the threshold keeps pushing until the speed lands inside it.
//
// A Launcher keeps no per-character state (that lives in character.State), so one launcher
// may be shared by controllers ticked in parallel.
type Launcher struct {
	cfg        Config
	groundMask physics.LayerMask
	debug      bool
}

var _ character.Extension = &Launcher{}

// NewLauncher creates a launcher. Defaults: DefaultConfig, aiming at physics.LayerGround.
//
// Parameters:
//   - options: functional options to configure the launcher
//
// Returns:
//   - *Launcher: the new launcher
//   - error: a Config validation error
func NewLauncher(options ...LauncherBuilderOption) (*Launcher, error) {
	l := &Launcher{
		cfg:        DefaultConfig(),
		groundMask: physics.LayerGround.Mask(),
	}
	for _, option := range options {
		option(l)
	}
	if err := l.cfg.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Launcher) Name() string {
	return "launch"
}

func (l *Launcher) Update(f *character.Frame) {
	if f.Grounded() && f.Input.Fire {
		l.fire(f)
	}
	if !f.Launching() {
		return
	}

	vy := f.VerticalVelocity()
	if math32.Abs(vy) < l.cfg.ExitSpeed {
		f.SetLaunching(false)
		if l.debug {
			log.Printf("[Launcher] launch ended, vy=%.3f", vy)
		}
	}
	f.Body().Move(f.LaunchDirection().Mul(l.cfg.Speed * f.Dt))
}

// fire aims through the pointer and starts a launch when the ray finds ground.
func (l *Launcher) fire(f *character.Frame) {
	origin, dir := f.Camera().ScreenPointToRay(f.Input.Pointer[0], f.Input.Pointer[1])
	hit, ok := f.Raycaster().Raycast(origin, dir, physics.Unbounded, l.groundMask)
	if !ok {
		if l.debug {
			log.Printf("[Launcher] fire missed ground")
		}
		return
	}

	yaw := f.Body().Yaw()
	f.SetLaunchDirection(common.YawRotation(yaw).Rotate(backward))
	vy := character.ImpulseVelocity(l.cfg.RocketHeight, f.Config().Gravity)
	f.SetVerticalVelocity(vy)
	f.SetLaunching(true)
	if l.debug {
		log.Printf("[Launcher] launch at %v, yaw=%.1f vy=%.2f", hit.Point, yaw, vy)
	}
}
