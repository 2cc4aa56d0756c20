package character

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/physics"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var controllerCount atomic.Uint64

// Controller is a first-person character: it owns a State and advances it once per tick
// against its body, camera, raycaster and input source.
//
// A Controller is safe to query from other goroutines, but ticks of one controller must not
// overlap; Tick serializes them.
type Controller struct {
	mu *sync.Mutex

	id  string
	cfg Config

	body Body
	cam  Camera
	ray  Raycaster
	in   InputSource

	extensions []Extension

	state  State
	active bool

	// runWasHeld is the run input of the previous tick, for toggle edge detection.
	runWasHeld bool
}

// NewController creates a controller around its collaborators. The body's current height is
// captured as the standing height and the camera's current FOV as the base FOV.
//
// Parameters:
//   - body: the movable collision volume
//   - cam: the view to pitch and zoom
//   - ray: scene queries for the headroom probe and extensions
//   - in: the input source sampled by Update
//   - options: functional options to configure the controller
//
// Returns:
//   - *Controller: the new, inactive controller
//   - error: one of the ErrNil* sentinels, or a Config validation error
func NewController(body Body, cam Camera, ray Raycaster, in InputSource, options ...ControllerBuilderOption) (*Controller, error) {
	switch {
	case body == nil:
		return nil, ErrNilBody
	case cam == nil:
		return nil, ErrNilCamera
	case ray == nil:
		return nil, ErrNilRaycaster
	case in == nil:
		return nil, ErrNilInput
	}

	c := &Controller{
		mu:   &sync.Mutex{},
		id:   fmt.Sprintf("player-%d", controllerCount.Add(1)),
		cfg:  DefaultConfig(),
		body: body,
		cam:  cam,
		ray:  ray,
		in:   in,
	}
	for _, option := range options {
		option(c)
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("controller %s: %w", c.id, err)
	}

	fov := cam.Fov()
	height := body.Height()
	c.state = State{
		Grounded:       body.IsGrounded(),
		Mode:           ModeWalk,
		MoveSpeed:      c.cfg.WalkSpeed,
		CurrentFOV:     fov,
		TargetFOV:      fov,
		BaseFOV:        fov,
		CapsuleHeight:  height,
		StandingHeight: height,
	}
	return c, nil
}

// ID returns the controller's identifier.
func (c *Controller) ID() string {
	return c.id
}

// Config returns the controller's tunables.
func (c *Controller) Config() Config {
	return c.cfg
}

// Body returns the controlled body.
func (c *Controller) Body() Body {
	return c.body
}

// Camera returns the controlled camera.
func (c *Controller) Camera() Camera {
	return c.cam
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetBaseFOV changes the field of view the camera returns to when zoom is released.
//
// Parameters:
//   - fov: field of view in degrees
func (c *Controller) SetBaseFOV(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.BaseFOV = fov
}

// Activate acquires the input bindings. Activating an active controller does nothing.
//
// Returns:
//   - error: the input source's Enable error, wrapped
func (c *Controller) Activate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return nil
	}
	if err := c.in.Enable(); err != nil {
		return fmt.Errorf("activate %s: %w", c.id, err)
	}
	c.active = true
	log.Printf("[Character] %s activated", c.id)
	return nil
}

// Deactivate releases the input bindings. Deactivating an inactive controller does nothing.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return
	}
	c.in.Disable()
	c.active = false
	log.Printf("[Character] %s deactivated", c.id)
}

// Active reports whether the controller currently holds its input bindings.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Update samples the input source and ticks once. Inactive controllers do nothing.
//
// Parameters:
//   - dt: elapsed time in seconds
func (c *Controller) Update(dt float32) {
	if !c.Active() {
		return
	}
	c.Tick(dt, c.in.Sample())
}

// Tick advances the controller by dt with the given input. Steps run in a fixed order:
// grounding and mode resolution, movement, look, zoom, crouch, jump, run, then extensions.
//
// Parameters:
//   - dt: elapsed time in seconds
//   - in: the input for this tick
func (c *Controller) Tick(dt float32, in input.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ground()
	c.state.Mode = c.resolveMode(in)
	c.state.MoveSpeed = c.speed(c.state.Mode)

	c.move(dt, in)
	c.look(dt, in)
	c.zoom(dt, in)
	c.crouch(in)
	c.jump(in)
	c.run(in)

	if len(c.extensions) > 0 {
		f := &Frame{Dt: dt, Input: in, c: c}
		for _, ext := range c.extensions {
			ext.Update(f)
		}
	}
}

// ground samples contact and settles the vertical velocity while resting or landing.
func (c *Controller) ground() {
	s := &c.state
	wasGrounded := s.Grounded
	s.Grounded = c.body.IsGrounded()
	if !s.Grounded || s.VerticalVelocity >= 0 {
		return
	}
	s.VerticalVelocity = c.cfg.GroundStickVelocity
	s.Jumping = false
	// A toggled run persists across ground ticks and only ends on landing.
	if c.cfg.RunPolicy != RunPolicyToggle || !wasGrounded {
		s.Running = false
	}
}

// resolveMode picks the single locomotion mode for this tick.
// Priority: crouch (while grounded), launch, run, walk.
func (c *Controller) resolveMode(in input.Snapshot) Mode {
	s := &c.state
	crouching := s.Crouching || in.CrouchHeld()
	running := in.RunHeld()
	if c.cfg.RunPolicy == RunPolicyToggle {
		running = s.Running
	}
	switch {
	case crouching && s.Grounded:
		return ModeCrouch
	case s.Launching:
		return ModeLaunch
	case running:
		return ModeRun
	default:
		return ModeWalk
	}
}

func (c *Controller) speed(m Mode) float32 {
	switch m {
	case ModeCrouch:
		return c.cfg.CrouchSpeed
	case ModeRun:
		return c.cfg.RunSpeed
	default:
		return c.cfg.WalkSpeed
	}
}

// move requests the planar displacement, then integrates gravity and requests the vertical one.
func (c *Controller) move(dt float32, in input.Snapshot) {
	s := &c.state
	planar := c.body.Right().Mul(in.Move[0]).Add(c.body.Forward().Mul(in.Move[1]))
	c.body.Move(planar.Mul(s.MoveSpeed * dt))

	s.VerticalVelocity += c.cfg.Gravity * dt
	c.body.Move(mgl32.Vec3{0, s.VerticalVelocity * dt, 0})
}

func (c *Controller) look(dt float32, in input.Snapshot) {
	s := &c.state
	s.Pitch = mgl32.Clamp(s.Pitch-in.Look[1]*c.cfg.LookSensitivity*dt, -90, 90)
	c.cam.SetLocalPitch(s.Pitch)
	c.body.RotateYaw(in.Look[0] * c.cfg.LookSensitivity * dt)
}

func (c *Controller) zoom(dt float32, in input.Snapshot) {
	s := &c.state
	if in.ZoomHeld() {
		s.TargetFOV = c.cfg.ZoomFOV
	} else {
		s.TargetFOV = s.BaseFOV
	}
	s.CurrentFOV = common.Lerp(c.cam.Fov(), s.TargetFOV, c.cfg.ZoomSpeed*dt)
	c.cam.SetFov(s.CurrentFOV)
}

// crouch applies the posture every tick. Without crouch input the body only stands up when
// the probe above its center finds no ceiling.
func (c *Controller) crouch(in input.Snapshot) {
	s := &c.state
	switch {
	case in.CrouchHeld():
		s.Crouching = true
		c.setHeight(c.cfg.CrouchHeight)
	case c.obstructed():
		s.Crouching = true
		c.setHeight(c.cfg.CrouchHeight)
	default:
		s.Crouching = false
		c.setHeight(s.StandingHeight)
	}
}

func (c *Controller) obstructed() bool {
	_, hit := c.ray.Raycast(c.body.Center(), c.body.Up(), c.cfg.HeadroomProbeDistance, physics.LayerAll)
	return hit
}

// setHeight resizes the body and records the height it actually took.
func (c *Controller) setHeight(h float32) {
	c.body.SetHeight(h)
	c.state.CapsuleHeight = c.body.Height()
}

func (c *Controller) jump(in input.Snapshot) {
	s := &c.state
	if !s.Grounded || !in.Jump {
		return
	}
	s.Jumping = !s.Jumping
	s.VerticalVelocity = ImpulseVelocity(c.cfg.JumpHeight, c.cfg.Gravity)
}

func (c *Controller) run(in input.Snapshot) {
	s := &c.state
	held := in.RunHeld()
	defer func() { c.runWasHeld = held }()

	if s.Crouching && s.Grounded {
		s.Running = false
		return
	}
	switch c.cfg.RunPolicy {
	case RunPolicyToggle:
		if held && !c.runWasHeld {
			s.Running = !s.Running
		}
	default:
		if held {
			s.Running = !s.Running
		}
	}
}

// ImpulseVelocity returns the launch speed that peaks at height under gravity.
//
// Parameters:
//   - height: apex height above the start point
//   - gravity: vertical acceleration (negative)
//
// Returns:
//   - float32: the initial upward velocity, sqrt(2 * height * |gravity|)
func ImpulseVelocity(height, gravity float32) float32 {
	return math32.Sqrt(height * 2 * math32.Abs(gravity))
}
