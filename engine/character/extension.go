package character

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Extension is an optional ability that runs after the built-in steps of every tick.
// Extensions run in the order they were added and see the state those steps left behind.
type Extension interface {
	// Name identifies the extension in logs.
	Name() string

	// Update advances the extension by one tick. f is only valid for the duration of the call.
	Update(f *Frame)
}

// Frame exposes the controller's collaborators and the state an extension may touch during
// one tick.
type Frame struct {
	// Dt is the tick's elapsed time in seconds.
	Dt float32
	// Input is the snapshot the tick was driven by.
	Input input.Snapshot

	c *Controller
}

// Config returns the controller tunables.
func (f *Frame) Config() Config { return f.c.cfg }

// Body returns the controlled body.
func (f *Frame) Body() Body { return f.c.body }

// Camera returns the controlled camera.
func (f *Frame) Camera() Camera { return f.c.cam }

// Raycaster returns the scene query used by the controller.
func (f *Frame) Raycaster() Raycaster { return f.c.ray }

// Grounded reports the grounded flag sampled at the start of the tick.
func (f *Frame) Grounded() bool { return f.c.state.Grounded }

// VerticalVelocity returns the current vertical velocity.
func (f *Frame) VerticalVelocity() float32 { return f.c.state.VerticalVelocity }

// SetVerticalVelocity replaces the vertical velocity. It takes effect on the next tick's
// vertical move.
func (f *Frame) SetVerticalVelocity(v float32) { f.c.state.VerticalVelocity = v }

// Launching reports whether a launch is in progress.
func (f *Frame) Launching() bool { return f.c.state.Launching }

// SetLaunching enters or leaves the launch mode. The mode resolver picks it up on the next tick.
func (f *Frame) SetLaunching(launching bool) { f.c.state.Launching = launching }

// LaunchDirection returns the direction of the current launch.
func (f *Frame) LaunchDirection() mgl32.Vec3 { return f.c.state.LaunchDirection }

// SetLaunchDirection records the direction of a new launch.
func (f *Frame) SetLaunchDirection(dir mgl32.Vec3) { f.c.state.LaunchDirection = dir }
