package camera

import (
	"sync"
)

// fixedController is a CameraController anchored at a settable point with a settable heading.
// Used for spectator views and for cameras that are not attached to a body.
type fixedController struct {
	mu *sync.Mutex

	position [3]float32
	yaw      float32
}

// FixedController is a CameraController whose anchor is moved explicitly.
type FixedController interface {
	CameraController

	// SetPosition sets the eye position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// SetYaw sets the heading in degrees.
	//
	// Parameters:
	//   - yaw: heading in degrees
	SetYaw(yaw float32)
}

var _ FixedController = &fixedController{}

// NewFixedController creates an anchor at the given position and heading.
//
// Parameters:
//   - x, y, z: world-space eye position
//   - yaw: heading in degrees
//
// Returns:
//   - FixedController: the new anchor
func NewFixedController(x, y, z, yaw float32) FixedController {
	return &fixedController{
		mu:       &sync.Mutex{},
		position: [3]float32{x, y, z},
		yaw:      yaw,
	}
}

func (fc *fixedController) Position() (x, y, z float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.position[0], fc.position[1], fc.position[2]
}

func (fc *fixedController) Yaw() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.yaw
}

func (fc *fixedController) SetPosition(x, y, z float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.position = [3]float32{x, y, z}
}

func (fc *fixedController) SetYaw(yaw float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.yaw = yaw
}
