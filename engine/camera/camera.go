package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	// fov is the vertical field of view in degrees.
	fov    float32
	aspect float32
	near   float32
	far    float32

	// pitch is the local rotation about the camera's right axis in degrees; positive looks down.
	pitch float32

	viewportWidth  int
	viewportHeight int

	view        mgl32.Mat4
	projection  mgl32.Mat4
	viewProj    mgl32.Mat4
	invViewProj mgl32.Mat4

	controller CameraController
}

// Camera is a first-person perspective camera. It sits at the eye of a CameraController
// rig, takes the rig's yaw and adds its own local pitch. Matrices are rebuilt whenever a
// setting changes and on Update, which follows the rig.
type Camera interface {
	// Fov returns the vertical field of view in degrees.
	Fov() float32
	Aspect() float32
	Near() float32
	Far() float32

	// LocalPitch returns the pitch in degrees on top of the rig's yaw; positive looks down.
	LocalPitch() float32

	// Viewport returns the pixel size ScreenPointToRay maps against.
	Viewport() (width, height int)

	ViewMatrix() mgl32.Mat4
	ProjectionMatrix() mgl32.Mat4
	ViewProjectionMatrix() mgl32.Mat4

	// Forward returns the unit view direction in world space.
	Forward() mgl32.Vec3

	// ScreenPointToRay returns the world-space ray through a viewport pixel, with (0, 0) at
	// the top-left corner.
	//
	// Parameters:
	//   - x, y: pixel coordinates
	//
	// Returns:
	//   - origin: the ray start on the near plane
	//   - direction: the unit ray direction
	ScreenPointToRay(x, y float32) (origin, direction mgl32.Vec3)

	// Controller returns the rig, or nil.
	Controller() CameraController

	// Update re-reads the rig's eye and yaw. Call it after the tick that moved the rig.
	// Does nothing without a rig.
	Update()

	SetFov(fov float32)
	SetAspect(aspect float32)
	SetNear(near float32)
	SetFar(far float32)

	// SetLocalPitch sets the pitch in degrees; positive looks down.
	SetLocalPitch(pitch float32)

	// SetViewport sets the viewport in pixels and derives the aspect ratio from it.
	SetViewport(width, height int)

	// SetController attaches the rig the camera follows.
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings (60 degree FOV, 16:9
// viewport). A controller must be attached via SetController or WithController option
// before anchor data is available.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:             &sync.Mutex{},
		fov:            60,
		aspect:         16.0 / 9.0,
		near:           0.1,
		far:            1000,
		viewportWidth:  1280,
		viewportHeight: 720,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) LocalPitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) Viewport() (width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewportWidth, c.viewportHeight
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProj
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var yaw float32
	if c.controller != nil {
		yaw = c.controller.Yaw()
	}
	return common.LookDirection(yaw, c.pitch)
}

func (c *cameraImpl) ScreenPointToRay(x, y float32) (origin, direction mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()

	w, h := float32(c.viewportWidth), float32(c.viewportHeight)
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	ndcX := 2*x/w - 1
	ndcY := 1 - 2*y/h

	// WebGPU clip space depth runs from 0 (near) to 1 (far).
	nearPoint := common.Unproject(c.invViewProj, mgl32.Vec3{ndcX, ndcY, 0})
	farPoint := common.Unproject(c.invViewProj, mgl32.Vec3{ndcX, ndcY, 1})
	dir := farPoint.Sub(nearPoint)
	if dir.LenSqr() == 0 {
		var yaw float32
		if c.controller != nil {
			yaw = c.controller.Yaw()
		}
		return nearPoint, common.LookDirection(yaw, c.pitch)
	}
	return nearPoint, dir.Normalize()
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetLocalPitch(pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitch = pitch
	c.updateMatrices()
}

func (c *cameraImpl) SetViewport(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewportWidth = width
	c.viewportHeight = height
	if height > 0 {
		c.aspect = float32(width) / float32(height)
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
}

// updateMatrices rebuilds every matrix from the controller's anchor and the local pitch.
// Without a controller the camera sits at the origin facing -Z.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	var eye mgl32.Vec3
	var yaw float32
	if c.controller != nil {
		eye[0], eye[1], eye[2] = c.controller.Position()
		yaw = c.controller.Yaw()
	}
	c.view = common.ViewMatrix(eye, yaw, c.pitch)
	c.projection = common.PerspectiveZO(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
	c.viewProj = c.projection.Mul4(c.view)
	c.invViewProj = c.viewProj.Inv()
}
