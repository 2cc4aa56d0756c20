package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	id       uint64
	enabled  atomic.Bool
	position mgl32.Vec3

	// yaw is the heading in degrees, kept in [0, 360).
	yaw float32
}

// GameObject defines the interface for a scene entity carrying a world transform.
// The transform is limited to a position and a heading about world up, which is all a
// first-person body needs: pitch belongs to the camera, roll is never applied.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object takes part in simulation.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Position returns the object's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: position in world units
	Position() mgl32.Vec3

	// Yaw returns the object's heading in degrees within [0, 360).
	//
	// Returns:
	//   - float32: heading in degrees
	Yaw() float32

	// Forward returns the object's horizontal forward axis in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit forward vector
	Forward() mgl32.Vec3

	// Right returns the object's horizontal right axis in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit right vector
	Right() mgl32.Vec3

	// Up returns the object's up axis in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit up vector
	Up() mgl32.Vec3

	// TransformDirection converts a direction from the object's local space to world space.
	// Local -Z is forward, +X is right and +Y is up.
	//
	// Parameters:
	//   - local: direction in local space
	//
	// Returns:
	//   - mgl32.Vec3: the direction in world space
	TransformDirection(local mgl32.Vec3) mgl32.Vec3

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object takes part in simulation.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition moves the object to an absolute world-space position.
	//
	// Parameters:
	//   - p: new position
	SetPosition(p mgl32.Vec3)

	// Translate offsets the object's position by delta.
	//
	// Parameters:
	//   - delta: world-space offset
	Translate(delta mgl32.Vec3)

	// SetYaw sets the heading in degrees. The value is wrapped into [0, 360).
	//
	// Parameters:
	//   - yaw: heading in degrees
	SetYaw(yaw float32)

	// RotateYaw turns the object about world up by delta degrees. Positive turns right.
	//
	// Parameters:
	//   - delta: rotation in degrees
	RotateYaw(delta float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects are enabled by default.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Position() mgl32.Vec3 {
	return g.position
}

func (g *gameObject) Yaw() float32 {
	return g.yaw
}

func (g *gameObject) Forward() mgl32.Vec3 {
	forward, _ := common.YawBasis(g.yaw)
	return forward
}

func (g *gameObject) Right() mgl32.Vec3 {
	_, right := common.YawBasis(g.yaw)
	return right
}

func (g *gameObject) Up() mgl32.Vec3 {
	return common.WorldUp
}

func (g *gameObject) TransformDirection(local mgl32.Vec3) mgl32.Vec3 {
	return common.YawRotation(g.yaw).Rotate(local)
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(p mgl32.Vec3) {
	g.position = p
}

func (g *gameObject) Translate(delta mgl32.Vec3) {
	g.position = g.position.Add(delta)
}

func (g *gameObject) SetYaw(yaw float32) {
	g.yaw = wrapDegrees(yaw)
}

func (g *gameObject) RotateYaw(delta float32) {
	g.yaw = wrapDegrees(g.yaw + delta)
}

// wrapDegrees maps any angle into [0, 360).
func wrapDegrees(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
