package physics

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// clipEpsilon absorbs float32 drift so a body resting exactly on a surface keeps colliding with it.
const clipEpsilon = 1e-4

// Capsule is a character collision volume swept through a World. The capsule is approximated by
// its bounding box for collision, which is exact for the flat, axis-aligned geometry of World.
// The transform's position is the capsule's foot point.
type Capsule interface {
	// Object returns the transform the capsule moves.
	//
	// Returns:
	//   - game_object.GameObject: the underlying transform
	Object() game_object.GameObject

	// IsGrounded reports whether the last vertical movement was stopped by a surface below.
	//
	// Returns:
	//   - bool: true when standing on something
	IsGrounded() bool

	// Move requests a world-space displacement. The displacement is applied one axis at a time
	// (Y, X, then Z) and each axis is clipped against the colliders it would pass into.
	//
	// Parameters:
	//   - delta: the requested displacement
	Move(delta mgl32.Vec3)

	// Height returns the capsule's current height.
	//
	// Returns:
	//   - float32: height in world units
	Height() float32

	// SetHeight resizes the capsule, keeping its feet where they are.
	//
	// Parameters:
	//   - height: new height, clamped to at least twice the radius
	SetHeight(height float32)

	// Radius returns the capsule radius.
	//
	// Returns:
	//   - float32: radius in world units
	Radius() float32

	// Center returns the world-space center of the capsule.
	//
	// Returns:
	//   - mgl32.Vec3: center point
	Center() mgl32.Vec3

	// Position returns the camera anchor (eye point) near the top of the capsule.
	//
	// Returns:
	//   - x, y, z: eye position in world space
	Position() (x, y, z float32)

	// Yaw returns the body's heading in degrees.
	Yaw() float32

	// RotateYaw turns the body about world up by delta degrees.
	RotateYaw(delta float32)

	// Forward returns the body's horizontal forward axis.
	Forward() mgl32.Vec3

	// Right returns the body's horizontal right axis.
	Right() mgl32.Vec3

	// Up returns the body's up axis.
	Up() mgl32.Vec3

	// Bounds returns the capsule's current collision box in world space.
	//
	// Returns:
	//   - cube.BBox: the world-space box
	Bounds() cube.BBox
}

type capsuleImpl struct {
	mu *sync.Mutex

	world  *World
	obj    game_object.GameObject
	mask   LayerMask
	radius float32
	height float32

	// eyeOffset is the distance from the top of the capsule down to the eye point.
	eyeOffset float32
	grounded  bool
}

var _ Capsule = &capsuleImpl{}

// NewCapsule creates a capsule body in world. Defaults: radius 0.5, height 2, eye 0.2 below the
// top, colliding with every layer, standing at the origin.
//
// Parameters:
//   - world: the world to collide against
//   - options: functional options to configure the capsule
//
// Returns:
//   - Capsule: the new capsule
func NewCapsule(world *World, options ...CapsuleBuilderOption) Capsule {
	c := &capsuleImpl{
		mu:        &sync.Mutex{},
		world:     world,
		mask:      LayerAll,
		radius:    0.5,
		height:    2.0,
		eyeOffset: 0.2,
	}
	for _, option := range options {
		option(c)
	}
	if c.obj == nil {
		c.obj = game_object.NewGameObject()
	}
	if c.height < 2*c.radius {
		c.height = 2 * c.radius
	}
	return c
}

func (c *capsuleImpl) Object() game_object.GameObject {
	return c.obj
}

func (c *capsuleImpl) IsGrounded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grounded
}

func (c *capsuleImpl) Move(delta mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()

	box := c.boundsLocked()
	swept := cube.Box(
		box.Min()[0]+min(delta[0], 0), box.Min()[1]+min(delta[1], 0), box.Min()[2]+min(delta[2], 0),
		box.Max()[0]+max(delta[0], 0), box.Max()[1]+max(delta[1], 0), box.Max()[2]+max(delta[2], 0),
	)
	var nearby []cube.BBox
	if c.world != nil {
		nearby = c.world.Nearby(swept, c.mask)
	}

	var moved mgl32.Vec3
	for _, axis := range [3]int{1, 0, 2} {
		d := delta[axis]
		if d == 0 {
			continue
		}
		for _, other := range nearby {
			d = clipAxis(other, box, axis, d)
		}
		var step mgl32.Vec3
		step[axis] = d
		box = box.Translate(step)
		moved[axis] = d
	}

	if delta[1] != 0 {
		c.grounded = delta[1] < 0 && moved[1] > delta[1]
	}
	c.obj.Translate(moved)
}

func (c *capsuleImpl) Height() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

func (c *capsuleImpl) SetHeight(height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if height < 2*c.radius {
		height = 2 * c.radius
	}
	c.height = height
}

func (c *capsuleImpl) Radius() float32 {
	return c.radius
}

func (c *capsuleImpl) Center() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.obj.Position().Add(mgl32.Vec3{0, c.height / 2, 0})
}

func (c *capsuleImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.obj.Position()
	eye := c.height - c.eyeOffset
	if eye < 0 {
		eye = 0
	}
	return p[0], p[1] + eye, p[2]
}

func (c *capsuleImpl) Yaw() float32 {
	return c.obj.Yaw()
}

func (c *capsuleImpl) RotateYaw(delta float32) {
	c.obj.RotateYaw(delta)
}

func (c *capsuleImpl) Forward() mgl32.Vec3 {
	return c.obj.Forward()
}

func (c *capsuleImpl) Right() mgl32.Vec3 {
	return c.obj.Right()
}

func (c *capsuleImpl) Up() mgl32.Vec3 {
	return c.obj.TransformDirection(mgl32.Vec3{0, 1, 0})
}

func (c *capsuleImpl) Bounds() cube.BBox {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.boundsLocked()
}

// boundsLocked builds the world-space box from the foot position.
// Caller must hold the mutex.
func (c *capsuleImpl) boundsLocked() cube.BBox {
	p := c.obj.Position()
	return cube.Box(
		p[0]-c.radius, p[1], p[2]-c.radius,
		p[0]+c.radius, p[1]+c.height, p[2]+c.radius,
	)
}

// clipAxis limits the movement d of moving along axis so it stops at the face of stationary.
// Boxes that do not overlap on the two remaining axes never block.
func clipAxis(stationary, moving cube.BBox, axis int, d float32) float32 {
	smin, smax := stationary.Min(), stationary.Max()
	mmin, mmax := moving.Min(), moving.Max()
	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		if mmax[i]-smin[i] <= clipEpsilon || smax[i]-mmin[i] <= clipEpsilon {
			return d
		}
	}
	switch {
	case d > 0 && mmax[axis] <= smin[axis]+clipEpsilon:
		if gap := smin[axis] - mmax[axis]; gap < d {
			d = max(gap, 0)
		}
	case d < 0 && mmin[axis] >= smax[axis]-clipEpsilon:
		if gap := smax[axis] - mmin[axis]; gap > d {
			d = min(gap, 0)
		}
	}
	return d
}
