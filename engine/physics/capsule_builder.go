package physics

import "github.com/Carmen-Shannon/oxy-fps/engine/game_object"

// CapsuleBuilderOption is a functional option for configuring a Capsule.
type CapsuleBuilderOption func(*capsuleImpl)

// WithObject sets the transform the capsule moves. Its position is treated as the foot point.
//
// Parameters:
//   - obj: the transform to drive
//
// Returns:
//   - CapsuleBuilderOption: functional option to set the transform
func WithObject(obj game_object.GameObject) CapsuleBuilderOption {
	return func(c *capsuleImpl) {
		c.obj = obj
	}
}

// WithRadius sets the capsule radius.
//
// Parameters:
//   - radius: radius in world units
//
// Returns:
//   - CapsuleBuilderOption: functional option to set the radius
func WithRadius(radius float32) CapsuleBuilderOption {
	return func(c *capsuleImpl) {
		c.radius = radius
	}
}

// WithHeight sets the initial (standing) capsule height.
//
// Parameters:
//   - height: height in world units
//
// Returns:
//   - CapsuleBuilderOption: functional option to set the height
func WithHeight(height float32) CapsuleBuilderOption {
	return func(c *capsuleImpl) {
		c.height = height
	}
}

// WithEyeOffset sets how far below the top of the capsule the camera anchor sits.
//
// Parameters:
//   - offset: distance in world units
//
// Returns:
//   - CapsuleBuilderOption: functional option to set the eye offset
func WithEyeOffset(offset float32) CapsuleBuilderOption {
	return func(c *capsuleImpl) {
		c.eyeOffset = offset
	}
}

// WithCollisionMask restricts the layers the capsule collides with.
//
// Parameters:
//   - mask: layers that block movement
//
// Returns:
//   - CapsuleBuilderOption: functional option to set the collision mask
func WithCollisionMask(mask LayerMask) CapsuleBuilderOption {
	return func(c *capsuleImpl) {
		c.mask = mask
	}
}
