package camera

// CameraController is the anchor a first-person camera rides on. The controller owns the eye
// position and the heading (yaw); the camera layers its own local pitch on top and computes
// view/projection matrices from both. A physics capsule satisfies this interface directly.
type CameraController interface {
	// Position returns the eye position in world space.
	//
	// Returns:
	//   - x, y, z: world-space eye position
	Position() (x, y, z float32)

	// Yaw returns the heading in degrees. Positive values turn right.
	//
	// Returns:
	//   - float32: heading in degrees
	Yaw() float32
}
