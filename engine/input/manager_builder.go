package input

// ManagerBuilderOption is a functional option for configuring a Manager.
type ManagerBuilderOption func(*managerImpl)

// WithBindings replaces the default binding table.
//
// Parameters:
//   - bindings: the binding table to use
//
// Returns:
//   - ManagerBuilderOption: functional option to set the bindings
func WithBindings(bindings Bindings) ManagerBuilderOption {
	return func(m *managerImpl) {
		if bindings != nil {
			m.bindings = bindings
		}
	}
}

// WithMouseScale sets the factor applied to raw cursor deltas before they are reported as Look.
//
// Parameters:
//   - scale: multiplier for mouse motion
//
// Returns:
//   - ManagerBuilderOption: functional option to set the mouse scale
func WithMouseScale(scale float32) ManagerBuilderOption {
	return func(m *managerImpl) {
		m.mouseScale = scale
	}
}

// WithCursorLocked makes the pointer report the viewport center, matching a captured cursor
// whose on-screen position is meaningless.
//
// Parameters:
//   - viewport: returns the current viewport size in pixels
//
// Returns:
//   - ManagerBuilderOption: functional option to lock the pointer
func WithCursorLocked(viewport func() (width, height int)) ManagerBuilderOption {
	return func(m *managerImpl) {
		m.cursorLocked = true
		m.viewport = viewport
	}
}
