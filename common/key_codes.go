package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW         = 87  // W key (ASCII)
	KeyA         = 65  // A key (ASCII)
	KeyS         = 83  // S key (ASCII)
	KeyD         = 68  // D key (ASCII)
	KeyQ         = 81  // Q key (ASCII)
	KeyE         = 69  // E key (ASCII)
	KeyC         = 67  // C key (ASCII)
	KeyF         = 70  // F key (ASCII)
	KeyR         = 82  // R key (ASCII)
	KeyV         = 86  // V key (ASCII)
	KeyX         = 88  // X key (ASCII)
	KeyZ         = 90  // Z key (ASCII)
	KeySpace     = 32  // Spacebar (ASCII)
	KeyBackspace = 259 // Backspace key (GLFW)
	KeyEsc       = 256 // Escape key (GLFW)
	KeyRight     = 262 // Right arrow (GLFW)
	KeyLeft      = 263 // Left arrow (GLFW)
	KeyDown      = 264 // Down arrow (GLFW)
	KeyUp        = 265 // Up arrow (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyLeftAlt      = 342 // Left Alt (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
)

// Mouse buttons share the key code space so a single binding table can address both.
// GLFW numbers buttons from 0; they are offset past the last GLFW key (348).
const (
	MouseButtonOffset = 1000

	MouseButtonLeft   = MouseButtonOffset + 0
	MouseButtonRight  = MouseButtonOffset + 1
	MouseButtonMiddle = MouseButtonOffset + 2
)

// keyNames maps the lowercase names accepted in binding files to key codes.
var keyNames = map[string]uint32{
	"w": KeyW, "a": KeyA, "s": KeyS, "d": KeyD,
	"q": KeyQ, "e": KeyE, "c": KeyC, "f": KeyF,
	"r": KeyR, "v": KeyV, "x": KeyX, "z": KeyZ,
	"space":         KeySpace,
	"backspace":     KeyBackspace,
	"escape":        KeyEsc,
	"right":         KeyRight,
	"left":          KeyLeft,
	"down":          KeyDown,
	"up":            KeyUp,
	"left_shift":    KeyLeftShift,
	"right_shift":   KeyRightShift,
	"left_control":  KeyLeftControl,
	"right_control": KeyRightControl,
	"left_alt":      KeyLeftAlt,
	"mouse_left":    MouseButtonLeft,
	"mouse_right":   MouseButtonRight,
	"mouse_middle":  MouseButtonMiddle,
}

// KeyCode resolves a binding name (case-insensitive, e.g. "space", "left_shift", "mouse_left")
// to its key code.
//
// Parameters:
//   - name: the key or mouse button name
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown
func KeyCode(name string) (uint32, bool) {
	code, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// MouseButtonCode converts a zero-based GLFW mouse button index to its key code.
func MouseButtonCode(button int) uint32 {
	return uint32(MouseButtonOffset + button)
}
