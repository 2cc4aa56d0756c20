package window

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window is a desktop window that owns the rendering surface and reports raw keyboard and
// mouse events. Key and mouse button codes share one code space (see common.MouseButtonCode),
// so input bindings treat them alike.
type Window interface {
	// SetResizeCallback sets the function called with the new framebuffer size in pixels.
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the function called on key press and key repeat.
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the function called on key release.
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseButtonDownCallback sets the function called on mouse button press with the
	// button code and the cursor position.
	SetMouseButtonDownCallback(callback func(button uint32, x, y float64))

	// SetMouseButtonUpCallback sets the function called on mouse button release.
	SetMouseButtonUpCallback(callback func(button uint32, x, y float64))

	// SetMouseMoveCallback sets the function called with the cursor position. While the
	// cursor is captured the position is virtual and unbounded; only its deltas matter.
	SetMouseMoveCallback(callback func(x, y float64))

	// SetCursorCaptured hides and locks the cursor for mouse-look, or releases it.
	// Escape releases a captured cursor; Escape with a free cursor closes the window.
	//
	// Parameters:
	//   - captured: true to capture
	SetCursorCaptured(captured bool)

	// CursorCaptured reports whether the cursor is captured.
	CursorCaptured() bool

	// SurfaceDescriptor returns the descriptor the renderer creates its WebGPU surface from,
	// or nil before the platform window exists.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is still open.
	IsRunning() bool

	// Close destroys the window.
	//
	// Returns:
	//   - error: if the window was never created
	Close() error

	// ProcessMessages pumps platform events until the window closes. It must run on the
	// goroutine that created the window.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// handlers is the set of event callbacks, swapped under the window's mutex because input
// managers attach and detach from the tick goroutine.
type handlers struct {
	resize      func(width, height int)
	keyDown     func(keyCode uint32)
	keyUp       func(keyCode uint32)
	buttonDown  func(button uint32, x, y float64)
	buttonUp    func(button uint32, x, y float64)
	cursorMoved func(x, y float64)
}

type engineWindow struct {
	mu *sync.Mutex
	on handlers

	title         string
	width, height int

	// Size limits applied to user resizing; non-positive values leave that side unbounded.
	minWidth, minHeight int
	maxWidth, maxHeight int

	captured       bool
	captureOnClick bool

	// internalWindow holds the platform window (glfwWindow).
	internalWindow any
}

var _ Window = &engineWindow{}

// NewWindow opens a window configured by the given options. It panics when the platform
// window cannot be created, since nothing can run without one.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		mu:        &sync.Mutex{},
		title:     "oxy-fps",
		width:     1280,
		height:    720,
		minWidth:  320,
		minHeight: 200,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	if w.captureOnClick {
		w.SetCursorCaptured(true)
	}
	return w
}

// callbacks returns a copy of the current handlers.
func (w *engineWindow) callbacks() handlers {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.on
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.on.resize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.on.keyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.on.keyUp = callback
}

func (w *engineWindow) SetMouseButtonDownCallback(callback func(button uint32, x, y float64)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.on.buttonDown = callback
}

func (w *engineWindow) SetMouseButtonUpCallback(callback func(button uint32, x, y float64)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.on.buttonUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float64)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.on.cursorMoved = callback
}

func (w *engineWindow) SetCursorCaptured(captured bool) {
	platformSetCursorCaptured(w, captured)
	w.mu.Lock()
	w.captured = captured
	w.mu.Unlock()
}

func (w *engineWindow) CursorCaptured() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.captured
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for platformProcessMessages(w) {
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *engineWindow) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

// setSize records the framebuffer size reported by the platform.
func (w *engineWindow) setSize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width, w.height = width, height
}
