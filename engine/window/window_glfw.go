package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow is the GLFW platform window behind an engineWindow.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// newPlatformWindow creates the GLFW window, applies the size limits and registers the input
// callbacks. The calling goroutine is locked to its OS thread, which GLFW requires.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// The surface is driven by WebGPU, so GLFW must not create a GL context.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(sizeLimit(w.minWidth), sizeLimit(w.minHeight), sizeLimit(w.maxWidth), sizeLimit(w.maxHeight))

	gw := &glfwWindow{parent: w, window: win, running: true}
	w.internalWindow = gw

	win.SetKeyCallback(gw.onKey)
	win.SetMouseButtonCallback(gw.onMouseButton)
	win.SetCursorPosCallback(gw.onCursorPos)
	// The framebuffer size differs from the window size on high-DPI displays; the surface
	// needs pixels.
	win.SetFramebufferSizeCallback(gw.onFramebufferSize)

	w.setSize(win.GetFramebufferSize())
	return nil
}

func (gw *glfwWindow) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	w := gw.parent
	if key == glfw.KeyEscape && action == glfw.Press {
		if w.CursorCaptured() {
			w.SetCursorCaptured(false)
			return
		}
		gw.running = false
		gw.window.SetShouldClose(true)
		return
	}
	on := w.callbacks()
	switch {
	case (action == glfw.Press || action == glfw.Repeat) && on.keyDown != nil:
		on.keyDown(uint32(key))
	case action == glfw.Release && on.keyUp != nil:
		on.keyUp(uint32(key))
	}
}

func (gw *glfwWindow) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	w := gw.parent
	if w.captureOnClick && action == glfw.Press && !w.CursorCaptured() {
		// The click that recaptures the cursor is not delivered as input.
		w.SetCursorCaptured(true)
		return
	}
	x, y := gw.window.GetCursorPos()
	code := common.MouseButtonCode(int(button))
	on := w.callbacks()
	switch {
	case action == glfw.Press && on.buttonDown != nil:
		on.buttonDown(code, x, y)
	case action == glfw.Release && on.buttonUp != nil:
		on.buttonUp(code, x, y)
	}
}

func (gw *glfwWindow) onCursorPos(_ *glfw.Window, x, y float64) {
	if fn := gw.parent.callbacks().cursorMoved; fn != nil {
		fn(x, y)
	}
}

func (gw *glfwWindow) onFramebufferSize(_ *glfw.Window, width, height int) {
	gw.parent.setSize(width, height)
	if fn := gw.parent.callbacks().resize; fn != nil {
		fn(width, height)
	}
}

// sizeLimit maps an unset (non-positive) limit to glfw.DontCare.
func sizeLimit(v int) int {
	if v <= 0 {
		return glfw.DontCare
	}
	return v
}

// platformGetSurfaceDescriptor builds the WebGPU surface descriptor through the wgpuglfw
// bridge, which covers Windows, X11, Wayland and macOS.
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformSetCursorCaptured switches between the disabled cursor mode (hidden, locked, raw
// motion where supported) and the normal one.
//
// Reference: https://www.glfw.org/docs/latest/input_guide.html#cursor_mode
func platformSetCursorCaptured(w *engineWindow, captured bool) {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return
	}
	if !captured {
		gw.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		return
	}
	gw.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		gw.window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
}

func platformIsRunningCheck(w *engineWindow) bool {
	gw, ok := w.internalWindow.(*glfwWindow)
	return ok && gw.running && !gw.window.ShouldClose()
}

func platformCloseWindow(w *engineWindow) error {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return fmt.Errorf("window is not initialized")
	}
	gw.running = false
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages polls pending GLFW events and reports whether the window is open.
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
