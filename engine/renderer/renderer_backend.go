package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBackendType selects the GPU API implementation.
type RendererBackendType int

const (
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls whether presentation waits for vertical blank.
type PresentMode int

const (
	// PresentModeVSync caps presentation at the display refresh rate without tearing.
	PresentModeVSync PresentMode = iota
	// PresentModeUncapped presents immediately, trading tearing for latency.
	PresentModeUncapped
)

// ParsePresentMode maps "vsync" or "uncapped" to a PresentMode; anything else is VSync.
func ParsePresentMode(s string) PresentMode {
	if s == "uncapped" {
		return PresentModeUncapped
	}
	return PresentModeVSync
}

func (m PresentMode) String() string {
	if m == PresentModeUncapped {
		return "uncapped"
	}
	return "vsync"
}

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

func (c Color) wgpu() wgpu.Color {
	return wgpu.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RendererBackend is implemented by each GPU API backend.
type RendererBackend interface {
	wgpuRendererBackend
}
