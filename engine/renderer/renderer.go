// Package renderer owns the GPU device and the presentation surface. Each frame is a single
// render pass that clears the surface to a caller-chosen color.
package renderer

import (
	"log"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surface is the window the renderer presents to. window.Window satisfies it.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	forceFallbackAdapter bool
	presentMode          PresentMode
}

// Renderer defines the interface for the rendering system.
//
// The frame lifecycle is BeginFrame, EndFrame, Present. The Renderer implements a backend which
// allows for multiple backend API implementations to exist.
type Renderer interface {
	// Resize reconfigures the surface for new pixel dimensions. Zero sizes (minimized windows)
	// are ignored.
	//
	// Parameters:
	//   - width: new surface width in pixels
	//   - height: new surface height in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode. Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// BeginFrame acquires the next surface texture and opens the frame's render pass, clearing
	// it to color.
	//
	// Parameters:
	//   - color: the clear color
	//
	// Returns:
	//   - error: error if the surface texture or command encoder could not be acquired
	BeginFrame(color Color) error

	// EndFrame closes the render pass and submits the frame's commands.
	EndFrame()

	// Present displays the frame and releases the surface texture.
	Present()

	// Backend returns the concrete GPU backend.
	//
	// Returns:
	//   - RendererBackend: the backend
	Backend() RendererBackend
}

var _ Renderer = &renderer{}

// NewRenderer creates the GPU device for the given surface and configures it at the surface's
// current size. Panics if no adapter or device is available.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - surface: the window to present to
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	for _, opt := range options {
		opt(r)
	}

	// BackendTypeWGPU is the only backend.
	r.backend = newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter)
	r.backend.SetPresentMode(r.presentMode)
	r.Resize(surface.Width(), surface.Height())
	log.Printf("[Renderer] surface %dx%d, present mode %s", surface.Width(), surface.Height(), r.presentMode)
	return r
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	r.presentMode = mode
	r.mu.Unlock()
	r.backend.SetPresentMode(mode)
}

func (r *renderer) BeginFrame(color Color) error {
	return r.backend.BeginFrame(color)
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Backend() RendererBackend {
	return r.backend
}
