package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrFrameInFlight is returned by BeginFrame while the previous frame has not been presented.
// wgpu-native rejects a second acquire of the surface texture.
var ErrFrameInFlight = errors.New("previous frame not yet presented")

// wgpuRendererBackend is the WebGPU implementation of RendererBackend.
type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the surface at the given pixel size with the current
	// present mode.
	ConfigureSurface(width, height int)

	// SetPresentMode records the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// BeginFrame acquires the surface texture and opens a render pass that clears it.
	BeginFrame(color Color) error

	// EndFrame closes the render pass and submits it.
	EndFrame()

	// Present shows the submitted frame and releases the surface texture.
	Present()

	// Device returns the logical GPU device.
	Device() *wgpu.Device
}

type wgpuRendererBackendImpl struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  *wgpu.Surface

	presentMode wgpu.PresentMode
	configured  bool

	frame *clearFrame
}

// clearFrame holds the GPU objects of one frame between BeginFrame and Present.
type clearFrame struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	encoder *wgpu.CommandEncoder
	pass    *wgpu.RenderPassEncoder
}

// releaseEncoding drops the encoder once its commands are submitted or abandoned.
func (f *clearFrame) releaseEncoding() {
	if f.encoder != nil {
		f.encoder.Release()
		f.encoder = nil
	}
	f.pass = nil
}

// release drops every object the frame still holds.
func (f *clearFrame) release() {
	f.releaseEncoding()
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

// newWGPURendererBackend requests an adapter compatible with the surface and a device on it.
// Panics when either is unavailable.
//
// Parameters:
//   - descriptor: the window's surface descriptor
//   - forceFallbackAdapter: request a software adapter
//
// Returns:
//   - wgpuRendererBackend: the backend, surface not yet configured
func newWGPURendererBackend(descriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool) wgpuRendererBackend {
	runtime.LockOSThread()

	instance := wgpu.CreateInstance(nil)
	surface := instance.CreateSurface(descriptor)
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    surface,
	})
	if err != nil {
		panic(fmt.Sprintf("request adapter: %v", err))
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "oxy-fps device"})
	if err != nil {
		panic(fmt.Sprintf("request device: %v", err))
	}

	return &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    instance,
		adapter:     adapter,
		device:      device,
		queue:       device.GetQueue(),
		surface:     surface,
		presentMode: wgpu.PresentModeFifo,
	}
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	caps := b.surface.GetCapabilities(b.adapter)
	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   caps.AlphaModes[0],
	})
	b.configured = true
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if mode == PresentModeUncapped {
		b.presentMode = wgpu.PresentModeImmediate
		return
	}
	b.presentMode = wgpu.PresentModeFifo
}

func (b *wgpuRendererBackendImpl) BeginFrame(color Color) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.configured {
		return fmt.Errorf("surface not configured")
	}
	if b.frame != nil {
		return ErrFrameInFlight
	}

	f := &clearFrame{}
	var err error
	if f.texture, err = b.surface.GetCurrentTexture(); err != nil {
		return fmt.Errorf("acquire surface texture: %w", err)
	}
	if f.view, err = f.texture.CreateView(nil); err != nil {
		f.release()
		return fmt.Errorf("create surface view: %w", err)
	}
	if f.encoder, err = b.device.CreateCommandEncoder(nil); err != nil {
		f.release()
		return fmt.Errorf("create command encoder: %w", err)
	}
	f.pass = f.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       f.view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: color.wgpu(),
		}},
	})
	b.frame = f
	return nil
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	f := b.frame
	if f == nil || f.pass == nil {
		return
	}
	f.pass.End()
	cmd, err := f.encoder.Finish(nil)
	if err != nil {
		// Nothing will be presented; drop the whole frame.
		f.release()
		b.frame = nil
		return
	}
	b.queue.Submit(cmd)
	cmd.Release()
	f.releaseEncoding()
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frame == nil {
		return
	}
	b.surface.Present()
	b.frame.release()
	b.frame = nil
}

func (b *wgpuRendererBackendImpl) Device() *wgpu.Device {
	return b.device
}
