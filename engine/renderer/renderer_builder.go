package renderer

// RendererBuilderOption configures a renderer in NewRenderer, before the GPU adapter is
// requested.
type RendererBuilderOption func(*renderer)

// WithPresentMode selects vsync or uncapped presentation.
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithForceSoftwareRenderer asks WebGPU for its fallback (CPU) adapter, e.g. on machines
// without a GPU. A software Vulkan driver such as lavapipe or SwiftShader must be installed.
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
