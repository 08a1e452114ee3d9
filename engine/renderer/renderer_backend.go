package renderer

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// ParsePresentMode maps a config value ("vsync" or "uncapped") onto a PresentMode.
//
// Parameters:
//   - s: the mode name
//
// Returns:
//   - PresentMode: the parsed mode
//   - bool: false if the name is unknown
func ParsePresentMode(s string) (PresentMode, bool) {
	switch s {
	case "vsync", "fifo":
		return PresentModeVSync, true
	case "uncapped", "immediate":
		return PresentModeUncapped, true
	default:
		return PresentModeVSync, false
	}
}

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// ClearColor is the RGBA colour the frame is cleared to.
type ClearColor struct {
	R, G, B, A float64
}

// RendererBackend is the GPU-facing half of the Renderer. The Renderer owns the
// CPU-side state (uniform block, instance matrices, mesh) and hands packed bytes
// to the backend, which owns every GPU object.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain, depth and MSAA targets for the given size.
	ConfigureSurface(width, height int) error

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the colour the next frames are cleared to.
	SetClearColor(c ClearColor)

	// CreatePipeline compiles the WGSL program and builds the render pipeline and its
	// uniform bind group. ConfigureSurface must have been called first.
	CreatePipeline(label, source string, uniformSize uint64) error

	// InitMesh uploads interleaved vertex data.
	InitMesh(label string, vertexData []byte, vertexCount int) error

	// WriteUniforms uploads the packed uniform block.
	WriteUniforms(data []byte) error

	// WriteInstances uploads per-instance model matrices, growing the buffer as needed.
	WriteInstances(data []byte, count int) error

	// BeginFrame acquires the swapchain texture and begins the render pass.
	BeginFrame() error

	// Draw records the instanced mesh draw into the current render pass.
	Draw()

	// EndFrame ends the render pass and submits the command buffer.
	EndFrame() error

	// Present shows the acquired swapchain texture.
	Present()

	// Release frees every GPU object.
	Release()
}
