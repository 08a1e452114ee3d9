package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewer/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithWindow sets the window the engine runs in. Required.
//
// Parameters:
//   - w: the window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer the engine draws with. Required.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCamera sets the camera driven by the controller. Required.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithController sets the camera controller. Defaults to camera.NewCameraController().
func WithController(cc camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = cc
	}
}

// WithInput sets the input sampler. Defaults to input.NewSampler().
func WithInput(s input.Sampler) EngineBuilderOption {
	return func(e *engine) {
		e.input = s
	}
}

// WithScene sets the scene drawn each frame. Defaults to an empty scene.
//
// Parameters:
//   - s: the scene
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithProfiler sets the profiler used when profiling is enabled.
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.settings.Profiling = enabled
	}
}

// WithRenderFrameLimit sets the maximum frames per second.
// A value of 0 or less removes the cap.
//
// Parameters:
//   - fps: the frame limit
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps < 0 {
			fps = 0
		}
		e.settings.FrameLimit = fps
	}
}

// WithMaxFrameDelta sets the clamp applied to each frame's delta time. 0 disables the clamp.
func WithMaxFrameDelta(d time.Duration) EngineBuilderOption {
	return func(e *engine) {
		if d < 0 {
			d = 0
		}
		e.settings.MaxFrameDelta = d
	}
}

// WithRuntimeSettings replaces all runtime settings at once.
func WithRuntimeSettings(s RuntimeSettings) EngineBuilderOption {
	return func(e *engine) {
		e.settings = s
	}
}

// WithLight sets the point light. Defaults to light.NewLight().
func WithLight(l light.Light) EngineBuilderOption {
	return func(e *engine) {
		e.light = l
	}
}

// WithMaterial sets the surface material. Defaults to material.NewMaterial().
func WithMaterial(m material.Material) EngineBuilderOption {
	return func(e *engine) {
		e.material = m
	}
}

// WithModelScale sets the uniform scale applied to every object through the "model" uniform.
// Non-positive values fall back to 1.
func WithModelScale(scale float32) EngineBuilderOption {
	return func(e *engine) {
		e.modelScale = scale
	}
}

// WithCaptureOnStart controls whether Run captures the cursor before entering the loop.
func WithCaptureOnStart(capture bool) EngineBuilderOption {
	return func(e *engine) {
		e.captureOnStart = capture
	}
}

// WithCaptureToggleKey sets the key that toggles cursor capture. 0 disables the toggle.
func WithCaptureToggleKey(keyCode uint32) EngineBuilderOption {
	return func(e *engine) {
		e.captureToggleKey = keyCode
	}
}

// WithClock replaces the time source used for frame deltas.
func WithClock(clock Clock) EngineBuilderOption {
	return func(e *engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}
