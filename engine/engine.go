package engine

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewer/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// Clock returns the current time. Injected so frame stepping is deterministic in tests.
type Clock func() time.Time

// RuntimeSettings are the loop parameters that may change while the engine runs.
type RuntimeSettings struct {
	// FrameLimit caps frames per second; 0 leaves the loop uncapped (present mode still applies).
	FrameLimit float64

	// Profiling enables the profiler's periodic log line.
	Profiling bool

	// ProfileInterval is the profiler reporting interval.
	ProfileInterval time.Duration

	// MaxFrameDelta clamps the per-frame delta time so a stall (window drag, breakpoint)
	// does not turn into one huge camera jump. 0 disables the clamp.
	MaxFrameDelta time.Duration
}

// DefaultRuntimeSettings returns an uncapped loop with profiling off and a 250ms delta clamp.
func DefaultRuntimeSettings() RuntimeSettings {
	return RuntimeSettings{
		ProfileInterval: time.Second,
		MaxFrameDelta:   250 * time.Millisecond,
	}
}

func (s RuntimeSettings) frameDuration() time.Duration {
	if s.FrameLimit <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / s.FrameLimit)
}

// engine implements the Engine interface.
type engine struct {
	settingsChannel chan RuntimeSettings // pending runtime settings, latest wins

	quitOnce sync.Once

	window     window.Window
	renderer   renderer.Renderer
	camera     camera.Camera
	controller camera.CameraController
	input      input.Sampler
	scene      scene.Scene
	profiler   *profiler.Profiler

	light      light.Light
	material   material.Material
	modelScale float32

	clock      Clock
	settingsMu *sync.Mutex
	settings   RuntimeSettings

	captureOnStart   bool
	captureToggleKey uint32
	wantCapture      bool // capture state to restore when focus returns

	frameCallback func(deltaTime float32)

	start     time.Time
	lastFrame time.Time
	frames    uint64
	lastErr   string
}

// Engine drives the viewer: each window update it samples input, moves the camera,
// uploads uniforms and draws one frame.
type Engine interface {
	// Window returns the window the engine is attached to.
	Window() window.Window

	// Renderer returns the renderer the engine draws with.
	Renderer() renderer.Renderer

	// Camera returns the camera driven by the controller.
	Camera() camera.Camera

	// Input returns the input sampler fed by the window callbacks.
	Input() input.Sampler

	// Scene returns the scene whose objects are drawn each frame.
	Scene() scene.Scene

	// Settings returns the runtime settings currently in effect.
	// Safe to call from any goroutine.
	Settings() RuntimeSettings

	// ApplySettings queues new runtime settings. They take effect at the start of the next frame.
	// Safe to call from any goroutine; if an update is already pending it is replaced.
	//
	// Parameters:
	//   - s: the new settings
	ApplySettings(s RuntimeSettings)

	// Light returns the point light. Changes take effect on the next frame.
	Light() light.Light

	// Material returns the surface material. Changes take effect on the next frame.
	Material() material.Material

	// SetFrameCallback registers a function called every frame after the camera update.
	//
	// Parameters:
	//   - callback: function receiving the clamped delta time in seconds
	SetFrameCallback(callback func(deltaTime float32))

	// SetCaptured captures or releases the cursor for mouse-look.
	//
	// Parameters:
	//   - captured: true to capture
	SetCaptured(captured bool)

	// Run starts the window message loop and blocks until the window closes.
	Run()

	// Quit asks the window loop to exit. Safe to call multiple times.
	Quit()
}

// NewEngine creates an Engine around an existing window, renderer and camera, and wires
// the window callbacks into the input sampler.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the configured engine
//   - error: an error if a required collaborator is missing
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		settingsChannel:  make(chan RuntimeSettings, 1),
		settingsMu:       &sync.Mutex{},
		clock:            time.Now,
		settings:         DefaultRuntimeSettings(),
		modelScale:       1,
		captureOnStart:   true,
		captureToggleKey: common.KeyM,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		return nil, errors.New("engine requires a window")
	}
	if e.renderer == nil {
		return nil, errors.New("engine requires a renderer")
	}
	if e.camera == nil {
		return nil, errors.New("engine requires a camera")
	}
	if e.input == nil {
		e.input = input.NewSampler()
	}
	if e.controller == nil {
		e.controller = camera.NewCameraController()
	}
	if e.scene == nil {
		e.scene = scene.NewScene()
	}
	if e.light == nil {
		e.light = light.NewLight()
	}
	if e.material == nil {
		e.material = material.NewMaterial()
	}
	if e.modelScale <= 0 || !common.IsFinite(e.modelScale) {
		e.modelScale = 1
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(e.settings.ProfileInterval, nil)
	}

	if w, h := e.window.Width(), e.window.Height(); w > 0 && h > 0 {
		e.camera.SetAspect(float32(w) / float32(h))
	}
	e.wireWindow()

	return e, nil
}

func (e *engine) wireWindow() {
	e.window.SetKeyDownCallback(func(keyCode uint32) {
		if e.captureToggleKey != 0 && keyCode == e.captureToggleKey {
			e.SetCaptured(!e.input.Captured())
			return
		}
		e.input.KeyDown(keyCode)
	})
	e.window.SetKeyUpCallback(e.input.KeyUp)
	e.window.SetMouseMoveCallback(e.input.MouseMove)
	e.window.SetScrollCallback(e.input.Scroll)
	e.window.SetFocusCallback(e.handleFocus)
	e.window.SetResizeCallback(e.handleResize)
	e.window.SetUpdateCallback(e.frame)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Input() input.Sampler {
	return e.input
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Settings() RuntimeSettings {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	return e.settings
}

func (e *engine) ApplySettings(s RuntimeSettings) {
	// Non-blocking send; replace a pending update rather than queueing behind it.
	select {
	case e.settingsChannel <- s:
	default:
		select {
		case <-e.settingsChannel:
		default:
		}
		select {
		case e.settingsChannel <- s:
		default:
		}
	}
}

func (e *engine) Light() light.Light {
	return e.light
}

func (e *engine) Material() material.Material {
	return e.material
}

func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}

func (e *engine) SetCaptured(captured bool) {
	e.wantCapture = captured
	e.applyCapture(captured)
}

func (e *engine) Run() {
	e.start = e.clock()
	e.lastFrame = e.start
	if e.captureOnStart {
		e.SetCaptured(true)
	}

	e.window.ProcessMessages()
	log.Printf("[Engine] window closed after %d frames", e.frames)
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.window.RequestClose()
	})
}

// frame runs one iteration of the loop. Called from the window's update callback.
func (e *engine) frame() {
	e.drainSettings()

	now := e.clock()
	if e.start.IsZero() {
		e.start = now
		e.lastFrame = now
	}
	delta := now.Sub(e.lastFrame)
	e.lastFrame = now
	if delta < 0 {
		delta = 0
	}
	if e.settings.MaxFrameDelta > 0 && delta > e.settings.MaxFrameDelta {
		delta = e.settings.MaxFrameDelta
	}
	dt := float32(delta.Seconds())

	snap := e.input.Snapshot()
	e.controller.Apply(e.camera, snap, dt)

	if e.frameCallback != nil {
		e.frameCallback(dt)
	}

	elapsed := float32(now.Sub(e.start).Seconds())
	err := e.uploadUniforms(elapsed)
	e.renderer.SetInstances(e.scene.InstanceMatrices(elapsed))
	if err == nil {
		err = e.renderer.Draw()
	}
	e.reportFrameError(err)
	e.frames++

	if e.settings.Profiling {
		e.profiler.Tick(now, delta)
	}

	if limit := e.settings.frameDuration(); limit > 0 {
		if remaining := limit - e.clock().Sub(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// uploadUniforms writes the camera block, time, light and material into the renderer's uniform block.
func (e *engine) uploadUniforms(elapsed float32) error {
	cam := camera.NewGPUCameraUniform(e.camera)
	scale := e.modelScale
	return errors.Join(
		e.renderer.SetBytes("camera", cam.Marshal()),
		e.renderer.SetMat4("model", mgl32.Scale3D(scale, scale, scale)),
		e.renderer.SetFloat("time", elapsed),
		e.renderer.SetFloat3("lightPos", e.light.Position()),
		e.renderer.SetFloat3("lightColor", e.light.Radiance()),
		e.renderer.SetFloat3("material.ambient", e.material.Ambient()),
		e.renderer.SetFloat3("material.color", e.material.Color()),
		e.renderer.SetFloat("material.shininess", e.material.Shininess()),
	)
}

// drainSettings applies a pending settings update, if any.
func (e *engine) drainSettings() {
	select {
	case s := <-e.settingsChannel:
		e.settingsMu.Lock()
		e.settings = s
		e.settingsMu.Unlock()
		e.profiler.SetInterval(s.ProfileInterval)
		log.Printf("[Engine] runtime settings applied: frame limit %.0f, profiling %t, max frame delta %s",
			s.FrameLimit, s.Profiling, s.MaxFrameDelta)
	default:
	}
}

// reportFrameError logs a frame error once until the error changes or clears.
func (e *engine) reportFrameError(err error) {
	if err == nil {
		e.lastErr = ""
		return
	}
	if msg := err.Error(); msg != e.lastErr {
		e.lastErr = msg
		log.Printf("[Engine] frame error: %v", err)
	}
}

func (e *engine) handleResize(width, height int) {
	if err := e.renderer.Resize(width, height); err != nil {
		log.Printf("[Engine] resize to %dx%d failed: %v", width, height, err)
	}
	if width > 0 && height > 0 {
		e.camera.SetAspect(float32(width) / float32(height))
	}
}

// handleFocus releases the cursor and held keys while unfocused and restores capture on return.
func (e *engine) handleFocus(focused bool) {
	if !focused {
		e.input.ClearKeys()
		e.applyCapture(false)
		return
	}
	if e.wantCapture {
		e.applyCapture(true)
	}
}

func (e *engine) applyCapture(captured bool) {
	e.window.SetCursorCaptured(captured)
	if captured {
		e.input.Capture()
	} else {
		e.input.Release()
	}
}
