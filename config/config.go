package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewer/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "viewer.yaml"

var (
	ErrInvalidWindow   = errors.New("config: invalid window section")
	ErrInvalidCamera   = errors.New("config: invalid camera section")
	ErrInvalidControls = errors.New("config: invalid controls section")
	ErrInvalidRender   = errors.New("config: invalid render section")
	ErrInvalidLighting = errors.New("config: invalid lighting section")
	ErrInvalidScene    = errors.New("config: invalid scene section")
	ErrInvalidRuntime  = errors.New("config: invalid runtime section")
)

// Config is the viewer's YAML configuration. Keys missing from the file keep their defaults.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Render   RenderConfig   `yaml:"render"`
	Lighting LightingConfig `yaml:"lighting"`
	Scene    SceneConfig    `yaml:"scene"`
	Runtime  RuntimeConfig  `yaml:"runtime"`
}

type WindowConfig struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	MinWidth      int    `yaml:"min_width"`
	MinHeight     int    `yaml:"min_height"`
	CloseOnEscape bool   `yaml:"close_on_escape"`
}

type CameraConfig struct {
	Position         mgl32.Vec3 `yaml:"position"`
	Yaw              float32    `yaml:"yaw"`
	Pitch            float32    `yaml:"pitch"`
	Fov              float32    `yaml:"fov"`
	MinFov           float32    `yaml:"min_fov"`
	MaxFov           float32    `yaml:"max_fov"`
	PitchLimit       float32    `yaml:"pitch_limit"`
	Near             float32    `yaml:"near"`
	Far              float32    `yaml:"far"`
	MovementSpeed    float32    `yaml:"movement_speed"`
	SprintMultiplier float32    `yaml:"sprint_multiplier"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
	ZoomSensitivity  float32    `yaml:"zoom_sensitivity"`
}

// ControlsConfig names keys with common.KeyByName names ("w", "left_shift", "space").
type ControlsConfig struct {
	Forward        string `yaml:"forward"`
	Back           string `yaml:"back"`
	Left           string `yaml:"left"`
	Right          string `yaml:"right"`
	Up             string `yaml:"up"`
	Down           string `yaml:"down"`
	Sprint         string `yaml:"sprint"`
	CaptureToggle  string `yaml:"capture_toggle"`
	VerticalMotion bool   `yaml:"vertical_motion"`
	SprintEnabled  bool   `yaml:"sprint_enabled"`
	InvertY        bool   `yaml:"invert_y"`
	CaptureOnStart bool   `yaml:"capture_on_start"`
}

type RenderConfig struct {
	PresentMode   string     `yaml:"present_mode"`
	MSAA          int        `yaml:"msaa"`
	ClearColor    [4]float64 `yaml:"clear_color"`
	ForceSoftware bool       `yaml:"force_software"`
}

type LightingConfig struct {
	LightPos   mgl32.Vec3 `yaml:"light_pos"`
	LightColor mgl32.Vec3 `yaml:"light_color"`
	Intensity  float32    `yaml:"intensity"`
	Ambient    mgl32.Vec3 `yaml:"ambient"`
	Color      mgl32.Vec3 `yaml:"color"`
	Shininess  float32    `yaml:"shininess"`
	ModelScale float32    `yaml:"model_scale"`
}

// SceneConfig lists the cubes to draw. An empty list draws the demo layout.
type SceneConfig struct {
	Cubes []CubeConfig `yaml:"cubes"`
}

type CubeConfig struct {
	Position      mgl32.Vec3 `yaml:"position"`
	Rotation      mgl32.Vec3 `yaml:"rotation"`       // radians
	RotationSpeed mgl32.Vec3 `yaml:"rotation_speed"` // radians per second
	Scale         float32    `yaml:"scale"`
}

// RuntimeConfig is the part of the config that is re-applied on live reload.
type RuntimeConfig struct {
	FrameLimit      float64       `yaml:"frame_limit"`
	Profiling       bool          `yaml:"profiling"`
	ProfileInterval time.Duration `yaml:"profile_interval"`
	MaxFrameDelta   time.Duration `yaml:"max_frame_delta"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - Config: the defaults
func Default() Config {
	runtime := engine.DefaultRuntimeSettings()
	return Config{
		Window: WindowConfig{
			Title:         "oxy-viewer",
			Width:         800,
			Height:        600,
			MinWidth:      320,
			MinHeight:     240,
			CloseOnEscape: true,
		},
		Camera: CameraConfig{
			Position:         mgl32.Vec3{0, 1, 3},
			Yaw:              -90,
			Pitch:            0,
			Fov:              45,
			MinFov:           1,
			MaxFov:           90,
			PitchLimit:       89,
			Near:             0.1,
			Far:              100,
			MovementSpeed:    2.5,
			SprintMultiplier: 2,
			MouseSensitivity: 0.1,
			ZoomSensitivity:  1,
		},
		Controls: ControlsConfig{
			Forward:        "w",
			Back:           "s",
			Left:           "a",
			Right:          "d",
			Up:             "e",
			Down:           "q",
			Sprint:         "left_shift",
			CaptureToggle:  "m",
			VerticalMotion: true,
			SprintEnabled:  true,
			CaptureOnStart: true,
		},
		Render: RenderConfig{
			PresentMode: "vsync",
			MSAA:        4,
			ClearColor:  [4]float64{0.05, 0.05, 0.05, 1},
		},
		Lighting: LightingConfig{
			LightPos:   mgl32.Vec3{8, 7, 2},
			LightColor: mgl32.Vec3{0.8, 0.8, 0.8},
			Intensity:  1,
			Ambient:    mgl32.Vec3{0.2, 0.2, 0.2},
			Color:      mgl32.Vec3{1, 1, 1},
			Shininess:  128,
			ModelScale: 1,
		},
		Runtime: RuntimeConfig{
			FrameLimit:      runtime.FrameLimit,
			Profiling:       runtime.Profiling,
			ProfileInterval: runtime.ProfileInterval,
			MaxFrameDelta:   runtime.MaxFrameDelta,
		},
	}
}

// Load reads and validates the config at path. A missing file yields the defaults.
//
// Parameters:
//   - path: the YAML file; empty means DefaultPath
//
// Returns:
//   - Config: the loaded config
//   - error: an error if the file cannot be read, parsed or validated
func Load(path string) (Config, error) {
	path = common.Coalesce(path, DefaultPath)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - Config: the parsed config
//   - error: a decode error or a wrapped Err* sentinel
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid value, wrapped in its section's sentinel error.
func (c Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidWindow, w.Width, w.Height)
	}
	if w.MinWidth < 0 || w.MinHeight < 0 || w.MinWidth > w.Width || w.MinHeight > w.Height {
		return fmt.Errorf("%w: min size %dx%d outside 0..%dx%d", ErrInvalidWindow, w.MinWidth, w.MinHeight, w.Width, w.Height)
	}

	cam := c.Camera
	if !finite(cam.Position[:]...) || !finite(cam.Yaw, cam.Pitch, cam.Fov, cam.MinFov, cam.MaxFov, cam.PitchLimit,
		cam.Near, cam.Far, cam.MovementSpeed, cam.SprintMultiplier, cam.MouseSensitivity, cam.ZoomSensitivity) {
		return fmt.Errorf("%w: values must be finite", ErrInvalidCamera)
	}
	if cam.MinFov <= 0 || cam.MinFov > cam.MaxFov || cam.MaxFov >= 180 {
		return fmt.Errorf("%w: fov bounds [%g, %g] must satisfy 0 < min <= max < 180", ErrInvalidCamera, cam.MinFov, cam.MaxFov)
	}
	if cam.Fov < cam.MinFov || cam.Fov > cam.MaxFov {
		return fmt.Errorf("%w: fov %g outside [%g, %g]", ErrInvalidCamera, cam.Fov, cam.MinFov, cam.MaxFov)
	}
	if cam.PitchLimit <= 0 || cam.PitchLimit >= 90 {
		return fmt.Errorf("%w: pitch limit %g must be in (0, 90)", ErrInvalidCamera, cam.PitchLimit)
	}
	if math32.Abs(cam.Pitch) > cam.PitchLimit {
		return fmt.Errorf("%w: pitch %g exceeds limit %g", ErrInvalidCamera, cam.Pitch, cam.PitchLimit)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("%w: clip planes %g/%g must satisfy 0 < near < far", ErrInvalidCamera, cam.Near, cam.Far)
	}
	if cam.MovementSpeed < 0 || cam.SprintMultiplier < 1 || cam.MouseSensitivity < 0 || cam.ZoomSensitivity < 0 {
		return fmt.Errorf("%w: speeds and sensitivities must be non-negative and sprint multiplier >= 1", ErrInvalidCamera)
	}

	if _, err := c.Controls.bindings(); err != nil {
		return err
	}
	if c.Controls.CaptureToggle != "" {
		if _, ok := common.KeyByName(c.Controls.CaptureToggle); !ok {
			return fmt.Errorf("%w: unknown capture_toggle key %q", ErrInvalidControls, c.Controls.CaptureToggle)
		}
	}

	if _, ok := renderer.ParsePresentMode(c.Render.PresentMode); !ok {
		return fmt.Errorf("%w: unknown present mode %q", ErrInvalidRender, c.Render.PresentMode)
	}
	if c.Render.MSAA != int(renderer.MSAAOff) && c.Render.MSAA != int(renderer.MSAA4x) {
		return fmt.Errorf("%w: msaa must be 1 or 4, got %d", ErrInvalidRender, c.Render.MSAA)
	}
	for _, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clear colour components must be in [0, 1]", ErrInvalidRender)
		}
	}

	l := c.Lighting
	if !finite(l.LightPos[:]...) || !finite(l.LightColor[:]...) || !finite(l.Ambient[:]...) || !finite(l.Color[:]...) ||
		!finite(l.Intensity, l.Shininess, l.ModelScale) {
		return fmt.Errorf("%w: values must be finite", ErrInvalidLighting)
	}
	if l.Intensity < 0 || l.Shininess < 1 || l.ModelScale <= 0 {
		return fmt.Errorf("%w: intensity must be >= 0, shininess >= 1, model scale > 0", ErrInvalidLighting)
	}

	for i, cube := range c.Scene.Cubes {
		if !finite(cube.Position[:]...) || !finite(cube.Rotation[:]...) || !finite(cube.RotationSpeed[:]...) ||
			!finite(cube.Scale) || cube.Scale < 0 {
			return fmt.Errorf("%w: cube %d has a non-finite or negative value", ErrInvalidScene, i)
		}
	}

	return c.Runtime.Validate()
}

// Validate checks the runtime section on its own, as live reload does.
func (r RuntimeConfig) Validate() error {
	if r.FrameLimit < 0 || math.IsNaN(r.FrameLimit) || math.IsInf(r.FrameLimit, 0) {
		return fmt.Errorf("%w: frame limit %g must be >= 0", ErrInvalidRuntime, r.FrameLimit)
	}
	if r.ProfileInterval < 0 || r.MaxFrameDelta < 0 {
		return fmt.Errorf("%w: durations must be >= 0", ErrInvalidRuntime)
	}
	return nil
}

func finite(values ...float32) bool {
	for _, v := range values {
		if !common.IsFinite(v) {
			return false
		}
	}
	return true
}

func (c ControlsConfig) bindings() (camera.KeyBindings, error) {
	var b camera.KeyBindings
	for _, k := range []struct {
		field string
		name  string
		dst   *uint32
	}{
		{"forward", c.Forward, &b.Forward},
		{"back", c.Back, &b.Back},
		{"left", c.Left, &b.Left},
		{"right", c.Right, &b.Right},
		{"up", c.Up, &b.Up},
		{"down", c.Down, &b.Down},
		{"sprint", c.Sprint, &b.Sprint},
	} {
		code, ok := common.KeyByName(k.name)
		if !ok {
			return camera.KeyBindings{}, fmt.Errorf("%w: unknown %s key %q", ErrInvalidControls, k.field, k.name)
		}
		*k.dst = code
	}
	return b, nil
}

// CameraOptions converts the camera section into camera builder options.
func (c Config) CameraOptions() []camera.CameraBuilderOption {
	cam := c.Camera
	aspect := float32(1)
	if c.Window.Height > 0 {
		aspect = float32(c.Window.Width) / float32(c.Window.Height)
	}
	return []camera.CameraBuilderOption{
		camera.WithFovBounds(cam.MinFov, cam.MaxFov),
		camera.WithPitchLimit(cam.PitchLimit),
		camera.WithYaw(cam.Yaw),
		camera.WithPitch(cam.Pitch),
		camera.WithFov(cam.Fov),
		camera.WithClipPlanes(cam.Near, cam.Far),
		camera.WithAspect(aspect),
		camera.WithMovementSpeed(cam.MovementSpeed),
		camera.WithSprintMultiplier(cam.SprintMultiplier),
		camera.WithMouseSensitivity(cam.MouseSensitivity),
		camera.WithZoomSensitivity(cam.ZoomSensitivity),
	}
}

// NewCamera builds the configured camera.
func (c Config) NewCamera() camera.Camera {
	return camera.NewCamera(c.Camera.Position, c.CameraOptions()...)
}

// ControllerOptions converts the controls section into controller options.
//
// Returns:
//   - []camera.CameraControllerOption: the options
//   - error: ErrInvalidControls if a key name is unknown
func (c Config) ControllerOptions() ([]camera.CameraControllerOption, error) {
	b, err := c.Controls.bindings()
	if err != nil {
		return nil, err
	}
	return []camera.CameraControllerOption{
		camera.WithKeyBindings(b),
		camera.WithVerticalMovement(c.Controls.VerticalMotion),
		camera.WithSprint(c.Controls.SprintEnabled),
		camera.WithInvertY(c.Controls.InvertY),
	}, nil
}

// CaptureToggleKey returns the key code that toggles cursor capture, or 0 when unset.
func (c Config) CaptureToggleKey() uint32 {
	code, _ := common.KeyByName(c.Controls.CaptureToggle)
	return code
}

// WindowOptions converts the window section into window builder options.
func (c Config) WindowOptions() []window.WindowBuilderOption {
	w := c.Window
	return []window.WindowBuilderOption{
		window.WithTitle(w.Title),
		window.WithSize(w.Width, w.Height),
		window.WithMinSize(w.MinWidth, w.MinHeight),
		window.WithCloseOnEscape(w.CloseOnEscape),
	}
}

// RendererOptions converts the render section into renderer builder options.
func (c Config) RendererOptions() []renderer.RendererBuilderOption {
	mode, _ := renderer.ParsePresentMode(c.Render.PresentMode)
	cc := c.Render.ClearColor
	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(mode),
		renderer.WithMSAA(renderer.MSAASampleCount(c.Render.MSAA)),
		renderer.WithClearColor(renderer.ClearColor{R: cc[0], G: cc[1], B: cc[2], A: cc[3]}),
		renderer.WithForceSoftwareRenderer(c.Render.ForceSoftware),
	}
}

// NewLight builds the configured point light.
func (c Config) NewLight() light.Light {
	l := c.Lighting
	return light.NewLight(
		light.WithPosition(l.LightPos),
		light.WithColor(l.LightColor),
		light.WithIntensity(l.Intensity),
	)
}

// NewMaterial builds the configured surface material.
func (c Config) NewMaterial() material.Material {
	l := c.Lighting
	return material.NewMaterial(
		material.WithAmbient(l.Ambient),
		material.WithColor(l.Color),
		material.WithShininess(l.Shininess),
	)
}

// RuntimeSettings converts the runtime section into engine runtime settings.
func (r RuntimeConfig) RuntimeSettings() engine.RuntimeSettings {
	return engine.RuntimeSettings{
		FrameLimit:      r.FrameLimit,
		Profiling:       r.Profiling,
		ProfileInterval: r.ProfileInterval,
		MaxFrameDelta:   r.MaxFrameDelta,
	}
}

// NewScene builds the configured scene, falling back to the demo cubes.
func (c Config) NewScene() scene.Scene {
	if len(c.Scene.Cubes) == 0 {
		return scene.NewScene(scene.WithName("demo"), scene.WithObjects(scene.DemoCubes()...))
	}
	objects := make([]game_object.GameObject, 0, len(c.Scene.Cubes))
	for _, cube := range c.Scene.Cubes {
		s := common.Coalesce(cube.Scale, 1)
		objects = append(objects, game_object.NewGameObject(
			game_object.WithPosition(cube.Position),
			game_object.WithRotation(cube.Rotation),
			game_object.WithRotationSpeed(cube.RotationSpeed),
			game_object.WithScale(mgl32.Vec3{s, s, s}),
		))
	}
	return scene.NewScene(scene.WithName("config"), scene.WithObjects(objects...))
}
