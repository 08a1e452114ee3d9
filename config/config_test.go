package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, engine.DefaultRuntimeSettings(), cfg.Runtime.RuntimeSettings())

	l := cfg.NewLight()
	assert.Equal(t, mgl32.Vec3{8, 7, 2}, l.Position())
	assert.Equal(t, mgl32.Vec3{0.8, 0.8, 0.8}, l.Radiance())
	m := cfg.NewMaterial()
	assert.Equal(t, float32(128), m.Shininess())
	assert.Equal(t, mgl32.Vec3{0.2, 0.2, 0.2}, m.Ambient())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseMergesOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  title: cubes
camera:
  position: [1, 2, 3]
  fov: 60
controls:
  forward: up_arrow_is_not_a_key_name
`))
	require.ErrorIs(t, err, ErrInvalidControls)
	assert.Equal(t, Config{}, cfg)

	cfg, err = Parse([]byte(`
window:
  title: cubes
camera:
  position: [1, 2, 3]
  fov: 60
runtime:
  frame_limit: 30
  profile_interval: 2s
`))
	require.NoError(t, err)
	assert.Equal(t, "cubes", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, float32(60), cfg.Camera.Fov)
	assert.Equal(t, float32(2.5), cfg.Camera.MovementSpeed)
	assert.Equal(t, 30.0, cfg.Runtime.FrameLimit)
	assert.Equal(t, 2*time.Second, cfg.Runtime.ProfileInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.Runtime.MaxFrameDelta)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("camera: [unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("camera:\n  position: [1, 2]\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, ErrInvalidWindow},
		{"min larger than size", func(c *Config) { c.Window.MinWidth = 1000 }, ErrInvalidWindow},
		{"fov outside bounds", func(c *Config) { c.Camera.Fov = 120 }, ErrInvalidCamera},
		{"inverted fov bounds", func(c *Config) { c.Camera.MinFov, c.Camera.MaxFov = 50, 40 }, ErrInvalidCamera},
		{"pitch limit 90", func(c *Config) { c.Camera.PitchLimit = 90 }, ErrInvalidCamera},
		{"pitch beyond limit", func(c *Config) { c.Camera.Pitch = 89.5 }, ErrInvalidCamera},
		{"far before near", func(c *Config) { c.Camera.Near, c.Camera.Far = 10, 1 }, ErrInvalidCamera},
		{"nan speed", func(c *Config) { c.Camera.MovementSpeed = float32(nan()) }, ErrInvalidCamera},
		{"sprint below one", func(c *Config) { c.Camera.SprintMultiplier = 0.5 }, ErrInvalidCamera},
		{"unknown key", func(c *Config) { c.Controls.Sprint = "hyper" }, ErrInvalidControls},
		{"unknown toggle", func(c *Config) { c.Controls.CaptureToggle = "hyper" }, ErrInvalidControls},
		{"present mode", func(c *Config) { c.Render.PresentMode = "mailbox" }, ErrInvalidRender},
		{"msaa 2", func(c *Config) { c.Render.MSAA = 2 }, ErrInvalidRender},
		{"clear colour", func(c *Config) { c.Render.ClearColor[0] = 2 }, ErrInvalidRender},
		{"zero shininess", func(c *Config) { c.Lighting.Shininess = 0 }, ErrInvalidLighting},
		{"negative intensity", func(c *Config) { c.Lighting.Intensity = -1 }, ErrInvalidLighting},
		{"negative cube scale", func(c *Config) { c.Scene.Cubes = []CubeConfig{{Scale: -1}} }, ErrInvalidScene},
		{"negative frame limit", func(c *Config) { c.Runtime.FrameLimit = -1 }, ErrInvalidRuntime},
		{"negative delta", func(c *Config) { c.Runtime.MaxFrameDelta = -time.Second }, ErrInvalidRuntime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestEmptyCaptureToggleIsAllowed(t *testing.T) {
	cfg := Default()
	cfg.Controls.CaptureToggle = ""
	require.NoError(t, cfg.Validate())
	assert.Zero(t, cfg.CaptureToggleKey())
}

func TestNewCamera(t *testing.T) {
	cfg := Default()
	cfg.Camera.Yaw = 0
	cfg.Camera.Fov = 60
	cfg.Window.Width, cfg.Window.Height = 1000, 500

	cam := cfg.NewCamera()
	assert.Equal(t, mgl32.Vec3{0, 1, 3}, cam.Position())
	assert.InDelta(t, 0, cam.Yaw(), 1e-6)
	assert.InDelta(t, 60, cam.Fov(), 1e-6)
	assert.InDelta(t, 2, cam.Aspect(), 1e-6)
	assert.InDelta(t, 1, cam.Front().X(), 1e-5)
}

func TestControllerOptions(t *testing.T) {
	cfg := Default()
	cfg.Controls.Forward = "i"
	cfg.Controls.InvertY = true
	cfg.Controls.VerticalMotion = false

	opts, err := cfg.ControllerOptions()
	require.NoError(t, err)
	cc := camera.NewCameraController(opts...)
	assert.Equal(t, uint32('I'), cc.Bindings().Forward)
	assert.Equal(t, uint32(common.KeyLeftShift), cc.Bindings().Sprint)
	assert.Equal(t, uint32(common.KeyM), cfg.CaptureToggleKey())
}

func TestRendererOptions(t *testing.T) {
	cfg := Default()
	cfg.Render.PresentMode = "uncapped"
	cfg.Render.MSAA = 1
	assert.Len(t, cfg.RendererOptions(), 4)
	assert.Len(t, cfg.WindowOptions(), 4)

	mode, ok := renderer.ParsePresentMode(cfg.Render.PresentMode)
	assert.True(t, ok)
	assert.Equal(t, renderer.PresentModeUncapped, mode)
}

func TestNewScene(t *testing.T) {
	demo := Default().NewScene()
	assert.Equal(t, 7, demo.Count())

	cfg, err := Parse([]byte(`
scene:
  cubes:
    - position: [1, 0, 0]
    - position: [0, 0, -5]
      scale: 2
`))
	require.NoError(t, err)
	s := cfg.NewScene()
	require.Equal(t, 2, s.Count())

	objects := s.Objects()
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, objects[0].Scale())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, objects[1].Scale())
	assert.Equal(t, mgl32.Vec3{0, 0, -5}, objects[1].Position())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runtime:\n  profiling: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Runtime.Profiling)

	require.NoError(t, os.WriteFile(path, []byte("render:\n  msaa: 3\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidRender)
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "viewer.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
