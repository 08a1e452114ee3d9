package light

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu        *sync.Mutex
	position  mgl32.Vec3
	color     mgl32.Vec3
	intensity float32
	enabled   bool
}

// Light is the point light that shades the scene. The shader treats it as an
// unattenuated Blinn-Phong source, so only its position and radiance matter.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - mgl32.Vec3: position as (x, y, z)
	Position() mgl32.Vec3

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Color() mgl32.Vec3

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Enabled reports whether the light contributes to shading.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Radiance returns the colour actually sent to the shader: color scaled by
	// intensity, or black when the light is disabled.
	//
	// Returns:
	//   - mgl32.Vec3: the effective light colour
	Radiance() mgl32.Vec3

	// SetPosition moves the light.
	//
	// Parameters:
	//   - p: the new world-space position
	SetPosition(p mgl32.Vec3)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - c: the new color
	SetColor(c mgl32.Vec3)

	// SetIntensity sets the intensity multiplier. Negative values are clamped to 0.
	//
	// Parameters:
	//   - intensity: the new intensity
	SetIntensity(intensity float32)

	// SetEnabled toggles the light.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a white-ish point light at (8, 7, 2) with intensity 1.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the new light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:        &sync.Mutex{},
		position:  mgl32.Vec3{8, 7, 2},
		color:     mgl32.Vec3{0.8, 0.8, 0.8},
		intensity: 1,
		enabled:   true,
	}

	for _, opt := range options {
		opt(l)
	}
	if l.intensity < 0 {
		l.intensity = 0
	}

	return l
}

func (l *lightImpl) Position() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) Color() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) Radiance() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return mgl32.Vec3{}
	}
	return l.color.Mul(l.intensity)
}

func (l *lightImpl) SetPosition(p mgl32.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = p
}

func (l *lightImpl) SetColor(c mgl32.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = max(intensity, 0)
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}
