package material

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// material is the implementation of the Material interface.
type material struct {
	mu        *sync.Mutex
	name      string
	ambient   mgl32.Vec3
	color     mgl32.Vec3
	shininess float32
}

// Material defines the Blinn-Phong surface parameters the fixed shader reads
// from its "material.*" uniforms.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Ambient retrieves the ambient reflectance.
	//
	// Returns:
	//   - mgl32.Vec3: the ambient term as RGB
	Ambient() mgl32.Vec3

	// Color retrieves the diffuse colour the checker pattern is tinted with.
	//
	// Returns:
	//   - mgl32.Vec3: the colour as RGB
	Color() mgl32.Vec3

	// Shininess retrieves the specular exponent.
	//
	// Returns:
	//   - float32: the exponent, always >= 1
	Shininess() float32

	// SetColor sets the diffuse colour.
	SetColor(c mgl32.Vec3)

	// SetShininess sets the specular exponent. Values below 1 are clamped to 1.
	SetShininess(s float32)
}

var _ Material = &material{}

// NewMaterial creates a white material with ambient 0.2 and shininess 128.
//
// Parameters:
//   - options: functional options to configure the material
//
// Returns:
//   - Material: the new material
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		mu:        &sync.Mutex{},
		name:      "default",
		ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		color:     mgl32.Vec3{1, 1, 1},
		shininess: 128,
	}

	for _, opt := range options {
		opt(m)
	}
	m.shininess = max(m.shininess, 1)

	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Ambient() mgl32.Vec3 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ambient
}

func (m *material) Color() mgl32.Vec3 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.color
}

func (m *material) Shininess() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shininess
}

func (m *material) SetColor(c mgl32.Vec3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.color = c
}

func (m *material) SetShininess(s float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shininess = max(s, 1)
}
