package material

import "github.com/go-gl/mathgl/mgl32"

// MaterialBuilderOption is a function that configures a Material during construction.
type MaterialBuilderOption func(*material)

// WithName sets the material identifier.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithAmbient sets the ambient reflectance.
//
// Parameters:
//   - ambient: the ambient term as RGB
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithAmbient(ambient mgl32.Vec3) MaterialBuilderOption {
	return func(m *material) {
		m.ambient = ambient
	}
}

// WithColor sets the diffuse colour.
//
// Parameters:
//   - color: the colour as RGB
//
// Returns:
//   - MaterialBuilderOption: option function to apply
func WithColor(color mgl32.Vec3) MaterialBuilderOption {
	return func(m *material) {
		m.color = color
	}
}

// WithShininess sets the specular exponent.
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = shininess
	}
}
