package game_object

import "github.com/go-gl/mathgl/mgl32"

// GameObjectBuilderOption is a functional option for configuring a gameObject.
// Use the With* functions to create options.
type GameObjectBuilderOption func(g *gameObject)

// WithID sets the object's identifier. Objects added to a Scene with ID 0 get one assigned.
//
// Parameters:
//   - id: the ID to assign
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithID(id uint64) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.id = id
	}
}

// WithEnabled sets whether the object is drawn.
//
// Parameters:
//   - enabled: true to draw the object
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.enabled.Store(enabled)
	}
}

// WithPosition sets the world-space position.
//
// Parameters:
//   - p: the position
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithPosition(p mgl32.Vec3) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.position = p
	}
}

// WithScale sets the per-axis scale.
//
// Parameters:
//   - s: the scale
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithScale(s mgl32.Vec3) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.scale = s
	}
}

// WithRotation sets the rotation at scene time zero, in radians.
//
// Parameters:
//   - r: rotation around x, y and z
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithRotation(r mgl32.Vec3) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.rotation = r
	}
}

// WithRotationSpeed sets the angular velocity, in radians per second.
//
// Parameters:
//   - speed: angular velocity around x, y and z
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithRotationSpeed(speed mgl32.Vec3) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.rotationSpeed = speed
	}
}
