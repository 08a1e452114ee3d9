package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option for configuring a Camera.
// Options are applied before the basis is first computed; out-of-range values
// are pulled back into range by NewCamera.
type CameraBuilderOption func(*cameraImpl)

// WithYaw sets the initial yaw in degrees.
//
// Parameters:
//   - yaw: rotation around world up in degrees (-90 faces world -Z)
//
// Returns:
//   - CameraBuilderOption: functional option to set the yaw
func WithYaw(yaw float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
	}
}

// WithPitch sets the initial pitch in degrees. The value is clamped to the pitch limit.
//
// Parameters:
//   - pitch: rotation around the local right axis in degrees
//
// Returns:
//   - CameraBuilderOption: functional option to set the pitch
func WithPitch(pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitch = pitch
	}
}

// WithFov sets the initial vertical field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: functional option to set the field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithFovBounds sets the inclusive range ProcessScroll clamps the field of view to.
// Invalid bounds (non-positive, >= 180 or inverted) fall back to [1, 90].
//
// Parameters:
//   - min: narrowest field of view in degrees
//   - max: widest field of view in degrees
//
// Returns:
//   - CameraBuilderOption: functional option to set the field of view bounds
func WithFovBounds(min, max float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.minFov = min
		c.maxFov = max
	}
}

// WithPitchLimit sets the absolute pitch bound in degrees. Values at or above 90
// are reduced to just below 90.
//
// Parameters:
//   - limit: the pitch bound in degrees
//
// Returns:
//   - CameraBuilderOption: functional option to set the pitch limit
func WithPitchLimit(limit float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitchLimit = limit
	}
}

// WithWorldUp sets the vertical reference vector used for the basis and vertical movement.
//
// Parameters:
//   - up: the world up vector (normalized on construction)
//
// Returns:
//   - CameraBuilderOption: functional option to set world up
func WithWorldUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.worldUp = up
	}
}

// WithMovementSpeed sets the base movement speed in world units per second.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - CameraBuilderOption: functional option to set the movement speed
func WithMovementSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.movementSpeed = speed
	}
}

// WithSprintMultiplier sets the speed factor applied while sprinting.
//
// Parameters:
//   - multiplier: factor applied to the movement speed
//
// Returns:
//   - CameraBuilderOption: functional option to set the sprint multiplier
func WithSprintMultiplier(multiplier float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.sprintMultiplier = multiplier
	}
}

// WithMouseSensitivity sets the degrees of rotation per unit of look delta.
//
// Parameters:
//   - sensitivity: multiplier for look deltas
//
// Returns:
//   - CameraBuilderOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSensitivity = sensitivity
	}
}

// WithZoomSensitivity sets the degrees of field of view per unit of scroll.
//
// Parameters:
//   - sensitivity: multiplier for scroll deltas
//
// Returns:
//   - CameraBuilderOption: functional option to set zoom sensitivity
func WithZoomSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoomSensitivity = sensitivity
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the clip planes
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}
