package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithKeyBindings replaces the controller's key bindings.
//
// Parameters:
//   - bindings: the key bindings to use
//
// Returns:
//   - CameraControllerOption: functional option to set the bindings
func WithKeyBindings(bindings KeyBindings) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bindings = bindings
	}
}

// WithVerticalMovement enables or disables the up/down movement axis.
// When disabled the controller only moves along the camera's right and front axes.
//
// Parameters:
//   - enabled: true to allow vertical movement
//
// Returns:
//   - CameraControllerOption: functional option to toggle vertical movement
func WithVerticalMovement(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.verticalMotion = enabled
	}
}

// WithSprint enables or disables the sprint key.
//
// Parameters:
//   - enabled: true to allow sprinting
//
// Returns:
//   - CameraControllerOption: functional option to toggle sprint
func WithSprint(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.sprintEnabled = enabled
	}
}

// WithInvertY inverts vertical mouse look (moving the mouse up looks down).
//
// Parameters:
//   - invert: true to invert
//
// Returns:
//   - CameraControllerOption: functional option to set Y inversion
func WithInvertY(invert bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.invertY = invert
	}
}
