package camera

import (
	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
)

// KeyBindings maps movement intents onto key codes.
type KeyBindings struct {
	Forward uint32
	Back    uint32
	Left    uint32
	Right   uint32
	Up      uint32
	Down    uint32
	Sprint  uint32
}

// DefaultKeyBindings returns WASD movement, E/Q for up/down and left shift to sprint.
//
// Returns:
//   - KeyBindings: the default bindings
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward: common.KeyW,
		Back:    common.KeyS,
		Left:    common.KeyA,
		Right:   common.KeyD,
		Up:      common.KeyE,
		Down:    common.KeyQ,
		Sprint:  common.KeyLeftShift,
	}
}

type cameraControllerImpl struct {
	bindings       KeyBindings
	verticalMotion bool
	sprintEnabled  bool
	invertY        bool
}

// CameraController translates one frame of sampled input into Camera operations.
// Key state becomes movement axes, the captured mouse delta becomes a rotation and
// the scroll delta becomes a zoom.
type CameraController interface {
	// Apply feeds a snapshot to the camera.
	//
	// Parameters:
	//   - cam: the camera to drive
	//   - snap: the frame's input snapshot
	//   - dt: elapsed frame time in seconds
	Apply(cam Camera, snap input.Snapshot, dt float32)

	// Bindings returns the active key bindings.
	//
	// Returns:
	//   - KeyBindings: the key bindings
	Bindings() KeyBindings

	// VerticalMovement reports whether the up/down keys move the camera.
	VerticalMovement() bool

	// SprintEnabled reports whether the sprint key applies the sprint multiplier.
	SprintEnabled() bool

	// InvertY reports whether vertical mouse movement is inverted.
	InvertY() bool
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller with default bindings, vertical movement
// and sprint enabled, and conventional (non-inverted) mouse look.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		bindings:       DefaultKeyBindings(),
		verticalMotion: true,
		sprintEnabled:  true,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Apply(cam Camera, snap input.Snapshot, dt float32) {
	b := cc.bindings

	var vertical float32
	if cc.verticalMotion {
		vertical = snap.Axis(b.Up, b.Down)
	}
	sprint := cc.sprintEnabled && snap.Pressed(b.Sprint)
	cam.ProcessMovement(snap.Axis(b.Right, b.Left), snap.Axis(b.Forward, b.Back), vertical, sprint, dt)

	if snap.Captured && (snap.MouseDX != 0 || snap.MouseDY != 0) {
		// Screen Y grows downward while pitch grows upward.
		dy := -snap.MouseDY
		if cc.invertY {
			dy = -dy
		}
		cam.ProcessRotation(snap.MouseDX, dy)
	}

	if snap.Scroll != 0 {
		cam.ProcessScroll(snap.Scroll)
	}
}

func (cc *cameraControllerImpl) Bindings() KeyBindings {
	return cc.bindings
}

func (cc *cameraControllerImpl) VerticalMovement() bool {
	return cc.verticalMotion
}

func (cc *cameraControllerImpl) SprintEnabled() bool {
	return cc.sprintEnabled
}

func (cc *cameraControllerImpl) InvertY() bool {
	return cc.invertY
}
