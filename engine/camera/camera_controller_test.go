package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func snapshotOf(keys ...uint32) input.Snapshot {
	s := input.Snapshot{Keys: make(map[uint32]bool, len(keys))}
	for _, k := range keys {
		s.Keys[k] = true
	}
	return s
}

func TestControllerMovementKeys(t *testing.T) {
	cases := []struct {
		name     string
		opts     []CameraControllerOption
		keys     []uint32
		expected mgl32.Vec3
	}{
		{"forward", nil, []uint32{common.KeyW}, mgl32.Vec3{0, 0, -2.5}},
		{"back", nil, []uint32{common.KeyS}, mgl32.Vec3{0, 0, 2.5}},
		{"left", nil, []uint32{common.KeyA}, mgl32.Vec3{-2.5, 0, 0}},
		{"right", nil, []uint32{common.KeyD}, mgl32.Vec3{2.5, 0, 0}},
		{"opposing_keys_cancel", nil, []uint32{common.KeyW, common.KeyS}, mgl32.Vec3{}},
		{"up", nil, []uint32{common.KeyE}, mgl32.Vec3{0, 2.5, 0}},
		{"down", nil, []uint32{common.KeyQ}, mgl32.Vec3{0, -2.5, 0}},
		{"vertical_disabled", []CameraControllerOption{WithVerticalMovement(false)}, []uint32{common.KeyE}, mgl32.Vec3{}},
		{"sprint", nil, []uint32{common.KeyW, common.KeyLeftShift}, mgl32.Vec3{0, 0, -5}},
		{"sprint_disabled", []CameraControllerOption{WithSprint(false)}, []uint32{common.KeyW, common.KeyLeftShift}, mgl32.Vec3{0, 0, -2.5}},
		{
			"custom_bindings",
			[]CameraControllerOption{WithKeyBindings(KeyBindings{Forward: common.KeySpace})},
			[]uint32{common.KeySpace, common.KeyW},
			mgl32.Vec3{0, 0, -2.5},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera(mgl32.Vec3{})
			NewCameraController(tc.opts...).Apply(cam, snapshotOf(tc.keys...), 1)
			assertVec3(t, tc.expected, cam.Position())
		})
	}
}

func TestControllerMouseLook(t *testing.T) {
	t.Run("captured_mouse_down_pitches_down", func(t *testing.T) {
		cam := NewCamera(mgl32.Vec3{}, WithMouseSensitivity(1))
		snap := snapshotOf()
		snap.Captured = true
		snap.MouseDX = 10
		snap.MouseDY = 20

		NewCameraController().Apply(cam, snap, 0.016)
		assert.InDelta(t, -80, cam.Yaw(), tol)
		assert.InDelta(t, -20, cam.Pitch(), tol)
	})

	t.Run("invert_y", func(t *testing.T) {
		cam := NewCamera(mgl32.Vec3{}, WithMouseSensitivity(1))
		snap := snapshotOf()
		snap.Captured = true
		snap.MouseDY = 20

		NewCameraController(WithInvertY(true)).Apply(cam, snap, 0.016)
		assert.InDelta(t, 20, cam.Pitch(), tol)
	})

	t.Run("released_cursor_is_ignored", func(t *testing.T) {
		cam := NewCamera(mgl32.Vec3{}, WithMouseSensitivity(1))
		snap := snapshotOf()
		snap.MouseDX = 50
		snap.MouseDY = 50

		NewCameraController().Apply(cam, snap, 0.016)
		assert.Equal(t, float32(-90), cam.Yaw())
		assert.Equal(t, float32(0), cam.Pitch())
	})
}

func TestControllerScroll(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	snap := snapshotOf()
	snap.Scroll = 5

	NewCameraController().Apply(cam, snap, 0.016)
	assert.Equal(t, float32(40), cam.Fov())
}

func TestControllerDefaults(t *testing.T) {
	cc := NewCameraController()
	assert.Equal(t, DefaultKeyBindings(), cc.Bindings())
	assert.True(t, cc.VerticalMovement())
	assert.True(t, cc.SprintEnabled())
	assert.False(t, cc.InvertY())
}
