package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertVec3(t *testing.T, expected, actual mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, expected[i], actual[i], tol, msgAndArgs...)
	}
}

func assertOrthonormal(t *testing.T, c Camera) {
	t.Helper()
	front, right, up := c.Front(), c.Right(), c.Up()
	assert.InDelta(t, 1, front.Len(), tol, "front length")
	assert.InDelta(t, 1, right.Len(), tol, "right length")
	assert.InDelta(t, 1, up.Len(), tol, "up length")
	assert.InDelta(t, 0, front.Dot(right), tol, "front.right")
	assert.InDelta(t, 0, front.Dot(up), tol, "front.up")
	assert.InDelta(t, 0, right.Dot(up), tol, "right.up")
	// right-handed basis: up x right = front
	assertVec3(t, front, up.Cross(right), "up x right")
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3})

	assertVec3(t, mgl32.Vec3{0, 0, 3}, c.Position())
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Right())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, float32(-90), c.Yaw())
	assert.Equal(t, float32(0), c.Pitch())
	assert.Equal(t, float32(45), c.Fov())
	assert.Equal(t, float32(2.5), c.MovementSpeed())
	assert.Equal(t, float32(89), c.PitchLimit())
	minFov, maxFov := c.FovBounds()
	assert.Equal(t, float32(1), minFov)
	assert.Equal(t, float32(90), maxFov)
}

func TestOrthonormalBasisAfterRotations(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, WithMouseSensitivity(1))
	deltas := [][2]float32{
		{13, 7}, {-250, 33}, {0.5, -120}, {720, 10}, {-33.3, 44.4}, {1e4, -1e4}, {3, 0.25},
	}
	for _, d := range deltas {
		c.ProcessRotation(d[0], d[1])
		assertOrthonormal(t, c)
	}
}

func TestPitchClamp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	for range 100 {
		c.ProcessRotation(0, 10000)
		assert.LessOrEqual(t, c.Pitch(), float32(89))
		assert.Greater(t, c.Pitch(), float32(-90))
	}
	assert.Equal(t, float32(89), c.Pitch())
	assertOrthonormal(t, c)

	for range 100 {
		c.ProcessRotation(0, -10000)
		assert.GreaterOrEqual(t, c.Pitch(), float32(-89))
	}
	assert.Equal(t, float32(-89), c.Pitch())
	assertOrthonormal(t, c)
}

func TestFovClamp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	for range 10 {
		c.ProcessScroll(-10000)
		assert.GreaterOrEqual(t, c.Fov(), float32(1))
		assert.LessOrEqual(t, c.Fov(), float32(90))
		c.ProcessScroll(10000)
		assert.GreaterOrEqual(t, c.Fov(), float32(1))
		assert.LessOrEqual(t, c.Fov(), float32(90))
	}
	assert.Equal(t, float32(1), c.Fov())

	c.ProcessScroll(-10000)
	assert.Equal(t, float32(90), c.Fov())

	c.ProcessScroll(5)
	assert.Equal(t, float32(85), c.Fov())
}

func TestFrameRateIndependence(t *testing.T) {
	once := NewCamera(mgl32.Vec3{0, 0, 3})
	once.ProcessMovement(0, 1, 0, false, 1.0)

	twice := NewCamera(mgl32.Vec3{0, 0, 3})
	twice.ProcessMovement(0, 1, 0, false, 0.5)
	twice.ProcessMovement(0, 1, 0, false, 0.5)

	assertVec3(t, once.Position(), twice.Position())
	assertVec3(t, mgl32.Vec3{0, 0, 0.5}, once.Position())
}

func TestRotationScenario(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 1, 3}, WithMouseSensitivity(1))
	c.ProcessRotation(90, 0)

	assert.InDelta(t, 0, c.Yaw(), tol)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Front())
	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.Right())
	assertVec3(t, mgl32.Vec3{0, 1, 3}, c.Position())
}

func TestMovementScenario(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	right := c.Right()
	c.ProcessMovement(1, 0, 0, false, 1.0)

	assertVec3(t, right.Mul(2.5), c.Position())
}

func TestProcessMovement(t *testing.T) {
	cases := []struct {
		name     string
		right    float32
		forward  float32
		vertical float32
		sprint   bool
		dt       float32
		expected mgl32.Vec3
	}{
		{"idle", 0, 0, 0, false, 1, mgl32.Vec3{}},
		{"forward", 0, 1, 0, false, 1, mgl32.Vec3{0, 0, -2.5}},
		{"backward", 0, -1, 0, false, 2, mgl32.Vec3{0, 0, 5}},
		{"strafe_left", -1, 0, 0, false, 1, mgl32.Vec3{-2.5, 0, 0}},
		{"vertical", 0, 0, 1, false, 1, mgl32.Vec3{0, 2.5, 0}},
		{"sprint", 0, 1, 0, true, 1, mgl32.Vec3{0, 0, -5}},
		{"diagonal", 1, 1, 0, false, 1, mgl32.Vec3{2.5, 0, -2.5}},
		{"continuous_axis", 0, 0.5, 0, false, 1, mgl32.Vec3{0, 0, -1.25}},
		{"zero_dt", 1, 1, 1, true, 0, mgl32.Vec3{}},
		{"negative_dt", 1, 1, 1, false, -1, mgl32.Vec3{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(mgl32.Vec3{})
			c.ProcessMovement(tc.right, tc.forward, tc.vertical, tc.sprint, tc.dt)
			assertVec3(t, tc.expected, c.Position())
		})
	}
}

func TestVerticalMovementFollowsWorldUpWhilePitched(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, WithMouseSensitivity(1))
	c.ProcessRotation(0, 45)
	c.ProcessMovement(0, 0, 1, false, 1)

	assertVec3(t, mgl32.Vec3{0, 2.5, 0}, c.Position())
}

func TestNonFiniteInputsAreIgnored(t *testing.T) {
	nan := math32.NaN()
	inf := math32.Inf(1)

	c := NewCamera(mgl32.Vec3{1, 2, 3})
	before := struct {
		pos        mgl32.Vec3
		yaw, pitch float32
		fov        float32
	}{c.Position(), c.Yaw(), c.Pitch(), c.Fov()}

	c.ProcessMovement(nan, 0, 0, false, 1)
	c.ProcessMovement(0, inf, 0, false, 1)
	c.ProcessMovement(0, 1, 0, false, inf)
	c.ProcessRotation(nan, 0)
	c.ProcessRotation(0, -inf)
	c.ProcessScroll(nan)
	c.SetAspect(inf)

	assert.Equal(t, before.pos, c.Position())
	assert.Equal(t, before.yaw, c.Yaw())
	assert.Equal(t, before.pitch, c.Pitch())
	assert.Equal(t, before.fov, c.Fov())
	assert.Equal(t, float32(1), c.Aspect())
	assertOrthonormal(t, c)
}

func TestOverflowingDeltasAreIgnored(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3}, WithMouseSensitivity(2), WithZoomSensitivity(2))
	yaw, pitch, fov := c.Yaw(), c.Pitch(), c.Fov()

	c.ProcessRotation(math32.MaxFloat32, 0)
	c.ProcessRotation(0, -math32.MaxFloat32)
	c.ProcessScroll(math32.MaxFloat32)

	assert.Equal(t, yaw, c.Yaw())
	assert.Equal(t, pitch, c.Pitch())
	assert.Equal(t, fov, c.Fov())
	assertOrthonormal(t, c)

	c.ProcessRotation(1, 0)
	assert.InDelta(t, yaw+2, c.Yaw(), 1e-5)
	assertOrthonormal(t, c)
	view := c.ViewMatrix()
	assert.True(t, common.IsFinite(view[:]...))
}

func TestYawWrapsIntoHalfOpenRange(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, WithMouseSensitivity(1))
	for range 50 {
		c.ProcessRotation(97.3, 0)
		assert.GreaterOrEqual(t, c.Yaw(), float32(-180))
		assert.Less(t, c.Yaw(), float32(180))
	}

	// a full turn leaves the orientation unchanged
	c2 := NewCamera(mgl32.Vec3{}, WithMouseSensitivity(1))
	c2.ProcessRotation(360, 0)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c2.Front())
	assert.InDelta(t, -90, c2.Yaw(), tol)
}

func TestViewMatrix(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3})

	first := c.ViewMatrix()
	second := c.ViewMatrix()
	assert.Equal(t, first, second)

	// the eye maps to the origin and the point one unit ahead maps to view-space -Z
	eye := first.Mul4x1(c.Position().Vec4(1))
	ahead := first.Mul4x1(c.Position().Add(c.Front()).Vec4(1))
	for i := range 3 {
		assert.InDelta(t, 0, eye[i], tol)
	}
	assert.InDelta(t, 0, ahead[0], tol)
	assert.InDelta(t, 0, ahead[1], tol)
	assert.InDelta(t, -1, ahead[2], tol)

	c.ProcessRotation(100, 0)
	assert.NotEqual(t, first, c.ViewMatrix(), "view matrix must reflect the latest orientation")

	moved := NewCamera(mgl32.Vec3{0, 0, 3})
	moved.ProcessMovement(0, 1, 0, false, 1)
	assert.NotEqual(t, first, moved.ViewMatrix(), "view matrix must reflect the latest position")
}

func TestProjectionMatrix(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, WithAspect(2), WithClipPlanes(0.5, 50))
	p := c.ProjectionMatrix()

	f := 1 / math.Tan(float64(mgl32.DegToRad(45))/2)
	assert.InDelta(t, f/2, p[0], tol)
	assert.InDelta(t, f, p[5], tol)
	assert.Equal(t, float32(-1), p[11])

	// near plane maps to depth 0 and far plane to depth 1
	near := p.Mul4x1(mgl32.Vec4{0, 0, -0.5, 1})
	far := p.Mul4x1(mgl32.Vec4{0, 0, -50, 1})
	assert.InDelta(t, 0, near[2]/near[3], tol)
	assert.InDelta(t, 1, far[2]/far[3], tol)

	c.ProcessScroll(15)
	assert.NotEqual(t, p, c.ProjectionMatrix())

	expected := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	assert.Equal(t, expected, c.ViewProjectionMatrix())
}

func TestSetAspect(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.SetAspect(16.0 / 9.0)
	assert.InDelta(t, 16.0/9.0, c.Aspect(), tol)

	c.SetAspect(0)
	c.SetAspect(-3)
	assert.InDelta(t, 16.0/9.0, c.Aspect(), tol)
}

func TestBuilderOptionsAreSanitized(t *testing.T) {
	cases := []struct {
		name   string
		opts   []CameraBuilderOption
		verify func(t *testing.T, c Camera)
	}{
		{
			name: "pitch_limit_below_90",
			opts: []CameraBuilderOption{WithPitchLimit(120)},
			verify: func(t *testing.T, c Camera) {
				assert.Less(t, c.PitchLimit(), float32(90))
			},
		},
		{
			name: "inverted_fov_bounds_fall_back",
			opts: []CameraBuilderOption{WithFovBounds(60, 10)},
			verify: func(t *testing.T, c Camera) {
				minFov, maxFov := c.FovBounds()
				assert.Equal(t, float32(1), minFov)
				assert.Equal(t, float32(90), maxFov)
			},
		},
		{
			name: "initial_fov_clamped",
			opts: []CameraBuilderOption{WithFovBounds(10, 60), WithFov(75)},
			verify: func(t *testing.T, c Camera) {
				assert.Equal(t, float32(60), c.Fov())
			},
		},
		{
			name: "initial_pitch_clamped",
			opts: []CameraBuilderOption{WithPitch(200)},
			verify: func(t *testing.T, c Camera) {
				assert.Equal(t, float32(89), c.Pitch())
				assertOrthonormal(t, c)
			},
		},
		{
			name: "world_up_normalized",
			opts: []CameraBuilderOption{WithWorldUp(mgl32.Vec3{0, 5, 0})},
			verify: func(t *testing.T, c Camera) {
				assertVec3(t, mgl32.Vec3{0, 1, 0}, c.WorldUp())
			},
		},
		{
			name: "degenerate_world_up_falls_back",
			opts: []CameraBuilderOption{WithWorldUp(mgl32.Vec3{})},
			verify: func(t *testing.T, c Camera) {
				assertVec3(t, mgl32.Vec3{0, 1, 0}, c.WorldUp())
			},
		},
		{
			name: "bad_clip_planes_fall_back",
			opts: []CameraBuilderOption{WithClipPlanes(10, 1)},
			verify: func(t *testing.T, c Camera) {
				assert.Equal(t, float32(0.1), c.Near())
				assert.Equal(t, float32(100), c.Far())
			},
		},
		{
			name: "initial_yaw_applied",
			opts: []CameraBuilderOption{WithYaw(0)},
			verify: func(t *testing.T, c Camera) {
				assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Front())
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.verify(t, NewCamera(mgl32.Vec3{}, tc.opts...))
		})
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 3})
	u := NewGPUCameraUniform(c)
	require.Equal(t, 80, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 80)

	vp := c.ViewProjectionMatrix()
	for i := range 16 {
		assert.Equal(t, vp[i], math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])))
	}
	for i, want := range []float32{1, 2, 3} {
		assert.Equal(t, want, math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:])))
	}
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[76:]))
}
