package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultYaw              = -90.0
	defaultPitch            = 0.0
	defaultFov              = 45.0
	defaultMovementSpeed    = 2.5
	defaultSprintMultiplier = 2.0
	defaultMouseSensitivity = 0.1
	defaultZoomSensitivity  = 1.0
	defaultPitchLimit       = 89.0
	defaultMinFov           = 1.0
	defaultMaxFov           = 90.0

	// maxPitchLimit keeps the pitch clamp strictly inside (-90, 90) so front never aligns with world up.
	maxPitchLimit = 89.9
)

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32 // degrees, wrapped into [-180, 180)
	pitch float32 // degrees, clamped to [-pitchLimit, pitchLimit]
	fov   float32 // degrees, clamped to [minFov, maxFov]

	aspect float32
	near   float32
	far    float32

	movementSpeed    float32
	sprintMultiplier float32
	mouseSensitivity float32
	zoomSensitivity  float32
	pitchLimit       float32
	minFov           float32
	maxFov           float32
}

// Camera is a first-person fly camera driven by yaw/pitch angles.
// It owns the eye position, an orthonormal basis derived from yaw and pitch,
// and the field of view. Movement, rotation and zoom deltas are applied through
// the Process* methods; the view and projection matrices are derived on demand.
//
// All methods are safe to call from multiple goroutines, although the engine
// only ever touches the camera from its render loop.
type Camera interface {
	// Position returns the world-space eye position.
	//
	// Returns:
	//   - mgl32.Vec3: eye position
	Position() mgl32.Vec3

	// Front returns the unit view direction.
	//
	// Returns:
	//   - mgl32.Vec3: the normalized front vector
	Front() mgl32.Vec3

	// Right returns the unit lateral axis.
	//
	// Returns:
	//   - mgl32.Vec3: the normalized right vector
	Right() mgl32.Vec3

	// Up returns the camera's unit up vector (not the world up reference).
	//
	// Returns:
	//   - mgl32.Vec3: the normalized up vector
	Up() mgl32.Vec3

	// WorldUp returns the fixed vertical reference used to derive the basis.
	//
	// Returns:
	//   - mgl32.Vec3: the world up vector
	WorldUp() mgl32.Vec3

	// Yaw returns the rotation around world up in degrees, wrapped into [-180, 180).
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Pitch returns the rotation around the local right axis in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// Fov returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// MovementSpeed returns the base movement speed in world units per second.
	MovementSpeed() float32

	// SprintMultiplier returns the factor applied to MovementSpeed while sprinting.
	SprintMultiplier() float32

	// MouseSensitivity returns the degrees of rotation per unit of look delta.
	MouseSensitivity() float32

	// ZoomSensitivity returns the degrees of field of view per unit of scroll.
	ZoomSensitivity() float32

	// PitchLimit returns the absolute pitch bound in degrees. The bound is inclusive:
	// pitch stays within [-PitchLimit, +PitchLimit].
	PitchLimit() float32

	// FovBounds returns the inclusive field of view range in degrees.
	//
	// Returns:
	//   - min, max: field of view bounds
	FovBounds() (min, max float32)

	// ProcessMovement translates the camera along its right and front axes and the world up axis.
	// Each axis input is typically -1, 0 or +1; any finite value is accepted and scaled.
	// The displacement is proportional to dt, so total movement over a wall-clock interval
	// does not depend on how many frames it was split into.
	// Negative dt is treated as zero. Non-finite arguments leave the camera unchanged.
	//
	// Parameters:
	//   - rightAxis: lateral input (+1 = right)
	//   - forwardAxis: forward input (+1 = along front)
	//   - verticalAxis: vertical input along world up (+1 = up)
	//   - sprint: if true, the speed is multiplied by SprintMultiplier
	//   - dt: elapsed time in seconds
	ProcessMovement(rightAxis, forwardAxis, verticalAxis float32, sprint bool, dt float32)

	// ProcessRotation applies look deltas scaled by MouseSensitivity to yaw and pitch.
	// The pitch is clamped to ±PitchLimit and the basis is rebuilt from the new angles.
	// Screen-space Y must already be inverted by the caller (positive dy looks up).
	// Non-finite arguments leave the camera unchanged.
	//
	// Parameters:
	//   - dx: horizontal look delta (+ = turn right)
	//   - dy: vertical look delta (+ = look up)
	ProcessRotation(dx, dy float32)

	// ProcessScroll narrows (positive dy) or widens (negative dy) the field of view.
	// The result is clamped to FovBounds. Non-finite input leaves the camera unchanged.
	//
	// Parameters:
	//   - dy: scroll delta
	ProcessScroll(dy float32)

	// ViewMatrix returns the look-at matrix from Position toward Position+Front with Up as
	// the vertical reference. It is recomputed on every call.
	//
	// Returns:
	//   - mgl32.Mat4: the column-major view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the WebGPU perspective matrix built from Fov, Aspect, Near and Far.
	//
	// Returns:
	//   - mgl32.Mat4: the column-major projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns ProjectionMatrix * ViewMatrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjectionMatrix() mgl32.Mat4

	// SetAspect sets the aspect ratio used by ProjectionMatrix.
	// Non-positive or non-finite values are ignored.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera at the given position facing world -Z
// (yaw -90°, pitch 0°) with a 45° field of view.
//
// Parameters:
//   - position: initial world-space eye position
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(position mgl32.Vec3, options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		position: position,
		worldUp:  mgl32.Vec3{0, 1, 0},

		yaw:   defaultYaw,
		pitch: defaultPitch,
		fov:   defaultFov,

		aspect: 1.0,
		near:   0.1,
		far:    100.0,

		movementSpeed:    defaultMovementSpeed,
		sprintMultiplier: defaultSprintMultiplier,
		mouseSensitivity: defaultMouseSensitivity,
		zoomSensitivity:  defaultZoomSensitivity,
		pitchLimit:       defaultPitchLimit,
		minFov:           defaultMinFov,
		maxFov:           defaultMaxFov,
	}
	for _, option := range options {
		option(c)
	}
	c.sanitize()
	c.updateVectors()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) WorldUp() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldUp
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) MovementSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movementSpeed
}

func (c *cameraImpl) SprintMultiplier() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sprintMultiplier
}

func (c *cameraImpl) MouseSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mouseSensitivity
}

func (c *cameraImpl) ZoomSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoomSensitivity
}

func (c *cameraImpl) PitchLimit() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitchLimit
}

func (c *cameraImpl) FovBounds() (min, max float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minFov, c.maxFov
}

func (c *cameraImpl) ProcessMovement(rightAxis, forwardAxis, verticalAxis float32, sprint bool, dt float32) {
	if !common.IsFinite(rightAxis, forwardAxis, verticalAxis, dt) {
		return
	}
	if dt <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	velocity := c.movementSpeed * dt
	if sprint {
		velocity *= c.sprintMultiplier
	}

	direction := c.right.Mul(rightAxis).
		Add(c.front.Mul(forwardAxis)).
		Add(c.worldUp.Mul(verticalAxis))
	next := c.position.Add(direction.Mul(velocity))
	if !common.IsFinite(next[0], next[1], next[2]) {
		return
	}
	c.position = next
}

func (c *cameraImpl) ProcessRotation(dx, dy float32) {
	if !common.IsFinite(dx, dy) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// large finite deltas times the sensitivity can still overflow
	yawDelta := dx * c.mouseSensitivity
	pitchDelta := dy * c.mouseSensitivity
	if !common.IsFinite(yawDelta, pitchDelta) {
		return
	}

	c.yaw = common.WrapDegrees(c.yaw + yawDelta)
	c.pitch = common.Clamp(c.pitch+pitchDelta, -c.pitchLimit, c.pitchLimit)
	c.updateVectors()
}

func (c *cameraImpl) ProcessScroll(dy float32) {
	if !common.IsFinite(dy) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delta := dy * c.zoomSensitivity
	if !common.IsFinite(delta) {
		return
	}
	c.fov = common.Clamp(c.fov-delta, c.minFov, c.maxFov)
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix()
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix()
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix().Mul4(c.viewMatrix())
}

func (c *cameraImpl) SetAspect(aspect float32) {
	if !common.IsFinite(aspect) || aspect <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

// viewMatrix builds the look-at matrix. Caller must hold the mutex.
func (c *cameraImpl) viewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// projectionMatrix builds the perspective matrix. Caller must hold the mutex.
func (c *cameraImpl) projectionMatrix() mgl32.Mat4 {
	return common.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}

// updateVectors rebuilds front, right and up from yaw and pitch.
// The basis is recomputed wholesale so no rounding error accumulates across frames.
// Caller must hold the mutex.
func (c *cameraImpl) updateVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// sanitize forces option-supplied values back into their documented ranges.
// Called once from NewCamera after all options are applied.
func (c *cameraImpl) sanitize() {
	if !common.IsFinite(c.position[0], c.position[1], c.position[2]) {
		c.position = mgl32.Vec3{}
	}
	if !common.IsFinite(c.worldUp[0], c.worldUp[1], c.worldUp[2]) || c.worldUp.Len() == 0 {
		c.worldUp = mgl32.Vec3{0, 1, 0}
	}
	c.worldUp = c.worldUp.Normalize()

	if !common.IsFinite(c.pitchLimit) || c.pitchLimit <= 0 {
		c.pitchLimit = defaultPitchLimit
	}
	c.pitchLimit = math32.Min(c.pitchLimit, maxPitchLimit)

	if !common.IsFinite(c.minFov, c.maxFov) || c.minFov <= 0 || c.maxFov >= 180 || c.minFov > c.maxFov {
		c.minFov, c.maxFov = defaultMinFov, defaultMaxFov
	}

	if !common.IsFinite(c.yaw) {
		c.yaw = defaultYaw
	}
	c.yaw = common.WrapDegrees(c.yaw)
	if !common.IsFinite(c.pitch) {
		c.pitch = defaultPitch
	}
	c.pitch = common.Clamp(c.pitch, -c.pitchLimit, c.pitchLimit)
	if !common.IsFinite(c.fov) {
		c.fov = defaultFov
	}
	c.fov = common.Clamp(c.fov, c.minFov, c.maxFov)

	if !common.IsFinite(c.aspect) || c.aspect <= 0 {
		c.aspect = 1.0
	}
	if !common.IsFinite(c.near, c.far) || c.near <= 0 || c.far <= c.near {
		c.near, c.far = 0.1, 100.0
	}

	c.movementSpeed = finiteOr(c.movementSpeed, defaultMovementSpeed)
	c.sprintMultiplier = finiteOr(c.sprintMultiplier, defaultSprintMultiplier)
	c.mouseSensitivity = finiteOr(c.mouseSensitivity, defaultMouseSensitivity)
	c.zoomSensitivity = finiteOr(c.zoomSensitivity, defaultZoomSensitivity)
}

func finiteOr(v, fallback float32) float32 {
	if common.IsFinite(v) {
		return v
	}
	return fallback
}
