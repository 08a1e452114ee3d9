package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	mu      *sync.Mutex
	id      uint64
	enabled atomic.Bool

	position      mgl32.Vec3
	scale         mgl32.Vec3
	rotation      mgl32.Vec3 // radians, applied Y then X then Z
	rotationSpeed mgl32.Vec3 // radians per second, same axis order
}

// GameObject is one drawable instance of the viewer's mesh.
// Its model matrix is derived from a fixed position and scale plus a rotation that
// advances linearly with scene time.
type GameObject interface {
	// ID returns the object's unique identifier (0 until added to a Scene).
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Position returns the world-space position.
	Position() mgl32.Vec3

	// Scale returns the per-axis scale.
	Scale() mgl32.Vec3

	// Rotation returns the rotation at scene time zero in radians (x, y, z).
	Rotation() mgl32.Vec3

	// RotationSpeed returns the angular velocity in radians per second (x, y, z).
	RotationSpeed() mgl32.Vec3

	// ModelMatrix builds translate * rotY * rotX * rotZ * scale for the given scene time.
	//
	// Parameters:
	//   - elapsed: seconds since the scene started
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix(elapsed float32) mgl32.Mat4

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is drawn.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition moves the object.
	//
	// Parameters:
	//   - p: the new world-space position
	SetPosition(p mgl32.Vec3)

	// SetRotationSpeed changes the angular velocity.
	//
	// Parameters:
	//   - speed: radians per second around x, y and z
	SetRotationSpeed(speed mgl32.Vec3)
}

var _ GameObject = &gameObject{}

// NewGameObject creates an enabled object at the origin with unit scale and no rotation.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the new object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	g := &gameObject{
		mu:    &sync.Mutex{},
		scale: mgl32.Vec3{1, 1, 1},
	}
	g.enabled.Store(true)
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Position() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

func (g *gameObject) Scale() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale
}

func (g *gameObject) Rotation() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation
}

func (g *gameObject) RotationSpeed() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotationSpeed
}

func (g *gameObject) ModelMatrix(elapsed float32) mgl32.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()

	angle := g.rotation.Add(g.rotationSpeed.Mul(elapsed))
	return mgl32.Translate3D(g.position[0], g.position[1], g.position[2]).
		Mul4(mgl32.HomogRotate3DY(angle[1])).
		Mul4(mgl32.HomogRotate3DX(angle[0])).
		Mul4(mgl32.HomogRotate3DZ(angle[2])).
		Mul4(mgl32.Scale3D(g.scale[0], g.scale[1], g.scale[2]))
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(p mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = p
}

func (g *gameObject) SetRotationSpeed(speed mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotationSpeed = speed
}
