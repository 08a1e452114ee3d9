package game_object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewGameObjectDefaults(t *testing.T) {
	g := NewGameObject()
	assert.Zero(t, g.ID())
	assert.True(t, g.Enabled())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, g.Scale())
	assert.Equal(t, mgl32.Ident4(), g.ModelMatrix(10))
}

func TestModelMatrix(t *testing.T) {
	g := NewGameObject(
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithScale(mgl32.Vec3{2, 2, 2}),
		WithRotationSpeed(mgl32.Vec3{0, mgl32.DegToRad(90), 0}),
	)

	// at t=0 the matrix is translate * scale
	m := g.ModelMatrix(0)
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDeltaSlice(t, []float32{3, 2, 3, 1}, p[:], 1e-5)

	// after one second the object has turned 90° around Y: +X maps to -Z
	m = g.ModelMatrix(1)
	p = m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDeltaSlice(t, []float32{1, 2, 1, 1}, p[:], 1e-5)
}

func TestSetters(t *testing.T) {
	g := NewGameObject(WithID(7), WithEnabled(false))
	assert.Equal(t, uint64(7), g.ID())
	assert.False(t, g.Enabled())

	g.SetEnabled(true)
	g.SetID(9)
	g.SetPosition(mgl32.Vec3{4, 5, 6})
	g.SetRotationSpeed(mgl32.Vec3{1, 0, 0})

	assert.True(t, g.Enabled())
	assert.Equal(t, uint64(9), g.ID())
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, g.Position())
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, g.RotationSpeed())
}
