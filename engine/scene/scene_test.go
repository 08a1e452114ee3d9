package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneRegistry(t *testing.T) {
	s := NewScene(WithName("test"))
	assert.Equal(t, "test", s.Name())

	a := s.Add(game_object.NewGameObject())
	b := s.Add(game_object.NewGameObject(game_object.WithID(10)))
	c := s.Add(game_object.NewGameObject())

	assert.Equal(t, uint64(1), a)
	assert.Equal(t, uint64(10), b)
	assert.Equal(t, uint64(11), c, "assigned IDs never collide with explicit ones")
	assert.Equal(t, 3, s.Count())

	obj, ok := s.Get(b)
	require.True(t, ok)
	assert.Equal(t, b, obj.ID())

	assert.True(t, s.Remove(b))
	assert.False(t, s.Remove(b))
	_, ok = s.Get(b)
	assert.False(t, ok)

	objects := s.Objects()
	require.Len(t, objects, 2)
	assert.Equal(t, a, objects[0].ID())
	assert.Equal(t, c, objects[1].ID())
}

func TestInstanceMatricesSkipDisabled(t *testing.T) {
	s := NewScene(WithObjects(
		game_object.NewGameObject(game_object.WithPosition(mgl32.Vec3{1, 0, 0})),
		game_object.NewGameObject(game_object.WithEnabled(false)),
		game_object.NewGameObject(game_object.WithPosition(mgl32.Vec3{0, 0, -5})),
	))

	m := s.InstanceMatrices(0)
	require.Len(t, m, 2)
	assert.Equal(t, mgl32.Translate3D(1, 0, 0), m[0])
	assert.Equal(t, mgl32.Translate3D(0, 0, -5), m[1])
}

func TestDemoCubes(t *testing.T) {
	cubes := DemoCubes()
	require.Len(t, cubes, 7)
	assert.Equal(t, mgl32.Vec3{0, 0, -2}, cubes[0].Position())
	assert.Equal(t, mgl32.Vec3{-5, 2, -8}, cubes[6].Position())

	// cube 0 spins only around X (cos 0 = 1, sin 0 = 0)
	assert.InDelta(t, 1, cubes[0].RotationSpeed()[0], 1e-6)
	assert.InDelta(t, 0, cubes[0].RotationSpeed()[1], 1e-6)

	s := NewScene(WithObjects(cubes...))
	assert.Len(t, s.InstanceMatrices(2.5), 7)
}
