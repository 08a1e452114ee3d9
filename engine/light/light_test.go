package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()
	assert.Equal(t, mgl32.Vec3{8, 7, 2}, l.Position())
	assert.Equal(t, mgl32.Vec3{0.8, 0.8, 0.8}, l.Color())
	assert.Equal(t, float32(1), l.Intensity())
	assert.True(t, l.Enabled())
	assert.Equal(t, l.Color(), l.Radiance())
}

func TestNewLightOptions(t *testing.T) {
	l := NewLight(
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithColor(mgl32.Vec3{1, 0.5, 0}),
		WithIntensity(2),
	)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, l.Position())
	assert.Equal(t, mgl32.Vec3{2, 1, 0}, l.Radiance())

	assert.Zero(t, NewLight(WithIntensity(-3)).Intensity())
}

func TestRadianceDisabled(t *testing.T) {
	l := NewLight(WithEnabled(false))
	assert.Equal(t, mgl32.Vec3{}, l.Radiance())

	l.SetEnabled(true)
	assert.Equal(t, l.Color(), l.Radiance())
}

func TestSetters(t *testing.T) {
	l := NewLight()
	l.SetPosition(mgl32.Vec3{0, 10, 0})
	l.SetColor(mgl32.Vec3{1, 1, 1})
	l.SetIntensity(-1)

	assert.Equal(t, mgl32.Vec3{0, 10, 0}, l.Position())
	assert.Zero(t, l.Intensity())
	assert.Equal(t, mgl32.Vec3{}, l.Radiance())
}
