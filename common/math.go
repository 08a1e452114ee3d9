package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

// IsFinite reports whether every value is neither NaN nor ±Inf.
//
// Parameters:
//   - values: the values to check
//
// Returns:
//   - bool: true if all values are finite
func IsFinite(values ...float32) bool {
	for _, v := range values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// WrapDegrees maps an angle in degrees onto the half-open range [-180, 180).
// The result is trigonometrically identical to the input.
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float32: the equivalent angle in [-180, 180), or 0 for a non-finite input
func WrapDegrees(deg float32) float32 {
	if !IsFinite(deg) {
		return 0
	}
	w := math32.Mod(deg+180, 360)
	if w < 0 {
		w += 360
	}
	if w >= 360 {
		w = 0
	}
	return w - 180
}

// Perspective creates a right-handed perspective projection matrix for WebGPU clip space,
// where depth maps to [0, 1] rather than OpenGL's [-1, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / math32.Tan(fovY/2.0)
	var m mgl32.Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1.0
	m[14] = (near * far) / (near - far)
	return m
}
