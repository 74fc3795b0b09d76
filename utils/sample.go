// SPDX-License-Identifier: EPL-2.0

// Package utils holds the per-sample helpers shared by the decoders, the
// resampler and the mixer.
package utils

// Clamp hard-clips x to [-1, 1].
func Clamp(x float32) float32 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	default:
		return x
	}
}

// CubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples. x is the fractional position between y1 and y2 (0 <= x <= 1).
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}

// FullScale is the largest positive integer a signed PCM sample of bitDepth
// bits can hold. Depths outside 8..32 are treated as 16.
func FullScale(bitDepth int) int {
	if bitDepth < 8 || bitDepth > 32 {
		bitDepth = 16
	}

	return 1<<(bitDepth-1) - 1
}

// FloatToInt converts x to a signed integer sample of bitDepth bits. x is
// clamped first so the result never wraps.
func FloatToInt(x float32, bitDepth int) int {
	return int(float64(Clamp(x)) * float64(FullScale(bitDepth)))
}

// IntToFloat converts a signed integer sample of bitDepth bits to [-1, 1].
// The most negative value is clamped to -1.
func IntToFloat(v, bitDepth int) float32 {
	return Clamp(float32(float64(v) / float64(FullScale(bitDepth))))
}
