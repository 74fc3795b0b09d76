// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{0.5, 0.5},
		{-0.75, -0.75},
		{1, 1},
		{1.0001, 1},
		{-3, -1},
		{float32(math.Inf(1)), 1},
		{float32(math.Inf(-1)), -1},
	}

	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		tolerance      float32
	}{
		{"start returns y1", 0, 1, 2, 3, 0, 1, 1e-6},
		{"end returns y2", 0, 1, 2, 3, 1, 2, 1e-6},
		{"linear data stays linear", 1, 2, 3, 4, 0.25, 2.25, 1e-6},
		{"constant data stays constant", 0.4, 0.4, 0.4, 0.4, 0.7, 0.4, 1e-6},
		{"symmetric crossing", -1, -0.5, 0.5, 1, 0.5, 0, 1e-6},
		{"peak between samples", 0.5, 0.9, 0.7, 0.3, 0.3, 0.85, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if diff := math.Abs(float64(got - tt.want)); diff > float64(tt.tolerance) {
				t.Errorf("CubicInterpolate() = %v, want %v (diff %v)", got, tt.want, diff)
			}
		})
	}
}

func TestFloatToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x        float32
		bitDepth int
		want     int
	}{
		{"16-bit full scale", 1, 16, 32767},
		{"16-bit negative full scale", -1, 16, -32767},
		{"16-bit clips", 2, 16, 32767},
		{"16-bit half", 0.5, 16, 16383},
		{"8-bit full scale", 1, 8, 127},
		{"24-bit full scale", 1, 24, 8388607},
		{"32-bit negative clips", -5, 32, -2147483647},
		{"unknown depth behaves as 16", 1, 12345, 32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FloatToInt(tt.x, tt.bitDepth); got != tt.want {
				t.Errorf("FloatToInt(%v, %d) = %d, want %d", tt.x, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestIntToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v, bitDepth int
		want        float32
	}{
		{0, 16, 0},
		{32767, 16, 1},
		{-32768, 16, -1},
		{127, 8, 1},
		{8388607, 24, 1},
	}

	for _, tt := range tests {
		if got := IntToFloat(tt.v, tt.bitDepth); got != tt.want {
			t.Errorf("IntToFloat(%d, %d) = %v, want %v", tt.v, tt.bitDepth, got, tt.want)
		}
	}
}

func TestFloatToIntRoundTrip(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{16, 24} {
		step := 1 / float64(FullScale(depth))
		for x := float32(-1); x <= 1; x += 0.125 {
			got := IntToFloat(FloatToInt(x, depth), depth)
			if math.Abs(float64(got-x)) > step {
				t.Errorf("depth %d: round trip of %v = %v", depth, x, got)
			}
		}
	}
}

func TestSampleHelpers_ZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(1000, func() {
		_ = Clamp(1.5)
		_ = CubicInterpolate(0.1, 0.2, 0.3, 0.4, 0.5)
		_ = FloatToInt(0.5, 16)
		_ = IntToFloat(1000, 16)
	})

	if allocs > 0 {
		t.Errorf("sample helpers allocated %v times, want 0", allocs)
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	samples := []float32{0.1, 0.5, 0.9, 0.7, 0.3, -0.2, -0.6, -0.4}
	var sink float32

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		j := i % (len(samples) - 3)
		sink += CubicInterpolate(samples[j], samples[j+1], samples[j+2], samples[j+3], 0.37)
	}

	_ = sink
}

func BenchmarkFloatToInt(b *testing.B) {
	var sink int

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		sink += FloatToInt(float32(i%200-100)/90, 16)
	}

	_ = sink
}
