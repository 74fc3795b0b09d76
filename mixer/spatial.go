// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxDistance is the far end of the SetPosition distance scale.
const MaxDistance = 255

// distanceFloor is the gain left at MaxDistance.
const distanceFloor = 0.1

// polarOffset maps a listener-relative angle (0 = ahead, 90 = right,
// 180 = behind, 270 = left) and a distance in 0..MaxDistance to a unit-scale
// offset. Forward is -Z and right is +X.
func polarOffset(angleDeg float32, distance int) mgl32.Vec3 {
	d := float32(min(max(distance, 0), MaxDistance)) / MaxDistance
	rad := float64(mgl32.DegToRad(angleDeg))

	return mgl32.Vec3{
		d * float32(math.Sin(rad)),
		0,
		-d * float32(math.Cos(rad)),
	}
}

// spatialGains derives the left and right gains for a source at offset.
// The pan comes from the direction and the attenuation from the distance.
func spatialGains(offset mgl32.Vec3) (left, right float32) {
	dist := offset.Len()
	if dist == 0 {
		return 1, 1
	}

	pan := mgl32.Clamp(offset.X()/dist, -1, 1)
	atten := 1 - (1-distanceFloor)*mgl32.Clamp(dist, 0, 1)

	return min(1, 1-pan) * atten, min(1, 1+pan) * atten
}
