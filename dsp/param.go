// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"sync/atomic"
)

// Param is a float32 shared between the control plane and the audio callback.
// The zero value holds 0.
type Param struct {
	bits atomic.Uint32
}

// Load returns the current value.
func (p *Param) Load() float32 {
	return math.Float32frombits(p.bits.Load())
}

// Store publishes v. NaN is stored as 0 so it can never reach a feedback path.
func (p *Param) Store(v float32) {
	if math.IsNaN(float64(v)) {
		v = 0
	}
	p.bits.Store(math.Float32bits(v))
}
