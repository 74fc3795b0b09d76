// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/ik5/audmix/dsp"
	"github.com/ik5/audmix/utils"
)

// endpoint is the shared output node every channel chain feeds. The render
// thread reads an immutable snapshot of the inputs; writers build a new
// slice under mtx and publish it in one store.
type endpoint struct {
	mtx    sync.Mutex
	inputs atomic.Pointer[[]*chain]
	gain   dsp.Param
}

func newEndpoint() *endpoint {
	e := &endpoint{}
	e.inputs.Store(&[]*chain{})
	e.gain.Store(1)

	return e
}

// replace removes old and adds next in a single publication. Either may be nil.
func (e *endpoint) replace(old, next *chain) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	cur := *e.inputs.Load()
	inputs := make([]*chain, 0, len(cur)+1)
	for _, c := range cur {
		if c != old {
			inputs = append(inputs, c)
		}
	}
	if next != nil {
		inputs = append(inputs, next)
	}

	e.inputs.Store(&inputs)
}

// detachAll empties the input list and returns what was attached.
func (e *endpoint) detachAll() []*chain {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return *e.inputs.Swap(&[]*chain{})
}

func (e *endpoint) attached(c *chain) bool {
	return slices.Contains(*e.inputs.Load(), c)
}

func (e *endpoint) len() int {
	return len(*e.inputs.Load())
}

// mix sums every input into out, applies the master gain and hard-clips the
// result. len(out) must not exceed the block size of the chains.
func (e *endpoint) mix(out []float32) {
	clear(out)

	for _, c := range *e.inputs.Load() {
		c.mixInto(out)
	}

	gain := e.gain.Load()
	for i, v := range out {
		out[i] = utils.Clamp(v * gain)
	}
}
