// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"

	"github.com/ik5/audmix/dsp"
)

// chain is one channel's signal path: voice -> delay -> reverb -> endpoint.
// A chain is fully built before the endpoint can see it and is never
// modified structurally afterwards.
type chain struct {
	voice   *voice
	delay   *dsp.MultiTapDelay
	reverb  *dsp.Reverb
	scratch []float32
}

func newChain(clip *Clip, cfg Config) (*chain, error) {
	delay, err := dsp.NewMultiTapDelay(cfg.SampleRate, cfg.Channels)
	if err != nil {
		return nil, fmt.Errorf("%w: delay node: %w", ErrResourceAllocation, err)
	}

	reverb, err := dsp.NewReverb(cfg.SampleRate, cfg.Channels)
	if err != nil {
		return nil, fmt.Errorf("%w: reverb node: %w", ErrResourceAllocation, err)
	}

	return &chain{
		voice:   newVoice(clip),
		delay:   delay,
		reverb:  reverb,
		scratch: make([]float32, cfg.BlockFrames*cfg.Channels),
	}, nil
}

// mixInto renders one block through the chain and adds it to out.
// len(out) must not exceed the block size.
func (c *chain) mixInto(out []float32) {
	block := c.scratch[:len(out)]

	c.voice.render(block)
	c.delay.Process(block, block)
	c.reverb.Process(block, block)

	for i, v := range block {
		out[i] += v
	}
}

// release stops the voice of a chain that has been detached. Node buffers
// are left to the garbage collector, since a render already in flight may
// still be reading them.
func (c *chain) release() {
	c.voice.stop()
}
