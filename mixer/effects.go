// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"errors"
	"fmt"

	"github.com/ik5/audmix/dsp"
)

// AddTap adds an echo to the delay node of channel ch and returns the tap id.
// It returns -1 with ErrCapacityExceeded when all dsp.MaxTaps taps are
// active, and -1 with ErrOutOfRange when the channel has nothing playing.
func (e *Engine) AddTap(ch int, delayMs, gain float32) (int, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	c, err := e.slot(ch)
	if err != nil {
		return -1, err
	}
	if c == nil {
		return -1, fmt.Errorf("%w: channel %d has no active chain", ErrOutOfRange, ch)
	}

	id, err := c.delay.AddTap(delayMs, gain)
	if errors.Is(err, dsp.ErrNoFreeTap) {
		return -1, fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}

	return id, err
}

// RemoveTap deactivates tap of channel ch. Unknown taps are ignored.
func (e *Engine) RemoveTap(ch, tap int) error {
	return e.withChain(ch, func(c *chain) { c.delay.RemoveTap(tap) })
}

// SetTapGain changes the gain of tap on channel ch.
func (e *Engine) SetTapGain(ch, tap int, gain float32) error {
	return e.withChain(ch, func(c *chain) { c.delay.SetTapGain(tap, gain) })
}

// SetTapDelay moves tap on channel ch. Delays past dsp.MaxDelaySeconds are clamped.
func (e *Engine) SetTapDelay(ch, tap int, delayMs float32) error {
	return e.withChain(ch, func(c *chain) { c.delay.SetTapDelay(tap, delayMs) })
}

// EnableReverb switches the reverb of channel ch between processing and bypass.
func (e *Engine) EnableReverb(ch int, enabled bool) error {
	return e.withChain(ch, func(c *chain) { c.reverb.SetEnabled(enabled) })
}

// SetRoomSize changes the comb feedback of channel ch's reverb. The comb
// lengths were fixed when the chain was built and do not change.
func (e *Engine) SetRoomSize(ch int, size float32) error {
	return e.withChain(ch, func(c *chain) { c.reverb.SetRoomSize(size) })
}

// SetDamping sets the high-frequency damping of channel ch's reverb, clamped to [0, 1].
func (e *Engine) SetDamping(ch int, damping float32) error {
	return e.withChain(ch, func(c *chain) { c.reverb.SetDamping(damping) })
}

// SetWet sets the level of the reverberated signal of channel ch.
func (e *Engine) SetWet(ch int, wet float32) error {
	return e.withChain(ch, func(c *chain) { c.reverb.SetWet(wet) })
}

// SetDry sets the level of the unprocessed signal of channel ch's reverb.
func (e *Engine) SetDry(ch int, dry float32) error {
	return e.withChain(ch, func(c *chain) { c.reverb.SetDry(dry) })
}
