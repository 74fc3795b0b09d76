// SPDX-License-Identifier: EPL-2.0

package mixer

// Play starts clip on channel ch and returns ch. Whatever was playing on the
// channel is replaced together with its delay and reverb nodes: the new
// chain is built first and swapped in with one endpoint publication, so the
// render thread sees either the old chain or the new one. When building the
// new chain fails the channel keeps its previous state.
func (e *Engine) Play(ch, clipID int) (int, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	prev, err := e.slot(ch)
	if err != nil {
		return -1, err
	}

	clip, err := e.clips.Get(clipID)
	if err != nil {
		return -1, err
	}

	next, err := newChain(clip, e.cfg)
	if err != nil {
		e.logger.Error("building channel chain", "channel", ch, "clip", clipID, "error", err)
		return -1, err
	}

	if prev != nil {
		prev.release()
	}
	e.out.replace(prev, next)
	e.slots[ch] = next

	e.logger.Debug("channel playing", "channel", ch, "clip", clipID, "name", clip.name)

	return ch, nil
}

// Stop halts channel ch and rewinds it to the start. Delay and reverb tails
// keep ringing out.
func (e *Engine) Stop(ch int) error {
	return e.withChain(ch, func(c *chain) { c.voice.stop() })
}

// Pause halts channel ch without rewinding.
func (e *Engine) Pause(ch int) error {
	return e.withChain(ch, func(c *chain) { c.voice.pause() })
}

// Resume continues a paused channel. A stopped or finished channel starts
// again from the beginning.
func (e *Engine) Resume(ch int) error {
	return e.withChain(ch, func(c *chain) { c.voice.resume() })
}

// SetVolume sets the gain of channel ch on the 0..MaxVolume scale. Values
// outside the scale are clamped.
func (e *Engine) SetVolume(ch, volume int) error {
	return e.withChain(ch, func(c *chain) { c.voice.setVolume(volume) })
}

// SetPitch sets the playback rate of channel ch as a ratio of the original
// speed. Ratios <= 0 are ignored.
func (e *Engine) SetPitch(ch int, ratio float32) error {
	return e.withChain(ch, func(c *chain) { c.voice.setPitch(ratio) })
}

// SetLooping makes channel ch wrap to the start of its clip instead of stopping.
func (e *Engine) SetLooping(ch int, looping bool) error {
	return e.withChain(ch, func(c *chain) { c.voice.looping.Store(looping) })
}

// SetPosition places channel ch around the listener. angle is in degrees
// clockwise from straight ahead; distance runs from 0 (at the listener) to
// MaxDistance.
func (e *Engine) SetPosition(ch int, angle float32, distance int) error {
	left, right := spatialGains(polarOffset(angle, distance))

	return e.withChain(ch, func(c *chain) { c.voice.setSpatial(left, right) })
}

// State reports the playback state of channel ch.
func (e *Engine) State(ch int) (State, error) {
	state := Empty
	err := e.withChain(ch, func(c *chain) { state = c.voice.State() })

	return state, err
}

// Position reports how far channel ch has played, in seconds of clip time,
// as of the last rendered block.
func (e *Engine) Position(ch int) (float64, error) {
	var frames float64
	err := e.withChain(ch, func(c *chain) { frames = c.voice.position() })

	return frames / float64(e.cfg.SampleRate), err
}
