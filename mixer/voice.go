// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"math"
	"sync/atomic"

	"github.com/ik5/audmix/dsp"
	"github.com/ik5/audmix/utils"
)

// MaxVolume is the top of the SetVolume scale.
const MaxVolume = 128

// State of a channel slot.
type State int32

const (
	Empty State = iota
	Playing
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// voice is a playback instance: a private cursor over a clip's PCM with its
// own gain, pitch and looping. The cursor belongs to the render thread; the
// control plane talks to it through atomics only.
type voice struct {
	clip     *Clip
	channels int

	pos    float64       // render thread only
	cursor atomic.Uint64 // pos published after each block, as float64 bits
	rewind atomic.Bool   // set by the control plane, consumed by render

	state   atomic.Int32
	volume  dsp.Param
	pitch   dsp.Param
	looping atomic.Bool
	left    dsp.Param
	right   dsp.Param
}

func newVoice(clip *Clip) *voice {
	v := &voice{clip: clip, channels: clip.channels}
	v.state.Store(int32(Playing))
	v.volume.Store(1)
	v.pitch.Store(1)
	v.left.Store(1)
	v.right.Store(1)

	return v
}

func (v *voice) State() State { return State(v.state.Load()) }

// stop halts the voice and rewinds it on the next block.
func (v *voice) stop() {
	v.state.Store(int32(Stopped))
	v.rewind.Store(true)
}

func (v *voice) pause() {
	v.state.CompareAndSwap(int32(Playing), int32(Paused))
}

// resume restarts a paused or stopped voice. A stopped voice was rewound, so
// it plays from the start.
func (v *voice) resume() {
	if !v.state.CompareAndSwap(int32(Paused), int32(Playing)) {
		v.state.CompareAndSwap(int32(Stopped), int32(Playing))
	}
}

func (v *voice) setVolume(volume int) {
	v.volume.Store(float32(min(max(volume, 0), MaxVolume)) / MaxVolume)
}

func (v *voice) setPitch(ratio float32) {
	if ratio > 0 && !math.IsInf(float64(ratio), 0) {
		v.pitch.Store(ratio)
	}
}

func (v *voice) setSpatial(left, right float32) {
	v.left.Store(left)
	v.right.Store(right)
}

// position in frames as of the last rendered block.
func (v *voice) position() float64 {
	return math.Float64frombits(v.cursor.Load())
}

// sample returns frame i of channel c, wrapping when looping and holding the
// edge frames otherwise.
func (v *voice) sample(i, c int, loop bool) float32 {
	n := v.clip.frames
	if loop {
		i %= n
		if i < 0 {
			i += n
		}
	} else {
		i = min(max(i, 0), n-1)
	}

	return v.clip.pcm[i*v.channels+c]
}

// render writes the next len(dst)/channels frames. It does not allocate.
// A voice that runs off the end of a non-looping clip stops and rewinds.
func (v *voice) render(dst []float32) {
	if v.rewind.Swap(false) {
		v.pos = 0
	}

	if State(v.state.Load()) == Playing {
		v.play(dst)
	} else {
		clear(dst)
	}

	v.cursor.Store(math.Float64bits(v.pos))
}

func (v *voice) play(dst []float32) {
	ch := v.channels
	frames := len(dst) / ch
	n := float64(v.clip.frames)

	volume := v.volume.Load()
	pitch := float64(v.pitch.Load())
	loop := v.looping.Load()
	left, right := v.left.Load()*volume, v.right.Load()*volume
	// Positions without a side only take the distance attenuation.
	center := max(left, right)

	for f := range frames {
		if v.pos >= n {
			if !loop || n == 0 {
				clear(dst[f*ch:])
				v.pos = 0
				v.state.CompareAndSwap(int32(Playing), int32(Stopped))
				return
			}
			v.pos = math.Mod(v.pos, n)
		}

		i := int(v.pos)
		x := float32(v.pos - float64(i))
		frame := dst[f*ch : f*ch+ch]

		for c := range frame {
			var s float32
			if x == 0 {
				s = v.clip.pcm[i*ch+c]
			} else {
				s = utils.CubicInterpolate(
					v.sample(i-1, c, loop), v.sample(i, c, loop),
					v.sample(i+1, c, loop), v.sample(i+2, c, loop), x)
			}

			switch {
			case ch == 1 || c > 1:
				s *= center
			case c == 0:
				s *= left
			default:
				s *= right
			}
			frame[c] = s
		}

		v.pos += pitch
	}
}
