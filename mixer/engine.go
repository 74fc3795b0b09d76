// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/device"
)

// MaxChannels is the size of the channel table.
const MaxChannels = 1024

// Engine owns the clip store, the channel table and the output endpoint.
// Control methods are safe for concurrent use. Render is called by the
// device, or by the host when the null backend is unclocked, and must not be
// called from more than one goroutine at a time.
type Engine struct {
	cfg      Config
	logger   *slog.Logger
	decoders *audio.Registry

	clips *ClipStore
	out   *endpoint

	mtx   sync.Mutex // serializes control operations on the channel table
	slots [MaxChannels]*chain

	dev         device.Device
	initialized atomic.Bool
	initErr     error
	closed      bool
}

// New builds an engine from the default config and opts. The engine is not
// usable until Start succeeds.
func New(opts ...Option) (*Engine, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	decoders := cfg.Decoders
	if decoders == nil {
		decoders = audio.NewRegistry()
	}

	return &Engine{
		cfg:      cfg,
		logger:   cfg.logger(),
		decoders: decoders,
		clips:    NewClipStore(),
		out:      newEndpoint(),
	}, nil
}

func (e *Engine) SampleRate() int { return e.cfg.SampleRate }
func (e *Engine) Channels() int   { return e.cfg.Channels }

// Initialized reports whether Start succeeded and Close has not been called.
func (e *Engine) Initialized() bool { return e.initialized.Load() }

// Start opens the configured backend and starts rendering. A failure is
// logged once and kept: later calls return it again and every operation
// reports ErrNotInitialized.
func (e *Engine) Start() error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	switch {
	case e.initialized.Load():
		return nil
	case e.closed:
		return fmt.Errorf("%w: engine closed", ErrNotInitialized)
	case e.initErr != nil:
		return e.initErr
	}

	dev, err := device.Open(e.cfg.Backend, e.cfg.device())
	if err == nil {
		if err = dev.Start(e.Render); err != nil {
			err = errors.Join(err, dev.Close())
		}
	}
	if err != nil {
		e.initErr = fmt.Errorf("%w: %w", ErrNotInitialized, err)
		e.logger.Error("audio engine failed to start", "backend", e.cfg.Backend, "error", err)

		return e.initErr
	}

	e.dev = dev
	e.initialized.Store(true)
	e.logger.Info("audio engine started",
		"backend", e.cfg.Backend,
		"sampleRate", e.cfg.SampleRate,
		"channels", e.cfg.Channels,
		"blockFrames", e.cfg.BlockFrames,
	)

	return nil
}

// Close stops the device and releases every channel and clip. The engine
// cannot be started again.
func (e *Engine) Close() error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	e.initialized.Store(false)

	var err error
	if e.dev != nil {
		err = e.dev.Close()
		e.dev = nil
	}

	for _, c := range e.out.detachAll() {
		c.release()
	}
	clear(e.slots[:])
	e.clips.close()

	e.logger.Info("audio engine closed")

	return err
}

// Render fills out with the next interleaved frames of the mix. out is
// processed in blocks of the configured size; trailing samples that do not
// make a whole frame are zeroed.
func (e *Engine) Render(out []float32) {
	ch := e.cfg.Channels
	block := e.cfg.BlockFrames * ch

	whole := len(out) - len(out)%ch
	clear(out[whole:])

	for off := 0; off < whole; off += block {
		e.out.mix(out[off:min(off+block, whole)])
	}
}

// SetMasterVolume scales the whole mix, on the 0..MaxVolume scale.
func (e *Engine) SetMasterVolume(volume int) error {
	if !e.initialized.Load() {
		return ErrNotInitialized
	}

	e.out.gain.Store(float32(min(max(volume, 0), MaxVolume)) / MaxVolume)

	return nil
}

// slot returns the chain of channel ch, or nil when it is empty. The caller
// holds e.mtx.
func (e *Engine) slot(ch int) (*chain, error) {
	if !e.initialized.Load() {
		return nil, ErrNotInitialized
	}
	if ch < 0 || ch >= MaxChannels {
		return nil, fmt.Errorf("%w: channel %d", ErrOutOfRange, ch)
	}

	return e.slots[ch], nil
}

// withChain runs fn on the chain of channel ch. Empty channels are a no-op.
func (e *Engine) withChain(ch int, fn func(c *chain)) error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	c, err := e.slot(ch)
	if err != nil || c == nil {
		return err
	}

	fn(c)

	return nil
}
