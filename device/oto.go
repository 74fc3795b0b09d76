// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package device

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

func init() {
	Register("oto", openOto)
}

// otoDevice feeds an oto player from the render function. oto allows a
// single context per process, so only one otoDevice can be open at a time.
type otoDevice struct {
	cfg    Config
	ctx    *oto.Context
	player *oto.Player

	render  atomic.Pointer[RenderFunc] // read lock-free by the player
	samples []float32

	mtx    sync.Mutex // setup and control operations only
	closed bool
}

func openOto(cfg Config) (Device, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   cfg.BlockPeriod(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	<-ready

	d := &otoDevice{
		cfg:     cfg,
		ctx:     ctx,
		samples: make([]float32, cfg.BlockFrames*cfg.Channels),
	}
	d.player = ctx.NewPlayer(d)

	return d, nil
}

// Read is called by the oto player for more PCM bytes.
func (d *otoDevice) Read(p []byte) (int, error) {
	out := float32View(p)
	frameLen := d.cfg.Channels
	out = out[:len(out)-len(out)%frameLen]
	// Bytes past the last whole frame are silence.
	clear(p[len(out)*4:])

	render := d.render.Load()
	if render == nil {
		clear(p)
		return len(p), nil
	}

	// Render in blocks so the engine sees its configured block size.
	for len(out) > 0 {
		n := min(len(out), len(d.samples))
		block := d.samples[:n]
		clear(block)
		(*render)(block)
		copy(out, block)
		out = out[n:]
	}

	return len(p), nil
}

func (d *otoDevice) Start(render RenderFunc) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	switch {
	case d.closed:
		return ErrClosed
	case d.player.IsPlaying():
		return ErrAlreadyStarted
	}

	d.render.Store(&render)
	d.player.Play()

	return nil
}

func (d *otoDevice) Stop() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return nil
	}

	d.player.Pause()
	d.render.Store(nil)

	return nil
}

func (d *otoDevice) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	d.render.Store(nil)

	if err := d.player.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
