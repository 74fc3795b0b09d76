// SPDX-License-Identifier: EPL-2.0

//go:build portaudio

package device

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	pa "github.com/gordonklaus/portaudio"
)

func init() {
	Register("portaudio", openPortaudio)
}

// portaudioDevice renders into the default PortAudio output stream.
type portaudioDevice struct {
	cfg    Config
	stream *pa.Stream

	render atomic.Pointer[RenderFunc]

	mtx     sync.Mutex
	started bool
	closed  bool
}

func openPortaudio(cfg Config) (Device, error) {
	if err := pa.Initialize(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	d := &portaudioDevice{cfg: cfg}

	stream, err := pa.OpenDefaultStream(0, cfg.Channels, float64(cfg.SampleRate), cfg.BlockFrames, d.process)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w", err), pa.Terminate())
	}
	d.stream = stream

	if dev, err := pa.DefaultOutputDevice(); err == nil {
		cfg.logger().Debug("portaudio output", "device", dev.Name, "version", pa.VersionText())
	}

	return d, nil
}

func (d *portaudioDevice) process(out []float32) {
	clear(out)
	if render := d.render.Load(); render != nil {
		(*render)(out)
	}
}

func (d *portaudioDevice) Start(render RenderFunc) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	switch {
	case d.closed:
		return ErrClosed
	case d.started:
		return ErrAlreadyStarted
	}

	d.render.Store(&render)
	if err := d.stream.Start(); err != nil {
		d.render.Store(nil)
		return fmt.Errorf("%w", err)
	}
	d.started = true

	return nil
}

func (d *portaudioDevice) Stop() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.stopLocked()
}

func (d *portaudioDevice) stopLocked() error {
	if !d.started {
		return nil
	}
	d.started = false

	err := d.stream.Stop()
	d.render.Store(nil)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (d *portaudioDevice) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	return errors.Join(d.stopLocked(), d.stream.Close(), pa.Terminate())
}
