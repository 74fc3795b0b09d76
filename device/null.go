// SPDX-License-Identifier: EPL-2.0

package device

import "sync"

func init() {
	Register("null", openNull)
}

// nullDevice discards audio. Unclocked it never calls render, leaving the
// host to pull blocks itself.
type nullDevice struct {
	cfg Config

	mtx     sync.Mutex
	pump    *pump
	started bool
	closed  bool
}

func openNull(cfg Config) (Device, error) {
	return &nullDevice{cfg: cfg}, nil
}

func (d *nullDevice) Start(render RenderFunc) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	switch {
	case d.closed:
		return ErrClosed
	case d.started:
		return ErrAlreadyStarted
	}

	if d.cfg.Clocked {
		block := make([]float32, d.cfg.BlockFrames*d.cfg.Channels)
		d.pump = startPump(d.cfg.BlockPeriod(), block, render, nil)
	}
	d.started = true

	return nil
}

func (d *nullDevice) Stop() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.stopLocked()
}

func (d *nullDevice) stopLocked() error {
	if !d.started {
		return nil
	}
	d.started = false

	if d.pump == nil {
		return nil
	}

	err := d.pump.stop()
	d.pump = nil

	return err
}

func (d *nullDevice) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	return d.stopLocked()
}
