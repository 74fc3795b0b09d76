// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/ik5/audmix/formats/wav"
)

func init() {
	Register("wav", openCapture)
}

// captureDevice renders in real time into a 16-bit WAV file.
type captureDevice struct {
	cfg Config

	mtx     sync.Mutex
	file    *os.File
	writer  *wav.Writer
	pump    *pump
	started bool
	closed  bool
}

func openCapture(cfg Config) (Device, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: wav backend needs a path", ErrInvalidConfig)
	}

	f, err := os.Create(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	w, err := wav.NewWriter(f, cfg.SampleRate, cfg.Channels)
	if err != nil {
		return nil, errors.Join(err, f.Close())
	}

	return &captureDevice{cfg: cfg, file: f, writer: w}, nil
}

func (d *captureDevice) Start(render RenderFunc) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	switch {
	case d.closed:
		return ErrClosed
	case d.started:
		return ErrAlreadyStarted
	}

	block := make([]float32, d.cfg.BlockFrames*d.cfg.Channels)
	d.pump = startPump(d.cfg.BlockPeriod(), block, render, d.writer.WriteFloats)
	d.started = true

	return nil
}

func (d *captureDevice) Stop() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.stopLocked()
}

func (d *captureDevice) stopLocked() error {
	if !d.started {
		return nil
	}
	d.started = false

	err := d.pump.stop()
	d.pump = nil

	if err != nil {
		d.cfg.logger().Error("wav capture stopped", "path", d.cfg.Path, "error", err)
	}

	return err
}

// Close stops the capture, finalizes the WAV headers and closes the file.
func (d *captureDevice) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	stopErr := d.stopLocked()
	writeErr := d.writer.Close()
	closeErr := d.file.Close()

	d.cfg.logger().Debug("wav capture closed",
		"path", d.cfg.Path,
		"frames", d.writer.Frames(),
	)

	return errors.Join(stopErr, writeErr, closeErr)
}
