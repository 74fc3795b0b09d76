// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package device

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gen2brain/malgo"
)

func init() {
	Register("malgo", openMalgo)
}

// malgoDevice renders into a miniaudio playback device.
type malgoDevice struct {
	cfg Config
	ctx *malgo.AllocatedContext
	dev *malgo.Device

	render atomic.Pointer[RenderFunc]

	mtx     sync.Mutex
	started bool
	closed  bool
}

func openMalgo(cfg Config) (Device, error) {
	logger := cfg.logger()

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		logger.Debug("miniaudio", "message", message)
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	d := &malgoDevice{cfg: cfg, ctx: ctx}

	devCfg := malgo.DefaultDeviceConfig(malgo.Playback)
	devCfg.Playback.Format = malgo.FormatF32
	devCfg.Playback.Channels = uint32(cfg.Channels)
	devCfg.SampleRate = uint32(cfg.SampleRate)
	devCfg.PeriodSizeInFrames = uint32(cfg.BlockFrames)

	dev, err := malgo.InitDevice(ctx.Context, devCfg, malgo.DeviceCallbacks{
		Data: d.onData,
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w", err), d.releaseContext())
	}
	d.dev = dev

	return d, nil
}

func (d *malgoDevice) onData(out, _ []byte, frames uint32) {
	samples := float32View(out)
	samples = samples[:min(len(samples), int(frames)*d.cfg.Channels)]

	render := d.render.Load()
	clear(samples)
	if render != nil {
		(*render)(samples)
	}
}

func (d *malgoDevice) releaseContext() error {
	err := d.ctx.Uninit()
	d.ctx.Free()

	return err
}

func (d *malgoDevice) Start(render RenderFunc) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	switch {
	case d.closed:
		return ErrClosed
	case d.started:
		return ErrAlreadyStarted
	}

	d.render.Store(&render)
	if err := d.dev.Start(); err != nil {
		d.render.Store(nil)
		return fmt.Errorf("%w", err)
	}
	d.started = true

	return nil
}

func (d *malgoDevice) Stop() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.stopLocked()
}

func (d *malgoDevice) stopLocked() error {
	if !d.started {
		return nil
	}
	d.started = false

	err := d.dev.Stop()
	d.render.Store(nil)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (d *malgoDevice) Close() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	stopErr := d.stopLocked()
	d.dev.Uninit()

	return errors.Join(stopErr, d.releaseContext())
}
