// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// DefaultBackend is used when no backend name is given.
const DefaultBackend = "null"

// RenderFunc fills out with interleaved frames in [-1, 1].
type RenderFunc func(out []float32)

// Config describes the stream a backend opens.
type Config struct {
	SampleRate  int
	Channels    int
	BlockFrames int // frames per render call

	// Path is the destination file of the wav backend.
	Path string
	// Clocked makes the null backend call render in real time.
	Clocked bool

	Logger *slog.Logger
}

func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	case c.Channels <= 0:
		return fmt.Errorf("%w: %d channels", ErrInvalidConfig, c.Channels)
	case c.BlockFrames <= 0:
		return fmt.Errorf("%w: block of %d frames", ErrInvalidConfig, c.BlockFrames)
	}

	return nil
}

// BlockPeriod is the wall-clock length of one block.
func (c Config) BlockPeriod() time.Duration {
	return time.Duration(c.BlockFrames) * time.Second / time.Duration(c.SampleRate)
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Device is an audio output that pulls frames from a RenderFunc.
type Device interface {
	// Start begins calling render from the backend's audio thread.
	Start(render RenderFunc) error
	// Stop halts the callbacks. The device can be started again.
	Stop() error
	// Close stops the device and releases it. Further calls to Start fail.
	Close() error
}

// Factory opens a backend for cfg. cfg has already been validated.
type Factory func(cfg Config) (Device, error)

var (
	backendsMtx sync.RWMutex
	backends    = make(map[string]Factory)
)

// Register makes a backend available to Open. A later registration under the
// same name replaces the earlier one.
func Register(name string, f Factory) {
	backendsMtx.Lock()
	defer backendsMtx.Unlock()

	backends[name] = f
}

// Open validates cfg and opens the named backend. An empty name selects
// DefaultBackend.
func Open(name string, cfg Config) (Device, error) {
	if name == "" {
		name = DefaultBackend
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	backendsMtx.RLock()
	f, ok := backends[name]
	backendsMtx.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}

	dev, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening %s backend: %w", name, err)
	}

	cfg.logger().Debug("audio device opened",
		"backend", name,
		"sampleRate", cfg.SampleRate,
		"channels", cfg.Channels,
		"blockFrames", cfg.BlockFrames,
	)

	return dev, nil
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	backendsMtx.RLock()
	defer backendsMtx.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
