// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"io"
	"log/slog"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/device"
)

// Config defines the stream an Engine renders and the backend it renders to.
type Config struct {
	SampleRate  int
	Channels    int // interleaved positions per frame
	BlockFrames int // frames per processing block

	Backend     string // device backend name, see device.Backends
	CapturePath string // output file of the wav backend
	Clocked     bool   // drive the null backend in real time

	Logger   *slog.Logger
	Decoders *audio.Registry
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 48 kHz stereo in blocks of 512 frames on the null backend.
func DefaultConfig() Config {
	return Config{
		SampleRate:  48000,
		Channels:    2,
		BlockFrames: 512,
		Backend:     device.DefaultBackend,
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSampleRate sets the engine sample rate. Clips are converted to it at load.
func WithSampleRate(sampleRate int) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithChannels sets the channel layout (1 for mono, 2 for stereo).
func WithChannels(channels int) Option {
	return func(cfg *Config) {
		if channels > 0 {
			cfg.Channels = channels
		}
	}
}

// WithBlockFrames sets how many frames the effect chains process at once.
func WithBlockFrames(frames int) Option {
	return func(cfg *Config) {
		if frames > 0 {
			cfg.BlockFrames = frames
		}
	}
}

// WithBackend selects the output backend by name.
func WithBackend(name string) Option {
	return func(cfg *Config) {
		if name != "" {
			cfg.Backend = name
		}
	}
}

// WithCapturePath selects the wav backend writing to path.
func WithCapturePath(path string) Option {
	return func(cfg *Config) {
		cfg.Backend = "wav"
		cfg.CapturePath = path
	}
}

// WithClock makes the null backend call Render in real time.
func WithClock(clocked bool) Option {
	return func(cfg *Config) {
		cfg.Clocked = clocked
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithDecoders sets the registry LoadClip picks decoders from.
func WithDecoders(registry *audio.Registry) Option {
	return func(cfg *Config) {
		cfg.Decoders = registry
	}
}

func (c Config) Validate() error {
	return c.device().Validate()
}

func (c Config) device() device.Config {
	return device.Config{
		SampleRate:  c.SampleRate,
		Channels:    c.Channels,
		BlockFrames: c.BlockFrames,
		Path:        c.CapturePath,
		Clocked:     c.Clocked,
		Logger:      c.Logger,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
