// SPDX-License-Identifier: EPL-2.0

// Package audmix is a real-time audio mixing engine for Go applications.
//
// Clips are decoded once, converted to the engine's sample rate and channel
// layout and kept in memory. Each of the engine's channels plays one clip
// through its own chain of effect nodes into a shared output endpoint:
//
//	voice -> multi-tap delay -> Schroeder reverb -> endpoint -> device
//
// The render path never locks or allocates. Control operations build or
// update nodes off to the side and publish them atomically.
//
// # Supported Formats
//
// DefaultRegistry maps file extensions to decoders:
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16/24/32-bit) via formats/aiff
//
// # Quick Start
//
//	engine, _ := audmix.NewEngine(mixer.WithBackend("oto"))
//	defer engine.Close()
//	_ = engine.Start()
//
//	clip, _ := engine.LoadClip("kick.wav")
//	ch, _ := engine.Play(0, clip)
//	_, _ = engine.AddTap(ch, 250, 0.4)
//	_ = engine.EnableReverb(ch, true)
//
// # Backends
//
// The device package registers the output backends by name. "null" is
// always available and renders only when the host calls Engine.Render;
// "wav" captures the mix to a file in real time. "oto" and "malgo" are
// excluded by the headless build tag, and "portaudio" needs the portaudio
// build tag and the system library.
//
// See the individual subpackages for more detailed documentation.
package audmix
