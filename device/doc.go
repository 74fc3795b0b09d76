// SPDX-License-Identifier: EPL-2.0

// Package device drives a render callback from an audio output.
//
// A Device pulls fixed-size blocks of interleaved float32 frames from a
// RenderFunc. Backends register themselves by name and are chosen at run
// time with Open:
//
//	dev, err := device.Open("null", device.Config{
//	    SampleRate:  48000,
//	    Channels:    2,
//	    BlockFrames: 512,
//	})
//	err = dev.Start(engine.Render)
//	defer dev.Close()
//
// # Backends
//
//   - null: silent. When Config.Clocked is set it calls the render function
//     in real time and discards the output; otherwise the host calls Render
//     itself.
//   - wav: captures the rendered output to a 16-bit WAV file at
//     Config.Path, clocked in real time.
//   - oto: github.com/ebitengine/oto/v3. Not built with the headless tag.
//   - malgo: github.com/gen2brain/malgo (miniaudio). Not built with the
//     headless tag.
//   - portaudio: github.com/gordonklaus/portaudio. Only built with the
//     portaudio tag, since it links against the system library.
//
// The render function runs on the backend's audio thread. It must not block.
package device
