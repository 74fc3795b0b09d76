// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files through github.com/go-audio/wav.
//
// The Decoder accepts integer PCM at 16, 24 or 32 bits, any channel count
// and any sample rate, and yields float32 samples in [-1.0, 1.0]:
//
//	file, _ := os.Open("kick.wav")
//	source, err := wav.Decoder{}.Decode(file)
//
// Writer streams float32 frames into a 16-bit PCM file. The RIFF sizes are
// patched when the Writer is closed, so the destination must be seekable:
//
//	w, err := wav.NewWriter(file, 48000, 2)
//	err = w.WriteFloats(block)
//	err = w.Close()
//
// Encode writes a whole buffer in one call.
package wav
