// SPDX-License-Identifier: EPL-2.0

package audmix_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/mixer"
)

// Example_loadAndPlay decodes a WAV file into the engine and plays it with
// an echo on the null backend.
func Example_loadAndPlay() {
	dir, err := os.MkdirTemp("", "audmix")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	// Half a second of mono audio at 16 kHz.
	path := filepath.Join(dir, "clip.wav")
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := wav.Encode(f, 16000, 1, make([]float32, 8000)); err != nil {
		log.Fatal(err)
	}
	f.Close()

	engine, err := audmix.NewEngine(mixer.WithSampleRate(48000))
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Close()

	if err := engine.Start(); err != nil {
		log.Fatal(err)
	}

	clip, err := engine.LoadClip(path)
	if err != nil {
		log.Fatal(err)
	}
	ch, _ := engine.Play(0, clip)
	tap, _ := engine.AddTap(ch, 120, 0.5)

	duration, _ := engine.Duration(clip)
	fmt.Printf("clip %d: %.1fs, tap %d\n", clip, duration, tap)
	// Output: clip 0: 0.5s, tap 0
}

// Example_decodeFile converts a file to the layout of a 48 kHz stereo engine.
func Example_decodeFile() {
	dir, err := os.MkdirTemp("", "audmix")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "mono.wav")
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := wav.Encode(f, 24000, 1, make([]float32, 2400)); err != nil {
		log.Fatal(err)
	}
	f.Close()

	pcm, err := audmix.DecodeFile(path, 48000, 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(pcm)/2, "frames")
	// Output: 4800 frames
}
