// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/audiotest"
)

// Example_resampler demonstrates how to use the Resampler to change sample rates.
func Example_resampler() {
	// Create a test audio source at 44.1kHz
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0) // 1 second, 440Hz tone

	// Create a resampler to convert to 16kHz
	resampler := audio.NewResampler(source, 16000)

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Channels: %d\n", resampler.Channels())

	buf := make([]float32, 4096)
	totalSamples := 0

	for {
		n, err := resampler.ReadSamples(buf)
		totalSamples += n

		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Printf("Total samples read: %d\n", totalSamples)
	// Output:
	// Output sample rate: 16000 Hz
	// Channels: 1
	// Total samples read: 16000
}

// Example_channelMixer demonstrates widening mono to stereo.
func Example_channelMixer() {
	source := audiotest.NewConstantSource(16000, 1, 4, 0.5)

	stereo, err := audio.NewChannelMixer(source, 2)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	buf := make([]float32, 8)
	n, _ := stereo.ReadSamples(buf)

	fmt.Printf("Channels: %d\n", stereo.Channels())
	fmt.Println(buf[:n])
	// Output:
	// Channels: 2
	// [0.5 0.5 0.5 0.5 0.5 0.5 0.5 0.5]
}

// Example_readAll demonstrates preparing a whole stream for playback.
func Example_readAll() {
	source := audiotest.NewSilentSource(22050, 1, 22050) // 1 second mono

	pcm, err := audio.ReadAll(source, 44100, 2, 0)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Frames: %d\n", len(pcm)/2)
	// Output:
	// Frames: 44100
}
