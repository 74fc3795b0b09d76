// SPDX-License-Identifier: EPL-2.0

package dsp

// Node is one stage of an effect chain.
type Node interface {
	// Channels is the number of interleaved positions per frame.
	Channels() int
	// Process reads frames from src and writes the same number of frames to dst.
	// dst and src may be the same slice. Only whole frames common to both are processed.
	Process(dst, src []float32)
}

// blockFrames returns how many whole frames Process can handle.
func blockFrames(dst, src []float32, channels int) int {
	return min(len(dst), len(src)) / channels
}
