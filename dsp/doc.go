// SPDX-License-Identifier: EPL-2.0

// Package dsp contains the signal-processing nodes of a channel's effect chain.
//
// Every node works on interleaved float32 blocks in the range [-1, 1]:
//
//	delay, _ := dsp.NewMultiTapDelay(48000, 2)
//	delay.AddTap(250, 0.5)
//
//	reverb, _ := dsp.NewReverb(48000, 2)
//	reverb.SetEnabled(true)
//
//	delay.Process(block, block)
//	reverb.Process(block, block)
//
// # Building Blocks
//
//   - DelayLine is a fixed-size circular buffer with a single cursor.
//   - MultiTapDelay mixes up to MaxTaps echoes of the dry signal.
//   - Reverb is a stereo Schroeder reverb: four damped comb filters in
//     parallel followed by two allpass filters in series.
//
// # Real-Time Use
//
// Process is meant to run inside an audio callback. It does not allocate,
// lock or block. Parameter setters may be called from any goroutine at the
// same time; values are published through atomics and picked up at the start
// of the next processed block.
//
// A node's delay memory is sized once, at construction. Nothing in this
// package grows a buffer while audio is running.
package dsp
