// SPDX-License-Identifier: EPL-2.0

// Package mixer is a real-time mixing engine with a per-channel effect chain.
//
// An Engine owns three tables:
//
//   - the clip store: up to MaxClips decoded clips, converted to the engine
//     sample rate and channel layout when they are loaded
//   - the channel table: MaxChannels slots, each holding at most one chain
//     of voice -> multi-tap delay -> Schroeder reverb
//   - the endpoint: the shared output node that sums every chain
//
// # Usage
//
//	engine, err := mixer.New(
//	    mixer.WithSampleRate(48000),
//	    mixer.WithBackend("oto"),
//	    mixer.WithDecoders(registry),
//	)
//	if err := engine.Start(); err != nil {
//	    // errors.Is(err, mixer.ErrNotInitialized)
//	}
//	defer engine.Close()
//
//	kick, _ := engine.LoadClip("kick.wav")
//	ch, _ := engine.Play(0, kick)
//	tap, _ := engine.AddTap(ch, 250, 0.5)
//	_ = engine.EnableReverb(ch, true)
//
// # Concurrency
//
// Render runs on the device's audio thread and never locks or allocates.
// Control operations may be called from any goroutine. Node parameters are
// atomics and take effect from the next block. Play builds the new chain
// before it swaps it for the old one, so a half-built chain is never
// rendered, and two chains never feed the endpoint for the same channel.
//
// # Errors
//
// Operations report ErrOutOfRange, ErrCapacityExceeded,
// ErrResourceAllocation or ErrNotInitialized, wrapped with context. Use
// errors.Is to test for them. Parameter operations on an empty channel are
// no-ops.
package mixer
