// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	// ErrInvalidLength is returned for a delay line of zero or negative size.
	ErrInvalidLength = errors.New("delay line length must be positive")

	// ErrInvalidSampleRate is returned when a node is built for a rate <= 0.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrInvalidChannels is returned when a node is built for fewer than one channel.
	ErrInvalidChannels = errors.New("channel count must be positive")

	// ErrNoFreeTap is returned by AddTap when all MaxTaps slots are active.
	ErrNoFreeTap = errors.New("all delay taps are active")
)
