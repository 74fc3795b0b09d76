// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"errors"

	"github.com/ik5/audmix/device"
)

var (
	// ErrOutOfRange is returned for a channel or clip id outside the tables,
	// or for a clip id that was never loaded.
	ErrOutOfRange = errors.New("id out of range")

	// ErrCapacityExceeded is returned when the clip store is full or all
	// delay taps of a channel are active.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrResourceAllocation is returned when decoding or building a
	// channel's nodes fails.
	ErrResourceAllocation = errors.New("resource allocation failed")

	// ErrNotInitialized is returned by every operation before Start
	// succeeds, after a failed Start and after Close.
	ErrNotInitialized = errors.New("engine not initialized")

	// ErrInvalidConfig is returned by New for an unusable configuration.
	ErrInvalidConfig = device.ErrInvalidConfig
)
