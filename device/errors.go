// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrUnknownBackend = errors.New("unknown audio backend")
	ErrInvalidConfig  = errors.New("invalid device configuration")
	ErrAlreadyStarted = errors.New("device already started")
	ErrClosed         = errors.New("device is closed")
)
