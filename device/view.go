// SPDX-License-Identifier: EPL-2.0

//go:build !headless || portaudio

package device

import "unsafe"

// float32View reinterprets a native-endian byte buffer as samples.
func float32View(b []byte) []float32 {
	if len(b) < 4 {
		return nil
	}

	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/4)
}
