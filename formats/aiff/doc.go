// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files through
// github.com/go-audio/aiff.
//
// Integer PCM at 16, 24 or 32 bits is supported for any channel count and
// sample rate:
//
//	file, _ := os.Open("pad.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotAiffFile, ErrUnsupportedBitDepth or ErrUnsupportedAiffLayout
//	}
//
// Samples are returned as float32 in [-1.0, 1.0]. The decoder needs random
// access to the file, so readers that cannot seek are read into memory.
package aiff
