// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III files with github.com/hajimehoshi/go-mp3.
//
//	file, _ := os.Open("music.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//
// go-mp3 always produces 16-bit stereo, so the source reports two channels
// even for mono files. Samples are converted to float32 in [-1.0, 1.0].
package mp3
