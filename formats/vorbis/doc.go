// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("ambience.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//
// Vorbis is decoded to float32 natively, so samples are passed through
// without conversion. ReadSamples only returns whole frames.
package vorbis
