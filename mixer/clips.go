// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audmix/audio"
)

// LoadClip decodes the file at path, converts it to the engine format and
// stores it. The decoder is chosen from the file extension. Nothing is
// stored when the store is full or decoding fails.
func (e *Engine) LoadClip(path string) (int, error) {
	if !e.initialized.Load() {
		return -1, ErrNotInitialized
	}
	if e.clips.Full() {
		return -1, fmt.Errorf("%w: clip store holds %d clips", ErrCapacityExceeded, MaxClips)
	}

	dec, err := e.decoders.Lookup(path)
	if err != nil {
		return -1, fmt.Errorf("%w: %s: %w", ErrResourceAllocation, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return -1, fmt.Errorf("%w: %w", ErrResourceAllocation, err)
	}
	defer f.Close()

	return e.load(filepath.Base(path), dec, f)
}

// LoadClipFrom decodes r with the decoder registered for format ("wav",
// "ogg", ...) and stores the result.
func (e *Engine) LoadClipFrom(format string, r io.Reader) (int, error) {
	if !e.initialized.Load() {
		return -1, ErrNotInitialized
	}
	if e.clips.Full() {
		return -1, fmt.Errorf("%w: clip store holds %d clips", ErrCapacityExceeded, MaxClips)
	}

	dec, ok := e.decoders.Get(format)
	if !ok {
		return -1, fmt.Errorf("%w: %q: %w", ErrResourceAllocation, format, audio.ErrUnknownFormat)
	}

	return e.load(format, dec, r)
}

func (e *Engine) load(name string, dec audio.Decoder, r io.Reader) (int, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return -1, fmt.Errorf("%w: decoding %s: %w", ErrResourceAllocation, name, err)
	}
	defer src.Close()

	e.logger.Debug("decoding clip",
		"name", name,
		"sampleRate", src.SampleRate(),
		"channels", src.Channels(),
	)

	return e.store(name, src)
}

// AddClip stores PCM that is already in memory. pcm holds interleaved
// frames of the given channel count and rate and is converted like a
// decoded file.
func (e *Engine) AddClip(name string, pcm []float32, channels, sampleRate int) (int, error) {
	if !e.initialized.Load() {
		return -1, ErrNotInitialized
	}
	if e.clips.Full() {
		return -1, fmt.Errorf("%w: clip store holds %d clips", ErrCapacityExceeded, MaxClips)
	}

	src, err := audio.NewBufferSource(pcm, sampleRate, channels)
	if err != nil {
		return -1, fmt.Errorf("%w: %w", ErrResourceAllocation, err)
	}

	return e.store(name, src)
}

func (e *Engine) store(name string, src audio.Source) (int, error) {
	pcm, err := audio.ReadAll(src, e.cfg.SampleRate, e.cfg.Channels, 0)
	if err != nil {
		return -1, fmt.Errorf("%w: converting %s: %w", ErrResourceAllocation, name, err)
	}

	id, err := e.clips.Add(name, pcm, e.cfg.Channels)
	if err != nil {
		return -1, err
	}

	e.logger.Debug("clip loaded",
		"id", id,
		"name", name,
		"frames", len(pcm)/e.cfg.Channels,
	)

	return id, nil
}

// Duration returns the length of clip id in seconds.
func (e *Engine) Duration(id int) (float64, error) {
	if !e.initialized.Load() {
		return 0, ErrNotInitialized
	}

	clip, err := e.clips.Get(id)
	if err != nil {
		return 0, err
	}

	return float64(clip.frames) / float64(e.cfg.SampleRate), nil
}

// ClipCount returns the number of stored clips.
func (e *Engine) ClipCount() int {
	return e.clips.Len()
}
