// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"sync"
)

// MaxClips is the capacity of a ClipStore.
const MaxClips = 1024

// Clip is decoded PCM in the engine's sample rate and channel layout.
// It is immutable once stored.
type Clip struct {
	id       int
	name     string
	pcm      []float32
	channels int
	frames   int
}

func (c *Clip) ID() int       { return c.id }
func (c *Clip) Name() string  { return c.name }
func (c *Clip) Frames() int   { return c.frames }
func (c *Clip) Channels() int { return c.channels }

// ClipStore owns loaded clips. Ids are assigned in load order and never reused.
type ClipStore struct {
	mtx    sync.RWMutex
	clips  []*Clip
	closed bool
}

// NewClipStore returns an empty store.
func NewClipStore() *ClipStore {
	return &ClipStore{clips: make([]*Clip, 0, 16)}
}

// Add stores pcm as a new clip and returns its id. The store is left
// untouched when it is full or has been closed.
func (s *ClipStore) Add(name string, pcm []float32, channels int) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return -1, fmt.Errorf("%w: clip store closed", ErrNotInitialized)
	}
	if len(s.clips) >= MaxClips {
		return -1, fmt.Errorf("%w: clip store holds %d clips", ErrCapacityExceeded, MaxClips)
	}

	pcm = pcm[:len(pcm)-len(pcm)%channels]
	clip := &Clip{
		id:       len(s.clips),
		name:     name,
		pcm:      pcm,
		channels: channels,
		frames:   len(pcm) / channels,
	}
	s.clips = append(s.clips, clip)

	return clip.id, nil
}

// Full reports whether the store is at capacity.
func (s *ClipStore) Full() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return len(s.clips) >= MaxClips
}

// Get returns clip id, or ErrOutOfRange when no such clip was stored.
func (s *ClipStore) Get(id int) (*Clip, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if id < 0 || id >= len(s.clips) {
		return nil, fmt.Errorf("%w: clip %d", ErrOutOfRange, id)
	}

	return s.clips[id], nil
}

// Len reports how many clips are stored.
func (s *ClipStore) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return len(s.clips)
}

// close drops every clip and makes later Adds fail. Playing chains keep
// their own reference.
func (s *ClipStore) close() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.closed = true

	clear(s.clips)
	s.clips = s.clips[:0]
}
