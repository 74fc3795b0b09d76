// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"math"
	"testing"
)

func frameAt(out []float32, f int) (left, right float32) {
	return out[f*2], out[f*2+1]
}

func TestPlayback_StateTransitions(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	clip := addRampClip(t, e, 4*testBlock, 0.001)

	assertState := func(want State) {
		t.Helper()
		got, err := e.State(0)
		if err != nil || got != want {
			t.Fatalf("State(0) = (%v, %v), want %v", got, err, want)
		}
	}

	assertState(Empty)

	if _, err := e.Play(0, clip); err != nil {
		t.Fatal(err)
	}
	assertState(Playing)
	render(e, testBlock)

	if err := e.Pause(0); err != nil {
		t.Fatal(err)
	}
	assertState(Paused)
	for i, v := range render(e, testBlock) {
		if v != 0 {
			t.Fatalf("paused out[%d] = %v, want 0", i, v)
		}
	}

	pos, err := e.Position(0)
	if err != nil || pos != float64(testBlock)/testRate {
		t.Errorf("Position(0) while paused = (%v, %v), want %v", pos, err, float64(testBlock)/testRate)
	}

	if err := e.Resume(0); err != nil {
		t.Fatal(err)
	}
	assertState(Playing)
	out := render(e, testBlock)
	if l, r := frameAt(out, 0); !near(l, testBlock*0.001) || !near(r, testBlock*0.001) {
		t.Errorf("first frame after resume = (%v, %v), want %v", l, r, testBlock*0.001)
	}

	if err := e.Stop(0); err != nil {
		t.Fatal(err)
	}
	assertState(Stopped)
	render(e, testBlock)
	if pos, _ := e.Position(0); pos != 0 {
		t.Errorf("Position(0) after Stop = %v, want 0", pos)
	}

	// Pause only applies to a playing channel.
	if err := e.Pause(0); err != nil {
		t.Fatal(err)
	}
	assertState(Stopped)

	if err := e.Resume(0); err != nil {
		t.Fatal(err)
	}
	out = render(e, testBlock)
	if l, _ := frameAt(out, 1); !near(l, 0.001) {
		t.Errorf("frame 1 after restart = %v, want 0.001", l)
	}
}

func TestPlayback_EmptyChannelOps(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	ops := map[string]error{
		"Stop":        e.Stop(9),
		"Pause":       e.Pause(9),
		"Resume":      e.Resume(9),
		"SetVolume":   e.SetVolume(9, 10),
		"SetPitch":    e.SetPitch(9, 2),
		"SetLooping":  e.SetLooping(9, true),
		"SetPosition": e.SetPosition(9, 90, 10),
	}
	for name, err := range ops {
		if err != nil {
			t.Errorf("%s on an empty channel error = %v, want nil", name, err)
		}
	}

	if state, err := e.State(9); err != nil || state != Empty {
		t.Errorf("State(9) = (%v, %v), want empty", state, err)
	}
}

func TestPlayback_EndOfClip(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	const frames = 100
	clip := addConstClip(t, e, frames, 0.5)

	if _, err := e.Play(0, clip); err != nil {
		t.Fatal(err)
	}

	out := render(e, 2*testBlock)
	for f := range 2 * testBlock {
		want := float32(0.5)
		if f >= frames {
			want = 0
		}
		if l, r := frameAt(out, f); l != want || r != want {
			t.Fatalf("frame %d = (%v, %v), want %v", f, l, r, want)
		}
	}

	if state, _ := e.State(0); state != Stopped {
		t.Errorf("State(0) after the clip ended = %v, want stopped", state)
	}
	if pos, _ := e.Position(0); pos != 0 {
		t.Errorf("Position(0) after the clip ended = %v, want 0", pos)
	}

	if err := e.Resume(0); err != nil {
		t.Fatal(err)
	}
	out = render(e, testBlock)
	if l, r := frameAt(out, 0); l != 0.5 || r != 0.5 {
		t.Errorf("first frame after replay = (%v, %v), want 0.5", l, r)
	}
}

func TestPlayback_Looping(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	const frames = 100
	clip := addRampClip(t, e, frames, 0.001)

	if _, err := e.Play(0, clip); err != nil {
		t.Fatal(err)
	}
	if err := e.SetLooping(0, true); err != nil {
		t.Fatal(err)
	}

	out := render(e, 4*testBlock)
	for f := range 4 * testBlock {
		want := float32(f%frames) * 0.001
		if l, r := frameAt(out, f); !near(l, want) || !near(r, want) {
			t.Fatalf("frame %d = (%v, %v), want %v", f, l, r, want)
		}
	}

	if state, _ := e.State(0); state != Playing {
		t.Errorf("State(0) = %v, want playing", state)
	}
}

func TestPlayback_Volume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		volume int
		want   float32
	}{
		{"half", 64, 0.25},
		{"full", MaxVolume, 0.5},
		{"clamped high", 200, 0.5},
		{"clamped low", -3, 0},
		{"mute", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestEngine(t)
			clip := addConstClip(t, e, testRate, 0.5)
			if _, err := e.Play(0, clip); err != nil {
				t.Fatal(err)
			}
			if err := e.SetVolume(0, tt.volume); err != nil {
				t.Fatal(err)
			}

			for i, v := range render(e, testBlock) {
				if v != tt.want {
					t.Fatalf("out[%d] = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestPlayback_Position(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		angle       float32
		distance    int
		left, right float32
	}{
		{"at listener", 0, 0, 1, 1},
		{"far right", 90, MaxDistance, 0, 0.1},
		{"half left", 270, 128, 1 - 0.9*128.0/255, 0},
		{"ahead", 0, MaxDistance, 0.1, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestEngine(t)
			clip := addConstClip(t, e, testRate, 1)
			if _, err := e.Play(0, clip); err != nil {
				t.Fatal(err)
			}
			if err := e.SetPosition(0, tt.angle, tt.distance); err != nil {
				t.Fatal(err)
			}

			out := render(e, testBlock)
			if l, r := frameAt(out, 10); !near(l, tt.left) || !near(r, tt.right) {
				t.Errorf("frame = (%v, %v), want (%v, %v)", l, r, tt.left, tt.right)
			}
		})
	}
}

func TestPlayback_Pitch(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	clip := addRampClip(t, e, testRate, 0.0001)

	if _, err := e.Play(0, clip); err != nil {
		t.Fatal(err)
	}
	if err := e.SetPitch(0, 2); err != nil {
		t.Fatal(err)
	}
	// Ignored.
	for _, bad := range []float32{0, -1, float32(math.Inf(1))} {
		if err := e.SetPitch(0, bad); err != nil {
			t.Fatal(err)
		}
	}

	out := render(e, testBlock)
	for f := range testBlock {
		want := float32(2*f) * 0.0001
		if l, _ := frameAt(out, f); !near(l, want) {
			t.Fatalf("frame %d = %v, want %v", f, l, want)
		}
	}

	pos, err := e.Position(0)
	if want := float64(2*testBlock) / testRate; err != nil || pos != want {
		t.Errorf("Position(0) = (%v, %v), want %v", pos, err, want)
	}
}

func TestPlayback_FractionalPitchInterpolates(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	clip := addRampClip(t, e, testRate, 0.0001)

	if _, err := e.Play(0, clip); err != nil {
		t.Fatal(err)
	}
	if err := e.SetPitch(0, 0.5); err != nil {
		t.Fatal(err)
	}

	// Cubic interpolation reproduces a linear ramp away from its first frame.
	out := render(e, testBlock)
	for f := 4; f < testBlock; f++ {
		want := float32(f) * 0.5 * 0.0001
		if l, _ := frameAt(out, f); !near(l, want) {
			t.Fatalf("frame %d = %v, want %v", f, l, want)
		}
	}
}
