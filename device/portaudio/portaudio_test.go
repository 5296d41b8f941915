// SPDX-License-Identifier: EPL-2.0

package portaudio

import (
	"errors"
	"testing"

	"github.com/ik5/dualstereo/mix"
	"github.com/ik5/dualstereo/playback"
)

func TestDevice_OpenInvalidFormat(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rate, channels int }{{0, 2}, {-1, 2}, {48000, 1}} {
		_, err := Device{}.Open(tc.rate, tc.channels, mix.NewStream(mix.Graph{}, 0))
		if !errors.Is(err, playback.ErrInvalidOutput) {
			t.Errorf("Open(%d, %d) error = %v, want %v", tc.rate, tc.channels, err, playback.ErrInvalidOutput)
		}
	}
}

func TestOutput_Fill(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3}
	s := mix.NewStream(mix.Graph{
		Left:  mix.Source{Samples: samples},
		Right: mix.Source{Samples: samples},
	}, 1)
	o := &output{r: s, channels: 2, done: make(chan struct{})}

	buf := make([]float32, 6)
	o.fill(buf)
	want := []float32{0, 0, 0.1, 0.1, 0.2, 0.2}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("first callback = %v, want %v", buf, want)
		}
	}
	select {
	case <-o.done:
		t.Fatal("done closed before the stream ended")
	default:
	}

	for i := range buf {
		buf[i] = 9
	}
	o.fill(buf)
	want = []float32{0.3, 0.3, 0, 0, 0, 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("last callback = %v, want %v", buf, want)
		}
	}
	select {
	case <-o.done:
	default:
		t.Fatal("done not closed after the stream ended")
	}

	// Callbacks after the end keep producing silence.
	o.fill(buf)
	for i := range buf {
		if buf[i] != 0 {
			t.Fatalf("callback after end = %v, want silence", buf)
		}
	}
}

func TestDevice_ImplementsPlaybackDevice(t *testing.T) {
	t.Parallel()

	var _ playback.Device = Device{}
}
