// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/dualstereo/audio"
	"github.com/ik5/dualstereo/internal/audiotest"
)

func TestNewRegistry_Formats(t *testing.T) {
	t.Parallel()

	got := NewRegistry().Formats()
	want := []string{WAV, Vorbis, AIFF, MP3}
	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestNewRegistry_Detect(t *testing.T) {
	t.Parallel()

	ogg := make([]byte, 28)
	copy(ogg, "OggS")
	ogg[26] = 1
	ogg = append(ogg, "\x01vorbis"...)

	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr error
	}{
		{"wav", audiotest.PCM16WAV(8000, 1, []int16{1}), WAV, nil},
		{"aiff", audiotest.PCM16AIFF(8000, 1, []int16{1}), AIFF, nil},
		{"ogg", ogg, Vorbis, nil},
		{"mp3 id3", []byte("ID3\x04\x00\x00\x00\x00\x00\x00"), MP3, nil},
		{"mp3 sync", []byte{0xFF, 0xFB, 0x90, 0x64}, MP3, nil},
		{"text", []byte("hello"), "", audio.ErrUnknownFormat},
		{"empty", nil, "", audio.ErrEmptyInput},
	}

	reg := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, dec, err := reg.Detect(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Detect() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Detect() format = %q, want %q", got, tt.want)
			}
			if tt.wantErr == nil && dec == nil {
				t.Error("Detect() decoder = nil")
			}
		})
	}
}

func TestDecodeBytes_WAV(t *testing.T) {
	t.Parallel()

	data := audiotest.PCM16WAV(44100, 2, []int16{16384, -16384, 8192, 8192})
	buf, err := audio.DecodeBytes(NewRegistry(), data)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}

	if buf.SampleRate != 44100 || buf.NumChannels() != 2 || buf.Frames() != 2 {
		t.Fatalf("buffer = %d Hz, %d ch, %d frames", buf.SampleRate, buf.NumChannels(), buf.Frames())
	}

	mono := buf.Mono()
	want := []float32{0, 0.25}
	for i := range want {
		if mono[i] != want[i] {
			t.Errorf("mono[%d] = %v, want %v", i, mono[i], want[i])
		}
	}
}

func TestDecodeBytes_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       []byte
		wantFormat string
		wantErr    error
	}{
		{"garbage", []byte("definitely not audio"), "", audio.ErrUnknownFormat},
		{"empty", nil, "", audio.ErrEmptyInput},
		// go-audio may reject an empty data chunk before ReadAll sees it, so
		// only the format is pinned here.
		{"wav without samples", audiotest.PCM16WAV(8000, 2, nil), WAV, nil},
	}

	reg := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := audio.DecodeBytes(reg, tt.data)

			var decErr *audio.DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("DecodeBytes() error = %v, want *audio.DecodeError", err)
			}
			if decErr.Format != tt.wantFormat {
				t.Errorf("DecodeError.Format = %q, want %q", decErr.Format, tt.wantFormat)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeBytes() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeBytes_TruncatedMP3(t *testing.T) {
	t.Parallel()

	_, err := audio.DecodeBytes(NewRegistry(), []byte{0xFF, 0xFB, 0x90, 0x64, 0x00})

	var decErr *audio.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("DecodeBytes() error = %v, want *audio.DecodeError", err)
	}
	if decErr.Format != MP3 {
		t.Errorf("DecodeError.Format = %q, want %q", decErr.Format, MP3)
	}
}

// oggvorbis panics on this page layout; the registry must still report a
// DecodeError.
func TestDecodeBytes_CorruptOgg(t *testing.T) {
	t.Parallel()

	data := make([]byte, 27)
	copy(data, "OggS")
	data = append(data, "\x01vorbis"...)
	data = append(data, make([]byte, 40)...)

	var (
		err      error
		panicked any
	)
	func() {
		defer func() { panicked = recover() }()
		_, err = audio.DecodeBytes(NewRegistry(), data)
	}()
	if panicked != nil {
		t.Fatalf("DecodeBytes() panicked: %v", panicked)
	}

	var decErr *audio.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("DecodeBytes() error = %v, want *audio.DecodeError", err)
	}
	if decErr.Format != Vorbis {
		t.Errorf("DecodeError.Format = %q, want %q", decErr.Format, Vorbis)
	}
}
