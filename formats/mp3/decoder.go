// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/dualstereo/audio"
)

// ErrNotMP3File is returned when go-mp3 cannot find a valid frame.
var ErrNotMP3File = errors.New("not an MP3 file")

// mp3Reader is the part of gomp3.Decoder the source needs, split out for tests.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte

	// go-mp3 may return an odd byte count; the dangling low byte waits here.
	pending    byte
	hasPending bool
}

func (s *source) SampleRate() int { return s.sampleRate }

// Channels is always 2: go-mp3 duplicates mono streams into both channels.
func (s *source) Channels() int { return 2 }
func (s *source) Close() error  { return nil }
func (s *source) BufSize() int  { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	off := 0
	if s.hasPending {
		s.buf[0] = s.pending
		s.hasPending = false
		off = 1
	}

	n, err := s.dec.Read(s.buf[off:])
	n += off
	if n < 2 {
		if n == 1 && err == nil {
			s.pending, s.hasPending = s.buf[0], true
		}
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	if n%2 == 1 {
		s.pending, s.hasPending = s.buf[n-1], true
	}
	for i := range samples {
		val := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float32(val) / 32768.0
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}

// Sniff reports whether head starts with an ID3v2 tag or an MPEG audio
// Layer III frame sync.
func Sniff(head []byte) bool {
	if len(head) >= 3 && bytes.Equal(head[:3], []byte("ID3")) {
		return true
	}
	if len(head) < 2 || head[0] != 0xFF || head[1]&0xE0 != 0xE0 {
		return false
	}
	layer := (head[1] >> 1) & 0x03
	return layer == 0x01
}
