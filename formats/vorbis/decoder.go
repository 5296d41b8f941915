// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/dualstereo/audio"
)

var (
	// ErrNotVorbisFile is returned when the stream has no Vorbis identification header.
	ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")
	// ErrCorruptStream is returned when oggvorbis fails on malformed pages or packets.
	ErrCorruptStream = errors.New("corrupt Ogg Vorbis stream")
)

// recoverCorrupt turns a panic raised by oggvorbis on malformed input into
// ErrCorruptStream stored in *err. It must be deferred directly.
func recoverCorrupt(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrCorruptStream, r)
	}
}

// oggReader is the part of oggvorbis.Reader the source needs, split out for tests.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples fills dst with whole interleaved frames. oggvorbis.Reader.Read
// already counts interleaved samples, so its result is passed through.
func (s *source) ReadSamples(dst []float32) (n int, err error) {
	defer recoverCorrupt(&err)

	usable := len(dst) - len(dst)%s.channels
	if usable == 0 {
		return 0, nil
	}

	n, err = s.dec.Read(dst[:usable])
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (src audio.Source, err error) {
	defer func() {
		if err != nil {
			src = nil
		}
	}()
	defer recoverCorrupt(&err)

	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}
	if dec.Channels() <= 0 {
		return nil, ErrNotVorbisFile
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}

// Sniff reports whether head is the first Ogg page of a Vorbis stream.
func Sniff(head []byte) bool {
	const pageHeader = 27
	if len(head) < pageHeader || !bytes.Equal(head[:4], []byte("OggS")) {
		return false
	}
	payload := pageHeader + int(head[26])
	if len(head) < payload+7 {
		return false
	}
	return bytes.Equal(head[payload:payload+7], []byte("\x01vorbis"))
}
