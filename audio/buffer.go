// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
	"time"
)

// Buffer is fully decoded planar PCM audio. It is never modified after
// creation; every consumer only reads it.
type Buffer struct {
	SampleRate int
	Channels   [][]float32

	monoOnce sync.Once
	mono     []float32
}

// NewBuffer validates the channel geometry and wraps channels without copying.
func NewBuffer(sampleRate int, channels [][]float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, ErrRaggedChannels
		}
	}

	return &Buffer{SampleRate: sampleRate, Channels: channels}, nil
}

func (b *Buffer) NumChannels() int { return len(b.Channels) }

// Frames is the per-channel sample count.
func (b *Buffer) Frames() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

func (b *Buffer) Duration() time.Duration {
	return time.Duration(int64(b.Frames()) * int64(time.Second) / int64(b.SampleRate))
}

// Mono returns the buffer folded to a single channel by equal-weight
// averaging (see MonoMixer). A mono buffer returns its only channel as is.
// The result is computed once and shared; callers must not modify it.
func (b *Buffer) Mono() []float32 {
	if len(b.Channels) == 1 {
		return b.Channels[0]
	}

	b.monoOnce.Do(func() {
		out := make([]float32, b.Frames())
		mixer := NewMonoMixer(b.Reader())
		read := 0
		for read < len(out) {
			n, err := mixer.ReadSamples(out[read:])
			read += n
			if err != nil || n == 0 {
				break
			}
		}
		b.mono = out
	})

	return b.mono
}

// Reader exposes the buffer as an interleaved Source positioned at frame 0.
func (b *Buffer) Reader() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *Buffer
	pos int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.NumChannels() }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.NumChannels()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}
	remaining := s.buf.Frames() - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)
	for f := range frames {
		for c, ch := range s.buf.Channels {
			dst[f*channels+c] = ch[s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= s.buf.Frames() {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}
