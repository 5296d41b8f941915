// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by package tests: synthetic
// sources that satisfy audio.Source without importing it, and in-memory
// WAV and AIFF files.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates frames from a waveform function.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	waveform   func(frame, channel int) float32

	// Err, when set, is returned once pos reaches FailAt.
	Err    error
	FailAt int

	// Stall makes every read return (0, nil).
	Stall bool

	Closed bool
}

// NewMockSource returns a source of frames frames. waveform receives the
// frame index and channel.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource puts the same sine on every channel.
func NewSineSource(sampleRate, channels, frames int, freq float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(f, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(f) / float64(sampleRate)))
	})
}

// NewRampSource emits frame/frames on channel 0 and its negation on the rest.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(f, c int) float32 {
		v := float32(f) / float32(frames)
		if c > 0 {
			return -v
		}
		return v
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset rewinds the source to frame 0.
func (m *MockSource) Reset() { m.pos = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.Stall {
		return 0, nil
	}
	if m.Err != nil && m.pos >= m.FailAt {
		return 0, m.Err
	}
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	if m.Err != nil {
		n = min(n, m.FailAt-m.pos)
	}
	for f := range n {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.pos+f, c)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}
