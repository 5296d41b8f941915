// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
	"sync/atomic"
)

const (
	// Channels of every Stream.
	Channels = 2
	// BytesPerFrame of the float32 little-endian byte form.
	BytesPerFrame = Channels * 4
)

// Stream is the live rendition of a Graph: leadFrames of silence, then every
// mixed frame until the longer source ends. Both sources start on the same
// frame. Reads are serialized; Close may be called from any goroutine.
type Stream struct {
	graph  Graph
	lead   int
	frames int

	mu      sync.Mutex
	pos     int
	scratch []float32
	tail    [BytesPerFrame]byte
	pending []byte

	emitted atomic.Int64
	closed  atomic.Bool
}

// NewStream returns a stream over g that begins with leadFrames of silence.
func NewStream(g Graph, leadFrames int) *Stream {
	return &Stream{
		graph:  g,
		lead:   max(leadFrames, 0),
		frames: g.Frames(),
	}
}

// Len is the total number of frames the stream will emit, lead included.
func (s *Stream) Len() int { return s.lead + s.frames }

// Lead is the number of silent frames before the sources start.
func (s *Stream) Lead() int { return s.lead }

// Position is the number of frames emitted so far, lead included.
func (s *Stream) Position() int { return int(s.emitted.Load()) }

// Close ends the stream. Every later read returns io.EOF.
func (s *Stream) Close() error {
	s.closed.Store(true)
	return nil
}

// ReadFrames fills dst with interleaved L,R float32 frames and returns the
// number of frames written. A trailing odd slot in dst is left untouched.
// The final frames are returned together with io.EOF.
func (s *Stream) ReadFrames(dst []float32) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readFrames(dst)
}

func (s *Stream) readFrames(dst []float32) (int, error) {
	if s.closed.Load() {
		return 0, io.EOF
	}
	total := s.lead + s.frames
	if s.pos >= total {
		return 0, io.EOF
	}

	n := min(len(dst)/Channels, total-s.pos)
	for f := range n {
		i := s.pos + f - s.lead
		var l, r float32
		if i >= 0 {
			l, r = s.graph.Frame(i)
		}
		dst[f*Channels] = l
		dst[f*Channels+1] = r
	}
	s.pos += n
	s.emitted.Add(int64(n))

	if s.pos >= total {
		return n, io.EOF
	}
	return n, nil
}

// Read implements io.Reader, producing float32 little-endian interleaved
// stereo. Reads that split a frame are carried over to the next call.
func (s *Stream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		s.pending = nil
		return 0, io.EOF
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	p = p[n:]

	var err error
	if whole := len(p) / BytesPerFrame; whole > 0 {
		if cap(s.scratch) < whole*Channels {
			s.scratch = make([]float32, whole*Channels)
		}
		buf := s.scratch[:whole*Channels]

		var frames int
		frames, err = s.readFrames(buf)
		encodeFloat32LE(p, buf[:frames*Channels])
		n += frames * BytesPerFrame
		p = p[frames*BytesPerFrame:]
	}

	if err == nil && len(p) > 0 && len(p) < BytesPerFrame {
		var frame [Channels]float32
		var frames int
		frames, err = s.readFrames(frame[:])
		if frames == 1 {
			encodeFloat32LE(s.tail[:], frame[:])
			c := copy(p, s.tail[:])
			n += c
			s.pending = s.tail[c:]
		}
	}

	if err == io.EOF && len(s.pending) > 0 {
		err = nil
	}
	return n, err
}

func encodeFloat32LE(dst []byte, src []float32) {
	for i, v := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
}
