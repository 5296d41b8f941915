// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testGraph(left, right []float32, gl, gr float32) Graph {
	a, _ := NewGain(gl)
	b, _ := NewGain(gr)
	return Graph{Left: Source{Samples: left, Gain: a}, Right: Source{Samples: right, Gain: b}}
}

func ramp(n int, scale float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = scale * float32(i+1) / float32(n)
	}
	return out
}

func drainFrames(t *testing.T, s *Stream, chunk int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, chunk*Channels)
	for range 1 << 20 {
		n, err := s.ReadFrames(buf)
		out = append(out, buf[:n*Channels]...)
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
	}
	t.Fatal("stream never ended")
	return nil
}

func TestStream_LeadThenMix(t *testing.T) {
	t.Parallel()

	left := ramp(5, 1)
	right := ramp(3, -1)
	s := NewStream(testGraph(left, right, 1, 0.5), 4)

	assert.Equal(t, 9, s.Len())
	assert.Equal(t, 4, s.Lead())

	out := drainFrames(t, s, 2)
	require.Len(t, out, 9*Channels)

	for f := range 4 {
		assert.Zero(t, out[f*2], "lead frame %d left", f)
		assert.Zero(t, out[f*2+1], "lead frame %d right", f)
	}
	for i := range 5 {
		l, r := Frame(left, right, i, 1, 0.5)
		assert.Equal(t, l, out[(4+i)*2], "frame %d left", i)
		assert.Equal(t, r, out[(4+i)*2+1], "frame %d right", i)
	}
	assert.Equal(t, 9, s.Position())
}

// Both sources begin on the same output frame.
func TestStream_SynchronizedStart(t *testing.T) {
	t.Parallel()

	ones := []float32{1, 1, 1}
	s := NewStream(testGraph(ones, ones, 1, 1), 10)

	out := drainFrames(t, s, 3)
	firstL, firstR := -1, -1
	for f := range len(out) / 2 {
		if firstL < 0 && out[f*2] != 0 {
			firstL = f
		}
		if firstR < 0 && out[f*2+1] != 0 {
			firstR = f
		}
	}
	assert.Equal(t, 10, firstL)
	assert.Equal(t, firstL, firstR)
}

func TestStream_LiveGainChange(t *testing.T) {
	t.Parallel()

	ones := make([]float32, 100)
	for i := range ones {
		ones[i] = 1
	}
	g := testGraph(ones, ones, 1, 1)
	s := NewStream(g, 0)

	buf := make([]float32, 10*Channels)
	_, err := s.ReadFrames(buf)
	require.NoError(t, err)
	assert.Equal(t, float32(1), buf[len(buf)-1])

	require.NoError(t, g.Right.Gain.Set(0.25))

	_, err = s.ReadFrames(buf)
	require.NoError(t, err)
	for f := range 10 {
		assert.Equal(t, float32(1), buf[f*2], "left unaffected")
		assert.Equal(t, float32(0.25), buf[f*2+1], "right follows new gain")
	}
}

func TestStream_Close(t *testing.T) {
	t.Parallel()

	s := NewStream(testGraph(ramp(1000, 1), nil, 1, 1), 0)

	buf := make([]float32, 20)
	n, err := s.ReadFrames(buf)
	require.NoError(t, err)
	require.Equal(t, 10, n)

	require.NoError(t, s.Close())

	n, err = s.ReadFrames(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)

	m, err := s.Read(make([]byte, 64))
	assert.Equal(t, 0, m)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 10, s.Position())
}

func TestStream_EmptyGraph(t *testing.T) {
	t.Parallel()

	s := NewStream(Graph{}, 0)
	n, err := s.ReadFrames(make([]float32, 8))
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestStream_NegativeLead(t *testing.T) {
	t.Parallel()

	s := NewStream(testGraph([]float32{0.5}, nil, 1, 1), -20)
	assert.Equal(t, 0, s.Lead())
	assert.Equal(t, 1, s.Len())
}

// The byte form must carry exactly the ReadFrames samples, whatever the
// read sizes.
func TestStream_ReadBytesMatchesFrames(t *testing.T) {
	t.Parallel()

	left := ramp(37, 0.9)
	right := ramp(51, -0.6)

	want := drainFrames(t, NewStream(testGraph(left, right, 0.8, 1.2), 5), 7)

	for _, size := range []int{1, 3, 8, 13, 64, 4096} {
		s := NewStream(testGraph(left, right, 0.8, 1.2), 5)

		var raw bytes.Buffer
		p := make([]byte, size)
		for range 1 << 16 {
			n, err := s.Read(p)
			raw.Write(p[:n])
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
		}

		require.Equal(t, len(want)*4, raw.Len(), "read size %d", size)
		for i, w := range want {
			got := math.Float32frombits(binary.LittleEndian.Uint32(raw.Bytes()[i*4:]))
			require.Equal(t, w, got, "read size %d sample %d", size, i)
		}
	}
}

func TestStream_ConcurrentGainWriters(t *testing.T) {
	t.Parallel()

	ones := make([]float32, 20000)
	for i := range ones {
		ones[i] = 1
	}
	g := testGraph(ones, ones, 1, 1)
	s := NewStream(g, 0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 2000 {
			_ = g.Left.Gain.Set(float32(i%2) * 0.5)
		}
	}()

	out := drainFrames(t, s, 256)
	wg.Wait()

	for f := range len(out) / 2 {
		l, r := out[f*2], out[f*2+1]
		if l != 0 && l != 0.5 && l != 1 {
			t.Fatalf("frame %d left = %v, not one of the written gains", f, l)
		}
		if r != 1 {
			t.Fatalf("frame %d right = %v, want 1", f, r)
		}
	}
}

func BenchmarkStream_Read(b *testing.B) {
	left := ramp(44100, 1)
	right := ramp(44100, -1)
	p := make([]byte, 4096)

	b.ReportAllocs()

	for b.Loop() {
		s := NewStream(testGraph(left, right, 1, 0.5), 0)
		for {
			if _, err := s.Read(p); err != nil {
				break
			}
		}
	}
}
