// SPDX-License-Identifier: EPL-2.0

// Package render computes a whole two-source mix offline and serializes it
// as a 16-bit PCM stereo WAV.
package render

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/bits"
	"time"

	"github.com/ik5/dualstereo/audio"
	"github.com/ik5/dualstereo/formats/wav"
	"github.com/ik5/dualstereo/mix"
)

// MaxFrames is the largest mix Render produces by default: the longest
// stereo 16-bit WAV whose RIFF chunk size fits in 32 bits.
const MaxFrames = wav.MaxFrames

// blockFrames is how many frames are mixed between cancellation checks.
const blockFrames = 1 << 16

// Mix is a finished stereo render. It is not modified after Render returns.
type Mix struct {
	SampleRate int
	Left       []float32
	Right      []float32
}

func (m *Mix) Frames() int { return len(m.Left) }

func (m *Mix) Duration() time.Duration {
	return time.Duration(int64(m.Frames()) * int64(time.Second) / int64(m.SampleRate))
}

// EncodeWAV returns the mix as a complete WAV file.
func (m *Mix) EncodeWAV() ([]byte, error) {
	data, err := wav.EncodeStereo16(m.SampleRate, m.Left, m.Right)
	if err != nil {
		return nil, fmt.Errorf("encode mix: %w", err)
	}
	return data, nil
}

// WriteWAV streams the mix to w as a WAV file.
func (m *Mix) WriteWAV(w io.Writer) error {
	if err := wav.WriteStereo16(w, m.SampleRate, m.Left, m.Right); err != nil {
		return fmt.Errorf("write mix: %w", err)
	}
	return nil
}

// Options tune a render.
type Options struct {
	// MaxFrames caps the output length; 0 means MaxFrames.
	MaxFrames int
}

// Render mixes a (panned left, gain gainA) with b (panned right, gain gainB)
// at sampleRate. The output lasts as long as the longer source, measured
// both at sampleRate and in its own frames; the shorter one is padded with
// silence.
func Render(a *audio.Buffer, gainA float32, b *audio.Buffer, gainB float32, sampleRate int) (*Mix, error) {
	return RenderContext(context.Background(), a, gainA, b, gainB, sampleRate, Options{})
}

// RenderContext is Render with cancellation, checked between blocks of frames.
func RenderContext(ctx context.Context, a *audio.Buffer, gainA float32, b *audio.Buffer, gainB float32, sampleRate int, opts Options) (*Mix, error) {
	if a == nil || b == nil || sampleRate <= 0 {
		return nil, ErrInvalidInput
	}
	if err := mix.ValidateGain(gainA); err != nil {
		return nil, fmt.Errorf("left gain: %w", err)
	}
	if err := mix.ValidateGain(gainB); err != nil {
		return nil, fmt.Errorf("right gain: %w", err)
	}

	limit := opts.MaxFrames
	if limit <= 0 {
		limit = MaxFrames
	}

	// Samples are taken frame for frame, so neither source may be cut short
	// when its native rate is above sampleRate.
	frames := max(
		FrameCount(a.Frames(), a.SampleRate, sampleRate),
		FrameCount(b.Frames(), b.SampleRate, sampleRate),
		int64(a.Frames()),
		int64(b.Frames()),
	)
	if frames > int64(limit) {
		return nil, fmt.Errorf("%w: %d frames, limit %d", ErrTooLong, frames, limit)
	}

	monoA := mix.Fold(a)
	monoB := mix.Fold(b)

	out := &Mix{
		SampleRate: sampleRate,
		Left:       make([]float32, frames),
		Right:      make([]float32, frames),
	}

	for start := 0; start < len(out.Left); start += blockFrames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+blockFrames, len(out.Left))
		for i := start; i < end; i++ {
			out.Left[i], out.Right[i] = mix.Frame(monoA, monoB, i, gainA, gainB)
		}
	}

	return out, nil
}

// FrameCount is ceil(frames / nativeRate * renderRate): the number of output
// frames a source of the given length covers. It is computed on integers so
// that a 1 s source at 44100 Hz gives exactly 44100 frames.
func FrameCount(frames, nativeRate, renderRate int) int64 {
	if frames <= 0 || nativeRate <= 0 || renderRate <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(frames), uint64(renderRate))
	if hi >= uint64(nativeRate) {
		return math.MaxInt64
	}
	q, r := bits.Div64(hi, lo, uint64(nativeRate))
	if r > 0 {
		q++
	}
	if q > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(q)
}
