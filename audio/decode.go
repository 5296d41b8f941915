// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// maxEmptyReads bounds how many (0, nil) reads ReadAll tolerates in a row
// before it gives up on a source that makes no progress.
const maxEmptyReads = 100

// ReadAll drains src into a Buffer, de-interleaving it into planar channels.
// A trailing partial frame is dropped. It does not close src.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	// Read in whole frames so partial reads from a source never straddle a
	// frame boundary in buf.
	size := max(src.BufSize(), 4096)
	size -= size % channels
	buf := make([]float32, size)

	var interleaved []float32
	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			empty = 0
			interleaved = append(interleaved, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}
	}

	frames := len(interleaved) / channels
	planar := make([][]float32, channels)
	for c := range planar {
		planar[c] = make([]float32, frames)
	}
	for f := range frames {
		base := f * channels
		for c := range channels {
			planar[c][f] = interleaved[base+c]
		}
	}

	return NewBuffer(src.SampleRate(), planar)
}

// DecodeBytes identifies the container in data, decodes it fully and returns
// the result. Every failure is reported as a *DecodeError.
func DecodeBytes(reg *Registry, data []byte) (*Buffer, error) {
	format, dec, err := reg.Detect(data)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}
	defer src.Close()

	buf, err := ReadAll(src)
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}
	if buf.Frames() == 0 {
		return nil, &DecodeError{Format: format, Err: ErrNoSamples}
	}

	return buf, nil
}

// DecodeAll decodes every input concurrently and returns the buffers in
// input order. The first failure wins; it is a *DecodeError, or ctx's error
// when ctx ends before all inputs are decoded.
func DecodeAll(ctx context.Context, reg *Registry, inputs ...[]byte) ([]*Buffer, error) {
	out := make([]*Buffer, len(inputs))
	g, gctx := errgroup.WithContext(ctx)

	for i, data := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			buf, err := DecodeBytes(reg, data)
			if err != nil {
				return err
			}
			out[i] = buf
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
