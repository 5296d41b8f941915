// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"io"
	"sync"
	"time"
)

// FrameReader is what a Device pulls audio from: interleaved float32 frames
// through ReadFrames, or the same signal as float32 little-endian bytes
// through Read. *mix.Stream implements it.
type FrameReader interface {
	io.Reader
	// ReadFrames fills dst with interleaved frames and returns the frame
	// count. The last frames come with io.EOF.
	ReadFrames(dst []float32) (int, error)
}

// Device opens live outputs.
type Device interface {
	Open(sampleRate, channels int, r FrameReader) (Output, error)
}

// Output is one open playback. Done is closed once the output has played
// everything r had, or after Close. Close blocks until the output stopped
// pulling from r.
type Output interface {
	Done() <-chan struct{}
	Close() error
}

// NullDevice plays into nothing. It pulls BufferFrames frames every Period,
// which is the real-time pace when Period is zero. Sink, when set, sees
// every chunk that was pulled.
type NullDevice struct {
	BufferFrames int
	Period       time.Duration
	Sink         func(frames []float32)
}

const defaultBufferFrames = 1024

func (d NullDevice) Open(sampleRate, channels int, r FrameReader) (Output, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, ErrInvalidOutput
	}
	frames := d.BufferFrames
	if frames <= 0 {
		frames = defaultBufferFrames
	}
	period := d.Period
	if period <= 0 {
		period = time.Duration(frames) * time.Second / time.Duration(sampleRate)
	}

	o := &nullOutput{
		done: make(chan struct{}),
		stop: make(chan struct{}),
	}
	go o.run(r, channels, make([]float32, frames*channels), period, d.Sink)

	return o, nil
}

type nullOutput struct {
	done chan struct{}
	stop chan struct{}
	once sync.Once
}

func (o *nullOutput) run(r FrameReader, channels int, buf []float32, period time.Duration, sink func([]float32)) {
	defer close(o.done)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-o.stop:
			return
		case <-ticker.C:
		}

		n, err := r.ReadFrames(buf)
		if n > 0 && sink != nil {
			sink(buf[:n*channels])
		}
		if err != nil {
			return
		}
	}
}

func (o *nullOutput) Done() <-chan struct{} { return o.done }

func (o *nullOutput) Close() error {
	o.once.Do(func() { close(o.stop) })
	<-o.done
	return nil
}
