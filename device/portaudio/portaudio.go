// SPDX-License-Identifier: EPL-2.0

// Package portaudio plays mixes on the default PortAudio output device.
package portaudio

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/ik5/dualstereo/mix"
	"github.com/ik5/dualstereo/playback"
)

// DefaultBufferFrames is the callback size when Device.BufferFrames is 0.
const DefaultBufferFrames = 512

// Device opens callback streams on the default output. Every Open
// initializes PortAudio and the matching Close terminates it.
type Device struct {
	BufferFrames int
}

func (d Device) Open(sampleRate, channels int, r playback.FrameReader) (playback.Output, error) {
	if sampleRate <= 0 || channels != mix.Channels {
		return nil, playback.ErrInvalidOutput
	}
	frames := d.BufferFrames
	if frames <= 0 {
		frames = DefaultBufferFrames
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	o := &output{
		r:        r,
		channels: channels,
		done:     make(chan struct{}),
	}

	stream, err := portaudio.OpenDefaultStream(0, channels, float64(sampleRate), frames, o.fill)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("open stream: %w", err)
	}
	o.stream = stream

	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("start stream: %w", err)
	}

	return o, nil
}

type output struct {
	r        playback.FrameReader
	channels int
	stream   *portaudio.Stream

	done     chan struct{}
	doneOnce sync.Once
	close    sync.Once
	closeErr error
}

// fill runs on the PortAudio callback thread. Once the reader is exhausted
// it keeps writing silence until the stream is closed.
func (o *output) fill(out []float32) {
	n, err := o.r.ReadFrames(out)
	clear(out[n*o.channels:])
	if err != nil {
		o.doneOnce.Do(func() { close(o.done) })
	}
}

func (o *output) Done() <-chan struct{} { return o.done }

func (o *output) Close() error {
	o.close.Do(func() {
		if err := o.stream.Stop(); err != nil {
			o.closeErr = fmt.Errorf("stop stream: %w", err)
		}
		if err := o.stream.Close(); err != nil && o.closeErr == nil {
			o.closeErr = fmt.Errorf("close stream: %w", err)
		}
		if err := portaudio.Terminate(); err != nil && o.closeErr == nil {
			o.closeErr = fmt.Errorf("portaudio terminate: %w", err)
		}
		o.doneOnce.Do(func() { close(o.done) })
	})
	return o.closeErr
}
