// SPDX-License-Identifier: EPL-2.0

// Package oto plays mixes through github.com/ebitengine/oto/v3.
//
// Oto allows one context per process, so a Device keeps the format of the
// first Open and refuses later opens at another sample rate.
package oto

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/dualstereo/mix"
	"github.com/ik5/dualstereo/playback"
)

var ErrFormatChanged = errors.New("oto context already open with another format")

// pollInterval is how often an output checks whether the player drained.
const pollInterval = 20 * time.Millisecond

// Device opens oto players on a shared context. The zero value is ready to
// use; BufferSize 0 lets oto pick.
type Device struct {
	BufferSize time.Duration

	mu       sync.Mutex
	ctx      *oto.Context
	rate     int
	channels int
}

func (d *Device) context(sampleRate, channels int) (*oto.Context, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ctx != nil {
		if d.rate != sampleRate || d.channels != channels {
			return nil, fmt.Errorf("%w: open at %d Hz/%d ch, asked %d Hz/%d ch",
				ErrFormatChanged, d.rate, d.channels, sampleRate, channels)
		}
		return d.ctx, nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   d.BufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	<-ready

	d.ctx, d.rate, d.channels = ctx, sampleRate, channels
	return ctx, nil
}

// Open starts a player pulling float32 little-endian bytes from r.
func (d *Device) Open(sampleRate, channels int, r playback.FrameReader) (playback.Output, error) {
	if sampleRate <= 0 || channels != mix.Channels {
		return nil, playback.ErrInvalidOutput
	}

	ctx, err := d.context(sampleRate, channels)
	if err != nil {
		return nil, err
	}

	o := &output{
		player: ctx.NewPlayer(r),
		done:   make(chan struct{}),
		stop:   make(chan struct{}),
	}
	o.player.Play()
	go o.watch()

	return o, nil
}

type output struct {
	player *oto.Player
	done   chan struct{}
	stop   chan struct{}
	once   sync.Once
}

// watch closes done once the player has played its reader to the end.
func (o *output) watch() {
	defer close(o.done)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-o.stop:
			return
		case <-ticker.C:
			if !o.player.IsPlaying() {
				return
			}
		}
	}
}

func (o *output) Done() <-chan struct{} { return o.done }

func (o *output) Close() error {
	o.once.Do(func() { close(o.stop) })
	<-o.done

	o.player.Pause()
	if err := o.player.Err(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	return nil
}
