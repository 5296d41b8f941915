// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/ik5/dualstereo/audio"
	"github.com/ik5/dualstereo/internal/log"
	"github.com/ik5/dualstereo/mix"
)

// DefaultStartLead is the silence played before both sources start.
const DefaultStartLead = 100 * time.Millisecond

// Option configures a Controller.
type Option func(*Controller)

// WithStartLead sets the delay between Play and the first audible frame.
func WithStartLead(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.lead = d
		}
	}
}

func WithLogger(l log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now when stamping sessions.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithOnStateChange registers fn to be called on every state transition.
// fn runs with the controller locked and must not call back into it.
func WithOnStateChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onState = fn
	}
}

// Controller owns at most one live Session. It is safe for concurrent use.
type Controller struct {
	reg     *audio.Registry
	dev     Device
	lead    time.Duration
	logger  log.Logger
	now     func() time.Time
	onState func(State)

	mu      sync.Mutex
	state   State
	gen     uint64
	cancel  context.CancelFunc
	session *Session
	closed  bool

	watchers sync.WaitGroup
}

// New returns an idle controller that decodes through reg and plays on dev.
func New(reg *audio.Registry, dev Device, opts ...Option) *Controller {
	c := &Controller{
		reg:    reg,
		dev:    dev,
		lead:   DefaultStartLead,
		logger: log.GetLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Session returns the live session, or nil.
func (c *Controller) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session
}

// Play decodes left and right and starts them together after the start
// lead. Gain cells are read on every frame, so later writes to gainL and
// gainR are heard immediately. A live session is stopped first.
//
// Play returns once the session is playing; it does not wait for the end.
// A Stop or another Play that arrives while decoding makes it return
// ErrStopped.
func (c *Controller) Play(ctx context.Context, left, right []byte, gainL, gainR *mix.Gain) error {
	if len(left) == 0 || len(right) == 0 {
		return ErrSelectionIncomplete
	}
	if c.dev == nil {
		return ErrNoDevice
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.stopLocked()
	c.gen++
	gen := c.gen
	loadCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.setStateLocked(Loading)
	c.mu.Unlock()

	bufs, err := audio.DecodeAll(loadCtx, c.reg, left, right)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return ErrStopped
	}
	c.cancel = nil

	if err != nil {
		c.setStateLocked(Idle)
		c.logger.WithFields(log.Fields{"error": err}).Warn("decode failed")
		return err
	}

	return c.startLocked(gen, bufs[0], bufs[1], gainL, gainR)
}

func (c *Controller) startLocked(gen uint64, a, b *audio.Buffer, gainL, gainR *mix.Gain) error {
	rate := a.SampleRate
	if b.SampleRate != rate {
		c.logger.WithFields(log.Fields{
			"left_rate":  a.SampleRate,
			"right_rate": b.SampleRate,
		}).Warn("sample rates differ, right source plays frame for frame")
	}

	graph := mix.Graph{
		Left:  mix.Source{Samples: mix.Fold(a), Gain: gainL},
		Right: mix.Source{Samples: mix.Fold(b), Gain: gainR},
	}
	leadFrames := int(int64(c.lead) * int64(rate) / int64(time.Second))
	stream := mix.NewStream(graph, leadFrames)

	out, err := c.dev.Open(rate, mix.Channels, stream)
	if err != nil {
		_ = stream.Close()
		c.setStateLocked(Idle)
		return fmt.Errorf("open output: %w", err)
	}

	s := &Session{
		ID:         xid.New(),
		StartAt:    c.now().Add(c.lead),
		SampleRate: rate,
		Frames:     graph.Frames(),
		stream:     stream,
		out:        out,
	}
	c.session = s
	c.setStateLocked(Playing)

	c.logger.WithFields(log.Fields{
		"session":     s.ID.String(),
		"sample_rate": rate,
		"frames":      s.Frames,
		"lead_frames": leadFrames,
	}).Info("playing")

	c.watchers.Add(1)
	go c.watch(gen, s)

	return nil
}

// watch returns the controller to Idle when s drains on its own.
func (c *Controller) watch(gen uint64, s *Session) {
	defer c.watchers.Done()

	<-s.out.Done()

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.session != s {
		return
	}
	_ = s.close()
	c.session = nil
	c.gen++
	c.setStateLocked(Idle)

	c.logger.WithFields(log.Fields{"session": s.ID.String()}).Debug("playback finished")
}

// Stop halts playback or an in-flight load. It is a no-op when idle.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
}

func (c *Controller) stopLocked() {
	if c.state == Idle {
		return
	}

	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if s := c.session; s != nil {
		c.session = nil
		if err := s.close(); err != nil {
			c.logger.WithFields(log.Fields{"session": s.ID.String(), "error": err}).Warn("close output")
		}
		c.logger.WithFields(log.Fields{"session": s.ID.String()}).Debug("stopped")
	}

	c.setStateLocked(Stopped)
	c.setStateLocked(Idle)
}

// Close stops playback and waits for background work to finish. Later
// calls to Play return ErrClosed.
func (c *Controller) Close() error {
	c.mu.Lock()
	c.closed = true
	c.stopLocked()
	c.mu.Unlock()

	c.watchers.Wait()
	return nil
}

func (c *Controller) setStateLocked(s State) {
	if c.state == s {
		return
	}
	c.state = s
	if c.onState != nil {
		c.onState(s)
	}
}
