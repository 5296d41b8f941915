// SPDX-License-Identifier: EPL-2.0

package dualstereo

import (
	"context"
	"fmt"
	"sync"

	"github.com/ik5/dualstereo/audio"
	"github.com/ik5/dualstereo/internal/config"
	"github.com/ik5/dualstereo/internal/log"
	"github.com/ik5/dualstereo/mix"
	"github.com/ik5/dualstereo/playback"
	"github.com/ik5/dualstereo/render"
)

// Config holds the studio settings. See DefaultConfig and LoadConfig.
type Config = config.Config

func DefaultConfig() Config { return config.Default() }

// LoadConfig reads a YAML file (optional, "" skips it) and applies the
// DUALSTEREO_* environment on top of the defaults.
func LoadConfig(path string) (Config, error) { return config.Load(path) }

// Option configures a Studio.
type Option func(*Studio)

// WithOfferer replaces the default FileOfferer.
func WithOfferer(o Offerer) Option {
	return func(s *Studio) {
		if o != nil {
			s.offerer = o
		}
	}
}

func WithLogger(l log.Logger) Option {
	return func(s *Studio) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPlaybackOptions passes extra options to the playback controller.
func WithPlaybackOptions(opts ...playback.Option) Option {
	return func(s *Studio) {
		s.playbackOpts = append(s.playbackOpts, opts...)
	}
}

// Studio is the control and status surface of the two-source mixer: one
// file per side, a gain per side, live playback and rendering to WAV.
// It is safe for concurrent use.
type Studio struct {
	cfg          Config
	reg          *audio.Registry
	ctrl         *playback.Controller
	offerer      Offerer
	logger       log.Logger
	playbackOpts []playback.Option

	gainL *mix.Gain
	gainR *mix.Gain

	selMu sync.Mutex
	left  []byte
	right []byte

	statusMu sync.Mutex
	status   Status
}

// New builds a studio that decodes through reg and plays on dev.
func New(cfg Config, reg *audio.Registry, dev playback.Device, opts ...Option) (*Studio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Studio{
		cfg:     cfg,
		reg:     reg,
		offerer: FileOfferer{Dir: cfg.OutputDir},
		logger:  log.GetLogger(),
		status:  StatusNoSelection,
	}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.gainL, err = mix.NewGain(cfg.GainLeft); err != nil {
		return nil, fmt.Errorf("left gain: %w", err)
	}
	if s.gainR, err = mix.NewGain(cfg.GainRight); err != nil {
		return nil, fmt.Errorf("right gain: %w", err)
	}

	ctrlOpts := []playback.Option{
		playback.WithStartLead(cfg.StartLead()),
		playback.WithLogger(s.logger),
		playback.WithOnStateChange(s.onStateChange),
	}
	s.ctrl = playback.New(reg, dev, append(ctrlOpts, s.playbackOpts...)...)

	return s, nil
}

// SelectLeft selects the file played on the left. data is copied; an empty
// slice clears the selection.
func (s *Studio) SelectLeft(data []byte) { s.selectSide(mix.Left, data) }

// SelectRight selects the file played on the right.
func (s *Studio) SelectRight(data []byte) { s.selectSide(mix.Right, data) }

func (s *Studio) selectSide(side mix.Side, data []byte) {
	var sel []byte
	if len(data) > 0 {
		sel = append([]byte(nil), data...)
	}

	s.selMu.Lock()
	if side == mix.Left {
		s.left = sel
	} else {
		s.right = sel
	}
	complete := s.left != nil && s.right != nil
	s.selMu.Unlock()

	s.logger.WithFields(log.Fields{"side": side.String(), "bytes": len(sel)}).Debug("selected")

	if s.ctrl.State() == playback.Idle {
		if complete {
			s.setStatus(StatusIdle)
		} else {
			s.setStatus(StatusNoSelection)
		}
	}
}

func (s *Studio) selection() (left, right []byte, ok bool) {
	s.selMu.Lock()
	defer s.selMu.Unlock()

	return s.left, s.right, s.left != nil && s.right != nil
}

// SetGainLeft changes the left gain. A live session hears it on its next
// frame; the right side is untouched.
func (s *Studio) SetGainLeft(v float32) error { return s.setGain(mix.Left, s.gainL, v) }

// SetGainRight changes the right gain.
func (s *Studio) SetGainRight(v float32) error { return s.setGain(mix.Right, s.gainR, v) }

func (s *Studio) setGain(side mix.Side, g *mix.Gain, v float32) error {
	if err := g.Set(v); err != nil {
		return fmt.Errorf("%s gain: %w", side, err)
	}
	s.logger.WithFields(log.Fields{"side": side.String(), "gain": v}).Debug("gain changed")
	return nil
}

// Gains returns the current left and right gain.
func (s *Studio) Gains() (left, right float32) {
	return s.gainL.Load(), s.gainR.Load()
}

// Play starts both selected files together, replacing any live session.
func (s *Studio) Play(ctx context.Context) error {
	left, right, ok := s.selection()
	if !ok {
		s.setStatus(StatusNoSelection)
		return ErrSelectionIncomplete
	}

	err := s.ctrl.Play(ctx, left, right, s.gainL, s.gainR)
	if IsDecodeError(err) {
		s.setStatus(StatusDecodeError)
	}
	return err
}

// Stop halts playback. It does nothing when idle.
func (s *Studio) Stop() { s.ctrl.Stop() }

func (s *Studio) State() playback.State { return s.ctrl.State() }

// Session returns the live playback session, or nil.
func (s *Studio) Session() *playback.Session { return s.ctrl.Session() }

func (s *Studio) Status() Status {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	return s.status
}

func (s *Studio) setStatus(st Status) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	s.status = st
}

func (s *Studio) onStateChange(state playback.State) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	s.status = statusFor(state, s.status)
}

// RenderToFile renders the whole mix with the current gains, encodes it as
// WAV and offers it under the configured output name. It returns where the
// offerer put the file.
func (s *Studio) RenderToFile(ctx context.Context) (string, error) {
	left, right, ok := s.selection()
	if !ok {
		s.setStatus(StatusNoSelection)
		return "", ErrSelectionIncomplete
	}

	bufs, err := audio.DecodeAll(ctx, s.reg, left, right)
	if err != nil {
		if IsDecodeError(err) {
			s.setStatus(StatusDecodeError)
			return "", err
		}
		return "", s.renderFailed(err)
	}
	a, b := bufs[0], bufs[1]

	rate := s.cfg.RenderSampleRate
	if rate == 0 {
		rate = a.SampleRate
	}
	if a.SampleRate != rate || b.SampleRate != rate {
		s.logger.WithFields(log.Fields{
			"render_rate": rate,
			"left_rate":   a.SampleRate,
			"right_rate":  b.SampleRate,
		}).Warn("source rate differs from render rate, samples are used frame for frame")
	}

	var opts render.Options
	if s.cfg.MaxRenderSeconds > 0 {
		opts.MaxFrames = s.cfg.MaxRenderSeconds * rate
	}

	gainL, gainR := s.Gains()
	m, err := render.RenderContext(ctx, a, gainL, b, gainR, rate, opts)
	if err != nil {
		return "", s.renderFailed(err)
	}

	data, err := m.EncodeWAV()
	if err != nil {
		return "", s.renderFailed(err)
	}

	where, err := s.offerer.Offer(s.cfg.OutputName, data)
	if err != nil {
		return "", s.renderFailed(fmt.Errorf("offer %s: %w", s.cfg.OutputName, err))
	}

	s.logger.WithFields(log.Fields{
		"file":     where,
		"frames":   m.Frames(),
		"duration": m.Duration().String(),
	}).Info("mix rendered")
	s.setStatus(StatusRenderComplete)

	return where, nil
}

func (s *Studio) renderFailed(err error) error {
	s.setStatus(StatusRenderFailed)
	s.logger.WithFields(log.Fields{"error": err}).Warn("render failed")
	return &RenderError{Err: err}
}

// Close stops playback and waits for it to wind down.
func (s *Studio) Close() error {
	return s.ctrl.Close()
}
