// SPDX-License-Identifier: EPL-2.0

// Package config loads dualstereo settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/ik5/dualstereo/mix"
)

// Output devices.
const (
	DeviceOto       = "oto"
	DevicePortAudio = "portaudio"
	DeviceNull      = "null"
)

// DefaultOutputName is the file name offered for a rendered mix.
const DefaultOutputName = "DualStereo_Mix.wav"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds every runtime setting. Zero RenderSampleRate renders at the
// left source's native rate; zero MaxRenderSeconds keeps only the WAV size
// limit.
type Config struct {
	Device           string  `yaml:"device"`
	StartLeadMS      int     `yaml:"start_lead_ms"`
	RenderSampleRate int     `yaml:"render_sample_rate"`
	OutputName       string  `yaml:"output_name"`
	OutputDir        string  `yaml:"output_dir"`
	BufferFrames     int     `yaml:"buffer_frames"`
	GainLeft         float32 `yaml:"gain_left"`
	GainRight        float32 `yaml:"gain_right"`
	MaxRenderSeconds int     `yaml:"max_render_seconds"`
}

func Default() Config {
	return Config{
		Device:       DeviceOto,
		StartLeadMS:  100,
		OutputName:   DefaultOutputName,
		OutputDir:    ".",
		BufferFrames: 1024,
		GainLeft:     1,
		GainRight:    1,
	}
}

// StartLead is StartLeadMS as a duration.
func (c Config) StartLead() time.Duration {
	return time.Duration(c.StartLeadMS) * time.Millisecond
}

// Load starts from Default, overlays the YAML file at path when path is not
// empty, then the DUALSTEREO_* environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes c to path as YAML.
func Save(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from DUALSTEREO_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("DUALSTEREO_DEVICE"); ok && v != "" {
		c.Device = v
	}
	if v, ok := lookup("DUALSTEREO_OUTPUT_NAME"); ok && v != "" {
		c.OutputName = v
	}
	if v, ok := lookup("DUALSTEREO_OUTPUT_DIR"); ok && v != "" {
		c.OutputDir = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"DUALSTEREO_START_LEAD_MS", &c.StartLeadMS},
		{"DUALSTEREO_RENDER_RATE", &c.RenderSampleRate},
		{"DUALSTEREO_BUFFER_FRAMES", &c.BufferFrames},
		{"DUALSTEREO_MAX_RENDER_SECONDS", &c.MaxRenderSeconds},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, e.key, err)
		}
		*e.dst = n
	}

	gains := []struct {
		key string
		dst *float32
	}{
		{"DUALSTEREO_GAIN_LEFT", &c.GainLeft},
		{"DUALSTEREO_GAIN_RIGHT", &c.GainRight},
	}
	for _, e := range gains {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, e.key, err)
		}
		*e.dst = float32(f)
	}

	return nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Device {
	case DeviceOto, DevicePortAudio, DeviceNull:
	default:
		return fmt.Errorf("%w: unknown device %q", ErrInvalidConfig, c.Device)
	}

	switch {
	case c.StartLeadMS < 0:
		return fmt.Errorf("%w: start_lead_ms must not be negative", ErrInvalidConfig)
	case c.RenderSampleRate < 0:
		return fmt.Errorf("%w: render_sample_rate must not be negative", ErrInvalidConfig)
	case c.BufferFrames <= 0:
		return fmt.Errorf("%w: buffer_frames must be positive", ErrInvalidConfig)
	case c.MaxRenderSeconds < 0:
		return fmt.Errorf("%w: max_render_seconds must not be negative", ErrInvalidConfig)
	case c.OutputName == "" || c.OutputName == "." || c.OutputName == ".." ||
		strings.ContainsAny(c.OutputName, `/\`) || c.OutputName != filepath.Base(c.OutputName):
		return fmt.Errorf("%w: output_name %q must be a plain file name", ErrInvalidConfig, c.OutputName)
	}

	if err := mix.ValidateGain(c.GainLeft); err != nil {
		return fmt.Errorf("%w: gain_left: %w", ErrInvalidConfig, err)
	}
	if err := mix.ValidateGain(c.GainRight); err != nil {
		return fmt.Errorf("%w: gain_right: %w", ErrInvalidConfig, err)
	}
	return nil
}
