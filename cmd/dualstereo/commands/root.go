// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/dualstereo"
	"github.com/ik5/dualstereo/device/oto"
	"github.com/ik5/dualstereo/device/portaudio"
	"github.com/ik5/dualstereo/formats"
	"github.com/ik5/dualstereo/internal/config"
	"github.com/ik5/dualstereo/internal/log"
	"github.com/ik5/dualstereo/playback"
)

var (
	yellow = color.New(color.FgYellow)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
)

// options are the flags shared by every command.
type options struct {
	configPath string
	verbose    bool
	gainLeft   float32
	gainRight  float32
	device     string
	outputDir  string
	outputName string
	renderRate int
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "dualstereo",
		Short: "Mix two audio files hard left and hard right",
		Long: `dualstereo - mix two audio files into one stereo signal.

The first file plays on the left channel, the second on the right, each
with its own gain. Inputs may be WAV, MP3, Ogg Vorbis or AIFF; the format
is detected from the content.

Settings come from an optional YAML file (--config) and DUALSTEREO_*
environment variables; flags override both.

Examples:
  # Render to ./DualStereo_Mix.wav with the right side at half volume
  dualstereo render guitar.wav vocals.mp3 --gain-right 0.5

  # Play live and adjust gains from stdin
  dualstereo play guitar.wav vocals.mp3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newPlayCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// addMixFlags registers the flags that tune a mix.
func addMixFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().Float32Var(&opts.gainLeft, "gain-left", 1, "gain of the left file")
	cmd.Flags().Float32Var(&opts.gainRight, "gain-right", 1, "gain of the right file")
	cmd.Flags().IntVar(&opts.renderRate, "rate", 0, "render sample rate in Hz (0 = rate of the left file)")
}

// loadConfig merges the config file, the environment and any flags the user
// set explicitly.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("gain-left") {
		cfg.GainLeft = opts.gainLeft
	}
	if flags.Changed("gain-right") {
		cfg.GainRight = opts.gainRight
	}
	if flags.Changed("rate") {
		cfg.RenderSampleRate = opts.renderRate
	}
	if flags.Changed("device") {
		cfg.Device = opts.device
	}
	if flags.Changed("out-dir") {
		cfg.OutputDir = opts.outputDir
	}
	if flags.Changed("name") {
		cfg.OutputName = opts.outputName
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(opts *options) *logrus.Logger {
	l := log.GetLogger()
	log.SetVerbose(l, opts.verbose)
	return l
}

func newDevice(cfg config.Config) (playback.Device, error) {
	switch cfg.Device {
	case config.DeviceOto:
		return &oto.Device{}, nil
	case config.DevicePortAudio:
		return portaudio.Device{BufferFrames: cfg.BufferFrames}, nil
	case config.DeviceNull:
		return playback.NullDevice{BufferFrames: cfg.BufferFrames}, nil
	default:
		return nil, fmt.Errorf("%w: unknown device %q", config.ErrInvalidConfig, cfg.Device)
	}
}

// newStudio builds a studio with both files selected.
func newStudio(cfg config.Config, dev playback.Device, logger *logrus.Logger, leftPath, rightPath string, opts ...dualstereo.Option) (*dualstereo.Studio, error) {
	left, err := os.ReadFile(leftPath)
	if err != nil {
		return nil, fmt.Errorf("read left file: %w", err)
	}
	right, err := os.ReadFile(rightPath)
	if err != nil {
		return nil, fmt.Errorf("read right file: %w", err)
	}

	opts = append([]dualstereo.Option{dualstereo.WithLogger(logger)}, opts...)
	studio, err := dualstereo.New(cfg, formats.NewRegistry(), dev, opts...)
	if err != nil {
		return nil, err
	}
	studio.SelectLeft(left)
	studio.SelectRight(right)

	return studio, nil
}
