// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/dualstereo"
	"github.com/ik5/dualstereo/playback"
)

const controlHelp = `commands:
  left <gain>    set the left gain
  right <gain>   set the right gain
  play           restart playback from the top
  stop           stop playback
  status         show the current status
  quit           stop and exit`

func newPlayCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play LEFT RIGHT",
		Short: "Play both files live, reading control commands from stdin",
		Long: `Play both files live. Both start together after a short lead.

While playing, commands are read from stdin one per line:

` + controlHelp + `

When stdin closes, dualstereo waits for playback to finish.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			dev, err := newDevice(cfg)
			if err != nil {
				return err
			}

			studio, err := newStudio(cfg, dev, newLogger(opts), args[0], args[1])
			if err != nil {
				return err
			}
			defer studio.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := studio.Play(ctx); err != nil {
				red.Fprintln(cmd.ErrOrStderr(), studio.Status())
				return err
			}
			yellow.Fprintln(cmd.OutOrStdout(), studio.Status())

			return control(ctx, studio, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addMixFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.device, "device", "d", "", "output device: oto, portaudio or null")

	return cmd
}

// pollInterval is how often control checks for the end of playback once
// stdin has closed.
const pollInterval = 50 * time.Millisecond

// control applies commands from in until quit, or until in is exhausted and
// playback ended. Bad commands are reported and skipped.
func control(ctx context.Context, studio *dualstereo.Studio, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	var ticker *time.Ticker
	var tick <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			studio.Stop()
			return nil
		case <-tick:
			if studio.State() == playback.Idle {
				return nil
			}
		case line, ok := <-lines:
			if !ok {
				lines = nil
				ticker = time.NewTicker(pollInterval)
				tick = ticker.C
				continue
			}
			quit, err := apply(ctx, studio, line, out)
			if err != nil {
				red.Fprintln(out, err)
			}
			if quit {
				studio.Stop()
				return nil
			}
		}
	}
}

// apply runs one control line.
func apply(ctx context.Context, studio *dualstereo.Studio, line string, out io.Writer) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "left", "right":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: %s <gain>", cmd)
		}
		v, err := strconv.ParseFloat(fields[1], 32)
		if err != nil {
			return false, fmt.Errorf("bad gain %q", fields[1])
		}
		if cmd == "left" {
			err = studio.SetGainLeft(float32(v))
		} else {
			err = studio.SetGainRight(float32(v))
		}
		if err != nil {
			return false, err
		}
		l, r := studio.Gains()
		yellow.Fprintf(out, "gains: left %g right %g\n", l, r)
	case "play":
		if err := studio.Play(ctx); err != nil {
			return false, err
		}
		yellow.Fprintln(out, studio.Status())
	case "stop":
		studio.Stop()
		yellow.Fprintln(out, studio.Status())
	case "status":
		printStatus(studio, out)
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(out, controlHelp)
	default:
		return false, fmt.Errorf("unknown command %q (try help)", fields[0])
	}

	return false, nil
}

func printStatus(studio *dualstereo.Studio, out io.Writer) {
	l, r := studio.Gains()
	yellow.Fprintf(out, "%s [%s] gains: left %g right %g", studio.Status(), studio.State(), l, r)
	if s := studio.Session(); s != nil {
		yellow.Fprintf(out, " position: %s", s.Position().Round(time.Millisecond))
	}
	fmt.Fprintln(out)
}
