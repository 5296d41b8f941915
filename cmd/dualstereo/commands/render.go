// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"github.com/spf13/cobra"

	"github.com/ik5/dualstereo/playback"
)

func newRenderCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render LEFT RIGHT",
		Short: "Render both files to a 16-bit stereo WAV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			// Rendering never touches an audio device.
			studio, err := newStudio(cfg, playback.NullDevice{}, newLogger(opts), args[0], args[1])
			if err != nil {
				return err
			}
			defer studio.Close()

			where, err := studio.RenderToFile(cmd.Context())
			if err != nil {
				red.Fprintln(cmd.ErrOrStderr(), studio.Status())
				return err
			}

			green.Fprintln(cmd.OutOrStdout(), studio.Status())
			yellow.Fprintln(cmd.OutOrStdout(), where)
			return nil
		},
	}

	addMixFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.outputDir, "out-dir", "o", ".", "directory the mix is written to")
	cmd.Flags().StringVar(&opts.outputName, "name", "", "file name of the mix (default DualStereo_Mix.wav)")

	return cmd
}
