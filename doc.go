// SPDX-License-Identifier: EPL-2.0

// Package dualstereo mixes two audio files into one stereo signal: the left
// file is hard-panned to the left channel, the right file to the right
// channel, each with its own gain.
//
// The mix can be heard live or rendered to a 16-bit PCM stereo WAV file.
// Both paths use the same per-frame mixing law (see package mix), so a
// rendered file holds exactly what playback sends to the device.
//
// # Supported Formats
//
// Inputs are opaque bytes; the container is detected from its content:
//   - WAV (PCM 16, 24 and 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16, 24 and 32-bit) via formats/aiff
//
// Multi-channel inputs are folded to mono by averaging their channels.
//
// # Quick Start
//
//	cfg := dualstereo.DefaultConfig()
//	studio, err := dualstereo.New(cfg, formats.NewRegistry(), &oto.Device{})
//	if err != nil {
//	    return err
//	}
//	defer studio.Close()
//
//	studio.SelectLeft(guitar)
//	studio.SelectRight(vocals)
//	studio.SetGainRight(0.5)
//
//	if err := studio.Play(ctx); err != nil {
//	    return err
//	}
//	...
//	studio.Stop()
//
//	path, err := studio.RenderToFile(ctx) // DualStereo_Mix.wav
//
// # Errors
//
// Every failure leaves the studio idle and is reported once:
//   - ErrSelectionIncomplete when a side has no file
//   - *audio.DecodeError when a file cannot be decoded (IsDecodeError)
//   - *RenderError when rendering, encoding or offering fails (IsRenderFailure)
//
// # Sample Rates
//
// Playback runs at the left file's rate and renders default to it too
// (Config.RenderSampleRate overrides). There is no sample-rate conversion:
// a source at another rate is used frame for frame and a warning is logged.
package dualstereo
