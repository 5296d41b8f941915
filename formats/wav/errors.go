// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = errors.New("only 16, 24 and 32-bit integer PCM supported")
	ErrUnsupportedEncoding  = errors.New("only integer PCM WAV supported")
	ErrInvalidSampleRate    = errors.New("sample rate must be positive")
	ErrChannelMismatch      = errors.New("left and right channels differ in length")
	ErrTooLarge             = errors.New("audio too long for a RIFF container")
)
