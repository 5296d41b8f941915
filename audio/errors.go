// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrNoChannels        = errors.New("buffer has no channels")
	ErrRaggedChannels    = errors.New("channels differ in length")
	ErrEmptyInput        = errors.New("empty input")
	ErrUnknownFormat     = errors.New("unrecognized audio container")
	ErrNoSamples         = errors.New("stream holds no complete frames")
)

// DecodeError reports that raw input bytes could not be turned into a Buffer.
// Format is empty when the container could not be identified.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
