// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	ErrSelectionIncomplete = errors.New("both sources must be selected")
	ErrStopped             = errors.New("playback stopped before it started")
	ErrNoDevice            = errors.New("no output device")
	ErrClosed              = errors.New("controller closed")
	ErrInvalidOutput       = errors.New("output needs a positive sample rate and channel count")
)
