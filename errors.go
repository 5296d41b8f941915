// SPDX-License-Identifier: EPL-2.0

package dualstereo

import (
	"errors"

	"github.com/ik5/dualstereo/audio"
	"github.com/ik5/dualstereo/playback"
)

// ErrSelectionIncomplete is returned by Play and RenderToFile when a side
// has no file selected. Nothing changes state.
var ErrSelectionIncomplete = playback.ErrSelectionIncomplete

// RenderError wraps anything that went wrong while computing, encoding or
// offering a mix. No file is offered when it is returned.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "render: " + e.Err.Error() }

func (e *RenderError) Unwrap() error { return e.Err }

// IsDecodeError reports whether err came from decoding a selected file.
func IsDecodeError(err error) bool {
	var decErr *audio.DecodeError
	return errors.As(err, &decErr)
}

// IsRenderFailure reports whether err is a *RenderError.
func IsRenderFailure(err error) bool {
	var renderErr *RenderError
	return errors.As(err, &renderErr)
}
