// SPDX-License-Identifier: EPL-2.0

package dualstereo

import "github.com/ik5/dualstereo/playback"

// Status is a human readable line describing what the studio last did.
type Status string

const (
	StatusNoSelection    Status = "Please upload both audio files."
	StatusIdle           Status = "Ready."
	StatusLoading        Status = "Loading audio..."
	StatusPlaying        Status = "Playing."
	StatusStopped        Status = "Stopped."
	StatusDecodeError    Status = "Could not decode one of the audio files."
	StatusRenderComplete Status = "Mix rendered."
	StatusRenderFailed   Status = "Rendering failed."
)

func (s Status) String() string { return string(s) }

// statusFor maps a controller transition to a status. Idle keeps a Stopped
// status so a stop stays visible.
func statusFor(state playback.State, prev Status) Status {
	switch state {
	case playback.Loading:
		return StatusLoading
	case playback.Playing:
		return StatusPlaying
	case playback.Stopped:
		return StatusStopped
	default:
		if prev == StatusStopped {
			return prev
		}
		return StatusIdle
	}
}
