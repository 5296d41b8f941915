// SPDX-License-Identifier: EPL-2.0

package playback

// State of a Controller.
type State int32

const (
	Idle State = iota
	Loading
	Playing
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
