// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"time"

	"github.com/rs/xid"

	"github.com/ik5/dualstereo/mix"
)

// Session is one live playback. Both sources begin at StartAt.
type Session struct {
	ID         xid.ID
	StartAt    time.Time
	SampleRate int
	// Frames is the length of the mix without the lead.
	Frames int

	stream *mix.Stream
	out    Output
}

// Position is how far into the mix the output has pulled. It is negative
// while the lead is still playing.
func (s *Session) Position() time.Duration {
	frames := s.stream.Position() - s.stream.Lead()
	return time.Duration(int64(frames) * int64(time.Second) / int64(s.SampleRate))
}

// close tears down the stream first so the output sees io.EOF, then the
// output itself.
func (s *Session) close() error {
	_ = s.stream.Close()
	return s.out.Close()
}
