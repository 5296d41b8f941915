// SPDX-License-Identifier: EPL-2.0

// Package playback drives live playback of a two-source mix.
//
// A Controller walks through a small state machine:
//
//	Idle → Loading → Playing → Stopped → Idle
//
// Stopped is transient and is immediately followed by Idle. Play decodes both
// inputs concurrently, wires them into a mix.Graph and hands one mix.Stream to
// a Device. Both sources live in that single stream, so they start on the
// same frame after a short lead of silence:
//
//	ctrl := playback.New(formats.NewRegistry(), playback.NullDevice{})
//	defer ctrl.Close()
//
//	left, right := mix.Unity(), mix.Unity()
//	if err := ctrl.Play(ctx, leftBytes, rightBytes, left, right); err != nil {
//	    return err
//	}
//	right.Set(0.5) // heard on the next frame
//
// Calling Play while a session is live stops it first, so at most one
// session is ever audible. Stop on an idle controller does nothing.
//
// The output rate of a session is the left source's native rate. A right
// source at another rate is played frame for frame, without conversion.
package playback
