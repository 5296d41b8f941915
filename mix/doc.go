// SPDX-License-Identifier: EPL-2.0

// Package mix implements the two-source hard-pan mixing law shared by live
// playback and offline rendering.
//
// # Mixing Law
//
// For every output frame:
//  1. Each source is folded to mono by equal-weight channel averaging
//     (see Fold and audio.MonoMixer).
//  2. The mono sample is multiplied by the source's gain.
//  3. The left source goes entirely to the left output channel and the
//     right source entirely to the right one. The opposite channel gets
//     exact silence.
//  4. The contributions are summed. Nothing is normalized or clamped;
//     clamping only happens when samples are quantized for output.
//
// A source that has run out contributes silence, so the shorter input trails
// into zeros instead of shortening the mix.
//
// # Live Gain
//
// Gain is a lock-free cell. A Stream reads both cells once per frame, so a
// Set from another goroutine takes effect on the next frame without
// restarting playback:
//
//	left, _ := mix.NewGain(1)
//	right, _ := mix.NewGain(0.5)
//	s := mix.NewStream(mix.Graph{
//	    Left:  mix.Source{Samples: a.Mono(), Gain: left},
//	    Right: mix.Source{Samples: b.Mono(), Gain: right},
//	}, leadFrames)
//	_ = right.Set(0.8) // heard on the next frame
//
// Frame is the single implementation of steps 2 to 4; render and Stream both
// call it, so a live stream and an offline render of the same inputs produce
// bit-identical samples.
package mix
