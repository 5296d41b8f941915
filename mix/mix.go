// SPDX-License-Identifier: EPL-2.0

package mix

import "github.com/ik5/dualstereo/audio"

// Side is the fixed pan position of a source: -1 for Left, +1 for Right.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Pan returns the pan value the side stands for.
func (s Side) Pan() float32 {
	if s == Left {
		return -1
	}
	return 1
}

// Fold returns buf folded to one channel. Mono buffers pass through.
func Fold(buf *audio.Buffer) []float32 {
	return buf.Mono()
}

// Contribution is one source's share of an output frame: the gained sample
// on its own side and exact silence on the other.
func Contribution(side Side, sample, gain float32) (l, r float32) {
	v := sample * gain
	if side == Left {
		return v, 0
	}
	return 0, v
}

// Frame mixes frame i of the folded sources a (panned left) and b (panned
// right). An index past the end of a source reads as silence.
func Frame(a, b []float32, i int, gainA, gainB float32) (l, r float32) {
	var sa, sb float32
	if i < len(a) {
		sa = a[i]
	}
	if i < len(b) {
		sb = b[i]
	}

	la, ra := Contribution(Left, sa, gainA)
	lb, rb := Contribution(Right, sb, gainB)
	return la + lb, ra + rb
}

// Frames is the length of the longer of the two inputs.
func Frames(a, b []float32) int {
	return max(len(a), len(b))
}

// Source is one folded input of a Graph together with its live gain.
type Source struct {
	Samples []float32
	Gain    *Gain
}

// Graph wires the left and right sources of a mix.
type Graph struct {
	Left  Source
	Right Source
}

func (g Graph) Frames() int {
	return Frames(g.Left.Samples, g.Right.Samples)
}

// Frame mixes frame i with the gains as they are right now.
func (g Graph) Frame(i int) (l, r float32) {
	return Frame(g.Left.Samples, g.Right.Samples, i, g.Left.Gain.Load(), g.Right.Gain.Load())
}
