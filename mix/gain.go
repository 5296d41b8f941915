// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"math"
	"strconv"
	"sync/atomic"
)

// Gain is a float32 cell shared between a control surface and a live
// stream. Loads and stores are atomic bit-casts, last write wins.
type Gain struct {
	bits atomic.Uint32
}

// NewGain returns a cell holding v, or ErrInvalidGain.
func NewGain(v float32) (*Gain, error) {
	g := &Gain{}
	if err := g.Set(v); err != nil {
		return nil, err
	}
	return g, nil
}

// Unity returns a cell holding 1.0.
func Unity() *Gain {
	g := &Gain{}
	g.bits.Store(math.Float32bits(1))
	return g
}

// Load returns the current gain. A nil cell reads as 1.0.
func (g *Gain) Load() float32 {
	if g == nil {
		return 1
	}
	return math.Float32frombits(g.bits.Load())
}

// Set stores v. Negative, NaN and infinite values are rejected and leave the
// cell unchanged.
func (g *Gain) Set(v float32) error {
	if err := ValidateGain(v); err != nil {
		return err
	}
	g.bits.Store(math.Float32bits(v))
	return nil
}

func (g *Gain) String() string {
	return strconv.FormatFloat(float64(g.Load()), 'f', -1, 32)
}

// ValidateGain reports whether v is usable as a gain.
func ValidateGain(v float32) error {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || v < 0 {
		return ErrInvalidGain
	}
	return nil
}
