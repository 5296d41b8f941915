// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestQuantizePCM16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: math.MinInt16},
		{name: "half positive", input: 0.5, want: 16384},   // 16383.5 rounds away from zero
		{name: "half negative", input: -0.5, want: -16384}, // exactly -16384
		{name: "quarter positive", input: 0.25, want: 8192},
		{name: "small positive", input: 0.001, want: 33},
		{name: "small negative", input: -0.001, want: -33},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp over min", input: -1.5, want: math.MinInt16},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt16},
		{name: "clamp way under min", input: -100.0, want: math.MinInt16},
		{name: "positive infinity", input: float32(math.Inf(1)), want: math.MaxInt16},
		{name: "negative infinity", input: float32(math.Inf(-1)), want: math.MinInt16},
		{name: "nan", input: float32(math.NaN()), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := QuantizePCM16(tt.input); got != tt.want {
				t.Errorf("QuantizePCM16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestQuantizePCM16Range checks that no input escapes the int16 range and
// that the asymmetric scale is used on each side of zero.
func TestQuantizePCM16Range(t *testing.T) {
	t.Parallel()

	for i := -200; i <= 200; i++ {
		f := float32(i) / 100
		got := int32(QuantizePCM16(f))
		if got < math.MinInt16 || got > math.MaxInt16 {
			t.Fatalf("QuantizePCM16(%v) = %v, outside int16 range", f, got)
		}

		clamped := math.Max(-1, math.Min(1, float64(f)))
		scale := 32767.0
		if clamped < 0 {
			scale = 32768.0
		}
		if want := int32(math.Round(clamped * scale)); got != want {
			t.Errorf("QuantizePCM16(%v) = %v, want %v", f, got, want)
		}
	}
}

func TestQuantizePCM16Monotonic(t *testing.T) {
	t.Parallel()

	prev := QuantizePCM16(-1.0)
	for f := -0.999; f <= 1.0; f += 0.001 {
		curr := QuantizePCM16(float32(f))
		if curr < prev {
			t.Errorf("QuantizePCM16 not monotonic: f=%v gives %v, previous %v", f, curr, prev)
		}
		prev = curr
	}
}

// TestPCM16RoundTrip checks that dequantize then quantize stays within one
// step for every 16-bit value.
func TestPCM16RoundTrip(t *testing.T) {
	t.Parallel()

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		got := QuantizePCM16(PCM16ToFloat32(int16(v)))
		if d := int(got) - v; d > 1 || d < -1 {
			t.Fatalf("round trip of %d gave %d", v, got)
		}
	}
}

func TestQuantizePCM16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = QuantizePCM16(0.5)
	})

	if allocs > 0 {
		t.Errorf("QuantizePCM16 allocated %v times, want 0", allocs)
	}
}

func BenchmarkQuantizePCM16(b *testing.B) {
	samples := make([]float32, 44100)
	out := make([]int16, len(samples))
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ReportAllocs()

	for b.Loop() {
		for j := range samples {
			out[j] = QuantizePCM16(samples[j])
		}
	}
}
