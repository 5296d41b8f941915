// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// QuantizePCM16 converts a float sample to signed 16-bit PCM.
// The sample is clamped to [-1, 1]; negative values scale by 32768 and
// non-negative values by 32767, rounding half away from zero, so -1 maps to
// -32768 and 1 maps to 32767. NaN maps to 0.
func QuantizePCM16(x float32) int16 {
	if x != x {
		return 0
	}
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(math.Round(float64(x) * 32768))
	}
	return int16(math.Round(float64(x) * 32767))
}

// PCM16ToFloat32 maps a 16-bit sample back to [-1, 1) using the decoder
// convention of dividing by 32768.
func PCM16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
