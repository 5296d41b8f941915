// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF and uncompressed AIFF-C using
// github.com/go-audio/aiff.
//
// 16, 24 and 32-bit big-endian PCM is supported at any rate and channel
// count. Samples come out interleaved as float32 scaled by 2^(bits-1).
//
//	src, err := aiff.Decoder{}.Decode(bytes.NewReader(data))
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not a FORM/AIFF container
//	}
//
// Readers that cannot seek are buffered in memory first.
package aiff
