// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files and encodes 16-bit PCM stereo WAV.
//
// It uses github.com/go-audio/wav to walk the chunk list, so files whose fmt
// and data chunks are separated by LIST, fact or other chunks decode fine.
//
// # Supported Input
//
//   - PCM (format tag 1) and WAVE_FORMAT_EXTENSIBLE
//   - 16, 24 and 32 bits per sample
//   - Any channel count and any sample rate
//
// 8-bit and IEEE float files are rejected with ErrUnsupportedBitDepth and
// ErrUnsupportedEncoding.
//
// # Decoding
//
//	source, err := wav.Decoder{}.Decode(bytes.NewReader(data))
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// Samples come out interleaved as float32, scaled by 2^(bits-1).
//
// # Encoding
//
// WriteStereo16 writes a canonical 44-byte header followed by interleaved
// little-endian int16 frames:
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     36 + data size
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      2     1 (PCM)
//	22      2     2 (channels)
//	24      4     sample rate
//	28      4     sample rate * 4
//	32      2     4 (block align)
//	34      2     16 (bits per sample)
//	36      4     "data"
//	40      4     frames * 4
//
// Samples are clamped to [-1, 1] and quantized asymmetrically: negative
// values scale by 32768, the rest by 32767. See utils.QuantizePCM16.
package wav
