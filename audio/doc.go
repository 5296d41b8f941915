// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding contract and in-memory sample buffers.
//
// This package contains the building blocks every other part of dualstereo
// reads from:
//   - Source interface for streaming decoder output
//   - Decoder interface and a Registry that detects containers by content
//   - Buffer, a fully decoded, immutable, planar sample buffer
//   - MonoMixer, the equal-weight channel fold
//
// # Source Interface
//
// Format decoders stream interleaved float32 samples through Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Decoding Whole Files
//
// Sources are never played directly. ReadAll drains one into a Buffer, and
// DecodeBytes goes from raw file bytes to a Buffer in one call:
//
//	reg := formats.NewRegistry()
//	buf, err := audio.DecodeBytes(reg, data)
//	var decErr *audio.DecodeError
//	if errors.As(err, &decErr) {
//	    // unsupported, truncated or corrupt input
//	}
//
// The decoder's native sample rate and channel count are kept as they are.
// No resampling and no down-mixing happen here.
//
// # Content Detection
//
// Input arrives as opaque bytes without a file name, so the Registry picks a
// decoder by sniffing the first bytes of the data:
//
//	registry := audio.NewRegistry()
//	registry.RegisterSniffer("wav", wav.Decoder{}, wav.Sniff)
//	format, decoder, err := registry.Detect(data)
//
// # Folding to Mono
//
// Buffer.Mono averages all channels of every frame with equal weight, using
// the same arithmetic as MonoMixer:
//
//	mono := buf.Mono() // len(mono) == buf.Frames()
//
// A mono buffer returns its single channel unchanged.
//
// # Sample Format
//
// Audio samples are represented as float32 in the nominal range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Values may exceed the range after gain is applied; clamping only happens
// when samples are quantized for output.
package audio
