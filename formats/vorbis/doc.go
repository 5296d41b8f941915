// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis using github.com/jfreymuth/oggvorbis.
//
// Samples come out interleaved as float32 at the stream's native rate and
// channel count:
//
//	src, err := vorbis.Decoder{}.Decode(bytes.NewReader(data))
//	if errors.Is(err, vorbis.ErrNotVorbisFile) {
//	    // not Ogg, or Ogg carrying another codec
//	}
//
// Sniff looks for an "OggS" capture pattern whose first packet is a Vorbis
// identification header, so Ogg Opus and Ogg FLAC are not claimed.
package vorbis
