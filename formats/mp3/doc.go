// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG audio Layer III using github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so a mono MP3 comes out as two
// identical channels. Folding that back to mono gives the original signal.
//
//	src, err := mp3.Decoder{}.Decode(bytes.NewReader(data))
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    // no decodable frame
//	}
//
// Sniff recognizes an ID3v2 tag or a Layer III frame sync at the start of
// the data. It does not accept Layer I/II or ADTS AAC.
package mp3
