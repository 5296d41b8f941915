// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into one audio.Registry.
package formats

import (
	"github.com/ik5/dualstereo/audio"
	"github.com/ik5/dualstereo/formats/aiff"
	"github.com/ik5/dualstereo/formats/mp3"
	"github.com/ik5/dualstereo/formats/vorbis"
	"github.com/ik5/dualstereo/formats/wav"
)

// Format keys used by NewRegistry.
const (
	WAV    = "wav"
	MP3    = "mp3"
	Vorbis = "ogg"
	AIFF   = "aiff"
)

// NewRegistry returns a registry with WAV, MP3, Ogg Vorbis and AIFF
// registered for content detection. The container sniffers (RIFF, OggS,
// FORM) run before the MP3 frame-sync check, which is the loosest.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.RegisterSniffer(WAV, wav.Decoder{}, wav.Sniff)
	reg.RegisterSniffer(Vorbis, vorbis.Decoder{}, vorbis.Sniff)
	reg.RegisterSniffer(AIFF, aiff.Decoder{}, aiff.Sniff)
	reg.RegisterSniffer(MP3, mp3.Decoder{}, mp3.Sniff)
	return reg
}
