// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// WAVSpec describes a RIFF/WAVE file to synthesize. Data is the raw payload of
// the data chunk; Extra chunks are written between fmt and data.
type WAVSpec struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	Format        uint16
	Extra         []Chunk
	Data          []byte
}

// Chunk is a raw RIFF sub-chunk.
type Chunk struct {
	ID   string
	Body []byte
}

// Bytes serializes s as a RIFF/WAVE file. Odd-sized chunks are padded as RIFF requires.
func (s WAVSpec) Bytes() []byte {
	format := s.Format
	if format == 0 {
		format = 1
	}
	blockAlign := s.Channels * s.BitsPerSample / 8

	var body bytes.Buffer
	body.WriteString("WAVE")

	fmtChunk := new(bytes.Buffer)
	binary.Write(fmtChunk, binary.LittleEndian, format)
	binary.Write(fmtChunk, binary.LittleEndian, uint16(s.Channels))
	binary.Write(fmtChunk, binary.LittleEndian, uint32(s.SampleRate))
	binary.Write(fmtChunk, binary.LittleEndian, uint32(s.SampleRate*blockAlign))
	binary.Write(fmtChunk, binary.LittleEndian, uint16(blockAlign))
	binary.Write(fmtChunk, binary.LittleEndian, uint16(s.BitsPerSample))
	writeChunk(&body, "fmt ", fmtChunk.Bytes())

	for _, c := range s.Extra {
		writeChunk(&body, c.ID, c.Body)
	}
	writeChunk(&body, "data", s.Data)

	var out bytes.Buffer
	out.WriteString("RIFF")
	binary.Write(&out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func writeChunk(w *bytes.Buffer, id string, body []byte) {
	w.WriteString(id)
	binary.Write(w, binary.LittleEndian, uint32(len(body)))
	w.Write(body)
	if len(body)%2 == 1 {
		w.WriteByte(0)
	}
}

// PCM16WAV returns a canonical 16-bit PCM WAV holding interleaved samples.
func PCM16WAV(sampleRate, channels int, samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(v))
	}
	return WAVSpec{
		SampleRate:    sampleRate,
		Channels:      channels,
		BitsPerSample: 16,
		Data:          data,
	}.Bytes()
}

// ToneWAV returns frames frames of a sine tone at amplitude amp on every channel.
func ToneWAV(sampleRate, channels, frames int, freq, amp float64) []byte {
	samples := make([]int16, frames*channels)
	for f := range frames {
		v := int16(amp * 32767 * math.Sin(2*math.Pi*freq*float64(f)/float64(sampleRate)))
		for c := range channels {
			samples[f*channels+c] = v
		}
	}
	return PCM16WAV(sampleRate, channels, samples)
}

// ConstantWAV returns a mono 16-bit WAV whose every sample is v.
func ConstantWAV(sampleRate, frames int, v int16) []byte {
	samples := make([]int16, frames)
	for i := range samples {
		samples[i] = v
	}
	return PCM16WAV(sampleRate, 1, samples)
}
