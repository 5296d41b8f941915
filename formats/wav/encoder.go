// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/dualstereo/utils"
)

const (
	// HeaderSize is the length of the canonical RIFF/fmt/data header.
	HeaderSize = 44

	stereo        = 2
	bitsPerSample = 16
	bytesPerFrame = stereo * bitsPerSample / 8
)

// MaxFrames is the longest file Header accepts: ChunkSize (36 + data) must
// fit in a uint32.
const MaxFrames = (math.MaxUint32 - (HeaderSize - 8)) / bytesPerFrame

// Header builds the 44-byte header of a 16-bit PCM stereo WAV holding frames frames.
func Header(sampleRate, frames int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if frames < 0 || frames > MaxFrames {
		return nil, ErrTooLarge
	}

	dataSize := uint32(frames * bytesPerFrame)
	header := make([]byte, HeaderSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], HeaderSize-8+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], stereo)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate)*bytesPerFrame)
	binary.LittleEndian.PutUint16(header[32:34], bytesPerFrame)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header, nil
}

// WriteStereo16 writes left and right as an interleaved 16-bit PCM stereo
// WAV. Samples are quantized with utils.QuantizePCM16. Nothing is written
// when the arguments are invalid.
func WriteStereo16(w io.Writer, sampleRate int, left, right []float32) error {
	if len(left) != len(right) {
		return ErrChannelMismatch
	}
	header, err := Header(sampleRate, len(left))
	if err != nil {
		return err
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	const chunkFrames = 4096
	if len(left) == 0 {
		return nil
	}
	buf := make([]byte, min(len(left), chunkFrames)*bytesPerFrame)

	for i := 0; i < len(left); i += chunkFrames {
		end := min(i+chunkFrames, len(left))
		out := buf[:(end-i)*bytesPerFrame]

		for j := i; j < end; j++ {
			o := (j - i) * bytesPerFrame
			binary.LittleEndian.PutUint16(out[o:], uint16(utils.QuantizePCM16(left[j])))
			binary.LittleEndian.PutUint16(out[o+2:], uint16(utils.QuantizePCM16(right[j])))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("write data: %w", err)
		}
	}

	return nil
}

// EncodeStereo16 returns the complete file produced by WriteStereo16.
// Its length is always HeaderSize + 4*len(left).
func EncodeStereo16(sampleRate int, left, right []float32) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(left)*bytesPerFrame)

	if err := WriteStereo16(&buf, sampleRate, left, right); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
