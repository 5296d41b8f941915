// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/dualstereo/formats/wav"
	"github.com/ik5/dualstereo/internal/audiotest"
)

// Example_decoding demonstrates decoding a WAV file.
func Example_decoding() {
	wavData := audiotest.PCM16WAV(16000, 1, []int16{100, 200, 300, 400, 500})

	source, err := wav.Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())

	buf := make([]float32, 10)
	n, err := source.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Read %d samples\n", n)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Read 5 samples
}

// Example_encoding writes one second of stereo silence.
func Example_encoding() {
	left := make([]float32, 44100)
	right := make([]float32, 44100)

	data, err := wav.EncodeStereo16(44100, left, right)
	if err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	fmt.Printf("File size: %d bytes\n", len(data))
	fmt.Printf("ChunkSize: %d\n", binary.LittleEndian.Uint32(data[4:8]))
	fmt.Printf("ByteRate: %d\n", binary.LittleEndian.Uint32(data[28:32]))
	fmt.Printf("Subchunk2Size: %d\n", binary.LittleEndian.Uint32(data[40:44]))
	// Output:
	// File size: 176444 bytes
	// ChunkSize: 176436
	// ByteRate: 176400
	// Subchunk2Size: 176400
}

// Example_quantization shows the asymmetric float to int16 mapping.
func Example_quantization() {
	left := []float32{-1.5, -1, -0.5, 0, 0.5, 1, 1.5}
	right := make([]float32, len(left))

	data, _ := wav.EncodeStereo16(8000, left, right)

	for i, v := range left {
		s := int16(binary.LittleEndian.Uint16(data[wav.HeaderSize+i*4:]))
		fmt.Printf("%+.1f -> %d\n", v, s)
	}
	// Output:
	// -1.5 -> -32768
	// -1.0 -> -32768
	// -0.5 -> -16384
	// +0.0 -> 0
	// +0.5 -> 16384
	// +1.0 -> 32767
	// +1.5 -> 32767
}

// Example_errorNotWAV shows handling of invalid WAV files.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("This is not a WAV file")))

	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Detected: Not a valid WAV file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid WAV file
}

// Example_emptyMix shows that a zero-frame mix is a bare header.
func Example_emptyMix() {
	data, err := wav.EncodeStereo16(8000, nil, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Wrote empty WAV: %d bytes (header only)\n", len(data))
	// Output: Wrote empty WAV: 44 bytes (header only)
}

// Example_sampleRates decodes tones written at several rates.
func Example_sampleRates() {
	for _, rate := range []int{8000, 16000, 44100, 48000} {
		wavData := audiotest.ToneWAV(rate, 2, rate/10, 440, 0.5)

		source, err := wav.Decoder{}.Decode(bytes.NewReader(wavData))
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Printf("Rate: %5d Hz -> %5d Hz\n", rate, source.SampleRate())
	}
	// Output:
	// Rate:  8000 Hz ->  8000 Hz
	// Rate: 16000 Hz -> 16000 Hz
	// Rate: 44100 Hz -> 44100 Hz
	// Rate: 48000 Hz -> 48000 Hz
}
