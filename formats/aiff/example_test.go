// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/ik5/dualstereo/audio"
	"github.com/ik5/dualstereo/formats/aiff"
	"github.com/ik5/dualstereo/internal/audiotest"
)

// ExampleDecoder_Decode decodes an in-memory AIFF file.
func ExampleDecoder_Decode() {
	data := audiotest.PCM16AIFF(44100, 2, []int16{16384, -16384, 8192, -8192})

	src, err := aiff.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %d channels, %d frames\n", buf.SampleRate, buf.NumChannels(), buf.Frames())
	fmt.Println(buf.Channels[0], buf.Channels[1])
	// Output:
	// 44100 Hz, 2 channels, 2 frames
	// [0.5 0.25] [-0.5 -0.25]
}
