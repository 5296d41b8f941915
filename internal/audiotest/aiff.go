// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// PCM16AIFF returns a FORM/AIFF file holding interleaved big-endian 16-bit samples.
func PCM16AIFF(sampleRate, channels int, samples []int16) []byte {
	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, uint16(channels))
	binary.Write(comm, binary.BigEndian, uint32(len(samples)/channels))
	binary.Write(comm, binary.BigEndian, uint16(16))
	comm.Write(extended80(sampleRate))

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	for _, v := range samples {
		binary.Write(ssnd, binary.BigEndian, v)
	}

	var body bytes.Buffer
	body.WriteString("AIFF")
	writeChunkBE(&body, "COMM", comm.Bytes())
	writeChunkBE(&body, "SSND", ssnd.Bytes())

	var out bytes.Buffer
	out.WriteString("FORM")
	binary.Write(&out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func writeChunkBE(w *bytes.Buffer, id string, body []byte) {
	w.WriteString(id)
	binary.Write(w, binary.BigEndian, uint32(len(body)))
	w.Write(body)
	if len(body)%2 == 1 {
		w.WriteByte(0)
	}
}

// extended80 encodes a positive integer as an IEEE 754 80-bit extended float.
func extended80(v int) []byte {
	out := make([]byte, 10)
	if v <= 0 {
		return out
	}
	e := bits.Len64(uint64(v)) - 1
	binary.BigEndian.PutUint16(out[0:2], uint16(16383+e))
	binary.BigEndian.PutUint64(out[2:10], uint64(v)<<(63-e))
	return out
}
