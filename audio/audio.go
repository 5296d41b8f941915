// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// SniffFunc reports whether head looks like the start of a container the
// matching Decoder understands.
type SniffFunc func(head []byte) bool

type codec struct {
	decoder Decoder
	sniff   SniffFunc
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
// Formats registered with a SniffFunc take part in content detection, in
// registration order.
type Registry struct {
	codecs map[string]codec
	order  []string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]codec),
		mtx:    &sync.Mutex{},
	}
}

// Register adds d under format without content detection.
func (r *Registry) Register(format string, d Decoder) {
	r.RegisterSniffer(format, d, nil)
}

// RegisterSniffer adds d under format; sniff is used by Detect.
func (r *Registry) RegisterSniffer(format string, d Decoder, sniff SniffFunc) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.codecs[format]; !ok {
		r.order = append(r.order, format)
	}
	r.codecs[format] = codec{decoder: d, sniff: sniff}
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[format]
	return c.decoder, ok
}

// Formats lists the registered format keys in registration order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Detect picks the decoder whose sniffer accepts data.
func (r *Registry) Detect(data []byte) (string, Decoder, error) {
	if len(data) == 0 {
		return "", nil, ErrEmptyInput
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, format := range r.order {
		c := r.codecs[format]
		if c.sniff != nil && c.sniff(data) {
			return format, c.decoder, nil
		}
	}
	return "", nil, ErrUnknownFormat
}
