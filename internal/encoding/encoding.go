package encoding

import (
	"fmt"
	"maps"
	"math/bits"
	"slices"

	"github.com/robert-malhotra/go-nrrd/internal/binary"
)

// Encoding names as they appear in the "encoding" header field.
const (
	NameASCII = "ASCII"
	NameRaw   = "raw"
	NameBzip2 = "bzip2"
	NameGzip  = "gzip"
)

// Decoder is the interface implemented by all payload decoders.
type Decoder interface {
	// Name returns the "encoding" field value this decoder handles.
	Name() string

	// Decode converts payload into exactly count float64 values.
	Decode(payload []byte, count uint64) ([]float64, error)
}

// knownNames lists NRRD encodings that have no decoder, for better errors.
var knownNames = map[string]bool{
	"hex":   true,
	"txt":   true,
	"text":  true,
	"ascii": true,
	"gz":    true,
	"bz2":   true,
}

// Registry maps encoding names to decoders. The zero value is empty; use
// NewRegistry for one with the built-in decoders.
type Registry struct {
	decoders map[string]Decoder
}

// NewRegistry returns a registry holding the ASCII, raw, bzip2 and gzip
// decoders.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(ASCII{})
	r.Register(Raw{})
	r.Register(Bzip2{})
	r.Register(Gzip{})
	return r
}

// Register adds d, replacing any decoder with the same name.
func (r *Registry) Register(d Decoder) {
	if r.decoders == nil {
		r.decoders = make(map[string]Decoder)
	}
	r.decoders[d.Name()] = d
}

// Lookup returns the decoder registered for name.
func (r *Registry) Lookup(name string) (Decoder, error) {
	d, ok := r.decoders[name]
	if !ok {
		return nil, &UnsupportedError{Encoding: name, Known: knownNames[name]}
	}
	return d, nil
}

// Names returns the registered encoding names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.decoders))
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	return &Registry{decoders: maps.Clone(r.decoders)}
}

// Decode looks up the decoder for name and runs it.
func (r *Registry) Decode(name string, payload []byte, count uint64) ([]float64, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return d.Decode(payload, count)
}

// byteLength returns count*8, failing on overflow.
func byteLength(name string, count uint64) (uint64, error) {
	hi, lo := bits.Mul64(count, binary.Float64Size)
	if hi != 0 {
		return 0, fmt.Errorf("%s payload: %d elements overflow the byte length: %w", name, count, ErrTruncatedPayload)
	}
	return lo, nil
}
