package nrrd

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"

	"github.com/robert-malhotra/go-nrrd/internal/header"
)

// Document is a decoded NRRD file. It is immutable: accessors that return
// slices or maps return copies.
type Document struct {
	version  string
	metadata map[string]string
	sizes    []uint64
	data     []float64
}

// newDocument assembles a Document, enforcing len(data) == product(sizes).
func newDocument(version string, md header.Metadata, sizes []uint64, data []float64) (*Document, error) {
	count, err := header.ElementCount(sizes)
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) != count {
		return nil, &LengthError{
			Encoding: md[header.FieldEncoding],
			Unit:     "elements",
			Expected: count,
			Actual:   uint64(len(data)),
			Err:      ErrTruncatedPayload,
		}
	}
	return &Document{
		version:  version,
		metadata: md,
		sizes:    sizes,
		data:     data,
	}, nil
}

// Version returns the magic line, e.g. "NRRD0004".
func (d *Document) Version() string {
	return d.version
}

// Metadata returns a copy of the header fields.
func (d *Document) Metadata() map[string]string {
	return maps.Clone(d.metadata)
}

// Field returns the value of a header field.
func (d *Document) Field(key string) (string, bool) {
	v, ok := d.metadata[key]
	return v, ok
}

// Encoding returns the payload encoding name.
func (d *Document) Encoding() string {
	return d.metadata[header.FieldEncoding]
}

// Dimension returns the value of the "dimension" field, or -1 if it is not
// an integer.
func (d *Document) Dimension() int {
	n, err := strconv.Atoi(d.metadata[header.FieldDimension])
	if err != nil {
		return -1
	}
	return n
}

// Sizes returns the per-axis element counts in header order. Axis 0 varies
// fastest in the data.
func (d *Document) Sizes() []uint64 {
	return slices.Clone(d.sizes)
}

// Shape returns the sizes in row-major order (slowest axis first), the
// order expected by C-style array libraries.
func (d *Document) Shape() []uint64 {
	shape := slices.Clone(d.sizes)
	slices.Reverse(shape)
	return shape
}

// Len returns the number of elements.
func (d *Document) Len() int {
	return len(d.data)
}

// Data returns a copy of the flat element array.
func (d *Document) Data() []float64 {
	return slices.Clone(d.data)
}

// At returns element i of the flat array. It panics if i is out of range.
func (d *Document) At(i int) float64 {
	return d.data[i]
}

// All iterates over the flat array.
func (d *Document) All() iter.Seq2[int, float64] {
	return slices.All(d.data)
}

// Index returns the element at the given per-axis coordinates, listed in
// header order (the same order as Sizes).
func (d *Document) Index(coords ...uint64) (float64, error) {
	if len(coords) != len(d.sizes) {
		return 0, fmt.Errorf("%w: %d coordinates for %d axes", ErrIndexOutOfRange, len(coords), len(d.sizes))
	}
	var idx, stride uint64 = 0, 1
	for axis, c := range coords {
		if c >= d.sizes[axis] {
			return 0, fmt.Errorf("%w: axis %d coordinate %d, size %d", ErrIndexOutOfRange, axis, c, d.sizes[axis])
		}
		idx += c * stride
		stride *= d.sizes[axis]
	}
	return d.data[idx], nil
}

// Sum returns the sum of all elements.
func (d *Document) Sum() float64 {
	var s float64
	for _, v := range d.data {
		s += v
	}
	return s
}
