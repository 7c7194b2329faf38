// Package binary provides bounds-checked little-endian decoding of NRRD
// binary payloads.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Float64Size is the width of one payload element in bytes.
const Float64Size = 8

// ErrShortBuffer is returned when fewer bytes remain than a read requires.
var ErrShortBuffer = errors.New("short buffer")

// Float64LE decodes exactly 8 bytes as a little-endian IEEE 754 float64.
func Float64LE(b []byte) (float64, error) {
	if len(b) != Float64Size {
		return 0, fmt.Errorf("decoding float64 from %d bytes: %w", len(b), ErrShortBuffer)
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// Reader reads little-endian values from an in-memory payload.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	if r.pos >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.pos
}

// ReadBytes returns the next n bytes without copying.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d", n)
	}
	if n > r.Len() {
		return nil, fmt.Errorf("reading %d bytes at offset %d: %w", n, r.pos, ErrShortBuffer)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadFloat64 reads one little-endian float64.
func (r *Reader) ReadFloat64() (float64, error) {
	buf, err := r.ReadBytes(Float64Size)
	if err != nil {
		return 0, err
	}
	return Float64LE(buf)
}

// ReadFloat64s reads n consecutive float64 values.
func (r *Reader) ReadFloat64s(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative element count %d", n)
	}
	if n > r.Len()/Float64Size {
		return nil, fmt.Errorf("reading %d float64 values at offset %d: %w", n, r.pos, ErrShortBuffer)
	}
	out := make([]float64, n)
	for i := range out {
		v, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
