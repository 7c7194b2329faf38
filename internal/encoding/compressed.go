package encoding

import (
	"bytes"
	"compress/bzip2"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Bzip2 decodes a bzip2-compressed raw payload.
type Bzip2 struct{}

func (Bzip2) Name() string { return NameBzip2 }

func (Bzip2) Decode(payload []byte, count uint64) ([]float64, error) {
	return inflate(NameBzip2, bzip2.NewReader(bytes.NewReader(payload)), count)
}

// Gzip decodes a gzip-compressed raw payload.
type Gzip struct{}

func (Gzip) Name() string { return NameGzip }

func (Gzip) Decode(payload []byte, count uint64) ([]float64, error) {
	r, err := gzip.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w: %w", ErrDecompression, err)
	}
	defer r.Close()

	return inflate(NameGzip, r, count)
}

// inflate reads the whole decompressed stream from r and unpacks it. At most
// one byte past the expected length is read, so an oversized stream is
// detected without being fully decompressed.
func inflate(name string, r io.Reader, count uint64) ([]float64, error) {
	want, err := byteLength(name, count)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if want < 1<<30 {
		buf.Grow(int(want))
	}
	n, err := buf.ReadFrom(io.LimitReader(r, int64(min(want, 1<<62))+1))
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w: %w", name, ErrDecompression, err)
	}
	if uint64(n) != want {
		return nil, &LengthError{
			Encoding: name,
			Unit:     "bytes",
			Expected: want,
			Actual:   uint64(n),
			Err:      ErrDecompression,
		}
	}

	return unpack(name, buf.Bytes(), count, ErrDecompression)
}
