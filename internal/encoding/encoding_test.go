package encoding

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pack(vals ...float64) []byte {
	out := make([]byte, 0, len(vals)*8)
	for _, v := range vals {
		out = binary.LittleEndian.AppendUint64(out, math.Float64bits(v))
	}
	return out
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// bzip2 stream of pack(0, 1, 2, 3, 4).
var bzip2Five = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0x48, 0xc5, 0xbc, 0x6d, 0x00, 0x00,
	0x01, 0xec, 0x00, 0xd8, 0x50, 0x40, 0x00, 0x00, 0x00, 0xc0, 0x00, 0x40, 0x00, 0x20, 0x00, 0x22,
	0x32, 0x1a, 0x64, 0x20, 0xc9, 0x88, 0x74, 0xcd, 0x80, 0x30, 0x98, 0xba, 0x4f, 0x17, 0x72, 0x45,
	0x38, 0x50, 0x90, 0x48, 0xc5, 0xbc, 0x6d,
}

// bzip2 stream of pack(0, 1, 2, 3).
var bzip2Four = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0x2f, 0xe3, 0xf6, 0x74, 0x00, 0x00,
	0x01, 0x4c, 0x00, 0xd8, 0x50, 0x00, 0x00, 0xc0, 0x00, 0x40, 0x00, 0x20, 0x00, 0x22, 0x32, 0x0f,
	0x48, 0x43, 0x02, 0x01, 0xda, 0x55, 0x8e, 0x71, 0x3c, 0x5d, 0xc9, 0x14, 0xe1, 0x42, 0x40, 0xbf,
	0x8f, 0xd9, 0xd0,
}

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{NameASCII, NameBzip2, NameGzip, NameRaw}, r.Names())

	for _, name := range r.Names() {
		d, err := r.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.Name())
	}
}

func TestRegistryUnsupported(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name  string
		known bool
	}{
		{"hex", true},
		{"gz", true},
		{"Raw", false},
		{"zstd", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Lookup(tt.name)
			require.ErrorIs(t, err, ErrUnsupportedEncoding)

			var ue *UnsupportedError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tt.name, ue.Encoding)
			assert.Equal(t, tt.known, ue.Known)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

type constDecoder struct{ v float64 }

func (constDecoder) Name() string { return "hex" }

func (d constDecoder) Decode(_ []byte, count uint64) ([]float64, error) {
	out := make([]float64, count)
	for i := range out {
		out[i] = d.v
	}
	return out, nil
}

func TestRegistryRegisterAndClone(t *testing.T) {
	base := NewRegistry()
	ext := base.Clone()
	ext.Register(constDecoder{v: 7})

	vals, err := ext.Decode("hex", nil, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 7, 7}, vals)

	_, err = base.Lookup("hex")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding, "clone must not leak into the original")

	var zero Registry
	_, err = zero.Lookup(NameRaw)
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestASCII(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		count    uint64
		expected []float64
	}{
		{"single line", "0 1 3 4 5", 5, []float64{0, 1, 3, 4, 5}},
		{"trailing newline", "0 1 3 4 5\n", 5, []float64{0, 1, 3, 4, 5}},
		{"rows", "1.5 -2\n3e2 4\n", 4, []float64{1.5, -2, 300, 4}},
		{"repeated separators", "  1   2\n\n\n3  ", 3, []float64{1, 2, 3}},
		{"crlf", "1 2\r\n3 4\r\n", 4, []float64{1, 2, 3, 4}},
		{"tabs", "1\t2", 2, []float64{1, 2}},
		{"empty", "", 0, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ASCII{}.Decode([]byte(tt.payload), tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestASCIISpecialValues(t *testing.T) {
	got, err := ASCII{}.Decode([]byte("NaN inf -Inf 1e400"), 4)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsInf(got[1], 1))
	assert.True(t, math.IsInf(got[2], -1))
	assert.True(t, math.IsInf(got[3], 1))
}

func TestASCIIParseFailure(t *testing.T) {
	_, err := ASCII{}.Decode([]byte("0 1 x3 4"), 4)
	require.ErrorIs(t, err, ErrNumericParse)

	var te *TokenError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "x3", te.Token)
	assert.Equal(t, 2, te.Index)
}

func TestASCIIParseFailureReportedBeforeCount(t *testing.T) {
	_, err := ASCII{}.Decode([]byte("0 bad"), 5)
	assert.ErrorIs(t, err, ErrNumericParse)
}

func TestASCIIInvalidUTF8(t *testing.T) {
	_, err := ASCII{}.Decode([]byte{'1', ' ', 0xff, 0xfe, ' ', '2'}, 3)
	require.ErrorIs(t, err, ErrNumericParse)

	var te *TokenError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 1, te.Index)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestASCIICountMismatch(t *testing.T) {
	for _, count := range []uint64{4, 6} {
		_, err := ASCII{}.Decode([]byte("0 1 3 4 5"), count)
		require.ErrorIs(t, err, ErrTruncatedPayload)

		var le *LengthError
		require.True(t, errors.As(err, &le))
		assert.Equal(t, count, le.Expected)
		assert.Equal(t, uint64(5), le.Actual)
	}
}

func TestRaw(t *testing.T) {
	got, err := Raw{}.Decode(pack(0, 1, 2, 3, 4), 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, got)

	got, err = Raw{}.Decode(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRawLengthMismatch(t *testing.T) {
	full := pack(0, 1, 2, 3, 4)

	tests := []struct {
		name    string
		payload []byte
	}{
		{"short by one element", full[:32]},
		{"partial element", full[:39]},
		{"trailing byte", append(append([]byte{}, full...), 0x0a)},
		{"extra element", pack(0, 1, 2, 3, 4, 5)},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Raw{}.Decode(tt.payload, 5)
			require.ErrorIs(t, err, ErrTruncatedPayload)
			assert.Nil(t, got)

			var le *LengthError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, uint64(40), le.Expected)
			assert.Equal(t, uint64(len(tt.payload)), le.Actual)
		})
	}
}

func TestRawCountOverflow(t *testing.T) {
	_, err := Raw{}.Decode(pack(1), math.MaxUint64/4)
	assert.ErrorIs(t, err, ErrTruncatedPayload)
}

func TestBzip2(t *testing.T) {
	got, err := Bzip2{}.Decode(bzip2Five, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, got)
}

func TestBzip2LengthMismatch(t *testing.T) {
	_, err := Bzip2{}.Decode(bzip2Four, 5)
	require.ErrorIs(t, err, ErrDecompression)

	var le *LengthError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, uint64(40), le.Expected)
	assert.Equal(t, uint64(32), le.Actual)

	_, err = Bzip2{}.Decode(bzip2Five, 4)
	assert.ErrorIs(t, err, ErrDecompression)
}

func TestBzip2Malformed(t *testing.T) {
	_, err := Bzip2{}.Decode([]byte("definitely not bzip2"), 5)
	assert.ErrorIs(t, err, ErrDecompression)

	_, err = Bzip2{}.Decode(bzip2Five[:30], 5)
	assert.ErrorIs(t, err, ErrDecompression)
}

func TestGzip(t *testing.T) {
	got, err := Gzip{}.Decode(gzipBytes(t, pack(0, 1, 2, 3, 4)), 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, got)
}

func TestGzipLengthMismatch(t *testing.T) {
	short := gzipBytes(t, pack(0, 1, 2, 3)[:31])
	_, err := Gzip{}.Decode(short, 4)
	require.ErrorIs(t, err, ErrDecompression)

	var le *LengthError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, uint64(31), le.Actual)

	long := gzipBytes(t, pack(0, 1, 2, 3, 4, 5, 6))
	_, err = Gzip{}.Decode(long, 5)
	assert.ErrorIs(t, err, ErrDecompression)
}

func TestGzipMalformed(t *testing.T) {
	_, err := Gzip{}.Decode([]byte("plain text"), 1)
	assert.ErrorIs(t, err, ErrDecompression)

	_, err = Gzip{}.Decode(nil, 1)
	assert.ErrorIs(t, err, ErrDecompression)

	valid := gzipBytes(t, pack(0, 1, 2, 3, 4))
	_, err = Gzip{}.Decode(valid[:len(valid)-6], 5)
	assert.ErrorIs(t, err, ErrDecompression)
}
