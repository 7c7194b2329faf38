package encoding

import (
	"fmt"

	"github.com/robert-malhotra/go-nrrd/internal/binary"
)

// Raw decodes tightly packed little-endian float64 values.
type Raw struct{}

func (Raw) Name() string { return NameRaw }

func (Raw) Decode(payload []byte, count uint64) ([]float64, error) {
	return unpack(NameRaw, payload, count, ErrTruncatedPayload)
}

// unpack converts exactly count*8 bytes of data into float64 values.
// A length mismatch is reported wrapping sentinel.
func unpack(name string, data []byte, count uint64, sentinel error) ([]float64, error) {
	want, err := byteLength(name, count)
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) != want {
		return nil, &LengthError{
			Encoding: name,
			Unit:     "bytes",
			Expected: want,
			Actual:   uint64(len(data)),
			Err:      sentinel,
		}
	}

	vals, err := binary.NewReader(data).ReadFloat64s(int(count))
	if err != nil {
		return nil, fmt.Errorf("%s payload: %w", name, err)
	}
	return vals, nil
}
