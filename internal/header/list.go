package header

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// ParseList parses a single-space separated list of unsigned integers,
// such as the value of the "sizes" field.
func ParseList(value string) ([]uint64, error) {
	tokens := strings.Split(value, " ")
	out := make([]uint64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, &TokenError{Token: tok, Err: ErrInvalidInteger}
		}
		out[i] = v
	}
	return out, nil
}

// ElementCount returns the product of sizes.
func ElementCount(sizes []uint64) (uint64, error) {
	n := uint64(1)
	for _, s := range sizes {
		hi, lo := bits.Mul64(n, s)
		if hi != 0 {
			return 0, fmt.Errorf("element count of sizes %v overflows: %w", sizes, ErrInvalidInteger)
		}
		n = lo
	}
	return n, nil
}
