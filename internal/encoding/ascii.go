package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ASCII decodes whitespace separated decimal numbers.
type ASCII struct{}

func (ASCII) Name() string { return NameASCII }

func isSeparator(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r' || b == '\t'
}

func (ASCII) Decode(payload []byte, count uint64) ([]float64, error) {
	tokens := bytes.FieldsFunc(payload, func(r rune) bool {
		return r < utf8.RuneSelf && isSeparator(byte(r))
	})

	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		if !utf8.Valid(tok) {
			return nil, &TokenError{
				Token: string(tok),
				Index: i,
				Err:   fmt.Errorf("%w: invalid UTF-8", ErrNumericParse),
			}
		}
		v, err := strconv.ParseFloat(string(tok), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &TokenError{Token: string(tok), Index: i, Err: ErrNumericParse}
		}
		out[i] = v
	}

	if uint64(len(out)) != count {
		return nil, &LengthError{
			Encoding: NameASCII,
			Unit:     "elements",
			Expected: count,
			Actual:   uint64(len(out)),
			Err:      ErrTruncatedPayload,
		}
	}
	return out, nil
}
