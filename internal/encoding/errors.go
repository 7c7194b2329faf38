package encoding

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrNumericParse        = errors.New("invalid number")
	ErrTruncatedPayload    = errors.New("truncated payload")
	ErrDecompression       = errors.New("decompression failed")
)

// UnsupportedError reports an encoding name with no registered decoder.
type UnsupportedError struct {
	Encoding string
	// Known is set when the name is a valid NRRD encoding that has no decoder.
	Known bool
}

func (e *UnsupportedError) Error() string {
	if e.Known {
		return fmt.Sprintf("%s encoding is not supported", e.Encoding)
	}
	return fmt.Sprintf("unsupported encoding: %q", e.Encoding)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupportedEncoding }

// TokenError reports an ASCII payload token that is not a number.
type TokenError struct {
	Token string
	// Index is the zero-based position of the token in the payload.
	Index int
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %d: %v: %q", e.Index, e.Err, e.Token)
}

func (e *TokenError) Unwrap() error { return e.Err }

// LengthError reports a payload whose size disagrees with the element count.
type LengthError struct {
	Encoding string
	Unit     string // "bytes" or "elements"
	Expected uint64
	Actual   uint64
	Err      error
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s payload: %v: expected %d %s, got %d",
		e.Encoding, e.Err, e.Expected, e.Unit, e.Actual)
}

func (e *LengthError) Unwrap() error { return e.Err }
