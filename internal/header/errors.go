package header

import (
	"errors"
	"fmt"
)

var (
	ErrBadMagic          = errors.New("bad magic line")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidInteger    = errors.New("invalid integer")
	ErrMalformedLine     = errors.New("malformed header line")
	ErrDimensionMismatch = errors.New("dimension does not match sizes")
)

// FieldError reports a problem with a named header field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// TokenError reports a token that failed to parse.
type TokenError struct {
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Token)
}

func (e *TokenError) Unwrap() error { return e.Err }
