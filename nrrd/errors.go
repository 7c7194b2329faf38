// Package nrrd provides a pure Go decoder for NRRD ("Nearly Raw Raster
// Data") files.
package nrrd

import (
	"errors"

	"github.com/robert-malhotra/go-nrrd/internal/encoding"
	"github.com/robert-malhotra/go-nrrd/internal/header"
)

// Decode errors. Match with errors.Is.
var (
	ErrBadMagic            = header.ErrBadMagic
	ErrMissingField        = header.ErrMissingField
	ErrInvalidInteger      = header.ErrInvalidInteger
	ErrMalformedLine       = header.ErrMalformedLine
	ErrDimensionMismatch   = header.ErrDimensionMismatch
	ErrUnsupportedEncoding = encoding.ErrUnsupportedEncoding
	ErrNumericParse        = encoding.ErrNumericParse
	ErrTruncatedPayload    = encoding.ErrTruncatedPayload
	ErrDecompression       = encoding.ErrDecompression
	ErrTooLarge            = errors.New("element count exceeds limit")
	ErrIndexOutOfRange     = errors.New("index out of range")
)

// Error details. Match with errors.As.
type (
	// FieldError names the header field a failure relates to.
	FieldError = header.FieldError
	// IntegerError carries the integer-list token that failed to parse.
	IntegerError = header.TokenError
	// TokenError carries the ASCII payload token that failed to parse.
	TokenError = encoding.TokenError
	// LengthError carries the expected and actual payload size.
	LengthError = encoding.LengthError
	// UnsupportedError names the unrecognized encoding.
	UnsupportedError = encoding.UnsupportedError
)
