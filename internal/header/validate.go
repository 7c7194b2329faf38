package header

import (
	"fmt"
	"strconv"
)

// Required fields, in the order they are checked.
const (
	FieldSizes     = "sizes"
	FieldEncoding  = "encoding"
	FieldDimension = "dimension"
)

var requiredFields = []string{FieldSizes, FieldEncoding, FieldDimension}

// Validate reports the first required field missing from md.
func Validate(md Metadata) error {
	for _, f := range requiredFields {
		if _, ok := md[f]; !ok {
			return &FieldError{Field: f, Err: ErrMissingField}
		}
	}
	return nil
}

// CheckDimension verifies that the "dimension" field equals the number of
// entries in sizes.
func CheckDimension(md Metadata, sizes []uint64) error {
	raw := md[FieldDimension]
	dim, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return &FieldError{
			Field: FieldDimension,
			Err:   &TokenError{Token: raw, Err: ErrInvalidInteger},
		}
	}
	if dim != uint64(len(sizes)) {
		return &FieldError{
			Field: FieldDimension,
			Err:   fmt.Errorf("%w: dimension %d, %d sizes", ErrDimensionMismatch, dim, len(sizes)),
		}
	}
	return nil
}
