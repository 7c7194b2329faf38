package nrrd

import (
	"github.com/robert-malhotra/go-nrrd/internal/encoding"
)

// Decoder converts a payload into float64 values. Register additional
// encodings with WithDecoder.
type Decoder = encoding.Decoder

// DecodeOption configures Decode.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	strict         bool
	checkDimension bool
	maxElements    uint64
	extra          []Decoder
}

func defaultDecodeOptions() *decodeOptions {
	return &decodeOptions{}
}

// registry returns the decoders to dispatch on.
func (o *decodeOptions) registry() *encoding.Registry {
	r := encoding.NewRegistry()
	for _, d := range o.extra {
		r.Register(d)
	}
	return r
}

// WithStrictHeader rejects header lines that are neither comments nor
// contain a ':'. By default such lines are ignored.
func WithStrictHeader() DecodeOption {
	return func(o *decodeOptions) {
		o.strict = true
	}
}

// WithDimensionCheck requires the "dimension" field to equal the number of
// entries in "sizes".
func WithDimensionCheck() DecodeOption {
	return func(o *decodeOptions) {
		o.checkDimension = true
	}
}

// WithMaxElements rejects documents whose sizes imply more than n elements
// before any payload is decoded (0 = no limit).
func WithMaxElements(n uint64) DecodeOption {
	return func(o *decodeOptions) {
		o.maxElements = n
	}
}

// WithDecoder registers d for the encoding name it reports, replacing a
// built-in decoder of the same name.
func WithDecoder(d Decoder) DecodeOption {
	return func(o *decodeOptions) {
		if d != nil {
			o.extra = append(o.extra, d)
		}
	}
}
