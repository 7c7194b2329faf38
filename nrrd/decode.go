package nrrd

import (
	"context"
	"fmt"

	"github.com/robert-malhotra/go-nrrd/internal/header"
	"github.com/robert-malhotra/go-nrrd/source"
)

// Decode parses a complete NRRD file held in buf.
//
// The returned Document holds exactly product(sizes) values. On failure no
// Document is returned.
func Decode(buf []byte, opts ...DecodeOption) (*Document, error) {
	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(o)
	}

	hdr, err := header.Parse(buf, header.ParseOptions{Strict: o.strict})
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}
	md := hdr.Metadata

	if err := header.Validate(md); err != nil {
		return nil, fmt.Errorf("validating header: %w", err)
	}

	sizes, err := header.ParseList(md[header.FieldSizes])
	if err != nil {
		return nil, fmt.Errorf("parsing sizes: %w", &FieldError{Field: header.FieldSizes, Err: err})
	}
	if o.checkDimension {
		if err := header.CheckDimension(md, sizes); err != nil {
			return nil, fmt.Errorf("validating header: %w", err)
		}
	}

	count, err := header.ElementCount(sizes)
	if err != nil {
		return nil, fmt.Errorf("parsing sizes: %w", err)
	}
	if o.maxElements > 0 && count > o.maxElements {
		return nil, fmt.Errorf("%w: %d elements, limit %d", ErrTooLarge, count, o.maxElements)
	}

	enc := md[header.FieldEncoding]
	data, err := o.registry().Decode(enc, buf[hdr.Offset:], count)
	if err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}

	return newDocument(hdr.Magic, md, sizes, data)
}

// Load fetches name from src and decodes it.
func Load(ctx context.Context, src source.Source, name string, opts ...DecodeOption) (*Document, error) {
	buf, err := src.Fetch(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", name, err)
	}
	doc, err := Decode(buf, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}

// Open reads and decodes the NRRD file at path.
func Open(path string, opts ...DecodeOption) (*Document, error) {
	return Load(context.Background(), source.NewLocal(""), path, opts...)
}
