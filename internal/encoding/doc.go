// Package encoding decodes NRRD payloads into float64 values.
//
// The "encoding" header field names how the payload bytes represent the
// array. Each supported encoding is implemented by a [Decoder] and looked up
// by name in a [Registry].
//
// # Supported Encodings
//
//   - ASCII: whitespace separated decimal numbers, via [ASCII].
//   - raw: tightly packed little-endian float64 values, via [Raw].
//   - bzip2: a bzip2 stream of the raw layout, via [Bzip2].
//   - gzip: a gzip stream of the raw layout, via [Gzip].
//
// Encodings defined by the NRRD format but not implemented here (hex, and the
// short aliases such as "gz" and "txt") are recognized by name so that the
// error explains what is missing.
//
// # Length Checks
//
// Every decoder is given the element count implied by the "sizes" field and
// must produce exactly that many values. Binary payloads must be exactly
// count*8 bytes after decompression; anything else is reported as
// [ErrTruncatedPayload] or [ErrDecompression] rather than padded or cut.
//
// # Element Type
//
// Elements are always decoded as 64-bit floats regardless of the "type"
// field.
package encoding
