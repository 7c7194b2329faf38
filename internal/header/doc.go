// Package header parses the text header of an NRRD file.
//
// An NRRD file begins with a magic line naming the format version, followed
// by one record per line and a single blank line that separates the header
// from the payload:
//
//	NRRD0004
//	# comment
//	type: double
//	dimension: 1
//	sizes: 5
//	encoding: raw
//	                      <- blank line
//	<payload bytes>
//
// # Offset Tracking
//
// [Parse] returns the byte offset of the first payload byte. The offset is
// advanced by each line's length plus the width of the terminator that ended
// it, so headers written with "\r\n" line endings locate the payload as
// exactly as headers written with "\n".
//
// # Records
//
// Each record is split on its first ':'. Keys and values are trimmed, a
// leading '=' on the value (the "key:=value" form) is dropped, and keys that
// begin with '#' are comments. Lines without a ':' are ignored unless
// [ParseOptions.Strict] is set.
//
// # Validation
//
// [Validate] checks that the fields needed to decode a payload are present.
// Value syntax is left to the consumer: [ParseList] for integer lists such
// as "sizes", and [CheckDimension] for the optional dimension cross-check.
package header
