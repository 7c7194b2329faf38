package header

import (
	"bytes"
	"fmt"
	"strings"
)

// Magic lines accepted as the first line of a file.
const (
	MagicV3 = "NRRD0003"
	MagicV4 = "NRRD0004"
	MagicV5 = "NRRD0005"
)

// Metadata maps header field names to their values.
type Metadata map[string]string

// ParseOptions controls header tokenization.
type ParseOptions struct {
	// Strict rejects non-comment lines that contain no ':'.
	Strict bool
}

// Result is a parsed header.
type Result struct {
	Magic    string
	Metadata Metadata
	// Offset is the index of the first payload byte in the parsed buffer.
	Offset int
}

// Parse tokenizes the header at the start of buf.
func Parse(buf []byte, opts ParseOptions) (*Result, error) {
	s := newScanner(buf)

	magic, ok := s.next()
	if !ok {
		return nil, fmt.Errorf("empty buffer: %w", ErrBadMagic)
	}
	switch magic {
	case MagicV3, MagicV4, MagicV5:
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, magic)
	}

	md := make(Metadata)
	for {
		line, ok := s.next()
		if !ok || line == "" {
			break
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			if opts.Strict && !strings.HasPrefix(strings.TrimSpace(line), "#") {
				return nil, fmt.Errorf("line %d: %w: %q", s.lineNo, ErrMalformedLine, line)
			}
			continue
		}

		key = strings.TrimSpace(key)
		if strings.HasPrefix(key, "#") {
			continue
		}
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, "=") {
			value = strings.TrimSpace(value[1:])
		}
		md[key] = value
	}

	return &Result{
		Magic:    magic,
		Metadata: md,
		Offset:   s.offset,
	}, nil
}

// scanner splits buf into lines while counting consumed bytes.
type scanner struct {
	buf    []byte
	offset int
	lineNo int
}

func newScanner(buf []byte) *scanner {
	return &scanner{buf: buf}
}

// next returns the next line without its terminator and advances the offset
// past the terminator ("\n" or "\r\n"). A final line without a terminator
// advances the offset to the end of the buffer.
func (s *scanner) next() (string, bool) {
	if s.offset >= len(s.buf) {
		return "", false
	}
	s.lineNo++

	rest := s.buf[s.offset:]
	i := bytes.IndexByte(rest, '\n')
	if i < 0 {
		s.offset = len(s.buf)
		return string(bytes.TrimSuffix(rest, []byte{'\r'})), true
	}

	s.offset += i + 1
	return string(bytes.TrimSuffix(rest[:i], []byte{'\r'})), true
}
