package jsonscan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Terminator is appended to every extracted string and is part of the
// identifier's canonical form. Identifier lookups performed outside
// this package (e.g. matching starting-point file lines) must apply the
// same convention.
const Terminator = '\n'

// defaultBufSize is the read-ahead buffer handed to bufio; large enough
// that syscall overhead vanishes behind per-byte scanning.
const defaultBufSize = 1 << 16

// Scanner is a character-at-a-time reader over a JSON byte stream.
//
// It maintains exactly three pieces of parsing state: the current
// object depth, the current array depth, and whether the cursor is
// inside a string. All cursor operations in this package reason purely
// in terms of these counters; there is no backtracking, because every
// operation is a monotonic forward scan.
type Scanner struct {
	r *bufio.Reader

	objDepth int  // nesting level of '{'..'}'
	arrDepth int  // nesting level of '['..']'
	inString bool // between an odd and even '"'

	consumed int64 // total bytes read, for diagnostics
}

// NewScanner wraps r in a buffered Scanner positioned at the start of
// the stream, outside any structure.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, defaultBufSize)}
}

// ReadByte reads the next character of the stream and updates the depth
// counters. A double quote toggles the in-string flag and is never
// counted as a delimiter; while inside a string, delimiter characters
// hold no meaning. End of input is reported as ErrUnexpectedEOF.
func (s *Scanner) ReadByte() (byte, error) {
	c, err := s.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrUnexpectedEOF
		}

		return 0, fmt.Errorf("jsonscan: read: %w", err)
	}
	s.consumed++

	if c == '"' {
		// Entered or exited a string.
		s.inString = !s.inString

		return c, nil
	}
	if s.inString {
		// Characters hold no structural meaning inside a string.
		return c, nil
	}

	switch c {
	case '{':
		s.objDepth++ // entered a field
	case '}':
		s.objDepth-- // exited a field
	case '[':
		s.arrDepth++ // entered a list
	case ']':
		s.arrDepth-- // exited a list
	}

	return c, nil
}

// ObjectDepth reports the current '{'-nesting level.
func (s *Scanner) ObjectDepth() int { return s.objDepth }

// ArrayDepth reports the current '['-nesting level.
func (s *Scanner) ArrayDepth() int { return s.arrDepth }

// InString reports whether the cursor currently sits inside a string.
func (s *Scanner) InString() bool { return s.inString }

// BytesRead reports the total number of bytes consumed so far.
func (s *Scanner) BytesRead() int64 { return s.consumed }

// ExtractString scans forward to the next quoted string, appends its
// raw bytes to buf (no escape processing — backslash sequences are
// copied literally), appends the Terminator byte, and returns the
// extended buffer. Passing buf[:0] reuses the caller's allocation.
func (s *Scanner) ExtractString(buf []byte) ([]byte, error) {
	// 1. Advance to the opening quote.
	for !s.inString {
		if _, err := s.ReadByte(); err != nil {
			return buf, err
		}
	}

	// 2. Copy until the closing quote flips the flag back.
	for {
		c, err := s.ReadByte()
		if err != nil {
			return buf, err
		}
		if !s.inString {
			break // closing quote consumed, not part of the value
		}
		buf = append(buf, c)
	}

	// 3. The terminator becomes part of the canonical identifier.
	return append(buf, Terminator), nil
}
