package jsonscan

import "errors"

var (
	// ErrUnexpectedEOF indicates the input ended before the expected
	// structure (object, array, or string) was closed. The depth
	// counters are meaningless past this point, so it is always fatal.
	ErrUnexpectedEOF = errors.New("jsonscan: unexpected end of input")
)
