package jsonscan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watershed/jsonscan"
)

// drain reads n bytes off the scanner, failing the test on any error.
func drain(t *testing.T, s *jsonscan.Scanner, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := s.ReadByte()
		require.NoError(t, err)
	}
}

func TestScanner_TracksDepths(t *testing.T) {
	s := jsonscan.NewScanner(strings.NewReader(`{"a":[{}]}`))

	drain(t, s, 1) // {
	assert.Equal(t, 1, s.ObjectDepth())
	assert.Equal(t, 0, s.ArrayDepth())

	drain(t, s, 5) // "a":[
	assert.Equal(t, 1, s.ObjectDepth())
	assert.Equal(t, 1, s.ArrayDepth())

	drain(t, s, 1) // {
	assert.Equal(t, 2, s.ObjectDepth())

	drain(t, s, 3) // }]}
	assert.Equal(t, 0, s.ObjectDepth())
	assert.Equal(t, 0, s.ArrayDepth())
	assert.Equal(t, int64(10), s.BytesRead())
}

func TestScanner_DelimitersInertInsideStrings(t *testing.T) {
	// The braces and brackets inside the string value must not count.
	s := jsonscan.NewScanner(strings.NewReader(`{"a":"{[}]"}`))

	drain(t, s, 11) // everything up to the final }
	assert.Equal(t, 1, s.ObjectDepth(), "string content must not affect object depth")
	assert.Equal(t, 0, s.ArrayDepth(), "string content must not affect array depth")

	drain(t, s, 1) // }
	assert.Equal(t, 0, s.ObjectDepth())
}

func TestScanner_QuoteTogglesStringFlag(t *testing.T) {
	s := jsonscan.NewScanner(strings.NewReader(`"x"`))

	drain(t, s, 1)
	assert.True(t, s.InString())
	drain(t, s, 2)
	assert.False(t, s.InString())
}

func TestScanner_EOFIsHardFailure(t *testing.T) {
	s := jsonscan.NewScanner(strings.NewReader(""))

	_, err := s.ReadByte()
	assert.ErrorIs(t, err, jsonscan.ErrUnexpectedEOF)
}

func TestExtractString_AppendsTerminator(t *testing.T) {
	s := jsonscan.NewScanner(strings.NewReader(`  "hello"`))

	got, err := s.ExtractString(nil)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(got))
}

func TestExtractString_NoUnescaping(t *testing.T) {
	// Backslash sequences are copied verbatim; \\ stays two bytes.
	s := jsonscan.NewScanner(strings.NewReader(`"a\\b"`))

	got, err := s.ExtractString(nil)
	require.NoError(t, err)
	assert.Equal(t, "a\\\\b\n", string(got))
}

func TestExtractString_ReusesBuffer(t *testing.T) {
	s := jsonscan.NewScanner(strings.NewReader(`"one" "two"`))

	buf, err := s.ExtractString(nil)
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(buf))

	buf, err = s.ExtractString(buf[:0])
	require.NoError(t, err)
	assert.Equal(t, "two\n", string(buf))
}

func TestExtractString_EOFBeforeClose(t *testing.T) {
	s := jsonscan.NewScanner(strings.NewReader(`"unterminated`))

	_, err := s.ExtractString(nil)
	assert.ErrorIs(t, err, jsonscan.ErrUnexpectedEOF)
}
