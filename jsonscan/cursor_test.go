package jsonscan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watershed/jsonscan"
)

var rowKeys = []string{
	jsonscan.Quote("viaGlobalId"),
	jsonscan.Quote("fromGlobalId"),
	jsonscan.Quote("toGlobalId"),
}

func TestScanField_MatchesKeysInAnyOrder(t *testing.T) {
	// Keys deliberately reversed relative to the canonical export order.
	doc := `{"toGlobalId":"C","fromGlobalId":"B","viaGlobalId":"A"}`
	s := jsonscan.NewScanner(strings.NewReader(doc))

	got := make(map[int]string, 3)
	ok, err := s.ScanField(rowKeys, func(i int) error {
		v, exErr := s.ExtractString(nil)
		got[i] = string(v)

		return exErr
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, map[int]string{0: "A\n", 1: "B\n", 2: "C\n"}, got)
}

func TestScanField_NoFieldWhenListCloses(t *testing.T) {
	// The enclosing array closes before any object begins.
	s := jsonscan.NewScanner(strings.NewReader(`[ ]x`))

	drain(t, s, 1) // enter the list so the closing bracket drops below entry depth
	ok, err := s.ScanField(rowKeys, func(int) error { return nil })
	require.NoError(t, err)
	assert.False(t, ok, "scan must fail once the enclosing list closes")
}

func TestScanField_IgnoresNestedObjectKeys(t *testing.T) {
	// "viaGlobalId" appears only inside a nested sub-object and must not match.
	doc := `{"geometry":{"viaGlobalId":"NOPE"},"fromGlobalId":"B"}`
	s := jsonscan.NewScanner(strings.NewReader(doc))

	var calls []int
	ok, err := s.ScanField(rowKeys, func(i int) error {
		calls = append(calls, i)
		_, exErr := s.ExtractString(nil)

		return exErr
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1}, calls, "only the one-level-deep key may match")
}

func TestScanField_MissingKeyIsNotReported(t *testing.T) {
	doc := `{"viaGlobalId":"A"}`
	s := jsonscan.NewScanner(strings.NewReader(doc))

	var calls []int
	ok, err := s.ScanField(rowKeys, func(i int) error {
		calls = append(calls, i)
		_, exErr := s.ExtractString(nil)

		return exErr
	})
	require.NoError(t, err)
	assert.True(t, ok, "the field itself was entered")
	assert.Equal(t, []int{0}, calls, "absent keys simply never fire")
}

func TestScanField_EOFMidField(t *testing.T) {
	s := jsonscan.NewScanner(strings.NewReader(`{"viaGlobalId"`))

	_, err := s.ScanField(rowKeys, func(int) error { return nil })
	assert.ErrorIs(t, err, jsonscan.ErrUnexpectedEOF)
}

func TestScanList_IteratesElements(t *testing.T) {
	doc := `[{"globalId":"a"},{"globalId":"b"}]`
	s := jsonscan.NewScanner(strings.NewReader(doc))

	key := []string{jsonscan.Quote("globalId")}
	var ids []string
	ok, err := s.ScanList(func() error {
		_, inErr := s.ScanField(key, func(int) error {
			v, exErr := s.ExtractString(nil)
			ids = append(ids, string(v))

			return exErr
		})

		return inErr
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a\n", "b\n"}, ids)
}

func TestScanList_NoListWhenObjectCloses(t *testing.T) {
	s := jsonscan.NewScanner(strings.NewReader(`{ }x`))

	drain(t, s, 1) // enter the object so the closing brace drops below entry depth
	ok, err := s.ScanList(func() error { return nil })
	require.NoError(t, err)
	assert.False(t, ok, "scan must fail once the enclosing object closes")
}
