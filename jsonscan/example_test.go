package jsonscan_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/watershed/jsonscan"
)

// ExampleScanner_ScanField extracts the three identifiers of a network
// row without building any document tree. The keys arrive in a
// different order than requested — the any-order cursor does not care.
func ExampleScanner_ScanField() {
	doc := `{"fromGlobalId":"{N1}","toGlobalId":"{N2}","viaGlobalId":"{E7}"}`
	s := jsonscan.NewScanner(strings.NewReader(doc))

	keys := []string{
		jsonscan.Quote("viaGlobalId"),
		jsonscan.Quote("fromGlobalId"),
		jsonscan.Quote("toGlobalId"),
	}
	names := []string{"via", "from", "to"}

	_, err := s.ScanField(keys, func(i int) error {
		v, exErr := s.ExtractString(nil)
		if exErr != nil {
			return exErr
		}
		// ExtractString appends the '\n' terminator that is part of the
		// canonical identifier, so Printf needs no newline of its own.
		fmt.Printf("%s=%s", names[i], v)

		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// from={N1}
	// to={N2}
	// via={E7}
}
