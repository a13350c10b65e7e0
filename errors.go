package bom

import (
	"fmt"
	"strings"
)

// UnsupportedCharsetError is returned when a charset name is not in
// the signature table.
type UnsupportedCharsetError struct {
	Charset Charset
}

func (e UnsupportedCharsetError) Error() string {
	names := make([]string, 0, len(signatures))
	for _, sig := range signatures {
		names = append(names, string(sig.Charset))
	}
	return fmt.Sprintf(
		"charset '%s' not supported (must be one of %s)",
		e.Charset,
		strings.Join(names, ", "),
	)
}
