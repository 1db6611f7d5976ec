package logparse

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultClampLimit is the character cap applied to extracted text blobs.
const DefaultClampLimit = 4000

// ClampText bounds text to at most limit characters. Text over the limit is
// cut at the limit, stripped of trailing whitespace and suffixed with a
// marker stating how many characters were omitted.
func ClampText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	truncated := strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace)
	return fmt.Sprintf("%s\n... (truncated, %d more characters)", truncated, len(runes)-limit)
}
