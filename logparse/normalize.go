package logparse

import (
	"regexp"
	"strings"
	"unicode"
)

// Leading GitHub Actions style timestamp, for example 2024-01-01T00:00:00.1234567Z.
var timestampRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?Z\s*`)

// NormalizeLine removes a byte-order-mark character wherever it appears,
// strips a single leading timestamp token and trims trailing whitespace. A
// line without a timestamp passes through otherwise unchanged.
func NormalizeLine(line string) string {
	line = strings.ReplaceAll(line, "\ufeff", "")
	if loc := timestampRegexp.FindStringIndex(line); loc != nil {
		line = line[loc[1]:]
	}
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

func normalizeLines(content string) []string {
	lines := splitLines(content)
	messages := make([]string, len(lines))
	for i, line := range lines {
		messages[i] = NormalizeLine(line)
	}
	return messages
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func trimLeadingSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
