package logparse

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	testReportHeader        = "Test Results for"
	detailedResultsBoundary = "Detailed Results:"
	errorMarker             = "##[error]"
)

// Lines starting with any of these prefixes terminate a test-record run and
// the failure output collected for a failing test.
var sectionPrefixes = []string{
	"Test Results for",
	"Detailed Results:",
	"##[",
	"[command]",
	"Post job cleanup",
	"shell:",
	"env:",
	"Running test:",
	"Running builtin test:",
	"Using container runtime",
	"Found container",
}

var testMarkers = map[rune]string{
	'✓': TestStatusPassed,
	'✗': TestStatusFailed,
	'⊝': TestStatusSkipped,
}

// TestBlock holds the structured test report extracted from a log, if any.
// Failures is a subset of Tests.
type TestBlock struct {
	Target   string
	Summary  map[string]interface{}
	Tests    []TestRecord
	Failures []TestRecord
}

// Empty reports whether no structured test report was found.
func (b TestBlock) Empty() bool {
	return b.Target == "" && len(b.Summary) == 0 && len(b.Tests) == 0 && len(b.Failures) == 0
}

// ParseTestBlock scans normalized messages for a structured test-report
// section and extracts the target name, the summary table and the per-test
// records. When a log contains multiple report sections (for example
// concatenated retries), the last one wins. Failure output longer than
// clampLimit characters is truncated.
func ParseTestBlock(messages []string, clampLimit int) TestBlock {
	lastIdx := -1
	for i, raw := range messages {
		if strings.HasPrefix(trimLeadingSpace(raw), testReportHeader) {
			lastIdx = i
		}
	}
	if lastIdx == -1 {
		return TestBlock{}
	}

	headerLine := trimLeadingSpace(messages[lastIdx])
	target := strings.TrimRight(strings.TrimSpace(headerLine[len(testReportHeader):]), ":")

	summary := map[string]interface{}{}
	var tests []TestRecord
	var failures []TestRecord

	idx := lastIdx + 1
	for idx < len(messages) {
		msg := trimLeadingSpace(messages[idx])
		if msg == "" {
			idx++
			continue
		}
		if strings.HasPrefix(msg, detailedResultsBoundary) {
			idx++
			break
		}
		if !strings.Contains(msg, ":") {
			break
		}

		parts := strings.SplitN(msg, ":", 2)
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if n, err := strconv.Atoi(value); err == nil {
			summary[key] = n
		} else {
			summary[key] = value
		}
		idx++
	}

	for idx < len(messages) {
		msg := trimLeadingSpace(messages[idx])
		if msg == "" {
			idx++
			continue
		}
		if hasSectionPrefix(msg) {
			break
		}

		first, size := utf8.DecodeRuneInString(msg)
		status, isMarker := testMarkers[first]
		if !isMarker {
			break
		}

		rest := strings.TrimSpace(msg[size:])
		name := rest
		note := ""
		if sep := strings.Index(rest, ": "); sep >= 0 {
			name = strings.TrimSpace(rest[:sep])
			note = strings.TrimSpace(rest[sep+2:])
		}

		record := TestRecord{Name: name, Status: status}
		if note != "" && !strings.EqualFold(note, status) {
			record.Note = note
		}

		if status == TestStatusFailed {
			// Greedily collect the failure output up to the next section
			// boundary or test marker; the terminating line is not consumed.
			var outputLines []string
			lookahead := idx + 1
			for lookahead < len(messages) {
				nxt := trimLeadingSpace(messages[lookahead])
				if nxt == "" {
					outputLines = append(outputLines, "")
					lookahead++
					continue
				}
				if hasSectionPrefix(nxt) || isTestMarkerLine(nxt) {
					break
				}
				outputLines = append(outputLines, nxt)
				lookahead++
			}

			if output := strings.TrimSpace(strings.Join(outputLines, "\n")); output != "" {
				record.Output = ClampText(output, clampLimit)
			}
			idx = lookahead - 1
			failures = append(failures, record)
		}
		tests = append(tests, record)
		idx++
	}

	block := TestBlock{Target: target}
	if len(summary) > 0 {
		block.Summary = summary
	}
	block.Tests = tests
	block.Failures = failures
	return block
}

func hasSectionPrefix(msg string) bool {
	for _, prefix := range sectionPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

func isTestMarkerLine(msg string) bool {
	first, _ := utf8.DecodeRuneInString(msg)
	_, ok := testMarkers[first]
	return ok
}
