package logparse

import "strings"

// Defaults for the fallback context heuristics.
const (
	DefaultContextWindow = 30
	DefaultContextKeep   = 20
)

// Housekeeping lines dropped from the fallback context window.
var noisePrefixes = []string{
	"[command]",
	"Post job cleanup",
	"Temporary overriding",
	"Adding repository directory",
	"Cleaning up",
	"shell:",
	"env:",
}

var failureKeywords = []string{"error", "failed", "exception", "traceback", "abort", "denied"}

// FailureContext is the diagnostic excerpt selected for a failed build that
// has no structured test failures.
type FailureContext struct {
	Reason string
	Output string
}

// CollectFailureContext extracts a bounded window of context preceding the
// first error marker: up to window messages back, noise and blank lines
// dropped, kept to the last keep lines. The reason is the last line matching
// a failure keyword, or simply the last line when none matches. It returns
// false when no usable context remains.
func CollectFailureContext(messages []string, errorIndices []int, window, keep, clampLimit int) (FailureContext, bool) {
	if len(errorIndices) == 0 {
		return FailureContext{}, false
	}

	idx := errorIndices[0]
	start := idx - window
	if start < 0 {
		start = 0
	}

	var context []string
	for _, msg := range messages[start:idx] {
		if msg == "" || hasNoisePrefix(msg) {
			continue
		}
		context = append(context, msg)
	}
	if len(context) == 0 {
		return FailureContext{}, false
	}

	if len(context) > keep {
		context = context[len(context)-keep:]
	}

	reason := context[len(context)-1]
	for i := len(context) - 1; i >= 0; i-- {
		if containsFailureKeyword(context[i]) {
			reason = context[i]
			break
		}
	}

	output := ClampText(strings.TrimSpace(strings.Join(context, "\n")), clampLimit)
	return FailureContext{Reason: reason, Output: output}, true
}

func hasNoisePrefix(msg string) bool {
	for _, prefix := range noisePrefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

func containsFailureKeyword(msg string) bool {
	lowered := strings.ToLower(msg)
	for _, keyword := range failureKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
