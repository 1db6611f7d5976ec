// Package logparse recovers structured build and test results from
// semi-structured CI build logs. Parsing is a pure, one-shot transformation
// of already captured text: no retries, no partial recovery beyond keeping
// the results gathered before the first unparseable line.
package logparse

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/hashicorp/go-version"
)

// Options tunes the parsing heuristics. Zero values fall back to the
// package defaults.
type Options struct {
	ClampLimit    int
	ContextWindow int
	ContextKeep   int
}

func (o Options) withDefaults() Options {
	if o.ClampLimit < 1 {
		o.ClampLimit = DefaultClampLimit
	}
	if o.ContextWindow < 1 {
		o.ContextWindow = DefaultContextWindow
	}
	if o.ContextKeep < 1 {
		o.ContextKeep = DefaultContextKeep
	}
	return o
}

// LogParser turns one build log's content into a structured Entry.
type LogParser interface {
	ParseLog(pth string, content string, opts Options) Entry
}

type logParser struct {
	logger log.Logger
}

// NewLogParser ...
func NewLogParser(logger log.Logger) LogParser {
	return logParser{logger: logger}
}

// ParseLog builds the Entry for a single log file. The entry name is the
// file's base name without its extension.
func (p logParser) ParseLog(pth string, content string, opts Options) Entry {
	opts = opts.withDefaults()
	messages := normalizeLines(content)

	entry := Entry{
		Name: strings.TrimSuffix(filepath.Base(pth), filepath.Ext(pth)),
		Path: pth,
	}

	entry.Recipe = extractEnvValue(messages, "RECIPE")
	entry.Version = detectVersion(messages)
	if entry.Version != "" {
		if _, err := version.NewVersion(entry.Version); err != nil {
			p.logger.Debugf("Detected version (%s) of %s is not a canonical version string", entry.Version, entry.Name)
		}
	}

	var errorIndices []int
	for i, msg := range messages {
		if strings.HasPrefix(msg, errorMarker) {
			errorIndices = append(errorIndices, i)
		}
	}

	entry.Status = StatusSucceeded
	if len(errorIndices) > 0 {
		entry.Status = StatusFailed
	}

	block := ParseTestBlock(messages, opts.ClampLimit)
	entry.TestTarget = block.Target
	entry.TestSummary = block.Summary
	entry.Tests = block.Tests
	entry.Failures = block.Failures

	if entry.Status == StatusSucceeded {
		entry.Reason = successReason(block)
	} else {
		entry.Reason, entry.FailureOutput = failureReason(block, messages, errorIndices, opts)
	}

	return entry
}

func successReason(block TestBlock) string {
	if failed, ok := summaryInt(block.Summary, "failed"); ok && failed == 0 {
		total, hasTotal := block.Summary["total"]
		passed, hasPassed := block.Summary["passed"]
		switch {
		case hasTotal && hasPassed:
			return fmt.Sprintf("All tests passed (%v of %v).", passed, total)
		case hasPassed:
			return fmt.Sprintf("All tests passed (%v).", passed)
		default:
			return "All tests passed."
		}
	}
	if len(block.Tests) > 0 {
		return "All tests completed without failures."
	}
	return "Completed without reported failures."
}

func failureReason(block TestBlock, messages []string, errorIndices []int, opts Options) (string, string) {
	if len(block.Failures) > 0 {
		names := make([]string, len(block.Failures))
		var outputs []string
		for i, failure := range block.Failures {
			names[i] = failure.Name
			if failure.Output != "" {
				outputs = append(outputs, failure.Output)
			}
		}

		reason := "Tests failed: " + strings.Join(names, ", ")
		output := ""
		if len(outputs) > 0 {
			output = ClampText(strings.Join(outputs, "\n\n"), opts.ClampLimit)
		}
		return reason, output
	}

	if ctx, ok := CollectFailureContext(messages, errorIndices, opts.ContextWindow, opts.ContextKeep, opts.ClampLimit); ok {
		return ctx.Reason, ctx.Output
	}

	return "Build failed for an unknown reason.", ""
}

// extractEnvValue returns the value of the first PREFIX: value line, or an
// empty string when no such line exists.
func extractEnvValue(messages []string, prefix string) string {
	target := prefix + ":"
	for _, msg := range messages {
		if strings.HasPrefix(msg, target) {
			return strings.TrimSpace(strings.SplitN(msg, ":", 2)[1])
		}
	}
	return ""
}

// A Detected version: line takes priority over a VERSION: environment echo.
func detectVersion(messages []string) string {
	for _, msg := range messages {
		if strings.HasPrefix(msg, "Detected version:") {
			return strings.TrimSpace(strings.SplitN(msg, ":", 2)[1])
		}
	}
	return extractEnvValue(messages, "VERSION")
}

func summaryInt(summary map[string]interface{}, key string) (int, bool) {
	value, ok := summary[key]
	if !ok {
		return 0, false
	}
	n, ok := value.(int)
	return n, ok
}
