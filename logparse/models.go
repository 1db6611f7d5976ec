package logparse

// Status values assigned to a parsed build log entry.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Status values assigned to an individual test record.
const (
	TestStatusPassed  = "passed"
	TestStatusFailed  = "failed"
	TestStatusSkipped = "skipped"
	TestStatusUnknown = "unknown"
)

// TestRecord is the parsed result of a single test case line. Output is only
// set for failed tests.
type TestRecord struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
	Output string `json:"output,omitempty"`
}

// Entry is the parsed result of one build job's log file. It is constructed
// once by ParseLog and never mutated afterwards.
type Entry struct {
	Name          string                 `json:"name"`
	Path          string                 `json:"path"`
	Recipe        string                 `json:"recipe,omitempty"`
	Version       string                 `json:"version,omitempty"`
	Status        string                 `json:"status"`
	TestTarget    string                 `json:"test_target,omitempty"`
	TestSummary   map[string]interface{} `json:"test_summary,omitempty"`
	Tests         []TestRecord           `json:"tests,omitempty"`
	Failures      []TestRecord           `json:"failures,omitempty"`
	Reason        string                 `json:"reason"`
	FailureOutput string                 `json:"failure_output,omitempty"`
}
