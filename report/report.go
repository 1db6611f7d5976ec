// Package report assembles the per-run summary artifact from parsed log
// entries.
package report

import (
	"sort"

	"github.com/bitrise-steplib/steps-build-log-summary/logparse"
)

// Counts aggregates the build outcomes across all entries.
type Counts struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Summary is the single document describing every parsed build log of a run.
// Entries are sorted ascending by name.
type Summary struct {
	LogDirectory string           `json:"log_directory"`
	TotalBuilds  int              `json:"total_builds"`
	Counts       Counts           `json:"summary"`
	Entries      []logparse.Entry `json:"entries"`
}

// NewSummary builds the summary for a run: a stable sort by entry name fixes
// the output order regardless of how the entries were produced.
func NewSummary(logDir string, entries []logparse.Entry) Summary {
	sorted := make([]logparse.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	var counts Counts
	for _, entry := range sorted {
		switch entry.Status {
		case logparse.StatusSucceeded:
			counts.Succeeded++
		case logparse.StatusFailed:
			counts.Failed++
		}
	}

	return Summary{
		LogDirectory: logDir,
		TotalBuilds:  len(sorted),
		Counts:       counts,
		Entries:      sorted,
	}
}

// Failed reports whether any build in the summary failed.
func (s Summary) Failed() bool {
	return s.Counts.Failed > 0
}
