package step

import (
	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bitrise-io/go-utils/stringutil"
	"github.com/bitrise-steplib/steps-build-log-summary/logparse"
	"github.com/bitrise-steplib/steps-build-log-summary/report"
)

const failureOutputTailLines = 10

func (s BuildLogReporter) printSummary(summary report.Summary) {
	s.logger.Println()
	s.logger.Infof("Parsed %d build logs", summary.TotalBuilds)
	s.logger.Printf("- %s: %d", colorstring.Green("succeeded"), summary.Counts.Succeeded)
	s.logger.Printf("- %s: %d", colorstring.Red("failed"), summary.Counts.Failed)

	for _, entry := range summary.Entries {
		if entry.Status != logparse.StatusFailed {
			continue
		}

		s.logger.Println()
		s.logger.Errorf("%s: %s", entry.Name, entry.Reason)
		if entry.FailureOutput != "" {
			s.logger.Debugf("Last lines of the failure output:")
			s.logger.Debugf("%s", stringutil.LastNLines(entry.FailureOutput, failureOutputTailLines))
		}
	}

	if !summary.Failed() && summary.TotalBuilds > 0 {
		s.logger.Println()
		s.logger.Donef("All builds completed without reported failures.")
	}
}
