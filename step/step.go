package step

import (
	"fmt"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-build-log-summary/logfinder"
	"github.com/bitrise-steplib/steps-build-log-summary/logparse"
	"github.com/bitrise-steplib/steps-build-log-summary/output"
	"github.com/bitrise-steplib/steps-build-log-summary/report"
	shellquote "github.com/kballard/go-shellquote"
)

// Input ...
type Input struct {
	LogDir      string `env:"log_dir,required"`
	SummaryPath string `env:"summary_path,required"`

	ExcludeLogPatterns    string `env:"exclude_log_patterns"`
	MaxFailureOutputChars int    `env:"max_failure_output_chars"`

	// Debug
	Verbose bool `env:"verbose,opt[yes,no]"`

	// Output export
	DeployDir string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	LogDir      string
	SummaryPath string

	ExcludeLogPatterns []string
	ClampLimit         int

	DeployDir string
}

// Result ...
type Result struct {
	Summary        report.Summary
	SummaryPath    string
	DeployDir      string
	FailedLogPaths []string
}

// BuildLogReporter ...
type BuildLogReporter struct {
	inputParser  stepconf.InputParser
	logger       log.Logger
	pathModifier pathutil.PathModifier
	finder       logfinder.Finder
	logParser    logparse.LogParser
	exporter     output.Exporter
}

// NewBuildLogReporter ...
func NewBuildLogReporter(inputParser stepconf.InputParser, logger log.Logger, pathModifier pathutil.PathModifier, finder logfinder.Finder, logParser logparse.LogParser, exporter output.Exporter) BuildLogReporter {
	return BuildLogReporter{
		inputParser:  inputParser,
		logger:       logger,
		pathModifier: pathModifier,
		finder:       finder,
		logParser:    logParser,
		exporter:     exporter,
	}
}

// ProcessConfig ...
func (s BuildLogReporter) ProcessConfig() (Config, error) {
	var input Input
	if err := s.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	s.logger.Println()

	s.logger.EnableDebugLog(input.Verbose)

	// A log dir that does not exist is not an error: the run produces an
	// empty but valid summary.
	logDir, err := s.pathModifier.AbsPath(input.LogDir)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute log directory path: %w", err)
	}

	var excludePatterns []string
	if input.ExcludeLogPatterns != "" {
		excludePatterns, err = shellquote.Split(input.ExcludeLogPatterns)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse exclude log patterns (%s): %w", input.ExcludeLogPatterns, err)
		}
	}

	clampLimit := input.MaxFailureOutputChars
	if clampLimit < 1 {
		clampLimit = logparse.DefaultClampLimit
	}

	return Config{
		LogDir:             logDir,
		SummaryPath:        input.SummaryPath,
		ExcludeLogPatterns: excludePatterns,
		ClampLimit:         clampLimit,
		DeployDir:          input.DeployDir,
	}, nil
}

// Run ...
func (s BuildLogReporter) Run(cfg Config) (Result, error) {
	logPaths, err := s.finder.FindLogs(cfg.LogDir, cfg.ExcludeLogPatterns)
	if err != nil {
		return Result{}, fmt.Errorf("failed to collect build logs: %w", err)
	}

	if len(logPaths) == 0 {
		s.logger.Printf("No build logs found in %s", cfg.LogDir)
	}

	opts := logparse.Options{ClampLimit: cfg.ClampLimit}
	var entries []logparse.Entry
	var failedLogPaths []string

	for _, pth := range logPaths {
		content, err := s.finder.ReadLog(pth)
		if err != nil {
			// One unreadable log must not abort the batch.
			s.logger.Warnf("Skipping build log: %s", err)
			continue
		}

		entry := s.logParser.ParseLog(pth, content, opts)
		if entry.Status == logparse.StatusFailed {
			failedLogPaths = append(failedLogPaths, pth)
		}
		entries = append(entries, entry)
	}

	summary := report.NewSummary(cfg.LogDir, entries)
	s.printSummary(summary)

	return Result{
		Summary:        summary,
		SummaryPath:    cfg.SummaryPath,
		DeployDir:      cfg.DeployDir,
		FailedLogPaths: failedLogPaths,
	}, nil
}

// Export ...
func (s BuildLogReporter) Export(result Result) error {
	s.exporter.ExportParseResult(result.Summary.Failed())

	if err := s.exporter.ExportSummary(result.SummaryPath, result.Summary); err != nil {
		return err
	}

	if result.DeployDir != "" && len(result.FailedLogPaths) > 0 {
		if err := s.exporter.ExportFailedLogs(result.DeployDir, result.FailedLogPaths); err != nil {
			s.logger.Warnf("%s", err)
		}
	}

	return nil
}
