// Package output exports the run's artifacts: the JSON summary document and
// the related step outputs.
package output

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-build-log-summary/report"
)

const (
	parseResultEnvVarKey   = "BITRISE_BUILD_LOG_PARSE_RESULT"
	summaryPathEnvVarKey   = "BITRISE_BUILD_LOG_SUMMARY_PATH"
	failedLogsZipEnvVarKey = "BITRISE_FAILED_BUILD_LOGS_ZIP_PATH"

	failedLogsZipName = "failed_build_logs.zip"
)

// Exporter ...
type Exporter interface {
	ExportParseResult(failed bool)
	ExportSummary(pth string, summary report.Summary) error
	ExportFailedLogs(deployDir string, logPaths []string) error
}

type exporter struct {
	envRepository  env.Repository
	logger         log.Logger
	fileManager    fileutil.FileManager
	outputExporter export.Exporter
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, fileManager fileutil.FileManager, outputExporter export.Exporter) Exporter {
	return &exporter{
		envRepository:  envRepository,
		logger:         logger,
		fileManager:    fileManager,
		outputExporter: outputExporter,
	}
}

func (e exporter) ExportParseResult(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	if err := e.envRepository.Set(parseResultEnvVarKey, status); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", parseResultEnvVarKey, err)
	}
}

// ExportSummary writes the summary document wholesale to pth. A write
// failure is fatal to the run: without the artifact there is nothing to
// recover.
func (e exporter) ExportSummary(pth string, summary report.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize build log summary: %w", err)
	}

	if err := e.fileManager.Write(pth, string(data), 0644); err != nil {
		return fmt.Errorf("failed to write build log summary (%s): %w", pth, err)
	}

	if err := e.envRepository.Set(summaryPathEnvVarKey, pth); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", summaryPathEnvVarKey, err)
	}

	return nil
}

// ExportFailedLogs zips the failing builds' raw logs into the deploy dir so
// they get attached to the build as an artifact.
func (e exporter) ExportFailedLogs(deployDir string, logPaths []string) error {
	if len(logPaths) == 0 {
		return nil
	}

	zipPath := filepath.Join(deployDir, failedLogsZipName)
	if err := e.outputExporter.ExportOutputFilesZip(failedLogsZipEnvVarKey, logPaths, zipPath); err != nil {
		return fmt.Errorf("failed to export failed build logs archive: %w", err)
	}

	return nil
}
