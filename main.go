package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-steputils/v2/stepenv"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-build-log-summary/logfinder"
	"github.com/bitrise-steplib/steps-build-log-summary/logparse"
	"github.com/bitrise-steplib/steps-build-log-summary/output"
	"github.com/bitrise-steplib/steps-build-log-summary/step"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()
	reporter := createStep(logger)

	cfg, err := reporter.ProcessConfig()
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return 1
	}

	result, err := reporter.Run(cfg)
	if err != nil {
		logger.Errorf("Run: %s", err)
		return 1
	}

	if err := reporter.Export(result); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return 1
	}

	return 0
}

func createStep(logger log.Logger) step.BuildLogReporter {
	envRepository := stepenv.NewRepository(env.NewRepository())
	inputParser := stepconf.NewInputParser(envRepository)
	pathModifier := pathutil.NewPathModifier()
	fileManager := fileutil.NewFileManager()
	outputExporter := export.NewExporter(command.NewFactory(envRepository), fileManager)

	finder := logfinder.NewFinder(logger)
	logParser := logparse.NewLogParser(logger)
	exporter := output.NewExporter(envRepository, logger, fileManager, outputExporter)

	return step.NewBuildLogReporter(inputParser, logger, pathModifier, finder, logParser, exporter)
}
