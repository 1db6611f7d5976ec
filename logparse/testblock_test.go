package logparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenStructuredReport_WhenParsed_ThenExtractsSummaryAndRecords(t *testing.T) {
	// Given
	messages := []string{
		"Using container runtime podman",
		"Test Results for demo:",
		"total: 3",
		"passed: 2",
		"failed: 1",
		"Detailed Results:",
		"✓ caseA",
		"✗ caseB: some error",
		"  assertion mismatch",
		"  expected 4, got 5",
		"Post job cleanup",
	}

	// When
	block := ParseTestBlock(messages, DefaultClampLimit)

	// Then
	assert.Equal(t, "demo", block.Target)
	assert.Equal(t, map[string]interface{}{"total": 3, "passed": 2, "failed": 1}, block.Summary)

	require.Len(t, block.Tests, 2)
	assert.Equal(t, TestRecord{Name: "caseA", Status: TestStatusPassed}, block.Tests[0])

	require.Len(t, block.Failures, 1)
	failure := block.Failures[0]
	assert.Equal(t, "caseB", failure.Name)
	assert.Equal(t, "some error", failure.Note)
	assert.Equal(t, "assertion mismatch\nexpected 4, got 5", failure.Output)
}

func Test_GivenNoReportHeader_WhenParsed_ThenEmptyBlock(t *testing.T) {
	// Given
	messages := []string{"building...", "done"}

	// When
	block := ParseTestBlock(messages, DefaultClampLimit)

	// Then
	assert.True(t, block.Empty())
}

func Test_GivenMultipleReportSections_WhenParsed_ThenLastOneWins(t *testing.T) {
	// Given
	messages := []string{
		"Test Results for first:",
		"total: 5",
		"Detailed Results:",
		"✗ old_failure",
		"Test Results for second:",
		"total: 1",
		"Detailed Results:",
		"✓ fresh_case",
	}

	// When
	block := ParseTestBlock(messages, DefaultClampLimit)

	// Then
	assert.Equal(t, "second", block.Target)
	assert.Equal(t, map[string]interface{}{"total": 1}, block.Summary)
	require.Len(t, block.Tests, 1)
	assert.Equal(t, "fresh_case", block.Tests[0].Name)
	assert.Empty(t, block.Failures)
}

func Test_GivenHeaderWithoutTestLines_WhenParsed_ThenSummaryOnly(t *testing.T) {
	// Given
	messages := []string{
		"Test Results for empty:",
		"total: 0",
	}

	// When
	block := ParseTestBlock(messages, DefaultClampLimit)

	// Then
	assert.Equal(t, "empty", block.Target)
	assert.Equal(t, map[string]interface{}{"total": 0}, block.Summary)
	assert.Empty(t, block.Tests)
	assert.Empty(t, block.Failures)
}

func Test_GivenNonIntegerSummaryValue_WhenParsed_ThenKeptAsString(t *testing.T) {
	// Given
	messages := []string{
		"Test Results for mixed:",
		"Duration: 12.5s",
		"Passed: 4",
	}

	// When
	block := ParseTestBlock(messages, DefaultClampLimit)

	// Then
	assert.Equal(t, map[string]interface{}{"duration": "12.5s", "passed": 4}, block.Summary)
}

func Test_GivenNoteEqualToStatus_WhenParsed_ThenNoteDropped(t *testing.T) {
	// Given
	messages := []string{
		"Test Results for demo:",
		"Detailed Results:",
		"⊝ caseC: Skipped",
		"✗ caseD: FAILED",
	}

	// When
	block := ParseTestBlock(messages, DefaultClampLimit)

	// Then
	require.Len(t, block.Tests, 2)
	assert.Equal(t, TestStatusSkipped, block.Tests[0].Status)
	assert.Empty(t, block.Tests[0].Note)
	assert.Equal(t, TestStatusFailed, block.Tests[1].Status)
	assert.Empty(t, block.Tests[1].Note)
}

func Test_GivenMarkerWithoutName_WhenParsed_ThenRecordsEmptyName(t *testing.T) {
	// Given
	messages := []string{
		"Test Results for demo:",
		"Detailed Results:",
		"✓",
	}

	// When
	block := ParseTestBlock(messages, DefaultClampLimit)

	// Then
	require.Len(t, block.Tests, 1)
	assert.Equal(t, TestRecord{Name: "", Status: TestStatusPassed}, block.Tests[0])
}

func Test_GivenFailureOutput_WhenNextMarkerReached_ThenOutputCollectionStops(t *testing.T) {
	// Given
	messages := []string{
		"Test Results for demo:",
		"Detailed Results:",
		"✗ first",
		"boom",
		"",
		"more detail",
		"✓ second",
	}

	// When
	block := ParseTestBlock(messages, DefaultClampLimit)

	// Then
	require.Len(t, block.Tests, 2)
	require.Len(t, block.Failures, 1)
	assert.Equal(t, "boom\n\nmore detail", block.Failures[0].Output)
	assert.Equal(t, "second", block.Tests[1].Name)
}

func Test_GivenUnrecognizedLine_WhenParsingTestRecords_ThenParsingStops(t *testing.T) {
	// Given
	messages := []string{
		"Test Results for demo:",
		"Detailed Results:",
		"✓ caseA",
		"stray output line",
		"✓ caseB",
	}

	// When
	block := ParseTestBlock(messages, DefaultClampLimit)

	// Then
	require.Len(t, block.Tests, 1)
	assert.Equal(t, "caseA", block.Tests[0].Name)
}

func Test_GivenSummaryLineWithoutColon_WhenParsed_ThenSummaryParsingStops(t *testing.T) {
	// Given
	messages := []string{
		"Test Results for demo:",
		"total: 2",
		"something else entirely",
		"✓ never_reached",
	}

	// When
	block := ParseTestBlock(messages, DefaultClampLimit)

	// Then
	assert.Equal(t, map[string]interface{}{"total": 2}, block.Summary)
	assert.Empty(t, block.Tests)
}

func Test_GivenLongFailureOutput_WhenParsed_ThenOutputClamped(t *testing.T) {
	// Given
	messages := []string{
		"Test Results for demo:",
		"Detailed Results:",
		"✗ noisy",
		"0123456789abcdef",
	}

	// When
	block := ParseTestBlock(messages, 10)

	// Then
	require.Len(t, block.Failures, 1)
	assert.Equal(t, "0123456789\n... (truncated, 6 more characters)", block.Failures[0].Output)
}
