package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"
	result := CleanText(input)
	assert.Equal(t, "line one\nline two\nline three", result)
}

func TestCleanText_CollapsesSpaces(t *testing.T) {
	input := "Requires   python    and  sql"
	assert.Equal(t, "Requires python and sql", CleanText(input))
}

func TestCleanText_PreservesHeadingsAndBullets(t *testing.T) {
	input := "## Requirements\n  - 3+ years with python\n  - sql experience"
	result := CleanText(input)
	assert.Contains(t, result, "## Requirements")
	assert.Contains(t, result, "  - 3+ years with python")
	assert.Contains(t, result, "  - sql experience")
}

func TestCleanText_CollapsesBlankRuns(t *testing.T) {
	input := "para one\n\n\n\n\npara two"
	assert.Equal(t, "para one\n\npara two", CleanText(input))
}

func TestCleanText_TrimsEdges(t *testing.T) {
	input := "\n\n  job description  \n\n"
	assert.Equal(t, "job description", CleanText(input))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}
