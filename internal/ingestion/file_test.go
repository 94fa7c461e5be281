package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBatch = `[
	{
		"job_id": 1,
		"job_title": "Data Analyst",
		"company": "Acme",
		"location": "bangalore",
		"description": "Analyze   sales data\r\nacross regions",
		"salary": "5-8 LPA",
		"experience": "3-5 years",
		"skills": ["python", "sql"]
	},
	{
		"job_id": 2,
		"job_title": "Backend Engineer",
		"skills_text": "go, postgres, docker"
	}
]`

func TestReadBatch_Valid(t *testing.T) {
	postings, invalid, err := ReadBatch(strings.NewReader(sampleBatch))
	require.NoError(t, err)
	assert.Empty(t, invalid)
	require.Len(t, postings, 2)

	assert.Equal(t, 1, postings[0].JobID)
	assert.Equal(t, "Data Analyst", postings[0].JobTitle)
	assert.Equal(t, []string{"python", "sql"}, postings[0].Skills)
	// Description is cleaned on the way in.
	assert.Equal(t, "Analyze sales data\nacross regions", postings[0].Description)

	assert.Equal(t, "go, postgres, docker", postings[1].SkillsText)
}

func TestReadBatch_SkipsInvalidRecords(t *testing.T) {
	batch := `[
		{"job_id": 1, "job_title": "Data Analyst"},
		{"job_id": "two"},
		{"job_id": 3, "job_title": "ML Engineer"}
	]`

	postings, invalid, err := ReadBatch(strings.NewReader(batch))
	require.NoError(t, err)
	require.Len(t, postings, 2)
	assert.Equal(t, 1, postings[0].JobID)
	assert.Equal(t, 3, postings[1].JobID)

	require.Len(t, invalid, 1)
	assert.Equal(t, 1, invalid[0].Index)
	assert.Contains(t, invalid[0].Error(), "record 1")
}

func TestReadBatch_NotAnArray(t *testing.T) {
	_, _, err := ReadBatch(strings.NewReader(`{"job_id": 1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a JSON array")
}

func TestLoadBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postings.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleBatch), 0644))

	postings, invalid, err := LoadBatch(path)
	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Len(t, postings, 2)
}

func TestLoadBatch_MissingFile(t *testing.T) {
	_, _, err := LoadBatch(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
