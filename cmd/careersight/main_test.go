package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Commas", "python, sql,docker", []string{"python", "sql", "docker"}},
		{"Mixed separators", "go;kubernetes|aws", []string{"go", "kubernetes", "aws"}},
		{"Empty items dropped", "python,, ,sql", []string{"python", "sql"}},
		{"Empty string", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.input))
		})
	}
}

func TestLoadPostings(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "postings.json")
	content := `[
		{"job_id": 1, "job_title": "Data Analyst", "salary": "5-8 LPA", "location": "bengaluru"},
		{"job_title": "missing id"},
		{"job_id": 2, "job_title": "Backend Engineer", "skills_text": "go, sql"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	postings, err := loadPostings(path)
	require.NoError(t, err)
	require.Len(t, postings, 2)

	assert.Equal(t, 1, postings[0].ID)
	assert.Equal(t, "Bangalore", postings[0].Location)
	require.NotNil(t, postings[0].SalaryMin)
	assert.InDelta(t, 5.0, *postings[0].SalaryMin, 0.001)
	assert.Equal(t, []string{"go", "sql"}, postings[1].Skills)
}

func TestLoadPostings_MissingFile(t *testing.T) {
	_, err := loadPostings("/nonexistent/postings.json")
	assert.Error(t, err)
}

func TestWriteJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeJSON(path, map[string]int{"count": 3}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 3, decoded["count"])
}

func TestRecommendCommand_MissingRequiredFlags(t *testing.T) {
	out, err := execute(t, "recommend")
	require.Error(t, err)
	assert.Contains(t, out, "required")
}

func TestInsightsCommand_MissingRequiredFlags(t *testing.T) {
	out, err := execute(t, "insights")
	require.Error(t, err)
	assert.Contains(t, out, "required")
}

func TestIngestCommand_NothingToIngest(t *testing.T) {
	_, err := execute(t, "ingest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to ingest")
}
