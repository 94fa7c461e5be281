package skills

import (
	"testing"

	"github.com/careersight/careersight/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gapPostings() []types.JobPosting {
	return []types.JobPosting{
		{ID: 1, Title: "Data Scientist", Skills: []string{"Python", "SQL", "Machine Learning"}},
		{ID: 2, Title: "Senior Data Scientist", Skills: []string{"Python", "Deep Learning", "Machine Learning"}},
		{ID: 3, Title: "Frontend Developer", Skills: []string{"React", "TypeScript"}},
	}
}

func TestAnalyzeGap_MissingSortedByDemand(t *testing.T) {
	gap := AnalyzeGap([]string{"SQL"}, "Data Scientist", gapPostings())

	assert.Equal(t, 2, gap.RolePostings)
	assert.Equal(t, []string{"SQL"}, gap.ExistingSkills)
	// Python and Machine Learning appear twice, Deep Learning once.
	require.Len(t, gap.MissingSkills, 3)
	assert.ElementsMatch(t, []string{"Machine Learning", "Python"}, gap.MissingSkills[:2])
	assert.Equal(t, "Deep Learning", gap.MissingSkills[2])
	assert.InDelta(t, 25.0, gap.MatchPercentage, 1e-9)
}

func TestAnalyzeGap_KeywordFallback(t *testing.T) {
	// No title contains "Principal Frontend", so the search widens to the
	// individual words and lands on the frontend posting.
	gap := AnalyzeGap(nil, "Principal Frontend", gapPostings())

	assert.Equal(t, 1, gap.RolePostings)
	assert.ElementsMatch(t, []string{"React", "TypeScript"}, gap.MissingSkills)
}

func TestAnalyzeGap_ContainmentMatching(t *testing.T) {
	gap := AnalyzeGap([]string{"postgresql"}, "Data Scientist", gapPostings())

	// "postgresql" contains "sql", so SQL counts as existing.
	assert.Contains(t, gap.ExistingSkills, "SQL")
	assert.NotContains(t, gap.MissingSkills, "SQL")
}

func TestAnalyzeGap_NoMatchingRole(t *testing.T) {
	gap := AnalyzeGap([]string{"Python"}, "Zookeeper", gapPostings())

	assert.Zero(t, gap.RolePostings)
	assert.Empty(t, gap.MissingSkills)
	assert.Zero(t, gap.MatchPercentage)
}
