package insights

import (
	"testing"

	"github.com/careersight/careersight/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func insightsPostings() []types.JobPosting {
	return []types.JobPosting{
		{ID: 1, Title: "Data Analyst", Company: "Acme", Location: "Bangalore", Category: "Analytics",
			ExperienceLevel: types.LevelEntry, Skills: []string{"python"}, SalaryMax: floatPtr(8)},
		{ID: 2, Title: "Data Scientist", Company: "Acme", Location: "Mumbai", Category: "Analytics",
			ExperienceLevel: types.LevelMid, Skills: []string{"python", "sql"}, SalaryMax: floatPtr(16)},
		{ID: 3, Title: "Data Scientist", Company: "Globex", Location: "Bangalore", Category: "Engineering",
			ExperienceLevel: types.LevelMid, Skills: []string{"sql"}}, // no salary data
	}
}

func TestAggregate_CountsAndTops(t *testing.T) {
	stats := Aggregate(insightsPostings())

	assert.Equal(t, 3, stats.TotalPostings)
	require.NotEmpty(t, stats.TopCompanies)
	assert.Equal(t, types.NameCount{Name: "Acme", Count: 2}, stats.TopCompanies[0])
	assert.Equal(t, types.NameCount{Name: "Bangalore", Count: 2}, stats.TopLocations[0])
	assert.Equal(t, map[string]int{"Analytics": 2, "Engineering": 1}, stats.CategoryCounts)
	assert.Equal(t, 2, stats.ExperienceLevels[types.LevelMid])
}

func TestAggregate_TopSkillFrequency(t *testing.T) {
	postings := []types.JobPosting{
		{ID: 1, Title: "A", Skills: []string{"python"}},
		{ID: 2, Title: "B", Skills: []string{"python", "sql"}},
	}

	stats := Aggregate(postings)

	require.NotEmpty(t, stats.TopSkills)
	assert.Equal(t, "python", stats.TopSkills[0].Name)
	assert.Equal(t, 2, stats.TopSkills[0].Count)
}

func TestAggregate_NilSalariesExcludedFromNumericsOnly(t *testing.T) {
	stats := Aggregate(insightsPostings())

	require.NotNil(t, stats.Salary)
	// Two postings carry salary data; the third still counts everywhere else.
	assert.Equal(t, 2, stats.Salary.SampleSize)
	assert.Equal(t, 8.0, stats.Salary.Min)
	assert.Equal(t, 16.0, stats.Salary.Max)
	assert.InDelta(t, 12.0, stats.Salary.Mean, 1e-9)
	assert.InDelta(t, 12.0, stats.Salary.Median, 1e-9)
	assert.Equal(t, 3, stats.TotalPostings)
}

func TestAggregate_EmptySet(t *testing.T) {
	stats := Aggregate(nil)

	assert.Zero(t, stats.TotalPostings)
	assert.Nil(t, stats.Salary)
	assert.Empty(t, stats.TopCompanies)
	assert.Empty(t, stats.TopSkills)
	assert.Empty(t, stats.CategoryCounts)
}

func TestAggregate_SkillCountsAreCaseInsensitive(t *testing.T) {
	postings := []types.JobPosting{
		{ID: 1, Title: "A", Skills: []string{"Python"}},
		{ID: 2, Title: "B", Skills: []string{"python"}},
	}

	stats := Aggregate(postings)

	require.Len(t, stats.TopSkills, 1)
	assert.Equal(t, 2, stats.TopSkills[0].Count)
	assert.Equal(t, "Python", stats.TopSkills[0].Name)
}

func TestAggregate_SalaryByExperience(t *testing.T) {
	stats := Aggregate(insightsPostings())

	require.NotEmpty(t, stats.SalaryByExperience)
	byLevel := make(map[string]types.ExperienceSalary)
	for _, e := range stats.SalaryByExperience {
		byLevel[e.Level] = e
	}
	assert.Equal(t, 1, byLevel[types.LevelMid].JobCount)
	assert.InDelta(t, 16.0, byLevel[types.LevelMid].AvgSalary, 1e-9)
}

func TestAggregate_LocationSalariesNeedMinimumSample(t *testing.T) {
	stats := Aggregate(insightsPostings())

	// No location reaches the five-posting threshold.
	assert.Empty(t, stats.LocationSalaries)
}

func TestSummary(t *testing.T) {
	summary := Summary(insightsPostings())

	assert.Equal(t, 3, summary.TotalPostings)
	assert.Equal(t, 2, summary.TotalCompanies)
	assert.Equal(t, "Bangalore", summary.TopLocation)
	assert.Equal(t, "Acme", summary.TopCompany)
	assert.InDelta(t, 12.0, summary.AvgSalary, 1e-9)
}

func TestSummary_Empty(t *testing.T) {
	summary := Summary(nil)

	assert.Zero(t, summary.TotalPostings)
	assert.Empty(t, summary.TopSkill)
	assert.Zero(t, summary.AvgSalary)
}

func TestSkillRecommendations(t *testing.T) {
	postings := []types.JobPosting{
		{ID: 1, Title: "A", Skills: []string{"python", "sql"}},
		{ID: 2, Title: "B", Skills: []string{"python", "spark"}},
		{ID: 3, Title: "C", Skills: []string{"sql"}},
	}

	recs := SkillRecommendations(postings, []string{"python"})

	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.NotEqual(t, "python", r.Skill)
	}
	// sql is most demanded among the remaining skills.
	assert.Equal(t, "sql", recs[0].Skill)
	assert.Equal(t, 2, recs[0].DemandCount)
}

func TestTrendingSkills(t *testing.T) {
	postings := []types.JobPosting{
		{ID: 1, Title: "A", Skills: []string{"Python", "sql"}},
		{ID: 2, Title: "B", Skills: []string{"python", "spark"}},
		{ID: 3, Title: "C", Skills: []string{"python"}},
	}

	trends := TrendingSkills(postings, 0)

	require.Len(t, trends, 3)
	// First-seen spelling wins despite later lowercase occurrences.
	assert.Equal(t, types.SkillTrend{Skill: "Python", Count: 3, Trend: "up"}, trends[0])
	assert.Equal(t, 1, trends[1].Count)
	// Equal counts break ties by name.
	assert.Equal(t, "spark", trends[1].Skill)
	assert.Equal(t, "sql", trends[2].Skill)
}

func TestTrendingSkills_CapsAtTopN(t *testing.T) {
	postings := []types.JobPosting{
		{ID: 1, Title: "A", Skills: []string{"python", "sql", "spark", "aws"}},
	}

	trends := TrendingSkills(postings, 2)

	require.Len(t, trends, 2)
	for _, tr := range trends {
		assert.Equal(t, "up", tr.Trend)
	}
}

func TestTrendingSkills_Empty(t *testing.T) {
	assert.Empty(t, TrendingSkills(nil, 0))
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1.0, percentile(sorted, 0), 1e-9)
	assert.InDelta(t, 2.5, percentile(sorted, 0.5), 1e-9)
	assert.InDelta(t, 4.0, percentile(sorted, 1), 1e-9)
	assert.Zero(t, percentile(nil, 0.5))
}
