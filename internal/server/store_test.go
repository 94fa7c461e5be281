package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careersight/careersight/internal/types"
)

func TestStore_ReplaceBumpsVersion(t *testing.T) {
	store := NewStore(nil)
	assert.Zero(t, store.Version())
	assert.Zero(t, store.Count())

	n := store.Replace([]types.RawPosting{
		{JobID: 1, JobTitle: "Data Analyst", Skills: []string{"sql", "excel"}},
	})
	assert.Equal(t, 1, n)
	assert.Equal(t, uint64(1), store.Version())
	assert.Equal(t, 1, store.Count())

	store.Replace([]types.RawPosting{
		{JobID: 2, JobTitle: "Data Scientist", Skills: []string{"python"}},
	})
	assert.Equal(t, uint64(2), store.Version())
	assert.Equal(t, 1, store.Count())
	assert.Equal(t, 2, store.Postings()[0].ID)
}

func TestStore_EnrichesSkillsFromDescription(t *testing.T) {
	store := NewStore(nil)
	store.Replace([]types.RawPosting{
		{
			JobID:       1,
			JobTitle:    "Backend Engineer",
			Description: "Build services in golang with postgresql and docker.",
		},
	})

	skills := store.Postings()[0].Skills
	assert.Contains(t, skills, "Go")
	assert.Contains(t, skills, "SQL")
	assert.Contains(t, skills, "Docker")
}

func TestStore_EnrichmentDedupesCaseVariants(t *testing.T) {
	store := NewStore(nil)
	store.Replace([]types.RawPosting{
		{
			JobID:       1,
			JobTitle:    "Data Engineer",
			Skills:      []string{"python"},
			Description: "We use Python daily.",
		},
	})

	merged := store.Postings()[0].Skills
	lower := make(map[string]int, len(merged))
	for _, skill := range merged {
		lower[strings.ToLower(skill)]++
	}
	assert.Equal(t, 1, lower["python"], "source casing and canonical form must collapse to one entry")
	assert.Equal(t, "python", merged[0], "first-seen spelling wins")
}

func TestStore_ModelReusedUntilReplace(t *testing.T) {
	store := NewStore(nil)
	store.Replace([]types.RawPosting{
		{JobID: 1, JobTitle: "Data Analyst", Skills: []string{"sql"}},
	})

	m1 := store.Model()
	m2 := store.Model()
	require.NotNil(t, m1)
	assert.Same(t, m1, m2, "model cached for unchanged corpus")

	store.Replace([]types.RawPosting{
		{JobID: 1, JobTitle: "Data Analyst", Skills: []string{"sql"}},
	})
	m3 := store.Model()
	assert.NotSame(t, m1, m3, "replace invalidates the cached model")
}

func TestStore_PostingsReturnsCopy(t *testing.T) {
	store := NewStore(nil)
	store.Replace([]types.RawPosting{
		{JobID: 1, JobTitle: "Data Analyst"},
	})

	snapshot := store.Postings()
	snapshot[0].Title = "mutated"

	assert.Equal(t, "Data Analyst", store.Postings()[0].Title)
}
