package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		StatusApplied, StatusScreening, StatusInterviewing,
		StatusOffer, StatusRejected, StatusWithdrawn,
	} {
		assert.True(t, ValidStatus(s), "status %q should be valid", s)
	}

	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("ghosted"))
	assert.False(t, ValidStatus("Applied")) // case sensitive
}

func TestStoredProfileType(t *testing.T) {
	years := 4
	p := StoredProfile{
		UserID:          uuid.New(),
		Skills:          "python, sql",
		DesiredRole:     "Data Analyst",
		Locations:       []string{"Bangalore", "Remote"},
		ExperienceYears: &years,
	}

	assert.Equal(t, "python, sql", p.Skills)
	assert.Len(t, p.Locations, 2)
	assert.Nil(t, p.SalaryMin)
}

func TestApplicationType(t *testing.T) {
	a := Application{
		UserID:    uuid.New(),
		PostingID: 42,
		JobTitle:  "Backend Engineer",
		Status:    StatusApplied,
	}

	assert.Equal(t, 42, a.PostingID)
	assert.Equal(t, StatusApplied, a.Status)
	assert.Empty(t, a.Notes)
}
