package db

import (
	"time"

	"github.com/google/uuid"
)

// Application status constants
const (
	StatusApplied      = "applied"
	StatusScreening    = "screening"
	StatusInterviewing = "interviewing"
	StatusOffer        = "offer"
	StatusRejected     = "rejected"
	StatusWithdrawn    = "withdrawn"
)

// ValidStatus reports whether s is a known application status.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterviewing,
		StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// StoredProfile is a persisted user profile row.
type StoredProfile struct {
	UserID          uuid.UUID `json:"user_id"`
	Skills          string    `json:"skills"`
	Summary         string    `json:"summary,omitempty"`
	DesiredRole     string    `json:"desired_role,omitempty"`
	Locations       []string  `json:"locations,omitempty"`
	ExperienceYears *int      `json:"experience_years,omitempty"`
	SalaryMin       *float64  `json:"salary_min,omitempty"`
	SalaryMax       *float64  `json:"salary_max,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Application is a persisted job application row.
type Application struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PostingID int       `json:"posting_id"`
	JobTitle  string    `json:"job_title"`
	Company   string    `json:"company,omitempty"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	AppliedAt time.Time `json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SavedSearch is a persisted search that can be re-run against new batches.
type SavedSearch struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Query           string    `json:"query"`
	Location        string    `json:"location,omitempty"`
	ExperienceYears *int      `json:"experience_years,omitempty"`
	SalaryMin       *float64  `json:"salary_min,omitempty"`
	SalaryMax       *float64  `json:"salary_max,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Preferences is a persisted notification preference row, one per user.
type Preferences struct {
	UserID       uuid.UUID `json:"user_id"`
	EmailMatches bool      `json:"email_matches"`
	EmailDigest  bool      `json:"email_digest"`
	DigestDay    string    `json:"digest_day,omitempty"` // monday..sunday
	UpdatedAt    time.Time `json:"updated_at"`
}
