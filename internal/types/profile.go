package types

import "strings"

// UserProfile describes the user side of a matching request. Profiles are
// supplied per request; the matching pipeline does not require them to be
// persisted.
type UserProfile struct {
	Skills          []string `json:"skills"`
	Summary         string   `json:"summary,omitempty"`
	DesiredRole     string   `json:"desired_role,omitempty"`
	Locations       []string `json:"locations,omitempty"`
	ExperienceYears *int     `json:"experience_years,omitempty"`
	SalaryMin       *float64 `json:"salary_min,omitempty"`
	SalaryMax       *float64 `json:"salary_max,omitempty"`
}

// QueryText concatenates the profile fields into the query document used by
// the ranker. Skills are weighted above the desired role and summary by
// appearing twice.
func (u *UserProfile) QueryText() string {
	parts := make([]string, 0, 4)
	if skills := strings.Join(u.Skills, " "); skills != "" {
		parts = append(parts, skills, skills)
	}
	if u.DesiredRole != "" {
		parts = append(parts, u.DesiredRole)
	}
	if u.Summary != "" {
		parts = append(parts, u.Summary)
	}
	return strings.Join(parts, " ")
}

// MatchResult is one ranked posting. Results are derived per request and
// never persisted.
type MatchResult struct {
	PostingID   int     `json:"posting_id"`
	Score       float64 `json:"score"` // cosine similarity in [0,1]
	Rank        int     `json:"rank"`  // 1-based position in the ordering
	Explanation string  `json:"explanation,omitempty"`
}
