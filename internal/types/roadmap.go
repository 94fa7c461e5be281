package types

// SkillGap is the result of comparing a user's skills against the skills
// demanded by postings for a target role.
type SkillGap struct {
	TargetRole      string   `json:"target_role"`
	RolePostings    int      `json:"role_postings"`
	ExistingSkills  []string `json:"existing_skills"`
	MissingSkills   []string `json:"missing_skills"` // sorted by demand, most required first
	MatchPercentage float64  `json:"match_percentage"`
}

// Roadmap is an ordered multi-week learning plan for closing a skill gap.
type Roadmap struct {
	TargetRole string        `json:"target_role"`
	Weeks      []RoadmapWeek `json:"weeks"`
	PlanText   string        `json:"plan_text"`          // full plan as rendered text
	Source     string        `json:"source"`             // "llm" or "fallback"
	Model      string        `json:"model,omitempty"`    // model name when Source is "llm"
}

// RoadmapWeek is a single weekly entry in a roadmap.
type RoadmapWeek struct {
	Week      int      `json:"week"`
	Topics    []string `json:"topics"`
	Resources []string `json:"resources,omitempty"`
	Goal      string   `json:"goal,omitempty"`
}

// Roadmap source labels.
const (
	RoadmapSourceLLM      = "llm"
	RoadmapSourceFallback = "fallback"
)
