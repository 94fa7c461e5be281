package types

// MarketStats bundles descriptive statistics over a normalized posting set
// for dashboard display.
type MarketStats struct {
	TotalPostings      int                `json:"total_postings"`
	TopCompanies       []NameCount        `json:"top_companies"`
	TopLocations       []NameCount        `json:"top_locations"`
	TopSkills          []NameCount        `json:"top_skills"`
	CategoryCounts     map[string]int     `json:"category_counts"`
	ExperienceLevels   map[string]int     `json:"experience_levels"`
	Salary             *SalarySummary     `json:"salary,omitempty"` // nil when no posting has salary data
	SalaryByExperience []ExperienceSalary `json:"salary_by_experience,omitempty"`
	TrendingRoles      []RoleStats        `json:"trending_roles,omitempty"`
	LocationSalaries   []LocationSalary   `json:"location_salaries,omitempty"`
	SkillSalaries      []SkillSalary      `json:"skill_salaries,omitempty"`
}

// NameCount is a generic name/frequency pair used for top-N aggregates.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SalarySummary describes the distribution of non-nil salary values.
type SalarySummary struct {
	Min         float64            `json:"min"`
	Max         float64            `json:"max"`
	Mean        float64            `json:"mean"`
	Median      float64            `json:"median"`
	Percentiles map[string]float64 `json:"percentiles"` // "25th", "50th", "75th", "90th"
	SampleSize  int                `json:"sample_size"`
}

// ExperienceSalary is the salary distribution within one experience level.
type ExperienceSalary struct {
	Level        string  `json:"level"`
	AvgSalary    float64 `json:"avg_salary"`
	MedianSalary float64 `json:"median_salary"`
	JobCount     int     `json:"job_count"`
}

// RoleStats describes posting volume and pay for one job title.
type RoleStats struct {
	Title     string  `json:"title"`
	Count     int     `json:"count"`
	AvgSalary float64 `json:"avg_salary"`
}

// LocationSalary is the salary distribution within one location.
type LocationSalary struct {
	Location     string  `json:"location"`
	AvgSalary    float64 `json:"avg_salary"`
	MedianSalary float64 `json:"median_salary"`
	JobCount     int     `json:"job_count"`
}

// SkillSalary correlates a skill with the average salary of postings that
// require it.
type SkillSalary struct {
	Skill     string  `json:"skill"`
	AvgSalary float64 `json:"avg_salary"`
	JobCount  int     `json:"job_count"`
}

// MarketSummary is the one-line dashboard view of a posting set.
type MarketSummary struct {
	TotalPostings  int     `json:"total_postings"`
	TotalCompanies int     `json:"total_companies"`
	TotalLocations int     `json:"total_locations"`
	TopLocation    string  `json:"top_location"`
	TopSkill       string  `json:"top_skill"`
	TopCompany     string  `json:"top_company"`
	AvgSalary      float64 `json:"avg_salary"`
}

// SkillTrend reports how often a skill appears across the posting set.
// Frequency stands in for trend direction until historical snapshots exist.
type SkillTrend struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
	Trend string `json:"trend"` // currently always "up"
}

// SkillRecommendation suggests an in-demand skill the user does not yet have.
type SkillRecommendation struct {
	Skill             string `json:"skill"`
	DemandCount       int    `json:"demand_count"`
	RelatedToExisting bool   `json:"related_to_existing"`
	Priority          string `json:"priority"` // "High" or "Medium"
}
