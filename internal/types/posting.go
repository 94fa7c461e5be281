// Package types provides type definitions for structured data used throughout the careersight system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// RawPosting represents a job posting record as received from an ingestion
// source, before any cleaning. Salary, experience, and skills are free text
// and may be malformed or empty.
type RawPosting struct {
	JobID       int      `json:"job_id"`
	JobTitle    string   `json:"job_title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Salary      string   `json:"salary,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	SkillsText  string   `json:"skills_text,omitempty"` // free-text alternative to Skills
}

// JobPosting is the canonical, normalized form of a posting. It is immutable
// once produced by the normalizer; a new ingestion batch replaces prior ones.
type JobPosting struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	SalaryMin       *float64 `json:"salary_min"` // nil when the source value was unparsable
	SalaryMax       *float64 `json:"salary_max"`
	ExpMin          *int     `json:"exp_min"`
	ExpMax          *int     `json:"exp_max"`
	ExperienceLevel string   `json:"experience_level"`
	Skills          []string `json:"skills"` // deduplicated, normalized order preserved
}

// SkillsText renders the skill set as a single comma-delimited string for
// text-vectorization input.
func (p *JobPosting) SkillsText() string {
	return strings.Join(p.Skills, ", ")
}

// CombinedText builds the text used to represent this posting in the ranking
// feature space. The title is repeated to weight it above the other fields.
func (p *JobPosting) CombinedText() string {
	parts := make([]string, 0, 5)
	if p.Title != "" {
		parts = append(parts, p.Title, p.Title)
	}
	if skills := p.SkillsText(); skills != "" {
		parts = append(parts, skills)
	}
	if p.Company != "" {
		parts = append(parts, p.Company)
	}
	if p.Description != "" {
		parts = append(parts, p.Description)
	}
	return strings.Join(parts, " ")
}

// Experience level labels derived from the midpoint of a posting's
// experience range.
const (
	LevelEntry  = "Entry Level (0-2 years)"
	LevelMid    = "Mid Level (3-5 years)"
	LevelSenior = "Senior Level (6-10 years)"
	LevelExpert = "Expert Level (10+ years)"
)
