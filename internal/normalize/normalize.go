// Package normalize cleans raw job-posting records into the canonical schema
// consumed by the ranking and insights pipelines. Normalization never drops a
// record: a field that cannot be parsed degrades to nil (numeric ranges) or
// passes through cleaned (text), and the rest of the record survives.
package normalize

import (
	"regexp"
	"strings"

	"github.com/careersight/careersight/internal/types"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Postings normalizes a batch of raw records. The output has the same length
// and order as the input.
func Postings(raw []types.RawPosting) []types.JobPosting {
	out := make([]types.JobPosting, 0, len(raw))
	for _, r := range raw {
		out = append(out, Posting(r))
	}
	return out
}

// Posting normalizes a single raw record.
func Posting(r types.RawPosting) types.JobPosting {
	p := types.JobPosting{
		ID:          r.JobID,
		Title:       CleanTitle(r.JobTitle),
		Company:     strings.TrimSpace(r.Company),
		Location:    CleanLocation(r.Location),
		Category:    strings.TrimSpace(r.Category),
		Description: strings.TrimSpace(r.Description),
		Skills:      CleanSkills(r.Skills, r.SkillsText),
	}

	p.SalaryMin, p.SalaryMax = ParseSalary(r.Salary)
	p.ExpMin, p.ExpMax = ParseExperience(r.Experience)
	p.ExperienceLevel = experienceLevel(p.ExpMin, p.ExpMax)

	return p
}

// CleanTitle collapses whitespace and title-cases a job title. Empty input
// becomes "Not Specified" so downstream aggregates never key on "".
func CleanTitle(title string) string {
	title = whitespaceRe.ReplaceAllString(strings.TrimSpace(title), " ")
	if title == "" {
		return "Not Specified"
	}
	return titleCase(title)
}

// CleanSkills merges a skill list and a free-text skill string into a
// deduplicated slice. Tokens are split on commas, semicolons, and pipes,
// trimmed, and single-character leftovers are dropped. Deduplication is
// case-insensitive, keeping the first spelling seen.
func CleanSkills(list []string, freeText string) []string {
	tokens := make([]string, 0, len(list)+4)
	tokens = append(tokens, list...)
	if freeText != "" {
		tokens = append(tokens, splitSkills(freeText)...)
	}

	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		for _, part := range splitSkills(tok) {
			part = strings.TrimSpace(part)
			if len(part) < 2 {
				continue
			}
			key := strings.ToLower(part)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, part)
		}
	}
	return out
}

var skillDelimRe = regexp.MustCompile(`[,;|]`)

func splitSkills(s string) []string {
	return skillDelimRe.Split(s, -1)
}

// experienceLevel maps an experience range to a coarse level label using the
// midpoint. An unparsed range defaults to Entry.
func experienceLevel(expMin, expMax *int) string {
	if expMin == nil || expMax == nil {
		return types.LevelEntry
	}
	avg := float64(*expMin+*expMax) / 2
	switch {
	case avg <= 2:
		return types.LevelEntry
	case avg <= 5:
		return types.LevelMid
	case avg <= 10:
		return types.LevelSenior
	default:
		return types.LevelExpert
	}
}

// titleCase uppercases the first letter of each space-separated word without
// touching interior capitalization (so "iOS Developer" survives).
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		if w == strings.ToLower(w) {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
