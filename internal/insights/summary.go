package insights

import (
	"sort"
	"strings"

	"github.com/careersight/careersight/internal/types"
)

// Summary condenses a posting set into the one-line dashboard view.
func Summary(postings []types.JobPosting) types.MarketSummary {
	stats := Aggregate(postings)

	summary := types.MarketSummary{
		TotalPostings: stats.TotalPostings,
	}

	companies := make(map[string]bool)
	locations := make(map[string]bool)
	for i := range postings {
		if postings[i].Company != "" {
			companies[postings[i].Company] = true
		}
		if postings[i].Location != "" {
			locations[postings[i].Location] = true
		}
	}
	summary.TotalCompanies = len(companies)
	summary.TotalLocations = len(locations)

	if len(stats.TopLocations) > 0 {
		summary.TopLocation = stats.TopLocations[0].Name
	}
	if len(stats.TopSkills) > 0 {
		summary.TopSkill = stats.TopSkills[0].Name
	}
	if len(stats.TopCompanies) > 0 {
		summary.TopCompany = stats.TopCompanies[0].Name
	}
	if stats.Salary != nil {
		summary.AvgSalary = stats.Salary.Mean
	}
	return summary
}

// SkillRecommendations suggests in-demand skills the user does not already
// have, prioritized by relatedness to existing skills and by demand.
func SkillRecommendations(postings []types.JobPosting, userSkills []string) []types.SkillRecommendation {
	stats := Aggregate(postings)

	userLower := make([]string, 0, len(userSkills))
	for _, s := range userSkills {
		userLower = append(userLower, strings.ToLower(strings.TrimSpace(s)))
	}

	out := make([]types.SkillRecommendation, 0)
	for _, sc := range stats.TopSkills {
		lower := strings.ToLower(sc.Name)
		if contains(userLower, lower) {
			continue
		}

		related := false
		for _, have := range userLower {
			if have == "" {
				continue
			}
			if strings.Contains(lower, have) || strings.Contains(have, lower) {
				related = true
				break
			}
		}

		priority := "Medium"
		if related && sc.Count > 10 {
			priority = "High"
		}
		out = append(out, types.SkillRecommendation{
			Skill:             sc.Name,
			DemandCount:       sc.Count,
			RelatedToExisting: related,
			Priority:          priority,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].RelatedToExisting != out[j].RelatedToExisting {
			return out[i].RelatedToExisting
		}
		if out[i].DemandCount != out[j].DemandCount {
			return out[i].DemandCount > out[j].DemandCount
		}
		return out[i].Skill < out[j].Skill
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

// TrendingSkills lists the most-demanded skills across a posting set, ordered
// by frequency. Skill names are matched case-insensitively and reported with
// their first-seen spelling. topN caps the result; zero or negative selects
// the default of 20.
func TrendingSkills(postings []types.JobPosting, topN int) []types.SkillTrend {
	if topN <= 0 {
		topN = topSkills
	}

	counts := make(map[string]int)
	display := make(map[string]string)
	for i := range postings {
		for _, skill := range postings[i].Skills {
			key := strings.ToLower(skill)
			counts[key]++
			if _, ok := display[key]; !ok {
				display[key] = skill
			}
		}
	}

	out := make([]types.SkillTrend, 0, len(counts))
	for key, count := range counts {
		out = append(out, types.SkillTrend{
			Skill: display[key],
			Count: count,
			Trend: "up",
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
