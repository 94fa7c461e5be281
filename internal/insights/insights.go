// Package insights computes descriptive market statistics over a normalized
// posting set for dashboard display. All aggregations tolerate nil numeric
// fields: a posting without salary data is excluded from numeric aggregates
// but still participates in every count.
package insights

import (
	"sort"
	"strings"

	"github.com/careersight/careersight/internal/types"
)

// Top-N sizes, matching the dashboard layout.
const (
	topCompanies = 15
	topLocations = 10
	topSkills    = 20
)

// minLocationSample is the smallest posting count for which a location's
// salary distribution is reported.
const minLocationSample = 5

// minSkillSample is the smallest sample for the skills-salary correlation.
const minSkillSample = 3

// Aggregate computes the full statistics bundle over a posting set. An empty
// set yields zero counts and a nil salary summary, never an error.
func Aggregate(postings []types.JobPosting) types.MarketStats {
	stats := types.MarketStats{
		TotalPostings:    len(postings),
		CategoryCounts:   map[string]int{},
		ExperienceLevels: map[string]int{},
	}

	companyCounts := make(map[string]int)
	locationCounts := make(map[string]int)
	skillCounts := make(map[string]int)
	skillDisplay := make(map[string]string)

	salaries := make([]float64, 0, len(postings))
	salaryByLevel := make(map[string][]float64)
	salaryByRole := make(map[string][]float64)
	salaryByLocation := make(map[string][]float64)
	salaryBySkill := make(map[string][]float64)
	roleCounts := make(map[string]int)

	for i := range postings {
		p := &postings[i]
		if p.Company != "" {
			companyCounts[p.Company]++
		}
		if p.Location != "" {
			locationCounts[p.Location]++
		}
		if p.Category != "" {
			stats.CategoryCounts[p.Category]++
		}
		if p.ExperienceLevel != "" {
			stats.ExperienceLevels[p.ExperienceLevel]++
		}
		roleCounts[p.Title]++

		for _, skill := range p.Skills {
			key := strings.ToLower(skill)
			skillCounts[key]++
			if _, ok := skillDisplay[key]; !ok {
				skillDisplay[key] = skill
			}
		}

		if p.SalaryMax == nil {
			continue
		}
		s := *p.SalaryMax
		salaries = append(salaries, s)
		salaryByLevel[p.ExperienceLevel] = append(salaryByLevel[p.ExperienceLevel], s)
		salaryByRole[p.Title] = append(salaryByRole[p.Title], s)
		salaryByLocation[p.Location] = append(salaryByLocation[p.Location], s)
		for _, skill := range p.Skills {
			key := strings.ToLower(skill)
			salaryBySkill[key] = append(salaryBySkill[key], s)
		}
	}

	stats.TopCompanies = topCounts(companyCounts, nil, topCompanies)
	stats.TopLocations = topCounts(locationCounts, nil, topLocations)
	stats.TopSkills = topCounts(skillCounts, skillDisplay, topSkills)
	stats.Salary = salarySummary(salaries)
	stats.SalaryByExperience = experienceSalaries(salaryByLevel)
	stats.TrendingRoles = trendingRoles(roleCounts, salaryByRole)
	stats.LocationSalaries = locationSalaries(salaryByLocation)
	stats.SkillSalaries = skillSalaries(salaryBySkill, skillDisplay)
	return stats
}

// topCounts converts a frequency map into a sorted top-N list. Ties are
// broken by name ascending for deterministic output. The optional display map
// restores original casing for case-folded keys.
func topCounts(counts map[string]int, display map[string]string, n int) []types.NameCount {
	out := make([]types.NameCount, 0, len(counts))
	for name, count := range counts {
		if display != nil {
			name = display[name]
		}
		out = append(out, types.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func salarySummary(salaries []float64) *types.SalarySummary {
	if len(salaries) == 0 {
		return nil
	}
	sorted := append([]float64(nil), salaries...)
	sort.Float64s(sorted)

	return &types.SalarySummary{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean(sorted),
		Median: percentile(sorted, 0.5),
		Percentiles: map[string]float64{
			"25th": percentile(sorted, 0.25),
			"50th": percentile(sorted, 0.5),
			"75th": percentile(sorted, 0.75),
			"90th": percentile(sorted, 0.9),
		},
		SampleSize: len(sorted),
	}
}

func experienceSalaries(byLevel map[string][]float64) []types.ExperienceSalary {
	out := make([]types.ExperienceSalary, 0, len(byLevel))
	for level, salaries := range byLevel {
		sorted := append([]float64(nil), salaries...)
		sort.Float64s(sorted)
		out = append(out, types.ExperienceSalary{
			Level:        level,
			AvgSalary:    mean(sorted),
			MedianSalary: percentile(sorted, 0.5),
			JobCount:     len(sorted),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}

func trendingRoles(roleCounts map[string]int, salaryByRole map[string][]float64) []types.RoleStats {
	out := make([]types.RoleStats, 0, len(roleCounts))
	for title, count := range roleCounts {
		out = append(out, types.RoleStats{
			Title:     title,
			Count:     count,
			AvgSalary: mean(salaryByRole[title]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Title < out[j].Title
	})
	if len(out) > topCompanies {
		out = out[:topCompanies]
	}
	return out
}

func locationSalaries(byLocation map[string][]float64) []types.LocationSalary {
	out := make([]types.LocationSalary, 0, len(byLocation))
	for location, salaries := range byLocation {
		if len(salaries) < minLocationSample {
			continue
		}
		sorted := append([]float64(nil), salaries...)
		sort.Float64s(sorted)
		out = append(out, types.LocationSalary{
			Location:     location,
			AvgSalary:    mean(sorted),
			MedianSalary: percentile(sorted, 0.5),
			JobCount:     len(sorted),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out
}

func skillSalaries(bySkill map[string][]float64, display map[string]string) []types.SkillSalary {
	out := make([]types.SkillSalary, 0, len(bySkill))
	for key, salaries := range bySkill {
		if len(salaries) < minSkillSample {
			continue
		}
		out = append(out, types.SkillSalary{
			Skill:     display[key],
			AvgSalary: mean(salaries),
			JobCount:  len(salaries),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgSalary != out[j].AvgSalary {
			return out[i].AvgSalary > out[j].AvgSalary
		}
		return out[i].Skill < out[j].Skill
	})
	if len(out) > 15 {
		out = out[:15]
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// percentile uses linear interpolation between the two nearest ranks.
// The input must be sorted.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lower := int(pos)
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[lower+1]*frac
}
