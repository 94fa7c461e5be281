package skills

import (
	"sort"
	"strings"

	"github.com/careersight/careersight/internal/types"
)

// AnalyzeGap compares the user's skills against the skills demanded by
// postings whose title matches the target role. Missing skills come back
// sorted by demand (most required first) so the roadmap generator can
// prioritize them. When no title contains the full role string, the search
// widens to individual role keywords before giving up; with no matching
// postings at all the gap is empty, not an error.
func AnalyzeGap(userSkills []string, targetRole string, postings []types.JobPosting) types.SkillGap {
	gap := types.SkillGap{TargetRole: targetRole}

	rolePostings := filterByTitle(postings, targetRole)
	if len(rolePostings) == 0 {
		for _, keyword := range strings.Fields(strings.ToLower(targetRole)) {
			rolePostings = filterByTitle(postings, keyword)
			if len(rolePostings) > 0 {
				break
			}
		}
	}
	gap.RolePostings = len(rolePostings)

	// Count demand per required skill across the role's postings.
	demand := make(map[string]int)
	display := make(map[string]string)
	for _, p := range rolePostings {
		for _, skill := range p.Skills {
			key := strings.ToLower(skill)
			demand[key]++
			if _, ok := display[key]; !ok {
				display[key] = skill
			}
		}
	}

	userLower := make([]string, 0, len(userSkills))
	for _, s := range userSkills {
		userLower = append(userLower, strings.ToLower(strings.TrimSpace(s)))
	}

	existing := make([]string, 0)
	missing := make([]string, 0)
	for key, name := range display {
		if userHasSkill(userLower, key) {
			existing = append(existing, name)
		} else {
			missing = append(missing, name)
		}
	}

	sort.Strings(existing)
	sort.Slice(missing, func(i, j int) bool {
		di, dj := demand[strings.ToLower(missing[i])], demand[strings.ToLower(missing[j])]
		if di != dj {
			return di > dj
		}
		return missing[i] < missing[j]
	})

	gap.ExistingSkills = existing
	gap.MissingSkills = missing
	if len(demand) > 0 {
		gap.MatchPercentage = float64(len(existing)) / float64(len(demand)) * 100
	}
	return gap
}

// filterByTitle returns postings whose title contains the query,
// case-insensitively.
func filterByTitle(postings []types.JobPosting, query string) []types.JobPosting {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	out := make([]types.JobPosting, 0)
	for _, p := range postings {
		if strings.Contains(strings.ToLower(p.Title), query) {
			out = append(out, p)
		}
	}
	return out
}

// userHasSkill applies containment-style matching: "sql" covers "postgresql"
// and vice versa, and near-equal-length variants count as the same skill.
func userHasSkill(userLower []string, required string) bool {
	for _, have := range userLower {
		if have == "" {
			continue
		}
		if have == required {
			return true
		}
		if len(have) >= 3 && len(required) >= 3 &&
			(strings.Contains(required, have) || strings.Contains(have, required)) {
			return true
		}
	}
	return false
}
