package ranking

import (
	"strings"

	"github.com/careersight/careersight/internal/types"
)

// Filters narrows a ranked result list by the profile's hard preferences.
// A zero-value Filters keeps everything.
type Filters struct {
	Location        string   // exact canonical location; "Remote" keeps only remote postings
	ExperienceYears *int     // posting range must include this many years
	SalaryMin       *float64 // posting max salary must reach this
	SalaryMax       *float64 // posting min salary must not exceed this
	TopN            int      // 0 keeps all
}

// Apply filters ranked results against their source postings, preserving the
// score ordering and renumbering ranks. Postings with nil numeric fields are
// kept by numeric filters; only a definite mismatch excludes a posting.
func (f Filters) Apply(results []types.MatchResult, postings []types.JobPosting) []types.MatchResult {
	byID := make(map[int]*types.JobPosting, len(postings))
	for i := range postings {
		byID[postings[i].ID] = &postings[i]
	}

	out := make([]types.MatchResult, 0, len(results))
	for _, r := range results {
		p, ok := byID[r.PostingID]
		if !ok || !f.keep(p) {
			continue
		}
		r.Rank = len(out) + 1
		out = append(out, r)
		if f.TopN > 0 && len(out) == f.TopN {
			break
		}
	}
	return out
}

func (f Filters) keep(p *types.JobPosting) bool {
	if f.Location != "" && f.Location != "Any" {
		isRemote := strings.EqualFold(p.Location, "Remote")
		if f.Location == "Remote" {
			if !isRemote {
				return false
			}
		} else if !strings.EqualFold(p.Location, f.Location) && !isRemote {
			return false
		}
	}

	if f.ExperienceYears != nil && p.ExpMin != nil && p.ExpMax != nil {
		if *f.ExperienceYears < *p.ExpMin || *f.ExperienceYears > *p.ExpMax {
			return false
		}
	}

	if f.SalaryMin != nil && p.SalaryMax != nil && *p.SalaryMax < *f.SalaryMin {
		return false
	}
	if f.SalaryMax != nil && p.SalaryMin != nil && *p.SalaryMin > *f.SalaryMax {
		return false
	}

	return true
}
