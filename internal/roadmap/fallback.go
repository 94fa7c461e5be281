package roadmap

import (
	"fmt"
	"strings"

	"github.com/careersight/careersight/internal/types"
)

// genericResources rotate through the weekly entries so consecutive weeks
// suggest different kinds of practice.
var genericResources = []string{
	"Official documentation and tutorials",
	"A structured online course",
	"A hands-on portfolio project",
	"Practice exercises and coding challenges",
}

// Fallback produces the deterministic, network-free roadmap: one gap skill
// introduced per week, cycling when the plan is longer than the skill list.
// A gap with no missing skills yields a generic deepening plan. The result
// always has exactly weeks entries.
func Fallback(gap types.SkillGap, weeks int) types.Roadmap {
	if weeks <= 0 {
		weeks = DefaultWeeks
	}

	plan := types.Roadmap{
		TargetRole: gap.TargetRole,
		Source:     types.RoadmapSourceFallback,
		Weeks:      make([]types.RoadmapWeek, 0, weeks),
	}

	for week := 1; week <= weeks; week++ {
		entry := types.RoadmapWeek{
			Week:      week,
			Resources: []string{genericResources[(week-1)%len(genericResources)]},
		}

		switch {
		case len(gap.MissingSkills) == 0:
			entry.Topics = []string{"Core fundamentals", "Practical projects"}
			entry.Goal = fmt.Sprintf("Deepen existing skills toward the %s role", gap.TargetRole)
		case week <= len(gap.MissingSkills):
			skill := gap.MissingSkills[week-1]
			entry.Topics = []string{skill}
			entry.Goal = fmt.Sprintf("Build a working foundation in %s", skill)
		default:
			// More weeks than skills: cycle back for depth.
			skill := gap.MissingSkills[(week-1)%len(gap.MissingSkills)]
			entry.Topics = []string{skill + " (advanced)"}
			entry.Goal = fmt.Sprintf("Apply %s in a larger project", skill)
		}

		plan.Weeks = append(plan.Weeks, entry)
	}

	plan.PlanText = renderFallbackText(plan, gap)
	return plan
}

func renderFallbackText(plan types.Roadmap, gap types.SkillGap) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Learning Roadmap for %s\n", gap.TargetRole)
	if len(gap.MissingSkills) > 0 {
		fmt.Fprintf(&sb, "Skills to develop: %s\n", strings.Join(gap.MissingSkills, ", "))
	}
	for _, w := range plan.Weeks {
		fmt.Fprintf(&sb, "\n### Week %d: %s\n", w.Week, strings.Join(w.Topics, ", "))
		fmt.Fprintf(&sb, "Goal: %s\n", w.Goal)
		for _, r := range w.Resources {
			fmt.Fprintf(&sb, "- %s\n", r)
		}
	}
	return sb.String()
}
