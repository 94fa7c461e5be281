// Package roadmap turns a skill gap into an ordered multi-week learning plan.
// The plan comes from an external text-generation service when one is
// configured and reachable; every failure mode (missing key, network error,
// timeout, malformed response) switches to a deterministic fallback, so
// callers never observe an error from this package.
package roadmap

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/careersight/careersight/internal/llm"
	"github.com/careersight/careersight/internal/logger"
	"github.com/careersight/careersight/internal/prompts"
	"github.com/careersight/careersight/internal/types"
)

// DefaultWeeks is the plan length when the caller does not specify one:
// three months, matching the product's "3-month roadmap" framing.
const DefaultWeeks = 12

// DefaultTimeout bounds the external call. The generator never blocks longer
// than this before falling back.
const DefaultTimeout = 30 * time.Second

// maxPromptSkills caps how many gap skills are embedded in the prompt.
const maxPromptSkills = 5

// Generator produces roadmaps. A nil Client means fallback-only operation,
// which is how the system runs without an API key.
type Generator struct {
	Client  llm.Client
	Timeout time.Duration
}

// NewGenerator returns a Generator with the default timeout. client may be
// nil.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{Client: client, Timeout: DefaultTimeout}
}

// Generate builds a roadmap for the gap over the given number of weeks
// (DefaultWeeks when weeks <= 0). The call is synchronous but bounded: the
// external service gets at most g.Timeout before the deterministic fallback
// takes over. No shared state is held while the call is in flight.
func (g *Generator) Generate(ctx context.Context, gap types.SkillGap, weeks int) types.Roadmap {
	if weeks <= 0 {
		weeks = DefaultWeeks
	}

	if g.Client == nil {
		return Fallback(gap, weeks)
	}

	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	plan, err := g.generatePlan(ctx, gap, weeks)
	if err != nil {
		// Expected degraded path, not a user-facing failure.
		logger.Warn().Err(err).Str("target_role", gap.TargetRole).
			Msg("roadmap generation fell back to static plan")
		return Fallback(gap, weeks)
	}
	return plan
}

// llmPlan mirrors the JSON structure the prompt asks the model for.
type llmPlan struct {
	Weeks []struct {
		Week      int      `json:"week"`
		Topics    []string `json:"topics"`
		Resources []string `json:"resources"`
		Goal      string   `json:"goal"`
	} `json:"weeks"`
}

func (g *Generator) generatePlan(ctx context.Context, gap types.SkillGap, weeks int) (types.Roadmap, error) {
	prompt := buildPrompt(gap, weeks)

	raw, err := g.Client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return types.Roadmap{}, fmt.Errorf("generate roadmap: %w", err)
	}

	var parsed llmPlan
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return types.Roadmap{}, fmt.Errorf("parse roadmap response: %w", err)
	}
	if len(parsed.Weeks) == 0 {
		return types.Roadmap{}, fmt.Errorf("roadmap response contained no weeks")
	}

	plan := types.Roadmap{
		TargetRole: gap.TargetRole,
		Source:     types.RoadmapSourceLLM,
		Model:      g.Client.GetModel(llm.TierAdvanced),
	}
	for i, w := range parsed.Weeks {
		week := w.Week
		if week <= 0 {
			week = i + 1
		}
		plan.Weeks = append(plan.Weeks, types.RoadmapWeek{
			Week:      week,
			Topics:    w.Topics,
			Resources: w.Resources,
			Goal:      w.Goal,
		})
	}
	plan.PlanText = renderPlanText(plan)
	return plan, nil
}

// buildPrompt fills the externalized roadmap template with the gap details.
func buildPrompt(gap types.SkillGap, weeks int) string {
	missing := gap.MissingSkills
	if len(missing) > maxPromptSkills {
		missing = missing[:maxPromptSkills]
	}
	template := prompts.MustGet("roadmap.json", "generate-roadmap-json")
	return prompts.Format(template, map[string]string{
		"TargetRole":    gap.TargetRole,
		"CurrentSkills": strings.Join(gap.ExistingSkills, ", "),
		"MissingSkills": strings.Join(missing, ", "),
		"Weeks":         fmt.Sprintf("%d", weeks),
	})
}

// renderPlanText renders a roadmap as readable markdown-ish text.
func renderPlanText(plan types.Roadmap) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Learning Roadmap for %s\n", plan.TargetRole)
	for _, w := range plan.Weeks {
		fmt.Fprintf(&sb, "\n### Week %d: %s\n", w.Week, strings.Join(w.Topics, ", "))
		if w.Goal != "" {
			fmt.Fprintf(&sb, "Goal: %s\n", w.Goal)
		}
		for _, r := range w.Resources {
			fmt.Fprintf(&sb, "- %s\n", r)
		}
	}
	return sb.String()
}
