package roadmap

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/careersight/careersight/internal/llm"
	"github.com/careersight/careersight/internal/logger"
	"github.com/careersight/careersight/internal/prompts"
)

// CareerAdvice answers a free-form career question. Like Generate, it never
// returns an error: any failure of the external service yields the static
// guidance text.
func (g *Generator) CareerAdvice(ctx context.Context, question string) string {
	if g.Client != nil {
		ctx, cancel := context.WithTimeout(ctx, g.timeout())
		defer cancel()

		template := prompts.MustGet("advice.json", "career-advice")
		prompt := prompts.Format(template, map[string]string{"Question": question})

		answer, err := g.Client.GenerateContent(ctx, prompt, llm.TierStandard)
		if err == nil && strings.TrimSpace(answer) != "" {
			return answer
		}
		logger.Warn().Err(err).Msg("career advice fell back to static guidance")
	}
	return fallbackAdvice(question)
}

// InterviewQuestions generates practice interview questions for a role.
func (g *Generator) InterviewQuestions(ctx context.Context, jobTitle, experienceLevel string, userSkills []string) string {
	if g.Client != nil {
		ctx, cancel := context.WithTimeout(ctx, g.timeout())
		defer cancel()

		template := prompts.MustGet("advice.json", "interview-questions")
		prompt := prompts.Format(template, map[string]string{
			"JobTitle":        jobTitle,
			"ExperienceLevel": experienceLevel,
			"Skills":          strings.Join(userSkills, ", "),
		})

		questions, err := g.Client.GenerateContent(ctx, prompt, llm.TierStandard)
		if err == nil && strings.TrimSpace(questions) != "" {
			return questions
		}
		logger.Warn().Err(err).Str("job_title", jobTitle).
			Msg("interview questions fell back to static set")
	}
	return fallbackInterviewQuestions(jobTitle)
}

// SalaryNegotiationAdvice generates negotiation guidance for moving from the
// current salary to the target, both in lakhs per annum. Falls back to static
// guidance when the external service is unavailable.
func (g *Generator) SalaryNegotiationAdvice(ctx context.Context, jobTitle, experienceLevel string, currentSalary, targetSalary float64) string {
	if g.Client != nil {
		ctx, cancel := context.WithTimeout(ctx, g.timeout())
		defer cancel()

		template := prompts.MustGet("advice.json", "salary-negotiation")
		prompt := prompts.Format(template, map[string]string{
			"JobTitle":        jobTitle,
			"ExperienceLevel": experienceLevel,
			"CurrentSalary":   strconv.FormatFloat(currentSalary, 'f', -1, 64),
			"TargetSalary":    strconv.FormatFloat(targetSalary, 'f', -1, 64),
		})

		advice, err := g.Client.GenerateContent(ctx, prompt, llm.TierStandard)
		if err == nil && strings.TrimSpace(advice) != "" {
			return advice
		}
		logger.Warn().Err(err).Str("job_title", jobTitle).
			Msg("salary negotiation advice fell back to static guidance")
	}
	return fallbackNegotiationAdvice(jobTitle)
}

func (g *Generator) timeout() time.Duration {
	if g.Timeout > 0 {
		return g.Timeout
	}
	return DefaultTimeout
}

func fallbackAdvice(question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "resume"):
		return `General resume guidance:

1. Keep it concise: one to two pages maximum
2. Start bullet points with strong action verbs
3. Quantify achievements with numbers and metrics where possible
4. Tailor the resume for each application
5. Proofread carefully for typos and formatting issues`
	case strings.Contains(q, "interview"):
		return `General interview preparation:

1. Research the company: mission, values, and recent news
2. Prepare STAR-method responses to common behavioral questions
3. Prepare thoughtful questions to ask the interviewer
4. Run mock interviews with a friend or online platform
5. Review the technical skills the role asks for`
	default:
		return "Focus on building demonstrable skills for your target role, keep your resume achievement-oriented, and practice interviews regularly. Configure an API key for personalized guidance."
	}
}

func fallbackNegotiationAdvice(jobTitle string) string {
	return `## Salary Negotiation Basics for ` + jobTitle + `

1. Research current market rates for the role on salary benchmarking sites
2. Anchor on your target figure and let the employer respond first where possible
3. Present your case with concrete achievements and quantified impact
4. If the base salary is fixed, negotiate joining bonus, equity, or review timelines
5. Get the final offer in writing before resigning from your current role

Configure an API key for advice tailored to your numbers.`
}

func fallbackInterviewQuestions(jobTitle string) string {
	return `## Sample Interview Questions for ` + jobTitle + `

### Behavioral
1. Tell me about a challenging project you worked on
2. Describe a time you had to learn something new quickly
3. How do you handle tight deadlines and pressure?
4. Give an example of working in a team
5. Describe a mistake you made and how you handled it

### Technical
1. Walk me through your technical skills
2. How do you stay current with new technologies?
3. Describe your development process
4. How do you approach problem solving?

### Situational
1. How would you handle conflicting requirements?
2. What would you do if you disagreed with your manager?
3. How do you prioritize multiple tasks?`
}
