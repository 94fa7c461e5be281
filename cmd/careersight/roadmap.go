package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careersight/careersight/internal/llm"
	"github.com/careersight/careersight/internal/logger"
	"github.com/careersight/careersight/internal/roadmap"
	"github.com/careersight/careersight/internal/skills"
	"github.com/careersight/careersight/internal/types"
)

var (
	roadmapPostings string
	roadmapSkills   string
	roadmapRole     string
	roadmapWeeks    int
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a learning roadmap toward a target role",
	Long: "Compare your skills against the skills demanded for the target role\n" +
		"and generate a week-by-week learning plan for the gap. With a\n" +
		"GEMINI_API_KEY set the plan is model-generated; otherwise a\n" +
		"deterministic plan is produced.",
	RunE: runRoadmap,
}

func init() {
	roadmapCmd.Flags().StringVar(&roadmapPostings, "postings", "", "Raw postings JSON file used to derive demanded skills")
	roadmapCmd.Flags().StringVar(&roadmapSkills, "skills", "", "Current skills, comma separated (required)")
	roadmapCmd.Flags().StringVar(&roadmapRole, "role", "", "Target role (required)")
	roadmapCmd.Flags().IntVar(&roadmapWeeks, "weeks", 0, "Plan duration in weeks (default from config, 12)")
	_ = roadmapCmd.MarkFlagRequired("skills")
	_ = roadmapCmd.MarkFlagRequired("role")
	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	userSkills := splitList(roadmapSkills)
	if len(userSkills) == 0 {
		return fmt.Errorf("at least one skill is required")
	}

	var postings []types.JobPosting
	if roadmapPostings != "" {
		var err error
		if postings, err = loadPostings(roadmapPostings); err != nil {
			return err
		}
	}

	weeks := roadmapWeeks
	if weeks <= 0 {
		weeks = cfg.RoadmapWeeks
	}

	ctx := cmd.Context()
	gap := skills.AnalyzeGap(userSkills, roadmapRole, postings)
	generator := newGenerator(ctx)
	if generator.Client != nil {
		defer generator.Client.Close()
	}

	plan := generator.Generate(ctx, gap, weeks)
	return writeJSON("", struct {
		Gap     types.SkillGap `json:"gap"`
		Roadmap types.Roadmap  `json:"roadmap"`
	}{Gap: gap, Roadmap: plan})
}

// newGenerator builds a roadmap generator, wiring in a model client when an
// API key is configured and falling back to deterministic plans otherwise.
func newGenerator(ctx context.Context) *roadmap.Generator {
	key := apiKey()
	if key == "" {
		return roadmap.NewGenerator(nil)
	}
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), key)
	if err != nil {
		logger.Warn().Err(err).Msg("model client unavailable, using deterministic plans")
		return roadmap.NewGenerator(nil)
	}
	return roadmap.NewGenerator(client)
}
