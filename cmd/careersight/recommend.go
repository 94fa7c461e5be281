package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careersight/careersight/internal/ingestion"
	"github.com/careersight/careersight/internal/logger"
	"github.com/careersight/careersight/internal/normalize"
	"github.com/careersight/careersight/internal/ranking"
	"github.com/careersight/careersight/internal/types"
)

var (
	recommendPostings string
	recommendSkills   string
	recommendRole     string
	recommendSummary  string
	recommendLocation string
	recommendTop      int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank job postings against a skill profile",
	Long: "Build a TF-IDF model over the posting corpus and rank every posting\n" +
		"by cosine similarity to the given profile. Output is the ranked match\n" +
		"list as JSON.",
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendPostings, "postings", "", "Raw postings JSON file (required)")
	recommendCmd.Flags().StringVar(&recommendSkills, "skills", "", "Profile skills, comma separated (required)")
	recommendCmd.Flags().StringVar(&recommendRole, "role", "", "Desired role")
	recommendCmd.Flags().StringVar(&recommendSummary, "summary", "", "Profile summary text")
	recommendCmd.Flags().StringVar(&recommendLocation, "location", "", "Keep only postings in this location (Remote postings always match)")
	recommendCmd.Flags().IntVar(&recommendTop, "top", 0, "Keep only the top N results (0 keeps all)")
	_ = recommendCmd.MarkFlagRequired("postings")
	_ = recommendCmd.MarkFlagRequired("skills")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	postings, err := loadPostings(recommendPostings)
	if err != nil {
		return err
	}

	profile := &types.UserProfile{
		Skills:      splitList(recommendSkills),
		DesiredRole: recommendRole,
		Summary:     recommendSummary,
	}
	if len(profile.Skills) == 0 {
		return fmt.Errorf("at least one skill is required")
	}

	results := ranking.Rank(postings, profile)
	filters := ranking.Filters{Location: recommendLocation, TopN: recommendTop}
	results = filters.Apply(results, postings)

	return writeJSON("", results)
}

// loadPostings reads a raw postings file and normalizes it into the cleaned
// corpus the ranking and insights layers work on.
func loadPostings(path string) ([]types.JobPosting, error) {
	raw, invalid, err := ingestion.LoadBatch(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load postings: %w", err)
	}
	if len(invalid) > 0 {
		logger.Warn().Int("invalid", len(invalid)).Str("file", path).Msg("skipped invalid posting records")
	}
	return normalize.Postings(raw), nil
}

// splitList splits a comma, semicolon, or pipe separated flag value into
// trimmed non-empty items.
func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
