package main

import (
	"github.com/spf13/cobra"

	"github.com/careersight/careersight/internal/insights"
)

var (
	insightsPostings string
	insightsSummary  bool
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Aggregate market statistics from a posting corpus",
	Long: "Compute market statistics over a posting corpus: top skills,\n" +
		"companies and locations, salary distributions, and experience\n" +
		"breakdowns. Output is JSON.",
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().StringVar(&insightsPostings, "postings", "", "Raw postings JSON file (required)")
	insightsCmd.Flags().BoolVar(&insightsSummary, "summary", false, "Print the condensed market summary instead of full statistics")
	_ = insightsCmd.MarkFlagRequired("postings")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	postings, err := loadPostings(insightsPostings)
	if err != nil {
		return err
	}

	if insightsSummary {
		return writeJSON("", insights.Summary(postings))
	}
	return writeJSON("", insights.Aggregate(postings))
}
