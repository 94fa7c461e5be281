package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careersight/careersight/internal/ingestion"
	"github.com/careersight/careersight/internal/logger"
	"github.com/careersight/careersight/internal/server"
	"github.com/careersight/careersight/internal/skills"
)

var (
	servePort     int
	servePostings string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Start an HTTP server exposing matching, insights, roadmap, and\n" +
		"persistence endpoints. Without DATABASE_URL the server runs degraded:\n" +
		"persistence endpoints return 503, everything else works.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	serveCmd.Flags().StringVar(&servePostings, "postings", "", "Raw postings JSON file to seed the corpus")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	var vocab skills.Vocabulary
	if cfg.Vocabulary != "" {
		var err error
		if vocab, err = skills.LoadVocabulary(cfg.Vocabulary); err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
		logger.Info().Int("skills", len(vocab)).Str("file", cfg.Vocabulary).Msg("loaded custom skill vocabulary")
	}

	srv, err := server.New(cmd.Context(), server.Config{
		Port:         port,
		DatabaseURL:  databaseURL,
		APIKey:       apiKey(),
		RoadmapWeeks: cfg.RoadmapWeeks,
		Vocabulary:   vocab,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	postingsPath := servePostings
	if postingsPath == "" {
		postingsPath = cfg.Postings
	}
	if postingsPath != "" {
		raw, invalid, err := ingestion.LoadBatch(postingsPath)
		if err != nil {
			return fmt.Errorf("failed to load postings: %w", err)
		}
		n := srv.Store().Replace(raw)
		logger.Info().
			Int("postings", n).
			Int("invalid", len(invalid)).
			Str("file", postingsPath).
			Msg("seeded posting corpus")
	}

	return srv.Start()
}
