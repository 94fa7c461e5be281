package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careersight/careersight/internal/fetch"
	"github.com/careersight/careersight/internal/ingestion"
	"github.com/careersight/careersight/internal/llm"
	"github.com/careersight/careersight/internal/logger"
	"github.com/careersight/careersight/internal/normalize"
)

var (
	ingestFile       string
	ingestOut        string
	ingestUseBrowser bool
	ingestNoCache    bool
	ingestNoModel    bool
	ingestStartID    int
	ingestWorkers    int
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [url...]",
	Short: "Ingest job postings from a file or from URLs",
	Long: "Ingest raw job postings, normalize them, and write the cleaned\n" +
		"postings as JSON. Input is either a raw postings file (--file) or one\n" +
		"or more posting page URLs given as arguments. URL ingestion fetches\n" +
		"each page, extracts the posting text, and optionally runs model\n" +
		"extraction when a GEMINI_API_KEY is available.",
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestFile, "file", "", "Raw postings JSON file to ingest")
	ingestCmd.Flags().StringVar(&ingestOut, "out", "", "Output file for normalized postings (default stdout)")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Render pages with a headless browser when the plain fetch yields too little text")
	ingestCmd.Flags().BoolVar(&ingestNoCache, "no-cache", false, "Bypass the page cache and fetch fresh")
	ingestCmd.Flags().BoolVar(&ingestNoModel, "no-model", false, "Skip model extraction even when an API key is set")
	ingestCmd.Flags().IntVar(&ingestStartID, "start-id", 1, "First job ID to assign to URL-ingested postings")
	ingestCmd.Flags().IntVar(&ingestWorkers, "workers", ingestion.DefaultConcurrency, "Parallel page fetches for URL batches")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestFile == "" && len(args) == 0 {
		return fmt.Errorf("nothing to ingest: pass --file or at least one URL")
	}
	if ingestFile != "" && len(args) > 0 {
		return fmt.Errorf("pass either --file or URLs, not both")
	}

	if ingestFile != "" {
		postings, invalid, err := ingestion.LoadBatch(ingestFile)
		if err != nil {
			return fmt.Errorf("failed to load postings: %w", err)
		}
		for _, rec := range invalid {
			logger.Warn().Int("index", rec.Index).Err(rec.Err).Msg("skipped invalid record")
		}
		normalized := normalize.Postings(postings)
		return writeJSON(ingestOut, normalized)
	}

	ctx := cmd.Context()

	opts := ingestion.URLOptions{UseBrowser: ingestUseBrowser || cfg.UseBrowser}

	fetcherCfg := fetch.DefaultCachedFetcherConfig()
	fetcherCfg.SkipCache = ingestNoCache
	fetcherCfg.Options.Timeout = cfg.FetchTimeoutDuration()
	opts.Fetcher = fetch.NewCachedFetcher(fetcherCfg)

	if key := apiKey(); key != "" && !ingestNoModel {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), key)
		if err != nil {
			logger.Warn().Err(err).Msg("model client unavailable, skipping extraction")
		} else {
			defer client.Close()
			opts.Client = client
		}
	}

	results := ingestion.FromURLs(ctx, args, ingestStartID, ingestWorkers, opts)
	for _, r := range results {
		if r.Err != nil {
			logger.Error().Err(r.Err).Str("url", r.URL).Msg("ingestion failed")
		}
	}

	postings := ingestion.Postings(results)
	if len(postings) == 0 {
		return fmt.Errorf("no postings ingested from %d URL(s)", len(args))
	}

	normalized := normalize.Postings(postings)
	return writeJSON(ingestOut, normalized)
}

// writeJSON marshals v with indentation and writes it to path, or to stdout
// when path is empty.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info().Str("file", path).Msg("wrote normalized postings")
	return nil
}
