// Package main provides the careersight command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/careersight/careersight/internal/config"
	"github.com/careersight/careersight/internal/logger"
)

var (
	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "careersight",
	Short: "Career matching and market insight engine",
	Long: "CareerSight normalizes job postings, ranks them against a user profile\n" +
		"with TF-IDF similarity, aggregates market statistics, and generates\n" +
		"learning roadmaps for skill gaps.",
	SilenceUsage:      true,
	PersistentPreRunE: loadGlobalConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

// loadGlobalConfig merges file config with defaults and initializes logging.
func loadGlobalConfig(cmd *cobra.Command, _ []string) error {
	loaded := config.Config{}
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		loaded = *fileCfg
	}

	cfg = loaded.MergeWithDefaults(config.Defaults())

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// apiKey returns the Gemini key from config or environment, preferring config.
func apiKey() string {
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}
