// Package main provides the entry point for the Resume Studio CLI and server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mwhite/resume-studio/internal/config"
	"github.com/mwhite/resume-studio/internal/schemas"
	"github.com/mwhite/resume-studio/internal/types"
)

var rootCmd = &cobra.Command{
	Use:   "resume_studio",
	Short: "Resume Studio rendering and export toolkit",
	Long:  "Resume Studio renders resumes through a catalog of visual templates and exports them as pixel-faithful PDF, structured DOCX and plain-text documents, via CLI or REST API.",
}

var (
	flagConfig  string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadAppConfig resolves the effective configuration: config file values
// (when --config is given) filled up with package defaults.
func loadAppConfig() (config.Config, error) {
	fileCfg := &config.Config{}
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		fileCfg = loaded
	}
	merged := fileCfg.MergeWithDefaults(config.Config{})
	if flagVerbose {
		merged.Verbose = true
	}
	return merged, nil
}

// newLogger builds the CLI logger. Debug level when verbose.
func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadResumeFile reads a resume JSON document, validates it against the
// schema and unmarshals it.
func loadResumeFile(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResume(data); err != nil {
		return nil, fmt.Errorf("resume document is invalid: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &resume, nil
}
