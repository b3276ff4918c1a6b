package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwhite/resume-studio/internal/observability"
	"github.com/mwhite/resume-studio/internal/suggestions"
)

var suggestResumePath string

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Analyze a resume and print improvement suggestions",
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestResumePath, "resume", "r", "", "Path to resume JSON file (required)")

	if err := suggestCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	resume, err := loadResumeFile(suggestResumePath)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintResumeSummary(resume)
	}

	items := suggestions.NewEngine(newLogger(cfg.Verbose)).Analyze(resume)
	printer.PrintSuggestions(items)
	return nil
}
