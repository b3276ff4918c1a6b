package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwhite/resume-studio/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <resume.json>",
	Short: "Validate a resume JSON document against the schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResume(data); err != nil {
		return err
	}

	fmt.Printf("%s is valid\n", args[0])
	return nil
}
