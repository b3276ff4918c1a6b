package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhite/resume-studio/internal/types"
)

var templatesCategory string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available layout templates and color themes",
	RunE:  runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&templatesCategory, "category", "all", "Filter templates by category")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, _ []string) error {
	fmt.Println("Templates:")
	for _, tpl := range types.TemplatesByCategory(templatesCategory) {
		marker := " "
		if tpl.ID == types.DefaultTemplateID {
			marker = "*"
		}
		fmt.Printf("  %s %-10s %-22s [%s]\n", marker, tpl.ID, tpl.Name, tpl.Category)
	}

	fmt.Println("\nThemes:")
	for _, theme := range types.BuiltinThemes {
		fmt.Printf("    %-10s %-18s %s %s %s\n", theme.ID, theme.Name, theme.Primary, theme.Secondary, theme.Accent)
	}
	return nil
}
