package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwhite/resume-studio/internal/rendering"
	"github.com/mwhite/resume-studio/internal/types"
)

var (
	renderResumePath string
	renderTemplate   string
	renderTheme      string
	renderOut        string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume to an HTML page",
	Long:  "Render a resume JSON document through a layout template and write the resulting HTML page. Unknown template or theme ids fall back to the defaults.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderResumePath, "resume", "r", "", "Path to resume JSON file (required)")
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "Layout template id")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "Color theme id")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default stdout)")

	if err := renderCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if renderTemplate == "" {
		renderTemplate = cfg.Template
	}
	if renderTheme == "" {
		renderTheme = cfg.Theme
	}

	resume, err := loadResumeFile(renderResumePath)
	if err != nil {
		return err
	}

	engine, err := rendering.NewEngine()
	if err != nil {
		return fmt.Errorf("failed to load layout templates: %w", err)
	}

	doc, err := engine.Render(resume, renderTemplate, types.ThemeByID(renderTheme))
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if renderOut == "" {
		fmt.Println(doc.HTML)
		return nil
	}
	if err := os.WriteFile(renderOut, []byte(doc.HTML), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOut, err)
	}

	newLogger(cfg.Verbose).Info("rendered resume", "template", doc.TemplateID, "out", renderOut)
	return nil
}
