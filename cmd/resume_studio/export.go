package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mwhite/resume-studio/internal/capture"
	"github.com/mwhite/resume-studio/internal/export"
	"github.com/mwhite/resume-studio/internal/observability"
	"github.com/mwhite/resume-studio/internal/rendering"
	"github.com/mwhite/resume-studio/internal/types"
)

var (
	exportResumePath string
	exportFormat     string
	exportOutputDir  string
	exportTemplate   string
	exportTheme      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume as PDF, DOCX or TXT",
	Long:  "Export a resume JSON document into downloadable formats. The PDF is a pixel-faithful capture of the rendered template; DOCX and TXT are walked directly from the data model.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportResumePath, "resume", "r", "", "Path to resume JSON file (required)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "all", "Export format: pdf, docx, txt or all")
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", "", "Directory exported documents are written to (overrides config)")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Layout template id for the PDF capture")
	exportCmd.Flags().StringVar(&exportTheme, "theme", "", "Color theme id for the PDF capture")

	if err := exportCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if exportOutputDir != "" {
		cfg.OutputDir = exportOutputDir
	}
	if exportTemplate != "" {
		cfg.Template = exportTemplate
	}
	if exportTheme != "" {
		cfg.Theme = exportTheme
	}

	formats, err := resolveFormats(exportFormat)
	if err != nil {
		return err
	}

	resume, err := loadResumeFile(exportResumePath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)
	saver := &export.DirSaver{Dir: cfg.OutputDir}

	var (
		mu      sync.Mutex
		results = make(map[string]export.Result)
	)
	record := func(format string, result export.Result) {
		mu.Lock()
		results[format] = result
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(context.Background())

	for _, format := range formats {
		switch format {
		case "txt":
			g.Go(func() error {
				record("txt", export.NewTextExporter(saver).Export(resume.Clone(), "resume.txt"))
				return nil
			})
		case "docx":
			g.Go(func() error {
				record("docx", export.NewDocxExporter(saver).Export(resume.Clone(), "resume.docx"))
				return nil
			})
		case "pdf":
			g.Go(func() error {
				record("pdf", exportPDF(ctx, cfg.Template, cfg.Theme, cfg.ChromePath, resume.Clone(), saver))
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintExportResults(results)
	}

	failed := 0
	for format, result := range results {
		if result.Success {
			logger.Info(result.Message, "format", format, "dir", cfg.OutputDir)
		} else {
			logger.Error(result.Message, "format", format)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d exports failed", failed, len(results))
	}
	return nil
}

// exportPDF renders the resume, attaches the page as a capture surface and
// runs the rasterized exporter against it.
func exportPDF(ctx context.Context, templateID, themeID, chromePath string, resume *types.Resume, saver export.Saver) export.Result {
	engine, err := rendering.NewEngine()
	if err != nil {
		return export.Result{Success: false, Message: "Failed to export PDF. Please try again."}
	}

	doc, err := engine.Render(resume, templateID, types.ThemeByID(themeID))
	if err != nil {
		return export.Result{Success: false, Message: "Failed to export PDF. Please try again."}
	}

	surfaces := capture.NewRegistry()
	id := surfaces.Attach(doc.HTML)
	defer surfaces.Detach(id)

	browser := capture.NewBrowser()
	browser.ExecPath = chromePath

	return export.NewPDFExporter(surfaces, browser, saver).Export(ctx, id, "resume.pdf")
}

func resolveFormats(format string) ([]string, error) {
	switch format {
	case "all":
		return []string{"pdf", "docx", "txt"}, nil
	case "pdf", "docx", "txt":
		return []string{format}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want pdf, docx, txt or all)", format)
	}
}
