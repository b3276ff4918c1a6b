package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhite/resume-studio/internal/server"
)

var (
	servePort      int
	serveOutputDir string
	serveChrome    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes REST endpoints for editing, previewing and exporting resumes.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveOutputDir, "output-dir", "", "Directory exported documents are written to (overrides config)")
	serveCmd.Flags().StringVar(&serveChrome, "chrome", "", "Path to Chrome/Chromium binary for PDF capture")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveOutputDir != "" {
		cfg.OutputDir = serveOutputDir
	}
	if serveChrome != "" {
		cfg.ChromePath = serveChrome
	}

	srv, err := server.New(server.Config{
		Port:            cfg.Port,
		OutputDir:       cfg.OutputDir,
		CaptureTimeout:  cfg.CaptureTimeout(),
		ChromePath:      cfg.ChromePath,
		DefaultTemplate: cfg.Template,
		DefaultTheme:    cfg.Theme,
		Logger:          newLogger(cfg.Verbose),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
