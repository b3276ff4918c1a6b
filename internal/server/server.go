package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mwhite/resume-studio/internal/capture"
	"github.com/mwhite/resume-studio/internal/editor"
	"github.com/mwhite/resume-studio/internal/export"
	"github.com/mwhite/resume-studio/internal/rendering"
	"github.com/mwhite/resume-studio/internal/suggestions"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	logger     *log.Logger

	session   *editor.Session
	engine    *rendering.Engine
	surfaces  *capture.Registry
	suggester *suggestions.Engine

	defaultTemplate string
	defaultTheme    string

	saver        export.Saver
	textExporter *export.TextExporter
	docxExporter *export.DocxExporter
	pdfExporter  *export.PDFExporter
}

// Config holds server configuration
type Config struct {
	Port            int
	OutputDir       string
	CaptureTimeout  time.Duration
	ChromePath      string
	DefaultTemplate string
	DefaultTheme    string
	Logger          *log.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	engine, err := rendering.NewEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to load layout templates: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	browser := capture.NewBrowser()
	if cfg.CaptureTimeout > 0 {
		browser.Timeout = cfg.CaptureTimeout
	}
	browser.ExecPath = cfg.ChromePath

	saver := &export.DirSaver{Dir: cfg.OutputDir}
	surfaces := capture.NewRegistry()

	s := &Server{
		logger:          logger,
		defaultTemplate: cfg.DefaultTemplate,
		defaultTheme:    cfg.DefaultTheme,

		session:      editor.NewSession(nil),
		engine:       engine,
		surfaces:     surfaces,
		suggester:    suggestions.NewEngine(logger),
		saver:        saver,
		textExporter: export.NewTextExporter(saver),
		docxExporter: export.NewDocxExporter(saver),
		pdfExporter:  export.NewPDFExporter(surfaces, browser, saver),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /themes", s.handleListThemes)

	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PATCH /resume", s.handlePatchResume)
	mux.HandleFunc("POST /resume/import", s.handleImportResume)

	mux.HandleFunc("POST /resume/work", s.handleAddWork)
	mux.HandleFunc("PUT /resume/work/{id}", s.handleUpdateWork)
	mux.HandleFunc("DELETE /resume/work/{id}", s.handleRemoveWork)

	mux.HandleFunc("POST /resume/education", s.handleAddEducation)
	mux.HandleFunc("PUT /resume/education/{id}", s.handleUpdateEducation)
	mux.HandleFunc("DELETE /resume/education/{id}", s.handleRemoveEducation)

	mux.HandleFunc("POST /resume/skills", s.handleAddSkill)
	mux.HandleFunc("PUT /resume/skills/{id}", s.handleUpdateSkill)
	mux.HandleFunc("DELETE /resume/skills/{id}", s.handleRemoveSkill)

	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("POST /surfaces", s.handleCreateSurface)
	mux.HandleFunc("DELETE /surfaces/{id}", s.handleDeleteSurface)

	mux.HandleFunc("POST /export/{format}", s.handleExport)

	mux.HandleFunc("GET /suggestions", s.handleSuggestions)
	mux.HandleFunc("POST /suggestions/improve", s.handleImproveSection)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // browser capture can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler exposes the configured route handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
