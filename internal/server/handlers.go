package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mwhite/resume-studio/internal/export"
	"github.com/mwhite/resume-studio/internal/rendering"
	"github.com/mwhite/resume-studio/internal/schemas"
	"github.com/mwhite/resume-studio/internal/suggestions"
	"github.com/mwhite/resume-studio/internal/types"
)

// maxBodySize caps request bodies at 1 MiB; resume documents are small.
const maxBodySize = 1 << 20

func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return &ErrValidation{Field: "body", Message: "failed to read request body"}
	}
	if len(body) == 0 {
		return &ErrValidation{Field: "body", Message: "empty request body"}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// decodeOptionalJSON is decodeJSON for endpoints where an empty body means
// "use the defaults".
func decodeOptionalJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return &ErrValidation{Field: "body", Message: "failed to read request body"}
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// handleListTemplates returns the template catalog, optionally filtered by
// the category query parameter.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates":  types.TemplatesByCategory(category),
		"categories": types.TemplateCategories,
	})
}

// handleListThemes returns the color theme catalog.
func (s *Server) handleListThemes(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"themes": types.BuiltinThemes})
}

func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handlePatchResume(w http.ResponseWriter, r *http.Request) {
	var patch types.ResumePatch
	if err := decodeJSON(r, &patch); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.session.Apply(patch)
	s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
}

// handleImportResume validates a full resume document against the JSON
// schema and replaces the working copy with it.
func (s *Server) handleImportResume(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := schemas.ValidateResume(body); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var resume types.Resume
	if err := json.Unmarshal(body, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	s.session.Load(&resume)
	s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleAddWork(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusCreated, s.session.AddWork())
}

func (s *Server) handleUpdateWork(w http.ResponseWriter, r *http.Request) {
	s.updateEntry(w, r, s.session.UpdateWork)
}

func (s *Server) handleRemoveWork(w http.ResponseWriter, r *http.Request) {
	s.removeEntry(w, r, s.session.RemoveWork)
}

func (s *Server) handleAddEducation(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusCreated, s.session.AddEducation())
}

func (s *Server) handleUpdateEducation(w http.ResponseWriter, r *http.Request) {
	s.updateEntry(w, r, s.session.UpdateEducation)
}

func (s *Server) handleRemoveEducation(w http.ResponseWriter, r *http.Request) {
	s.removeEntry(w, r, s.session.RemoveEducation)
}

func (s *Server) handleAddSkill(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusCreated, s.session.AddSkill())
}

func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	s.updateEntry(w, r, s.session.UpdateSkill)
}

func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	s.removeEntry(w, r, s.session.RemoveSkill)
}

func (s *Server) updateEntry(w http.ResponseWriter, r *http.Request, update func(string, types.EntryPatch) error) {
	var patch types.EntryPatch
	if err := decodeJSON(r, &patch); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := patch.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := update(r.PathValue("id"), patch); err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			// Field-level patch errors are caller mistakes.
			status = http.StatusBadRequest
		}
		s.errorResponse(w, status, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) removeEntry(w http.ResponseWriter, r *http.Request, remove func(string) error) {
	if err := remove(r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePreview renders the current resume with the requested template and
// theme and returns the HTML page.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc, err := s.renderCurrent(r.URL.Query().Get("template"), r.URL.Query().Get("theme"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, doc.HTML); err != nil {
		s.logger.Error("failed to write preview", "error", err)
	}
}

type surfaceRequest struct {
	Template string `json:"template"`
	Theme    string `json:"theme"`
}

// handleCreateSurface renders the current resume and attaches the page as a
// capture surface.
func (s *Server) handleCreateSurface(w http.ResponseWriter, r *http.Request) {
	var req surfaceRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	doc, err := s.renderCurrent(req.Template, req.Theme)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	id := s.surfaces.Attach(doc.HTML)
	s.jsonResponse(w, http.StatusCreated, map[string]string{
		"id":       id,
		"template": doc.TemplateID,
	})
}

func (s *Server) handleDeleteSurface(w http.ResponseWriter, r *http.Request) {
	s.surfaces.Detach(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleExport serializes the current resume into the requested format and
// streams it as a download. Failures answer with a JSON Result body; the
// status code reflects the failure kind.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req types.ExportRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)

	format := r.PathValue("format")
	switch format {
	case "txt":
		data = s.textExporter.Render(s.session.Snapshot())
		filename, contentType = "resume.txt", "text/plain; charset=utf-8"
	case "docx":
		data, err = s.docxExporter.Render(s.session.Snapshot())
		filename = "resume.docx"
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "pdf":
		data, err = s.pdfExporter.Render(r.Context(), req.Surface)
		filename, contentType = "resume.pdf", "application/pdf"
	default:
		s.errorResponse(w, http.StatusBadRequest, "unknown export format: "+format)
		return
	}

	if err != nil {
		s.logger.Error("export failed", "format", format, "error", err)
		s.jsonResponse(w, HTTPStatus(err), export.Result{
			Success: false,
			Message: fmt.Sprintf("Failed to export %s. Please try again.", strings.ToUpper(format)),
		})
		return
	}

	if req.Filename != "" {
		filename = req.Filename
	}

	// Keep a server-side copy in the output directory; the download proceeds
	// even if the write fails.
	if err := s.saver.Save(filename, data); err != nil {
		s.logger.Warn("failed to save export copy", "filename", filename, "error", err)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("failed to write export response", "error", err)
	}
}

func (s *Server) handleSuggestions(w http.ResponseWriter, _ *http.Request) {
	items := s.suggester.Analyze(s.session.Snapshot())
	s.jsonResponse(w, http.StatusOK, map[string]any{"suggestions": items})
}

type improveRequest struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

func (s *Server) handleImproveSection(w http.ResponseWriter, r *http.Request) {
	var req improveRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	improved := suggestions.ImproveSection(req.Section, req.Content)
	s.jsonResponse(w, http.StatusOK, map[string]string{"content": improved})
}

func (s *Server) renderCurrent(templateID, themeID string) (*rendering.VisualDocument, error) {
	if templateID == "" {
		templateID = s.defaultTemplate
	}
	if themeID == "" {
		themeID = s.defaultTheme
	}
	return s.engine.Render(s.session.Snapshot(), templateID, types.ThemeByID(themeID))
}
