package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/mwhite/resume-studio/internal/selection"
	"github.com/mwhite/resume-studio/internal/types"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// VisualDocument is the output of a render: a self-contained HTML page plus
// the template and theme that produced it.
type VisualDocument struct {
	TemplateID string
	Theme      types.ColorTheme
	HTML       string
}

// viewData is the data passed to every layout template. Templates share one
// selection pass and differ only in arrangement.
type viewData struct {
	Content selection.Content
	Theme   types.ColorTheme
}

// Engine renders resumes through the template catalog. It is safe for
// concurrent use; rendering is pure and deterministic.
type Engine struct {
	templates map[string]*template.Template
}

// funcMap exposes the few helpers templates need beyond the builtins.
var funcMap = template.FuncMap{
	// css marks a theme color safe for use inside style attributes.
	"css": func(s string) template.CSS { return template.CSS(s) },
	// seq yields 1..n for fixed-size meters.
	"seq": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
	"atmost": func(limit, n int) int {
		if n < limit {
			return n
		}
		return limit
	},
	"even": func(i int) bool { return i%2 == 0 },
}

// NewEngine parses the embedded layout templates. It fails only on a broken
// build (malformed embedded template), never on user input.
func NewEngine() (*Engine, error) {
	e := &Engine{templates: make(map[string]*template.Template)}

	for _, desc := range types.BuiltinTemplates {
		name := desc.ID + ".gohtml"
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to parse layout template %s", desc.ID),
				Cause:   err,
			}
		}
		e.templates[desc.ID] = tmpl
	}

	return e, nil
}

// Render produces the visual document for a resume. An unknown template id
// falls back to the default template and an unset theme falls back to the
// default theme; the engine never refuses to render a valid resume.
func (e *Engine) Render(resume *types.Resume, templateID string, theme types.ColorTheme) (*VisualDocument, error) {
	tmpl, ok := e.templates[templateID]
	if !ok {
		templateID = types.DefaultTemplateID
		tmpl = e.templates[templateID]
	}

	if theme.IsZero() {
		theme = types.DefaultTheme()
	}

	data := viewData{
		Content: selection.Build(resume),
		Theme:   theme,
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return nil, &RenderError{
			Message: fmt.Sprintf("failed to execute layout template %s", templateID),
			Cause:   err,
		}
	}

	return &VisualDocument{
		TemplateID: templateID,
		Theme:      theme,
		HTML:       out.String(),
	}, nil
}
