package export

import (
	"github.com/mwhite/resume-studio/internal/selection"
	"github.com/mwhite/resume-studio/internal/types"
	"github.com/mwhite/resume-studio/internal/wordml"
)

// Run sizes in half-points.
const (
	docxNameSize    = 32
	docxHeadingSize = 24
	docxTitleSize   = 22
	docxBodySize    = 20
	docxDateSize    = 18
)

// DocxExporter writes the resume as a Word document walked directly from the
// data model, independent of any rendered surface.
type DocxExporter struct {
	Saver Saver
}

func NewDocxExporter(saver Saver) *DocxExporter {
	return &DocxExporter{Saver: saver}
}

// Render returns the DOCX document bytes.
func (e *DocxExporter) Render(resume *types.Resume) ([]byte, error) {
	data, err := buildDocx(selection.Build(resume)).Bytes()
	if err != nil {
		return nil, &SerializationError{Format: "DOCX", Cause: err}
	}
	return data, nil
}

// Export serializes the resume to DOCX and delivers it under filename. An
// empty filename defaults to "resume.docx".
func (e *DocxExporter) Export(resume *types.Resume, filename string) Result {
	if filename == "" {
		filename = "resume.docx"
	}
	data, err := e.Render(resume)
	if err != nil {
		return failed("DOCX")
	}
	if err := e.Saver.Save(filename, data); err != nil {
		return failed("DOCX")
	}
	return succeeded("DOCX")
}

func buildDocx(c selection.Content) *wordml.Document {
	doc := wordml.New()

	if c.Header.Name != "" {
		doc.AddParagraph(wordml.Run{Text: c.Header.Name, Bold: true, Size: docxNameSize})
	}
	if contact := c.ContactLine(); contact != "" {
		doc.AddParagraph(wordml.Run{Text: contact, Size: docxBodySize})
	}
	doc.AddParagraph()

	if c.HasSummary() {
		addDocxHeading(doc, "PROFESSIONAL SUMMARY")
		doc.AddParagraph(wordml.Run{Text: c.Summary, Size: docxBodySize})
		doc.AddParagraph()
	}

	if c.HasWork() {
		addDocxHeading(doc, "WORK EXPERIENCE")
		for _, w := range c.Work {
			doc.AddParagraph(titleRuns(w.Position, w.Company, w.Location)...)
			if w.DateRange != "" {
				doc.AddParagraph(wordml.Run{Text: w.DateRange, Italic: true, Size: docxDateSize})
			}
			for _, bullet := range w.Bullets {
				doc.AddParagraph(wordml.Run{Text: "• " + bullet, Size: docxBodySize})
			}
			doc.AddParagraph()
		}
	}

	if c.HasEducation() {
		addDocxHeading(doc, "EDUCATION")
		for _, ed := range c.Education {
			doc.AddParagraph(titleRuns(ed.Title, ed.Institution)...)
			if ed.DateRange != "" {
				doc.AddParagraph(wordml.Run{Text: ed.DateRange, Italic: true, Size: docxDateSize})
			}
			if ed.GPA != "" {
				doc.AddParagraph(wordml.Run{Text: "GPA: " + ed.GPA, Size: docxBodySize})
			}
			doc.AddParagraph()
		}
	}

	if c.HasSkills() {
		addDocxHeading(doc, "SKILLS")
		doc.AddParagraph(wordml.Run{Text: c.SkillNames(), Size: docxBodySize})
	}

	return doc
}

func addDocxHeading(doc *wordml.Document, heading string) {
	doc.AddParagraph(wordml.Run{Text: heading, Bold: true, Size: docxHeadingSize})
}

// titleRuns styles the first non-empty part bold and appends the rest with
// " | " separators, skipping empty parts so no separator dangles.
func titleRuns(parts ...string) []wordml.Run {
	runs := make([]wordml.Run, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if len(runs) == 0 {
			runs = append(runs, wordml.Run{Text: p, Bold: true, Size: docxTitleSize})
			continue
		}
		runs = append(runs, wordml.Run{Text: " | " + p, Size: docxBodySize})
	}
	return runs
}
