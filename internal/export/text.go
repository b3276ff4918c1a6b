package export

import (
	"strings"
	"unicode/utf8"

	"github.com/mwhite/resume-studio/internal/selection"
	"github.com/mwhite/resume-studio/internal/types"
)

// TextExporter writes the resume as a plain-text document.
type TextExporter struct {
	Saver Saver
}

func NewTextExporter(saver Saver) *TextExporter {
	return &TextExporter{Saver: saver}
}

// Render returns the plain-text document bytes.
func (e *TextExporter) Render(resume *types.Resume) []byte {
	return []byte(buildText(selection.Build(resume)))
}

// Export serializes the resume to text and delivers it under filename. An
// empty filename defaults to "resume.txt".
func (e *TextExporter) Export(resume *types.Resume, filename string) Result {
	if filename == "" {
		filename = "resume.txt"
	}
	if err := e.Saver.Save(filename, e.Render(resume)); err != nil {
		return failed("TXT")
	}
	return succeeded("TXT")
}

// buildText lays the content out with character-art headings: the name is
// uppercased and underlined with "=", section headings with "-" matching the
// heading length.
func buildText(c selection.Content) string {
	var b strings.Builder

	if c.Header.Name != "" {
		name := strings.ToUpper(c.Header.Name)
		b.WriteString(name + "\n")
		b.WriteString(strings.Repeat("=", utf8.RuneCountInString(name)) + "\n")
	}
	if contact := c.ContactLine(); contact != "" {
		b.WriteString(contact + "\n")
	}

	if c.HasSummary() {
		writeTextHeading(&b, "PROFESSIONAL SUMMARY")
		b.WriteString(c.Summary + "\n")
	}

	if c.HasWork() {
		writeTextHeading(&b, "WORK EXPERIENCE")
		for _, w := range c.Work {
			b.WriteString(w.TitleLine() + "\n")
			if w.DateRange != "" {
				b.WriteString(w.DateRange + "\n")
			}
			for _, bullet := range w.Bullets {
				b.WriteString("• " + bullet + "\n")
			}
			b.WriteString("\n")
		}
	}

	if c.HasEducation() {
		writeTextHeading(&b, "EDUCATION")
		for _, ed := range c.Education {
			b.WriteString(ed.TitleLine() + "\n")
			if ed.DateRange != "" {
				b.WriteString(ed.DateRange + "\n")
			}
			if ed.GPA != "" {
				b.WriteString("GPA: " + ed.GPA + "\n")
			}
			b.WriteString("\n")
		}
	}

	if c.HasSkills() {
		writeTextHeading(&b, "SKILLS")
		b.WriteString(c.SkillNames() + "\n")
	}

	return b.String()
}

func writeTextHeading(b *strings.Builder, heading string) {
	b.WriteString("\n" + heading + "\n")
	b.WriteString(strings.Repeat("-", utf8.RuneCountInString(heading)) + "\n")
}
