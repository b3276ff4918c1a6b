package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite/resume-studio/internal/types"
)

func documentXML(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatal("word/document.xml not found")
	return ""
}

func TestDocxExportContent(t *testing.T) {
	saver := &MemorySaver{}
	result := NewDocxExporter(saver).Export(sampleResume(), "out.docx")

	require.True(t, result.Success)
	assert.Equal(t, "DOCX exported successfully!", result.Message)

	xml := documentXML(t, saver.File("out.docx"))
	assert.Contains(t, xml, ">Jane Doe</w:t>")
	assert.Contains(t, xml, ">jane@example.com | 555-0100 | Portland, OR</w:t>")
	assert.Contains(t, xml, ">PROFESSIONAL SUMMARY</w:t>")
	assert.Contains(t, xml, ">Staff Engineer</w:t>")
	assert.Contains(t, xml, "> | Acme Corp</w:t>")
	assert.Contains(t, xml, ">Mar 2021 - Present</w:t>")
	assert.Contains(t, xml, ">• Led migration to event-driven architecture</w:t>")
	assert.Contains(t, xml, ">GPA: 3.8</w:t>")
	assert.Contains(t, xml, ">Go, PostgreSQL</w:t>")
}

func TestDocxExportRunStyling(t *testing.T) {
	saver := &MemorySaver{}
	NewDocxExporter(saver).Export(sampleResume(), "out.docx")

	xml := documentXML(t, saver.File("out.docx"))
	assert.Contains(t, xml, `<w:sz w:val="32"/>`)
	assert.Contains(t, xml, `<w:sz w:val="24"/>`)
	assert.Contains(t, xml, `<w:sz w:val="22"/>`)
	assert.Contains(t, xml, `<w:sz w:val="18"/>`)
	assert.Contains(t, xml, "<w:i/>")
}

func TestDocxExportSaveFailure(t *testing.T) {
	result := NewDocxExporter(failingSaver{}).Export(sampleResume(), "out.docx")

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to export DOCX. Please try again.", result.Message)
}

// Section visibility must agree between the structured and plain-text paths:
// a section appears exactly when it has content, on every export route.
func TestSectionHeadingsAgreeAcrossFormats(t *testing.T) {
	headings := []string{"PROFESSIONAL SUMMARY", "WORK EXPERIENCE", "EDUCATION", "SKILLS"}

	cases := map[string]struct {
		resume *types.Resume
		want   map[string]bool
	}{
		"empty": {
			resume: &types.Resume{},
			want:   map[string]bool{},
		},
		"summary only": {
			resume: &types.Resume{Summary: "A summary."},
			want:   map[string]bool{"PROFESSIONAL SUMMARY": true},
		},
		"work only": {
			resume: &types.Resume{WorkExperience: []types.WorkExperience{{Company: "Acme"}}},
			want:   map[string]bool{"WORK EXPERIENCE": true},
		},
		"education only": {
			resume: &types.Resume{Education: []types.Education{{Institution: "State"}}},
			want:   map[string]bool{"EDUCATION": true},
		},
		"skills only": {
			resume: &types.Resume{Skills: []types.Skill{{Name: "Go"}}},
			want:   map[string]bool{"SKILLS": true},
		},
		"whitespace summary": {
			resume: &types.Resume{Summary: "   \n  "},
			want:   map[string]bool{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			textSaver := &MemorySaver{}
			docxSaver := &MemorySaver{}
			require.True(t, NewTextExporter(textSaver).Export(tc.resume, "r.txt").Success)
			require.True(t, NewDocxExporter(docxSaver).Export(tc.resume, "r.docx").Success)

			text := string(textSaver.File("r.txt"))
			xml := documentXML(t, docxSaver.File("r.docx"))

			for _, h := range headings {
				assert.Equal(t, tc.want[h], strings.Contains(text, h), "TXT heading %q", h)
				assert.Equal(t, tc.want[h], strings.Contains(xml, h), "DOCX heading %q", h)
			}
		})
	}
}
