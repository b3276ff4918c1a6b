package wordml

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readZipEntry(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(content)
		}
	}
	t.Fatalf("zip entry %s not found", name)
	return ""
}

func TestBytesProducesValidContainer(t *testing.T) {
	doc := New()
	doc.AddParagraph(Run{Text: "Hello", Bold: true, Size: 32})

	data, err := doc.Bytes()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["[Content_Types].xml"])
	assert.True(t, names["_rels/.rels"])
	assert.True(t, names["word/document.xml"])
	assert.True(t, names["word/styles.xml"])
}

func TestRunStyling(t *testing.T) {
	doc := New()
	doc.AddParagraph(
		Run{Text: "Title", Bold: true, Size: 32},
		Run{Text: " | details", Size: 20},
	)
	doc.AddParagraph(Run{Text: "dates", Italic: true, Size: 18})

	data, err := doc.Bytes()
	require.NoError(t, err)

	xml := readZipEntry(t, data, "word/document.xml")
	assert.Contains(t, xml, "<w:b/>")
	assert.Contains(t, xml, "<w:i/>")
	assert.Contains(t, xml, `<w:sz w:val="32"/>`)
	assert.Contains(t, xml, `<w:sz w:val="18"/>`)
	assert.Contains(t, xml, ">Title</w:t>")
}

func TestBlankParagraph(t *testing.T) {
	doc := New()
	doc.AddParagraph()

	data, err := doc.Bytes()
	require.NoError(t, err)

	xml := readZipEntry(t, data, "word/document.xml")
	assert.Contains(t, xml, "<w:p></w:p>")
	assert.Equal(t, 1, doc.ParagraphCount())
}

func TestTextEscaping(t *testing.T) {
	doc := New()
	doc.AddParagraph(Run{Text: `R&D <lead> "quotes"`})

	data, err := doc.Bytes()
	require.NoError(t, err)

	xml := readZipEntry(t, data, "word/document.xml")
	assert.Contains(t, xml, "R&amp;D")
	assert.Contains(t, xml, "&lt;lead&gt;")
	assert.NotContains(t, xml, "<lead>")
}

func TestEmptyDocumentStillSerializes(t *testing.T) {
	data, err := New().Bytes()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
