// Package wordml writes minimal WordprocessingML (.docx) documents.
//
// The package covers exactly what resume export needs: a flat sequence of
// paragraphs, each holding styled text runs. Output is a standard OOXML zip
// container readable by Word, LibreOffice, and Google Docs.
package wordml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Run is a contiguous piece of text sharing one style. Size is in half-points
// (the native WordprocessingML unit); zero means the document default.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   int
}

// Paragraph is an ordered sequence of runs. A paragraph with no runs renders
// as a blank line.
type Paragraph struct {
	Runs []Run
}

// Document is a buildable word-processor document.
type Document struct {
	paragraphs []Paragraph
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// AddParagraph appends a paragraph composed of the given runs. Call with no
// runs to append a blank separator paragraph.
func (d *Document) AddParagraph(runs ...Run) {
	d.paragraphs = append(d.paragraphs, Paragraph{Runs: runs})
}

// ParagraphCount returns the number of paragraphs added so far.
func (d *Document) ParagraphCount() int {
	return len(d.paragraphs)
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="22"/></w:rPr></w:rPrDefault></w:docDefaults>
</w:styles>`

// Bytes serializes the document into a .docx container.
func (d *Document) Bytes() ([]byte, error) {
	var docXML strings.Builder
	docXML.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	docXML.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, p := range d.paragraphs {
		docXML.WriteString("<w:p>")
		for _, r := range p.Runs {
			writeRun(&docXML, r)
		}
		docXML.WriteString("</w:p>")
	}

	docXML.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr>`)
	docXML.WriteString("</w:body></w:document>")

	var out bytes.Buffer
	zw := zip.NewWriter(&out)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", docXML.String()},
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize docx container: %w", err)
	}

	return out.Bytes(), nil
}

func writeRun(b *strings.Builder, r Run) {
	b.WriteString("<w:r>")

	if r.Bold || r.Italic || r.Size > 0 {
		b.WriteString("<w:rPr>")
		if r.Bold {
			b.WriteString("<w:b/>")
		}
		if r.Italic {
			b.WriteString("<w:i/>")
		}
		if r.Size > 0 {
			fmt.Fprintf(b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.Size, r.Size)
		}
		b.WriteString("</w:rPr>")
	}

	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escapeText(r.Text))
	b.WriteString("</w:t></w:r>")
}

func escapeText(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never fails.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
