package export

import (
	"bytes"
	"context"
	"image/png"

	"github.com/go-pdf/fpdf"

	"github.com/mwhite/resume-studio/internal/capture"
)

// Screenshotter rasterizes an HTML page into a PNG bitmap.
type Screenshotter interface {
	Screenshot(ctx context.Context, html string) ([]byte, error)
}

// PDFExporter captures an attached visual surface as a bitmap and embeds it
// in a single A4 page. The output is pixel-faithful to the rendered preview;
// nothing is re-typeset.
type PDFExporter struct {
	Surfaces *capture.Registry
	Shooter  Screenshotter
	Saver    Saver
}

func NewPDFExporter(surfaces *capture.Registry, shooter Screenshotter, saver Saver) *PDFExporter {
	return &PDFExporter{Surfaces: surfaces, Shooter: shooter, Saver: saver}
}

// Render rasterizes the surface attached under surfaceID and returns the PDF
// bytes. A missing or detached surface yields a NotFoundError.
func (e *PDFExporter) Render(ctx context.Context, surfaceID string) ([]byte, error) {
	html, ok := e.Surfaces.Get(surfaceID)
	if !ok {
		return nil, &NotFoundError{Surface: surfaceID}
	}

	image, err := e.Shooter.Screenshot(ctx, html)
	if err != nil {
		return nil, &SerializationError{Format: "PDF", Cause: err}
	}

	return assemblePDF(image)
}

// Export rasterizes the surface and delivers the PDF under filename. An empty
// filename defaults to "resume.pdf". A missing surface fails the export
// without side effects.
func (e *PDFExporter) Export(ctx context.Context, surfaceID, filename string) Result {
	if filename == "" {
		filename = "resume.pdf"
	}

	data, err := e.Render(ctx, surfaceID)
	if err != nil {
		return failed("PDF")
	}
	if err := e.Saver.Save(filename, data); err != nil {
		return failed("PDF")
	}
	return succeeded("PDF")
}

// assemblePDF places the bitmap on one A4 portrait page, scaled to fit while
// preserving aspect ratio and centered horizontally at the top edge.
func assemblePDF(image []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(image))
	if err != nil {
		return nil, &SerializationError{Format: "PDF", Cause: err}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	imgW := float64(cfg.Width)
	imgH := float64(cfg.Height)
	ratio := pageW / imgW
	if r := pageH / imgH; r < ratio {
		ratio = r
	}
	x := (pageW - imgW*ratio) / 2

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("surface", opts, bytes.NewReader(image))
	pdf.ImageOptions("surface", x, 0, imgW*ratio, imgH*ratio, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &SerializationError{Format: "PDF", Cause: err}
	}
	return buf.Bytes(), nil
}
