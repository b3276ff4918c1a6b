package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite/resume-studio/internal/capture"
)

type stubShooter struct {
	png []byte
	err error
}

func (s *stubShooter) Screenshot(context.Context, string) ([]byte, error) {
	return s.png, s.err
}

func tinyPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPDFExportSuccess(t *testing.T) {
	surfaces := capture.NewRegistry()
	id := surfaces.Attach("<html><body>resume</body></html>")
	saver := &MemorySaver{}
	exporter := NewPDFExporter(surfaces, &stubShooter{png: tinyPNG(t, 144, 200)}, saver)

	result := exporter.Export(context.Background(), id, "out.pdf")

	require.True(t, result.Success)
	assert.Equal(t, "PDF exported successfully!", result.Message)
	assert.True(t, bytes.HasPrefix(saver.File("out.pdf"), []byte("%PDF")))
}

func TestPDFExportMissingSurface(t *testing.T) {
	exporter := NewPDFExporter(capture.NewRegistry(), &stubShooter{}, &MemorySaver{})

	result := exporter.Export(context.Background(), "no-such-surface", "out.pdf")

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to export PDF. Please try again.", result.Message)
}

func TestPDFRenderMissingSurfaceError(t *testing.T) {
	exporter := NewPDFExporter(capture.NewRegistry(), &stubShooter{}, &MemorySaver{})

	_, err := exporter.Render(context.Background(), "gone")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "gone", notFound.Surface)
}

func TestPDFExportCaptureFailure(t *testing.T) {
	surfaces := capture.NewRegistry()
	id := surfaces.Attach("<html></html>")
	exporter := NewPDFExporter(surfaces, &stubShooter{err: errors.New("browser gone")}, &MemorySaver{})

	result := exporter.Export(context.Background(), id, "out.pdf")

	assert.False(t, result.Success)
}

func TestPDFRenderCaptureFailureError(t *testing.T) {
	surfaces := capture.NewRegistry()
	id := surfaces.Attach("<html></html>")
	exporter := NewPDFExporter(surfaces, &stubShooter{err: errors.New("browser gone")}, &MemorySaver{})

	_, err := exporter.Render(context.Background(), id)

	var serialization *SerializationError
	require.ErrorAs(t, err, &serialization)
	assert.Equal(t, "PDF", serialization.Format)
}

func TestPDFExportBadImage(t *testing.T) {
	surfaces := capture.NewRegistry()
	id := surfaces.Attach("<html></html>")
	exporter := NewPDFExporter(surfaces, &stubShooter{png: []byte("not a png")}, &MemorySaver{})

	result := exporter.Export(context.Background(), id, "out.pdf")

	assert.False(t, result.Success)
}
