package document

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/MrJamesThe3rd/struk/internal/export"
)

const imageName = "receipt"

// PDFWriter builds single-page PDFs that hold one full-bleed image.
type PDFWriter struct {
	files export.FileSaver
}

func NewPDFWriter(files export.FileSaver) *PDFWriter {
	return &PDFWriter{files: files}
}

// WriteImagePage sizes the page to page.Width x page.Height, places the PNG
// at the origin covering the whole page and saves the result.
func (w *PDFWriter) WriteImagePage(ctx context.Context, page export.Page, png []byte, filename string) error {
	data, err := Render(page, png)
	if err != nil {
		return err
	}

	if err := w.files.Save(ctx, filename, data); err != nil {
		return fmt.Errorf("saving %s: %w", filename, err)
	}

	return nil
}

// Render returns the encoded PDF without saving it.
func Render(page export.Page, png []byte) ([]byte, error) {
	if page.Width <= 0 || page.Height <= 0 {
		return nil, fmt.Errorf("invalid page size %.0fx%.0f", page.Width, page.Height)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: page.Orientation,
		UnitStr:        page.Unit,
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imageName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imageName, 0, 0, page.Width, page.Height, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}

	return buf.Bytes(), nil
}
