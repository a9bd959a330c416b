package export

import (
	"context"
	"image"
	"image/color"

	"github.com/MrJamesThe3rd/struk/internal/preview"
)

//go:generate mockgen -source=capability.go -destination=capability_mock.go -package=export

// CaptureOptions control how the preview is rasterized.
type CaptureOptions struct {
	Scale            float64 // Oversampling factor for high-density output
	AllowCrossOrigin bool
	Background       color.Color
	Logging          bool
}

// Capturer rasterizes a rendered preview.
type Capturer interface {
	Capture(ctx context.Context, doc preview.Document, opts CaptureOptions) (image.Image, error)
}

// Page describes the single page of an exported document.
type Page struct {
	Orientation string // "P" or "L"
	Unit        string
	Width       float64
	Height      float64
}

// DocumentWriter wraps an encoded image into a one-page document and saves
// it under filename.
type DocumentWriter interface {
	WriteImagePage(ctx context.Context, page Page, png []byte, filename string) error
}

// FileSaver hands a finished file to the user.
type FileSaver interface {
	Save(ctx context.Context, filename string, data []byte) error
}

// LinkOpener opens a URL outside the application.
type LinkOpener interface {
	Open(ctx context.Context, url string) error
}
