package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/MrJamesThe3rd/struk/internal/export"
	"github.com/MrJamesThe3rd/struk/internal/preview"
)

const (
	margin   = 24
	fontSize = 13
)

var ErrInvalidScale = errors.New("scale must be positive")

// monoFont is parsed once; faces built from it are not safe for concurrent
// use, so each capture gets its own.
var monoFont = mustParse(gomono.TTF)

// Rasterizer draws the plain-text receipt layout onto an opaque canvas with a
// monospaced face, so the text columns stay aligned.
type Rasterizer struct {
	font *opentype.Font
	ink  color.Color
}

func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		font: monoFont,
		ink:  color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff},
	}
}

func (r *Rasterizer) newFace() (font.Face, error) {
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("loading font face: %w", err)
	}

	return face, nil
}

// Capture renders doc at 1x and then resamples it by opts.Scale.
func (r *Rasterizer) Capture(ctx context.Context, doc preview.Document, opts export.CaptureOptions) (image.Image, error) {
	if opts.Scale <= 0 {
		return nil, ErrInvalidScale
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bg := opts.Background
	if bg == nil {
		bg = color.White
	}

	face, err := r.newFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	lines := preview.Lines(doc)
	for i, l := range lines {
		lines[i] = printable(face, l)
	}

	base := r.draw(face, lines, bg)

	if opts.Logging {
		slog.Debug("rasterized receipt", "width", base.Bounds().Dx(), "height", base.Bounds().Dy(), "scale", opts.Scale)
	}

	if opts.Scale == 1 {
		return base, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := base.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, scaled(b.Dx(), opts.Scale), scaled(b.Dy(), opts.Scale)))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(out, out.Bounds(), base, b, draw.Over, nil)

	return out, nil
}

func (r *Rasterizer) draw(face font.Face, lines []string, bg color.Color) *image.RGBA {
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	width := 0
	for _, l := range lines {
		if w := font.MeasureString(face, l).Ceil(); w > width {
			width = w
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width+2*margin, len(lines)*lineHeight+2*margin))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.ink),
		Face: face,
	}

	for i, l := range lines {
		d.Dot = fixed.P(margin, margin+i*lineHeight+metrics.Ascent.Ceil())
		d.DrawString(l)
	}

	return img
}

func scaled(n int, scale float64) int {
	return int(float64(n)*scale + 0.5)
}

func mustParse(ttf []byte) *opentype.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("capture: parsing embedded font: %v", err))
	}

	return f
}
