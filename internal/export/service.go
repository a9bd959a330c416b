package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/struk/internal/format"
	"github.com/MrJamesThe3rd/struk/internal/preview"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

var (
	ErrBusy          = errors.New("another export is in progress")
	ErrMissingPhone  = errors.New("owner phone number is missing")
	ErrExportFailed  = errors.New("export failed")
	ErrHandoffFailed = errors.New("messaging handoff failed")

	ErrImageExport    = fmt.Errorf("%w: png", ErrExportFailed)
	ErrDocumentExport = fmt.Errorf("%w: pdf", ErrExportFailed)
)

// Options configure exports. Zero values are not usable; start from
// DefaultOptions.
type Options struct {
	ShopName     string
	Scale        float64
	Background   color.Color
	CountryCode  string
	MessagingURL string
	HandoffDelay time.Duration

	AllowCrossOrigin bool
	Logging          bool
}

func DefaultOptions() Options {
	return Options{
		Scale:        2.5,
		Background:   color.White,
		CountryCode:  "62",
		MessagingURL: "https://api.whatsapp.com/send/",
		HandoffDelay: 300 * time.Millisecond,

		AllowCrossOrigin: true,
	}
}

// Service turns a submitted receipt into a PNG, a PDF or a messaging
// handoff. Only one export runs at a time.
type Service struct {
	renderer  *preview.Renderer
	capturer  Capturer
	documents DocumentWriter
	files     FileSaver
	links     LinkOpener
	opts      Options
	sleep     func(ctx context.Context, d time.Duration) error

	mu          sync.Mutex
	downloading bool
	sending     bool
}

// NewService creates a new export Service.
func NewService(
	renderer *preview.Renderer,
	capturer Capturer,
	documents DocumentWriter,
	files FileSaver,
	links LinkOpener,
	opts Options,
) *Service {
	return &Service{
		renderer:  renderer,
		capturer:  capturer,
		documents: documents,
		files:     files,
		links:     links,
		opts:      opts,
		sleep:     sleepContext,
	}
}

// WithSleep replaces the wait used before the messaging handoff.
func (s *Service) WithSleep(sleep func(ctx context.Context, d time.Duration) error) *Service {
	s.sleep = sleep
	return s
}

// Downloading reports whether an image or document export is running.
func (s *Service) Downloading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.downloading
}

// Sending reports whether a messaging handoff is running.
func (s *Service) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sending
}

// FileName returns the base name, without extension, used for d's files.
func (s *Service) FileName(d receipt.Details) string {
	return format.FileName(s.opts.ShopName, d.OwnerName, d.InvoiceDate)
}

// ExportImage saves the rendered receipt as a PNG and returns the file name.
func (s *Service) ExportImage(ctx context.Context, d receipt.Details) (string, error) {
	if err := s.begin(&s.downloading); err != nil {
		return "", err
	}
	defer s.end(&s.downloading)

	data, _, err := s.snapshotPNG(ctx, d)
	if err != nil {
		return "", s.fail("failed to generate PNG", ErrImageExport, err)
	}

	name := s.FileName(d) + ".png"
	if err := s.files.Save(ctx, name, data); err != nil {
		return "", s.fail("failed to save PNG", ErrImageExport, err)
	}

	return name, nil
}

// ExportDocument saves the rendered receipt as a one-page PDF sized to the
// snapshot and returns the file name.
func (s *Service) ExportDocument(ctx context.Context, d receipt.Details) (string, error) {
	if err := s.begin(&s.downloading); err != nil {
		return "", err
	}
	defer s.end(&s.downloading)

	data, bounds, err := s.snapshotPNG(ctx, d)
	if err != nil {
		return "", s.fail("failed to generate PDF", ErrDocumentExport, err)
	}

	page := Page{
		Orientation: "P",
		Unit:        "pt",
		Width:       float64(bounds.Dx()),
		Height:      float64(bounds.Dy()),
	}

	name := s.FileName(d) + ".pdf"
	if err := s.documents.WriteImagePage(ctx, page, data, name); err != nil {
		return "", s.fail("failed to write PDF", ErrDocumentExport, err)
	}

	return name, nil
}

// SendMessage hands a "repair finished" message for the owner's phone to the
// link opener and returns the deep link.
func (s *Service) SendMessage(ctx context.Context, d receipt.Details) (string, error) {
	phone := format.NormalizePhone(d.OwnerPhone, s.opts.CountryCode)
	if phone == "" {
		return "", ErrMissingPhone
	}

	if err := s.begin(&s.sending); err != nil {
		return "", err
	}
	defer s.end(&s.sending)

	text := format.StatusMessage(d.OwnerName, d.GrandTotal())
	link := format.DeepLink(s.opts.MessagingURL, phone, text)

	if err := s.sleep(ctx, s.opts.HandoffDelay); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHandoffFailed, err)
	}

	if err := s.links.Open(ctx, link); err != nil {
		return "", s.fail("failed to open messaging link", ErrHandoffFailed, err)
	}

	return link, nil
}

func (s *Service) snapshotPNG(ctx context.Context, d receipt.Details) ([]byte, image.Rectangle, error) {
	img, err := s.capturer.Capture(ctx, s.renderer.Build(d), CaptureOptions{
		Scale:            s.opts.Scale,
		AllowCrossOrigin: s.opts.AllowCrossOrigin,
		Background:       s.opts.Background,
		Logging:          s.opts.Logging,
	})
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("capture: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("encode png: %w", err)
	}

	return buf.Bytes(), img.Bounds(), nil
}

func (s *Service) begin(flag *bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.downloading || s.sending {
		return ErrBusy
	}

	*flag = true

	return nil
}

func (s *Service) end(flag *bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	*flag = false
}

func (s *Service) fail(msg string, kind, err error) error {
	slog.Error(msg, "error", err)
	return fmt.Errorf("%w: %w", kind, err)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
