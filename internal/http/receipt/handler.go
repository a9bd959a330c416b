package receipt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/struk/internal/document"
	"github.com/MrJamesThe3rd/struk/internal/export"
	"github.com/MrJamesThe3rd/struk/internal/form"
	"github.com/MrJamesThe3rd/struk/internal/format"
	"github.com/MrJamesThe3rd/struk/internal/importer"
	"github.com/MrJamesThe3rd/struk/internal/linkopen"
	"github.com/MrJamesThe3rd/struk/internal/preview"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

const maxUploadSize = 10 << 20

type Handler struct {
	renderer  *preview.Renderer
	html      *preview.HTMLRenderer
	capturer  export.Capturer
	importSvc *importer.Service
	opts      export.Options
	newID     form.IDGenerator
	now       func() time.Time
}

func NewHandler(
	renderer *preview.Renderer,
	capturer export.Capturer,
	importSvc *importer.Service,
	opts export.Options,
	newID form.IDGenerator,
) *Handler {
	// The caller follows the returned link itself; there is nothing to wait for.
	opts.HandoffDelay = 0

	return &Handler{
		renderer:  renderer,
		html:      preview.NewHTMLRenderer(),
		capturer:  capturer,
		importSvc: importSvc,
		opts:      opts,
		newID:     newID,
		now:       time.Now,
	}
}

// WithClock overrides the clock used to date receipts sent without a date.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))

		r.Post("/preview", h.preview)
		r.Post("/preview/html", h.previewHTML)
		r.Post("/png", h.png)
		r.Post("/pdf", h.pdf)
		r.Post("/message", h.message)
	})

	r.Post("/components/import", h.importComponents)
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	details, missing, ok := h.decode(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toPreviewResponse(h.renderer.Build(details), missing))
}

func (h *Handler) previewHTML(w http.ResponseWriter, r *http.Request) {
	details, _, ok := h.decode(w, r)
	if !ok {
		return
	}

	page, err := h.html.RenderHTML(h.renderer.Build(details))
	if err != nil {
		slog.Error("failed to render html preview", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := w.Write([]byte(page)); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func (h *Handler) png(w http.ResponseWriter, r *http.Request) {
	details, _, ok := h.decode(w, r)
	if !ok {
		return
	}

	file := &attachment{}
	svc := h.exportService(file, &linkopen.Recorder{})

	if _, err := svc.ExportImage(r.Context(), details); err != nil {
		writeExportError(w, err)
		return
	}

	if err := file.write(w); err != nil {
		slog.Error("failed to write attachment", "error", err)
	}
}

func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	details, _, ok := h.decode(w, r)
	if !ok {
		return
	}

	file := &attachment{}
	svc := h.exportService(file, &linkopen.Recorder{})

	if _, err := svc.ExportDocument(r.Context(), details); err != nil {
		writeExportError(w, err)
		return
	}

	if err := file.write(w); err != nil {
		slog.Error("failed to write attachment", "error", err)
	}
}

func (h *Handler) message(w http.ResponseWriter, r *http.Request) {
	details, _, ok := h.decode(w, r)
	if !ok {
		return
	}

	links := &linkopen.Recorder{}
	svc := h.exportService(&attachment{}, links)

	link, err := svc.SendMessage(r.Context(), details)
	if err != nil {
		writeExportError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		URL:   link,
		Phone: format.NormalizePhone(details.OwnerPhone, h.opts.CountryCode),
		Text:  format.StatusMessage(details.OwnerName, details.GrandTotal()),
	})
}

func (h *Handler) importComponents(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxUploadSize)

	kind := importer.Format(r.URL.Query().Get("format"))

	params, err := h.importSvc.Import(kind, body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Message: "Gagal membaca daftar komponen."})
		return
	}

	writeJSON(w, http.StatusOK, toImportResponse(params))
}

func (h *Handler) exportService(files export.FileSaver, links export.LinkOpener) *export.Service {
	return export.NewService(h.renderer, h.capturer, document.NewPDFWriter(files), files, links, h.opts)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (receipt.Details, []string, bool) {
	var req receiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return receipt.Details{}, nil, false
	}

	details, missing, err := req.toDetails(h.newID, h.now())
	if err != nil {
		slog.Error("failed to build receipt", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return receipt.Details{}, nil, false
	}

	return details, missing, true
}

func writeExportError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, export.ErrMissingPhone):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, export.ErrBusy):
		status = http.StatusConflict
	case errors.Is(err, export.ErrHandoffFailed):
		status = http.StatusBadGateway
	}

	writeJSON(w, status, errorResponse{Error: err.Error(), Message: export.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
