package receipt_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/struk/internal/capture"
	"github.com/MrJamesThe3rd/struk/internal/export"
	receiptHandler "github.com/MrJamesThe3rd/struk/internal/http/receipt"
	"github.com/MrJamesThe3rd/struk/internal/importer"
	"github.com/MrJamesThe3rd/struk/internal/preview"
)

const sampleBody = `{
	"item_name": "Timbangan Digital 40kg",
	"owner_name": "Nadia Indah",
	"owner_phone": "0812-3456-7890",
	"damage_type": "rusak bagian load cell",
	"invoice_date": "2025-05-26",
	"service_fee": "100000",
	"components": [
		{"name": "Load Cell Sensor", "quantity": 1, "price": 150000},
		{"name": "Kabel", "quantity": "2", "price": "25000"}
	]
}`

func newRouter(t *testing.T, capturer export.Capturer) http.Handler {
	t.Helper()

	opts := export.DefaultOptions()
	opts.ShopName = "Ruang Service"
	opts.Scale = 1

	renderer := preview.NewRenderer(preview.Shop{Name: "Ruang Service", Phone: "081200000000"}).
		WithClock(func() time.Time { return time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC) })

	var seq int
	newID := func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}

	h := receiptHandler.NewHandler(renderer, capturer, importer.NewService(), opts, newID).
		WithClock(func() time.Time { return time.Date(2025, 5, 26, 9, 0, 0, 0, time.UTC) })

	r := chi.NewRouter()
	h.Routes(r)

	return r
}

func post(t *testing.T, h http.Handler, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Preview(t *testing.T) {
	h := newRouter(t, capture.NewRasterizer())

	rec := post(t, h, "/preview", "application/json", sampleBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		ShopName   string `json:"shop_name"`
		Date       string `json:"date"`
		Subtotal   string `json:"subtotal"`
		GrandTotal string `json:"grand_total"`
		Rows       []struct {
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
			Price    string `json:"price"`
		} `json:"rows"`
		Missing []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, "Ruang Service", got.ShopName)
	assert.Equal(t, "Senin, 26 Mei 2025", got.Date)
	assert.Equal(t, "Rp\u00a0175.000", got.Subtotal)
	assert.Equal(t, "Rp\u00a0275.000", got.GrandTotal)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, 2, got.Rows[1].Quantity)
	assert.Equal(t, "Rp\u00a025.000", got.Rows[1].Price)
	assert.Empty(t, got.Missing)
}

func TestHandler_PreviewReportsMissingFields(t *testing.T) {
	h := newRouter(t, capture.NewRasterizer())

	rec := post(t, h, "/preview", "application/json", `{"components": [{"price": "abc"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		GrandTotal string   `json:"grand_total"`
		Missing    []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, "Rp\u00a00", got.GrandTotal)
	assert.Contains(t, got.Missing, "Nama Barang")
	assert.Contains(t, got.Missing, "Nama Komponen #1")
}

func TestHandler_PreviewOversizedAmounts(t *testing.T) {
	h := newRouter(t, capture.NewRasterizer())

	body := `{
		"service_fee": "1e19",
		"components": [
			{"name": "A", "price": 9223372036854775808},
			{"name": "B", "price": "99999999999999999999"}
		]
	}`

	rec := post(t, h, "/preview", "application/json", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		GrandTotal string `json:"grand_total"`
		Rows       []struct {
			Price string `json:"price"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, "Rp\u00a00", got.GrandTotal)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "Rp\u00a00", got.Rows[0].Price)
	assert.Equal(t, "Rp\u00a00", got.Rows[1].Price)
}

func TestHandler_PreviewRejectsBadInput(t *testing.T) {
	h := newRouter(t, capture.NewRasterizer())

	rec := post(t, h, "/preview", "text/plain", sampleBody)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = post(t, h, "/preview", "application/json", `{"item_name": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_PreviewHTML(t *testing.T) {
	h := newRouter(t, capture.NewRasterizer())

	rec := post(t, h, "/preview/html", "application/json", sampleBody)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Load Cell Sensor")
}

func TestHandler_PNG(t *testing.T) {
	h := newRouter(t, capture.NewRasterizer())

	rec := post(t, h, "/png", "application/json", sampleBody)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Struk_Ruang_Service_Nadia_Indah_26-05-2025.png"`,
		rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestHandler_PDF(t *testing.T) {
	h := newRouter(t, capture.NewRasterizer())

	rec := post(t, h, "/pdf", "application/json", sampleBody)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Struk_Ruang_Service_Nadia_Indah_26-05-2025.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHandler_CaptureFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	capturer := export.NewMockCapturer(ctrl)
	capturer.EXPECT().Capture(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("canvas lost"))

	h := newRouter(t, capturer)

	rec := post(t, h, "/png", "application/json", sampleBody)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Gagal membuat file PNG. Silakan coba lagi.", got.Message)
}

func TestHandler_Message(t *testing.T) {
	h := newRouter(t, capture.NewRasterizer())

	rec := post(t, h, "/message", "application/json", sampleBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		URL   string `json:"url"`
		Phone string `json:"phone"`
		Text  string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, "6281234567890", got.Phone)
	assert.True(t, strings.HasPrefix(got.URL, "https://api.whatsapp.com/send/?phone=6281234567890&text="))
	assert.Contains(t, got.Text, "Nadia Indah")
	assert.Contains(t, got.Text, "Rp\u00a0275.000")
}

func TestHandler_MessageWithoutPhone(t *testing.T) {
	h := newRouter(t, capture.NewRasterizer())

	for _, phone := range []string{"", "  ", "-- ()"} {
		body := fmt.Sprintf(`{"owner_name": "Nadia", "owner_phone": %q}`, phone)

		rec := post(t, h, "/message", "application/json", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, "phone %q", phone)

		var got struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Nomor HP pemilik belum diisi.", got.Message)
	}
}

func TestHandler_ImportComponents(t *testing.T) {
	h := newRouter(t, capture.NewRasterizer())

	rec := post(t, h, "/components/import", "text/csv", "Nama Komponen;Jumlah;Harga\nLCD;1;Rp 850.000\nBaterai;2;300.000\n")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Imported   int `json:"imported"`
		Components []struct {
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
			Price    int64  `json:"price"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, 2, got.Imported)
	assert.Equal(t, "LCD", got.Components[0].Name)
	assert.Equal(t, int64(850000), got.Components[0].Price)
	assert.Equal(t, 2, got.Components[1].Quantity)
}

func TestHandler_ImportComponentsErrors(t *testing.T) {
	h := newRouter(t, capture.NewRasterizer())

	rec := post(t, h, "/components/import", "text/csv", "foo;bar\n1;2\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, h, "/components/import?format=xlsx", "text/csv", "Nama;Harga\nA;1\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
