package document_test

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
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/struk/internal/document"
	"github.com/MrJamesThe3rd/struk/internal/export"
)

func encodedImage(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.Black)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestPDFWriter_WriteImagePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := export.NewMockFileSaver(ctrl)

	files.EXPECT().
		Save(gomock.Any(), "Struk_Sinar_Jaya_customer_invoice.pdf", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte) error {
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
			return nil
		})

	page := export.Page{Orientation: "P", Unit: "pt", Width: 120, Height: 300}
	err := document.NewPDFWriter(files).WriteImagePage(context.Background(), page, encodedImage(t, 120, 300), "Struk_Sinar_Jaya_customer_invoice.pdf")
	require.NoError(t, err)
}

func TestPDFWriter_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := export.NewMockFileSaver(ctrl)

	saveErr := errors.New("read-only")
	files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(saveErr)

	page := export.Page{Orientation: "P", Unit: "pt", Width: 10, Height: 10}
	err := document.NewPDFWriter(files).WriteImagePage(context.Background(), page, encodedImage(t, 10, 10), "x.pdf")
	assert.ErrorIs(t, err, saveErr)
}

func TestRender_Errors(t *testing.T) {
	_, err := document.Render(export.Page{Orientation: "P", Unit: "pt"}, encodedImage(t, 10, 10))
	assert.Error(t, err)

	_, err = document.Render(export.Page{Orientation: "P", Unit: "pt", Width: 10, Height: 10}, []byte("not a png"))
	assert.Error(t, err)
}
