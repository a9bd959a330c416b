package capture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/struk/internal/preview"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

func pricedDocument() preview.Document {
	return preview.NewRenderer(preview.Shop{Name: "Sinar Jaya", Address: "Jl. Merdeka No. 10, Bandung"}).Build(receipt.Details{
		ItemName:    "Timbangan Digital 40kg",
		OwnerName:   "José ✅",
		InvoiceDate: "2025-05-26",
		Components: []receipt.ComponentItem{
			{ID: "a", Name: "Kabel Ø 2mm", Quantity: 1, Price: 25000},
			{ID: "b", Name: strings.Repeat("Load Cell Sensor Zemic ", 4), Quantity: 1, Price: 150000},
		},
		ServiceFee: 75000,
	})
}

func TestPrintable_EveryRuneHasAGlyph(t *testing.T) {
	face, err := NewRasterizer().newFace()
	require.NoError(t, err)
	defer face.Close()

	lines := preview.Lines(pricedDocument())

	joined := strings.Join(lines, "\n")
	require.Contains(t, joined, "\u00a0", "amounts carry a no-break space")
	require.Contains(t, joined, "©")
	require.Contains(t, joined, "…")

	for _, l := range lines {
		for _, r := range printable(face, l) {
			assert.True(t, hasGlyph(face, r), "no glyph for %q in line %q", r, l)
		}
	}
}

func TestPrintable_Fallbacks(t *testing.T) {
	face, err := NewRasterizer().newFace()
	require.NoError(t, err)
	defer face.Close()

	assert.Equal(t, "Rp 150.000", strings.ReplaceAll(printable(face, "Rp\u00a0150.000"), "\u00a0", " "))
	assert.Equal(t, "Kabel", printable(face, "Kabel"))
	assert.Equal(t, "a?b", printable(face, "a\ue000b"))
}
