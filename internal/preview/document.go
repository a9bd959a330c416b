package preview

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/struk/internal/format"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

const (
	NoData       = "Tidak ada data"
	NoComponents = "Tidak ada komponen."
)

// Shop identifies the business printed on every receipt.
type Shop struct {
	Name    string
	Phone   string
	Address string
}

// Field is a labelled value in the customer section.
type Field struct {
	Label string
	Value string
}

// Row is one line of the component table.
type Row struct {
	No       int
	Name     string
	Quantity int
	Price    string
}

// Document is the display-ready projection of a receipt. All amounts and
// dates are already formatted.
type Document struct {
	ShopName string
	Date     string

	Fields    []Field
	Rows      []Row
	EmptyNote string

	Subtotal   string
	ServiceFee string
	GrandTotal string

	Notice       []string
	ContactPhone string
	Address      []string
	Copyright    string
}

// Renderer turns receipt details into a Document.
type Renderer struct {
	shop Shop
	now  func() time.Time
}

func NewRenderer(shop Shop) *Renderer {
	return &Renderer{shop: shop, now: time.Now}
}

// WithClock overrides the clock used for the copyright year.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

// Build never fails: blank required fields and bad dates degrade to
// placeholder text.
func (r *Renderer) Build(d receipt.Details) Document {
	doc := Document{
		ShopName: r.shop.Name,
		Date:     format.LongDate(d.InvoiceDate),
		Fields: []Field{
			{Label: "Nama Barang", Value: orNoData(d.ItemName)},
			{Label: "Nama Pemilik", Value: orNoData(d.OwnerName)},
			{Label: "Jenis Kerusakan", Value: orNoData(d.DamageType)},
		},
		Subtotal:   format.Currency(d.Subtotal()),
		ServiceFee: format.Currency(d.ServiceFee),
		GrandTotal: format.Currency(d.GrandTotal()),
		Notice: []string{
			"Harap Simpan Nota Servis Barang Elektronik Ini!",
			"Jika hilang, garansi tidak berlaku.",
		},
		ContactPhone: r.shop.Phone,
		Copyright:    fmt.Sprintf("© %d %s. All rights reserved.", r.now().Year(), r.shop.Name),
	}

	if d.WarrantyPeriod != "" {
		doc.Fields = append(doc.Fields, Field{Label: "Periode Garansi", Value: d.WarrantyPeriod})
	}

	if r.shop.Address != "" {
		doc.Address = strings.Split(r.shop.Address, ", ")
	}

	for i, c := range d.Components {
		doc.Rows = append(doc.Rows, Row{
			No:       i + 1,
			Name:     c.Name,
			Quantity: c.Quantity,
			Price:    format.Currency(c.Price),
		})
	}

	if len(doc.Rows) == 0 {
		doc.EmptyNote = NoComponents
	}

	return doc
}

func orNoData(s string) string {
	if s == "" {
		return NoData
	}

	return s
}

// QuantityText renders the quantity column.
func (r Row) QuantityText() string {
	return strconv.Itoa(r.Quantity)
}
