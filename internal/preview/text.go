package preview

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// TextWidth is the column count of the plain-text layout.
const TextWidth = 48

const (
	colNo    = 4
	colQty   = 7
	colPrice = 14
	colName  = TextWidth - colNo - colQty - colPrice
)

// Text lays the document out as fixed-width plain text.
func Text(doc Document) string {
	var b strings.Builder

	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	rule := func(ch string) {
		line(strings.Repeat(ch, TextWidth))
	}

	line(strings.ToUpper(doc.ShopName))
	line("Tanggal Struk: " + doc.Date)
	rule("=")

	for _, f := range doc.Fields {
		line(strings.ToUpper(f.Label) + ":")

		for _, l := range strings.Split(f.Value, "\n") {
			line("  " + l)
		}
	}

	line("")
	line("Rincian Komponen & Jasa")
	rule("-")
	line(padRight("No", colNo) + padRight("Nama Komponen", colName) + padLeft("Jumlah", colQty) + padLeft("Harga", colPrice))
	rule("-")

	if doc.EmptyNote != "" {
		line(center(doc.EmptyNote, TextWidth))
	}

	for _, r := range doc.Rows {
		line(padRight(strconv.Itoa(r.No), colNo) +
			padRight(truncate(r.Name, colName-1), colName) +
			padLeft(r.QuantityText(), colQty) +
			padLeft(r.Price, colPrice))
	}

	rule("-")
	line(totalLine("Subtotal Komponen:", doc.Subtotal))
	line(totalLine("Biaya Jasa Servis:", doc.ServiceFee))
	line(totalLine("Total Harga:", doc.GrandTotal))
	rule("-")

	for _, n := range doc.Notice {
		line(n)
	}

	rule("=")

	if doc.ContactPhone != "" {
		line("Telp: " + doc.ContactPhone)
	}

	for _, a := range doc.Address {
		line(a)
	}

	line(center(doc.Copyright, TextWidth))

	return b.String()
}

// Lines is Text split into rows, without the trailing empty row.
func Lines(doc Document) []string {
	return strings.Split(strings.TrimSuffix(Text(doc), "\n"), "\n")
}

func totalLine(label, amount string) string {
	return padRight(label, TextWidth-colPrice) + padLeft(amount, colPrice)
}

func padRight(s string, n int) string {
	if w := utf8.RuneCountInString(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}

	return s
}

func padLeft(s string, n int) string {
	if w := utf8.RuneCountInString(s); w < n {
		return strings.Repeat(" ", n-w) + s
	}

	return s
}

func center(s string, n int) string {
	w := utf8.RuneCountInString(s)
	if w >= n {
		return s
	}

	return strings.Repeat(" ", (n-w)/2) + s
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	r := []rune(s)

	return string(r[:n-1]) + "…"
}
