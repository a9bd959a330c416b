package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "Rp"

// Currency formats a whole-rupiah amount the way id-ID renders IDR without
// decimals, e.g. "Rp 250.000" with a no-break space after the symbol.
func Currency(amount int64) string {
	sign := ""
	magnitude := uint64(amount)

	if amount < 0 {
		sign = "-"
		magnitude = uint64(-(amount + 1)) + 1
	}

	p := message.NewPrinter(language.Indonesian)

	return sign + currencySymbol + "\u00a0" + p.Sprintf("%v", magnitude)
}
