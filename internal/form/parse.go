package form

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

var maxAmount = decimal.NewFromInt(receipt.MaxAmount)

const (
	DefaultQuantity       = 1
	DefaultAmount   int64 = 0
)

// ParseQuantity parses a component quantity. It returns DefaultQuantity and
// true when the text is not an integer or is below 1.
func ParseQuantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return DefaultQuantity, true
	}

	return n, false
}

// ParseAmount parses a rupiah amount, rounding fractions to whole rupiah. It
// returns DefaultAmount and true when the text is not a number, is negative
// or exceeds receipt.MaxAmount.
func ParseAmount(s string) (int64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return DefaultAmount, true
	}

	d = d.Round(0)
	if d.GreaterThan(maxAmount) {
		return DefaultAmount, true
	}

	return d.IntPart(), false
}

// validAmount reports whether n can be stored as a price or fee.
func validAmount(n int64) bool {
	return n >= 0 && n <= receipt.MaxAmount
}
