package partslist

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

var (
	errNegativeAmount = errors.New("negative amount")
	errAmountTooLarge = errors.New("amount too large")
)

var maxAmount = decimal.NewFromInt(receipt.MaxAmount)

// parseRupiah parses an Indonesian-formatted amount into whole rupiah.
// Examples: "150000", "150.000", "Rp 150.000", "150.000,00", "Rp1.250.000,50".
func parseRupiah(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "Rp"), "rp")
	clean = strings.NewReplacer(" ", "", "\u00a0", "", ".", "").Replace(clean)
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	d = d.Round(0)

	switch {
	case d.IsNegative():
		return 0, errNegativeAmount
	case d.GreaterThan(maxAmount):
		return 0, errAmountTooLarge
	}

	return d.IntPart(), nil
}
