package receipt

import "math"

// MaxAmount is the largest price or fee accepted from user input. It leaves
// room to sum many amounts without overflowing int64.
const MaxAmount int64 = math.MaxInt64 / 1024

// ComponentItem is one replaced or repaired part on a receipt.
type ComponentItem struct {
	ID       string
	Name     string
	Quantity int
	Price    int64 // Line total in whole rupiah
}

// ComponentParams describes a component that has not been given an ID yet.
type ComponentParams struct {
	Name     string
	Quantity int
	Price    int64
}

// Details is a single service receipt.
type Details struct {
	ItemName       string
	OwnerName      string
	OwnerPhone     string
	DamageType     string
	InvoiceDate    string // YYYY-MM-DD
	WarrantyPeriod string
	Components     []ComponentItem
	ServiceFee     int64
}

// Subtotal sums the component prices. Quantity is informational only.
// The sum saturates at math.MaxInt64.
func Subtotal(components []ComponentItem) int64 {
	var total int64
	for _, c := range components {
		total = add(total, c.Price)
	}

	return total
}

// GrandTotal is the component subtotal plus the service fee.
func GrandTotal(components []ComponentItem, serviceFee int64) int64 {
	return add(Subtotal(components), serviceFee)
}

func add(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}

	return a + b
}

func (d Details) Subtotal() int64 {
	return Subtotal(d.Components)
}

func (d Details) GrandTotal() int64 {
	return GrandTotal(d.Components, d.ServiceFee)
}

// Clone returns a copy that shares no component storage with d.
func (d Details) Clone() Details {
	out := d
	if d.Components != nil {
		out.Components = make([]ComponentItem, len(d.Components))
		copy(out.Components, d.Components)
	}

	return out
}
