package partslist

// Profile describes the header of a supported parts-list layout.
// Adding a layout is just adding a Profile to the profiles slice.
type Profile struct {
	Name     string
	NameCol  string
	QtyCol   string // optional; rows default to quantity 1
	PriceCol string
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.NameCol, p.PriceCol}
}

// profiles are tried in order; the first whose required columns all appear
// in one row wins.
var profiles = []Profile{
	{
		Name:     "id",
		NameCol:  "nama komponen",
		QtyCol:   "jumlah",
		PriceCol: "harga",
	},
	{
		Name:     "id-short",
		NameCol:  "nama",
		QtyCol:   "qty",
		PriceCol: "harga",
	},
	{
		Name:     "en",
		NameCol:  "name",
		QtyCol:   "qty",
		PriceCol: "price",
	},
}
