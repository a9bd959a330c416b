package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

// DefaultWarranty is the warranty pre-filled on a new draft.
const DefaultWarranty = "1 Minggu"

const maxIDAttempts = 3

var (
	ErrComponentNotFound = errors.New("component not found")
	ErrUnknownField      = errors.New("unknown component field")
	ErrDuplicateID       = errors.New("could not generate a unique component id")
)

// Field names an editable attribute of a component row.
type Field string

const (
	FieldName     Field = "name"
	FieldQuantity Field = "quantity"
	FieldPrice    Field = "price"
)

// IDGenerator returns a new opaque component id on each call.
type IDGenerator func() string

// Draft is the editable state behind the receipt form. Text fields hold what
// the user typed; numbers are coerced on update or on Submit.
type Draft struct {
	ItemName       string
	OwnerName      string
	OwnerPhone     string
	DamageType     string
	InvoiceDate    string
	WarrantyPeriod string
	ServiceFee     string

	components []receipt.ComponentItem
	issued     map[string]struct{}
	newID      IDGenerator
}

// NewDraft creates an empty draft dated today.
func NewDraft(gen IDGenerator, today time.Time) *Draft {
	return &Draft{
		InvoiceDate:    today.Format(time.DateOnly),
		WarrantyPeriod: DefaultWarranty,
		ServiceFee:     "0",
		issued:         make(map[string]struct{}),
		newID:          gen,
	}
}

// Load replaces the whole draft with d. Empty date and warranty keep the
// current values. Components with an empty or repeated id get a fresh one,
// and out-of-range quantities and prices fall back to the defaults.
func (f *Draft) Load(d receipt.Details) error {
	f.ItemName = d.ItemName
	f.OwnerName = d.OwnerName
	f.OwnerPhone = d.OwnerPhone
	f.DamageType = d.DamageType

	fee := d.ServiceFee
	if !validAmount(fee) {
		fee = DefaultAmount
	}

	f.ServiceFee = strconv.FormatInt(fee, 10)

	if d.InvoiceDate != "" {
		f.InvoiceDate = d.InvoiceDate
	}

	if d.WarrantyPeriod != "" {
		f.WarrantyPeriod = d.WarrantyPeriod
	}

	for _, c := range d.Components {
		if c.ID != "" {
			f.issued[c.ID] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(d.Components))
	f.components = make([]receipt.ComponentItem, 0, len(d.Components))

	for _, c := range d.Components {
		if _, dup := seen[c.ID]; dup || c.ID == "" {
			id, err := f.nextID()
			if err != nil {
				return err
			}

			c.ID = id
		}

		seen[c.ID] = struct{}{}
		c.Quantity, c.Price = clamp(c.Quantity, c.Price)
		f.components = append(f.components, c)
	}

	return nil
}

// AddComponent appends an empty row and returns its id.
func (f *Draft) AddComponent() (string, error) {
	id, err := f.nextID()
	if err != nil {
		return "", err
	}

	f.components = append(f.components, receipt.ComponentItem{
		ID:       id,
		Quantity: DefaultQuantity,
		Price:    DefaultAmount,
	})

	return id, nil
}

// AddComponents appends pre-filled rows, e.g. from an imported parts list.
func (f *Draft) AddComponents(params []receipt.ComponentParams) ([]string, error) {
	ids := make([]string, 0, len(params))

	for _, p := range params {
		id, err := f.nextID()
		if err != nil {
			return ids, err
		}

		qty, price := clamp(p.Quantity, p.Price)

		f.components = append(f.components, receipt.ComponentItem{
			ID:       id,
			Name:     p.Name,
			Quantity: qty,
			Price:    price,
		})
		ids = append(ids, id)
	}

	return ids, nil
}

// UpdateComponent sets one field of the row with the given id.
func (f *Draft) UpdateComponent(id string, field Field, value string) error {
	idx := f.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrComponentNotFound, id)
	}

	c := &f.components[idx]

	switch field {
	case FieldName:
		c.Name = value
	case FieldQuantity:
		c.Quantity, _ = ParseQuantity(value)
	case FieldPrice:
		c.Price, _ = ParseAmount(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}

// RemoveComponent deletes the row with the given id. It reports whether a
// row was removed.
func (f *Draft) RemoveComponent(id string) bool {
	idx := f.indexOf(id)
	if idx < 0 {
		return false
	}

	f.components = append(f.components[:idx], f.components[idx+1:]...)

	return true
}

// Component returns the row with the given id.
func (f *Draft) Component(id string) (receipt.ComponentItem, bool) {
	idx := f.indexOf(id)
	if idx < 0 {
		return receipt.ComponentItem{}, false
	}

	return f.components[idx], true
}

// Components returns a copy of the rows in display order.
func (f *Draft) Components() []receipt.ComponentItem {
	out := make([]receipt.ComponentItem, len(f.components))
	copy(out, f.components)

	return out
}

// Submit freezes the draft into receipt details. Nothing is rejected; the
// service fee falls back to 0 when it does not parse.
func (f *Draft) Submit() receipt.Details {
	fee, _ := ParseAmount(f.ServiceFee)

	return receipt.Details{
		ItemName:       f.ItemName,
		OwnerName:      f.OwnerName,
		OwnerPhone:     f.OwnerPhone,
		DamageType:     f.DamageType,
		InvoiceDate:    f.InvoiceDate,
		WarrantyPeriod: f.WarrantyPeriod,
		Components:     f.Components(),
		ServiceFee:     fee,
	}
}

// MissingFields lists required inputs that are still blank. The result is a
// hint for the UI; Submit does not depend on it.
func (f *Draft) MissingFields() []string {
	var missing []string

	required := []struct {
		label string
		value string
	}{
		{"Nama Barang", f.ItemName},
		{"Nama Pemilik", f.OwnerName},
		{"Jenis Kerusakan", f.DamageType},
		{"Tanggal Struk", f.InvoiceDate},
		{"Periode Garansi", f.WarrantyPeriod},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.label)
		}
	}

	for i, c := range f.components {
		if strings.TrimSpace(c.Name) == "" {
			missing = append(missing, fmt.Sprintf("Nama Komponen #%d", i+1))
		}
	}

	return missing
}

func clamp(qty int, price int64) (int, int64) {
	if qty < 1 {
		qty = DefaultQuantity
	}

	if !validAmount(price) {
		price = DefaultAmount
	}

	return qty, price
}

func (f *Draft) nextID() (string, error) {
	for range maxIDAttempts {
		id := f.newID()
		if _, used := f.issued[id]; used || id == "" {
			continue
		}

		f.issued[id] = struct{}{}

		return id, nil
	}

	return "", ErrDuplicateID
}

func (f *Draft) indexOf(id string) int {
	for i, c := range f.components {
		if c.ID == id {
			return i
		}
	}

	return -1
}
