package form_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/struk/internal/form"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

func sequentialIDs() form.IDGenerator {
	n := 0

	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

var today = time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)

func TestNewDraft_Defaults(t *testing.T) {
	d := form.NewDraft(sequentialIDs(), today)

	assert.Equal(t, "2025-05-26", d.InvoiceDate)
	assert.Equal(t, form.DefaultWarranty, d.WarrantyPeriod)
	assert.Equal(t, "0", d.ServiceFee)
	assert.Empty(t, d.Components())
}

func TestDraft_AddComponent(t *testing.T) {
	d := form.NewDraft(sequentialIDs(), today)

	id, err := d.AddComponent()
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)

	got := d.Components()
	require.Len(t, got, 1)
	assert.Equal(t, receipt.ComponentItem{ID: "id-1", Quantity: 1, Price: 0}, got[0])
}

func TestDraft_AddThenRemoveRestoresList(t *testing.T) {
	d := form.NewDraft(sequentialIDs(), today)

	first, err := d.AddComponent()
	require.NoError(t, err)
	require.NoError(t, d.UpdateComponent(first, form.FieldName, "Kabel Power"))

	before := d.Components()

	id, err := d.AddComponent()
	require.NoError(t, err)
	assert.NotEqual(t, first, id)

	assert.True(t, d.RemoveComponent(id))
	assert.Equal(t, before, d.Components())
}

func TestDraft_IDsAreNeverReused(t *testing.T) {
	// The generator hands out "same" twice before producing a fresh value.
	calls := 0
	gen := func() string {
		calls++
		if calls <= 2 {
			return "same"
		}

		return fmt.Sprintf("fresh-%d", calls)
	}

	d := form.NewDraft(gen, today)

	first, err := d.AddComponent()
	require.NoError(t, err)
	assert.Equal(t, "same", first)

	d.RemoveComponent(first)

	second, err := d.AddComponent()
	require.NoError(t, err)
	assert.Equal(t, "fresh-3", second)
}

func TestDraft_DuplicateIDExhausted(t *testing.T) {
	d := form.NewDraft(func() string { return "constant" }, today)

	_, err := d.AddComponent()
	require.NoError(t, err)

	_, err = d.AddComponent()
	assert.ErrorIs(t, err, form.ErrDuplicateID)
	assert.Len(t, d.Components(), 1)
}

func TestDraft_UpdateComponent(t *testing.T) {
	type testCase struct {
		name      string
		field     form.Field
		value     string
		want      receipt.ComponentItem
		wantErrIs error
	}

	tests := []testCase{
		{
			name:  "Name",
			field: form.FieldName,
			value: "Load Cell Sensor",
			want:  receipt.ComponentItem{ID: "id-1", Name: "Load Cell Sensor", Quantity: 1},
		},
		{
			name:  "Quantity",
			field: form.FieldQuantity,
			value: "3",
			want:  receipt.ComponentItem{ID: "id-1", Quantity: 3},
		},
		{
			name:  "ZeroQuantity",
			field: form.FieldQuantity,
			value: "0",
			want:  receipt.ComponentItem{ID: "id-1", Quantity: 1},
		},
		{
			name:  "NegativeQuantity",
			field: form.FieldQuantity,
			value: "-4",
			want:  receipt.ComponentItem{ID: "id-1", Quantity: 1},
		},
		{
			name:  "Price",
			field: form.FieldPrice,
			value: "150000",
			want:  receipt.ComponentItem{ID: "id-1", Quantity: 1, Price: 150000},
		},
		{
			name:  "NegativePrice",
			field: form.FieldPrice,
			value: "-100",
			want:  receipt.ComponentItem{ID: "id-1", Quantity: 1, Price: 0},
		},
		{
			name:  "GarbagePrice",
			field: form.FieldPrice,
			value: "seratus",
			want:  receipt.ComponentItem{ID: "id-1", Quantity: 1, Price: 0},
		},
		{
			name:      "UnknownField",
			field:     form.Field("colour"),
			value:     "red",
			want:      receipt.ComponentItem{ID: "id-1", Quantity: 1},
			wantErrIs: form.ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := form.NewDraft(sequentialIDs(), today)

			id, err := d.AddComponent()
			require.NoError(t, err)

			err = d.UpdateComponent(id, tt.field, tt.value)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			} else {
				assert.NoError(t, err)
			}

			got, ok := d.Component(id)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDraft_UpdateMissingComponent(t *testing.T) {
	d := form.NewDraft(sequentialIDs(), today)

	err := d.UpdateComponent("nope", form.FieldName, "x")
	assert.ErrorIs(t, err, form.ErrComponentNotFound)
	assert.False(t, d.RemoveComponent("nope"))
}

func TestDraft_Submit(t *testing.T) {
	d := form.NewDraft(sequentialIDs(), today)
	d.ItemName = "Timbangan Digital 40kg"
	d.OwnerName = "Nadia Indah"
	d.OwnerPhone = "081234567890"
	d.DamageType = "rusak bagian load cell"
	d.ServiceFee = "75000"

	_, err := d.AddComponents([]receipt.ComponentParams{
		{Name: "Load Cell Sensor Zemic L6E3", Quantity: 1, Price: 150000},
		{Name: "Kabel Power", Quantity: 0, Price: 25000},
	})
	require.NoError(t, err)

	got := d.Submit()

	assert.Equal(t, "Nadia Indah", got.OwnerName)
	assert.Equal(t, int64(75000), got.ServiceFee)
	require.Len(t, got.Components, 2)
	assert.Equal(t, 1, got.Components[1].Quantity)
	assert.Equal(t, int64(250000), got.GrandTotal())

	// The snapshot is detached from further edits.
	require.NoError(t, d.UpdateComponent(got.Components[0].ID, form.FieldPrice, "1"))
	assert.Equal(t, int64(150000), got.Components[0].Price)
}

func TestDraft_SubmitBadServiceFee(t *testing.T) {
	d := form.NewDraft(sequentialIDs(), today)
	d.ServiceFee = "dua puluh ribu"

	assert.Equal(t, int64(0), d.Submit().ServiceFee)
}

func TestDraft_Load(t *testing.T) {
	d := form.NewDraft(sequentialIDs(), today)
	require.NoError(t, d.Load(receipt.Details{
		OwnerName:  "Nadia Indah",
		Components: []receipt.ComponentItem{{ID: "id-1", Name: "Kabel", Quantity: 1, Price: 1000}},
		ServiceFee: 5000,
	}))

	assert.Equal(t, "5000", d.ServiceFee)
	assert.Equal(t, "2025-05-26", d.InvoiceDate)
	assert.Equal(t, form.DefaultWarranty, d.WarrantyPeriod)

	// id-1 came from the loaded receipt, so the generator output is skipped.
	id, err := d.AddComponent()
	require.NoError(t, err)
	assert.Equal(t, "id-2", id)
}

func TestDraft_LoadRepairsComponents(t *testing.T) {
	d := form.NewDraft(sequentialIDs(), today)
	require.NoError(t, d.Load(receipt.Details{
		Components: []receipt.ComponentItem{
			{ID: "id-2", Name: "Kabel", Quantity: 1, Price: 1000},
			{ID: "id-2", Name: "Sekring", Quantity: 0, Price: -50},
			{ID: "", Name: "Baut", Quantity: 2, Price: receipt.MaxAmount + 1},
		},
		ServiceFee: -1,
	}))

	got := d.Components()
	require.Len(t, got, 3)

	assert.Equal(t, receipt.ComponentItem{ID: "id-2", Name: "Kabel", Quantity: 1, Price: 1000}, got[0])
	assert.Equal(t, receipt.ComponentItem{ID: "id-1", Name: "Sekring", Quantity: 1, Price: 0}, got[1])
	assert.Equal(t, receipt.ComponentItem{ID: "id-3", Name: "Baut", Quantity: 2, Price: 0}, got[2])
	assert.Equal(t, "0", d.ServiceFee)

	assert.True(t, d.RemoveComponent("id-2"))
	_, stillThere := d.Component("id-2")
	assert.False(t, stillThere)
	assert.Len(t, d.Components(), 2)
}

func TestDraft_MissingFields(t *testing.T) {
	d := form.NewDraft(sequentialIDs(), today)
	d.ItemName = "Timbangan"

	_, err := d.AddComponent()
	require.NoError(t, err)

	assert.Equal(t, []string{"Nama Pemilik", "Jenis Kerusakan", "Nama Komponen #1"}, d.MissingFields())
}
