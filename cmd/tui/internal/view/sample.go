package view

import (
	"github.com/MrJamesThe3rd/struk/internal/form"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

// LoadSample fills the draft with a ready-made repair job for demos.
func LoadSample(d *form.Draft) error {
	d.ItemName = "Timbangan Digital 40kg"
	d.OwnerName = "Nadia Indah"
	d.OwnerPhone = "081234567890"
	d.DamageType = "rusak bagian load cell"
	d.WarrantyPeriod = form.DefaultWarranty
	d.ServiceFee = "75000"

	_, err := d.AddComponents([]receipt.ComponentParams{
		{Name: "Load Cell Sensor Zemic L6E3", Quantity: 1, Price: 150000},
		{Name: "Kabel Power", Quantity: 1, Price: 25000},
	})

	return err
}
