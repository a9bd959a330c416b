package receipt

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/MrJamesThe3rd/struk/internal/form"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

// number accepts a JSON number or a string, the way form inputs post amounts.
type number string

func (n *number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*n = number(s)

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}

	*n = number(num.String())

	return nil
}

type componentRequest struct {
	Name     string `json:"name"`
	Quantity number `json:"quantity"`
	Price    number `json:"price"`
}

type receiptRequest struct {
	ItemName       string             `json:"item_name"`
	OwnerName      string             `json:"owner_name"`
	OwnerPhone     string             `json:"owner_phone"`
	DamageType     string             `json:"damage_type"`
	InvoiceDate    string             `json:"invoice_date"`
	WarrantyPeriod string             `json:"warranty_period"`
	ServiceFee     number             `json:"service_fee"`
	Components     []componentRequest `json:"components"`
}

// toDetails runs the request through a fresh draft so the API coerces input
// exactly like the form does.
func (req receiptRequest) toDetails(newID form.IDGenerator, today time.Time) (receipt.Details, []string, error) {
	draft := form.NewDraft(newID, today)

	draft.ItemName = req.ItemName
	draft.OwnerName = req.OwnerName
	draft.OwnerPhone = req.OwnerPhone
	draft.DamageType = req.DamageType

	if req.InvoiceDate != "" {
		draft.InvoiceDate = req.InvoiceDate
	}

	if req.WarrantyPeriod != "" {
		draft.WarrantyPeriod = req.WarrantyPeriod
	}

	if req.ServiceFee != "" {
		draft.ServiceFee = string(req.ServiceFee)
	}

	for _, c := range req.Components {
		id, err := draft.AddComponent()
		if err != nil {
			return receipt.Details{}, nil, err
		}

		updates := []struct {
			field form.Field
			value string
		}{
			{form.FieldName, c.Name},
			{form.FieldQuantity, string(c.Quantity)},
			{form.FieldPrice, string(c.Price)},
		}

		for _, u := range updates {
			if err := draft.UpdateComponent(id, u.field, u.value); err != nil {
				return receipt.Details{}, nil, err
			}
		}
	}

	return draft.Submit(), draft.MissingFields(), nil
}
