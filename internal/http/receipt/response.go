package receipt

import (
	"github.com/MrJamesThe3rd/struk/internal/preview"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

type fieldResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type rowResponse struct {
	No       int    `json:"no"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type previewResponse struct {
	ShopName     string          `json:"shop_name"`
	Date         string          `json:"date"`
	Fields       []fieldResponse `json:"fields"`
	Rows         []rowResponse   `json:"rows"`
	EmptyNote    string          `json:"empty_note,omitempty"`
	Subtotal     string          `json:"subtotal"`
	ServiceFee   string          `json:"service_fee"`
	GrandTotal   string          `json:"grand_total"`
	Notice       []string        `json:"notice"`
	ContactPhone string          `json:"contact_phone"`
	Address      []string        `json:"address,omitempty"`
	Copyright    string          `json:"copyright"`
	Missing      []string        `json:"missing,omitempty"`
}

type messageResponse struct {
	URL   string `json:"url"`
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

type componentResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type importResponse struct {
	Imported   int                 `json:"imported"`
	Components []componentResponse `json:"components"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func toPreviewResponse(doc preview.Document, missing []string) previewResponse {
	resp := previewResponse{
		ShopName:     doc.ShopName,
		Date:         doc.Date,
		Fields:       make([]fieldResponse, 0, len(doc.Fields)),
		Rows:         make([]rowResponse, 0, len(doc.Rows)),
		EmptyNote:    doc.EmptyNote,
		Subtotal:     doc.Subtotal,
		ServiceFee:   doc.ServiceFee,
		GrandTotal:   doc.GrandTotal,
		Notice:       doc.Notice,
		ContactPhone: doc.ContactPhone,
		Address:      doc.Address,
		Copyright:    doc.Copyright,
		Missing:      missing,
	}

	for _, f := range doc.Fields {
		resp.Fields = append(resp.Fields, fieldResponse{Label: f.Label, Value: f.Value})
	}

	for _, r := range doc.Rows {
		resp.Rows = append(resp.Rows, rowResponse{No: r.No, Name: r.Name, Quantity: r.Quantity, Price: r.Price})
	}

	return resp
}

func toImportResponse(params []receipt.ComponentParams) importResponse {
	components := make([]componentResponse, 0, len(params))
	for _, p := range params {
		components = append(components, componentResponse{Name: p.Name, Quantity: p.Quantity, Price: p.Price})
	}

	return importResponse{
		Imported:   len(components),
		Components: components,
	}
}
