package preview

import (
	"bytes"
	"html/template"
)

const receiptHTMLTemplate = `<!doctype html>
<html lang="id">
<head>
  <meta charset="utf-8" />
  <title>Struk {{.ShopName}}</title>
  <style>
    body { margin: 0; padding: 32px; background: #f1f5f9; color: #1e293b; font-family: "Helvetica Neue", Arial, sans-serif; }
    .receipt { max-width: 576px; margin: 0 auto; padding: 32px; background: #ffffff; border-radius: 8px; }
    .header { display: flex; justify-content: space-between; align-items: flex-start; border-bottom: 2px solid #06b6d4; padding-bottom: 16px; margin-bottom: 24px; }
    .header h1 { margin: 0; color: #0891b2; font-size: 28px; }
    .meta { text-align: right; font-size: 14px; }
    .label { text-transform: uppercase; font-size: 11px; letter-spacing: 0.04em; color: #64748b; font-weight: 600; }
    .field { margin-bottom: 16px; }
    .field p { margin: 2px 0 0; white-space: pre-line; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; }
    th, td { padding: 10px; border-bottom: 1px solid #e2e8f0; text-align: left; }
    th { background: #f1f5f9; }
    .num { text-align: right; }
    .qty { text-align: center; }
    .empty { text-align: center; font-style: italic; color: #64748b; }
    .totals div { display: flex; justify-content: space-between; font-size: 14px; margin-top: 4px; }
    .totals .grand { font-size: 16px; font-weight: 600; color: #0e7490; border-top: 1px solid #cbd5e1; padding-top: 8px; }
    .notice { margin-top: 16px; padding: 12px; background: #ecfeff; border: 1px solid #a5f3fc; border-radius: 6px; font-size: 14px; color: #155e75; }
    .footer { margin-top: 32px; padding-top: 16px; border-top: 2px solid #06b6d4; font-size: 12px; color: #64748b; }
    .footer .copy { text-align: center; margin-top: 12px; }
  </style>
</head>
<body>
  <div class="receipt" id="invoice-preview">
    <div class="header">
      <h1>{{.ShopName}}</h1>
      <div class="meta">
        <div class="label">Tanggal Struk:</div>
        <div><strong>{{.Date}}</strong></div>
      </div>
    </div>

    {{range .Fields}}
    <div class="field">
      <div class="label">{{.Label}}:</div>
      <p>{{.Value}}</p>
    </div>
    {{end}}

    <h3>Rincian Komponen &amp; Jasa</h3>
    <table>
      <thead>
        <tr><th>No</th><th>Nama Komponen</th><th class="qty">Jumlah</th><th class="num">Harga</th></tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr><td>{{.No}}</td><td>{{.Name}}</td><td class="qty">{{.QuantityText}}</td><td class="num">{{.Price}}</td></tr>
        {{else}}
        <tr><td colspan="4" class="empty">{{.EmptyNote}}</td></tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <div><span>Subtotal Komponen:</span><span>{{.Subtotal}}</span></div>
      <div><span>Biaya Jasa Servis:</span><span>{{.ServiceFee}}</span></div>
      <div class="grand"><span>Total Harga:</span><span>{{.GrandTotal}}</span></div>
    </div>

    <div class="notice">
      {{range .Notice}}<p>{{.}}</p>{{end}}
    </div>

    <div class="footer">
      {{if .ContactPhone}}<div>{{.ContactPhone}}</div>{{end}}
      <div>{{range .Address}}<span style="display:block">{{.}}</span>{{end}}</div>
      <div class="copy">{{.Copyright}}</div>
    </div>
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	tpl *template.Template
}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tpl: template.Must(template.New("receipt").Parse(receiptHTMLTemplate)),
	}
}

// RenderHTML returns a standalone HTML page for the document.
func (r *HTMLRenderer) RenderHTML(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, doc); err != nil {
		return "", err
	}

	return buf.String(), nil
}
