package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/struk/internal/form"
)

// DetailsDoneMsg is sent once the receipt header form is completed.
type DetailsDoneMsg struct{}

// DetailsModel edits the receipt header. Inputs are bound straight to the
// draft, so leaving and re-entering the screen keeps what was typed.
type DetailsModel struct {
	CommonModel
	draft  *form.Draft
	editor *huh.Form
}

func NewDetailsModel(draft *form.Draft) DetailsModel {
	return DetailsModel{
		draft:  draft,
		editor: buildDetailsForm(draft),
	}
}

func (m DetailsModel) Title() string { return "Data Servis" }

func (m DetailsModel) ShortHelp() string {
	return "Tab/Enter: next | Shift+Tab: previous | Ctrl+C: quit"
}

func (m DetailsModel) Init() tea.Cmd {
	return m.editor.Init()
}

func (m DetailsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	editor, cmd := m.editor.Update(msg)
	if f, ok := editor.(*huh.Form); ok {
		m.editor = f
	}

	if m.editor.State != huh.StateCompleted {
		return m, cmd
	}

	return m, func() tea.Msg { return DetailsDoneMsg{} }
}

func (m DetailsModel) View() string {
	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(m.Title()),
			"",
			m.editor.View(),
			"",
			hintStyle.Render(m.ShortHelp()),
		),
	)
}

func buildDetailsForm(d *form.Draft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("item_name").
				Title("Nama Barang").
				Placeholder("Contoh: Timbangan Digital 40kg").
				Value(&d.ItemName),

			huh.NewInput().
				Key("owner_name").
				Title("Nama Pemilik").
				Placeholder("Contoh: Nadia Indah").
				Value(&d.OwnerName),

			huh.NewInput().
				Key("owner_phone").
				Title("Nomor HP Pemilik (WhatsApp)").
				Placeholder("Contoh: 081234567890 atau 6281234567890").
				Value(&d.OwnerPhone),

			huh.NewText().
				Key("damage_type").
				Title("Jenis Kerusakan").
				Placeholder("Contoh: Rusak bagian load cell").
				Lines(3).
				Value(&d.DamageType),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("invoice_date").
				Title("Tanggal Struk").
				Description("Format YYYY-MM-DD").
				Value(&d.InvoiceDate),

			huh.NewInput().
				Key("warranty_period").
				Title("Periode Garansi").
				Placeholder("Contoh: 1 Minggu, 1 Bulan").
				Value(&d.WarrantyPeriod),

			huh.NewInput().
				Key("service_fee").
				Title("Biaya Jasa Servis (Rp)").
				Placeholder("Contoh: 20000").
				Value(&d.ServiceFee),
		),
	).WithWidth(60).WithShowHelp(false)
}
