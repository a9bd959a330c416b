package view

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/struk/internal/form"
	"github.com/MrJamesThe3rd/struk/internal/format"
	"github.com/MrJamesThe3rd/struk/internal/importer"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

type componentsState int

const (
	componentsStateBrowse componentsState = iota
	componentsStateEdit
	componentsStatePick
	componentsStateImporting
)

// SubmitMsg carries the frozen receipt to the preview screen.
type SubmitMsg struct {
	Details receipt.Details
}

type ComponentsModel struct {
	CommonModel
	draft         *form.Draft
	importService *importer.Service

	state      componentsState
	table      table.Model
	editor     *huh.Form
	editID     string
	filePicker filepicker.Model

	status string
	err    error
}

func NewComponentsModel(draft *form.Draft, impSvc *importer.Service) ComponentsModel {
	columns := []table.Column{
		{Title: "No", Width: 4},
		{Title: "Nama Komponen", Width: 36},
		{Title: "Jumlah", Width: 8},
		{Title: "Harga", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("30")).
		Bold(false)
	t.SetStyles(s)

	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	m := ComponentsModel{
		draft:         draft,
		importService: impSvc,
		table:         t,
		filePicker:    fp,
	}
	m.refreshTable()

	return m
}

func (m ComponentsModel) Title() string { return "Komponen Diganti" }

func (m ComponentsModel) ShortHelp() string {
	switch m.state {
	case componentsStateEdit:
		return "Tab: next | Enter: save | Esc: cancel"
	case componentsStatePick:
		return "Enter: select file | Esc: cancel"
	case componentsStateImporting:
		return "Importing..."
	}

	return "a: add | e: edit | d: delete | i: import CSV | Enter: create receipt | Esc: back"
}

func (m ComponentsModel) Init() tea.Cmd {
	return nil
}

func (m ComponentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case componentsImportedMsg:
		m.state = componentsStateBrowse
		m.table.Focus()

		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Gagal mengimpor %s: %v", msg.path, msg.err)

			return m, nil
		}

		ids, err := m.draft.AddComponents(msg.params)
		if err != nil {
			m.err = err
			m.status = fmt.Sprintf("Error: %v", err)
		} else {
			m.err = nil
			m.status = fmt.Sprintf("%d komponen ditambahkan dari %s.", len(ids), msg.path)
		}

		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-14, 5))
	}

	switch m.state {
	case componentsStateBrowse:
		return m.updateBrowse(msg)
	case componentsStateEdit:
		return m.updateEdit(msg)
	case componentsStatePick:
		return m.updatePick(msg)
	}

	return m, nil
}

func (m ComponentsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			id, err := m.draft.AddComponent()
			if err != nil {
				m.err = err
				m.status = fmt.Sprintf("Error: %v", err)

				return m, nil
			}

			m.refreshTable()
			m.table.GotoBottom()

			return m.enterEditMode(id)
		case "e":
			id, ok := m.selectedID()
			if !ok {
				return m, nil
			}

			return m.enterEditMode(id)
		case "d":
			id, ok := m.selectedID()
			if !ok {
				return m, nil
			}

			m.draft.RemoveComponent(id)
			m.refreshTable()
			m.status = ""

			return m, nil
		case "i":
			m.state = componentsStatePick
			m.table.Blur()

			return m, m.filePicker.Init()
		case "enter":
			details := m.draft.Submit()
			return m, func() tea.Msg { return SubmitMsg{Details: details} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ComponentsModel) enterEditMode(id string) (tea.Model, tea.Cmd) {
	c, ok := m.draft.Component(id)
	if !ok {
		return m, nil
	}

	name := c.Name
	quantity := strconv.Itoa(c.Quantity)
	price := strconv.FormatInt(c.Price, 10)

	m.editor = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(string(form.FieldName)).
				Title("Nama Komponen").
				Value(&name),

			huh.NewInput().
				Key(string(form.FieldQuantity)).
				Title("Jumlah").
				Value(&quantity),

			huh.NewInput().
				Key(string(form.FieldPrice)).
				Title("Harga (Rp)").
				Value(&price),
		),
	).WithWidth(45).WithShowHelp(false)

	m.editID = id
	m.state = componentsStateEdit
	m.table.Blur()

	return m, m.editor.Init()
}

func (m ComponentsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.leaveEdit()
		return m, nil
	}

	editor, cmd := m.editor.Update(msg)
	if f, ok := editor.(*huh.Form); ok {
		m.editor = f
	}

	switch m.editor.State {
	case huh.StateCompleted:
		for _, field := range []form.Field{form.FieldName, form.FieldQuantity, form.FieldPrice} {
			if err := m.draft.UpdateComponent(m.editID, field, m.editor.GetString(string(field))); err != nil {
				m.err = err
				m.status = fmt.Sprintf("Error: %v", err)
			}
		}

		m.leaveEdit()
		m.refreshTable()

		return m, nil
	case huh.StateAborted:
		m.leaveEdit()
		return m, nil
	}

	return m, cmd
}

func (m *ComponentsModel) leaveEdit() {
	m.state = componentsStateBrowse
	m.editor = nil
	m.editID = ""
	m.table.Focus()
}

func (m ComponentsModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = componentsStateBrowse
		m.table.Focus()

		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = componentsStateImporting
		m.status = fmt.Sprintf("Mengimpor %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ComponentsModel) selectedID() (string, bool) {
	components := m.draft.Components()

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(components) {
		return "", false
	}

	return components[idx].ID, true
}

func (m *ComponentsModel) refreshTable() {
	components := m.draft.Components()

	rows := make([]table.Row, 0, len(components))
	for i, c := range components {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			c.Name,
			strconv.Itoa(c.Quantity),
			format.Currency(c.Price),
		})
	}

	m.table.SetRows(rows)
}

func (m ComponentsModel) View() string {
	var body string

	switch m.state {
	case componentsStateEdit:
		body = m.editor.View()
	case componentsStatePick:
		body = fmt.Sprintf("Pilih file daftar komponen (CSV):\n\n%s", m.filePicker.View())
	case componentsStateImporting:
		body = m.status
	default:
		body = m.viewBrowse()
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(m.Title()),
			"",
			body,
			"",
			hintStyle.Render(m.ShortHelp()),
		),
	)
}

func (m ComponentsModel) viewBrowse() string {
	components := m.draft.Components()

	var b strings.Builder

	if len(components) == 0 {
		b.WriteString(hintStyle.Render("Belum ada komponen. Tekan a untuk menambah."))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Subtotal Komponen: %s", format.Currency(receipt.Subtotal(components)))

	if missing := m.draft.MissingFields(); len(missing) > 0 {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Belum diisi: " + strings.Join(missing, ", ")))
	}

	if m.status != "" {
		style := successStyle
		if m.err != nil {
			style = errorStyle
		}

		b.WriteString("\n\n")
		b.WriteString(style.Render(m.status))
	}

	return b.String()
}

// Messages

type componentsImportedMsg struct {
	path   string
	params []receipt.ComponentParams
	err    error
}

func (m ComponentsModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return componentsImportedMsg{path: path, err: err}
		}
		defer f.Close()

		params, err := m.importService.Import(importer.FormatPartsList, f)
		if err != nil {
			return componentsImportedMsg{path: path, err: err}
		}

		return componentsImportedMsg{path: path, params: params}
	}
}
