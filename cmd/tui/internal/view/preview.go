package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/struk/internal/export"
	"github.com/MrJamesThe3rd/struk/internal/preview"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

const exportTimeout = 30 * time.Second

type exportAction int

const (
	actionPNG exportAction = iota
	actionPDF
	actionMessage
)

func (a exportAction) progress() string {
	if a == actionMessage {
		return "Mengirim..."
	}

	return "Memproses..."
}

// PreviewModel shows the submitted receipt and runs the export actions.
type PreviewModel struct {
	CommonModel
	exportService *export.Service
	details       receipt.Details
	locate        func(name string) string

	viewport viewport.Model
	spinner  spinner.Model
	running  int

	status string
	err    error
}

// NewPreviewModel renders details once; a new submission builds a new model.
// locate turns a saved file name into the path shown to the user.
func NewPreviewModel(
	renderer *preview.Renderer,
	svc *export.Service,
	details receipt.Details,
	locate func(name string) string,
) PreviewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))

	vp := viewport.New(preview.TextWidth+4, 24)
	vp.SetContent(preview.Text(renderer.Build(details)))

	return PreviewModel{
		exportService: svc,
		details:       details,
		locate:        locate,
		viewport:      vp,
		spinner:       s,
	}
}

func (m PreviewModel) Title() string { return "Pratinjau Struk" }

func (m PreviewModel) ShortHelp() string {
	return "p: Unduh PNG | f: Unduh PDF | w: Kirim ke WhatsApp | ↑/↓: scroll | Esc: edit"
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "p":
			return m.start(actionPNG)
		case "f":
			return m.start(actionPDF)
		case "w":
			return m.start(actionMessage)
		}

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.viewport.Height = max(msg.Height-10, 5)

		return m, nil

	case exportDoneMsg:
		m.running--
		m.err = msg.err

		if msg.err != nil {
			m.status = export.UserMessage(msg.err)
			return m, nil
		}

		switch msg.action {
		case actionMessage:
			m.status = "WhatsApp dibuka untuk pesan ke pemilik."
		default:
			m.status = fmt.Sprintf("Struk disimpan: %s", m.locate(msg.result))
		}

		return m, nil

	case spinner.TickMsg:
		if m.running == 0 {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// start does not check the busy flags itself: the export service refuses
// overlapping exports and the refusal is shown like any other error.
func (m PreviewModel) start(action exportAction) (tea.Model, tea.Cmd) {
	m.running++
	m.err = nil
	m.status = action.progress()

	return m, tea.Batch(m.spinner.Tick, m.exportCmd(action))
}

func (m PreviewModel) View() string {
	status := m.status

	switch {
	case m.running > 0:
		status = fmt.Sprintf("%s %s", m.spinner.View(), m.status)
	case m.err != nil:
		status = errorStyle.Render(m.status)
	case m.status != "":
		status = successStyle.Render(m.status)
	}

	receiptBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("37")).
		Render(m.viewport.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(m.Title()),
			"",
			receiptBox,
			"",
			status,
			"",
			hintStyle.Render(m.ShortHelp()),
		),
	)
}

// Messages

type exportDoneMsg struct {
	action exportAction
	result string
	err    error
}

func (m PreviewModel) exportCmd(action exportAction) tea.Cmd {
	svc := m.exportService
	details := m.details

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		var (
			result string
			err    error
		)

		switch action {
		case actionPNG:
			result, err = svc.ExportImage(ctx, details)
		case actionPDF:
			result, err = svc.ExportDocument(ctx, details)
		case actionMessage:
			result, err = svc.SendMessage(ctx, details)
		}

		return exportDoneMsg{action: action, result: result, err: err}
	}
}
