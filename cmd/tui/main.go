package main

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/struk/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/struk/internal/capture"
	"github.com/MrJamesThe3rd/struk/internal/config"
	"github.com/MrJamesThe3rd/struk/internal/document"
	"github.com/MrJamesThe3rd/struk/internal/download"
	"github.com/MrJamesThe3rd/struk/internal/export"
	"github.com/MrJamesThe3rd/struk/internal/form"
	"github.com/MrJamesThe3rd/struk/internal/importer"
	"github.com/MrJamesThe3rd/struk/internal/linkopen"
	"github.com/MrJamesThe3rd/struk/internal/preview"
)

type model struct {
	draft         *form.Draft
	renderer      *preview.Renderer
	importService *importer.Service
	exportService *export.Service
	files         *download.DirSaver

	currentView View
	size        tea.WindowSizeMsg

	detailsView    view.DetailsModel
	componentsView view.ComponentsModel
	previewView    view.PreviewModel
}

type View int

const (
	ViewDetails    View = 0
	ViewComponents View = 1
	ViewPreview    View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	background, err := cfg.Background()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	draft := form.NewDraft(uuid.NewString, time.Now())
	if cfg.App.Sample {
		if err := view.LoadSample(draft); err != nil {
			slog.Error("failed to load sample data", "error", err)
			os.Exit(1)
		}
	}

	opts := export.DefaultOptions()
	opts.ShopName = cfg.Shop.Name
	opts.Scale = cfg.Export.Scale
	opts.Background = background
	opts.CountryCode = cfg.Messaging.CountryCode
	opts.MessagingURL = cfg.Messaging.URL
	opts.HandoffDelay = cfg.Export.HandoffDelay

	renderer := preview.NewRenderer(preview.Shop{
		Name:    cfg.Shop.Name,
		Phone:   cfg.Shop.Phone,
		Address: cfg.Shop.Address,
	})

	files := download.NewDirSaver(cfg.Export.Dir)
	impSvc := importer.NewService()
	expSvc := export.NewService(
		renderer,
		capture.NewRasterizer(),
		document.NewPDFWriter(files),
		files,
		linkopen.NewBrowser(),
		opts,
	)

	return model{
		draft:          draft,
		renderer:       renderer,
		importService:  impSvc,
		exportService:  expSvc,
		files:          files,
		currentView:    ViewDetails,
		detailsView:    view.NewDetailsModel(draft),
		componentsView: view.NewComponentsModel(draft, impSvc),
	}
}

func (m model) Init() tea.Cmd {
	return m.detailsView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.size = msg
	case view.DetailsDoneMsg:
		m.currentView = ViewComponents
		m.componentsView = view.NewComponentsModel(m.draft, m.importService)

		return m, m.resize(m.componentsView.Init())
	case view.SubmitMsg:
		m.currentView = ViewPreview
		m.previewView = view.NewPreviewModel(m.renderer, m.exportService, msg.Details, m.files.Path)

		return m, m.resize(m.previewView.Init())
	case view.BackMsg:
		switch m.currentView {
		case ViewPreview:
			m.currentView = ViewComponents
			return m, nil
		case ViewComponents:
			m.currentView = ViewDetails
			m.detailsView = view.NewDetailsModel(m.draft)

			return m, m.resize(m.detailsView.Init())
		}

		return m, nil
	}

	switch m.currentView {
	case ViewDetails:
		var newModel tea.Model
		newModel, cmd = m.detailsView.Update(msg)
		m.detailsView = newModel.(view.DetailsModel)
	case ViewComponents:
		var newModel tea.Model
		newModel, cmd = m.componentsView.Update(msg)
		m.componentsView = newModel.(view.ComponentsModel)
	case ViewPreview:
		var newModel tea.Model
		newModel, cmd = m.previewView.Update(msg)
		m.previewView = newModel.(view.PreviewModel)
	}

	return m, cmd
}

// resize replays the last window size to a freshly built view.
func (m model) resize(cmd tea.Cmd) tea.Cmd {
	if m.size.Width == 0 {
		return cmd
	}

	size := m.size

	return tea.Batch(cmd, func() tea.Msg { return size })
}

func (m model) View() string {
	switch m.currentView {
	case ViewDetails:
		return m.detailsView.View()
	case ViewComponents:
		return m.componentsView.View()
	case ViewPreview:
		return m.previewView.View()
	}

	return "Unknown View"
}

func main() {
	m := initialModel()

	// slog writes through the standard logger; keep it off the terminal.
	logFile, err := tea.LogToFile("struk.log", "struk")
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
