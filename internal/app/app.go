package app

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/notify"
	"github.com/winterarc/winterarc/internal/router"
	"github.com/winterarc/winterarc/internal/screen"
	"github.com/winterarc/winterarc/internal/screens/generator"
	"github.com/winterarc/winterarc/internal/screens/hero"
	"github.com/winterarc/winterarc/internal/screens/history"
	"github.com/winterarc/winterarc/internal/store"
	"github.com/winterarc/winterarc/internal/ui/layout"
)

// Options holds the dependencies for the TUI. Catalog is required; the
// history screen is disabled when Repo is nil.
type Options struct {
	Catalog *catalog.Catalog
	Repo    store.PlanRepo
	Logger  *slog.Logger
	// Rand drives plan generation. Nil means a time-seeded source.
	Rand *rand.Rand
	// Status is shown on the right of the header, e.g. the catalog version.
	Status string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	status string
	width  int
	height int
}

// newAppModel creates a new AppModel with the hero screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	begin := func() screen.Screen {
		return generator.New(generator.Options{
			Catalog:  opts.Catalog,
			Repo:     opts.Repo,
			Notifier: notify.LogNotifier{Logger: logger},
			Logger:   logger,
			Rand:     opts.Rand,
		})
	}
	var historyFactory func() screen.Screen
	if opts.Repo != nil {
		historyFactory = func() screen.Screen { return history.New(opts.Repo) }
	}

	return AppModel{
		router: router.New(hero.New(begin, historyFactory)),
		status: opts.Status,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.frame())
	v.AltScreen = true
	return v
}

// frame renders the full screen: header, active screen and footer.
func (m AppModel) frame() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(m.router.Breadcrumb(), m.status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Catalog == nil {
		return fmt.Errorf("app: no catalog")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
