package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bigtop/internal/router"
	"github.com/abhisek/bigtop/internal/screen"
	"github.com/abhisek/bigtop/internal/screens/act"
	"github.com/abhisek/bigtop/internal/screens/midway"
	"github.com/abhisek/bigtop/internal/ui/layout"
	"github.com/abhisek/bigtop/internal/workshop"
)

// Options selects what the program opens onto.
type Options struct {
	Session *workshop.Session

	// Single runs one module with no tour navigation.
	Single bool

	// OpenAct starts the tour directly inside the current act instead of
	// on the park map. Ignored in single mode.
	OpenAct bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *workshop.Session
	width   int
	height  int
}

// newAppModel builds the screen stack for the given options.
func newAppModel(opts Options) AppModel {
	sess := opts.Session

	var r *router.Router
	if opts.Single {
		r = router.New(act.New(sess, true))
	} else {
		r = router.New(midway.New(sess))
		if opts.OpenAct {
			r.Push(act.New(sess, false))
		}
	}

	return AppModel{
		router:  r,
		session: sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
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
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.session.Tickets(), m.session.Score(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
