// Package midway renders the park map: every attraction grouped by area,
// with completion markers and the running ticket and score tallies.
package midway

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/router"
	"github.com/abhisek/bigtop/internal/screen"
	"github.com/abhisek/bigtop/internal/screens/act"
	"github.com/abhisek/bigtop/internal/ui/components"
	"github.com/abhisek/bigtop/internal/ui/layout"
	"github.com/abhisek/bigtop/internal/ui/theme"
	"github.com/abhisek/bigtop/internal/workshop"
)

// MidwayScreen is the park map and entry point for a tour.
type MidwayScreen struct {
	sess *workshop.Session
	menu components.Menu

	confirmReset bool
}

var _ screen.Screen = (*MidwayScreen)(nil)

// New creates the park map over the session's catalog.
func New(sess *workshop.Session) *MidwayScreen {
	m := &MidwayScreen{sess: sess}
	m.menu = components.NewMenu(m.buildItems())
	return m
}

// buildItems lists front gate attractions first, then the rest, matching
// the area headings the view draws around the menu. Each item carries its
// own catalog index, so display order and catalog order may differ.
func (m *MidwayScreen) buildItems() []components.MenuItem {
	cat := m.sess.Catalog()
	var items []components.MenuItem
	add := func(mod catalog.Module) {
		meta := mod.Describe()
		idx := cat.FindIndex(meta.ID)
		mark := "  "
		if m.sess.Completed(meta.ID) {
			mark = "✓ "
		}
		icon := meta.Park.Icon
		if icon == "" {
			icon = "🎪"
		}
		note := meta.Park.Blurb
		if meta.Park.Time != "" {
			note = meta.Park.Time + " · " + note
		}
		items = append(items, components.MenuItem{
			Label: mark + icon + " " + meta.Title,
			Note:  note,
			Action: func() tea.Cmd {
				m.sess.Visit(idx)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: act.New(m.sess, false)}
				}
			},
		})
	}
	for _, mod := range cat.FrontGate() {
		add(mod)
	}
	for _, mod := range cat.Beyond() {
		add(mod)
	}
	return items
}

func (m *MidwayScreen) Init() tea.Cmd {
	return nil
}

func (m *MidwayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "r":
			if m.confirmReset {
				m.sess.Reset()
				m.confirmReset = false
				m.menu = components.NewMenu(m.buildItems())
				return m, nil
			}
			m.confirmReset = true
			return m, nil
		case "q":
			return m, tea.Quit
		default:
			m.confirmReset = false
		}
	}

	// Labels carry completion markers, so rebuild them on every pass
	// through. Selection survives the rebuild.
	selected := m.menu.Selected
	m.menu.Items = m.buildItems()
	if selected < len(m.menu.Items) {
		m.menu.Selected = selected
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MidwayScreen) View(width, height int) string {
	cat := m.sess.Catalog()
	p := m.sess.Progress(false)

	var sections []string

	sections = append(sections, theme.Title.Render("🎪 The Midway"))
	sections = append(sections, theme.Subtitle.Render(
		fmt.Sprintf("%d of %d attractions visited · 🎟 %d tickets · ★ %d pts",
			p.Completed, p.Total, p.Tickets, m.sess.Score())))

	barWidth := width - 8
	if barWidth > 48 {
		barWidth = 48
	}
	if barWidth > 0 && p.Total > 0 {
		pct := float64(p.Completed) / float64(p.Total)
		sections = append(sections, components.NewProgressBar("", pct, true, barWidth).View())
	}

	gate := cat.FrontGate()
	beyond := cat.Beyond()

	// The menu lists front gate entries first, so the headings slot in
	// cleanly around its rendered lines.
	menuLines := strings.Split(strings.TrimRight(m.menu.View(), "\n"), "\n")
	var list []string
	if len(gate) > 0 {
		list = append(list, theme.Body.Render("⛩  Front Gate"))
		list = append(list, menuLines[:min(len(gate), len(menuLines))]...)
	}
	if len(beyond) > 0 && len(menuLines) > len(gate) {
		list = append(list, "", theme.Body.Render("🎠 Beyond the Gate"))
		list = append(list, menuLines[len(gate):]...)
	}
	sections = append(sections, strings.Join(list, "\n"))

	if m.confirmReset {
		sections = append(sections, theme.Incorrect.Render("Tear down the whole park? Press r again to confirm."))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *MidwayScreen) Title() string {
	return "Park Map"
}

func (m *MidwayScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Step inside"},
		{Key: "r", Description: "Reset"},
		{Key: "q", Description: "Quit"},
	}
}
