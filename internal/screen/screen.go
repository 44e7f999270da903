package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bigtop/internal/ui/layout"
)

// Screen is one view behind the router: the park map, or a single tent.
// Screens never see WindowSizeMsg; the app hands the content size to View.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message and returns the replacement screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area between header and footer.
	View(width, height int) string

	// Title labels the header while this screen is active.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
