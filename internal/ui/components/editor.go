package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bigtop/internal/ui/theme"
)

// Editor wraps bubbles/textarea with Big Top styling for drafting prompts.
type Editor struct {
	Model textarea.Model
}

// NewEditor creates a new styled multi-line editor seeded with text.
func NewEditor(seed string, width, height int) Editor {
	ta := textarea.New()
	ta.Placeholder = "Rewrite the prompt here..."
	ta.SetValue(seed)
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Focus()

	styles := textarea.DefaultDarkStyles()
	styles.Focused.Placeholder = styles.Focused.Placeholder.Foreground(theme.TextDim)
	styles.Focused.Text = styles.Focused.Text.Foreground(theme.Text)
	styles.Blurred.Text = styles.Blurred.Text.Foreground(theme.TextDim)
	ta.SetStyles(styles)

	return Editor{Model: ta}
}

// Init returns the initial command.
func (e Editor) Init() tea.Cmd {
	return e.Model.Focus()
}

// Update handles messages.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e Editor) View() string {
	return e.Model.View()
}

// Value returns the current draft text.
func (e Editor) Value() string {
	return e.Model.Value()
}

// SetSize resizes the editor.
func (e *Editor) SetSize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}

// Focused reports whether the editor has focus.
func (e Editor) Focused() bool {
	return e.Model.Focused()
}

// Blur removes focus from the editor.
func (e *Editor) Blur() {
	e.Model.Blur()
}

// Focus gives the editor focus.
func (e *Editor) Focus() tea.Cmd {
	return e.Model.Focus()
}
