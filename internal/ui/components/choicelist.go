package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bigtop/internal/ui/theme"
)

// ChoiceOption is one selectable row in a ChoiceList.
type ChoiceOption struct {
	ID    string
	Label string
}

// ChoiceList is a single-choice selector. Once Locked, the cursor freezes
// and the picked row is highlighted; with a CorrectID set the rows render
// a correct/incorrect verdict instead.
type ChoiceList struct {
	Options   []ChoiceOption
	Cursor    int
	PickedID  string
	Locked    bool
	CorrectID string
}

// NewChoiceList creates a choice list over the given options.
func NewChoiceList(opts []ChoiceOption) ChoiceList {
	return ChoiceList{Options: opts}
}

// Update handles cursor movement. Selection itself is owned by the screen,
// which reads Current on enter.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Locked {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}

	return c, nil
}

// Current returns the option under the cursor.
func (c ChoiceList) Current() ChoiceOption {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return ChoiceOption{}
	}
	return c.Options[c.Cursor]
}

// Lock marks the list as answered with the given pick.
func (c *ChoiceList) Lock(pickedID string) {
	c.PickedID = pickedID
	c.Locked = true
}

// View renders the list.
func (c ChoiceList) View() string {
	s := ""
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor && !c.Locked {
			prefix = "▸ "
		}
		line := prefix + opt.Label

		switch {
		case c.Locked && c.CorrectID != "":
			switch opt.ID {
			case c.CorrectID:
				s += theme.Correct.Render(line) + "\n"
			case c.PickedID:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		case c.Locked && opt.ID == c.PickedID:
			s += theme.Selected.Render(line) + "\n"
		case c.Locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case opt.ID == c.PickedID:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
