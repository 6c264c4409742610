package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsheets/internal/ui/theme"
)

// ChecklistItem is one selectable entry in a Checklist.
type ChecklistItem struct {
	Label    string
	Value    string
	Checked  bool
	Disabled bool
}

// Checklist is a vertical multi-select: space toggles, enter confirms.
type Checklist struct {
	Items    []ChecklistItem
	Cursor   int
	MinPicks int
}

// NewChecklist creates a checklist over the given items. minPicks is the
// smallest selection Confirmed will report as valid.
func NewChecklist(items []ChecklistItem, minPicks int) Checklist {
	cursor := 0
	for i, item := range items {
		if !item.Disabled {
			cursor = i
			break
		}
	}
	return Checklist{
		Items:    items,
		Cursor:   cursor,
		MinPicks: minPicks,
	}
}

// Init returns nil (no initial command).
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := c.Cursor - 1; i >= 0; i-- {
			if !c.Items[i].Disabled {
				c.Cursor = i
				break
			}
		}
	case "down", "j":
		for i := c.Cursor + 1; i < len(c.Items); i++ {
			if !c.Items[i].Disabled {
				c.Cursor = i
				break
			}
		}
	case "space", " ":
		if c.Cursor >= 0 && c.Cursor < len(c.Items) && !c.Items[c.Cursor].Disabled {
			c.Items[c.Cursor].Checked = !c.Items[c.Cursor].Checked
		}
	case "a":
		all := true
		for _, item := range c.Items {
			if !item.Disabled && !item.Checked {
				all = false
				break
			}
		}
		for i := range c.Items {
			if !c.Items[i].Disabled {
				c.Items[i].Checked = !all
			}
		}
	}

	return c, nil
}

// Selected returns the values of all checked items in display order.
func (c Checklist) Selected() []string {
	var out []string
	for _, item := range c.Items {
		if item.Checked {
			out = append(out, item.Value)
		}
	}
	return out
}

// Valid reports whether enough items are checked to confirm.
func (c Checklist) Valid() bool {
	return len(c.Selected()) >= c.MinPicks
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}

		prefix := "    "
		if i == c.Cursor {
			prefix = "  > "
		}
		line := prefix + box + " " + item.Label

		switch {
		case item.Disabled:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case item.Checked:
			s += theme.Checked.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
