// Package done shows the outcome of a finished generation run.
package done

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsheets/internal/router"
	"github.com/abhisek/mathsheets/internal/screen"
	"github.com/abhisek/mathsheets/internal/ui/layout"
	"github.com/abhisek/mathsheets/internal/ui/theme"
	"github.com/abhisek/mathsheets/internal/worksheet"
)

// DoneScreen summarizes a finished run, or its failure.
type DoneScreen struct {
	result *worksheet.Result
	err    error
}

var _ screen.Screen = (*DoneScreen)(nil)
var _ screen.KeyHintProvider = (*DoneScreen)(nil)

// New creates a DoneScreen. Exactly one of result and err is meaningful.
func New(result *worksheet.Result, err error) *DoneScreen {
	return &DoneScreen{result: result, err: err}
}

func (s *DoneScreen) Title() string {
	if s.err != nil {
		return "Failed"
	}
	return "Done"
}

func (s *DoneScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "New run"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *DoneScreen) Init() tea.Cmd {
	return nil
}

func (s *DoneScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *DoneScreen) View(width, height int) string {
	var content string
	if s.err != nil {
		content = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Generation failed") +
			"\n\n" + lipgloss.NewStyle().Foreground(theme.Text).Render(s.err.Error())
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	r := s.result
	rows := []string{
		fmt.Sprintf("Worksheets   %d", len(r.Files)),
		fmt.Sprintf("Problems     %d", r.Problems),
		fmt.Sprintf("Seed         %d", r.Seed),
	}
	if r.DuplicatesAccepted > 0 {
		rows = append(rows, fmt.Sprintf("Repeats      %d (pool exhausted)", r.DuplicatesAccepted))
	}
	if r.ZipPath != "" {
		rows = append(rows, fmt.Sprintf("Bundle       %s", r.ZipPath))
	} else if len(r.Files) > 0 {
		rows = append(rows, fmt.Sprintf("Output       %s", r.Files[0]))
	}

	card := theme.Card.Render(strings.Join(rows, "\n"))

	content = theme.Checked.Render("✓ Worksheets ready") + "\n\n" + card
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
