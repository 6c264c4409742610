package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsheets/internal/router"
	"github.com/abhisek/mathsheets/internal/screen"
	"github.com/abhisek/mathsheets/internal/store"
	"github.com/abhisek/mathsheets/internal/ui/layout"
	"github.com/abhisek/mathsheets/internal/ui/theme"
)

type runsLoadedMsg struct {
	Runs []store.Run
	Err  error
}

// HistoryScreen lists past generation runs, newest first.
type HistoryScreen struct {
	runs     store.RunRepo
	records  []store.Run
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(runs store.RunRepo) *HistoryScreen {
	return &HistoryScreen{
		runs:     runs,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.runs.Recent(context.Background(), 50)
		if err != nil {
			return runsLoadedMsg{Err: err}
		}
		return runsLoadedMsg{Runs: records}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Runs
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No runs yet. Generate a worksheet!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, run := range s.records {
		dateStr := run.CreatedAt.Local().Format("Jan 02, 2006 15:04")

		sheetStr := fmt.Sprintf("%d worksheet", run.Worksheets)
		if run.Worksheets != 1 {
			sheetStr += "s"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s / %s  %s  %d problems",
			prefix, dateStr, run.Grade, run.Difficulty, sheetStr, run.Problems)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			dim := lipgloss.NewStyle().Foreground(theme.TextDim)
			details := []string{
				fmt.Sprintf("    subjects: %s", strings.Join(run.Subjects, ", ")),
				fmt.Sprintf("    seed: %d", run.Seed),
				fmt.Sprintf("    output: %s", run.OutputPath),
			}
			if run.DuplicatesAccepted > 0 {
				details = append(details,
					fmt.Sprintf("    repeated problems: %d", run.DuplicatesAccepted))
			}
			for _, d := range details {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(d)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
