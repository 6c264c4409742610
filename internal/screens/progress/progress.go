// Package progress drives one generation run in the background and shows a
// live progress bar. When the run finishes it replaces itself with the done
// screen; backing out cancels the run.
package progress

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsheets/internal/router"
	"github.com/abhisek/mathsheets/internal/screen"
	"github.com/abhisek/mathsheets/internal/screens/done"
	"github.com/abhisek/mathsheets/internal/ui/components"
	"github.com/abhisek/mathsheets/internal/ui/layout"
	"github.com/abhisek/mathsheets/internal/ui/theme"
	"github.com/abhisek/mathsheets/internal/worksheet"
)

type progressMsg worksheet.Progress

type doneMsg struct {
	result *worksheet.Result
	err    error
}

// ProgressScreen runs the generator and renders its progress.
type ProgressScreen struct {
	gen *worksheet.Generator
	req worksheet.Request

	cancel   context.CancelFunc
	events   chan worksheet.Progress
	finished chan doneMsg

	latest worksheet.Progress
	total  int
	count  int
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)
var _ screen.BackInterceptor = (*ProgressScreen)(nil)

// New creates a ProgressScreen that will run req when initialized.
func New(gen *worksheet.Generator, req worksheet.Request) *ProgressScreen {
	return &ProgressScreen{
		gen:      gen,
		req:      req,
		events:   make(chan worksheet.Progress, 64),
		finished: make(chan doneMsg, 1),
	}
}

func (s *ProgressScreen) Title() string {
	return "Generating"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *ProgressScreen) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.total = s.req.Worksheets * s.req.Pages * s.req.PerPage
	if s.total < 1 {
		s.total = 1
	}

	go func() {
		result, err := s.gen.Run(ctx, s.req, func(p worksheet.Progress) {
			select {
			case s.events <- p:
			default: // the UI only needs the latest value
			}
		})
		s.finished <- doneMsg{result: result, err: err}
	}()

	return s.wait()
}

// wait returns a command that blocks for the next event from the run.
func (s *ProgressScreen) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case p := <-s.events:
			return progressMsg(p)
		case d := <-s.finished:
			return d
		}
	}
}

// InterceptBack cancels the run; the doneMsg path pops back to the form.
func (s *ProgressScreen) InterceptBack() tea.Cmd {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		s.latest = worksheet.Progress(msg)
		s.count++
		return s, s.wait()

	case doneMsg:
		if s.cancel != nil {
			s.cancel()
		}
		if errors.Is(msg.err, context.Canceled) {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		result := done.New(msg.result, msg.err)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: result} }
	}

	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	percent := float64(s.count) / float64(s.total)
	if percent > 1 {
		percent = 1
	}

	barWidth := width / 2
	if barWidth < 20 {
		barWidth = 20
	}
	bar := components.NewProgressBar("", percent, true, barWidth)

	status := "warming up..."
	if s.latest.Worksheet > 0 {
		status = fmt.Sprintf("worksheet %d of %d  ·  problem %d of %d",
			s.latest.Worksheet, s.latest.Worksheets,
			s.latest.Problem, s.latest.Problems)
	}

	content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Generating worksheets") +
		"\n\n" + bar.View() +
		"\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(status)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
