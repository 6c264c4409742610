package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsheets/internal/router"
	"github.com/abhisek/mathsheets/internal/screen"
	"github.com/abhisek/mathsheets/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const sheetArt = `  ╭────────────────╮
  │  Name: ______  │
  │                │
  │  7 + 5 = ____  │
  │  9 × 3 = ____  │
  │  8 − 2 = ____  │
  │                │
  ╰────────────────╯`

// pencil frames alternate beside the sheet
var pencilFrames = []string{"✎", "✐"}

type tickMsg time.Time

// WelcomeScreen shows a short splash before transitioning to the setup form.
type WelcomeScreen struct {
	setupFactory func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced
// by setupFactory.
func New(setupFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		setupFactory: setupFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Any key skips straight to the form.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	setupScreen := w.setupFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: setupScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sheetStyle := lipgloss.NewStyle().Foreground(theme.Primary)

	// Phase 1+: the sheet
	rendered := sheetStyle.Render(sheetArt)

	// Phase 2+: pencils beside the sheet
	if w.elapsed >= phase1End {
		frame := w.tickCount % len(pencilFrames)
		pencil := pencilFrames[frame]

		accentStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		secondaryStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

		p1 := accentStyle.Render(pencil)
		p2 := secondaryStyle.Render(pencil)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[0] = p1 + "  " + lines[0] + "  " + p2
		}
		if len(lines) > 4 {
			lines[4] = p2 + "  " + lines[4] + "  " + p1
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner + tagline + key hint
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Worksheets in seconds, answer keys included.")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
