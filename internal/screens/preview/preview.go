// Package preview shows a live sample of problems for the configured run,
// drawn from a throwaway session so the real run's determinism is untouched.
package preview

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsheets/internal/curriculum"
	"github.com/abhisek/mathsheets/internal/problemgen"
	"github.com/abhisek/mathsheets/internal/screen"
	"github.com/abhisek/mathsheets/internal/session"
	"github.com/abhisek/mathsheets/internal/ui/layout"
	"github.com/abhisek/mathsheets/internal/ui/theme"
	"github.com/abhisek/mathsheets/internal/worksheet"
)

const sampleSize = 8

// PreviewScreen renders sample problems with their answers.
type PreviewScreen struct {
	req      worksheet.Request
	problems []problemgen.Problem
	errMsg   string
}

var _ screen.Screen = (*PreviewScreen)(nil)
var _ screen.KeyHintProvider = (*PreviewScreen)(nil)

// New creates a PreviewScreen for the given request.
func New(req worksheet.Request) *PreviewScreen {
	s := &PreviewScreen{req: req}
	s.resample()
	return s
}

func (s *PreviewScreen) resample() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sess := session.New(rng, nil, nil)
	if err := sess.Configure(s.req.GradeID, s.req.DifficultyID, s.req.Subjects); err != nil {
		s.errMsg = err.Error()
		return
	}

	topics := session.AllTopics()
	if len(s.req.Topics) > 0 {
		ids := make([]curriculum.TopicID, len(s.req.Topics))
		for i, t := range s.req.Topics {
			ids[i] = curriculum.TopicID(t)
		}
		topics = session.Topics(ids...)
	}

	ops := s.req.Operations
	if len(ops) == 0 {
		ops = []curriculum.OperationID{curriculum.OpMixed}
	}

	s.problems = s.problems[:0]
	for i := 0; i < sampleSize; i++ {
		p, err := sess.NextUnique(ops[rng.Intn(len(ops))], s.req.Type, topics)
		if err != nil {
			s.errMsg = err.Error()
			return
		}
		s.problems = append(s.problems, p)
	}
}

func (s *PreviewScreen) Title() string {
	return "Preview"
}

func (s *PreviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Resample"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PreviewScreen) Init() tea.Cmd {
	return nil
}

func (s *PreviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "r" {
		s.resample()
	}
	return s, nil
}

func (s *PreviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}

	var b strings.Builder
	for i, p := range s.problems {
		q := lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("%d.  %s", i+1, p.Question))
		a := lipgloss.NewStyle().Foreground(theme.Secondary).Render(
			"    → " + p.Answer)
		b.WriteString(q + "\n" + a + "\n\n")
	}

	card := theme.Card.Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
