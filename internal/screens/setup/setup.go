// Package setup implements the worksheet configuration form: a short wizard
// of grade, difficulty, subjects, topics, operation, problem type, counts
// and output options, ending in a confirm step that starts the run.
package setup

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsheets/internal/curriculum"
	"github.com/abhisek/mathsheets/internal/router"
	"github.com/abhisek/mathsheets/internal/screen"
	"github.com/abhisek/mathsheets/internal/screens/history"
	"github.com/abhisek/mathsheets/internal/screens/preview"
	"github.com/abhisek/mathsheets/internal/screens/progress"
	"github.com/abhisek/mathsheets/internal/ui/components"
	"github.com/abhisek/mathsheets/internal/ui/layout"
	"github.com/abhisek/mathsheets/internal/ui/theme"
	"github.com/abhisek/mathsheets/internal/worksheet"
)

type step int

const (
	stepGrade step = iota
	stepDifficulty
	stepSubjects
	stepTopics
	stepOperation
	stepType
	stepCounts
	stepOptions
	stepConfirm
)

// advanceMsg moves the form to the next step.
type advanceMsg struct{}

func advance() tea.Msg { return advanceMsg{} }

// SetupScreen is the worksheet configuration form.
type SetupScreen struct {
	gen    *worksheet.Generator
	outDir string

	step step

	gradeMenu  components.Menu
	diffMenu   components.Menu
	subjects   components.Checklist
	topics     components.Checklist
	opMenu     components.Menu
	typeMenu   components.Menu
	sheets     components.TextInput
	pages      components.TextInput
	perPage    components.TextInput
	countFocus int
	options    components.Checklist

	grade      curriculum.GradeProfile
	difficulty curriculum.Difficulty
	operation  curriculum.OperationID
	ptype      curriculum.ProblemType
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.StatusProvider = (*SetupScreen)(nil)

// New creates the form. Output files are written under outDir.
func New(gen *worksheet.Generator, outDir string) *SetupScreen {
	s := &SetupScreen{
		gen:       gen,
		outDir:    outDir,
		operation: curriculum.OpMixed,
		ptype:     curriculum.TypeMixed,
	}

	grades := curriculum.AllGrades()
	items := make([]components.MenuItem, len(grades))
	for i, g := range grades {
		g := g
		items[i] = components.MenuItem{
			Label: g.DisplayName,
			Action: func() tea.Cmd {
				s.grade = g
				return advance
			},
		}
	}
	s.gradeMenu = components.NewMenu(items)

	diffs := curriculum.AllDifficulties()
	dItems := make([]components.MenuItem, len(diffs))
	for i, d := range diffs {
		d := d
		dItems[i] = components.MenuItem{
			Label: d.DisplayName,
			Action: func() tea.Cmd {
				s.difficulty = d
				return advance
			},
		}
	}
	s.diffMenu = components.NewMenu(dItems)

	s.sheets = components.NewTextInput("1", true, 3)
	s.pages = components.NewTextInput("1", true, 3)
	s.perPage = components.NewTextInput("20", true, 3)

	s.options = components.NewChecklist([]components.ChecklistItem{
		{Label: "Separate answer key PDFs", Value: "split-keys"},
		{Label: "Bundle everything into a zip", Value: "zip", Checked: true},
	}, 0)

	return s
}

func (s *SetupScreen) Title() string {
	return "New Worksheets"
}

// Status summarizes the picks made so far for the header.
func (s *SetupScreen) Status() string {
	if s.step <= stepGrade {
		return ""
	}
	parts := []string{s.grade.DisplayName}
	if s.step > stepDifficulty {
		parts = append(parts, s.difficulty.DisplayName)
	}
	return strings.Join(parts, " · ")
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepSubjects, stepTopics, stepOptions:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "a", Description: "All"},
			{Key: "Enter", Description: "Next"},
			{Key: "Backspace", Description: "Back"},
		}
	case stepCounts:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Next"},
			{Key: "Backspace", Description: "Back"},
		}
	case stepConfirm:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Generate"},
			{Key: "p", Description: "Preview"},
			{Key: "Backspace", Description: "Back"},
		}
	case stepGrade:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
		if s.gen.Runs != nil {
			hints = append(hints, layout.KeyHint{Key: "h", Description: "History"})
		}
		return hints
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Backspace", Description: "Back"},
		}
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		return s, s.enterStep(s.next())

	case tea.KeyMsg:
		if msg.String() == "backspace" && s.step > stepGrade && s.step != stepCounts {
			s.step = s.prev()
			return s, nil
		}
		if msg.String() == "h" && s.step == stepGrade && s.gen.Runs != nil {
			hist := history.New(s.gen.Runs)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: hist} }
		}
	}

	switch s.step {
	case stepGrade:
		var cmd tea.Cmd
		s.gradeMenu, cmd = s.gradeMenu.Update(msg)
		return s, cmd

	case stepDifficulty:
		var cmd tea.Cmd
		s.diffMenu, cmd = s.diffMenu.Update(msg)
		return s, cmd

	case stepSubjects:
		if isEnter(msg) {
			if !s.subjects.Valid() {
				return s, nil
			}
			return s, s.enterStep(s.next())
		}
		var cmd tea.Cmd
		s.subjects, cmd = s.subjects.Update(msg)
		return s, cmd

	case stepTopics:
		if isEnter(msg) {
			return s, s.enterStep(s.next())
		}
		var cmd tea.Cmd
		s.topics, cmd = s.topics.Update(msg)
		return s, cmd

	case stepOperation:
		var cmd tea.Cmd
		s.opMenu, cmd = s.opMenu.Update(msg)
		return s, cmd

	case stepType:
		var cmd tea.Cmd
		s.typeMenu, cmd = s.typeMenu.Update(msg)
		return s, cmd

	case stepCounts:
		return s.updateCounts(msg)

	case stepOptions:
		if isEnter(msg) {
			return s, s.enterStep(s.next())
		}
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd

	case stepConfirm:
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "enter":
				prog := progress.New(s.gen, s.request())
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: prog} }
			case "p":
				prev := preview.New(s.request())
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: prev} }
			}
		}
	}

	return s, nil
}

func (s *SetupScreen) updateCounts(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			s.countFocus = (s.countFocus + 1) % 3
			return s, nil
		case "shift+tab", "up":
			s.countFocus = (s.countFocus + 2) % 3
			return s, nil
		case "backspace":
			// Let backspace edit a non-empty field; go back a step otherwise.
			if s.focusedCount().Value() == "" {
				s.step = s.prev()
				return s, nil
			}
		case "enter":
			return s, s.enterStep(s.next())
		}
	}

	var cmd tea.Cmd
	switch s.countFocus {
	case 0:
		s.sheets, cmd = s.sheets.Update(msg)
	case 1:
		s.pages, cmd = s.pages.Update(msg)
	default:
		s.perPage, cmd = s.perPage.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) focusedCount() *components.TextInput {
	switch s.countFocus {
	case 0:
		return &s.sheets
	case 1:
		return &s.pages
	default:
		return &s.perPage
	}
}

// next returns the step after the current one, skipping steps that do not
// apply to the current picks (topics and operation are arithmetic-only).
func (s *SetupScreen) next() step {
	n := s.step + 1
	for {
		switch n {
		case stepTopics, stepOperation:
			if !s.arithmeticActive() {
				n++
				continue
			}
		}
		return n
	}
}

// prev mirrors next for the backspace path.
func (s *SetupScreen) prev() step {
	n := s.step - 1
	for {
		switch n {
		case stepTopics, stepOperation:
			if !s.arithmeticActive() {
				n--
				continue
			}
		}
		return n
	}
}

func (s *SetupScreen) arithmeticActive() bool {
	for _, v := range s.subjects.Selected() {
		if curriculum.SubjectID(v) == curriculum.SubjectArithmetic {
			return true
		}
	}
	// Before the subjects step the checklist is empty; treat as active so
	// next() from earlier steps still lands on stepSubjects normally.
	return s.step < stepSubjects
}

// enterStep builds the component for the step being entered, since several
// depend on earlier picks.
func (s *SetupScreen) enterStep(n step) tea.Cmd {
	s.step = n

	switch n {
	case stepSubjects:
		subjects := curriculum.AllSubjects()
		items := make([]components.ChecklistItem, 0, len(subjects))
		for _, id := range subjects {
			allowed := s.grade.AllowsSubject(id)
			items = append(items, components.ChecklistItem{
				Label:    curriculum.SubjectDisplayName(id),
				Value:    string(id),
				Checked:  allowed && id == curriculum.SubjectArithmetic,
				Disabled: !allowed,
			})
		}
		s.subjects = components.NewChecklist(items, 1)

	case stepTopics:
		descs := curriculum.TopicsForGrade(curriculum.SubjectArithmetic, s.grade)
		items := make([]components.ChecklistItem, len(descs))
		for i, d := range descs {
			items[i] = components.ChecklistItem{Label: d.DisplayName, Value: string(d.ID)}
		}
		s.topics = components.NewChecklist(items, 0)

	case stepOperation:
		ops := append([]curriculum.OperationID{}, s.grade.AllowedOperations...)
		items := make([]components.MenuItem, len(ops))
		for i, op := range ops {
			op := op
			items[i] = components.MenuItem{
				Label: opLabel(op),
				Action: func() tea.Cmd {
					s.operation = op
					return advance
				},
			}
		}
		s.opMenu = components.NewMenu(items)

	case stepType:
		types := []struct {
			label string
			t     curriculum.ProblemType
		}{
			{"Equations", curriculum.TypeEquations},
			{"Word problems", curriculum.TypeWord},
			{"Mixed", curriculum.TypeMixed},
		}
		items := make([]components.MenuItem, len(types))
		for i, tt := range types {
			tt := tt
			items[i] = components.MenuItem{
				Label: tt.label,
				Action: func() tea.Cmd {
					s.ptype = tt.t
					return advance
				},
			}
		}
		s.typeMenu = components.NewMenu(items)

	case stepCounts:
		s.countFocus = 0
		return s.sheets.Init()
	}

	return nil
}

// request assembles the run request from the form state.
func (s *SetupScreen) request() worksheet.Request {
	split := false
	zip := false
	for _, v := range s.options.Selected() {
		switch v {
		case "split-keys":
			split = true
		case "zip":
			zip = true
		}
	}

	return worksheet.Request{
		GradeID:         s.grade.ID,
		DifficultyID:    s.difficulty.ID,
		Subjects:        s.subjects.Selected(),
		Topics:          s.topics.Selected(),
		Operations:      []curriculum.OperationID{s.operation},
		Type:            s.ptype,
		Worksheets:      countOr(s.sheets, 1),
		Pages:           countOr(s.pages, 1),
		PerPage:         countOr(s.perPage, 20),
		SplitAnswerKeys: split,
		Zip:             zip,
		OutDir:          s.outDir,
	}
}

func (s *SetupScreen) View(width, height int) string {
	var body string
	switch s.step {
	case stepGrade:
		body = s.prompt("Which grade?") + s.gradeMenu.View()
	case stepDifficulty:
		body = s.prompt("How hard?") + s.diffMenu.View()
	case stepSubjects:
		body = s.prompt("Which subjects?") + s.subjects.View()
		if !s.subjects.Valid() {
			body += "\n" + theme.Warning.Render("  pick at least one subject")
		}
	case stepTopics:
		body = s.prompt("Arithmetic topics (none checked = all)") + s.topics.View()
	case stepOperation:
		body = s.prompt("Which operation?") + s.opMenu.View()
	case stepType:
		body = s.prompt("Problem format?") + s.typeMenu.View()
	case stepCounts:
		body = s.prompt("How much?") + s.countsView()
	case stepOptions:
		body = s.prompt("Output options") + s.options.View()
	case stepConfirm:
		body = s.confirmView()
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *SetupScreen) prompt(text string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(text) + "\n\n"
}

func (s *SetupScreen) countsView() string {
	labels := []string{"Worksheets", "Pages per worksheet", "Problems per page"}
	views := []string{s.sheets.View(), s.pages.View(), s.perPage.View()}

	var b strings.Builder
	for i := range labels {
		marker := "   "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.countFocus {
			marker = " > "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-22s", marker, labels[i])))
		b.WriteString(views[i])
		b.WriteString("\n")
	}
	return b.String()
}

func (s *SetupScreen) confirmView() string {
	req := s.request()
	total := req.Worksheets * req.Pages * req.PerPage

	rows := []string{
		fmt.Sprintf("Grade        %s", s.grade.DisplayName),
		fmt.Sprintf("Difficulty   %s", s.difficulty.DisplayName),
		fmt.Sprintf("Subjects     %s", strings.Join(req.Subjects, ", ")),
	}
	if len(req.Topics) > 0 {
		rows = append(rows, fmt.Sprintf("Topics       %s", strings.Join(req.Topics, ", ")))
	}
	rows = append(rows,
		fmt.Sprintf("Format       %s / %s", s.operation, s.ptype),
		fmt.Sprintf("Output       %d worksheet(s) × %d page(s) × %d = %d problems",
			req.Worksheets, req.Pages, req.PerPage, total),
	)

	card := theme.Card.Render(strings.Join(rows, "\n"))

	hint := theme.Hint.Render("Enter to generate, p to preview a sample")
	return s.prompt("Ready?") + card + "\n\n" + hint
}

func opLabel(op curriculum.OperationID) string {
	switch op {
	case curriculum.OpAddition:
		return "Addition"
	case curriculum.OpSubtraction:
		return "Subtraction"
	case curriculum.OpMultiplication:
		return "Multiplication"
	case curriculum.OpDivision:
		return "Division"
	case curriculum.OpMixed:
		return "Mixed operations"
	default:
		return string(op)
	}
}

func countOr(in components.TextInput, fallback int) int {
	n, err := strconv.Atoi(in.Value())
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func isEnter(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyMsg)
	return ok && kmsg.String() == "enter"
}
