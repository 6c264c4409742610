package session

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/mathsheets/internal/curriculum"
	"github.com/abhisek/mathsheets/internal/dedup"
)

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	return New(rand.New(rand.NewSource(seed)), nil, nil)
}

func TestConfigureComputesCeiling(t *testing.T) {
	s := newTestSession(t, 1)
	if err := s.Configure("grade5", "hard", []string{"arithmetic"}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	grade, _ := curriculum.GradeByID("grade5")
	want := int(float64(grade.NumberCeiling) * 1.4)
	if got := s.Config().Ceiling; got != want {
		t.Fatalf("ceiling = %d, want %d", got, want)
	}
}

func TestConfigureFallsBackWithWarnings(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := New(rand.New(rand.NewSource(2)), nil, zap.New(core))

	if err := s.Configure("grade99", "impossible", []string{"arithmetic"}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	cfg := s.Config()
	if cfg.Grade.ID != curriculum.DefaultGrade().ID {
		t.Errorf("grade = %s, want default %s", cfg.Grade.ID, curriculum.DefaultGrade().ID)
	}
	if cfg.Difficulty.ID != "medium" {
		t.Errorf("difficulty = %s, want medium", cfg.Difficulty.ID)
	}
	if logs.FilterMessageSnippet("unknown grade").Len() == 0 {
		t.Error("no warning for the unknown grade")
	}
	if logs.FilterMessageSnippet("unknown difficulty").Len() == 0 {
		t.Error("no warning for the unknown difficulty")
	}
}

func TestConfigureRejectsEmptySubjects(t *testing.T) {
	s := newTestSession(t, 3)
	if err := s.Configure("grade5", "medium", nil); !errors.Is(err, ErrNoSubjects) {
		t.Fatalf("err = %v, want ErrNoSubjects", err)
	}
}

func TestConfigureReplacesPriorConfig(t *testing.T) {
	s := newTestSession(t, 4)
	if err := s.Configure("grade3", "easy", []string{"arithmetic"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Configure("grade8", "hard", []string{"algebra", "geometry"}); err != nil {
		t.Fatal(err)
	}
	cfg := s.Config()
	if cfg.Grade.ID != "grade8" || len(cfg.Subjects) != 2 {
		t.Fatalf("stale configuration after reconfigure: %+v", cfg)
	}
}

func TestNextUniqueProducesDistinctProblems(t *testing.T) {
	s := newTestSession(t, 5)
	if err := s.Configure("grade5", "medium", []string{"arithmetic"}); err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]struct{})
	for i := 0; i < 40; i++ {
		p, err := s.NextUnique(curriculum.OpMixed, curriculum.TypeMixed, AllTopics())
		if err != nil {
			t.Fatalf("NextUnique: %v", err)
		}
		key := dedup.Normalize(p.Question)
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate question %q", p.Question)
		}
		seen[key] = struct{}{}
	}
}

func TestNextUniqueDeterministicUnderSeed(t *testing.T) {
	run := func() []string {
		s := newTestSession(t, 42)
		if err := s.Configure("grade4", "medium", []string{"arithmetic"}); err != nil {
			t.Fatal(err)
		}
		var out []string
		for i := 0; i < 25; i++ {
			p, err := s.NextUnique(curriculum.OpMixed, curriculum.TypeMixed, AllTopics())
			if err != nil {
				t.Fatal(err)
			}
			out = append(out, p.Question+"|"+p.Answer)
		}
		return out
	}
	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("draw %d differs under identical seed:\n%s\n%s", i, first[i], second[i])
		}
	}
}

func TestNextUniqueTopicForcesWordType(t *testing.T) {
	s := newTestSession(t, 6)
	if err := s.Configure("grade4", "medium", []string{"arithmetic"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		p, err := s.NextUnique(curriculum.OpAddition, curriculum.TypeEquations, Topics(curriculum.TopicWordProblems))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(strings.TrimSpace(p.Question), "?") {
			t.Fatalf("word-problems topic produced non-word problem %q", p.Question)
		}
	}
}

func TestNextUniqueBeforeConfigure(t *testing.T) {
	s := newTestSession(t, 7)
	if _, err := s.NextUnique(curriculum.OpAddition, curriculum.TypeEquations, AllTopics()); !errors.Is(err, ErrNoSubjects) {
		t.Fatalf("err = %v, want ErrNoSubjects", err)
	}
}

// Grade 1 offers few distinct questions; a long enough run must exhaust the
// retry budget, warn once per exhaustion, and still return problems.
func TestNextUniqueBestEffortAfterExhaustion(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := New(rand.New(rand.NewSource(8)), nil, zap.New(core))
	if err := s.Configure("grade1", "easy", []string{"arithmetic"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 120; i++ {
		if _, err := s.NextUnique(curriculum.OpAddition, curriculum.TypeEquations, AllTopics()); err != nil {
			t.Fatalf("NextUnique must not fail on exhaustion: %v", err)
		}
	}
	if logs.FilterMessageSnippet("uniqueness budget exhausted").Len() == 0 {
		t.Fatal("expected at least one exhaustion warning in 120 draws over a tiny problem space")
	}
}

func TestResetClearsLedger(t *testing.T) {
	s := newTestSession(t, 9)
	if err := s.Configure("grade5", "medium", []string{"arithmetic"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if _, err := s.NextUnique(curriculum.OpMixed, curriculum.TypeEquations, AllTopics()); err != nil {
			t.Fatal(err)
		}
	}
	if s.Accepted() == 0 {
		t.Fatal("ledger empty after accepted draws")
	}
	s.Reset()
	if s.Accepted() != 0 {
		t.Fatalf("ledger has %d entries after Reset", s.Accepted())
	}
}

func TestTopicSelection(t *testing.T) {
	if !AllTopics().IsAll() {
		t.Error("AllTopics should select everything")
	}
	if !Topics().IsAll() {
		t.Error("empty Topics should behave like AllTopics")
	}
	sel := Topics(curriculum.TopicFractions, curriculum.TopicPercentages)
	if sel.IsAll() {
		t.Error("explicit selection reported as all")
	}
	if got := len(sel.IDs()); got != 2 {
		t.Errorf("IDs() length = %d, want 2", got)
	}
}
