package problemgen

import (
	"math/rand"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/mathsheets/internal/curriculum"
	"github.com/abhisek/mathsheets/internal/wordbank"
)

func TestSynthesizeDeterministicUnderSeed(t *testing.T) {
	run := func() []Problem {
		c := newTestContext(t, 99, 500, "grade5")
		out := make([]Problem, 0, 30)
		for i := 0; i < 30; i++ {
			out = append(out, Synthesize(c, curriculum.SubjectArithmetic, curriculum.OpMixed, curriculum.TypeMixed, ""))
		}
		return out
	}
	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("draw %d differs under identical seed: %q vs %q", i, first[i].Question, second[i].Question)
		}
	}
}

func TestSynthesizeTopicOverride(t *testing.T) {
	c := newTestContext(t, 101, 100, "grade4")
	for i := 0; i < 50; i++ {
		p := Synthesize(c, curriculum.SubjectArithmetic, curriculum.OpMixed, curriculum.TypeEquations, curriculum.TopicFractions)
		if err := Validate(&p, DefaultValidators()); err != nil {
			t.Fatalf("fractions topic produced invalid problem %q: %v", p.Question, err)
		}
	}
}

func TestSynthesizeWordProblemsTopic(t *testing.T) {
	c := newTestContext(t, 103, 100, "grade4")
	for i := 0; i < 30; i++ {
		p := Synthesize(c, curriculum.SubjectArithmetic, curriculum.OpAddition, curriculum.TypeEquations, curriculum.TopicWordProblems)
		if !strings.HasSuffix(strings.TrimSpace(p.Question), "?") {
			t.Fatalf("word-problems topic returned a non-word problem: %q", p.Question)
		}
	}
}

func TestSynthesizeUnknownTopicWarnsAndFallsBack(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	grade, _ := curriculum.GradeByID("grade4")
	rng := rand.New(rand.NewSource(107))
	picker := wordbank.NewPicker(wordbank.Default(), rng)
	c := NewContext(rng, 100, grade, picker, zap.New(core))

	p := Synthesize(c, curriculum.SubjectArithmetic, curriculum.OpAddition, curriculum.TypeEquations, "astrology")
	if err := Validate(&p, DefaultValidators()); err != nil {
		t.Fatalf("fallback problem invalid: %v", err)
	}
	if logs.FilterMessageSnippet("unrecognized arithmetic topic").Len() == 0 {
		t.Fatal("expected a warning about the unrecognized topic")
	}
}

func TestSynthesizeUnknownSubjectWarnsAndFallsBack(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	grade, _ := curriculum.GradeByID("grade9")
	rng := rand.New(rand.NewSource(109))
	picker := wordbank.NewPicker(wordbank.Default(), rng)
	c := NewContext(rng, 100, grade, picker, zap.New(core))

	p := Synthesize(c, "alchemy", curriculum.OpAddition, curriculum.TypeEquations, "")
	if err := Validate(&p, DefaultValidators()); err != nil {
		t.Fatalf("fallback problem invalid: %v", err)
	}
	if logs.FilterMessageSnippet("unrecognized subject").Len() == 0 {
		t.Fatal("expected a warning about the unrecognized subject")
	}
}

// Calculus has no word-problem family; a word request falls back to its
// equation family rather than generic arithmetic.
func TestSubjectWordFallsBackToEquations(t *testing.T) {
	c := newTestContext(t, 113, 200, "grade12")
	for i := 0; i < 30; i++ {
		p := Synthesize(c, curriculum.SubjectCalculus, curriculum.OpAddition, curriculum.TypeWord, "")
		if err := Validate(&p, DefaultValidators()); err != nil {
			t.Fatalf("calculus fallback invalid: %v", err)
		}
		if strings.Contains(p.Question, " + ") && strings.HasSuffix(p.Question, "= ") && !strings.Contains(p.Question, "x") && !strings.Contains(p.Question, "lim") {
			t.Fatalf("calculus word request fell through to generic arithmetic: %q", p.Question)
		}
	}
}

func TestPseudoOperation(t *testing.T) {
	tests := []struct {
		subject curriculum.SubjectID
		want    string
	}{
		{curriculum.SubjectAlgebra, "algebraic"},
		{curriculum.SubjectGeometry, "geometric"},
		{curriculum.SubjectTrigonometry, "trigonometric"},
		{curriculum.SubjectCalculus, "calculus"},
		{curriculum.SubjectStatistics, "statistical"},
		{curriculum.SubjectMeasurement, "measurement"},
		{curriculum.SubjectPrecalculus, "precalculus"},
		{curriculum.SubjectArithmetic, ""},
	}
	for _, tt := range tests {
		if got := PseudoOperation(tt.subject); got != tt.want {
			t.Errorf("PseudoOperation(%s) = %q, want %q", tt.subject, got, tt.want)
		}
	}
}
