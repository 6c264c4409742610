package problemgen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/abhisek/mathsheets/internal/curriculum"
	"github.com/abhisek/mathsheets/internal/wordbank"
)

// newTestContext builds a deterministic context for the given grade.
func newTestContext(t *testing.T, seed int64, ceiling int, gradeID string) *Context {
	t.Helper()
	grade, ok := curriculum.GradeByID(gradeID)
	if !ok {
		t.Fatalf("unknown grade %q", gradeID)
	}
	rng := rand.New(rand.NewSource(seed))
	picker := wordbank.NewPicker(wordbank.Default(), rng)
	return NewContext(rng, ceiling, grade, picker, nil)
}

func TestAddPairWithinCeiling(t *testing.T) {
	c := newTestContext(t, 1, 100, "grade9")
	for i := 0; i < 500; i++ {
		a, b := addPair(c)
		if a < 1 || a > 100 || b < 1 || b > 100 {
			t.Fatalf("operands (%d, %d) outside [1, 100]", a, b)
		}
	}
}

func TestSubPairNeverNegative(t *testing.T) {
	c := newTestContext(t, 2, 100, "grade9")
	for i := 0; i < 500; i++ {
		a, b := subPair(c)
		if a < b {
			t.Fatalf("minuend %d < subtrahend %d", a, b)
		}
	}
}

func TestDivPartsAlwaysClean(t *testing.T) {
	c := newTestContext(t, 3, 1000, "grade9")
	for i := 0; i < 500; i++ {
		dividend, divisor, quotient := divParts(c)
		if divisor < 2 {
			t.Fatalf("divisor %d below 2", divisor)
		}
		if dividend != divisor*quotient {
			t.Fatalf("%d ÷ %d does not give %d exactly", dividend, divisor, quotient)
		}
	}
}

func TestMulOperandCeiling(t *testing.T) {
	tests := []struct {
		ceiling, want int
	}{
		{10, 1},
		{100, 10},
		{1000, 100},
		{100000, 100},
	}
	for _, tt := range tests {
		if got := mulOperandCeiling(tt.ceiling); got != tt.want {
			t.Errorf("mulOperandCeiling(%d) = %d, want %d", tt.ceiling, got, tt.want)
		}
	}
}

func TestGenericArithmeticValidates(t *testing.T) {
	ops := []curriculum.OperationID{
		curriculum.OpAddition, curriculum.OpSubtraction,
		curriculum.OpMultiplication, curriculum.OpDivision, curriculum.OpMixed,
	}
	validators := DefaultValidators()
	for _, op := range ops {
		c := newTestContext(t, 7, 500, "grade9")
		for i := 0; i < 200; i++ {
			p := genericArithmetic(c, op, curriculum.TypeEquations)
			if err := Validate(&p, validators); err != nil {
				t.Fatalf("op %s produced invalid problem %q = %q: %v", op, p.Question, p.Answer, err)
			}
		}
	}
}

func TestGenericWordProblemsEndWithQuestionMark(t *testing.T) {
	c := newTestContext(t, 11, 100, "grade9")
	for i := 0; i < 100; i++ {
		p := genericArithmetic(c, curriculum.OpMixed, curriculum.TypeWord)
		if !strings.HasSuffix(strings.TrimSpace(p.Question), "?") {
			t.Fatalf("word problem does not end with a question mark: %q", p.Question)
		}
		if err := Validate(&p, DefaultValidators()); err != nil {
			t.Fatalf("invalid word problem %q: %v", p.Question, err)
		}
	}
}

func TestNormalizeOperationDefaultsToAddition(t *testing.T) {
	c := newTestContext(t, 5, 100, "grade9")
	if got := normalizeOperation(c, "analysis"); got != curriculum.OpAddition {
		t.Fatalf("normalizeOperation = %s, want addition", got)
	}
}

func TestAltShapesAppear(t *testing.T) {
	c := newTestContext(t, 13, 100, "grade9")
	sawBlank := false
	for i := 0; i < 300 && !sawBlank; i++ {
		p := genericArithmetic(c, curriculum.OpAddition, curriculum.TypeEquations)
		if strings.Contains(p.Question, "___") {
			sawBlank = true
		}
	}
	if !sawBlank {
		t.Fatal("no missing-operand shape in 300 draws")
	}
}
