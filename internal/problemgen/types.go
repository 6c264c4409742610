package problemgen

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/abhisek/mathsheets/internal/curriculum"
	"github.com/abhisek/mathsheets/internal/wordbank"
)

// Problem is one generated question/answer pair, ready for rendering.
// Never mutated after creation.
type Problem struct {
	// Question is the prompt printed on the worksheet. Equation problems
	// end with "= " so the learner writes the answer on the line;
	// word problems end with a question mark.
	Question string

	// Answer is the canonical answer as a display string: "623", "3/4",
	// "x = 4", "12.5 cm".
	Answer string

	// Kind describes the numeric shape of Answer, for format checks.
	Kind AnswerKind
}

// AnswerKind describes the numeric representation of an answer.
type AnswerKind string

const (
	KindInteger  AnswerKind = "integer"  // "623", "-15"
	KindDecimal  AnswerKind = "decimal"  // "3.75"
	KindFraction AnswerKind = "fraction" // "3/4"
	KindText     AnswerKind = "text"     // "x = 4", "π/3", "hexagon"
)

// TemplateFn produces one style of problem from the given context.
// Templates are pure apart from the context's random source: the answer is
// always computed from the same draws as the question text.
type TemplateFn func(*Context) Problem

// Context carries everything a template needs: the random source, the
// difficulty-scaled number ceiling, the active grade profile, and the
// vocabulary picker for word problems.
type Context struct {
	Rand    *rand.Rand
	Ceiling int
	Grade   curriculum.GradeProfile
	Words   *wordbank.Picker
	Log     *zap.Logger
}

// NewContext builds a Context. A nil logger is replaced with a no-op one;
// ceiling is clamped to at least 1.
func NewContext(rng *rand.Rand, ceiling int, grade curriculum.GradeProfile, words *wordbank.Picker, log *zap.Logger) *Context {
	if ceiling < 1 {
		ceiling = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{Rand: rng, Ceiling: ceiling, Grade: grade, Words: words, Log: log}
}

// between returns a uniform integer in [lo, hi]. Degenerate ranges collapse
// to lo.
func (c *Context) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + c.Rand.Intn(hi-lo+1)
}

// upTo returns a uniform integer in [1, n].
func (c *Context) upTo(n int) int {
	return c.between(1, n)
}

// chance reports true with probability p.
func (c *Context) chance(p float64) bool {
	return c.Rand.Float64() < p
}

// withCeiling returns a copy of the context with a different ceiling,
// clamped to at least 1. Grade-specific generators use this to hand
// word-problem templates their hand-tuned ranges.
func (c *Context) withCeiling(n int) *Context {
	if n < 1 {
		n = 1
	}
	cc := *c
	cc.Ceiling = n
	return &cc
}

// pickTemplate selects one template uniformly at random.
func pickTemplate(c *Context, tmpls []TemplateFn) TemplateFn {
	return tmpls[c.Rand.Intn(len(tmpls))]
}
