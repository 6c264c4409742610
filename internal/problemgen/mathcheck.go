package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
)

// MathCheckValidator independently recomputes the answer from the question
// text for the canonical "a OP b = " equation shapes. Anything it cannot
// parse (word problems, missing-operand shapes, subject problems) passes
// through silently.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

// binaryEqRe matches "a OP b = " with integer or decimal operands, where the
// question is nothing but that expression.
var binaryEqRe = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*([+\-×÷])\s*\(?(-?\d+(?:\.\d+)?)\)?\s*=\s*$`)

func (v *MathCheckValidator) Validate(p *Problem) *ValidationError {
	m := binaryEqRe.FindStringSubmatch(p.Question)
	if m == nil {
		return nil
	}

	a, err1 := strconv.ParseFloat(m[1], 64)
	b, err2 := strconv.ParseFloat(m[3], 64)
	if err1 != nil || err2 != nil {
		return nil
	}

	var want float64
	switch m[2] {
	case "+":
		want = a + b
	case "-":
		want = a - b
	case "×":
		want = a * b
	case "÷":
		if b == 0 {
			return &ValidationError{Validator: v.Name(), Message: "division by zero in question"}
		}
		want = a / b
	}

	got, err := strconv.ParseFloat(p.Answer, 64)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("non-numeric answer %q for arithmetic question", p.Answer)}
	}

	const eps = 1e-9
	if diff := got - want; diff > eps || diff < -eps {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %v but problem claims %q", want, p.Answer),
		}
	}
	return nil
}
