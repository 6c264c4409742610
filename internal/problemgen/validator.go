package problemgen

import (
	"fmt"
	"strings"
)

// Validator checks a synthesized problem for correctness.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate returns nil if the problem passes.
	Validate(p *Problem) *ValidationError
}

// ValidationError describes why a problem failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator rejects problems with empty or obviously broken text:
// unfilled blanks from a template bug, empty answers, stray format verbs.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	q := strings.TrimSpace(p.Question)
	if q == "" {
		return &ValidationError{Validator: v.Name(), Message: "empty question"}
	}
	if strings.TrimSpace(p.Answer) == "" {
		return &ValidationError{Validator: v.Name(), Message: "empty answer"}
	}
	if strings.Contains(p.Question, "%!") || strings.Contains(p.Answer, "%!") {
		return &ValidationError{Validator: v.Name(), Message: "unresolved format verb"}
	}
	return nil
}

// Validate runs the problem through the given validator chain, stopping at
// the first failure.
func Validate(p *Problem, validators []Validator) error {
	for _, v := range validators {
		if err := v.Validate(p); err != nil {
			return err
		}
	}
	return nil
}

// DefaultValidators returns the standard chain.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&AnswerFormatValidator{},
		&MathCheckValidator{},
	}
}
