package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// formatInt renders an integer answer.
func formatInt(n int) string { return strconv.Itoa(n) }

// formatTenths renders n tenths as a one-decimal-place number: 125 → "12.5".
func formatTenths(n int) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(n)/10), ".0")
}

// formatHundredths renders n hundredths: 1250 → "12.5", 1255 → "12.55".
func formatHundredths(n int) string {
	s := fmt.Sprintf("%.2f", float64(n)/100)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// formatDecimal renders a float rounded to two places with trailing zeros
// trimmed, for answers that are not exact by construction.
func formatDecimal(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// signed renders a leading operand, negatives unparenthesized: "-5".
func signed(n int) string { return strconv.Itoa(n) }

// signedOperand renders a non-leading operand, parenthesizing negatives so
// "3 + (-5)" reads naturally.
func signedOperand(n int) string {
	if n < 0 {
		return fmt.Sprintf("(%d)", n)
	}
	return strconv.Itoa(n)
}

// gcd returns the greatest common divisor of a and b (non-negative inputs).
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// lcm returns the least common multiple of a and b.
func lcm(a, b int) int { return a / gcd(a, b) * b }

// formatFraction renders n/d reduced to lowest terms; whole results render
// as integers.
func formatFraction(n, d int) string {
	neg := (n < 0) != (d < 0)
	if n < 0 {
		n = -n
	}
	if d < 0 {
		d = -d
	}
	g := gcd(n, d)
	n, d = n/g, d/g
	var s string
	if d == 1 {
		s = strconv.Itoa(n)
	} else {
		s = fmt.Sprintf("%d/%d", n, d)
	}
	if neg && n != 0 {
		s = "-" + s
	}
	return s
}

var fractionPattern = regexp.MustCompile(`^-?\d+/\d+$`)

// AnswerFormatValidator checks that the answer string parses as the kind
// the problem declares. Text answers pass through.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(p *Problem) *ValidationError {
	switch p.Kind {
	case KindInteger:
		if _, err := strconv.Atoi(p.Answer); err != nil {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("invalid integer answer %q", p.Answer)}
		}
	case KindDecimal:
		if _, err := strconv.ParseFloat(p.Answer, 64); err != nil {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("invalid decimal answer %q", p.Answer)}
		}
	case KindFraction:
		if !fractionPattern.MatchString(p.Answer) {
			// Reduced whole-number fractions are fine.
			if _, err := strconv.Atoi(p.Answer); err != nil {
				return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("invalid fraction answer %q", p.Answer)}
			}
		}
	case KindText:
		// Free-form; structural checks cover emptiness.
	}
	return nil
}
