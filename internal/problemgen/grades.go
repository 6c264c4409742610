package problemgen

import (
	"fmt"

	"github.com/abhisek/mathsheets/internal/curriculum"
)

// Grade-specialized arithmetic. Each grade has hand-tuned operand ranges
// rather than a scaled ceiling: single digits in grade 1 scaling up to
// multi-digit, decimal, and negative work by grade 8. Word problems reuse
// the generic templates with the grade's tuned ceiling.

func grade1Arithmetic(c *Context, op curriculum.OperationID, ptype curriculum.ProblemType) Problem {
	op = pickAllowed(c, op, curriculum.OpAddition, curriculum.OpSubtraction)
	if ptype == curriculum.TypeWord {
		return pickTemplate(c, wordTemplates[op])(c.withCeiling(10))
	}
	switch op {
	case curriculum.OpSubtraction:
		a := c.between(2, 10)
		b := c.upTo(a)
		return Problem{Question: fmt.Sprintf("%d - %d = ", a, b), Answer: formatInt(a - b), Kind: KindInteger}
	default:
		a, b := c.upTo(9), c.upTo(9)
		return Problem{Question: fmt.Sprintf("%d + %d = ", a, b), Answer: formatInt(a + b), Kind: KindInteger}
	}
}

func grade2Arithmetic(c *Context, op curriculum.OperationID, ptype curriculum.ProblemType) Problem {
	op = pickAllowed(c, op, curriculum.OpAddition, curriculum.OpSubtraction)
	if ptype == curriculum.TypeWord {
		return pickTemplate(c, wordTemplates[op])(c.withCeiling(20))
	}
	switch op {
	case curriculum.OpSubtraction:
		a := c.between(5, 25)
		b := c.upTo(a)
		return Problem{Question: fmt.Sprintf("%d - %d = ", a, b), Answer: formatInt(a - b), Kind: KindInteger}
	default:
		// Sums past ten so regrouping shows up.
		a, b := c.between(5, 20), c.between(5, 20)
		return Problem{Question: fmt.Sprintf("%d + %d = ", a, b), Answer: formatInt(a + b), Kind: KindInteger}
	}
}

func grade3Arithmetic(c *Context, op curriculum.OperationID, ptype curriculum.ProblemType) Problem {
	op = pickAllowed(c, op, curriculum.OpAddition, curriculum.OpSubtraction, curriculum.OpMultiplication, curriculum.OpDivision)
	if ptype == curriculum.TypeWord {
		return pickTemplate(c, wordTemplates[op])(c.withCeiling(100))
	}
	switch op {
	case curriculum.OpSubtraction:
		a := c.between(10, 100)
		b := c.upTo(a)
		return Problem{Question: fmt.Sprintf("%d - %d = ", a, b), Answer: formatInt(a - b), Kind: KindInteger}
	case curriculum.OpMultiplication:
		// Times tables through 10.
		a, b := c.upTo(10), c.upTo(10)
		return Problem{Question: fmt.Sprintf("%d × %d = ", a, b), Answer: formatInt(a * b), Kind: KindInteger}
	case curriculum.OpDivision:
		divisor := c.between(2, 10)
		quotient := c.upTo(10)
		return Problem{Question: fmt.Sprintf("%d ÷ %d = ", divisor*quotient, divisor), Answer: formatInt(quotient), Kind: KindInteger}
	default:
		a, b := c.between(10, 100), c.between(10, 100)
		return Problem{Question: fmt.Sprintf("%d + %d = ", a, b), Answer: formatInt(a + b), Kind: KindInteger}
	}
}

func grade4Arithmetic(c *Context, op curriculum.OperationID, ptype curriculum.ProblemType) Problem {
	op = pickAllowed(c, op, curriculum.OpAddition, curriculum.OpSubtraction, curriculum.OpMultiplication, curriculum.OpDivision)
	if ptype == curriculum.TypeWord {
		return pickTemplate(c, wordTemplates[op])(c.withCeiling(1000))
	}
	switch op {
	case curriculum.OpSubtraction:
		a := c.between(100, 1000)
		b := c.upTo(a)
		return Problem{Question: fmt.Sprintf("%d - %d = ", a, b), Answer: formatInt(a - b), Kind: KindInteger}
	case curriculum.OpMultiplication:
		// Two-digit by one-digit.
		a, b := c.between(10, 99), c.between(2, 9)
		return Problem{Question: fmt.Sprintf("%d × %d = ", a, b), Answer: formatInt(a * b), Kind: KindInteger}
	case curriculum.OpDivision:
		divisor := c.between(2, 12)
		quotient := c.between(2, 50)
		return Problem{Question: fmt.Sprintf("%d ÷ %d = ", divisor*quotient, divisor), Answer: formatInt(quotient), Kind: KindInteger}
	default:
		a, b := c.between(100, 1000), c.between(100, 1000)
		return Problem{Question: fmt.Sprintf("%d + %d = ", a, b), Answer: formatInt(a + b), Kind: KindInteger}
	}
}

func grade5Arithmetic(c *Context, op curriculum.OperationID, ptype curriculum.ProblemType) Problem {
	op = pickAllowed(c, op, curriculum.OpAddition, curriculum.OpSubtraction, curriculum.OpMultiplication, curriculum.OpDivision)
	if ptype == curriculum.TypeWord {
		return pickTemplate(c, wordTemplates[op])(c.withCeiling(5000))
	}
	switch op {
	case curriculum.OpSubtraction:
		a := c.between(500, 10000)
		b := c.upTo(a)
		return Problem{Question: fmt.Sprintf("%d - %d = ", a, b), Answer: formatInt(a - b), Kind: KindInteger}
	case curriculum.OpMultiplication:
		a, b := c.between(10, 99), c.between(10, 99)
		return Problem{Question: fmt.Sprintf("%d × %d = ", a, b), Answer: formatInt(a * b), Kind: KindInteger}
	case curriculum.OpDivision:
		divisor := c.between(2, 12)
		quotient := c.between(10, 100)
		return Problem{Question: fmt.Sprintf("%d ÷ %d = ", divisor*quotient, divisor), Answer: formatInt(quotient), Kind: KindInteger}
	default:
		if c.chance(0.3) {
			// One-decimal-place addition, tenths kept exact.
			a, b := c.between(10, 999), c.between(10, 999)
			return Problem{
				Question: fmt.Sprintf("%s + %s = ", formatTenths(a), formatTenths(b)),
				Answer:   formatTenths(a + b),
				Kind:     KindDecimal,
			}
		}
		a, b := c.between(500, 10000), c.between(500, 10000)
		return Problem{Question: fmt.Sprintf("%d + %d = ", a, b), Answer: formatInt(a + b), Kind: KindInteger}
	}
}

func grade6Arithmetic(c *Context, op curriculum.OperationID, ptype curriculum.ProblemType) Problem {
	op = pickAllowed(c, op, curriculum.OpAddition, curriculum.OpSubtraction, curriculum.OpMultiplication, curriculum.OpDivision)
	if ptype == curriculum.TypeWord {
		return pickTemplate(c, wordTemplates[op])(c.withCeiling(10000))
	}
	switch op {
	case curriculum.OpSubtraction:
		// Negative results appear at this grade.
		a, b := c.upTo(1000), c.upTo(1000)
		return Problem{Question: fmt.Sprintf("%d - %d = ", a, b), Answer: formatInt(a - b), Kind: KindInteger}
	case curriculum.OpMultiplication:
		if c.chance(0.25) {
			a, b := c.between(10, 999), c.between(2, 9)
			return Problem{
				Question: fmt.Sprintf("%s × %d = ", formatTenths(a), b),
				Answer:   formatTenths(a * b),
				Kind:     KindDecimal,
			}
		}
		a, b := c.between(10, 99), c.between(10, 99)
		return Problem{Question: fmt.Sprintf("%d × %d = ", a, b), Answer: formatInt(a * b), Kind: KindInteger}
	case curriculum.OpDivision:
		divisor := c.between(2, 25)
		quotient := c.between(10, 200)
		return Problem{Question: fmt.Sprintf("%d ÷ %d = ", divisor*quotient, divisor), Answer: formatInt(quotient), Kind: KindInteger}
	default:
		if c.chance(0.3) {
			a, b := c.between(100, 9999), c.between(100, 9999)
			return Problem{
				Question: fmt.Sprintf("%s + %s = ", formatTenths(a), formatTenths(b)),
				Answer:   formatTenths(a + b),
				Kind:     KindDecimal,
			}
		}
		a, b := c.between(1000, 10000), c.between(1000, 10000)
		return Problem{Question: fmt.Sprintf("%d + %d = ", a, b), Answer: formatInt(a + b), Kind: KindInteger}
	}
}

func grade7Arithmetic(c *Context, op curriculum.OperationID, ptype curriculum.ProblemType) Problem {
	op = pickAllowed(c, op, curriculum.OpAddition, curriculum.OpSubtraction, curriculum.OpMultiplication, curriculum.OpDivision)
	if ptype == curriculum.TypeWord {
		return pickTemplate(c, wordTemplates[op])(c.withCeiling(20000))
	}
	switch op {
	case curriculum.OpSubtraction:
		a, b := c.upTo(5000), c.upTo(5000)
		return Problem{Question: fmt.Sprintf("%d - %d = ", a, b), Answer: formatInt(a - b), Kind: KindInteger}
	case curriculum.OpMultiplication:
		a, b := c.between(10, 999), c.between(10, 99)
		return Problem{Question: fmt.Sprintf("%d × %d = ", a, b), Answer: formatInt(a * b), Kind: KindInteger}
	case curriculum.OpDivision:
		divisor := c.between(2, 50)
		quotient := c.between(10, 500)
		return Problem{Question: fmt.Sprintf("%d ÷ %d = ", divisor*quotient, divisor), Answer: formatInt(quotient), Kind: KindInteger}
	default:
		if c.chance(0.25) {
			// Signed addition.
			a, b := c.upTo(500)-250, c.upTo(500)-250
			return Problem{Question: fmt.Sprintf("%s + %s = ", signed(a), signedOperand(b)), Answer: formatInt(a + b), Kind: KindInteger}
		}
		a, b := c.between(1000, 100000), c.between(1000, 100000)
		return Problem{Question: fmt.Sprintf("%d + %d = ", a, b), Answer: formatInt(a + b), Kind: KindInteger}
	}
}

func grade8Arithmetic(c *Context, op curriculum.OperationID, ptype curriculum.ProblemType) Problem {
	op = pickAllowed(c, op, curriculum.OpAddition, curriculum.OpSubtraction, curriculum.OpMultiplication, curriculum.OpDivision)
	if ptype == curriculum.TypeWord {
		return pickTemplate(c, wordTemplates[op])(c.withCeiling(50000))
	}
	switch op {
	case curriculum.OpSubtraction:
		if c.chance(0.3) {
			a, b := c.between(100, 9999), c.between(100, 9999)
			return Problem{
				Question: fmt.Sprintf("%s - %s = ", formatHundredths(a), formatHundredths(b)),
				Answer:   formatHundredths(a - b),
				Kind:     KindDecimal,
			}
		}
		a, b := c.upTo(10000), c.upTo(10000)
		return Problem{Question: fmt.Sprintf("%d - %d = ", a, b), Answer: formatInt(a - b), Kind: KindInteger}
	case curriculum.OpMultiplication:
		if c.chance(0.3) {
			// Signed multiplication.
			a, b := c.upTo(24)-12, c.upTo(24)-12
			if a == 0 {
				a = 12
			}
			if b == 0 {
				b = -12
			}
			return Problem{Question: fmt.Sprintf("%s × %s = ", signed(a), signedOperand(b)), Answer: formatInt(a * b), Kind: KindInteger}
		}
		a, b := c.between(100, 999), c.between(10, 99)
		return Problem{Question: fmt.Sprintf("%d × %d = ", a, b), Answer: formatInt(a * b), Kind: KindInteger}
	case curriculum.OpDivision:
		divisor := c.between(2, 99)
		quotient := c.between(10, 999)
		return Problem{Question: fmt.Sprintf("%d ÷ %d = ", divisor*quotient, divisor), Answer: formatInt(quotient), Kind: KindInteger}
	default:
		if c.chance(0.3) {
			a, b := c.between(100, 99999), c.between(100, 99999)
			return Problem{
				Question: fmt.Sprintf("%s + %s = ", formatHundredths(a), formatHundredths(b)),
				Answer:   formatHundredths(a + b),
				Kind:     KindDecimal,
			}
		}
		a, b := c.between(10000, 100000), c.between(10000, 100000)
		return Problem{Question: fmt.Sprintf("%d + %d = ", a, b), Answer: formatInt(a + b), Kind: KindInteger}
	}
}

// pickAllowed resolves the requested operation against the grade table's
// supported set: "mixed" or an unsupported operation becomes a random
// member of the set, anything unrecognized defaults through
// normalizeOperation first.
func pickAllowed(c *Context, op curriculum.OperationID, allowed ...curriculum.OperationID) curriculum.OperationID {
	if op != curriculum.OpMixed {
		op = normalizeOperation(c, op)
		for _, a := range allowed {
			if op == a {
				return op
			}
		}
	}
	return allowed[c.Rand.Intn(len(allowed))]
}
