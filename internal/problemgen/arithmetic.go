package problemgen

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/mathsheets/internal/curriculum"
)

// altShapeRate is the fraction of generic arithmetic equations rendered in
// an alternate shape (missing operand, operand chain) instead of the
// canonical "a OP b = " form.
const altShapeRate = 0.3

// genericArithmetic is the difficulty-scaled arithmetic path used when no
// grade-specific generator or topic filter applies.
func genericArithmetic(c *Context, op curriculum.OperationID, ptype curriculum.ProblemType) Problem {
	op = normalizeOperation(c, op)

	if ptype == curriculum.TypeWord {
		return pickTemplate(c, wordTemplates[op])(c)
	}
	if c.chance(altShapeRate) {
		return pickTemplate(c, altEquationShapes(op))(c)
	}
	return pickTemplate(c, equationTemplates[op])(c)
}

// normalizeOperation resolves "mixed" to a concrete operation the grade
// allows and defaults anything unrecognized to addition with a warning.
func normalizeOperation(c *Context, op curriculum.OperationID) curriculum.OperationID {
	if op == curriculum.OpMixed {
		ops := concreteOperations(c.Grade)
		return ops[c.Rand.Intn(len(ops))]
	}
	switch op {
	case curriculum.OpAddition, curriculum.OpSubtraction, curriculum.OpMultiplication, curriculum.OpDivision:
		return op
	default:
		c.Log.Warn("unrecognized operation, defaulting to addition",
			zap.String("operation", string(op)))
		return curriculum.OpAddition
	}
}

// concreteOperations returns the grade's allowed operations minus "mixed".
func concreteOperations(g curriculum.GradeProfile) []curriculum.OperationID {
	var ops []curriculum.OperationID
	for _, op := range g.AllowedOperations {
		if op != curriculum.OpMixed {
			ops = append(ops, op)
		}
	}
	if len(ops) == 0 {
		ops = []curriculum.OperationID{curriculum.OpAddition}
	}
	return ops
}

// mulOperandCeiling keeps products proportionate to the grade's range:
// multiplication operands draw from a tenth of the ceiling, capped at 100.
func mulOperandCeiling(ceiling int) int {
	m := ceiling / 10
	if m > 100 {
		m = 100
	}
	if m < 1 {
		m = 1
	}
	return m
}

// divisorCeiling bounds divisors to keep quotients worksheet-sized.
func divisorCeiling(ceiling int) int {
	d := ceiling / 10
	if d > 12 {
		d = 12
	}
	if d < 2 {
		d = 2
	}
	return d
}

// addPair draws two addition operands in [1, ceiling].
func addPair(c *Context) (int, int) {
	return c.upTo(c.Ceiling), c.upTo(c.Ceiling)
}

// subPair draws subtraction operands with minuend >= subtrahend, by
// construction rather than rejection.
func subPair(c *Context) (int, int) {
	a, b := c.upTo(c.Ceiling), c.upTo(c.Ceiling)
	if b > a {
		a, b = b, a
	}
	return a, b
}

// mulPair draws multiplication operands from the proportionate range.
func mulPair(c *Context) (int, int) {
	m := mulOperandCeiling(c.Ceiling)
	return c.upTo(m), c.upTo(m)
}

// divParts constructs a clean division: dividend = divisor * quotient.
func divParts(c *Context) (dividend, divisor, quotient int) {
	divisor = c.between(2, divisorCeiling(c.Ceiling))
	maxQ := c.Ceiling / divisor
	if maxQ < 1 {
		maxQ = 1
	}
	if maxQ > 100 {
		maxQ = 100
	}
	quotient = c.upTo(maxQ)
	return divisor * quotient, divisor, quotient
}

// Canonical "a OP b = " shapes.

func eqAddCanonical(c *Context) Problem {
	a, b := addPair(c)
	return Problem{Question: fmt.Sprintf("%d + %d = ", a, b), Answer: formatInt(a + b), Kind: KindInteger}
}

func eqSubCanonical(c *Context) Problem {
	a, b := subPair(c)
	return Problem{Question: fmt.Sprintf("%d - %d = ", a, b), Answer: formatInt(a - b), Kind: KindInteger}
}

func eqMulCanonical(c *Context) Problem {
	a, b := mulPair(c)
	return Problem{Question: fmt.Sprintf("%d × %d = ", a, b), Answer: formatInt(a * b), Kind: KindInteger}
}

func eqDivCanonical(c *Context) Problem {
	dividend, divisor, quotient := divParts(c)
	return Problem{Question: fmt.Sprintf("%d ÷ %d = ", dividend, divisor), Answer: formatInt(quotient), Kind: KindInteger}
}

// Alternate shapes: missing operands and operand chains. These add apparent
// variety without new vocabulary.

func altEquationShapes(op curriculum.OperationID) []TemplateFn {
	switch op {
	case curriculum.OpAddition:
		return []TemplateFn{eqAddMissingFirst, eqAddMissingSecond, eqAddChain, eqAddSubChain}
	case curriculum.OpSubtraction:
		return []TemplateFn{eqSubMissingFirst, eqSubMissingSecond, eqAddSubChain}
	case curriculum.OpMultiplication:
		return []TemplateFn{eqMulMissingFactor, eqMulChain}
	case curriculum.OpDivision:
		return []TemplateFn{eqDivMissingDividend, eqDivMissingDivisor}
	default:
		return []TemplateFn{eqAddChain}
	}
}

func eqAddMissingFirst(c *Context) Problem {
	a, b := addPair(c)
	return Problem{Question: fmt.Sprintf("___ + %d = %d", b, a+b), Answer: formatInt(a), Kind: KindInteger}
}

func eqAddMissingSecond(c *Context) Problem {
	a, b := addPair(c)
	return Problem{Question: fmt.Sprintf("%d + ___ = %d", a, a+b), Answer: formatInt(b), Kind: KindInteger}
}

func eqAddChain(c *Context) Problem {
	a, b, d := c.upTo(c.Ceiling), c.upTo(c.Ceiling), c.upTo(c.Ceiling)
	return Problem{Question: fmt.Sprintf("%d + %d + %d = ", a, b, d), Answer: formatInt(a + b + d), Kind: KindInteger}
}

// eqAddSubChain mixes operators in one chain, built so intermediate and
// final values never go negative.
func eqAddSubChain(c *Context) Problem {
	a, b := addPair(c)
	d := c.upTo(a + b)
	return Problem{Question: fmt.Sprintf("%d + %d - %d = ", a, b, d), Answer: formatInt(a + b - d), Kind: KindInteger}
}

func eqSubMissingFirst(c *Context) Problem {
	a, b := subPair(c)
	return Problem{Question: fmt.Sprintf("___ - %d = %d", b, a-b), Answer: formatInt(a), Kind: KindInteger}
}

func eqSubMissingSecond(c *Context) Problem {
	a, b := subPair(c)
	return Problem{Question: fmt.Sprintf("%d - ___ = %d", a, a-b), Answer: formatInt(b), Kind: KindInteger}
}

func eqMulMissingFactor(c *Context) Problem {
	a, b := mulPair(c)
	return Problem{Question: fmt.Sprintf("%d × ___ = %d", a, a*b), Answer: formatInt(b), Kind: KindInteger}
}

func eqMulChain(c *Context) Problem {
	m := mulOperandCeiling(c.Ceiling)
	if m > 12 {
		m = 12
	}
	a, b, d := c.upTo(m), c.upTo(m), c.upTo(m)
	return Problem{Question: fmt.Sprintf("%d × %d × %d = ", a, b, d), Answer: formatInt(a * b * d), Kind: KindInteger}
}

func eqDivMissingDividend(c *Context) Problem {
	dividend, divisor, quotient := divParts(c)
	return Problem{Question: fmt.Sprintf("___ ÷ %d = %d", divisor, quotient), Answer: formatInt(dividend), Kind: KindInteger}
}

func eqDivMissingDivisor(c *Context) Problem {
	dividend, divisor, quotient := divParts(c)
	return Problem{Question: fmt.Sprintf("%d ÷ ___ = %d", dividend, quotient), Answer: formatInt(divisor), Kind: KindInteger}
}
