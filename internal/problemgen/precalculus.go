package problemgen

import "fmt"

// Precalculus templates: exponentials and logs with integer results,
// arithmetic and geometric sequences, function composition and inverses,
// vectors from Pythagorean triples, conics, and complex arithmetic.

func precalcTemplates() []TemplateFn {
	return []TemplateFn{
		precalcLogEval,
		precalcExpSolve,
		precalcArithmeticSequence,
		precalcGeometricSequence,
		precalcArithmeticSum,
		precalcFunctionComposition,
		precalcInverseFunction,
		precalcVectorMagnitude,
		precalcCircleRadius,
		precalcComplexAdd,
		precalcComplexMultiplyI,
		precalcSigmaNotation,
	}
}

// precalcLogEval asks log_b(b^k) with the power precomputed.
func precalcLogEval(c *Context) Problem {
	base := []int{2, 3, 5, 10}[c.Rand.Intn(4)]
	k := c.between(1, 4)
	if base == 2 {
		k = c.between(1, 8)
	}
	return Problem{
		Question: fmt.Sprintf("log base %d of %d = ", base, ipow(base, k)),
		Answer:   formatInt(k), Kind: KindInteger,
	}
}

func precalcExpSolve(c *Context) Problem {
	base := []int{2, 3, 4, 5}[c.Rand.Intn(4)]
	k := c.between(2, 5)
	return Problem{
		Question: fmt.Sprintf("Solve for x: %d^x = %d", base, ipow(base, k)),
		Answer:   fmt.Sprintf("x = %d", k), Kind: KindText,
	}
}

func precalcArithmeticSequence(c *Context) Problem {
	first := c.between(1, 20)
	diff := c.between(2, 9)
	n := c.between(5, 12)
	return Problem{
		Question: fmt.Sprintf("An arithmetic sequence starts at %d with common difference %d. What is the %s term?", first, diff, ordinal(n)),
		Answer:   formatInt(first + (n-1)*diff), Kind: KindInteger,
	}
}

func precalcGeometricSequence(c *Context) Problem {
	first := c.between(1, 5)
	ratio := c.between(2, 3)
	n := c.between(3, 6)
	return Problem{
		Question: fmt.Sprintf("A geometric sequence starts at %d with common ratio %d. What is the %s term?", first, ratio, ordinal(n)),
		Answer:   formatInt(first * ipow(ratio, n-1)), Kind: KindInteger,
	}
}

func precalcArithmeticSum(c *Context) Problem {
	n := c.between(5, 20)
	return Problem{
		Question: fmt.Sprintf("What is the sum of the first %d positive integers?", n),
		Answer:   formatInt(n * (n + 1) / 2), Kind: KindInteger,
	}
}

func precalcFunctionComposition(c *Context) Problem {
	a, b, x := c.between(2, 6), c.between(1, 9), c.between(1, 5)
	// f(x) = a·x, g(x) = x + b
	return Problem{
		Question: fmt.Sprintf("If f(x) = %dx and g(x) = x + %d, what is f(g(%d))?", a, b, x),
		Answer:   formatInt(a * (x + b)), Kind: KindInteger,
	}
}

func precalcInverseFunction(c *Context) Problem {
	a := c.between(2, 9)
	b := a * c.between(1, 9) // keep b/a whole so the inverse has integer form
	return Problem{
		Question: fmt.Sprintf("Find the inverse of f(x) = %dx + %d.", a, b),
		Answer:   fmt.Sprintf("f⁻¹(x) = (x - %d)/%d", b, a), Kind: KindText,
	}
}

func precalcVectorMagnitude(c *Context) Problem {
	t := pythagoreanTriples[c.Rand.Intn(len(pythagoreanTriples))]
	x, y := t[0], t[1]
	if c.chance(0.5) {
		x, y = y, x
	}
	return Problem{
		Question: fmt.Sprintf("Find the magnitude of the vector ⟨%d, %d⟩.", x, y),
		Answer:   formatInt(t[2]), Kind: KindInteger,
	}
}

func precalcCircleRadius(c *Context) Problem {
	r := c.between(2, 12)
	return Problem{
		Question: fmt.Sprintf("What is the radius of the circle x² + y² = %d?", r*r),
		Answer:   formatInt(r), Kind: KindInteger,
	}
}

func precalcComplexAdd(c *Context) Problem {
	a, b := c.between(1, 9), c.between(1, 9)
	d, e := c.between(1, 9), c.between(1, 9)
	return Problem{
		Question: fmt.Sprintf("(%d + %di) + (%d + %di) = ", a, b, d, e),
		Answer:   fmt.Sprintf("%d + %di", a+d, b+e), Kind: KindText,
	}
}

// precalcComplexMultiplyI cycles i through its powers.
func precalcComplexMultiplyI(c *Context) Problem {
	n := c.between(2, 12)
	answers := []string{"1", "i", "-1", "-i"}
	return Problem{
		Question: fmt.Sprintf("Simplify i^%d.", n),
		Answer:   answers[n%4], Kind: KindText,
	}
}

func precalcSigmaNotation(c *Context) Problem {
	n := c.between(3, 8)
	k := c.between(2, 5)
	// sum of k·j for j = 1..n
	return Problem{
		Question: fmt.Sprintf("Evaluate the sum of %dj for j = 1 to %d.", k, n),
		Answer:   formatInt(k * n * (n + 1) / 2), Kind: KindInteger,
	}
}
