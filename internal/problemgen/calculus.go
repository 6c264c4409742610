package problemgen

import "fmt"

// Calculus templates. Derivatives of the standard functions come from a
// lookup table so the answers are canonical strings; limits are built so
// direct substitution or factoring resolves them.

var standardDerivatives = []struct {
	fn, deriv string
}{
	{"sin(x)", "cos(x)"},
	{"cos(x)", "-sin(x)"},
	{"e^x", "e^x"},
	{"ln(x)", "1/x"},
	{"tan(x)", "sec²(x)"},
	{"√x", "1/(2√x)"},
}

func calculusTemplates() []TemplateFn {
	return []TemplateFn{
		calcPowerRule,
		calcStandardDerivative,
		calcPolynomialDerivative,
		calcDerivativeAtPoint,
		calcLimitSubstitution,
		calcLimitFactored,
		calcLimitAtInfinity,
		calcAntiderivativePower,
		calcSecondDerivative,
		calcTangentSlope,
	}
}

func calcPowerRule(c *Context) Problem {
	n := c.between(2, 9)
	return Problem{
		Question: fmt.Sprintf("Find the derivative of x^%d.", n),
		Answer:   fmt.Sprintf("%dx^%d", n, n-1), Kind: KindText,
	}
}

func calcStandardDerivative(c *Context) Problem {
	d := standardDerivatives[c.Rand.Intn(len(standardDerivatives))]
	return Problem{
		Question: fmt.Sprintf("Find the derivative of %s.", d.fn),
		Answer:   d.deriv, Kind: KindText,
	}
}

func calcPolynomialDerivative(c *Context) Problem {
	a, b, k := c.between(2, 9), c.between(2, 9), c.between(1, 20)
	return Problem{
		Question: fmt.Sprintf("Find the derivative of %dx² + %dx + %d.", a, b, k),
		Answer:   fmt.Sprintf("%dx + %d", 2*a, b), Kind: KindText,
	}
}

func calcDerivativeAtPoint(c *Context) Problem {
	a, x := c.between(2, 6), c.between(1, 5)
	// f(x) = a·x², f'(x) = 2a·x
	return Problem{
		Question: fmt.Sprintf("If f(x) = %dx², what is f'(%d)?", a, x),
		Answer:   formatInt(2 * a * x), Kind: KindInteger,
	}
}

func calcLimitSubstitution(c *Context) Problem {
	a, b, x := c.between(1, 8), c.between(1, 15), c.between(1, 6)
	return Problem{
		Question: fmt.Sprintf("Evaluate: lim(x→%d) of %dx + %d", x, a, b),
		Answer:   formatInt(a*x + b), Kind: KindInteger,
	}
}

// calcLimitFactored is the (x² − a²)/(x − a) removable singularity; the
// limit is 2a.
func calcLimitFactored(c *Context) Problem {
	a := c.between(2, 9)
	return Problem{
		Question: fmt.Sprintf("Evaluate: lim(x→%d) of (x² - %d)/(x - %d)", a, a*a, a),
		Answer:   formatInt(2 * a), Kind: KindInteger,
	}
}

func calcLimitAtInfinity(c *Context) Problem {
	k := c.between(2, 9)
	b := c.between(1, 6)
	a := k * b // leading coefficients set the limit
	return Problem{
		Question: fmt.Sprintf("Evaluate: lim(x→∞) of (%dx² + %d)/(%dx² + %d)", a, c.between(1, 9), b, c.between(1, 9)),
		Answer:   formatInt(k), Kind: KindInteger,
	}
}

func calcAntiderivativePower(c *Context) Problem {
	n := c.between(1, 8)
	coeff := n + 1
	return Problem{
		Question: fmt.Sprintf("Find the antiderivative of %dx^%d. (Use C for the constant.)", coeff, n),
		Answer:   fmt.Sprintf("x^%d + C", n+1), Kind: KindText,
	}
}

func calcSecondDerivative(c *Context) Problem {
	a, b := c.between(2, 7), c.between(1, 9)
	return Problem{
		Question: fmt.Sprintf("Find the second derivative of %dx³ + %dx.", a, b),
		Answer:   fmt.Sprintf("%dx", 6*a), Kind: KindText,
	}
}

func calcTangentSlope(c *Context) Problem {
	a, x := c.between(1, 5), c.between(1, 5)
	// y = x² + a·x has slope 2x + a
	return Problem{
		Question: fmt.Sprintf("What is the slope of the tangent line to y = x² + %dx at x = %d?", a, x),
		Answer:   formatInt(2*x + a), Kind: KindInteger,
	}
}
