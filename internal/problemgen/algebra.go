package problemgen

import "fmt"

// Algebra templates. Solutions are integers by construction: equations are
// built outward from a chosen root, never solved after the fact.

func algebraEquationTemplates() []TemplateFn {
	return []TemplateFn{
		algLinearOneStep,
		algLinearTwoStep,
		algLinearBothSides,
		algQuadraticExpand,
		algQuadraticFactor,
		algQuadraticSolve,
		algEvaluateExpression,
		algCombineLikeTerms,
		algExponentProduct,
		algExponentQuotient,
		algRadicalSimplify,
		algRationalSimplify,
		algAbsoluteValue,
	}
}

func algLinearOneStep(c *Context) Problem {
	x := c.between(1, 20)
	a := c.between(2, 12)
	return Problem{
		Question: fmt.Sprintf("Solve for x:  %dx = %d", a, a*x),
		Answer:   fmt.Sprintf("x = %d", x), Kind: KindText,
	}
}

func algLinearTwoStep(c *Context) Problem {
	x := c.between(1, 15)
	a, b := c.between(2, 12), c.between(1, 30)
	return Problem{
		Question: fmt.Sprintf("Solve for x:  %dx + %d = %d", a, b, a*x+b),
		Answer:   fmt.Sprintf("x = %d", x), Kind: KindText,
	}
}

func algLinearBothSides(c *Context) Problem {
	x := c.between(1, 12)
	a := c.between(3, 9)
	b := c.between(1, a-1) // keep the x coefficients distinct
	d1 := c.between(1, 20)
	d2 := d1 + (a-b)*x
	return Problem{
		Question: fmt.Sprintf("Solve for x:  %dx + %d = %dx + %d", a, d1, b, d2),
		Answer:   fmt.Sprintf("x = %d", x), Kind: KindText,
	}
}

func algQuadraticExpand(c *Context) Problem {
	a, b := c.between(1, 9), c.between(1, 9)
	return Problem{
		Question: fmt.Sprintf("Expand: (x + %d)(x + %d)", a, b),
		Answer:   fmt.Sprintf("x² + %dx + %d", a+b, a*b), Kind: KindText,
	}
}

func algQuadraticFactor(c *Context) Problem {
	a, b := c.between(1, 9), c.between(1, 9)
	return Problem{
		Question: fmt.Sprintf("Factor: x² + %dx + %d", a+b, a*b),
		Answer:   fmt.Sprintf("(x + %d)(x + %d)", minInt(a, b), maxInt(a, b)), Kind: KindText,
	}
}

func algQuadraticSolve(c *Context) Problem {
	// Roots r and -s give x² + (s-r)... keep both roots positive-form:
	// (x - r)(x - s) = x² - (r+s)x + rs.
	r, s := c.between(1, 9), c.between(1, 9)
	if s < r {
		r, s = s, r
	}
	q := fmt.Sprintf("Solve: x² - %dx + %d = 0", r+s, r*s)
	var ans string
	if r == s {
		ans = fmt.Sprintf("x = %d", r)
	} else {
		ans = fmt.Sprintf("x = %d or x = %d", r, s)
	}
	return Problem{Question: q, Answer: ans, Kind: KindText}
}

func algEvaluateExpression(c *Context) Problem {
	x := c.between(1, 10)
	a, b := c.between(2, 9), c.between(1, 20)
	return Problem{
		Question: fmt.Sprintf("Evaluate %dx + %d when x = %d.", a, b, x),
		Answer:   formatInt(a*x + b), Kind: KindInteger,
	}
}

func algCombineLikeTerms(c *Context) Problem {
	a, b := c.between(2, 9), c.between(1, 9)
	d, e := c.between(1, 9), c.between(1, 9)
	return Problem{
		Question: fmt.Sprintf("Simplify: %dx + %d + %dx + %d", a, b, d, e),
		Answer:   fmt.Sprintf("%dx + %d", a+d, b+e), Kind: KindText,
	}
}

func algExponentProduct(c *Context) Problem {
	m, n := c.between(2, 6), c.between(2, 6)
	return Problem{
		Question: fmt.Sprintf("Simplify: x^%d · x^%d", m, n),
		Answer:   fmt.Sprintf("x^%d", m+n), Kind: KindText,
	}
}

func algExponentQuotient(c *Context) Problem {
	n := c.between(2, 5)
	m := n + c.between(1, 5)
	return Problem{
		Question: fmt.Sprintf("Simplify: x^%d ÷ x^%d", m, n),
		Answer:   fmt.Sprintf("x^%d", m-n), Kind: KindText,
	}
}

func algRadicalSimplify(c *Context) Problem {
	// √(a²b) = a√b for square-free b.
	a := c.between(2, 6)
	b := []int{2, 3, 5, 6, 7}[c.Rand.Intn(5)]
	return Problem{
		Question: fmt.Sprintf("Simplify: √%d", a*a*b),
		Answer:   fmt.Sprintf("%d√%d", a, b), Kind: KindText,
	}
}

func algRationalSimplify(c *Context) Problem {
	a := c.between(1, 9)
	return Problem{
		Question: fmt.Sprintf("Simplify: (x² - %d) / (x + %d)", a*a, a),
		Answer:   fmt.Sprintf("x - %d", a), Kind: KindText,
	}
}

func algAbsoluteValue(c *Context) Problem {
	center, dist := c.between(1, 10), c.between(1, 10)
	return Problem{
		Question: fmt.Sprintf("Solve: |x - %d| = %d", center, dist),
		Answer:   fmt.Sprintf("x = %d or x = %d", center+dist, center-dist), Kind: KindText,
	}
}

func algebraWordTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			x := c.between(2, 20)
			a, b := c.between(2, 9), c.between(1, 30)
			return Problem{
				Question: fmt.Sprintf("%d times a number plus %d equals %d. What is the number?",
					a, b, a*x+b),
				Answer: formatInt(x), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			x := c.between(5, 40)
			d := c.between(1, x-1)
			return Problem{
				Question: fmt.Sprintf("The sum of two numbers is %d. One is %d more than the other. What is the larger number?",
					2*x-d, d),
				Answer: formatInt(x), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			n1, n2 := c.Words.TwoNames()
			x := c.between(3, 25)
			d := c.between(1, x-1)
			return Problem{
				Question: fmt.Sprintf("%s is %d years older than %s. Their ages add up to %d. How old is %s?",
					n1, d, n2, 2*x+d, n1),
				Answer: formatInt(x + d), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			item, _ := c.Words.Item()
			per, fee := c.between(2, 9), c.between(1, 20)
			count := c.between(2, 12)
			return Problem{
				Question: fmt.Sprintf("%s pays a $%d fee plus $%d for each of the %s bought. The total is $%d. How many were bought?",
					name, fee, per, item, fee+per*count),
				Answer: formatInt(count), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			x := c.between(2, 25)
			return Problem{
				Question: fmt.Sprintf("The square of a positive number is %d. What is the number?", x*x),
				Answer:   formatInt(x), Kind: KindInteger,
			}
		},
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
