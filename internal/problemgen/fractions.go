package problemgen

import "fmt"

// Fraction topic shapes. All arithmetic is done on integer numerators and
// denominators; answers render reduced via formatFraction so "4/8" never
// appears as an answer.

func fractionTemplates() []TemplateFn {
	return []TemplateFn{
		fracSameDenomAdd,
		fracSameDenomSub,
		fracCrossDenomAdd,
		fracCrossDenomSub,
		fracMultiply,
		fracDivide,
		fracSimplify,
		fracEquivalent,
		fracCompare,
		fracMixedToImproper,
		fracImproperToMixed,
		fracOfNumber,
		fracToDecimal,
		fracFromDecimal,
		fracReciprocal,
		fracWordShare,
	}
}

func fracSameDenomAdd(c *Context) Problem {
	d := c.between(3, 12)
	a := c.upTo(d - 1)
	b := c.upTo(d - 1)
	return Problem{
		Question: fmt.Sprintf("%d/%d + %d/%d = ", a, d, b, d),
		Answer:   formatFraction(a+b, d), Kind: KindFraction,
	}
}

func fracSameDenomSub(c *Context) Problem {
	d := c.between(3, 12)
	a := c.between(2, d-1)
	b := c.upTo(a)
	return Problem{
		Question: fmt.Sprintf("%d/%d - %d/%d = ", a, d, b, d),
		Answer:   formatFraction(a-b, d), Kind: KindFraction,
	}
}

func fracCrossDenomAdd(c *Context) Problem {
	d1 := c.between(2, 8)
	d2 := c.between(2, 8)
	if d2 == d1 {
		d2++
	}
	a := c.upTo(d1 - 1)
	b := c.upTo(d2 - 1)
	return Problem{
		Question: fmt.Sprintf("%d/%d + %d/%d = ", a, d1, b, d2),
		Answer:   formatFraction(a*d2+b*d1, d1*d2), Kind: KindFraction,
	}
}

// fracCrossDenomSub builds the minuend as difference-plus-subtrahend so the
// result is always positive.
func fracCrossDenomSub(c *Context) Problem {
	d1 := c.between(2, 8)
	d2 := c.between(2, 8)
	if d2 == d1 {
		d2++
	}
	diffN := c.upTo(d1 - 1)
	subN := c.upTo(d2 - 1)
	// minuend = diff + subtrahend, over the common denominator.
	minN := diffN*d2 + subN*d1
	minD := d1 * d2
	return Problem{
		Question: fmt.Sprintf("%d/%d - %d/%d = ", minN, minD, subN, d2),
		Answer:   formatFraction(diffN, d1), Kind: KindFraction,
	}
}

func fracMultiply(c *Context) Problem {
	d1, d2 := c.between(2, 9), c.between(2, 9)
	a, b := c.upTo(d1-1), c.upTo(d2-1)
	return Problem{
		Question: fmt.Sprintf("%d/%d × %d/%d = ", a, d1, b, d2),
		Answer:   formatFraction(a*b, d1*d2), Kind: KindFraction,
	}
}

func fracDivide(c *Context) Problem {
	d1, d2 := c.between(2, 9), c.between(2, 9)
	a, b := c.upTo(d1-1), c.upTo(d2-1)
	return Problem{
		Question: fmt.Sprintf("%d/%d ÷ %d/%d = ", a, d1, b, d2),
		Answer:   formatFraction(a*d2, d1*b), Kind: KindFraction,
	}
}

func fracSimplify(c *Context) Problem {
	d := c.between(2, 9)
	a := c.upTo(d - 1)
	g := gcd(a, d)
	k := c.between(2, 6)
	return Problem{
		Question: fmt.Sprintf("Simplify %d/%d to lowest terms.", a*k, d*k),
		Answer:   formatFraction(a/g, d/g), Kind: KindFraction,
	}
}

func fracEquivalent(c *Context) Problem {
	d := c.between(2, 9)
	a := c.upTo(d - 1)
	k := c.between(2, 8)
	return Problem{
		Question: fmt.Sprintf("%d/%d = ?/%d", a, d, d*k),
		Answer:   formatInt(a * k), Kind: KindInteger,
	}
}

func fracCompare(c *Context) Problem {
	d1, d2 := c.between(2, 9), c.between(2, 9)
	a, b := c.upTo(d1-1), c.upTo(d2-1)
	// Cross-multiply to compare a/d1 with b/d2.
	left, right := a*d2, b*d1
	answer := "they are equal"
	if left > right {
		answer = fmt.Sprintf("%d/%d", a, d1)
	} else if right > left {
		answer = fmt.Sprintf("%d/%d", b, d2)
	}
	return Problem{
		Question: fmt.Sprintf("Which fraction is larger: %d/%d or %d/%d?", a, d1, b, d2),
		Answer:   answer, Kind: KindText,
	}
}

func fracMixedToImproper(c *Context) Problem {
	whole := c.between(1, 9)
	d := c.between(2, 9)
	a := c.upTo(d - 1)
	return Problem{
		Question: fmt.Sprintf("Write %d %d/%d as an improper fraction.", whole, a, d),
		Answer:   fmt.Sprintf("%d/%d", whole*d+a, d), Kind: KindFraction,
	}
}

func fracImproperToMixed(c *Context) Problem {
	d := c.between(2, 9)
	whole := c.between(1, 9)
	a := c.upTo(d - 1)
	n := whole*d + a
	return Problem{
		Question: fmt.Sprintf("Write %d/%d as a mixed number.", n, d),
		Answer:   fmt.Sprintf("%d %s", whole, formatFraction(a, d)), Kind: KindText,
	}
}

func fracOfNumber(c *Context) Problem {
	d := c.between(2, 9)
	a := c.upTo(d - 1)
	k := c.between(2, 12)
	whole := d * k
	return Problem{
		Question: fmt.Sprintf("What is %d/%d of %d?", a, d, whole),
		Answer:   formatInt(a * k), Kind: KindInteger,
	}
}

// cleanDenominators terminate as decimals without rounding.
var cleanDenominators = []int{2, 4, 5, 8, 10, 20, 25, 50}

func fracToDecimal(c *Context) Problem {
	d := cleanDenominators[c.Rand.Intn(len(cleanDenominators))]
	a := c.upTo(d - 1)
	return Problem{
		Question: fmt.Sprintf("Write %d/%d as a decimal.", a, d),
		Answer:   formatDecimal(float64(a) / float64(d)), Kind: KindDecimal,
	}
}

func fracFromDecimal(c *Context) Problem {
	if c.chance(0.5) {
		tenths := c.upTo(9)
		return Problem{
			Question: fmt.Sprintf("Write 0.%d as a fraction in lowest terms.", tenths),
			Answer:   formatFraction(tenths, 10), Kind: KindFraction,
		}
	}
	hundredths := c.between(1, 99)
	return Problem{
		Question: fmt.Sprintf("Write 0.%02d as a fraction in lowest terms.", hundredths),
		Answer:   formatFraction(hundredths, 100), Kind: KindFraction,
	}
}

func fracReciprocal(c *Context) Problem {
	d := c.between(2, 12)
	a := c.upTo(d - 1)
	g := gcd(a, d)
	a, d = a/g, d/g
	return Problem{
		Question: fmt.Sprintf("What is the reciprocal of %d/%d?", a, d),
		Answer:   fmt.Sprintf("%d/%d", d, a), Kind: KindFraction,
	}
}

func fracWordShare(c *Context) Problem {
	name := c.Words.Name()
	d := []int{2, 3, 4, 6, 8}[c.Rand.Intn(5)]
	a := c.upTo(d - 1)
	k := c.between(2, 6)
	total := d * k
	item, _ := c.Words.Item()
	return Problem{
		Question: fmt.Sprintf("%s has %d %s and gives %d/%d of them away. How many %s did %s give away?",
			name, total, item, a, d, item, name),
		Answer: formatInt(a * k), Kind: KindInteger,
	}
}
