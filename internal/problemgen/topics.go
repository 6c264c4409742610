package problemgen

import (
	"fmt"
	"strings"
)

// Remaining arithmetic topic families. Each function returns the topic's
// shape table; shapes are small and self-contained.

func percentageTemplates() []TemplateFn {
	cleanPercents := []int{5, 10, 20, 25, 50, 75}
	return []TemplateFn{
		func(c *Context) Problem {
			p := cleanPercents[c.Rand.Intn(len(cleanPercents))]
			base := 20 * c.between(1, 25)
			return Problem{
				Question: fmt.Sprintf("What is %d%% of %d?", p, base),
				Answer:   formatDecimal(float64(p) / 100 * float64(base)), Kind: KindDecimal,
			}
		},
		func(c *Context) Problem {
			// "a is what percent of b": construct a from a clean percent.
			p := cleanPercents[c.Rand.Intn(len(cleanPercents))]
			base := 20 * c.between(1, 10)
			part := p * base / 100
			return Problem{
				Question: fmt.Sprintf("%d is what percent of %d?", part, base),
				Answer:   fmt.Sprintf("%d%%", p), Kind: KindText,
			}
		},
		func(c *Context) Problem {
			p := []int{10, 20, 25, 50}[c.Rand.Intn(4)]
			price := 4 * c.between(2, 50)
			discount := p * price / 100
			return Problem{
				Question: fmt.Sprintf("A jacket costs $%d and is on sale at %d%% off. What is the sale price?", price, p),
				Answer:   formatInt(price - discount), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			p := []int{10, 20, 25, 50, 100}[c.Rand.Intn(5)]
			base := 4 * c.between(2, 50)
			return Problem{
				Question: fmt.Sprintf("A number increases from %d by %d%%. What is the new value?", base, p),
				Answer:   formatInt(base + p*base/100), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			// Reverse percent: "x% of what number is y".
			p := []int{10, 20, 25, 50}[c.Rand.Intn(4)]
			whole := 20 * c.between(1, 20)
			part := p * whole / 100
			return Problem{
				Question: fmt.Sprintf("%d%% of what number is %d?", p, part),
				Answer:   formatInt(whole), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			d := []int{2, 4, 5, 10, 20, 25}[c.Rand.Intn(6)]
			a := c.upTo(d - 1)
			return Problem{
				Question: fmt.Sprintf("Write %d/%d as a percent.", a, d),
				Answer:   fmt.Sprintf("%s%%", formatDecimal(float64(a)/float64(d)*100)), Kind: KindText,
			}
		},
	}
}

func ratioTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			g := c.between(2, 9)
			a, b := g*c.between(1, 9), g*c.between(1, 9)
			d := gcd(a, b)
			return Problem{
				Question: fmt.Sprintf("Simplify the ratio %d:%d.", a, b),
				Answer:   fmt.Sprintf("%d:%d", a/d, b/d), Kind: KindText,
			}
		},
		func(c *Context) Problem {
			// Proportion a/b = x/(b*k): x = a*k by construction.
			a, b := c.between(1, 9), c.between(2, 9)
			k := c.between(2, 9)
			return Problem{
				Question: fmt.Sprintf("Solve for x:  %d/%d = x/%d", a, b, b*k),
				Answer:   formatInt(a * k), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			count := c.between(2, 12)
			unit := c.between(2, 9)
			return Problem{
				Question: fmt.Sprintf("%d %s cost $%d. What is the cost of one?", count, item, count*unit),
				Answer:   formatInt(unit), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := c.between(1, 6), c.between(1, 6)
			k := c.between(2, 8)
			return Problem{
				Question: fmt.Sprintf("A recipe uses %d cups of flour for every %d cups of sugar. How much flour is needed with %d cups of sugar?",
					a, b, b*k),
				Answer: formatInt(a * k), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			n1, n2 := c.Words.TwoNames()
			a, b := c.between(1, 9), c.between(1, 9)
			k := c.between(2, 9)
			return Problem{
				Question: fmt.Sprintf("%s and %s share %d marbles in the ratio %d:%d. How many does %s get?",
					n1, n2, (a+b)*k, a, b, n1),
				Answer: formatInt(a * k), Kind: KindInteger,
			}
		},
	}
}

func integerTemplates() []TemplateFn {
	signedDraw := func(c *Context) int {
		n := c.between(1, 20)
		if c.chance(0.5) {
			return -n
		}
		return n
	}
	return []TemplateFn{
		func(c *Context) Problem {
			a, b := signedDraw(c), signedDraw(c)
			return Problem{
				Question: fmt.Sprintf("%s + %s = ", signed(a), signedOperand(b)),
				Answer:   formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := signedDraw(c), signedDraw(c)
			return Problem{
				Question: fmt.Sprintf("%s - %s = ", signed(a), signedOperand(b)),
				Answer:   formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := signedDraw(c), signedDraw(c)
			return Problem{
				Question: fmt.Sprintf("%s × %s = ", signed(a), signedOperand(b)),
				Answer:   formatInt(a * b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			// Signed division built from signed quotient and divisor.
			q, d := signedDraw(c), c.between(2, 9)
			if c.chance(0.5) {
				d = -d
			}
			return Problem{
				Question: fmt.Sprintf("%s ÷ %s = ", signed(q*d), signedOperand(d)),
				Answer:   formatInt(q), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a := signedDraw(c)
			return Problem{
				Question: fmt.Sprintf("|%d| = ", a),
				Answer:   formatInt(abs(a)), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := signedDraw(c), signedDraw(c)
			if a == b {
				b++
			}
			bigger := a
			if b > a {
				bigger = b
			}
			return Problem{
				Question: fmt.Sprintf("Which is greater: %d or %d?", a, b),
				Answer:   formatInt(bigger), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b, d := signedDraw(c), signedDraw(c), signedDraw(c)
			return Problem{
				Question: fmt.Sprintf("%s + %s - %s = ", signed(a), signedOperand(b), signedOperand(d)),
				Answer:   formatInt(a + b - d), Kind: KindInteger,
			}
		},
	}
}

func exponentTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			base := c.between(2, 12)
			return Problem{
				Question: fmt.Sprintf("%d² = ", base),
				Answer:   formatInt(base * base), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			base := c.between(2, 9)
			return Problem{
				Question: fmt.Sprintf("%d³ = ", base),
				Answer:   formatInt(base * base * base), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			base := c.between(2, 5)
			exp := c.between(2, 4)
			return Problem{
				Question: fmt.Sprintf("%d^%d = ", base, exp),
				Answer:   formatInt(ipow(base, exp)), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			root := c.between(2, 15)
			return Problem{
				Question: fmt.Sprintf("√%d = ", root*root),
				Answer:   formatInt(root), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			root := c.between(2, 6)
			return Problem{
				Question: fmt.Sprintf("∛%d = ", root*root*root),
				Answer:   formatInt(root), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			exp := c.between(1, 6)
			return Problem{
				Question: fmt.Sprintf("10^%d = ", exp),
				Answer:   formatInt(ipow(10, exp)), Kind: KindInteger,
			}
		},
	}
}

func orderOfOperationsTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			a, b, d := c.between(1, 20), c.between(2, 9), c.between(2, 9)
			return Problem{
				Question: fmt.Sprintf("%d + %d × %d = ", a, b, d),
				Answer:   formatInt(a + b*d), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b, d := c.between(1, 12), c.between(1, 12), c.between(2, 9)
			return Problem{
				Question: fmt.Sprintf("(%d + %d) × %d = ", a, b, d),
				Answer:   formatInt((a + b) * d), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			// a × b - c, kept non-negative.
			a, b := c.between(2, 9), c.between(2, 9)
			d := c.upTo(a * b)
			return Problem{
				Question: fmt.Sprintf("%d × %d - %d = ", a, b, d),
				Answer:   formatInt(a*b - d), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			// a + b ÷ c with clean division.
			a, q, d := c.between(1, 20), c.between(1, 9), c.between(2, 9)
			return Problem{
				Question: fmt.Sprintf("%d + %d ÷ %d = ", a, q*d, d),
				Answer:   formatInt(a + q), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b, d, e := c.between(2, 9), c.between(2, 9), c.between(2, 9), c.between(1, 9)
			return Problem{
				Question: fmt.Sprintf("%d × %d + %d × %d = ", a, b, d, e),
				Answer:   formatInt(a*b + d*e), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			// (a - b) × c + d with a >= b.
			a, b := subPairSmall(c)
			d, e := c.between(2, 9), c.between(1, 20)
			return Problem{
				Question: fmt.Sprintf("(%d - %d) × %d + %d = ", a, b, d, e),
				Answer:   formatInt((a-b)*d + e), Kind: KindInteger,
			}
		},
	}
}

func factorsMultiplesTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			g := c.between(2, 12)
			a, b := g*c.between(1, 8), g*c.between(1, 8)
			return Problem{
				Question: fmt.Sprintf("What is the greatest common factor of %d and %d?", a, b),
				Answer:   formatInt(gcd(a, b)), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := c.between(2, 12), c.between(2, 12)
			return Problem{
				Question: fmt.Sprintf("What is the least common multiple of %d and %d?", a, b),
				Answer:   formatInt(lcm(a, b)), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			n := c.between(2, 50)
			answer := "No"
			if isPrime(n) {
				answer = "Yes"
			}
			return Problem{
				Question: fmt.Sprintf("Is %d a prime number?", n),
				Answer:   answer, Kind: KindText,
			}
		},
		func(c *Context) Problem {
			base := c.between(2, 12)
			k := c.between(3, 9)
			return Problem{
				Question: fmt.Sprintf("What is the %s multiple of %d?", ordinal(k), base),
				Answer:   formatInt(base * k), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			// Smallest prime factor of a constructed composite.
			p := []int{2, 3, 5, 7}[c.Rand.Intn(4)]
			n := p * c.between(p, 12)
			return Problem{
				Question: fmt.Sprintf("What is the smallest prime factor of %d?", n),
				Answer:   formatInt(smallestPrimeFactor(n)), Kind: KindInteger,
			}
		},
	}
}

func placeValueTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			n := c.between(100, 9999)
			places := []struct {
				name  string
				value int
			}{{"ones", 1}, {"tens", 10}, {"hundreds", 100}}
			p := places[c.Rand.Intn(len(places))]
			digit := n / p.value % 10
			return Problem{
				Question: fmt.Sprintf("What digit is in the %s place of %d?", p.name, n),
				Answer:   formatInt(digit), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			n := c.between(11, 999)
			return Problem{
				Question: fmt.Sprintf("Round %d to the nearest ten.", n),
				Answer:   formatInt(roundTo(n, 10)), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			n := c.between(101, 9999)
			return Problem{
				Question: fmt.Sprintf("Round %d to the nearest hundred.", n),
				Answer:   formatInt(roundTo(n, 100)), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			n := c.between(1001, 99999)
			return Problem{
				Question: fmt.Sprintf("Round %d to the nearest thousand.", n),
				Answer:   formatInt(roundTo(n, 1000)), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			// Value of a digit: "the 7 in 3740 stands for 700".
			n := c.between(1000, 9999)
			pv := []int{1, 10, 100, 1000}[c.Rand.Intn(4)]
			digit := n / pv % 10
			if digit == 0 {
				digit = 5
				n += 5 * pv
			}
			return Problem{
				Question: fmt.Sprintf("In the number %d, what is the value of the digit %d?", n, digit),
				Answer:   formatInt(digit * pv), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			th, h, t, o := c.between(1, 9), c.between(0, 9), c.between(0, 9), c.between(0, 9)
			return Problem{
				Question: fmt.Sprintf("What number is %d thousands + %d hundreds + %d tens + %d ones?", th, h, t, o),
				Answer:   formatInt(th*1000 + h*100 + t*10 + o), Kind: KindInteger,
			}
		},
	}
}

func estimationTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			a, b := c.between(11, 99), c.between(11, 99)
			return Problem{
				Question: fmt.Sprintf("Estimate %d + %d by rounding each number to the nearest ten.", a, b),
				Answer:   formatInt(roundTo(a, 10) + roundTo(b, 10)), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := c.between(101, 999), c.between(101, 999)
			if b > a {
				a, b = b, a
			}
			return Problem{
				Question: fmt.Sprintf("Estimate %d - %d by rounding each number to the nearest hundred.", a, b),
				Answer:   formatInt(roundTo(a, 100) - roundTo(b, 100)), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := c.between(11, 99), c.between(2, 9)
			return Problem{
				Question: fmt.Sprintf("Estimate %d × %d by rounding %d to the nearest ten.", a, b, a),
				Answer:   formatInt(roundTo(a, 10) * b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := c.between(101, 999), c.between(101, 999)
			return Problem{
				Question: fmt.Sprintf("Estimate %d + %d by rounding each number to the nearest hundred.", a, b),
				Answer:   formatInt(roundTo(a, 100) + roundTo(b, 100)), Kind: KindInteger,
			}
		},
	}
}

func patternTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			start, step := c.between(1, 20), c.between(2, 12)
			seq := []int{start, start + step, start + 2*step, start + 3*step}
			return Problem{
				Question: fmt.Sprintf("What number comes next: %s, ...?", joinInts(seq)),
				Answer:   formatInt(start + 4*step), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			step := c.between(2, 12)
			start := 4*step + c.between(1, 20)
			seq := []int{start, start - step, start - 2*step, start - 3*step}
			return Problem{
				Question: fmt.Sprintf("What number comes next: %s, ...?", joinInts(seq)),
				Answer:   formatInt(start - 4*step), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			start, ratio := c.between(1, 5), c.between(2, 3)
			seq := []int{start, start * ratio, start * ratio * ratio}
			return Problem{
				Question: fmt.Sprintf("What number comes next: %s, ...?", joinInts(seq)),
				Answer:   formatInt(start * ipow(ratio, 3)), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			start, step := c.between(1, 20), c.between(2, 10)
			return Problem{
				Question: fmt.Sprintf("Fill in the missing number: %d, %d, ___, %d",
					start, start+step, start+3*step),
				Answer: formatInt(start + 2*step), Kind: KindInteger,
			}
		},
	}
}

// Small shared helpers.

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func ipow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func smallestPrimeFactor(n int) int {
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return i
		}
	}
	return n
}

// roundTo rounds n to the nearest multiple of unit, halves up.
func roundTo(n, unit int) int {
	return (n + unit/2) / unit * unit
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = formatInt(n)
	}
	return strings.Join(parts, ", ")
}

// subPairSmall draws a small ordered pair for parenthesized shapes.
func subPairSmall(c *Context) (int, int) {
	a, b := c.between(2, 20), c.between(1, 20)
	if b > a {
		a, b = b, a
	}
	return a, b
}
