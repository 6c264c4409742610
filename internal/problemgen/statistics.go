package problemgen

import (
	"fmt"
	"sort"
)

// Statistics templates. Data sets are constructed so the asked-for measure
// comes out an integer: means are built by choosing the mean first, medians
// use odd-length sets, and standard deviation sticks to sets with an
// integer variance.

func statisticsTemplates() []TemplateFn {
	return []TemplateFn{
		statMean,
		statMedian,
		statMode,
		statRange,
		statMissingValue,
		statVariance,
		statProbabilitySingle,
		statProbabilityDice,
		statCombinations,
		statPermutations,
	}
}

// statDataSet returns n values in [1, hi], sorted.
func statDataSet(c *Context, n, hi int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = c.between(1, hi)
	}
	sort.Ints(vals)
	return vals
}

// statMean builds the set from symmetric deviations around a chosen mean,
// so the division is exact and every value stays positive.
func statMean(c *Context) Problem {
	mean := c.between(10, 30)
	d1, d2 := c.between(1, mean-1), c.between(1, mean-1)
	vals := []int{mean - d1, mean + d1, mean - d2, mean + d2}
	if c.chance(0.5) {
		vals = append(vals, mean)
	}
	sort.Ints(vals)
	return Problem{
		Question: fmt.Sprintf("Find the mean of: %s", joinInts(vals)),
		Answer:   formatInt(mean), Kind: KindInteger,
	}
}

func statMedian(c *Context) Problem {
	vals := statDataSet(c, 5, 50)
	return Problem{
		Question: fmt.Sprintf("Find the median of: %s", joinInts(vals)),
		Answer:   formatInt(vals[2]), Kind: KindInteger,
	}
}

func statMode(c *Context) Problem {
	mode := c.between(1, 20)
	other1, other2 := c.between(1, 20), c.between(1, 20)
	for other1 == mode {
		other1 = c.between(1, 20)
	}
	for other2 == mode || other2 == other1 {
		other2 = c.between(1, 20)
	}
	vals := []int{mode, mode, mode, other1, other2}
	shuffleInts(c, vals)
	return Problem{
		Question: fmt.Sprintf("Find the mode of: %s", joinInts(vals)),
		Answer:   formatInt(mode), Kind: KindInteger,
	}
}

func statRange(c *Context) Problem {
	vals := statDataSet(c, 5, 60)
	return Problem{
		Question: fmt.Sprintf("Find the range of: %s", joinInts(vals)),
		Answer:   formatInt(vals[4] - vals[0]), Kind: KindInteger,
	}
}

// statMissingValue gives all but one value and the mean, asking for the rest.
func statMissingValue(c *Context) Problem {
	mean := c.between(16, 30)
	n := 4
	known := make([]int, n-1)
	sum := 0
	for i := range known {
		// each known value stays within mean+5, so the fourth stays positive
		known[i] = c.between(1, mean+5)
		sum += known[i]
	}
	missing := mean*n - sum
	return Problem{
		Question: fmt.Sprintf("Four test scores have a mean of %d. Three of them are %s. What is the fourth?", mean, joinInts(known)),
		Answer:   formatInt(missing), Kind: KindInteger,
	}
}

// statVariance uses a symmetric two-value set {m-d, m+d}, whose standard
// deviation is exactly d.
func statVariance(c *Context) Problem {
	m := c.between(11, 30)
	d := c.between(1, 10)
	return Problem{
		Question: fmt.Sprintf("Find the standard deviation of the data set: %d, %d", m-d, m+d),
		Answer:   formatInt(d), Kind: KindInteger,
	}
}

func statProbabilitySingle(c *Context) Problem {
	p := c.Words
	item, container := p.Item()
	fav := c.between(1, 9)
	other := c.between(1, 9)
	return Problem{
		Question: fmt.Sprintf("A %s holds %d red %s and %d blue %s. What is the probability of drawing a red one?", container, fav, item, other, item),
		Answer:   formatFraction(fav, fav+other), Kind: KindFraction,
	}
}

func statProbabilityDice(c *Context) Problem {
	target := c.between(1, 6)
	return Problem{
		Question: fmt.Sprintf("A fair six-sided die is rolled once. What is the probability of rolling a %d?", target),
		Answer:   formatFraction(1, 6), Kind: KindFraction,
	}
}

func statCombinations(c *Context) Problem {
	n := c.between(4, 8)
	return Problem{
		Question: fmt.Sprintf("How many ways can you choose 2 items from a set of %d?", n),
		Answer:   formatInt(n * (n - 1) / 2), Kind: KindInteger,
	}
}

func statPermutations(c *Context) Problem {
	n := c.between(3, 6)
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return Problem{
		Question: fmt.Sprintf("How many ways can %d people line up in a row?", n),
		Answer:   formatInt(f), Kind: KindInteger,
	}
}

func shuffleInts(c *Context, vals []int) {
	c.Rand.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
}

func statisticsWordTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			p := c.Words
			name := p.Name()
			mean := c.between(20, 90)
			n := 3
			known := []int{c.between(mean-9, mean+9), c.between(mean-9, mean+9)}
			third := mean*n - known[0] - known[1]
			return Problem{
				Question: fmt.Sprintf("%s wants an average score of %d across three quizzes. The first two scores were %d and %d. What must the third score be?", name, mean, known[0], known[1]),
				Answer:   formatInt(third), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			p := c.Words
			name := p.Name()
			item, container := p.Item()
			tf := p.Timeframe()
			counts := statDataSet(c, 4, 20)
			sum := 0
			for _, v := range counts {
				sum += v
			}
			return Problem{
				Question: fmt.Sprintf("Over four days %s, %s counted the %s in a %s: %s. How many did %s count in total?", tf, name, item, container, joinInts(counts), name),
				Answer:   formatInt(sum), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			p := c.Words
			name := p.Name()
			vals := statDataSet(c, 5, 40)
			return Problem{
				Question: fmt.Sprintf("%s recorded these daily temperatures in °C: %s. What was the median temperature?", name, joinInts(vals)),
				Answer:   formatInt(vals[2]), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			p := c.Words
			name := p.Name()
			item, _ := p.Item()
			red, green := c.between(2, 10), c.between(2, 10)
			return Problem{
				Question: fmt.Sprintf("%s has a bag with %d red %s and %d green %s. If one is picked at random, what is the probability it is green?", name, red, item, green, item),
				Answer:   formatFraction(green, red+green), Kind: KindFraction,
			}
		},
	}
}
