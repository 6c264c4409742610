package problemgen

import (
	"fmt"
	"math"

	"github.com/abhisek/mathsheets/internal/wordbank"
)

// Measurement templates. Unit conversions only use unit pairs whose ratio
// is a whole number (meters to centimeters, yes; inches to centimeters, no),
// so every conversion answer is an integer. Temperature conversions keep
// Celsius a multiple of 5 for the same reason.

// unitPair is a conversion from one unit to a smaller one of the same
// dimension, with a whole-number ratio.
type unitPair struct {
	from, to wordbank.Unit
	ratio    int
}

// cleanUnitPairs lists every ordered pair within the dimension whose
// conversion factor is a whole number no larger than limit.
func cleanUnitPairs(units []wordbank.Unit, limit int) []unitPair {
	var out []unitPair
	for _, from := range units {
		for _, to := range units {
			if from == to {
				continue
			}
			r := from.ToBase / to.ToBase
			n := math.Round(r)
			if n < 2 || n > float64(limit) {
				continue
			}
			if math.Abs(r-n) > 1e-9*n {
				continue
			}
			out = append(out, unitPair{from: from, to: to, ratio: int(n)})
		}
	}
	return out
}

// pickCleanPair draws a whole-ratio pair from a random dimension that has
// one. The default bank always has such pairs; ok is false only for a
// stripped-down custom bank.
func pickCleanPair(c *Context, limit int) (unitPair, bool) {
	dims := c.Words.Dimensions()
	for _, i := range c.Rand.Perm(len(dims)) {
		pairs := cleanUnitPairs(c.Words.Bank().Units[dims[i]], limit)
		if len(pairs) > 0 {
			return pairs[c.Rand.Intn(len(pairs))], true
		}
	}
	return unitPair{}, false
}

func measurementTemplates() []TemplateFn {
	return []TemplateFn{
		measConvertDown,
		measConvertUp,
		measCelsiusToFahrenheit,
		measFahrenheitToCelsius,
		measElapsedMinutes,
		measCoinTotal,
		measCompareLengths,
		measMixedUnitSum,
	}
}

// measConvertDown converts a count of the larger unit into the smaller one.
func measConvertDown(c *Context) Problem {
	pair, ok := pickCleanPair(c, 1000)
	if !ok {
		return eqAddCanonical(c)
	}
	n := c.between(2, 12)
	return Problem{
		Question: fmt.Sprintf("Convert %d %s to %s.", n, pair.from.Name, pair.to.Name),
		Answer:   fmt.Sprintf("%d %s", n*pair.ratio, pair.to.Abbrev), Kind: KindText,
	}
}

// measConvertUp goes the other way with a value built as a multiple of the
// ratio, so the division is exact.
func measConvertUp(c *Context) Problem {
	pair, ok := pickCleanPair(c, 1000)
	if !ok {
		return eqAddCanonical(c)
	}
	k := c.between(2, 9)
	return Problem{
		Question: fmt.Sprintf("Convert %d %s to %s.", k*pair.ratio, pair.to.Name, pair.from.Name),
		Answer:   fmt.Sprintf("%d %s", k, pair.from.Abbrev), Kind: KindText,
	}
}

func measCelsiusToFahrenheit(c *Context) Problem {
	celsius := 5 * c.between(0, 20)
	return Problem{
		Question: fmt.Sprintf("Convert %d°C to Fahrenheit.", celsius),
		Answer:   fmt.Sprintf("%d°F", celsius*9/5+32), Kind: KindText,
	}
}

func measFahrenheitToCelsius(c *Context) Problem {
	celsius := 5 * c.between(0, 20)
	return Problem{
		Question: fmt.Sprintf("Convert %d°F to Celsius.", celsius*9/5+32),
		Answer:   fmt.Sprintf("%d°C", celsius), Kind: KindText,
	}
}

func measElapsedMinutes(c *Context) Problem {
	startHour := c.between(1, 10)
	startMin := 5 * c.between(0, 11)
	dur := 5 * c.between(1, 10)
	endMin := startMin + dur
	endHour := startHour + endMin/60
	endMin %= 60
	return Problem{
		Question: fmt.Sprintf("A class starts at %d:%02d and lasts %d minutes. When does it end?", startHour, startMin, dur),
		Answer:   fmt.Sprintf("%d:%02d", endHour, endMin), Kind: KindText,
	}
}

func measCoinTotal(c *Context) Problem {
	q, d, n := c.between(1, 6), c.between(1, 6), c.between(1, 6)
	total := 25*q + 10*d + 5*n
	return Problem{
		Question: fmt.Sprintf("How many cents are %d quarters, %d dimes, and %d nickels?", q, d, n),
		Answer:   fmt.Sprintf("%d¢", total), Kind: KindText,
	}
}

func measCompareLengths(c *Context) Problem {
	meters := c.between(2, 9)
	cm := c.between(1, 999)
	for cm == meters*100 {
		cm = c.between(1, 999)
	}
	answer := fmt.Sprintf("%d m", meters)
	if cm > meters*100 {
		answer = fmt.Sprintf("%d cm", cm)
	}
	return Problem{
		Question: fmt.Sprintf("Which is longer: %d m or %d cm?", meters, cm),
		Answer:   answer, Kind: KindText,
	}
}

// measMixedUnitSum adds two meter-and-centimeter lengths, answering in
// centimeters.
func measMixedUnitSum(c *Context) Problem {
	m1, cm1 := c.between(1, 5), c.between(1, 99)
	m2, cm2 := c.between(1, 5), c.between(1, 99)
	total := (m1+m2)*100 + cm1 + cm2
	return Problem{
		Question: fmt.Sprintf("Add %d m %d cm and %d m %d cm. Give the answer in centimeters.", m1, cm1, m2, cm2),
		Answer:   fmt.Sprintf("%d cm", total), Kind: KindText,
	}
}

func measurementWordTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			name := c.Words.Name()
			pieces := c.between(2, 9)
			each := c.between(2, 30)
			return Problem{
				Question: fmt.Sprintf("%s cuts a ribbon into %d pieces of %d cm each. How long was the ribbon in centimeters?", name, pieces, each),
				Answer:   fmt.Sprintf("%d cm", pieces*each), Kind: KindText,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			liters := c.between(1, 5)
			return Problem{
				Question: fmt.Sprintf("A recipe %s is following needs %d liters of water. How many milliliters is that?", name, liters),
				Answer:   fmt.Sprintf("%d mL", liters*1000), Kind: KindText,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			km := c.between(1, 12)
			return Problem{
				Question: fmt.Sprintf("%s ran a %d km race. How many meters did %s run?", name, km, name),
				Answer:   fmt.Sprintf("%d m", km*1000), Kind: KindText,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			hours := c.between(1, 8)
			return Problem{
				Question: fmt.Sprintf("%s practiced for %d hours this week. How many minutes is that?", name, hours),
				Answer:   fmt.Sprintf("%d min", hours*60), Kind: KindText,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			kg := c.between(1, 9)
			item, _ := c.Words.Item()
			return Problem{
				Question: fmt.Sprintf("%s bought %d kg of %s. How many grams is that?", name, kg, item),
				Answer:   fmt.Sprintf("%d g", kg*1000), Kind: KindText,
			}
		},
	}
}
