package problemgen

import (
	"fmt"
	"math"
)

// Trigonometry templates. Ratio evaluation sticks to the special angles so
// answers are exact strings; triangle problems either use Pythagorean
// triples or round to one decimal place and say so.

// specialAngleValues holds exact sin/cos/tan strings for the special angles.
var specialAngleValues = []struct {
	deg      int
	sin, cos string
	tan      string // "undefined" at 90°
}{
	{0, "0", "1", "0"},
	{30, "1/2", "√3/2", "√3/3"},
	{45, "√2/2", "√2/2", "1"},
	{60, "√3/2", "1/2", "√3"},
	{90, "1", "0", "undefined"},
}

// radianAngles maps common degree measures to exact radian strings.
var radianAngles = []struct {
	deg int
	rad string
}{
	{30, "π/6"}, {45, "π/4"}, {60, "π/3"}, {90, "π/2"},
	{120, "2π/3"}, {135, "3π/4"}, {150, "5π/6"}, {180, "π"},
	{270, "3π/2"}, {360, "2π"},
}

func trigEquationTemplates() []TemplateFn {
	return []TemplateFn{
		trigEvalSin,
		trigEvalCos,
		trigEvalTan,
		trigDegToRad,
		trigRadToDeg,
		trigComplementary,
		trigSupplementary,
		trigRatioFromTriple,
		trigMissingSideSin,
		trigLawOfCosines,
		trigReferenceAngle,
		trigIdentitySinCos,
	}
}

func trigEvalSin(c *Context) Problem {
	a := specialAngleValues[c.Rand.Intn(len(specialAngleValues))]
	return Problem{
		Question: fmt.Sprintf("sin %d° = ", a.deg),
		Answer:   a.sin, Kind: KindText,
	}
}

func trigEvalCos(c *Context) Problem {
	a := specialAngleValues[c.Rand.Intn(len(specialAngleValues))]
	return Problem{
		Question: fmt.Sprintf("cos %d° = ", a.deg),
		Answer:   a.cos, Kind: KindText,
	}
}

func trigEvalTan(c *Context) Problem {
	a := specialAngleValues[c.Rand.Intn(len(specialAngleValues))]
	return Problem{
		Question: fmt.Sprintf("tan %d° = ", a.deg),
		Answer:   a.tan, Kind: KindText,
	}
}

func trigDegToRad(c *Context) Problem {
	a := radianAngles[c.Rand.Intn(len(radianAngles))]
	return Problem{
		Question: fmt.Sprintf("Convert %d° to radians.", a.deg),
		Answer:   a.rad, Kind: KindText,
	}
}

func trigRadToDeg(c *Context) Problem {
	a := radianAngles[c.Rand.Intn(len(radianAngles))]
	return Problem{
		Question: fmt.Sprintf("Convert %s radians to degrees.", a.rad),
		Answer:   fmt.Sprintf("%d°", a.deg), Kind: KindText,
	}
}

func trigComplementary(c *Context) Problem {
	a := c.between(1, 89)
	return Problem{
		Question: fmt.Sprintf("What is the complement of a %d° angle?", a),
		Answer:   fmt.Sprintf("%d°", 90-a), Kind: KindText,
	}
}

func trigSupplementary(c *Context) Problem {
	a := c.between(1, 179)
	return Problem{
		Question: fmt.Sprintf("What is the supplement of a %d° angle?", a),
		Answer:   fmt.Sprintf("%d°", 180-a), Kind: KindText,
	}
}

// trigRatioFromTriple asks for a ratio in a labeled right triangle whose
// sides come from a Pythagorean triple, so the answer is a clean fraction.
func trigRatioFromTriple(c *Context) Problem {
	t := pythagoreanTriples[c.Rand.Intn(len(pythagoreanTriples))]
	opp, adj, hyp := t[0], t[1], t[2]
	switch c.Rand.Intn(3) {
	case 0:
		return Problem{
			Question: fmt.Sprintf("In a right triangle, the side opposite angle A is %d and the hypotenuse is %d. What is sin A?", opp, hyp),
			Answer:   formatFraction(opp, hyp), Kind: KindFraction,
		}
	case 1:
		return Problem{
			Question: fmt.Sprintf("In a right triangle, the side adjacent to angle A is %d and the hypotenuse is %d. What is cos A?", adj, hyp),
			Answer:   formatFraction(adj, hyp), Kind: KindFraction,
		}
	default:
		return Problem{
			Question: fmt.Sprintf("In a right triangle, the side opposite angle A is %d and the adjacent side is %d. What is tan A?", opp, adj),
			Answer:   formatFraction(opp, adj), Kind: KindFraction,
		}
	}
}

// trigMissingSideSin uses sin 30° = 1/2 so the height is exact.
func trigMissingSideSin(c *Context) Problem {
	hyp := 2 * c.between(2, 25)
	return Problem{
		Question: fmt.Sprintf("A ramp %d m long rises at a 30° angle. How high is its top? (sin 30° = 1/2)", hyp),
		Answer:   fmt.Sprintf("%d m", hyp/2), Kind: KindText,
	}
}

// trigLawOfCosines uses a 60° included angle (cos 60° = 1/2) and even side
// products so c² stays an integer; the answer rounds to one decimal.
func trigLawOfCosines(c *Context) Problem {
	a, b := 2*c.between(2, 8), 2*c.between(2, 8)
	c2 := a*a + b*b - a*b // 2ab·cos 60° = ab
	ans := math.Sqrt(float64(c2))
	return Problem{
		Question: fmt.Sprintf("A triangle has sides %d and %d with a 60° angle between them. Find the third side to one decimal place. (cos 60° = 1/2)", a, b),
		Answer:   fmt.Sprintf("%.1f", ans), Kind: KindDecimal,
	}
}

func trigReferenceAngle(c *Context) Problem {
	quadrant := c.between(2, 4)
	ref := c.between(10, 80)
	var angle int
	switch quadrant {
	case 2:
		angle = 180 - ref
	case 3:
		angle = 180 + ref
	default:
		angle = 360 - ref
	}
	return Problem{
		Question: fmt.Sprintf("What is the reference angle of %d°?", angle),
		Answer:   fmt.Sprintf("%d°", ref), Kind: KindText,
	}
}

func trigIdentitySinCos(c *Context) Problem {
	a := c.between(1, 89)
	return Problem{
		Question: fmt.Sprintf("sin²(%d°) + cos²(%d°) = ", a, a),
		Answer:   "1", Kind: KindInteger,
	}
}

func trigWordTemplates() []TemplateFn {
	return []TemplateFn{
		// Elevation/depression word problems pinned to special angles so the
		// arithmetic stays clean.
		func(c *Context) Problem {
			d := 2 * c.between(5, 40)
			return Problem{
				Question: fmt.Sprintf("From %d m away, the angle of elevation to the top of a tower is 45°. How tall is the tower? (tan 45° = 1)", d),
				Answer:   fmt.Sprintf("%d m", d), Kind: KindText,
			}
		},
		func(c *Context) Problem {
			hyp := 2 * c.between(3, 30)
			return Problem{
				Question: fmt.Sprintf("A kite string %d m long makes a 30° angle with the ground. How high is the kite? (sin 30° = 1/2)", hyp),
				Answer:   fmt.Sprintf("%d m", hyp/2), Kind: KindText,
			}
		},
		func(c *Context) Problem {
			h := 2 * c.between(4, 30)
			return Problem{
				Question: fmt.Sprintf("From a cliff %d m high, the angle of depression to a boat is 45°. How far is the boat from the base of the cliff? (tan 45° = 1)", h),
				Answer:   fmt.Sprintf("%d m", h), Kind: KindText,
			}
		},
		func(c *Context) Problem {
			t := pythagoreanTriples[c.Rand.Intn(len(pythagoreanTriples))]
			return Problem{
				Question: fmt.Sprintf("A ramp rises %d m over a horizontal run of %d m. What is tan of the ramp's angle?", t[0], t[1]),
				Answer:   formatFraction(t[0], t[1]), Kind: KindFraction,
			}
		},
		func(c *Context) Problem {
			hyp := 2 * c.between(3, 25)
			return Problem{
				Question: fmt.Sprintf("A %d m ladder leans against a wall at a 60° angle to the ground. How far is its base from the wall? (cos 60° = 1/2)", hyp),
				Answer:   fmt.Sprintf("%d m", hyp/2), Kind: KindText,
			}
		},
	}
}
