package problemgen

import "fmt"

// Geometry templates. Circle problems use π ≈ 3.14 and say so in the
// prompt; right-triangle problems draw from Pythagorean triples so sides
// stay whole.

var pythagoreanTriples = [][3]int{
	{3, 4, 5}, {6, 8, 10}, {9, 12, 15}, {5, 12, 13}, {8, 15, 17},
	{7, 24, 25}, {20, 21, 29}, {12, 16, 20}, {15, 20, 25}, {10, 24, 26},
}

func geometryEquationTemplates() []TemplateFn {
	return []TemplateFn{
		geoRectangleArea,
		geoTriangleArea,
		geoCircleArea,
		geoRectanglePerimeter,
		geoSquarePerimeter,
		geoCircleCircumference,
		geoPythagHypotenuse,
		geoPythagLeg,
		geoCubeVolume,
		geoPrismVolume,
		geoCylinderVolume,
		geoCubeSurfaceArea,
		geoShapeSides,
		geoShapeVertices3D,
		geoReflectPoint,
		geoTranslatePoint,
		geoSymmetryLines,
		geoSimilarScale,
		geoAngleSum,
	}
}

func geoRectangleArea(c *Context) Problem {
	l, w := c.between(2, 30), c.between(2, 30)
	return Problem{
		Question: fmt.Sprintf("A rectangle is %d cm long and %d cm wide. What is its area?", l, w),
		Answer:   fmt.Sprintf("%d cm²", l*w), Kind: KindText,
	}
}

func geoTriangleArea(c *Context) Problem {
	// Even base keeps the area whole.
	b, h := 2*c.between(2, 15), c.between(2, 20)
	return Problem{
		Question: fmt.Sprintf("A triangle has a base of %d cm and a height of %d cm. What is its area?", b, h),
		Answer:   fmt.Sprintf("%d cm²", b*h/2), Kind: KindText,
	}
}

func geoCircleArea(c *Context) Problem {
	r := c.between(2, 12)
	return Problem{
		Question: fmt.Sprintf("What is the area of a circle with radius %d cm? (Use π ≈ 3.14)", r),
		Answer:   fmt.Sprintf("%s cm²", formatDecimal(3.14*float64(r*r))), Kind: KindText,
	}
}

func geoRectanglePerimeter(c *Context) Problem {
	l, w := c.between(2, 40), c.between(2, 40)
	return Problem{
		Question: fmt.Sprintf("A rectangle is %d m long and %d m wide. What is its perimeter?", l, w),
		Answer:   fmt.Sprintf("%d m", 2*(l+w)), Kind: KindText,
	}
}

func geoSquarePerimeter(c *Context) Problem {
	s := c.between(2, 50)
	return Problem{
		Question: fmt.Sprintf("What is the perimeter of a square with sides of %d cm?", s),
		Answer:   fmt.Sprintf("%d cm", 4*s), Kind: KindText,
	}
}

func geoCircleCircumference(c *Context) Problem {
	d := 2 * c.between(2, 15)
	return Problem{
		Question: fmt.Sprintf("What is the circumference of a circle with diameter %d cm? (Use π ≈ 3.14)", d),
		Answer:   fmt.Sprintf("%s cm", formatDecimal(3.14*float64(d))), Kind: KindText,
	}
}

func geoPythagHypotenuse(c *Context) Problem {
	t := pythagoreanTriples[c.Rand.Intn(len(pythagoreanTriples))]
	return Problem{
		Question: fmt.Sprintf("A right triangle has legs of %d and %d. How long is the hypotenuse?", t[0], t[1]),
		Answer:   formatInt(t[2]), Kind: KindInteger,
	}
}

func geoPythagLeg(c *Context) Problem {
	t := pythagoreanTriples[c.Rand.Intn(len(pythagoreanTriples))]
	return Problem{
		Question: fmt.Sprintf("A right triangle has a hypotenuse of %d and one leg of %d. How long is the other leg?", t[2], t[0]),
		Answer:   formatInt(t[1]), Kind: KindInteger,
	}
}

func geoCubeVolume(c *Context) Problem {
	s := c.between(2, 12)
	return Problem{
		Question: fmt.Sprintf("What is the volume of a cube with edges of %d cm?", s),
		Answer:   fmt.Sprintf("%d cm³", s*s*s), Kind: KindText,
	}
}

func geoPrismVolume(c *Context) Problem {
	l, w, h := c.between(2, 12), c.between(2, 12), c.between(2, 12)
	return Problem{
		Question: fmt.Sprintf("A rectangular prism measures %d cm × %d cm × %d cm. What is its volume?", l, w, h),
		Answer:   fmt.Sprintf("%d cm³", l*w*h), Kind: KindText,
	}
}

func geoCylinderVolume(c *Context) Problem {
	r, h := c.between(2, 8), c.between(2, 12)
	return Problem{
		Question: fmt.Sprintf("What is the volume of a cylinder with radius %d cm and height %d cm? (Use π ≈ 3.14)", r, h),
		Answer:   fmt.Sprintf("%s cm³", formatDecimal(3.14*float64(r*r*h))), Kind: KindText,
	}
}

func geoCubeSurfaceArea(c *Context) Problem {
	s := c.between(2, 12)
	return Problem{
		Question: fmt.Sprintf("What is the surface area of a cube with edges of %d cm?", s),
		Answer:   fmt.Sprintf("%d cm²", 6*s*s), Kind: KindText,
	}
}

var polygonSides = []struct {
	name  string
	sides int
}{
	{"triangle", 3}, {"quadrilateral", 4}, {"pentagon", 5},
	{"hexagon", 6}, {"heptagon", 7}, {"octagon", 8}, {"decagon", 10},
}

func geoShapeSides(c *Context) Problem {
	p := polygonSides[c.Rand.Intn(len(polygonSides))]
	return Problem{
		Question: fmt.Sprintf("How many sides does a %s have?", p.name),
		Answer:   formatInt(p.sides), Kind: KindInteger,
	}
}

var solidVertices = []struct {
	name     string
	vertices int
}{
	{"cube", 8}, {"rectangular prism", 8}, {"triangular prism", 6},
	{"square pyramid", 5}, {"triangular pyramid", 4},
}

func geoShapeVertices3D(c *Context) Problem {
	s := solidVertices[c.Rand.Intn(len(solidVertices))]
	return Problem{
		Question: fmt.Sprintf("How many vertices does a %s have?", s.name),
		Answer:   formatInt(s.vertices), Kind: KindInteger,
	}
}

func geoReflectPoint(c *Context) Problem {
	x, y := c.between(1, 9), c.between(1, 9)
	if c.chance(0.5) {
		return Problem{
			Question: fmt.Sprintf("The point (%d, %d) is reflected across the x-axis. What are its new coordinates?", x, y),
			Answer:   fmt.Sprintf("(%d, %d)", x, -y), Kind: KindText,
		}
	}
	return Problem{
		Question: fmt.Sprintf("The point (%d, %d) is reflected across the y-axis. What are its new coordinates?", x, y),
		Answer:   fmt.Sprintf("(%d, %d)", -x, y), Kind: KindText,
	}
}

func geoTranslatePoint(c *Context) Problem {
	x, y := c.between(-5, 5), c.between(-5, 5)
	dx, dy := c.between(1, 6), c.between(1, 6)
	return Problem{
		Question: fmt.Sprintf("Translate the point (%d, %d) right %d and up %d. What are its new coordinates?", x, y, dx, dy),
		Answer:   fmt.Sprintf("(%d, %d)", x+dx, y+dy), Kind: KindText,
	}
}

var symmetryShapes = []struct {
	name  string
	lines int
}{
	{"square", 4}, {"rectangle (non-square)", 2}, {"equilateral triangle", 3},
	{"isosceles triangle", 1}, {"regular pentagon", 5}, {"regular hexagon", 6},
}

func geoSymmetryLines(c *Context) Problem {
	s := symmetryShapes[c.Rand.Intn(len(symmetryShapes))]
	return Problem{
		Question: fmt.Sprintf("How many lines of symmetry does a %s have?", s.name),
		Answer:   formatInt(s.lines), Kind: KindInteger,
	}
}

func geoSimilarScale(c *Context) Problem {
	side := c.between(2, 12)
	k := c.between(2, 5)
	return Problem{
		Question: fmt.Sprintf("Two triangles are similar. A side of %d cm corresponds to a side of %d cm. What is the scale factor?", side, side*k),
		Answer:   formatInt(k), Kind: KindInteger,
	}
}

func geoAngleSum(c *Context) Problem {
	a := c.between(20, 100)
	b := c.between(20, 160-a)
	return Problem{
		Question: fmt.Sprintf("Two angles of a triangle measure %d° and %d°. What is the third angle?", a, b),
		Answer:   fmt.Sprintf("%d°", 180-a-b), Kind: KindText,
	}
}

func geometryWordTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			name := c.Words.Name()
			l, w := c.between(3, 30), c.between(3, 30)
			return Problem{
				Question: fmt.Sprintf("%s is putting a fence around a garden %d m long and %d m wide. How many meters of fence are needed?",
					name, l, w),
				Answer: formatInt(2 * (l + w)), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			l, w := c.between(3, 20), c.between(3, 20)
			return Problem{
				Question: fmt.Sprintf("A wall is %d m wide and %d m tall. How many square meters need to be painted?", l, w),
				Answer:   formatInt(l * w), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			s := c.between(2, 15)
			return Problem{
				Question: fmt.Sprintf("Square tiles with %d cm sides cover a floor. What is the area of each tile?", s),
				Answer:   fmt.Sprintf("%d cm²", s*s), Kind: KindText,
			}
		},
		func(c *Context) Problem {
			t := pythagoreanTriples[c.Rand.Intn(len(pythagoreanTriples))]
			return Problem{
				Question: fmt.Sprintf("A ladder reaches %d m up a wall and its base is %d m from the wall. How long is the ladder?",
					t[1], t[0]),
				Answer: formatInt(t[2]), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			l, w, h := c.between(2, 10), c.between(2, 10), c.between(2, 10)
			return Problem{
				Question: fmt.Sprintf("A fish tank measures %d cm by %d cm by %d cm. How many cubic centimeters of water does it hold when full?",
					l, w, h),
				Answer: formatInt(l * w * h), Kind: KindInteger,
			}
		},
	}
}
