package problemgen

import "fmt"

// Arithmetic word-problem templates. Every template computes its answer
// from the same draws that produced the prose; nothing is recomputed from
// parsed text. Subtraction templates order their draws so totals never go
// negative, and division templates build the dividend from the divisor and
// quotient.

func additionWordTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			name := c.Words.Name()
			item, _ := c.Words.Item()
			verb := c.Words.CollectVerb()
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("%s %s %d %s and then %s %d more. How many %s does %s have now?",
					name, verb, a, item, c.Words.CollectVerb(), b, item, name),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			n1, n2 := c.Words.TwoNames()
			item, _ := c.Words.Item()
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("%s has %d %s and %s has %d. How many %s do they have together?",
					n1, a, item, n2, b, item),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			place := c.Words.Place()
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("At %s, %d %s were sold in the morning and %d in the afternoon. How many %s were sold in all?",
					place, a, item, b, item),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			prof := c.Words.Profession()
			item, _ := c.Words.Item()
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("A %s made %d %s %s and %d more the next day. How many %s did the %s make altogether?",
					prof, a, item, c.Words.Timeframe(), b, item, prof),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			item, _ := c.Words.Item()
			a, b, d := c.upTo(c.Ceiling), c.upTo(c.Ceiling), c.upTo(c.Ceiling)
			return Problem{
				Question: fmt.Sprintf("%s counted %d %s, then %d more, and finally another %d. What is the total?",
					name, a, item, b, d),
				Answer: formatInt(a + b + d), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("%s saved $%d in January and $%d in February. How much money did %s save in the two months?",
					name, a, b, name),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("%s walked %d meters to school and %d meters to the park. How far did %s walk in total?",
					name, a, b, name),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("A library shelf holds %d books and a second shelf holds %d. How many books are on the two shelves?",
					a, b),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			n1, n2 := c.Words.TwoNames()
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("%s scored %d points in a game and %s scored %d. How many points did they score combined?",
					n1, a, n2, b),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("A farm stand sold %d %s on Saturday and %d on Sunday. How many %s were sold over the weekend?",
					a, item, b, item),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			item, _ := c.Words.Item()
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("%s had %d %s. A friend gave %s %d more. How many %s does %s have now?",
					name, a, item, name, b, item, name),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("A bus carried %d riders before noon and %d riders after noon. How many riders rode the bus that day?",
					a, b),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			place := c.Words.Place()
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("%s spent %d minutes at %s and %d minutes reading afterwards. How many minutes is that altogether?",
					name, a, place, b),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			a, b := addPair(c)
			return Problem{
				Question: fmt.Sprintf("One jar contains %d %s and another contains %d. How many %s are there in both jars?",
					a, item, b, item),
				Answer: formatInt(a + b), Kind: KindInteger,
			}
		},
	}
}

func subtractionWordTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			name := c.Words.Name()
			item, _ := c.Words.Item()
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("%s had %d %s and %s %d of them. How many %s are left?",
					name, a, item, c.Words.GiveVerb(), b, item),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			n1, n2 := c.Words.TwoNames()
			item, _ := c.Words.Item()
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("%s collected %d %s and %s collected %d. How many more does %s have than %s?",
					n1, a, item, n2, b, n1, n2),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			place := c.Words.Place()
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("A stall at %s started with %d %s and sold %d. How many %s remain?",
					place, a, item, b, item),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("%s has $%d and spends $%d. How much money does %s have left?",
					name, a, b, name),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("A book has %d pages. After reading %d pages, how many pages are left to read?",
					a, b),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("A train had %d passengers. %d got off at the first stop. How many passengers stayed on?",
					a, b),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			prof := c.Words.Profession()
			item, _ := c.Words.Item()
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("A %s prepared %d %s but %d were not needed. How many %s were used?",
					prof, a, item, b, item),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			item, _ := c.Words.Item()
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("%s needs %d %s for a project and already has %d. How many more are needed?",
					name, a, item, b),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("A water tank holds %d liters. After %d liters are drained, how many liters remain?",
					a, b),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			n1, n2 := c.Words.TwoNames()
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("%s jumped %d centimeters and %s jumped %d centimeters. How much farther did %s jump?",
					n1, a, n2, b, n1),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("A school ordered %d %s. Only %d arrived. How many %s are missing?",
					a, item, b, item),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("%s's goal is to run %d laps. So far %s has run %d. How many laps are left?",
					name, a, name, b),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			a, b := subPair(c)
			return Problem{
				Question: fmt.Sprintf("A box held %d %s. %d were taken out for display. How many %s are still in the box?",
					a, item, b, item),
				Answer: formatInt(a - b), Kind: KindInteger,
			}
		},
	}
}

func multiplicationWordTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			name := c.Words.Name()
			item, container := c.Words.Item()
			groups, per := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("%s has %d %s with %d %s in each. How many %s are there in all?",
					name, groups, container, per, item, item),
				Answer: formatInt(groups * per), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			groups, per := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("Each of %d shelves holds %d %s. How many %s is that altogether?",
					groups, per, item, item),
				Answer: formatInt(groups * per), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			a, b := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("%s reads %d pages every day. How many pages does %s read in %d days?",
					name, a, name, b),
				Answer: formatInt(a * b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			a, b := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("One pack of %s costs $%d. How much do %d packs cost?",
					item, a, b),
				Answer: formatInt(a * b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			prof := c.Words.Profession()
			item, _ := c.Words.Item()
			a, b := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("A %s makes %d %s each hour. How many %s can the %s make in %d hours?",
					prof, a, item, item, prof, b),
				Answer: formatInt(a * b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("A classroom has %d rows of desks with %d desks in each row. How many desks are in the classroom?",
					a, b),
				Answer: formatInt(a * b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("A parking lot has %d rows with space for %d cars in each row. How many cars can park?",
					a, b),
				Answer: formatInt(a * b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			a, b := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("%s saves $%d every week. How much will %s have saved after %d weeks?",
					name, a, name, b),
				Answer: formatInt(a * b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, container := c.Words.Item()
			place := c.Words.Place()
			a, b := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("A stand at %s sells %s in %s of %d. If %d %s are sold, how many %s is that?",
					place, item, container, a, b, container, item),
				Answer: formatInt(a * b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			a, b := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("Each ticket costs $%d. What is the cost of %d tickets?",
					a, b),
				Answer: formatInt(a * b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			a, b := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("%s runs %d kilometers each morning. How far does %s run in %d mornings?",
					name, a, name, b),
				Answer: formatInt(a * b), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			a, b := mulPair(c)
			return Problem{
				Question: fmt.Sprintf("A recipe uses %d %s per batch. How many %s are needed for %d batches?",
					a, item, item, b),
				Answer: formatInt(a * b), Kind: KindInteger,
			}
		},
	}
}

func divisionWordTemplates() []TemplateFn {
	return []TemplateFn{
		func(c *Context) Problem {
			name := c.Words.Name()
			item, container := c.Words.Item()
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("%s sorts %d %s equally into %d %s. How many %s go in each?",
					name, dividend, item, divisor, container, item),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("%d %s are shared equally among %d friends. How many does each friend get?",
					dividend, item, divisor),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("A rope %d meters long is cut into pieces of %d meters. How many pieces are there?",
					dividend, divisor),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("%s has $%d to spend on gifts that cost $%d each. How many gifts can %s buy?",
					name, dividend, divisor, name),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, container := c.Words.Item()
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("A factory packs %d %s into %s of %d. How many %s are filled?",
					dividend, item, container, divisor, container),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("%d students split into teams of %d. How many teams are formed?",
					dividend, divisor),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			prof := c.Words.Profession()
			item, _ := c.Words.Item()
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("A %s divides %d %s evenly over %d days. How many %s per day is that?",
					prof, dividend, item, divisor, item),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("A bus travels %d kilometers in %d hours at a steady speed. How far does it travel each hour?",
					dividend, divisor),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			name := c.Words.Name()
			item, _ := c.Words.Item()
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("%s bakes %d %s and wants to put %d on each plate. How many plates does %s need?",
					name, dividend, item, divisor, name),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("A garden of %d plants is arranged in %d equal rows. How many plants are in each row?",
					dividend, divisor),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			item, _ := c.Words.Item()
			place := c.Words.Place()
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("At %s, %d %s are handed out equally to %d visitors. How many does each visitor receive?",
					place, dividend, item, divisor),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
		func(c *Context) Problem {
			dividend, divisor, quotient := divParts(c)
			return Problem{
				Question: fmt.Sprintf("A movie marathon lasts %d minutes and each film runs %d minutes. How many films are shown?",
					dividend, divisor),
				Answer: formatInt(quotient), Kind: KindInteger,
			}
		},
	}
}
