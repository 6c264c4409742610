// Package wordbank holds the static vocabulary pools used to parametrize
// word-problem prose: names, places, item categories, verbs, professions,
// timeframes, and measurement units.
package wordbank

// ItemCategory groups items that share a natural container or unit word,
// e.g. "stickers" come in "packs".
type ItemCategory struct {
	Name  string
	Items []string
	// Container is the grouping word used by multiplication/division
	// templates ("boxes of crayons", "packs of stickers").
	Container string
}

// Unit is one measurement unit with its conversion factor to the dimension's
// base unit (meters, grams, liters, minutes, cents, none for temperature).
type Unit struct {
	Name   string
	Abbrev string
	// ToBase is how many base units one of this unit equals.
	ToBase float64
}

// Dimension identifies a measurement dimension.
type Dimension string

const (
	DimLength      Dimension = "length"
	DimWeight      Dimension = "weight"
	DimCapacity    Dimension = "capacity"
	DimTime        Dimension = "time"
	DimMoney       Dimension = "money"
	DimTemperature Dimension = "temperature"
)

// Bank is a set of vocabulary pools. The zero value is unusable; construct
// with Default, or overlay a custom file with Load.
type Bank struct {
	Names       []string
	Places      []string
	Professions []string
	Timeframes  []string
	Categories  []ItemCategory
	// CollectVerbs and GiveVerbs parametrize addition/subtraction prose.
	CollectVerbs []string
	GiveVerbs    []string
	Units        map[Dimension][]Unit
}

// Default returns the built-in vocabulary bank.
func Default() *Bank {
	return &Bank{
		Names: []string{
			"Emma", "Liam", "Olivia", "Noah", "Ava", "Ethan", "Sophia", "Mason",
			"Isabella", "Lucas", "Mia", "Oliver", "Amelia", "Elijah", "Harper",
			"James", "Evelyn", "Benjamin", "Abigail", "Henry", "Priya", "Mateo",
			"Zoe", "Kai", "Nina", "Omar", "Lena", "Diego", "Aisha", "Felix",
		},
		Places: []string{
			"the school fair", "the farmers market", "the public library",
			"the toy store", "the city park", "the bake sale", "the bookshop",
			"the garden center", "the aquarium", "the craft fair", "the orchard",
			"the sports club", "the science museum", "the bakery",
		},
		Professions: []string{
			"teacher", "baker", "librarian", "farmer", "carpenter", "florist",
			"coach", "chef", "gardener", "shopkeeper", "painter", "zookeeper",
		},
		Timeframes: []string{
			"on Monday", "over the weekend", "last week", "this morning",
			"during recess", "after school", "in one afternoon", "yesterday",
		},
		Categories: []ItemCategory{
			{Name: "stickers", Items: []string{"star stickers", "animal stickers", "glitter stickers"}, Container: "packs"},
			{Name: "marbles", Items: []string{"blue marbles", "red marbles", "striped marbles"}, Container: "bags"},
			{Name: "books", Items: []string{"comic books", "picture books", "puzzle books"}, Container: "boxes"},
			{Name: "apples", Items: []string{"red apples", "green apples"}, Container: "baskets"},
			{Name: "pencils", Items: []string{"colored pencils", "sharpened pencils"}, Container: "cases"},
			{Name: "cookies", Items: []string{"chocolate cookies", "oatmeal cookies", "sugar cookies"}, Container: "trays"},
			{Name: "cards", Items: []string{"trading cards", "postcards", "baseball cards"}, Container: "stacks"},
			{Name: "seashells", Items: []string{"spiral shells", "clam shells"}, Container: "buckets"},
			{Name: "flowers", Items: []string{"tulips", "daisies", "sunflowers"}, Container: "bouquets"},
			{Name: "crayons", Items: []string{"crayons", "jumbo crayons"}, Container: "boxes"},
		},
		CollectVerbs: []string{"collected", "found", "bought", "earned", "picked", "won", "gathered"},
		GiveVerbs:    []string{"gave away", "sold", "lost", "donated", "used", "shared out"},
		Units: map[Dimension][]Unit{
			DimLength: {
				{Name: "millimeters", Abbrev: "mm", ToBase: 0.001},
				{Name: "centimeters", Abbrev: "cm", ToBase: 0.01},
				{Name: "meters", Abbrev: "m", ToBase: 1},
				{Name: "kilometers", Abbrev: "km", ToBase: 1000},
				{Name: "inches", Abbrev: "in", ToBase: 0.0254},
				{Name: "feet", Abbrev: "ft", ToBase: 0.3048},
				{Name: "yards", Abbrev: "yd", ToBase: 0.9144},
			},
			DimWeight: {
				{Name: "grams", Abbrev: "g", ToBase: 1},
				{Name: "kilograms", Abbrev: "kg", ToBase: 1000},
				{Name: "ounces", Abbrev: "oz", ToBase: 28.35},
				{Name: "pounds", Abbrev: "lb", ToBase: 453.6},
			},
			DimCapacity: {
				{Name: "milliliters", Abbrev: "mL", ToBase: 0.001},
				{Name: "liters", Abbrev: "L", ToBase: 1},
				{Name: "cups", Abbrev: "c", ToBase: 0.24},
				{Name: "quarts", Abbrev: "qt", ToBase: 0.946},
				{Name: "gallons", Abbrev: "gal", ToBase: 3.785},
			},
			DimTime: {
				{Name: "seconds", Abbrev: "s", ToBase: 1.0 / 60},
				{Name: "minutes", Abbrev: "min", ToBase: 1},
				{Name: "hours", Abbrev: "hr", ToBase: 60},
				{Name: "days", Abbrev: "d", ToBase: 1440},
				{Name: "weeks", Abbrev: "wk", ToBase: 10080},
			},
			DimMoney: {
				{Name: "cents", Abbrev: "¢", ToBase: 1},
				{Name: "nickels", Abbrev: "nickels", ToBase: 5},
				{Name: "dimes", Abbrev: "dimes", ToBase: 10},
				{Name: "quarters", Abbrev: "quarters", ToBase: 25},
				{Name: "dollars", Abbrev: "$", ToBase: 100},
			},
		},
	}
}
