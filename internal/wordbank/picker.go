package wordbank

import "math/rand"

// Picker draws vocabulary from a Bank using an injected random source so
// callers can seed it for reproducible output.
type Picker struct {
	bank *Bank
	rng  *rand.Rand
}

// NewPicker binds a Bank to a random source.
func NewPicker(bank *Bank, rng *rand.Rand) *Picker {
	return &Picker{bank: bank, rng: rng}
}

// Bank returns the underlying bank.
func (p *Picker) Bank() *Bank { return p.bank }

// Pick returns one element of pool chosen uniformly at random.
// Returns the zero value for an empty pool.
func Pick[T any](p *Picker, pool []T) T {
	var zero T
	if len(pool) == 0 {
		return zero
	}
	return pool[p.rng.Intn(len(pool))]
}

// PickN returns n distinct elements of pool, sampled without replacement.
// If n exceeds the pool size the whole pool is returned (shuffled).
func PickN[T any](p *Picker, pool []T, n int) []T {
	if n > len(pool) {
		n = len(pool)
	}
	idx := p.rng.Perm(len(pool))[:n]
	out := make([]T, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

// Name returns a random first name.
func (p *Picker) Name() string { return Pick(p, p.bank.Names) }

// TwoNames returns two distinct names.
func (p *Picker) TwoNames() (string, string) {
	names := PickN(p, p.bank.Names, 2)
	if len(names) < 2 {
		return p.Name(), p.Name()
	}
	return names[0], names[1]
}

// Place returns a random place phrase.
func (p *Picker) Place() string { return Pick(p, p.bank.Places) }

// Profession returns a random profession.
func (p *Picker) Profession() string { return Pick(p, p.bank.Professions) }

// Timeframe returns a random timeframe phrase.
func (p *Picker) Timeframe() string { return Pick(p, p.bank.Timeframes) }

// CollectVerb returns a past-tense acquiring verb.
func (p *Picker) CollectVerb() string { return Pick(p, p.bank.CollectVerbs) }

// GiveVerb returns a past-tense relinquishing verb.
func (p *Picker) GiveVerb() string { return Pick(p, p.bank.GiveVerbs) }

// Item returns a random item name with its category's container word.
func (p *Picker) Item() (item, container string) {
	cat := Pick(p, p.bank.Categories)
	return Pick(p, cat.Items), cat.Container
}

// UnitPair returns two distinct units of the given dimension.
// ok is false when the dimension has fewer than two units.
func (p *Picker) UnitPair(d Dimension) (from, to Unit, ok bool) {
	units := p.bank.Units[d]
	if len(units) < 2 {
		return Unit{}, Unit{}, false
	}
	pair := PickN(p, units, 2)
	return pair[0], pair[1], true
}

// Dimensions returns the dimensions present in the bank.
func (p *Picker) Dimensions() []Dimension {
	out := make([]Dimension, 0, len(p.bank.Units))
	for _, d := range []Dimension{DimLength, DimWeight, DimCapacity, DimTime, DimMoney} {
		if len(p.bank.Units[d]) > 0 {
			out = append(out, d)
		}
	}
	return out
}
