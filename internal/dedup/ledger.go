// Package dedup decides whether a freshly synthesized problem may enter a
// generation run's output stream. It catches exact repeats with a set lookup
// and "same template, different numbers" near-repeats with a cheap
// bag-of-words overlap score.
package dedup

import "strings"

// DefaultThreshold is the word-overlap score above which a candidate is
// treated as a near-duplicate of an accepted question.
const DefaultThreshold = 0.85

// Ledger tracks the normalized question strings accepted during one
// generation run. Not safe for concurrent use; a run owns its ledger.
type Ledger struct {
	threshold float64
	seen      map[string]struct{}
	// accepted keeps insertion order for the O(n) similarity scan.
	accepted []string
}

// NewLedger creates a Ledger with the given similarity threshold.
// Pass DefaultThreshold unless a test needs a tighter or looser bound.
func NewLedger(threshold float64) *Ledger {
	return &Ledger{
		threshold: threshold,
		seen:      make(map[string]struct{}),
	}
}

// Normalize maps a question to its dedup key: trimmed and lowercased, so
// duplicates differing only in case or surrounding whitespace still match.
func Normalize(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}

// Accept reports whether the question is distinct enough to keep, and if so
// records it. A rejected question is not recorded.
func (l *Ledger) Accept(question string) bool {
	key := Normalize(question)

	if _, dup := l.seen[key]; dup {
		return false
	}
	for _, prev := range l.accepted {
		if overlap(key, prev) > l.threshold {
			return false
		}
	}

	l.Record(question)
	return true
}

// Record inserts the question unconditionally. Used for the best-effort
// path when the caller's retry budget is exhausted.
func (l *Ledger) Record(question string) {
	key := Normalize(question)
	if _, dup := l.seen[key]; dup {
		return
	}
	l.seen[key] = struct{}{}
	l.accepted = append(l.accepted, key)
}

// SeenExact reports whether the exact normalized question was recorded.
func (l *Ledger) SeenExact(question string) bool {
	_, ok := l.seen[Normalize(question)]
	return ok
}

// Len returns the number of recorded questions.
func (l *Ledger) Len() int { return len(l.accepted) }

// Reset clears all recorded questions. Must be called between runs so one
// run's output does not suppress the next run's.
func (l *Ledger) Reset() {
	l.seen = make(map[string]struct{})
	l.accepted = l.accepted[:0]
}

// overlap scores two normalized questions by shared word count divided by
// the larger word count. 1.0 means one's words are a superset of the
// other's; numbers count as words, which is what lets two instantiations of
// the same prose template score near 1.0.
func overlap(a, b string) float64 {
	wa := strings.Fields(a)
	wb := strings.Fields(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(wa))
	for _, w := range wa {
		set[w] = struct{}{}
	}
	common := 0
	counted := make(map[string]struct{}, len(wb))
	for _, w := range wb {
		if _, ok := set[w]; !ok {
			continue
		}
		if _, dup := counted[w]; dup {
			continue
		}
		counted[w] = struct{}{}
		common++
	}

	max := len(wa)
	if len(wb) > max {
		max = len(wb)
	}
	return float64(common) / float64(max)
}
