package session

import "github.com/abhisek/mathsheets/internal/curriculum"

// TopicSelection narrows arithmetic generation to a topic subset. The zero
// value selects all topics.
type TopicSelection struct {
	all bool
	ids []curriculum.TopicID
}

// AllTopics selects every topic the active grade offers.
func AllTopics() TopicSelection {
	return TopicSelection{all: true}
}

// Topics selects the given topics; a candidate draws one of them uniformly.
// An empty list behaves like AllTopics.
func Topics(ids ...curriculum.TopicID) TopicSelection {
	if len(ids) == 0 {
		return AllTopics()
	}
	return TopicSelection{ids: ids}
}

// IsAll reports whether the selection covers every topic.
func (t TopicSelection) IsAll() bool { return t.all || len(t.ids) == 0 }

// IDs returns the selected topic ids, nil for an all-topics selection.
func (t TopicSelection) IDs() []curriculum.TopicID {
	if t.IsAll() {
		return nil
	}
	return t.ids
}
