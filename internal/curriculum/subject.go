package curriculum

// SubjectID identifies a math subject.
type SubjectID string

const (
	SubjectArithmetic   SubjectID = "arithmetic"
	SubjectAlgebra      SubjectID = "algebra"
	SubjectGeometry     SubjectID = "geometry"
	SubjectTrigonometry SubjectID = "trigonometry"
	SubjectCalculus     SubjectID = "calculus"
	SubjectStatistics   SubjectID = "statistics"
	SubjectMeasurement  SubjectID = "measurement"
	SubjectPrecalculus  SubjectID = "precalculus"
)

// AllSubjects returns all subjects in display order.
func AllSubjects() []SubjectID {
	return []SubjectID{
		SubjectArithmetic,
		SubjectAlgebra,
		SubjectGeometry,
		SubjectTrigonometry,
		SubjectPrecalculus,
		SubjectCalculus,
		SubjectStatistics,
		SubjectMeasurement,
	}
}

// SubjectDisplayName returns a human-readable name for a subject.
func SubjectDisplayName(s SubjectID) string {
	switch s {
	case SubjectArithmetic:
		return "Arithmetic"
	case SubjectAlgebra:
		return "Algebra"
	case SubjectGeometry:
		return "Geometry"
	case SubjectTrigonometry:
		return "Trigonometry"
	case SubjectCalculus:
		return "Calculus"
	case SubjectStatistics:
		return "Statistics"
	case SubjectMeasurement:
		return "Measurement"
	case SubjectPrecalculus:
		return "Precalculus"
	default:
		return string(s)
	}
}

// Band represents a grade band used to filter topics.
type Band string

const (
	BandElementary Band = "elementary" // grades 1-5
	BandMiddle     Band = "middle"     // grades 6-8
	BandHigh       Band = "high"       // grades 9-12
	BandCollege    Band = "college"
)

// TopicID identifies a topic within a subject.
type TopicID string

// TopicDescriptor describes one topic within a subject's taxonomy.
type TopicDescriptor struct {
	ID          TopicID
	DisplayName string
	// GradeBands lists the bands this topic is taught in.
	GradeBands []Band
	// TierNotes is per-difficulty descriptive text shown in the catalog
	// listing. Display-only; generation logic never reads it.
	TierNotes map[string]string
}

// InBand reports whether the topic is taught in the given band.
func (t TopicDescriptor) InBand(b Band) bool {
	for _, band := range t.GradeBands {
		if band == b {
			return true
		}
	}
	return false
}

// SubjectCatalog is one subject's topic taxonomy.
type SubjectCatalog struct {
	ID          SubjectID
	DisplayName string
	Topics      []TopicDescriptor
}

// Topic returns the descriptor for id, if present.
func (c SubjectCatalog) Topic(id TopicID) (TopicDescriptor, bool) {
	for _, t := range c.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return TopicDescriptor{}, false
}
