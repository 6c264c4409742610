package curriculum

// OperationID identifies an arithmetic operation a caller may request.
// Non-arithmetic subjects ignore the requested operation and dispatch on
// their own pseudo-operation instead.
type OperationID string

const (
	OpAddition       OperationID = "addition"
	OpSubtraction    OperationID = "subtraction"
	OpMultiplication OperationID = "multiplication"
	OpDivision       OperationID = "division"
	OpMixed          OperationID = "mixed"
)

// AllOperations returns the selectable arithmetic operations in display order.
func AllOperations() []OperationID {
	return []OperationID{OpAddition, OpSubtraction, OpMultiplication, OpDivision, OpMixed}
}

// ProblemType describes the requested problem format.
type ProblemType string

const (
	TypeEquations ProblemType = "equations"
	TypeWord      ProblemType = "word"
	TypeMixed     ProblemType = "mixed"
)

// GradeProfile holds one grade level's generation constraints.
type GradeProfile struct {
	ID          string
	DisplayName string
	Band        Band

	// NumberCeiling is the maximum operand magnitude before the difficulty
	// multiplier is applied. Always >= 1.
	NumberCeiling int

	// ComplexityMultiplier scales number ranges for generators that want a
	// softer knob than the raw ceiling.
	ComplexityMultiplier float64

	AllowedSubjects   []SubjectID
	AllowedOperations []OperationID
	ProblemTypes      []ProblemType

	// GradeNumber is the numeric grade (1-12), or 0 for college.
	GradeNumber int

	// NegativesAllowed reports whether subtraction may produce negative
	// results at this grade. Integers are introduced in grade 6.
	NegativesAllowed bool
}

// AllowsSubject reports whether the subject is available at this grade.
func (g GradeProfile) AllowsSubject(s SubjectID) bool {
	for _, sub := range g.AllowedSubjects {
		if sub == s {
			return true
		}
	}
	return false
}

// AllowsOperation reports whether the operation is available at this grade.
func (g GradeProfile) AllowsOperation(op OperationID) bool {
	for _, o := range g.AllowedOperations {
		if o == op {
			return true
		}
	}
	return false
}

// Difficulty is a named difficulty level with its ceiling multiplier.
type Difficulty struct {
	ID          string
	DisplayName string
	Multiplier  float64
}

// AllDifficulties returns the difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		{ID: "easy", DisplayName: "Easy", Multiplier: 0.6},
		{ID: "medium", DisplayName: "Medium", Multiplier: 1.0},
		{ID: "hard", DisplayName: "Hard", Multiplier: 1.4},
	}
}

// DifficultyByID looks up a difficulty level by id.
func DifficultyByID(id string) (Difficulty, bool) {
	for _, d := range AllDifficulties() {
		if d.ID == id {
			return d, true
		}
	}
	return Difficulty{}, false
}

// DefaultDifficulty returns the fallback difficulty ("medium", multiplier 1.0).
func DefaultDifficulty() Difficulty {
	d, _ := DifficultyByID("medium")
	return d
}
