package problemgen

import (
	"go.uber.org/zap"

	"github.com/abhisek/mathsheets/internal/curriculum"
)

// The registries below are the synthesizer's whole dispatch surface,
// built once at package load. A template is a free function; nothing in a
// table carries state.
var (
	// equationTemplates and wordTemplates drive generic arithmetic, keyed
	// by operation.
	equationTemplates map[curriculum.OperationID][]TemplateFn
	wordTemplates     map[curriculum.OperationID][]TemplateFn

	// gradeArithmetic maps a grade id to its hand-tuned arithmetic
	// generator. Grades without an entry use the generic path.
	gradeArithmetic map[string]gradeGeneratorFn

	// topicTemplates holds the arithmetic topic-specific equation shapes.
	topicTemplates map[curriculum.TopicID][]TemplateFn

	// subjectEquations and subjectWord hold the non-arithmetic subject
	// families, keyed by subject.
	subjectEquations map[curriculum.SubjectID][]TemplateFn
	subjectWord      map[curriculum.SubjectID][]TemplateFn
)

// gradeGeneratorFn is a grade-specialized arithmetic generator.
type gradeGeneratorFn func(c *Context, op curriculum.OperationID, ptype curriculum.ProblemType) Problem

func init() {
	equationTemplates = map[curriculum.OperationID][]TemplateFn{
		curriculum.OpAddition:       {eqAddCanonical},
		curriculum.OpSubtraction:    {eqSubCanonical},
		curriculum.OpMultiplication: {eqMulCanonical},
		curriculum.OpDivision:       {eqDivCanonical},
	}

	wordTemplates = map[curriculum.OperationID][]TemplateFn{
		curriculum.OpAddition:       additionWordTemplates(),
		curriculum.OpSubtraction:    subtractionWordTemplates(),
		curriculum.OpMultiplication: multiplicationWordTemplates(),
		curriculum.OpDivision:       divisionWordTemplates(),
	}

	gradeArithmetic = map[string]gradeGeneratorFn{
		"grade1": grade1Arithmetic,
		"grade2": grade2Arithmetic,
		"grade3": grade3Arithmetic,
		"grade4": grade4Arithmetic,
		"grade5": grade5Arithmetic,
		"grade6": grade6Arithmetic,
		"grade7": grade7Arithmetic,
		"grade8": grade8Arithmetic,
	}

	topicTemplates = map[curriculum.TopicID][]TemplateFn{
		curriculum.TopicFractions:         fractionTemplates(),
		curriculum.TopicPercentages:       percentageTemplates(),
		curriculum.TopicRatiosProportions: ratioTemplates(),
		curriculum.TopicIntegers:          integerTemplates(),
		curriculum.TopicExponentsRoots:    exponentTemplates(),
		curriculum.TopicOrderOfOperations: orderOfOperationsTemplates(),
		curriculum.TopicFactorsMultiples:  factorsMultiplesTemplates(),
		curriculum.TopicPlaceValue:        placeValueTemplates(),
		curriculum.TopicEstimation:        estimationTemplates(),
		curriculum.TopicPatterns:          patternTemplates(),
	}

	subjectEquations = map[curriculum.SubjectID][]TemplateFn{
		curriculum.SubjectAlgebra:      algebraEquationTemplates(),
		curriculum.SubjectGeometry:     geometryEquationTemplates(),
		curriculum.SubjectTrigonometry: trigEquationTemplates(),
		curriculum.SubjectCalculus:     calculusTemplates(),
		curriculum.SubjectStatistics:   statisticsTemplates(),
		curriculum.SubjectMeasurement:  measurementTemplates(),
		curriculum.SubjectPrecalculus:  precalcTemplates(),
	}

	subjectWord = map[curriculum.SubjectID][]TemplateFn{
		curriculum.SubjectAlgebra:      algebraWordTemplates(),
		curriculum.SubjectGeometry:     geometryWordTemplates(),
		curriculum.SubjectTrigonometry: trigWordTemplates(),
		curriculum.SubjectStatistics:   statisticsWordTemplates(),
		curriculum.SubjectMeasurement:  measurementWordTemplates(),
	}
}

// PseudoOperation returns the dispatch tag a subject substitutes for the
// caller's arithmetic operation. Arithmetic keeps the operation as-is.
func PseudoOperation(subject curriculum.SubjectID) string {
	switch subject {
	case curriculum.SubjectAlgebra:
		return "algebraic"
	case curriculum.SubjectGeometry:
		return "geometric"
	case curriculum.SubjectTrigonometry:
		return "trigonometric"
	case curriculum.SubjectCalculus:
		return "calculus"
	case curriculum.SubjectStatistics:
		return "statistical"
	case curriculum.SubjectMeasurement:
		return "measurement"
	case curriculum.SubjectPrecalculus:
		return "precalculus"
	default:
		return ""
	}
}

// Synthesize produces one problem for the given subject, operation, problem
// type, and optional arithmetic topic (empty means no topic filter).
// The caller resolves "mixed" problem types before calling; one that slips
// through is resolved here with a coin flip.
func Synthesize(c *Context, subject curriculum.SubjectID, op curriculum.OperationID, ptype curriculum.ProblemType, topic curriculum.TopicID) Problem {
	if ptype == curriculum.TypeMixed {
		if c.chance(0.5) {
			ptype = curriculum.TypeEquations
		} else {
			ptype = curriculum.TypeWord
		}
	}

	if subject != curriculum.SubjectArithmetic {
		return synthesizeSubject(c, subject, ptype)
	}

	// Topic-specific arithmetic overrides both the grade table and the
	// generic path. The word-problems topic routes to the word templates
	// instead of owning shapes of its own.
	if topic != "" && topic != curriculum.TopicBasicOperations {
		if topic == curriculum.TopicWordProblems {
			return genericArithmetic(c, op, curriculum.TypeWord)
		}
		if tmpls, ok := topicTemplates[topic]; ok {
			return pickTemplate(c, tmpls)(c)
		}
		c.Log.Warn("unrecognized arithmetic topic, using generic arithmetic",
			zap.String("topic", string(topic)))
	}

	// Grade-specialized arithmetic wins over the generic difficulty-scaled
	// path when an entry exists for the active grade.
	if gen, ok := gradeArithmetic[c.Grade.ID]; ok {
		return gen(c, op, ptype)
	}

	return genericArithmetic(c, op, ptype)
}

// synthesizeSubject dispatches a non-arithmetic subject. Subjects without a
// word-problem family fall back to their equation family.
func synthesizeSubject(c *Context, subject curriculum.SubjectID, ptype curriculum.ProblemType) Problem {
	if ptype == curriculum.TypeWord {
		if tmpls, ok := subjectWord[subject]; ok && len(tmpls) > 0 {
			return pickTemplate(c, tmpls)(c)
		}
	}
	tmpls, ok := subjectEquations[subject]
	if !ok || len(tmpls) == 0 {
		c.Log.Warn("unrecognized subject, using generic arithmetic",
			zap.String("subject", string(subject)))
		return genericArithmetic(c, curriculum.OpAddition, ptype)
	}
	return pickTemplate(c, tmpls)(c)
}
