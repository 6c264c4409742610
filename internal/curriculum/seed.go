package curriculum

// seedGrades defines every grade profile the generator knows about.
// Grades 1-8 are arithmetic-centric with hand-tuned number ceilings;
// grades 9-12 and college are defined by subject rather than raw arithmetic.
func seedGrades() []GradeProfile {
	allTypes := []ProblemType{TypeEquations, TypeWord, TypeMixed}

	return []GradeProfile{
		{
			ID: "grade1", DisplayName: "Grade 1", Band: BandElementary, GradeNumber: 1,
			NumberCeiling: 10, ComplexityMultiplier: 0.5,
			AllowedSubjects:   []SubjectID{SubjectArithmetic},
			AllowedOperations: []OperationID{OpAddition, OpSubtraction, OpMixed},
			ProblemTypes:      allTypes,
		},
		{
			ID: "grade2", DisplayName: "Grade 2", Band: BandElementary, GradeNumber: 2,
			NumberCeiling: 25, ComplexityMultiplier: 0.6,
			AllowedSubjects:   []SubjectID{SubjectArithmetic, SubjectMeasurement},
			AllowedOperations: []OperationID{OpAddition, OpSubtraction, OpMixed},
			ProblemTypes:      allTypes,
		},
		{
			ID: "grade3", DisplayName: "Grade 3", Band: BandElementary, GradeNumber: 3,
			NumberCeiling: 100, ComplexityMultiplier: 0.7,
			AllowedSubjects:   []SubjectID{SubjectArithmetic, SubjectMeasurement},
			AllowedOperations: AllOperations(),
			ProblemTypes:      allTypes,
		},
		{
			ID: "grade4", DisplayName: "Grade 4", Band: BandElementary, GradeNumber: 4,
			NumberCeiling: 1000, ComplexityMultiplier: 0.8,
			AllowedSubjects:   []SubjectID{SubjectArithmetic, SubjectMeasurement},
			AllowedOperations: AllOperations(),
			ProblemTypes:      allTypes,
		},
		{
			ID: "grade5", DisplayName: "Grade 5", Band: BandElementary, GradeNumber: 5,
			NumberCeiling: 10000, ComplexityMultiplier: 1.0,
			AllowedSubjects:   []SubjectID{SubjectArithmetic, SubjectMeasurement, SubjectStatistics},
			AllowedOperations: AllOperations(),
			ProblemTypes:      allTypes,
		},
		{
			ID: "grade6", DisplayName: "Grade 6", Band: BandMiddle, GradeNumber: 6,
			NumberCeiling: 10000, ComplexityMultiplier: 1.1, NegativesAllowed: true,
			AllowedSubjects:   []SubjectID{SubjectArithmetic, SubjectMeasurement, SubjectStatistics, SubjectGeometry},
			AllowedOperations: AllOperations(),
			ProblemTypes:      allTypes,
		},
		{
			ID: "grade7", DisplayName: "Grade 7", Band: BandMiddle, GradeNumber: 7,
			NumberCeiling: 100000, ComplexityMultiplier: 1.2, NegativesAllowed: true,
			AllowedSubjects:   []SubjectID{SubjectArithmetic, SubjectMeasurement, SubjectStatistics, SubjectGeometry},
			AllowedOperations: AllOperations(),
			ProblemTypes:      allTypes,
		},
		{
			ID: "grade8", DisplayName: "Grade 8", Band: BandMiddle, GradeNumber: 8,
			NumberCeiling: 100000, ComplexityMultiplier: 1.3, NegativesAllowed: true,
			AllowedSubjects:   []SubjectID{SubjectArithmetic, SubjectAlgebra, SubjectGeometry, SubjectStatistics, SubjectMeasurement},
			AllowedOperations: AllOperations(),
			ProblemTypes:      allTypes,
		},
		{
			ID: "grade9", DisplayName: "Grade 9", Band: BandHigh, GradeNumber: 9,
			NumberCeiling: 100, ComplexityMultiplier: 1.0, NegativesAllowed: true,
			AllowedSubjects:   []SubjectID{SubjectAlgebra, SubjectGeometry, SubjectStatistics},
			AllowedOperations: AllOperations(),
			ProblemTypes:      allTypes,
		},
		{
			ID: "grade10", DisplayName: "Grade 10", Band: BandHigh, GradeNumber: 10,
			NumberCeiling: 100, ComplexityMultiplier: 1.1, NegativesAllowed: true,
			AllowedSubjects:   []SubjectID{SubjectAlgebra, SubjectGeometry, SubjectTrigonometry, SubjectStatistics},
			AllowedOperations: AllOperations(),
			ProblemTypes:      allTypes,
		},
		{
			ID: "grade11", DisplayName: "Grade 11", Band: BandHigh, GradeNumber: 11,
			NumberCeiling: 150, ComplexityMultiplier: 1.2, NegativesAllowed: true,
			AllowedSubjects:   []SubjectID{SubjectAlgebra, SubjectTrigonometry, SubjectPrecalculus, SubjectStatistics},
			AllowedOperations: AllOperations(),
			ProblemTypes:      allTypes,
		},
		{
			ID: "grade12", DisplayName: "Grade 12", Band: BandHigh, GradeNumber: 12,
			NumberCeiling: 200, ComplexityMultiplier: 1.3, NegativesAllowed: true,
			AllowedSubjects:   []SubjectID{SubjectPrecalculus, SubjectCalculus, SubjectTrigonometry, SubjectStatistics},
			AllowedOperations: AllOperations(),
			ProblemTypes:      allTypes,
		},
		{
			ID: "college", DisplayName: "College", Band: BandCollege, GradeNumber: 0,
			NumberCeiling: 500, ComplexityMultiplier: 1.5, NegativesAllowed: true,
			AllowedSubjects: []SubjectID{
				SubjectAlgebra, SubjectGeometry, SubjectTrigonometry,
				SubjectPrecalculus, SubjectCalculus, SubjectStatistics,
			},
			AllowedOperations: AllOperations(),
			ProblemTypes:      allTypes,
		},
	}
}

// defaultGradeID is the fallback profile used when a grade lookup misses.
const defaultGradeID = "grade5"

func seedSubjects() []SubjectCatalog {
	elem := []Band{BandElementary, BandMiddle}
	mid := []Band{BandMiddle, BandHigh}
	high := []Band{BandHigh, BandCollege}
	all := []Band{BandElementary, BandMiddle, BandHigh, BandCollege}

	return []SubjectCatalog{
		{
			ID: SubjectArithmetic, DisplayName: "Arithmetic",
			Topics: []TopicDescriptor{
				{ID: TopicBasicOperations, DisplayName: "Basic Operations", GradeBands: all,
					TierNotes: map[string]string{"easy": "single-step facts", "medium": "multi-digit", "hard": "multi-step"}},
				{ID: TopicPlaceValue, DisplayName: "Place Value", GradeBands: elem,
					TierNotes: map[string]string{"easy": "tens and ones", "medium": "to thousands", "hard": "decimals"}},
				{ID: TopicFractions, DisplayName: "Fractions", GradeBands: []Band{BandElementary, BandMiddle, BandHigh},
					TierNotes: map[string]string{"easy": "same denominator", "medium": "unlike denominators", "hard": "mixed numbers"}},
				{ID: TopicPercentages, DisplayName: "Percentages", GradeBands: mid,
					TierNotes: map[string]string{"easy": "of round numbers", "medium": "discounts", "hard": "reverse percentages"}},
				{ID: TopicRatiosProportions, DisplayName: "Ratios & Proportions", GradeBands: mid},
				{ID: TopicIntegers, DisplayName: "Integers", GradeBands: mid,
					TierNotes: map[string]string{"easy": "small magnitudes", "medium": "all four operations", "hard": "chains"}},
				{ID: TopicExponentsRoots, DisplayName: "Exponents & Roots", GradeBands: mid},
				{ID: TopicOrderOfOperations, DisplayName: "Order of Operations", GradeBands: mid},
				{ID: TopicFactorsMultiples, DisplayName: "Factors & Multiples", GradeBands: []Band{BandElementary, BandMiddle}},
				{ID: TopicEstimation, DisplayName: "Estimation", GradeBands: elem},
				{ID: TopicPatterns, DisplayName: "Number Patterns", GradeBands: elem},
				{ID: TopicWordProblems, DisplayName: "Word Problems", GradeBands: all},
			},
		},
		{
			ID: SubjectAlgebra, DisplayName: "Algebra",
			Topics: []TopicDescriptor{
				{ID: TopicLinearEquations, DisplayName: "Linear Equations", GradeBands: []Band{BandMiddle, BandHigh, BandCollege}},
				{ID: TopicQuadratics, DisplayName: "Quadratic Equations", GradeBands: high},
				{ID: TopicExpressions, DisplayName: "Expressions", GradeBands: []Band{BandMiddle, BandHigh}},
				{ID: TopicExponentsRadicals, DisplayName: "Exponents & Radicals", GradeBands: high},
				{ID: TopicRationalExpressions, DisplayName: "Rational Expressions", GradeBands: high},
				{ID: TopicAbsoluteValue, DisplayName: "Absolute Value", GradeBands: []Band{BandMiddle, BandHigh}},
			},
		},
		{
			ID: SubjectGeometry, DisplayName: "Geometry",
			Topics: []TopicDescriptor{
				{ID: TopicArea, DisplayName: "Area", GradeBands: []Band{BandElementary, BandMiddle, BandHigh}},
				{ID: TopicPerimeter, DisplayName: "Perimeter", GradeBands: []Band{BandElementary, BandMiddle, BandHigh}},
				{ID: TopicPythagorean, DisplayName: "Pythagorean Theorem", GradeBands: mid},
				{ID: TopicSolidGeometry, DisplayName: "3D Shapes & Volume", GradeBands: mid},
				{ID: TopicTransformations, DisplayName: "Transformations", GradeBands: mid},
				{ID: TopicSymmetry, DisplayName: "Symmetry", GradeBands: elem},
				{ID: TopicCongruence, DisplayName: "Congruence & Similarity", GradeBands: high},
			},
		},
		{
			ID: SubjectTrigonometry, DisplayName: "Trigonometry",
			Topics: []TopicDescriptor{
				{ID: TopicTrigRatios, DisplayName: "Trigonometric Ratios", GradeBands: high},
				{ID: TopicAngleConversion, DisplayName: "Degrees & Radians", GradeBands: high},
				{ID: TopicLawOfCosines, DisplayName: "Law of Cosines", GradeBands: high},
				{ID: TopicElevationDepression, DisplayName: "Elevation & Depression", GradeBands: high},
			},
		},
		{
			ID: SubjectCalculus, DisplayName: "Calculus",
			Topics: []TopicDescriptor{
				{ID: TopicDerivatives, DisplayName: "Derivatives", GradeBands: high},
				{ID: TopicLimits, DisplayName: "Limits", GradeBands: high},
			},
		},
		{
			ID: SubjectStatistics, DisplayName: "Statistics",
			Topics: []TopicDescriptor{
				{ID: TopicCentralTendency, DisplayName: "Mean, Median & Mode", GradeBands: []Band{BandElementary, BandMiddle, BandHigh, BandCollege}},
				{ID: TopicSpread, DisplayName: "Range & Deviation", GradeBands: high},
				{ID: TopicProbability, DisplayName: "Probability", GradeBands: []Band{BandMiddle, BandHigh, BandCollege}},
				{ID: TopicCounting, DisplayName: "Counting Principles", GradeBands: high},
			},
		},
		{
			ID: SubjectMeasurement, DisplayName: "Measurement",
			Topics: []TopicDescriptor{
				{ID: TopicLength, DisplayName: "Length", GradeBands: elem},
				{ID: TopicWeight, DisplayName: "Weight", GradeBands: elem},
				{ID: TopicCapacity, DisplayName: "Capacity", GradeBands: elem},
				{ID: TopicTime, DisplayName: "Time", GradeBands: elem},
				{ID: TopicMoney, DisplayName: "Money", GradeBands: elem},
				{ID: TopicTemperature, DisplayName: "Temperature", GradeBands: elem},
			},
		},
		{
			ID: SubjectPrecalculus, DisplayName: "Precalculus",
			Topics: []TopicDescriptor{
				{ID: TopicExpLog, DisplayName: "Exponentials & Logarithms", GradeBands: high},
				{ID: TopicSequencesSeries, DisplayName: "Sequences & Series", GradeBands: high},
				{ID: TopicPolynomials, DisplayName: "Polynomial Functions", GradeBands: high},
				{ID: TopicRationalFunctions, DisplayName: "Rational Functions", GradeBands: high},
				{ID: TopicConics, DisplayName: "Conic Sections", GradeBands: high},
				{ID: TopicVectors, DisplayName: "Vectors", GradeBands: high},
				{ID: TopicComplexNumbers, DisplayName: "Complex Numbers", GradeBands: high},
			},
		},
	}
}

// Topic ids, grouped by subject.
const (
	// Arithmetic.
	TopicBasicOperations   TopicID = "basic-operations"
	TopicPlaceValue        TopicID = "place-value"
	TopicFractions         TopicID = "fractions"
	TopicPercentages       TopicID = "percentages"
	TopicRatiosProportions TopicID = "ratios-proportions"
	TopicIntegers          TopicID = "integers"
	TopicExponentsRoots    TopicID = "exponents-roots"
	TopicOrderOfOperations TopicID = "order-of-operations"
	TopicFactorsMultiples  TopicID = "factors-multiples"
	TopicEstimation        TopicID = "estimation"
	TopicPatterns          TopicID = "patterns"
	TopicWordProblems      TopicID = "word-problems"

	// Algebra.
	TopicLinearEquations     TopicID = "linear-equations"
	TopicQuadratics          TopicID = "quadratic-equations"
	TopicExpressions         TopicID = "expressions"
	TopicExponentsRadicals   TopicID = "exponents-radicals"
	TopicRationalExpressions TopicID = "rational-expressions"
	TopicAbsoluteValue       TopicID = "absolute-value"

	// Geometry.
	TopicArea            TopicID = "area"
	TopicPerimeter       TopicID = "perimeter"
	TopicPythagorean     TopicID = "pythagorean-theorem"
	TopicSolidGeometry   TopicID = "solid-geometry"
	TopicTransformations TopicID = "transformations"
	TopicSymmetry        TopicID = "symmetry"
	TopicCongruence      TopicID = "congruence-similarity"

	// Trigonometry.
	TopicTrigRatios          TopicID = "trig-ratios"
	TopicAngleConversion     TopicID = "angle-conversion"
	TopicLawOfCosines        TopicID = "law-of-cosines"
	TopicElevationDepression TopicID = "elevation-depression"

	// Calculus.
	TopicDerivatives TopicID = "derivatives"
	TopicLimits      TopicID = "limits"

	// Statistics.
	TopicCentralTendency TopicID = "central-tendency"
	TopicSpread          TopicID = "spread"
	TopicProbability     TopicID = "probability"
	TopicCounting        TopicID = "counting"

	// Measurement.
	TopicLength      TopicID = "length"
	TopicWeight      TopicID = "weight"
	TopicCapacity    TopicID = "capacity"
	TopicTime        TopicID = "time"
	TopicMoney       TopicID = "money"
	TopicTemperature TopicID = "temperature"

	// Precalculus.
	TopicExpLog            TopicID = "exponential-logarithmic"
	TopicSequencesSeries   TopicID = "sequences-series"
	TopicPolynomials       TopicID = "polynomials"
	TopicRationalFunctions TopicID = "rational-functions"
	TopicConics            TopicID = "conics"
	TopicVectors           TopicID = "vectors"
	TopicComplexNumbers    TopicID = "complex-numbers"
)
