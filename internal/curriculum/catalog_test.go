package curriculum

import "testing"

func TestGradeByID(t *testing.T) {
	g, ok := GradeByID("grade1")
	if !ok {
		t.Fatal("grade1 not found")
	}
	if g.NumberCeiling != 10 {
		t.Errorf("grade1 ceiling = %d, want 10", g.NumberCeiling)
	}
	if g.AllowsOperation(OpDivision) {
		t.Error("grade1 should not allow division")
	}
	if !g.AllowsSubject(SubjectArithmetic) {
		t.Error("grade1 should allow arithmetic")
	}

	if _, ok := GradeByID("grade99"); ok {
		t.Error("grade99 should not resolve")
	}
}

func TestDefaultGrade(t *testing.T) {
	g := DefaultGrade()
	if g.ID != "grade5" {
		t.Errorf("default grade = %q, want grade5", g.ID)
	}
	if g.NumberCeiling < 1 {
		t.Errorf("default ceiling = %d, want >= 1", g.NumberCeiling)
	}
}

func TestDifficultyByID(t *testing.T) {
	cases := []struct {
		id         string
		wantOK     bool
		wantFactor float64
	}{
		{"easy", true, 0.6},
		{"medium", true, 1.0},
		{"hard", true, 1.4},
		{"extreme", false, 0},
	}
	for _, tc := range cases {
		d, ok := DifficultyByID(tc.id)
		if ok != tc.wantOK {
			t.Errorf("DifficultyByID(%q) ok = %v, want %v", tc.id, ok, tc.wantOK)
			continue
		}
		if ok && d.Multiplier != tc.wantFactor {
			t.Errorf("DifficultyByID(%q) multiplier = %v, want %v", tc.id, d.Multiplier, tc.wantFactor)
		}
	}
}

func TestTopicsForGrade(t *testing.T) {
	g1, _ := GradeByID("grade1")
	topics := TopicsForGrade(SubjectArithmetic, g1)
	if len(topics) == 0 {
		t.Fatal("grade1 arithmetic has no topics")
	}
	for _, topic := range topics {
		if !topic.InBand(BandElementary) {
			t.Errorf("topic %q returned for grade1 but not in elementary band", topic.ID)
		}
	}

	// Trig is a high-school subject; an elementary grade should see none of it.
	if got := TopicsForGrade(SubjectTrigonometry, g1); len(got) != 0 {
		t.Errorf("grade1 trigonometry topics = %d, want 0", len(got))
	}

	if got := TopicsForGrade(SubjectID("botany"), g1); got != nil {
		t.Errorf("unknown subject topics = %v, want nil", got)
	}
}

func TestSeedIsValid(t *testing.T) {
	if err := validateSeed(seedGrades(), seedSubjects()); err != nil {
		t.Fatalf("seed validation failed: %v", err)
	}
}

func TestValidateSeedCatchesBadData(t *testing.T) {
	grades := seedGrades()
	grades[0].NumberCeiling = 0
	grades = append(grades, grades[1]) // duplicate ID
	err := validateSeed(grades, seedSubjects())
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
}
