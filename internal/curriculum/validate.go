package curriculum

import (
	"fmt"
	"strings"
)

// validateSeed performs structural checks on the seed data.
// Returns a combined error describing all problems found, or nil if valid.
func validateSeed(grades []GradeProfile, subjects []SubjectCatalog) error {
	var errs []string

	subjSet := make(map[SubjectID]bool, len(subjects))
	for _, s := range subjects {
		if subjSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate subject ID: %q", s.ID))
		}
		subjSet[s.ID] = true

		topicSet := make(map[TopicID]bool, len(s.Topics))
		for _, t := range s.Topics {
			if topicSet[t.ID] {
				errs = append(errs, fmt.Sprintf("subject %q: duplicate topic ID: %q", s.ID, t.ID))
			}
			topicSet[t.ID] = true
			if len(t.GradeBands) == 0 {
				errs = append(errs, fmt.Sprintf("subject %q: topic %q has no grade bands", s.ID, t.ID))
			}
		}
	}

	gradeSet := make(map[string]bool, len(grades))
	foundDefault := false
	for _, g := range grades {
		if gradeSet[g.ID] {
			errs = append(errs, fmt.Sprintf("duplicate grade ID: %q", g.ID))
		}
		gradeSet[g.ID] = true
		if g.ID == defaultGradeID {
			foundDefault = true
		}
		if g.NumberCeiling < 1 {
			errs = append(errs, fmt.Sprintf("grade %q: number ceiling must be >= 1, got %d", g.ID, g.NumberCeiling))
		}
		if g.ComplexityMultiplier <= 0 {
			errs = append(errs, fmt.Sprintf("grade %q: complexity multiplier must be positive", g.ID))
		}
		if len(g.AllowedSubjects) == 0 {
			errs = append(errs, fmt.Sprintf("grade %q: no allowed subjects", g.ID))
		}
		for _, sub := range g.AllowedSubjects {
			if !subjSet[sub] {
				errs = append(errs, fmt.Sprintf("grade %q references nonexistent subject %q", g.ID, sub))
			}
		}
		if len(g.AllowedOperations) == 0 {
			errs = append(errs, fmt.Sprintf("grade %q: no allowed operations", g.ID))
		}
	}
	if !foundDefault {
		errs = append(errs, fmt.Sprintf("default grade %q missing", defaultGradeID))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d problem(s):\n  %s", len(errs), strings.Join(errs, "\n  "))
	}
	return nil
}
