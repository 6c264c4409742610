package curriculum

import (
	"fmt"
	"slices"
)

// catalog holds the seeded grades and subjects with lookup indices.
type catalog struct {
	grades    []GradeProfile
	subjects  []SubjectCatalog
	gradeByID map[string]*GradeProfile
	subjByID  map[SubjectID]*SubjectCatalog
}

// c is the package-level catalog singleton, built by init.
var c *catalog

func init() {
	grades := seedGrades()
	subjects := seedSubjects()
	if err := validateSeed(grades, subjects); err != nil {
		panic(fmt.Sprintf("curriculum: invalid seed data: %v", err))
	}
	c = buildCatalog(grades, subjects)
}

func buildCatalog(grades []GradeProfile, subjects []SubjectCatalog) *catalog {
	ct := &catalog{
		grades:    grades,
		subjects:  subjects,
		gradeByID: make(map[string]*GradeProfile, len(grades)),
		subjByID:  make(map[SubjectID]*SubjectCatalog, len(subjects)),
	}
	for i := range ct.grades {
		ct.gradeByID[ct.grades[i].ID] = &ct.grades[i]
	}
	for i := range ct.subjects {
		ct.subjByID[ct.subjects[i].ID] = &ct.subjects[i]
	}
	return ct
}

// GradeByID returns the profile for id. The second return is false on a miss;
// callers are expected to fall back to DefaultGrade and log, never fail.
func GradeByID(id string) (GradeProfile, bool) {
	g, ok := c.gradeByID[id]
	if !ok {
		return GradeProfile{}, false
	}
	return *g, true
}

// DefaultGrade returns the fallback profile used for unrecognized grade ids.
func DefaultGrade() GradeProfile {
	g, ok := GradeByID(defaultGradeID)
	if !ok {
		panic("curriculum: default grade missing from seed")
	}
	return g
}

// AllGrades returns every grade profile in seed order.
func AllGrades() []GradeProfile {
	return slices.Clone(c.grades)
}

// SubjectByID returns the catalog for a subject id.
func SubjectByID(id SubjectID) (SubjectCatalog, bool) {
	s, ok := c.subjByID[id]
	if !ok {
		return SubjectCatalog{}, false
	}
	return *s, true
}

// AllSubjectCatalogs returns every subject catalog in seed order.
func AllSubjectCatalogs() []SubjectCatalog {
	return slices.Clone(c.subjects)
}

// TopicsForGrade returns the subject's topics taught in the grade's band,
// in catalog order. Unknown subjects yield an empty slice.
func TopicsForGrade(subject SubjectID, grade GradeProfile) []TopicDescriptor {
	s, ok := c.subjByID[subject]
	if !ok {
		return nil
	}
	var out []TopicDescriptor
	for _, t := range s.Topics {
		if t.InBand(grade.Band) {
			out = append(out, t)
		}
	}
	return out
}
