package parser

import "strings"

// Canonical section bucket names.
const (
	SectionAchievements = "achievements"
	SectionGoals        = "goals"
	SectionChallenges   = "challenges"
	SectionDevelopment  = "development"
	SectionTraining        = "training"
	SectionCareer          = "career"
	SectionOngoingResearch = "ongoing_research"
	SectionLastResearch    = "last_research"

	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionSkills     = "skills"

	SectionTeachingPhilosophy       = "teaching_philosophy"
	SectionLearningOutcome          = "learning_outcome"
	SectionInstructionalMethodology = "instructional_methodology"
	SectionEnhanceLearning          = "other_means_to_enhance_learning"
	SectionOtherTeaching            = "other_teaching"
	SectionAcademicLeadership       = "academic_leadership"
	SectionTeachingMaterials        = "contribution_teaching_materials"
	SectionFutureGoals              = "future_teaching_goals"
	SectionImproveTeaching          = "future_steps_improve_teaching"
)

// GeneralCommentKey is the fixed key comment blocks collapse into.
const GeneralCommentKey = "general"

// Contact holds the atomic fields pulled out of a document independent of
// section state. Absent values stay empty.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	StaffNo   string
}

// Record is the structured output of one parse call. Every rule name of the
// catalog it was built from is present in Sections, empty by default; text
// outside any recognized section is dropped.
type Record struct {
	Sections map[string][]string
	Ratings  map[string]float64
	Comments map[string]string
	Contact  Contact
}

// NewRecord seeds a record with one empty bucket per catalog rule.
func NewRecord(cat *Catalog) Record {
	sections := make(map[string][]string, len(cat.Rules()))
	for _, r := range cat.Rules() {
		sections[r.Name] = []string{}
	}
	return Record{
		Sections: sections,
		Ratings:  map[string]float64{},
		Comments: map[string]string{},
	}
}

// JoinedSection flattens a bucket into one space-joined string, for scalar
// sections such as career aspirations.
func (r Record) JoinedSection(name string) string {
	return strings.Join(r.Sections[name], " ")
}

// Empty reports whether nothing at all was extracted. Callers use this to
// distinguish "no recognizable structure" from a decode failure, which is
// surfaced as an error instead.
func (r Record) Empty() bool {
	for _, lines := range r.Sections {
		if len(lines) > 0 {
			return false
		}
	}
	if len(r.Ratings) > 0 || len(r.Comments) > 0 {
		return false
	}
	return r.Contact == Contact{}
}
