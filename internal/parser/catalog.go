package parser

import (
	"regexp"
	"strings"
)

// SectionRule maps a heading pattern to the named bucket its content
// accumulates into. Patterns apply to a single trimmed line, never the whole
// document.
type SectionRule struct {
	Name    string
	pattern *regexp.Regexp
	literal string // lowercased substring match when non-empty
	Scalar  bool   // content is joined with spaces instead of kept as a list
}

// Matches reports whether the rule's pattern occurs in the line
// (case-insensitive substring semantics for both rule kinds).
func (r SectionRule) Matches(line string) bool {
	if r.literal != "" {
		return strings.Contains(strings.ToLower(line), r.literal)
	}
	return r.pattern.MatchString(strings.ToLower(line))
}

// RegexRule builds a rule from a keyword-alternation pattern such as
// "achievements?|accomplishments?|completed tasks".
func RegexRule(name, pattern string) SectionRule {
	return SectionRule{Name: name, pattern: regexp.MustCompile(pattern)}
}

// LiteralRule builds a rule matching a fixed heading.
func LiteralRule(name, heading string) SectionRule {
	return SectionRule{Name: name, literal: strings.ToLower(heading)}
}

// ScalarRule is a regex rule whose bucket flattens to a single string.
func ScalarRule(name, pattern string) SectionRule {
	r := RegexRule(name, pattern)
	r.Scalar = true
	return r
}

// Catalog is a read-only ordered rule sequence. Order encodes precedence:
// when a line could match several rules, the earliest one wins, so a more
// specific pattern must be listed before a more general one. A catalog is
// built once and reused across parse calls.
type Catalog struct {
	rules []SectionRule
}

func NewCatalog(rules ...SectionRule) *Catalog {
	return &Catalog{rules: rules}
}

// Rules returns the rule sequence in catalog order.
func (c *Catalog) Rules() []SectionRule {
	return c.rules
}

// Match returns the first rule matching the line, in catalog order.
func (c *Catalog) Match(line string) (SectionRule, bool) {
	for _, r := range c.rules {
		if r.Matches(line) {
			return r, true
		}
	}
	return SectionRule{}, false
}

// AppraisalCatalog holds the section markers recognized in performance
// appraisal documents.
func AppraisalCatalog() *Catalog {
	return NewCatalog(
		RegexRule(SectionAchievements, `achievements?|accomplishments?|completed tasks`),
		RegexRule(SectionGoals, `goals?|objectives?|targets?|plans?`),
		RegexRule(SectionChallenges, `challenges?|difficulties?|obstacles?`),
		RegexRule(SectionDevelopment, `development needs?|areas for improvement`),
		RegexRule(SectionTraining, `training|learning|development requirements?`),
		ScalarRule(SectionCareer, `career aspirations?|career goals?|future plans?`),
		RegexRule(SectionOngoingResearch, `ongoing research|current research`),
		RegexRule(SectionLastResearch, `last research|completed research|previous research`),
	)
}

// ResumeCatalog covers the free-text portions of a staff resume.
func ResumeCatalog() *Catalog {
	return NewCatalog(
		RegexRule(SectionEducation, `education|academic qualifications?`),
		RegexRule(SectionExperience, `experience|employment history|work history`),
		RegexRule(SectionSkills, `skills?|competenc(?:y|ies)`),
	)
}

// PortfolioCatalog recognizes the fixed headings of the teaching portfolio
// template. Headings are long enough that literal matching is less fragile
// than alternation patterns.
func PortfolioCatalog() *Catalog {
	return NewCatalog(
		LiteralRule(SectionTeachingPhilosophy, "teaching philosophy"),
		LiteralRule(SectionLearningOutcome, "learning outcome"),
		LiteralRule(SectionInstructionalMethodology, "instructional methodology"),
		LiteralRule(SectionEnhanceLearning, "other means to enhance learning"),
		LiteralRule(SectionOtherTeaching, "other teaching"),
		LiteralRule(SectionAcademicLeadership, "teaching achievement and academic leadership"),
		LiteralRule(SectionTeachingMaterials, "contribution to development of teaching materials"),
		LiteralRule(SectionFutureGoals, "teaching goals for the next 3 years"),
		LiteralRule(SectionImproveTeaching, "steps taken to improve teaching"),
	)
}
