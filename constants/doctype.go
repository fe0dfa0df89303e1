package constants

import "strings"

// DocType identifies which parse profile applies to a document.
type DocType string

const (
	Appraisal         DocType = "APPRAISAL"
	Resume            DocType = "RESUME"
	TeachingPortfolio DocType = "PORTFOLIO"
)

var allDocTypes = []DocType{Appraisal, Resume, TeachingPortfolio}

func DocTypesAsStrings() []string {
	out := make([]string, len(allDocTypes))
	for i, t := range allDocTypes {
		out[i] = string(t)
	}
	return out
}

// ParseDocType maps free-form input to a canonical DocType.
func ParseDocType(input string) (DocType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	synonyms := map[string]DocType{
		"APPRAISAL":          Appraisal,
		"PERFORMANCE":        Appraisal,
		"RESUME":             Resume,
		"CV":                 Resume,
		"PORTFOLIO":          TeachingPortfolio,
		"TEACHING_PORTFOLIO": TeachingPortfolio,
	}
	if t, ok := synonyms[normalized]; ok {
		return t, true
	}
	return "", false
}
