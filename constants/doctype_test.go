package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDocType(t *testing.T) {
	tests := []struct {
		input string
		want  DocType
		ok    bool
	}{
		{"appraisal", Appraisal, true},
		{" Appraisal ", Appraisal, true},
		{"PERFORMANCE", Appraisal, true},
		{"cv", Resume, true},
		{"resume", Resume, true},
		{"teaching_portfolio", TeachingPortfolio, true},
		{"portfolio", TeachingPortfolio, true},
		{"invoice", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDocType(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, "PDF", MapExtToFormat(".PDF"))
	assert.Equal(t, "PDF", MapExtToFormat("pdf"))
	assert.Equal(t, "TXT", MapExtToFormat(".txt"))
	assert.Equal(t, "", MapExtToFormat("docx"))
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "txt", NormalizeExt("txt"))
}
