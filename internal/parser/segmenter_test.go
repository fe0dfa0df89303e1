package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentHeaderLinesExcludedFromContent(t *testing.T) {
	text := "Achievements\nDelivered the new curriculum\nChallenges\nLimited lab capacity"
	cat := AppraisalCatalog()
	rec := NewRecord(cat)

	Segment(text, cat, &rec)

	assert.Equal(t, []string{"Delivered the new curriculum"}, rec.Sections[SectionAchievements])
	assert.Equal(t, []string{"Limited lab capacity"}, rec.Sections[SectionChallenges])
	for name, lines := range rec.Sections {
		for _, line := range lines {
			assert.NotEqual(t, "Achievements", line, "header leaked into %s", name)
			assert.NotEqual(t, "Challenges", line, "header leaked into %s", name)
		}
	}
}

func TestSegmentFirstMatchingRuleWins(t *testing.T) {
	// "Achievements and Goals" satisfies both the achievements and goals
	// rules; catalog order decides.
	text := "Achievements and Goals\nShipped the reporting tool"
	cat := AppraisalCatalog()
	rec := NewRecord(cat)

	Segment(text, cat, &rec)

	assert.Equal(t, []string{"Shipped the reporting tool"}, rec.Sections[SectionAchievements])
	assert.Empty(t, rec.Sections[SectionGoals])
}

func TestSegmentEveryRuleHasABucket(t *testing.T) {
	cat := AppraisalCatalog()
	rec := NewRecord(cat)

	Segment("no headers anywhere in this text", cat, &rec)

	require.Len(t, rec.Sections, len(cat.Rules()))
	for _, rule := range cat.Rules() {
		lines, ok := rec.Sections[rule.Name]
		require.True(t, ok, "missing bucket for %s", rule.Name)
		assert.Empty(t, lines)
	}
}

func TestSegmentBucketsAreCumulative(t *testing.T) {
	text := "Achievements\nFirst win\nChallenges\nBudget cuts\nAchievements\nSecond win"
	cat := AppraisalCatalog()
	rec := NewRecord(cat)

	Segment(text, cat, &rec)

	assert.Equal(t, []string{"First win", "Second win"}, rec.Sections[SectionAchievements])
	assert.Equal(t, []string{"Budget cuts"}, rec.Sections[SectionChallenges])
}

func TestSegmentContentBeforeFirstHeaderDropped(t *testing.T) {
	text := "Annual review for Dr. Smith\nPrepared March 2025\nAchievements\nMentored two juniors"
	cat := AppraisalCatalog()
	rec := NewRecord(cat)

	Segment(text, cat, &rec)

	assert.Equal(t, []string{"Mentored two juniors"}, rec.Sections[SectionAchievements])
	total := 0
	for _, lines := range rec.Sections {
		total += len(lines)
	}
	assert.Equal(t, 1, total)
}

func TestSegmentBlankLinesSkipped(t *testing.T) {
	text := "Achievements\n\n  \nFirst win\n\nSecond win\n"
	cat := AppraisalCatalog()
	rec := NewRecord(cat)

	Segment(text, cat, &rec)

	assert.Equal(t, []string{"First win", "Second win"}, rec.Sections[SectionAchievements])
}

func TestSegmentPortfolioLiteralHeadings(t *testing.T) {
	text := "Teaching Philosophy\nStudents learn by doing.\nSteps Taken to Improve Teaching\nAttended a pedagogy workshop\nTeaching Goals for the Next 3 Years\nIntroduce peer review"
	cat := PortfolioCatalog()
	rec := NewRecord(cat)

	Segment(text, cat, &rec)

	assert.Equal(t, []string{"Students learn by doing."}, rec.Sections[SectionTeachingPhilosophy])
	assert.Equal(t, []string{"Attended a pedagogy workshop"}, rec.Sections[SectionImproveTeaching])
	assert.Equal(t, "Introduce peer review", rec.JoinedSection(SectionFutureGoals))
}
