package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/nlp"
)

func day(n int) time.Time {
	return time.Date(2025, time.January, n, 0, 0, 0, 0, time.UTC)
}

func TestProcessTracksNewItems(t *testing.T) {
	tr := New(nil, nil)
	out := tr.Process(context.Background(), []Record{
		{Ongoing: "Thesis on solar cells\nSurvey of battery storage", Date: day(1)},
	})

	assert.Equal(t, "Thesis on solar cells\nSurvey of battery storage", out.Ongoing)
	assert.Empty(t, out.History)
}

func TestProcessMovesItemToHistory(t *testing.T) {
	tr := New(nil, nil)
	out := tr.Process(context.Background(), []Record{
		{Ongoing: "Thesis on solar cells", Date: day(1)},
		{History: "Thesis on solar cells", Date: day(2)},
	})

	assert.Equal(t, "Thesis on solar cells", out.History)
	assert.Empty(t, out.Ongoing)
}

func TestItemUnderBothEndsUpOngoing(t *testing.T) {
	// History items are applied before ongoing items within one record.
	tr := New(nil, nil)
	out := tr.Process(context.Background(), []Record{
		{Ongoing: "Thesis on solar cells", History: "Thesis on solar cells", Date: day(1)},
	})

	assert.Equal(t, "Thesis on solar cells", out.Ongoing)
	assert.Empty(t, out.History)
}

func TestOlderRecordNeverRegressesStatus(t *testing.T) {
	tr := New(nil, nil)
	out := tr.Process(context.Background(), []Record{
		{History: "Thesis on solar cells", Date: day(5)},
		{Ongoing: "Thesis on solar cells", Date: day(1)},
	})

	// Records are sorted oldest-first before processing, so the day-5
	// history verdict stands.
	assert.Equal(t, "Thesis on solar cells", out.History)
	assert.Empty(t, out.Ongoing)
}

func TestEqualTimestampAcrossRecordsDoesNotUpdate(t *testing.T) {
	tr := New(nil, nil)
	tr.processItem(context.Background(), "Thesis on solar cells", constants.ResearchOngoing, day(3), 0)
	tr.processItem(context.Background(), "thesis on solar cells", constants.ResearchHistory, day(3), 1)

	items := tr.Items()
	require.Len(t, items, 1)
	assert.Equal(t, constants.ResearchOngoing, items[0].Status)
}

func TestSameRecordOngoingOverridesHistory(t *testing.T) {
	tr := New(nil, nil)
	tr.processItem(context.Background(), "Thesis on solar cells", constants.ResearchHistory, day(3), 0)
	tr.processItem(context.Background(), "thesis on solar cells", constants.ResearchOngoing, day(3), 0)

	items := tr.Items()
	require.Len(t, items, 1)
	assert.Equal(t, constants.ResearchOngoing, items[0].Status)
	assert.Equal(t, "Thesis on solar cells", items[0].Text)
}

func TestCanonicalLabelIsFirstSeenPhrasing(t *testing.T) {
	tr := New(nil, nil)
	out := tr.Process(context.Background(), []Record{
		{Ongoing: "Thesis on Solar Cells", Date: day(1)},
		{History: "thesis on solar cells", Date: day(2)},
	})

	assert.Equal(t, "Thesis on Solar Cells", out.History)
}

func TestExactMatchFallbackIsCaseInsensitive(t *testing.T) {
	m := nlp.NewMatcher(nil, nil)
	assert.True(t, m.Similar(context.Background(), "Thesis on X", "thesis on x"))
	assert.False(t, m.Similar(context.Background(), "Thesis on X", "Thesis on Y"))
}

type failingScorer struct{}

func (failingScorer) Similarity(context.Context, string, string) (float64, error) {
	return 0, errors.New("backend unavailable")
}

func TestScorerErrorFallsBackToExactMatch(t *testing.T) {
	tr := New(nlp.NewMatcher(failingScorer{}, nil), nil)
	out := tr.Process(context.Background(), []Record{
		{Ongoing: "Thesis on X", Date: day(1)},
		{History: "thesis on x", Date: day(2)},
	})

	assert.Equal(t, "Thesis on X", out.History)
}

func TestLexicalScorerGroupsNearDuplicates(t *testing.T) {
	tr := New(nlp.NewMatcher(nlp.NewLexicalScorer(), nil), nil)
	out := tr.Process(context.Background(), []Record{
		{Ongoing: "Thesis on solar cell efficiency", Date: day(1)},
		{History: "Thesis on solar cell efficiency.", Date: day(2)},
	})

	assert.Equal(t, "Thesis on solar cell efficiency", out.History)
	assert.Empty(t, out.Ongoing)
}

func TestOutcomePreservesInsertionOrder(t *testing.T) {
	tr := New(nil, nil)
	out := tr.Process(context.Background(), []Record{
		{Ongoing: "Alpha project\nBeta project", History: "Gamma study", Date: day(1)},
	})

	assert.Equal(t, "Gamma study", out.History)
	assert.Equal(t, "Alpha project\nBeta project", out.Ongoing)
}

func TestSplitItems(t *testing.T) {
	assert.Nil(t, SplitItems(""))
	assert.Equal(t, []string{"a", "b"}, SplitItems(" a \n\n b \n"))
}
