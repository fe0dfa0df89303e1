package nlp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedScorer struct {
	score float64
	err   error
}

func (s fixedScorer) Similarity(context.Context, string, string) (float64, error) {
	return s.score, s.err
}

func TestSimilarWithoutScorerUsesExactMatch(t *testing.T) {
	m := NewMatcher(nil, nil)

	assert.True(t, m.Similar(context.Background(), "Deep Learning", "deep learning"))
	assert.True(t, m.Similar(context.Background(), "  padded  ", "padded"))
	assert.False(t, m.Similar(context.Background(), "Deep Learning", "Shallow Learning"))
}

func TestSimilarThresholdIsStrict(t *testing.T) {
	atThreshold := NewMatcher(fixedScorer{score: DefaultSimilarityThreshold}, nil)
	assert.False(t, atThreshold.Similar(context.Background(), "a", "b"))

	above := NewMatcher(fixedScorer{score: DefaultSimilarityThreshold + 0.01}, nil)
	assert.True(t, above.Similar(context.Background(), "a", "b"))
}

func TestSimilarScorerErrorFallsBack(t *testing.T) {
	m := NewMatcher(fixedScorer{err: errors.New("no backend")}, nil)

	assert.True(t, m.Similar(context.Background(), "Same Item", "same item"))
	assert.False(t, m.Similar(context.Background(), "one item", "another item"))
}

func TestWithThreshold(t *testing.T) {
	m := NewMatcher(fixedScorer{score: 0.5}, nil).WithThreshold(0.4)
	assert.True(t, m.Similar(context.Background(), "a", "b"))

	// non-positive override is ignored
	m = NewMatcher(fixedScorer{score: 0.5}, nil).WithThreshold(0)
	assert.False(t, m.Similar(context.Background(), "a", "b"))
}

func TestLexicalScorer(t *testing.T) {
	s := NewLexicalScorer()

	same, err := s.Similarity(context.Background(), "thesis on x", "thesis on x")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, same)

	near, err := s.Similarity(context.Background(), "thesis on x", "thesis on y")
	assert.NoError(t, err)
	assert.Greater(t, near, 0.85)

	far, err := s.Similarity(context.Background(), "thesis on x", "completely different")
	assert.NoError(t, err)
	assert.Less(t, far, 0.5)
}
