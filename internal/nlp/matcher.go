package nlp

import (
	"context"
	"log/slog"
	"strings"
)

// DefaultSimilarityThreshold is the score two items must strictly exceed to
// be judged the same real-world item.
const DefaultSimilarityThreshold = 0.85

// Matcher decides whether two free-text items denote the same thing. With no
// scorer configured, or when the scorer errors on a pair, it degrades to
// case-insensitive exact equality and keeps going.
type Matcher struct {
	scorer    SimilarityScorer
	threshold float64
	logger    *slog.Logger
}

func NewMatcher(scorer SimilarityScorer, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{scorer: scorer, threshold: DefaultSimilarityThreshold, logger: logger}
}

// WithThreshold overrides the match threshold (still strictly-greater-than).
func (m *Matcher) WithThreshold(t float64) *Matcher {
	if t > 0 {
		m.threshold = t
	}
	return m
}

// Similar reports whether a and b denote the same item.
func (m *Matcher) Similar(ctx context.Context, a, b string) bool {
	if m.scorer == nil {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}

	score, err := m.scorer.Similarity(ctx, strings.ToLower(a), strings.ToLower(b))
	if err != nil {
		m.logger.Warn("nlp.similarity.fallback", "error", err)
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}

	result := score > m.threshold
	m.logger.Debug("nlp.similarity.scored",
		"a", a,
		"b", b,
		"score", score,
		"match", result,
	)
	return result
}
