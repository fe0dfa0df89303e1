package nlp

import (
	"context"

	"github.com/agext/levenshtein"
)

// LexicalScorer is a local similarity backend based on normalized edit
// distance. It never errors, which makes it a reasonable default when no
// embedding backend is configured.
type LexicalScorer struct {
	params *levenshtein.Params
}

func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{params: levenshtein.NewParams()}
}

func (s *LexicalScorer) Similarity(_ context.Context, a, b string) (float64, error) {
	return levenshtein.Similarity(a, b, s.params), nil
}
