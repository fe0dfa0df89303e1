package nlp

import "context"

// Entity labels mirrored from the recognizer's tag set.
const (
	LabelPerson   = "PERSON"
	LabelGPE      = "GPE"
	LabelLocation = "LOC"
)

// Entity is one recognized span with its label.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityRecognizer is an optional capability provider. A nil recognizer or a
// recognizer error leaves entity-derived fields empty instead of failing the
// parse.
type EntityRecognizer interface {
	DetectEntities(ctx context.Context, text string) ([]Entity, error)
}

// SimilarityScorer scores two free-text items in [0,1]. Implementations are
// swappable (embedding model, lexical distance); errors make the caller fall
// back to exact comparison for that pair.
type SimilarityScorer interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Summarizer condenses a free-text block. Another optional capability: when
// no backend is configured the caller reports the capability as unavailable
// rather than failing the surrounding workflow.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
